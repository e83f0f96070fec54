package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-jumper/internal/jumper"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// maxRuns is how many past runs the results table lists.
const maxRuns = 10

// resultsLatch records the hand-off from a finished session.
// It implements jumper.Results.
type resultsLatch struct {
	shown bool
	score int
}

// ShowResults implements jumper.Results.
func (r *resultsLatch) ShowResults(score int) {
	r.shown = true
	r.score = score
}

// resultsAction is what the player chose on the results screen.
type resultsAction int

const (
	resultsNone resultsAction = iota
	resultsReplay
	resultsQuit
)

// ResultsModel is the results screen shown after a session ends.
type ResultsModel struct {
	score     int
	highScore int
	height    float64
	cause     jumper.GameOverCause
	runs      []storage.Run
	table     table.Model
	help      help.Model
	keys      KeyMap
	width     int
}

// NewResultsModel creates the results screen for a finished run.
func NewResultsModel(snap jumper.Snapshot, score int, runs []storage.Run, width, height int) ResultsModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := ResultsModel{
		score:     score,
		highScore: snap.HighScore,
		height:    snap.HeightSoFar,
		cause:     snap.Cause,
		runs:      runs,
		help:      h,
		keys:      DefaultKeyMap(),
		width:     width,
	}
	m.table = m.createTable(height)
	return m
}

// createTable creates the table of best runs.
func (m *ResultsModel) createTable(height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Height", Width: 8},
		{Title: "Outcome", Width: 9},
		{Title: "Date", Width: 14},
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%.1f", r.Height),
			r.Cause,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight(height)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// resize fits the screen to a new terminal size.
func (m *ResultsModel) resize(width, height int) {
	m.width = width
	m.help.Width = width
	m.table.SetHeight(tableHeight(height))
}

// tableHeight leaves room for the title, summary, help and borders.
func tableHeight(termHeight int) int {
	h := termHeight - 12
	if h < 3 {
		h = 3
	}
	return h
}

// Update handles a key on the results screen.
func (m ResultsModel) Update(msg tea.Msg) (ResultsModel, resultsAction, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, resultsQuit, nil
		case key.Matches(msg, m.keys.Replay):
			return m, resultsReplay, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, resultsNone, cmd
}

// View renders the results screen.
func (m ResultsModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "GAME OVER"
	if m.cause == jumper.CauseGoal {
		title = "YOU REACHED THE UFO"
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	summary := fmt.Sprintf("Score: %d   HighScore: %d   Height: %.1f", m.score, m.highScore, m.height)
	if m.score > 0 && m.score >= m.highScore {
		summary += "   NEW BEST!"
	}
	b.WriteString(centerText(summary, m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		content = emptyStyle.Render("No runs recorded.")
	} else {
		content = m.table.View()
	}
	for _, line := range strings.Split(boxStyle.Render(content), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(centerText(helpStyle.Render(m.help.View(ResultsHelp(m.keys))), m.width))

	return b.String()
}
