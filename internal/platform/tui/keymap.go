package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the game and results screens.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Tap    key.Binding
	Replay key.Binding
	Up     key.Binding
	Down   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Tap, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Tap},
		{k.Replay, k.Quit},
	}
}

// ResultsHelp is the key help shown on the results screen.
type ResultsHelp KeyMap

// ShortHelp returns key bindings for the results screen.
func (k ResultsHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Replay, k.Quit}
}

// FullHelp returns key bindings for the results screen.
func (k ResultsHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Replay, k.Quit}}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "steer left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "steer right"),
		),
		Tap: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start / continue"),
		),
		Replay: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter/r", "play again"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
