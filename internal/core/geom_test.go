package core

import "testing"

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 1, 1),
			b:        NewRect(0.5, 0.5, 1, 1),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 1, 1),
			b:        NewRect(1.5, 0, 1, 1),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 1, 1),
			b:        NewRect(0, 1.5, 1, 1),
			expected: false,
		},
		{
			name:     "touching horizontal (no overlap)",
			a:        NewRect(0, 0, 2, 0.5),
			b:        NewRect(2, 0, 1, 1),
			expected: false,
		},
		{
			name:     "touching vertical (no overlap)",
			a:        NewRect(4.5, 0.5, 1, 1),
			b:        NewRect(4, 0, 2, 0.5),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(2, 2, 0.8, 0.8),
			expected: true,
		},
		{
			name:     "sliver overlap",
			a:        NewRect(0, 0, 1, 1),
			b:        NewRect(0.999, 0.999, 1, 1),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Overlaps(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	left := NewRect(0, 0, 160, 480)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 40, 200, true},
		{"bottom-left corner", 0, 0, true},
		{"right edge (inclusive)", 160, 100, true},
		{"top edge (inclusive)", 10, 480, true},
		{"outside right", 161, 100, false},
		{"outside left", -1, 100, false},
		{"outside top", 10, 481, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := left.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(4, 10, 2, 0.5)

	if r.Right() != 6 {
		t.Errorf("Right() = %v, expected 6", r.Right())
	}
	if r.Top() != 10.5 {
		t.Errorf("Top() = %v, expected 10.5", r.Top())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
