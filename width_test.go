package ansiconsole

import "testing"

func TestStringWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"hello", 5},
		{"日本語", 6},
		{"a日b", 4},
	}

	for _, tt := range tests {
		if got := StringWidth(tt.input); got != tt.want {
			t.Errorf("StringWidth(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestRowDisplayWidth(t *testing.T) {
	row := NewRow()
	row.InsertAt(0, "ab日", false)

	// Column arithmetic is rune-based; display width is not.
	if row.Len() != 3 {
		t.Errorf("expected rune length 3, got %d", row.Len())
	}
	if row.DisplayWidth() != 4 {
		t.Errorf("expected display width 4, got %d", row.DisplayWidth())
	}
}

func TestInputIgnoresZeroWidthRunes(t *testing.T) {
	console := New()

	console.Input('a')
	console.Input('́') // combining acute accent
	console.Input('b')

	if console.LineContent(0) != "ab" {
		t.Errorf("expected 'ab', got %q", console.LineContent(0))
	}
}
