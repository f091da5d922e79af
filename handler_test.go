package ansiconsole

import (
	"testing"

	"github.com/danielgatis/go-ansicode"
)

func TestWritePlainText(t *testing.T) {
	console := New()

	console.WriteString("Hello")

	if console.LineContent(0) != "Hello" {
		t.Errorf("expected 'Hello', got %q", console.LineContent(0))
	}
	row, col := console.CursorPos()
	if row != 0 || col != 5 {
		t.Errorf("expected cursor at (0, 5), got (%d, %d)", row, col)
	}
}

func TestWriteNewlines(t *testing.T) {
	console := New()

	console.WriteString("Line1\r\nLine2")

	if console.LineContent(0) != "Line1" {
		t.Errorf("expected 'Line1', got %q", console.LineContent(0))
	}
	if console.LineContent(1) != "Line2" {
		t.Errorf("expected 'Line2', got %q", console.LineContent(1))
	}
}

func TestWriteBoldSequence(t *testing.T) {
	console := New()

	console.WriteString("\x1b[1mBold\x1b[0mPlain")

	segs := console.Rows()[0].Segments()
	if len(segs) != 2 {
		t.Fatalf("expected 2 runs, got %d: %s", len(segs), console.Rows()[0])
	}
	if segs[0].Text != "Bold" || !segs[0].Bold {
		t.Errorf("expected bold 'Bold', got %+v", segs[0])
	}
	if segs[1].Text != "Plain" || segs[1].Bold {
		t.Errorf("expected non-bold 'Plain', got %+v", segs[1])
	}
}

func TestWriteCarriageReturnOverwrite(t *testing.T) {
	console := New()

	console.WriteString("abc\rX")

	if console.LineContent(0) != "Xbc" {
		t.Errorf("expected 'Xbc', got %q", console.LineContent(0))
	}
}

func TestWriteCursorMovement(t *testing.T) {
	console := New()

	console.WriteString("abcdef")
	console.WriteString("\x1b[3D") // back 3
	console.WriteString("XY")

	if console.LineContent(0) != "abcXYf" {
		t.Errorf("expected 'abcXYf', got %q", console.LineContent(0))
	}

	console.WriteString("\x1b[B") // down 1
	if len(console.Rows()) != 2 {
		t.Errorf("expected 2 rows, got %d", len(console.Rows()))
	}

	console.WriteString("\x1b[5A") // up past the top clamps
	row, _ := console.CursorPos()
	if row != 0 {
		t.Errorf("expected cursor row 0, got %d", row)
	}
}

func TestWriteCursorForwardPads(t *testing.T) {
	console := New()

	console.WriteString("\x1b[5CZ")

	if console.LineContent(0) != "     Z" {
		t.Errorf("expected '     Z', got %q", console.LineContent(0))
	}
}

func TestWriteEraseToLineEnd(t *testing.T) {
	console := New()

	console.WriteString("abcdef\x1b[3D\x1b[K")

	if console.LineContent(0) != "abc" {
		t.Errorf("expected 'abc', got %q", console.LineContent(0))
	}
}

func TestWriteEraseToLineStart(t *testing.T) {
	console := New()

	console.WriteString("abcdef\x1b[3D\x1b[1K")

	if console.LineContent(0) != "   def" {
		t.Errorf("expected '   def', got %q", console.LineContent(0))
	}
}

func TestWriteBackspace(t *testing.T) {
	console := New()

	console.WriteString("ab\bX")

	if console.LineContent(0) != "aX" {
		t.Errorf("expected 'aX', got %q", console.LineContent(0))
	}
}

func TestWriteTab(t *testing.T) {
	console := New()

	console.WriteString("\tX")

	if console.LineContent(0) != "        X" {
		t.Errorf("expected 8 spaces then X, got %q", console.LineContent(0))
	}
}

func TestWriteIgnoresUnmodeledSequences(t *testing.T) {
	console := New()

	// Colors, title, modes: all dropped, text survives.
	console.WriteString("\x1b]0;title\x07\x1b[31mred\x1b[39m\x1b[?25l!")

	if console.LineContent(0) != "red!" {
		t.Errorf("expected 'red!', got %q", console.LineContent(0))
	}
	for _, seg := range console.Rows()[0].Segments() {
		if seg.Bold {
			t.Errorf("no run should be bold, got %s", console.Rows()[0])
		}
	}
}

func TestGoto(t *testing.T) {
	console := New()

	console.Goto(2, 4)

	row, col := console.CursorPos()
	if row != 2 || col != 4 {
		t.Errorf("expected cursor at (2, 4), got (%d, %d)", row, col)
	}
	if len(console.Rows()) != 3 {
		t.Errorf("expected 3 rows, got %d", len(console.Rows()))
	}

	console.Goto(0, 0)
	row, col = console.CursorPos()
	if row != 0 || col != 0 {
		t.Errorf("expected cursor at (0, 0), got (%d, %d)", row, col)
	}

	console.Goto(-3, -3)
	row, col = console.CursorPos()
	if row != 0 || col != 0 {
		t.Errorf("expected clamped cursor at (0, 0), got (%d, %d)", row, col)
	}
}

func TestSaveRestoreCursorPosition(t *testing.T) {
	console := New()

	console.WriteString("ab")
	console.Input('c')
	console.SetTerminalCharAttribute(ansicode.TerminalCharAttribute{Attr: ansicode.CharAttributeBold})
	console.SaveCursorPosition()
	console.Goto(2, 0)
	console.SetTerminalCharAttribute(ansicode.TerminalCharAttribute{Attr: ansicode.CharAttributeReset})
	console.RestoreCursorPosition()

	row, col := console.CursorPos()
	if row != 0 || col != 3 {
		t.Errorf("expected cursor at (0, 3), got (%d, %d)", row, col)
	}
	if !console.Bold() {
		t.Error("expected bold state to be restored")
	}
}

func TestEraseChars(t *testing.T) {
	console := New()

	console.WriteString("abcdef")
	console.GotoCol(1)
	console.EraseChars(3)

	if console.LineContent(0) != "a   ef" {
		t.Errorf("expected 'a   ef', got %q", console.LineContent(0))
	}
	_, col := console.CursorPos()
	if col != 1 {
		t.Errorf("erase must not move the cursor, got column %d", col)
	}
}

func TestResetState(t *testing.T) {
	console := New()

	console.WriteString("\x1b[1mstuff\r\nmore")
	console.ResetState()

	if len(console.Rows()) != 1 {
		t.Errorf("expected 1 row after reset, got %d", len(console.Rows()))
	}
	row, col := console.CursorPos()
	if row != 0 || col != 0 {
		t.Errorf("expected cursor at (0, 0), got (%d, %d)", row, col)
	}
	if console.Bold() {
		t.Error("expected bold off after reset")
	}
}

func TestWriteClearScreen(t *testing.T) {
	console := New()

	console.WriteString("Hello\r\nWorld")
	console.WriteString("\x1b[2J")

	// Rows are cleared in place, never removed.
	if len(console.Rows()) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(console.Rows()))
	}
	if console.LineContent(0) != "" || console.LineContent(1) != "" {
		t.Errorf("expected empty rows, got %q / %q", console.LineContent(0), console.LineContent(1))
	}
}

func TestClearScreenBelow(t *testing.T) {
	console := New()

	console.WriteString("aaaa\r\nbbbb\r\ncccc")
	console.Goto(1, 2)
	console.ClearScreen(ansicode.ClearModeBelow)

	if console.LineContent(0) != "aaaa" {
		t.Errorf("row above the cursor changed: %q", console.LineContent(0))
	}
	if console.LineContent(1) != "bb" {
		t.Errorf("expected 'bb', got %q", console.LineContent(1))
	}
	if console.LineContent(2) != "" {
		t.Errorf("expected empty last row, got %q", console.LineContent(2))
	}
}

func TestClearScreenAbove(t *testing.T) {
	console := New()

	console.WriteString("aaaa\r\nbbbb\r\ncccc")
	console.Goto(1, 1)
	console.ClearScreen(ansicode.ClearModeAbove)

	if console.LineContent(0) != "" {
		t.Errorf("expected empty first row, got %q", console.LineContent(0))
	}
	if console.LineContent(1) != "  bb" {
		t.Errorf("expected '  bb', got %q", console.LineContent(1))
	}
	if console.LineContent(2) != "cccc" {
		t.Errorf("row below the cursor changed: %q", console.LineContent(2))
	}
}

func TestMoveBackwardTabs(t *testing.T) {
	console := New()

	console.GotoCol(20)
	console.MoveBackwardTabs(1)
	if _, col := console.CursorPos(); col != 16 {
		t.Errorf("expected column 16, got %d", col)
	}

	console.MoveBackwardTabs(2)
	if _, col := console.CursorPos(); col != 0 {
		t.Errorf("expected column 0, got %d", col)
	}
}
