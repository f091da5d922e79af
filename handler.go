package ansiconsole

import (
	"image/color"
	"strings"

	"github.com/danielgatis/go-ansicode"
)

// Ensure Console implements ansicode.Handler
var _ ansicode.Handler = (*Console)(nil)

// tabWidth is the fixed tab stop interval used by the decoder front end.
const tabWidth = 8

// Write processes raw bytes, parsing ANSI escape sequences and feeding
// the resulting instructions to the console. Implements io.Writer.
//
// The parse is entirely the decoder's: the console itself only ever sees
// the closed instruction set. Sequences with no representation in that
// set (colors, titles, modes, graphics) are dropped here.
func (c *Console) Write(data []byte) (int, error) {
	return c.decoder.Write(data)
}

// WriteString is a convenience method that converts the string to bytes and calls Write.
func (c *Console) WriteString(s string) (int, error) {
	return c.Write([]byte(s))
}

// Input writes one printable rune at the cursor with the active
// attribute. Zero-width runes (combining marks, control characters that
// slip through) are ignored.
func (c *Console) Input(r rune) {
	if runeWidth(r) == 0 {
		return
	}
	c.Interpret(Text{Content: string(r)})
}

// LineFeed moves the cursor to the start of the next row, creating it if
// needed.
func (c *Console) LineFeed() {
	c.Interpret(NewLine{})
}

// CarriageReturn moves the cursor to column 0.
func (c *Console) CarriageReturn() {
	c.Interpret(CarriageReturn{})
}

// Backspace moves the cursor left one column, clamping at 0.
func (c *Console) Backspace() {
	c.Interpret(CursorBackward{Count: 1})
}

// Tab advances the cursor to the next tab stop, n times. Tab stops are
// fixed every 8 columns.
func (c *Console) Tab(n int) {
	for i := 0; i < n; i++ {
		c.Interpret(CursorForward{Count: tabWidth - c.col%tabWidth})
	}
}

// MoveUp moves the cursor up n rows, clamping at the top.
func (c *Console) MoveUp(n int) {
	c.Interpret(CursorUp{Count: n})
}

// MoveDown moves the cursor down n rows, creating rows as needed.
func (c *Console) MoveDown(n int) {
	c.Interpret(CursorDown{Count: n})
}

// MoveForward moves the cursor right n columns.
func (c *Console) MoveForward(n int) {
	c.Interpret(CursorForward{Count: n})
}

// MoveBackward moves the cursor left n columns, clamping at 0.
func (c *Console) MoveBackward(n int) {
	c.Interpret(CursorBackward{Count: n})
}

// MoveUpCr moves the cursor up n rows and to column 0.
func (c *Console) MoveUpCr(n int) {
	c.Interpret(CursorUp{Count: n})
	c.Interpret(CarriageReturn{})
}

// MoveDownCr moves the cursor down n rows and to column 0.
func (c *Console) MoveDownCr(n int) {
	c.Interpret(CursorDown{Count: n})
	c.Interpret(CarriageReturn{})
}

// MoveForwardTabs advances the cursor n tab stops.
func (c *Console) MoveForwardTabs(n int) {
	c.Tab(n)
}

// MoveBackwardTabs moves the cursor back n tab stops, clamping at 0.
func (c *Console) MoveBackwardTabs(n int) {
	for i := 0; i < n && c.col > 0; i++ {
		back := c.col % tabWidth
		if back == 0 {
			back = tabWidth
		}
		c.Interpret(CursorBackward{Count: back})
	}
}

// Goto moves the cursor to an absolute position. The console's
// instruction set is relative, so the move is synthesized from the
// current position; rows are created as needed.
func (c *Console) Goto(row, col int) {
	c.GotoLine(row)
	c.GotoCol(col)
}

// GotoLine moves the cursor to an absolute row, creating rows as needed.
func (c *Console) GotoLine(row int) {
	if row < 0 {
		row = 0
	}
	switch {
	case row > c.row:
		c.Interpret(CursorDown{Count: row - c.row})
	case row < c.row:
		c.Interpret(CursorUp{Count: c.row - row})
	}
}

// GotoCol moves the cursor to an absolute column.
func (c *Console) GotoCol(col int) {
	if col < 0 {
		col = 0
	}
	switch {
	case col > c.col:
		c.Interpret(CursorForward{Count: col - c.col})
	case col < c.col:
		c.Interpret(CursorBackward{Count: c.col - col})
	}
}

// ClearLine erases part of the current row. The "all" mode keeps the
// source semantic of the erase-line instruction: the cleared extent is
// bounded by the cursor column.
func (c *Console) ClearLine(mode ansicode.LineClearMode) {
	switch mode {
	case ansicode.LineClearModeRight:
		c.Interpret(EraseToLineEnd{})
	case ansicode.LineClearModeLeft:
		c.Interpret(EraseToLineStart{})
	case ansicode.LineClearModeAll:
		c.Interpret(EraseLine{})
	}
}

// ClearScreen clears regions of the buffer relative to the cursor. Rows
// are cleared in place; the row list never shrinks.
func (c *Console) ClearScreen(mode ansicode.ClearMode) {
	switch mode {
	case ansicode.ClearModeBelow:
		c.rows[c.row].ClearToEnd(c.col)
		for _, row := range c.rows[c.row+1:] {
			row.ClearToEnd(0)
		}
	case ansicode.ClearModeAbove:
		for _, row := range c.rows[:c.row] {
			row.ClearToEnd(0)
		}
		c.rows[c.row].ClearToStart(c.col + 1)
	case ansicode.ClearModeAll, ansicode.ClearModeSaved:
		for _, row := range c.rows {
			row.ClearToEnd(0)
		}
	}
}

// EraseChars overwrites n characters at the cursor with non-bold spaces
// without moving the cursor.
func (c *Console) EraseChars(n int) {
	if n <= 0 {
		return
	}
	c.rows[c.row].InsertAt(c.col, strings.Repeat(" ", n), false)
}

// SetTerminalCharAttribute updates the active attribute. Only bold is
// modeled; every other SGR attribute is dropped.
func (c *Console) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {
	switch attr.Attr {
	case ansicode.CharAttributeBold:
		c.Interpret(BoldOn{})
	case ansicode.CharAttributeReset,
		ansicode.CharAttributeCancelBold,
		ansicode.CharAttributeCancelBoldDim:
		c.Interpret(BoldOff{})
	}
}

// SaveCursorPosition records the cursor position and active attribute.
func (c *Console) SaveCursorPosition() {
	c.savedRow = c.row
	c.savedCol = c.col
	c.savedBold = c.bold
}

// RestoreCursorPosition returns to the last saved position and attribute,
// creating rows if needed.
func (c *Console) RestoreCursorPosition() {
	c.Goto(c.savedRow, c.savedCol)
	c.bold = c.savedBold
}

// ReverseIndex moves the cursor up one row, clamping at the top.
func (c *Console) ReverseIndex() {
	c.Interpret(CursorUp{Count: 1})
}

// ResetState returns the console to its initial state.
func (c *Console) ResetState() {
	c.reset()
}

// The remaining handler callbacks have no representation in the buffer
// model: one boolean attribute, no colors, no modes, no title or
// clipboard side channels, no graphics. They are deliberate no-ops so the
// decoder can consume any byte stream without the console rejecting it.

// ApplicationCommandReceived is ignored; APC payloads are not modeled.
func (c *Console) ApplicationCommandReceived(data []byte) {}

// Bell is ignored; the buffer has no bell.
func (c *Console) Bell() {}

// ClearTabs is ignored; tab stops are fixed every 8 columns.
func (c *Console) ClearTabs(mode ansicode.TabulationClearMode) {}

// ClipboardLoad is ignored; there is no clipboard.
func (c *Console) ClipboardLoad(clipboard byte, terminator string) {}

// ClipboardStore is ignored; there is no clipboard.
func (c *Console) ClipboardStore(clipboard byte, data []byte) {}

// ConfigureCharset is ignored; input is interpreted as plain text.
func (c *Console) ConfigureCharset(index ansicode.CharsetIndex, charset ansicode.Charset) {}

// Decaln is ignored.
func (c *Console) Decaln() {}

// DeleteChars is ignored; the buffer has overwrite semantics only, no
// shifting edits.
func (c *Console) DeleteChars(n int) {}

// DeleteLines is ignored; rows are never removed.
func (c *Console) DeleteLines(n int) {}

// DeviceStatus is ignored; there is no response channel.
func (c *Console) DeviceStatus(n int) {}

// HorizontalTabSet is ignored; tab stops are fixed.
func (c *Console) HorizontalTabSet() {}

// IdentifyTerminal is ignored; there is no response channel.
func (c *Console) IdentifyTerminal(b byte) {}

// InsertBlank is ignored; the buffer has no insert mode.
func (c *Console) InsertBlank(n int) {}

// InsertBlankLines is ignored; rows are only appended at the bottom.
func (c *Console) InsertBlankLines(n int) {}

// PopKeyboardMode is ignored; there is no keyboard.
func (c *Console) PopKeyboardMode(n int) {}

// PopTitle is ignored; there is no window title.
func (c *Console) PopTitle() {}

// PrivacyMessageReceived is ignored.
func (c *Console) PrivacyMessageReceived(data []byte) {}

// PushKeyboardMode is ignored; there is no keyboard.
func (c *Console) PushKeyboardMode(mode ansicode.KeyboardMode) {}

// PushTitle is ignored; there is no window title.
func (c *Console) PushTitle() {}

// ReportKeyboardMode is ignored; there is no response channel.
func (c *Console) ReportKeyboardMode() {}

// ReportModifyOtherKeys is ignored; there is no response channel.
func (c *Console) ReportModifyOtherKeys() {}

// ResetColor is ignored; colors are not modeled.
func (c *Console) ResetColor(i int) {}

// ScrollDown is ignored; the buffer grows instead of scrolling.
func (c *Console) ScrollDown(n int) {}

// ScrollUp is ignored; the buffer grows instead of scrolling.
func (c *Console) ScrollUp(n int) {}

// SetActiveCharset is ignored; input is interpreted as plain text.
func (c *Console) SetActiveCharset(n int) {}

// SetColor is ignored; colors are not modeled.
func (c *Console) SetColor(index int, col color.Color) {}

// SetCursorStyle is ignored; the cursor has no rendering style.
func (c *Console) SetCursorStyle(style ansicode.CursorStyle) {}

// SetDynamicColor is ignored; colors are not modeled.
func (c *Console) SetDynamicColor(prefix string, index int, terminator string) {}

// SetHyperlink is ignored; hyperlinks are not modeled.
func (c *Console) SetHyperlink(hyperlink *ansicode.Hyperlink) {}

// SetKeyboardMode is ignored; there is no keyboard.
func (c *Console) SetKeyboardMode(mode ansicode.KeyboardMode, behavior ansicode.KeyboardModeBehavior) {
}

// SetKeypadApplicationMode is ignored; there is no keyboard.
func (c *Console) SetKeypadApplicationMode() {}

// SetMode is ignored; terminal modes are not modeled.
func (c *Console) SetMode(mode ansicode.TerminalMode) {}

// SetModifyOtherKeys is ignored; there is no keyboard.
func (c *Console) SetModifyOtherKeys(modify ansicode.ModifyOtherKeys) {}

// SetScrollingRegion is ignored; the buffer grows instead of scrolling.
func (c *Console) SetScrollingRegion(top, bottom int) {}

// SetTitle is ignored; there is no window title.
func (c *Console) SetTitle(title string) {}

// StartOfStringReceived is ignored.
func (c *Console) StartOfStringReceived(data []byte) {}

// Substitute is ignored.
func (c *Console) Substitute() {}

// TextAreaSizeChars is ignored; there is no response channel.
func (c *Console) TextAreaSizeChars() {}

// TextAreaSizePixels is ignored; there is no response channel.
func (c *Console) TextAreaSizePixels() {}

// UnsetKeypadApplicationMode is ignored; there is no keyboard.
func (c *Console) UnsetKeypadApplicationMode() {}

// UnsetMode is ignored; terminal modes are not modeled.
func (c *Console) UnsetMode(mode ansicode.TerminalMode) {}
