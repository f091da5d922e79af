package ansiconsole

import (
	"fmt"
	"strings"

	"github.com/danielgatis/go-ansicode"
)

// Console interprets a stream of terminal-control instructions and
// maintains the screen content they produce: an ordered list of rows, a
// cursor position, and the active text attribute.
//
// A Console starts with a single empty row. Rows are appended lazily when
// the cursor moves past the last one and are never removed; the cursor
// always addresses an existing row after any instruction. Instructions
// are never rejected: writing past a row's end pads with spaces, erasing
// past content is a no-op, and upward cursor movement clamps at row 0.
//
// A Console is owned by a single caller. It is not safe for concurrent
// use without external synchronization; an instruction stream is
// interpreted by exactly one consumer, in order.
type Console struct {
	rows []*Row
	row  int
	col  int
	bold bool

	// savedRow/savedCol/savedBold back the DECSC/DECRC sequences on the
	// decoder front end.
	savedRow  int
	savedCol  int
	savedBold bool

	decoder *ansicode.Decoder
}

// New creates a console with one empty row and the cursor at (0, 0).
// Consoles carry no global state; independent instances can coexist.
func New() *Console {
	c := &Console{
		rows: []*Row{NewRow()},
	}
	c.decoder = ansicode.NewDecoder(c)
	return c
}

// Interpret processes one instruction, mutating the console state. It
// never fails: every variant has defined behavior for every state.
func (c *Console) Interpret(in Instruction) {
	switch in := in.(type) {
	case Text:
		c.col = c.rows[c.row].InsertAt(c.col, in.Content, c.bold)

	case NewLine:
		c.row++
		c.col = 0
		if c.row >= len(c.rows) {
			c.rows = append(c.rows, NewRow())
		}

	case CarriageReturn:
		c.col = 0

	case CursorUp:
		c.row -= in.Count
		if c.row < 0 {
			c.row = 0
		}

	case CursorDown:
		c.row += in.Count
		for c.row >= len(c.rows) {
			c.rows = append(c.rows, NewRow())
		}

	case CursorBackward:
		c.col -= in.Count
		if c.col < 0 {
			c.col = 0
		}

	case CursorForward:
		// No content is created; the gap is padded on the next write.
		c.col += in.Count

	case EraseLine:
		c.rows[c.row].ClearLine(c.col)

	case EraseToLineStart:
		c.rows[c.row].ClearToStart(c.col)

	case EraseToLineEnd:
		c.rows[c.row].ClearToEnd(c.col)

	case BoldOn:
		c.bold = true

	case BoldOff:
		c.bold = false
	}
}

// Rows returns the live row list, ordered top-to-bottom. The slice and
// the rows it holds belong to the console; callers must not mutate them.
func (c *Console) Rows() []*Row {
	return c.rows
}

// CursorPos returns the current cursor position (0-based).
func (c *Console) CursorPos() (row, col int) {
	return c.row, c.col
}

// Bold returns the attribute applied to the next Text instruction.
func (c *Console) Bold() bool {
	return c.bold
}

// Replay pushes the console's current content into the sink as a fresh
// instruction stream: rows top-to-bottom with a NewLine between them,
// each row as alternating attribute toggles and Text runs, then End.
//
// The stream is raw: redundant toggles and fragmented runs are emitted as
// stored. Wrap the sink in NewNormalizingSink to coalesce them.
func (c *Console) Replay(sink Sink) {
	for i, row := range c.rows {
		if i > 0 {
			sink.Emit(NewLine{})
		}
		row.Visit(sink)
	}
	sink.End()
}

// LineContent returns the plain text of the given row, or "" when the row
// index is out of bounds.
func (c *Console) LineContent(row int) string {
	if row < 0 || row >= len(c.rows) {
		return ""
	}
	return c.rows[row].Text()
}

// String returns the console's plain text content, rows joined with
// newlines. Implements fmt.Stringer.
func (c *Console) String() string {
	var b strings.Builder
	for i, row := range c.rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(row.Text())
	}
	return b.String()
}

// Dump returns a debug description of the console state, including the
// per-row run chains.
func (c *Console) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "{console row: %d col: %d rows: [", c.row, c.col)
	for i, row := range c.rows {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(row.String())
	}
	b.WriteString("]}")
	return b.String()
}

// reset returns the console to its initial state: one empty row, cursor
// at (0, 0), bold off.
func (c *Console) reset() {
	c.rows = []*Row{NewRow()}
	c.row = 0
	c.col = 0
	c.bold = false
	c.savedRow = 0
	c.savedCol = 0
	c.savedBold = false
}
