package ansiconsole

import "strings"

// Row holds one line of formatted console content as a chain of attribute
// runs. Columns are 0-based rune positions; a row stores no end-of-line
// characters.
//
// A Row owns its run chain exclusively. Rows are created by the Console
// and must not be shared between consoles.
type Row struct {
	// first is a sentinel: always present, possibly empty.
	first *span
}

// NewRow creates an empty row.
func NewRow() *Row {
	return &Row{first: &span{}}
}

// Segment is one attribute run of a row, in column order.
type Segment struct {
	Text string
	Bold bool
}

// InsertAt writes text starting at the given column with the given
// attribute, overwriting any existing characters at those columns. A
// column past the current length pads the gap with spaces. Characters
// outside the written range never change attribute. Returns the column
// just past the written text, i.e. the new cursor column.
func (r *Row) InsertAt(col int, text string, bold bool) int {
	runes := []rune(text)
	r.first.insertAt(col, runes, bold)
	return col + len(runes)
}

// ClearLine blanks the row up to col and discards any content at or after
// it, resetting formatting. The bound is the cursor column by contract:
// an erase-line instruction clears only up to the cursor, not the whole
// line.
func (r *Row) ClearLine(col int) {
	r.first.erase(col)
}

// ClearToStart blanks columns [0, col) to non-bold spaces without
// disturbing the attribute of content at or after col.
func (r *Row) ClearToStart(col int) {
	r.first.eraseToStart(col)
}

// ClearToEnd discards all content from col onward. When col lies past the
// current length the row is instead padded with spaces up to col.
func (r *Row) ClearToEnd(col int) {
	r.first.eraseToEnd(col)
}

// Visit emits the row's runs into the sink, in column order: an attribute
// toggle followed by a Text instruction per non-empty run. The sink's End
// is not called; that is the caller's stream to terminate.
func (r *Row) Visit(sink Sink) {
	r.first.visit(sink)
}

// Len returns the row length in runes.
func (r *Row) Len() int {
	return r.first.length()
}

// Text returns the row's plain text, without attributes.
func (r *Row) Text() string {
	var b strings.Builder
	for s := r.first; s != nil; s = s.next {
		b.WriteString(string(s.chars))
	}
	return b.String()
}

// Segments returns the row's non-empty runs in column order. The returned
// slice is a copy and safe to retain.
func (r *Row) Segments() []Segment {
	var segs []Segment
	for s := r.first; s != nil; s = s.next {
		if len(s.chars) > 0 {
			segs = append(segs, Segment{Text: string(s.chars), Bold: s.bold})
		}
	}
	return segs
}

// String returns a debug dump of the run chain, one {...} per span.
func (r *Row) String() string {
	var b strings.Builder
	for s := r.first; s != nil; s = s.next {
		b.WriteString("{")
		if s.bold {
			b.WriteString("bold ")
		}
		b.WriteString("'")
		b.WriteString(string(s.chars))
		b.WriteString("'}")
	}
	return b.String()
}
