package ansiconsole

import "github.com/unilibs/uniwidth"

// runeWidth returns the display width: 2 for wide characters (CJK, emoji), 1 for normal, 0 for zero-width (combining marks, control chars).
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// StringWidth returns the total display width of a string (sum of rune widths).
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}

// DisplayWidth returns the on-screen width of the row in columns. This
// differs from Len when the row holds wide characters: column arithmetic
// inside the buffer is rune-indexed, display width is a rendering
// concern.
func (r *Row) DisplayWidth() int {
	return StringWidth(r.Text())
}
