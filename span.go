package ansiconsole

// span is a contiguous run of characters sharing one attribute value,
// linked to the run that follows it in the same row. The chain is strictly
// linear: each span is referenced by at most one predecessor, and a row
// reaches all of its content through its sentinel first span.
//
// Spans are created, split, merged, and dropped by the insert and erase
// operations below. Concatenating every span's characters in chain order
// always reproduces the row's plain text.
type span struct {
	chars []rune
	bold  bool
	next  *span
}

// newSpan copies text into a fresh span so the chain never aliases caller
// or sibling storage.
func newSpan(text []rune, bold bool) *span {
	s := &span{bold: bold}
	s.chars = append(s.chars, text...)
	return s
}

// pad extends the span with spaces until it is at least col runes long.
func (s *span) pad(col int) {
	for len(s.chars) < col {
		s.chars = append(s.chars, ' ')
	}
}

// insertAt writes text at the given column relative to this span,
// overwriting existing characters. Characters outside the written range
// keep their attribute; the chain is split or merged as required.
func (s *span) insertAt(col int, text []rune, bold bool) {
	switch {
	case col > len(s.chars):
		// The write starts past this span.
		switch {
		case s.next != nil:
			s.next.insertAt(col-len(s.chars), text, bold)
		case !s.bold:
			// Trailing non-bold run absorbs the padding.
			s.pad(col)
			if !bold {
				s.chars = append(s.chars, text...)
			} else {
				s.next = newSpan(text, true)
			}
		default:
			// Padding a bold run would turn the gap bold; start a
			// fresh non-bold run instead.
			s.next = &span{}
			s.next.insertAt(col-len(s.chars), text, bold)
		}

	case col == len(s.chars):
		// The write starts exactly at this span's end.
		switch {
		case s.next != nil:
			s.next.insertAt(0, text, bold)
		case bold == s.bold:
			s.chars = append(s.chars, text...)
		case len(s.chars) == 0:
			// Empty span adopts the incoming attribute.
			s.bold = bold
			s.chars = append(s.chars, text...)
		default:
			s.next = newSpan(text, bold)
		}

	case bold == s.bold:
		// Overwrite strictly inside with the same attribute: no split.
		replaced := len(s.chars) - col
		if replaced > len(text) {
			replaced = len(text)
		}
		if replaced == len(text) {
			copy(s.chars[col:], text)
		} else {
			// The write runs past this span; trim the overlap from
			// the rest of the chain.
			s.chars = append(s.chars[:col], text...)
			if s.next != nil {
				s.next = s.next.remove(len(text) - replaced)
			}
		}

	default:
		// Overwrite strictly inside with a different attribute: split
		// so the untouched prefix and suffix keep theirs.
		end := col + len(text)
		if end < len(s.chars) {
			tail := newSpan(s.chars[end:], s.bold)
			tail.next = s.next
			written := newSpan(text, bold)
			written.next = tail
			s.chars = s.chars[:col]
			s.next = written
		} else {
			overlap := end - len(s.chars)
			if col == 0 {
				s.bold = bold
				s.chars = append(s.chars[:0], text...)
				if s.next != nil {
					s.next = s.next.remove(overlap)
				}
			} else {
				s.chars = s.chars[:col]
				written := newSpan(text, bold)
				if s.next != nil {
					s.next = s.next.remove(overlap)
				}
				written.next = s.next
				s.next = written
			}
		}
	}
}

// remove deletes count leading characters from the chain starting at this
// span and returns the resulting chain head.
func (s *span) remove(count int) *span {
	switch {
	case count == 0:
		return s
	case count == len(s.chars):
		return s.next
	case count < len(s.chars):
		s.chars = s.chars[count:]
		return s
	case s.next != nil:
		return s.next.remove(count - len(s.chars))
	default:
		return nil
	}
}

// eraseToEnd discards everything at or after the given column. A column
// past the chain's end pads with spaces up to it instead: there is nothing
// there to erase, but the erased extent becomes part of the row.
func (s *span) eraseToEnd(col int) {
	switch {
	case col == len(s.chars):
		s.next = nil
	case col < len(s.chars):
		s.chars = s.chars[:col]
		s.next = nil
	case s.next != nil:
		s.next.eraseToEnd(col - len(s.chars))
	case s.bold:
		s.next = &span{}
		s.next.eraseToEnd(col - len(s.chars))
	default:
		s.pad(col)
	}
}

// erase blanks the row up to the given column and discards the rest,
// resetting the attribute. The result is exactly col non-bold spaces.
func (s *span) erase(col int) {
	s.bold = false
	s.chars = blanks(col)
	s.next = nil
}

// eraseToStart blanks the first col characters and forces them non-bold,
// splitting off a tail span when a bold suffix must keep its attribute.
func (s *span) eraseToStart(col int) {
	if col == 0 {
		return
	}
	if col <= len(s.chars) {
		for i := 0; i < col; i++ {
			s.chars[i] = ' '
		}
		if s.bold {
			if col == len(s.chars) {
				s.bold = false
			} else {
				tail := newSpan(s.chars[col:], true)
				tail.next = s.next
				s.chars = s.chars[:col]
				s.bold = false
				s.next = tail
			}
		}
	} else {
		overlap := col - len(s.chars)
		s.chars = blanks(col)
		s.bold = false
		if s.next != nil {
			s.next = s.next.remove(overlap)
		}
	}
}

// visit emits this span's run (attribute toggle, then text) followed by
// the rest of the chain. Empty spans emit nothing.
func (s *span) visit(sink Sink) {
	if len(s.chars) > 0 {
		if s.bold {
			sink.Emit(BoldOn{})
		} else {
			sink.Emit(BoldOff{})
		}
		sink.Emit(Text{Content: string(s.chars)})
	}
	if s.next != nil {
		s.next.visit(sink)
	}
}

// length returns the character count of the chain from this span on.
func (s *span) length() int {
	n := len(s.chars)
	if s.next != nil {
		n += s.next.length()
	}
	return n
}

func blanks(n int) []rune {
	b := make([]rune, n)
	for i := range b {
		b[i] = ' '
	}
	return b
}
