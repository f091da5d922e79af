package ansiconsole

import "strings"

// NormalizingSink wraps a Sink and simplifies the stream passing through
// it: consecutive Text instructions are coalesced into one, and attribute
// toggles are forwarded only when they change the attribute of text that
// actually follows. A replayed row of many small runs therefore reaches
// the wrapped sink as the minimal toggle/text sequence with the same
// visual result.
type NormalizingSink struct {
	dst Sink

	buf strings.Builder
	// bold is the attribute state the destination has seen; pending is
	// the state requested by the stream.
	bold    bool
	pending bool
}

// NewNormalizingSink wraps dst. The destination is assumed to start in
// the non-bold state, matching a fresh instruction stream.
func NewNormalizingSink(dst Sink) *NormalizingSink {
	return &NormalizingSink{dst: dst}
}

// Emit consumes one instruction, forwarding the normalized stream to the
// destination.
func (n *NormalizingSink) Emit(in Instruction) {
	switch in := in.(type) {
	case BoldOn:
		n.pending = true
	case BoldOff:
		n.pending = false
	case Text:
		if in.Content == "" {
			return
		}
		if n.pending != n.bold {
			n.flushText()
			if n.pending {
				n.dst.Emit(BoldOn{})
			} else {
				n.dst.Emit(BoldOff{})
			}
			n.bold = n.pending
		}
		n.buf.WriteString(in.Content)
	default:
		// Structural instructions pass through between text runs.
		n.flushText()
		n.dst.Emit(in)
	}
}

// End flushes buffered text and terminates the destination stream.
// A trailing toggle with no text after it is dropped.
func (n *NormalizingSink) End() {
	n.flushText()
	n.dst.End()
}

func (n *NormalizingSink) flushText() {
	if n.buf.Len() == 0 {
		return
	}
	n.dst.Emit(Text{Content: n.buf.String()})
	n.buf.Reset()
}
