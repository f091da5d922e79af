package ansiconsole

// Instruction is one step of a decoded terminal-control stream. The set of
// variants is closed: Console.Interpret dispatches over it exhaustively,
// and Replay produces only these variants.
//
// Producers are expected to deliver instructions in visual order with
// non-negative counts (a decoder that parses "\x1b[A" with no parameter
// supplies a count of 1). No instruction is ever rejected.
type Instruction interface {
	isInstruction()
}

// Text is a run of printable characters to write at the cursor, using the
// currently active attribute. The content carries no control characters.
type Text struct {
	Content string
}

// NewLine moves the cursor to the start of the next row, creating the row
// if it does not exist yet.
type NewLine struct{}

// CarriageReturn moves the cursor to column 0 of the current row.
type CarriageReturn struct{}

// CursorUp moves the cursor up by Count rows, clamping at the top row.
type CursorUp struct {
	Count int
}

// CursorDown moves the cursor down by Count rows, creating rows as needed.
type CursorDown struct {
	Count int
}

// CursorBackward moves the cursor left by Count columns, clamping at 0.
type CursorBackward struct {
	Count int
}

// CursorForward moves the cursor right by Count columns. No content is
// created; a later write pads the gap with spaces.
type CursorForward struct {
	Count int
}

// EraseLine blanks the current row up to the cursor column and discards
// everything at or after it. Note the bound: the erased extent is the
// cursor column, not the full line.
type EraseLine struct{}

// EraseToLineStart blanks columns before the cursor, leaving the rest of
// the row untouched.
type EraseToLineStart struct{}

// EraseToLineEnd discards the row's content from the cursor column onward.
type EraseToLineEnd struct{}

// BoldOn makes subsequent Text instructions bold.
type BoldOn struct{}

// BoldOff makes subsequent Text instructions non-bold.
type BoldOff struct{}

func (Text) isInstruction()             {}
func (NewLine) isInstruction()          {}
func (CarriageReturn) isInstruction()   {}
func (CursorUp) isInstruction()         {}
func (CursorDown) isInstruction()       {}
func (CursorBackward) isInstruction()   {}
func (CursorForward) isInstruction()    {}
func (EraseLine) isInstruction()        {}
func (EraseToLineStart) isInstruction() {}
func (EraseToLineEnd) isInstruction()   {}
func (BoldOn) isInstruction()           {}
func (BoldOff) isInstruction()          {}

// Sink receives a replayed instruction stream. Console.Replay and
// Row.Visit push into a Sink; End marks the end of the stream.
//
// Sinks receive raw streams: consecutive identical attribute toggles and
// fragmented Text runs are not deduplicated by the producer. Wrap a sink
// in NewNormalizingSink to coalesce them.
type Sink interface {
	Emit(in Instruction)
	End()
}

// RecordingSink is a Sink that stores every instruction it receives.
// Useful for capturing a replayed stream for later processing or replaying
// it into another console.
type RecordingSink struct {
	Instructions []Instruction
	Ended        bool
}

// Emit appends the instruction to Instructions.
func (r *RecordingSink) Emit(in Instruction) {
	r.Instructions = append(r.Instructions, in)
}

// End records that the stream is complete.
func (r *RecordingSink) End() {
	r.Ended = true
}
