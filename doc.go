// Package ansiconsole reconstructs terminal screen content from a stream
// of terminal-control instructions.
//
// Given text runs, cursor movement, line feeds, erase commands, and bold
// toggles, a [Console] maintains the buffer a real terminal would show:
// an ordered list of rows, each holding formatted attribute runs, plus a
// cursor position and the active attribute. Overwrite, padding, and erase
// behave the way a terminal behaves: text written past a row's end pads
// with spaces, text written over existing content replaces it in place
// (splitting attribute runs when needed), and erases blank or discard
// without ever rejecting an instruction.
//
// # Quick Start
//
// Feed instructions directly:
//
//	console := ansiconsole.New()
//	console.Interpret(ansiconsole.BoldOn{})
//	console.Interpret(ansiconsole.Text{Content: "Hello"})
//	console.Interpret(ansiconsole.NewLine{})
//	console.Interpret(ansiconsole.BoldOff{})
//	console.Interpret(ansiconsole.Text{Content: "World"})
//	fmt.Println(console) // "Hello\nWorld"
//
// Or write raw ANSI bytes; the console implements [io.Writer] through an
// internal [go-ansicode] decoder:
//
//	console := ansiconsole.New()
//	console.WriteString("\x1b[1mHello\x1b[0m World\r\n")
//	fmt.Println(console.LineContent(0)) // "Hello World"
//
// Sequences the buffer cannot represent (colors, titles, scroll regions,
// graphics) are ignored; only bold is modeled as an attribute.
//
// # Reading Content Back
//
// Three read paths:
//
//   - Structured: [Console.Rows], then [Row.Segments], [Row.Text],
//     [Row.Len], [Row.DisplayWidth] per row.
//   - Replay: [Console.Replay] pushes the content into a [Sink] as a
//     fresh instruction stream, row by row with NewLine between rows.
//   - Snapshot: [Console.Snapshot] returns a JSON-serializable capture.
//
// Replay emits runs exactly as stored. Wrap the sink in
// [NewNormalizingSink] to coalesce fragmented text and drop attribute
// toggles that have no effect:
//
//	var rec ansiconsole.RecordingSink
//	console.Replay(ansiconsole.NewNormalizingSink(&rec))
//
// # Growth
//
// The buffer starts as one empty row and grows as the instruction stream
// addresses rows and columns beyond it. Rows are never removed and the
// cursor always addresses an existing row. Growth is bounded only by the
// input: when consuming untrusted streams, impose limits upstream.
//
// # Concurrency
//
// A Console is single-owner state. No method is safe for concurrent use
// without external synchronization; each instruction stream is meant to
// be interpreted by exactly one consumer, in order.
//
// [go-ansicode]: https://github.com/danielgatis/go-ansicode
package ansiconsole
