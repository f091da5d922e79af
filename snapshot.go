package ansiconsole

// SnapshotDetail specifies the level of detail in a snapshot.
type SnapshotDetail string

const (
	// SnapshotDetailText returns plain text only.
	SnapshotDetailText SnapshotDetail = "text"
	// SnapshotDetailStyled returns text with attribute runs per line.
	SnapshotDetailStyled SnapshotDetail = "styled"
)

// Snapshot is a serializable capture of the console's current content.
type Snapshot struct {
	Cursor SnapshotCursor `json:"cursor"`
	Lines  []SnapshotLine `json:"lines"`
}

// SnapshotCursor holds cursor state and the pending attribute.
type SnapshotCursor struct {
	Row  int  `json:"row"`
	Col  int  `json:"col"`
	Bold bool `json:"bold,omitempty"`
}

// SnapshotLine represents a single row in the snapshot.
type SnapshotLine struct {
	Text     string            `json:"text"`
	Width    int               `json:"width"`
	Segments []SnapshotSegment `json:"segments,omitempty"`
}

// SnapshotSegment represents one attribute run within a line.
type SnapshotSegment struct {
	Text string `json:"text"`
	Bold bool   `json:"bold,omitempty"`
}

// Snapshot captures the console content at the requested detail level.
// The result is independent of the console and safe to serialize or
// retain across further instructions.
func (c *Console) Snapshot(detail SnapshotDetail) *Snapshot {
	snap := &Snapshot{
		Cursor: SnapshotCursor{Row: c.row, Col: c.col, Bold: c.bold},
	}

	for _, row := range c.rows {
		line := SnapshotLine{
			Text:  row.Text(),
			Width: row.DisplayWidth(),
		}
		if detail == SnapshotDetailStyled {
			for _, seg := range row.Segments() {
				line.Segments = append(line.Segments, SnapshotSegment{
					Text: seg.Text,
					Bold: seg.Bold,
				})
			}
		}
		snap.Lines = append(snap.Lines, line)
	}

	return snap
}
