package types

type Document struct {
	ID   int
	Text string
}

// Window is a run of consecutive sentences from one document.
// EndIndex is always StartIndex + window size.
type Window struct {
	DocID      int
	StartIndex int
	EndIndex   int
	Text       string
}

type Label int

const (
	NonArgument Label = 0
	Argument    Label = 1
)

// ScoredWindow is a window row after the external classifier has labeled it.
// Row is the 0-based position of the row in the input table.
type ScoredWindow struct {
	Row        int
	DocID      int
	StartIndex int
	HasStart   bool
	Text       string
	Label      Label
	Confidence float64
}

type Segment struct {
	DocID      int
	StartIndex int
	EndIndex   int
	Confidence float64
	Label      Label
	Text       string
}

// Overlaps reports whether [s, e) intersects the segment's range.
func (s Segment) Overlaps(start, end int) bool {
	return start < s.EndIndex && end > s.StartIndex
}
