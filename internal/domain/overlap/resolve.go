package overlap

import (
	"fmt"
	"sort"

	"github.com/forPelevin/argseg/internal/types"
)

// Policy selects how a new argument window competes with kept segments.
type Policy string

const (
	// FirstMatch compares the window against the first overlapping kept
	// segment only, in insertion order. Chains of staggered windows can leave
	// overlapping segments behind.
	FirstMatch Policy = "first"
	// Merge compares the window against every overlapping kept segment and
	// keeps the per-document set disjoint.
	Merge Policy = "merge"
)

// IndexMode selects where a window's start index comes from.
type IndexMode string

const (
	// RowIndex uses the row's global position in the input table. This index
	// is not reset per document.
	RowIndex IndexMode = "row"
	// ExplicitIndex uses the start_index stored with each row.
	ExplicitIndex IndexMode = "explicit"
	// AutoIndex uses ExplicitIndex when every row carries a start index.
	AutoIndex IndexMode = "auto"
)

type Options struct {
	WindowSize int
	Policy     Policy
	Index      IndexMode
}

func (o Options) Validate() error {
	if o.WindowSize <= 0 {
		return fmt.Errorf("window size must be > 0")
	}
	switch o.Policy {
	case FirstMatch, Merge:
	default:
		return fmt.Errorf("unknown overlap policy %q", o.Policy)
	}
	switch o.Index {
	case RowIndex, ExplicitIndex, AutoIndex:
	default:
		return fmt.Errorf("unknown index mode %q", o.Index)
	}
	return nil
}

// Resolve reduces labeled windows to segments. Rows are processed in input
// order; non-argument rows are dropped. Output is grouped per document in
// order of each document's first appearance.
func Resolve(rows []types.ScoredWindow, opts Options) ([]types.Segment, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	mode := opts.Index
	if mode == AutoIndex {
		mode = detectIndexMode(rows)
	}

	var order []int
	kept := make(map[int][]types.Segment)
	for _, r := range rows {
		if _, ok := kept[r.DocID]; !ok {
			kept[r.DocID] = nil
			order = append(order, r.DocID)
		}
		if r.Label != types.Argument {
			continue
		}

		start := r.Row
		if mode == ExplicitIndex {
			if !r.HasStart {
				return nil, fmt.Errorf("row %d: start_index: %w", r.Row, types.ErrMissingField)
			}
			start = r.StartIndex
		}
		seg := types.Segment{
			DocID:      r.DocID,
			StartIndex: start,
			EndIndex:   start + opts.WindowSize,
			Confidence: r.Confidence,
			Label:      r.Label,
			Text:       r.Text,
		}

		if opts.Policy == Merge {
			kept[r.DocID] = mergeInsert(kept[r.DocID], seg)
		} else {
			kept[r.DocID] = firstMatchInsert(kept[r.DocID], seg)
		}
	}

	var out []types.Segment
	for _, id := range order {
		out = append(out, kept[id]...)
	}
	return out, nil
}

func detectIndexMode(rows []types.ScoredWindow) IndexMode {
	if len(rows) == 0 {
		return RowIndex
	}
	for _, r := range rows {
		if !r.HasStart {
			return RowIndex
		}
	}
	return ExplicitIndex
}

// firstMatchInsert stops at the first kept segment overlapping seg. A
// strictly more confident seg overwrites its range, confidence and text in
// place; otherwise seg is discarded.
func firstMatchInsert(kept []types.Segment, seg types.Segment) []types.Segment {
	for i := range kept {
		if !kept[i].Overlaps(seg.StartIndex, seg.EndIndex) {
			continue
		}
		if seg.Confidence > kept[i].Confidence {
			kept[i].StartIndex = seg.StartIndex
			kept[i].EndIndex = seg.EndIndex
			kept[i].Confidence = seg.Confidence
			kept[i].Text = seg.Text
		}
		return kept
	}
	return append(kept, seg)
}

// mergeInsert keeps kept sorted by start and pairwise disjoint. seg replaces
// every segment it overlaps when it beats all of them; otherwise it is
// discarded.
func mergeInsert(kept []types.Segment, seg types.Segment) []types.Segment {
	lo := sort.Search(len(kept), func(i int) bool { return kept[i].EndIndex > seg.StartIndex })
	hi := sort.Search(len(kept), func(i int) bool { return kept[i].StartIndex >= seg.EndIndex })
	if hi < lo {
		hi = lo
	}
	for _, k := range kept[lo:hi] {
		if seg.Confidence <= k.Confidence {
			return kept
		}
	}
	out := make([]types.Segment, 0, len(kept)-(hi-lo)+1)
	out = append(out, kept[:lo]...)
	out = append(out, seg)
	out = append(out, kept[hi:]...)
	return out
}
