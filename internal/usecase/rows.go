package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/forPelevin/argseg/internal/ports"
	"github.com/forPelevin/argseg/internal/types"
)

// Column names exchanged with the classifier and downstream consumers.
const (
	ColID            = "id"
	ColText          = "text"
	ColStartIndex    = "start_index"
	ColEndIndex      = "end_index"
	ColPrediction    = "argument_predictions"
	ColConfidence    = "argument_confidence"
	ColSegConfidence = "confidence"
	ColLabel         = "label"

	LabelArgument    = "Argument"
	LabelNonArgument = "Non-argument"
)

func decodeDocuments(t ports.Table) ([]types.Document, error) {
	col, err := t.Column(ColText)
	if err != nil {
		return nil, err
	}
	docs := make([]types.Document, 0, len(t.Rows))
	for i, row := range t.Rows {
		if col >= len(row) {
			return nil, fmt.Errorf("row %d: column %q: %w", i, ColText, types.ErrMissingField)
		}
		docs = append(docs, types.Document{ID: i, Text: row[col]})
	}
	return docs, nil
}

func encodeWindows(ws []types.Window) ports.Table {
	t := ports.Table{
		Header: []string{ColID, ColText, ColStartIndex, ColEndIndex},
		Rows:   make([][]string, 0, len(ws)),
	}
	for _, w := range ws {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(w.DocID),
			w.Text,
			strconv.Itoa(w.StartIndex),
			strconv.Itoa(w.EndIndex),
		})
	}
	return t
}

func decodeScoredWindows(t ports.Table) ([]types.ScoredWindow, error) {
	cols := make(map[string]int, 4)
	for _, name := range []string{ColID, ColText, ColPrediction, ColConfidence} {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols[name] = c
	}
	startCol := -1
	if t.HasColumn(ColStartIndex) {
		startCol, _ = t.Column(ColStartIndex)
	}

	out := make([]types.ScoredWindow, 0, len(t.Rows))
	for i, row := range t.Rows {
		if cols[ColText] >= len(row) {
			return nil, fmt.Errorf("row %d: column %q: %w", i, ColText, types.ErrMissingField)
		}
		id, err := parseInt(ports.Cell(row, cols[ColID]))
		if err != nil {
			return nil, fmt.Errorf("row %d: column %q: %w: %v", i, ColID, types.ErrMalformedID, err)
		}
		label, err := parseLabel(ports.Cell(row, cols[ColPrediction]))
		if err != nil {
			return nil, fmt.Errorf("row %d: column %q: %w", i, ColPrediction, err)
		}
		conf, err := parseConfidence(ports.Cell(row, cols[ColConfidence]))
		if err != nil {
			return nil, fmt.Errorf("row %d: column %q: %w", i, ColConfidence, err)
		}
		w := types.ScoredWindow{
			Row:        i,
			DocID:      id,
			Text:       row[cols[ColText]],
			Label:      label,
			Confidence: conf,
		}
		if startCol >= 0 {
			s, err := parseInt(ports.Cell(row, startCol))
			if err != nil {
				return nil, fmt.Errorf("row %d: column %q: %w: %v", i, ColStartIndex, types.ErrMalformedID, err)
			}
			w.StartIndex = s
			w.HasStart = true
		}
		out = append(out, w)
	}
	return out, nil
}

func encodeSegments(segs []types.Segment) ports.Table {
	t := ports.Table{
		Header: []string{ColID, ColStartIndex, ColEndIndex, ColSegConfidence, ColLabel, ColText},
		Rows:   make([][]string, 0, len(segs)),
	}
	for _, s := range segs {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(s.DocID),
			strconv.Itoa(s.StartIndex),
			strconv.Itoa(s.EndIndex),
			strconv.FormatFloat(s.Confidence, 'f', -1, 64),
			strconv.Itoa(int(s.Label)),
			s.Text,
		})
	}
	return t
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func parseLabel(s string) (types.Label, error) {
	switch strings.TrimSpace(s) {
	case LabelArgument:
		return types.Argument, nil
	case LabelNonArgument:
		return types.NonArgument, nil
	default:
		return 0, fmt.Errorf("%w: unknown label %q", types.ErrMalformedScore, s)
	}
}

func parseConfidence(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: confidence %q", types.ErrMalformedScore, s)
	}
	return v, nil
}
