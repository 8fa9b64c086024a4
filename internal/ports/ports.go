package ports

import (
	"context"
	"fmt"

	"github.com/forPelevin/argseg/internal/types"
)

// Table is a header row plus data rows. Rows may be shorter than Header.
type Table struct {
	Header []string
	Rows   [][]string
}

// Column returns the index of name in the header.
func (t Table) Column(name string) (int, error) {
	for i, h := range t.Header {
		if h == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("column %q: %w", name, types.ErrMissingField)
}

// HasColumn reports whether name is in the header.
func (t Table) HasColumn(name string) bool {
	_, err := t.Column(name)
	return err == nil
}

// Cell returns row[col], or "" when the row is short.
func Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

type TableReader interface {
	ReadTable(ctx context.Context, path string) (Table, error)
}

type TableWriter interface {
	WriteTable(ctx context.Context, path string, t Table) error
}
