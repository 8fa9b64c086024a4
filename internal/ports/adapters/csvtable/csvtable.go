package csvtable

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/forPelevin/argseg/internal/ports"
)

type Adapter struct {
	perm os.FileMode
}

func New() *Adapter {
	return &Adapter{perm: 0o644}
}

func (a *Adapter) ReadTable(ctx context.Context, path string) (ports.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return ports.Table{}, err
	}
	defer f.Close()
	return Decode(ctx, f)
}

// Decode reads a CSV stream whose first record is the header.
func Decode(ctx context.Context, r io.Reader) (ports.Table, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var t ports.Table
	for {
		if err := ctx.Err(); err != nil {
			return ports.Table{}, err
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return ports.Table{}, fmt.Errorf("parse csv: %w", err)
		}
		if t.Header == nil {
			if len(rec) > 0 {
				rec[0] = strings.TrimPrefix(rec[0], "\ufeff")
			}
			for i := range rec {
				rec[i] = strings.TrimSpace(rec[i])
			}
			t.Header = rec
			continue
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

// WriteTable replaces path atomically: rows go to a temp file in the same
// directory, which is synced and renamed over the target. On failure the
// target is left untouched.
func (a *Adapter) WriteTable(ctx context.Context, path string, t ports.Table) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	fail := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Chmod(a.perm); err != nil {
		return fail(err)
	}

	bw := bufio.NewWriterSize(tmp, 64*1024)
	if err := Encode(ctx, bw, t); err != nil {
		return fail(err)
	}
	if err := bw.Flush(); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	_ = syncDir(dir)
	return nil
}

// Encode writes the header and rows as CSV.
func Encode(ctx context.Context, w io.Writer, t ports.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
