package usecase

import (
	"context"
	"io"

	"github.com/forPelevin/argseg/internal/domain/overlap"
	"github.com/forPelevin/argseg/internal/domain/windows"
	"github.com/forPelevin/argseg/internal/ports"
	"github.com/forPelevin/argseg/internal/types"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// progressEvery is how many rows pass between debug progress lines.
const progressEvery = 1000

type Deps struct {
	Reader   ports.TableReader
	Writer   ports.TableWriter
	Splitter windows.SentenceSplitter
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type ProcessInput struct {
	InputPath  string
	OutputPath string
	WindowSize int
	StepSize   int
	Log        logrus.FieldLogger
}

type ProcessResult struct {
	Documents int
	Windows   int
}

// Process splits every document into sentence windows and writes one row
// per window. Nothing is written unless the whole input decodes.
func (u Usecase) Process(ctx context.Context, in ProcessInput) (ProcessResult, error) {
	log := loggerOrDiscard(in.Log)

	tbl, err := u.d.Reader.ReadTable(ctx, in.InputPath)
	if err != nil {
		return ProcessResult{}, err
	}
	docs, err := decodeDocuments(tbl)
	if err != nil {
		return ProcessResult{}, err
	}
	log.WithField("documents", len(docs)).Info("documents loaded")

	cfg := windows.Config{WindowSize: in.WindowSize, StepSize: in.StepSize}
	var ws []types.Window
	for i, d := range docs {
		if err := ctx.Err(); err != nil {
			return ProcessResult{}, err
		}
		ws = append(ws, windows.ForDocument(d, u.d.Splitter, cfg)...)
		if (i+1)%progressEvery == 0 {
			log.WithFields(logrus.Fields{"documents": i + 1, "windows": len(ws)}).Debug("progress")
		}
	}

	if err := u.d.Writer.WriteTable(ctx, in.OutputPath, encodeWindows(ws)); err != nil {
		return ProcessResult{}, err
	}
	res := ProcessResult{Documents: len(docs), Windows: len(ws)}
	log.WithFields(logrus.Fields{
		"documents": res.Documents,
		"windows":   res.Windows,
		"output":    in.OutputPath,
	}).Info("windows written")
	return res, nil
}

type SelectInput struct {
	InputPath  string
	OutputPath string
	Options    overlap.Options
	Log        logrus.FieldLogger
}

type SelectResult struct {
	Rows           int
	Documents      int
	Segments       int
	MeanConfidence float64
}

// Select resolves overlapping argument windows per document and writes the
// surviving segments.
func (u Usecase) Select(ctx context.Context, in SelectInput) (SelectResult, error) {
	log := loggerOrDiscard(in.Log)

	tbl, err := u.d.Reader.ReadTable(ctx, in.InputPath)
	if err != nil {
		return SelectResult{}, err
	}
	rows, err := decodeScoredWindows(tbl)
	if err != nil {
		return SelectResult{}, err
	}
	log.WithField("rows", len(rows)).Info("windows loaded")

	segs, err := overlap.Resolve(rows, in.Options)
	if err != nil {
		return SelectResult{}, err
	}
	if err := u.d.Writer.WriteTable(ctx, in.OutputPath, encodeSegments(segs)); err != nil {
		return SelectResult{}, err
	}

	res := summarize(rows, segs)
	log.WithFields(logrus.Fields{
		"rows":            res.Rows,
		"documents":       res.Documents,
		"segments":        res.Segments,
		"mean_confidence": res.MeanConfidence,
		"output":          in.OutputPath,
	}).Info("segments written")
	return res, nil
}

func summarize(rows []types.ScoredWindow, segs []types.Segment) SelectResult {
	docs := make(map[int]struct{})
	for _, s := range segs {
		docs[s.DocID] = struct{}{}
	}
	res := SelectResult{Rows: len(rows), Documents: len(docs), Segments: len(segs)}
	if len(segs) > 0 {
		confs := make([]float64, len(segs))
		for i, s := range segs {
			confs[i] = s.Confidence
		}
		res.MeanConfidence = stat.Mean(confs, nil)
	}
	return res
}

func loggerOrDiscard(l logrus.FieldLogger) logrus.FieldLogger {
	if l != nil {
		return l
	}
	discard := logrus.New()
	discard.Out = io.Discard
	return discard
}
