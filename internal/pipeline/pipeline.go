package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/forPelevin/argseg/internal/domain/overlap"
	"github.com/forPelevin/argseg/internal/domain/sentences"
	"github.com/forPelevin/argseg/internal/ports"
	"github.com/forPelevin/argseg/internal/ports/adapters/csvtable"
	"github.com/forPelevin/argseg/internal/usecase"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Stage string

const (
	StageProcess Stage = "process"
	StageSelect  Stage = "select"
)

type Config struct {
	Stage      Stage
	InputPath  string
	OutputPath string

	WindowSize int
	StepSize   int

	// Abbreviations suppress sentence splits. Nil means the default titles.
	Abbreviations []string

	OverlapPolicy overlap.Policy
	IndexMode     overlap.IndexMode

	Log logrus.FieldLogger
}

func (c Config) Validate() error {
	switch c.Stage {
	case StageProcess, StageSelect:
	default:
		return fmt.Errorf("unknown stage %q", c.Stage)
	}
	if c.InputPath == "" {
		return errors.New("input is empty")
	}
	if c.OutputPath == "" {
		return errors.New("output is empty")
	}
	st, err := os.Stat(c.InputPath)
	if err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	if st.IsDir() {
		return fmt.Errorf("input %s is a directory", c.InputPath)
	}
	if same, _ := samePath(c.InputPath, c.OutputPath); same {
		return errors.New("output must differ from input")
	}
	if c.WindowSize <= 0 {
		return fmt.Errorf("window size must be > 0")
	}
	if c.Stage == StageProcess && c.StepSize <= 0 {
		return fmt.Errorf("step size must be > 0")
	}
	if c.Stage == StageSelect {
		return overlap.Options{WindowSize: c.WindowSize, Policy: c.OverlapPolicy, Index: c.IndexMode}.Validate()
	}
	return nil
}

// Result carries whichever stage summary the run produced.
type Result struct {
	RunID   string
	Process usecase.ProcessResult
	Select  usecase.SelectResult
}

func Run(ctx context.Context, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("config: %w", err)
	}
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	runID := uuid.NewString()
	log = log.WithFields(logrus.Fields{"run_id": runID, "stage": string(cfg.Stage)})

	// adapters
	tables := csvtable.New()
	uc := usecase.New(usecase.Deps{
		Reader:   tables,
		Writer:   tables,
		Splitter: sentences.New(cfg.Abbreviations),
	})

	res := Result{RunID: runID}
	log.WithFields(logrus.Fields{"input": cfg.InputPath, "window_size": cfg.WindowSize}).Info("run started")

	var err error
	switch cfg.Stage {
	case StageProcess:
		res.Process, err = uc.Process(ctx, usecase.ProcessInput{
			InputPath:  cfg.InputPath,
			OutputPath: cfg.OutputPath,
			WindowSize: cfg.WindowSize,
			StepSize:   cfg.StepSize,
			Log:        log,
		})
	case StageSelect:
		res.Select, err = uc.Select(ctx, usecase.SelectInput{
			InputPath:  cfg.InputPath,
			OutputPath: cfg.OutputPath,
			Options: overlap.Options{
				WindowSize: cfg.WindowSize,
				Policy:     cfg.OverlapPolicy,
				Index:      cfg.IndexMode,
			},
			Log: log,
		})
	}
	if err != nil {
		log.WithError(err).Error("run failed")
		return res, err
	}
	return res, nil
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return absA == absB, nil
}

// ensure adapters implement ports
var _ ports.TableReader = (*csvtable.Adapter)(nil)
var _ ports.TableWriter = (*csvtable.Adapter)(nil)
