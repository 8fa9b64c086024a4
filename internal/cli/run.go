package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/forPelevin/argseg/internal/config"
	"github.com/forPelevin/argseg/internal/domain/overlap"
	"github.com/forPelevin/argseg/internal/pipeline"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func runProcess(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("abbreviations") {
		st.Abbreviations, _ = cmd.Flags().GetStringSlice("abbreviations")
	}
	if len(args) > 2 {
		if st.WindowSize, err = positiveArg(cmd, "window_size", args[2]); err != nil {
			return err
		}
	}
	if len(args) > 3 {
		if st.StepSize, err = positiveArg(cmd, "step_size", args[3]); err != nil {
			return err
		}
	}

	log, err := newLogger(st)
	if err != nil {
		return err
	}
	return execute(cmd, pipeline.Config{
		Stage:         pipeline.StageProcess,
		InputPath:     args[0],
		OutputPath:    args[1],
		WindowSize:    st.WindowSize,
		StepSize:      st.StepSize,
		Abbreviations: st.Abbreviations,
		Log:           log,
	})
}

func runSelect(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("overlap-policy"); v != "" {
		st.OverlapPolicy = strings.ToLower(v)
	}
	if v, _ := cmd.Flags().GetString("index-mode"); v != "" {
		st.IndexMode = strings.ToLower(v)
	}
	if len(args) > 2 {
		if st.WindowSize, err = positiveArg(cmd, "window_size", args[2]); err != nil {
			return err
		}
	}

	log, err := newLogger(st)
	if err != nil {
		return err
	}
	return execute(cmd, pipeline.Config{
		Stage:         pipeline.StageSelect,
		InputPath:     args[0],
		OutputPath:    args[1],
		WindowSize:    st.WindowSize,
		OverlapPolicy: overlap.Policy(st.OverlapPolicy),
		IndexMode:     overlap.IndexMode(st.IndexMode),
		Log:           log,
	})
}

func execute(cmd *cobra.Command, cfg pipeline.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := pipeline.Run(ctx, cfg)
	if err != nil {
		return err
	}
	switch cfg.Stage {
	case pipeline.StageProcess:
		fmt.Fprintf(cmd.OutOrStdout(), "Processed data saved to %s (%d windows from %d documents)\n",
			cfg.OutputPath, res.Process.Windows, res.Process.Documents)
	case pipeline.StageSelect:
		fmt.Fprintf(cmd.OutOrStdout(), "Selected segments saved to %s (%d segments)\n",
			cfg.OutputPath, res.Select.Segments)
	}
	return nil
}

func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	path, _ := cmd.Flags().GetString("config")
	st, err := config.Load(path)
	if err != nil {
		return config.Settings{}, fmt.Errorf("config: %w", err)
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		st.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		st.LogFormat = strings.ToLower(v)
	}
	return st, nil
}

func positiveArg(cmd *cobra.Command, name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, usageError(cmd, fmt.Sprintf("%s must be an integer >= 1, got %q", name, raw))
	}
	return n, nil
}

func newLogger(st config.Settings) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(st.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(lvl)
	switch st.LogFormat {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		l.SetFormatter(&logrus.TextFormatter{DisableColors: os.Getenv("NO_COLOR") != "", FullTimestamp: true})
	default:
		return nil, fmt.Errorf("config: unknown log format %q", st.LogFormat)
	}
	return l, nil
}
