package config

import (
	"fmt"
	"strings"

	"github.com/forPelevin/argseg/internal/domain/sentences"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment variable, e.g. ARGSEG_WINDOW_SIZE.
const EnvPrefix = "ARGSEG"

const (
	KeyWindowSize    = "window_size"
	KeyStepSize      = "step_size"
	KeyAbbreviations = "abbreviations"
	KeyOverlapPolicy = "overlap_policy"
	KeyIndexMode     = "index_mode"
	KeyLogLevel      = "log_level"
	KeyLogFormat     = "log_format"
)

type Settings struct {
	WindowSize    int
	StepSize      int
	Abbreviations []string
	OverlapPolicy string
	IndexMode     string
	LogLevel      string
	LogFormat     string
}

// Load resolves settings from defaults, an optional YAML/JSON/TOML file and
// ARGSEG_* environment variables, later sources winning.
func Load(configFile string) (Settings, error) {
	v := viper.New()
	v.SetDefault(KeyWindowSize, 3)
	v.SetDefault(KeyStepSize, 1)
	v.SetDefault(KeyAbbreviations, sentences.DefaultAbbreviations)
	v.SetDefault(KeyOverlapPolicy, "first")
	v.SetDefault(KeyIndexMode, "auto")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	ws, err := cast.ToIntE(v.Get(KeyWindowSize))
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", KeyWindowSize, err)
	}
	step, err := cast.ToIntE(v.Get(KeyStepSize))
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", KeyStepSize, err)
	}

	return Settings{
		WindowSize:    ws,
		StepSize:      step,
		Abbreviations: toList(v.Get(KeyAbbreviations)),
		OverlapPolicy: strings.ToLower(strings.TrimSpace(v.GetString(KeyOverlapPolicy))),
		IndexMode:     strings.ToLower(strings.TrimSpace(v.GetString(KeyIndexMode))),
		LogLevel:      strings.TrimSpace(v.GetString(KeyLogLevel)),
		LogFormat:     strings.ToLower(strings.TrimSpace(v.GetString(KeyLogFormat))),
	}, nil
}

// toList accepts a comma-separated string (environment) or a list (file).
func toList(raw any) []string {
	var parts []string
	if s, ok := raw.(string); ok {
		parts = strings.Split(s, ",")
	} else {
		parts = cast.ToStringSlice(raw)
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
