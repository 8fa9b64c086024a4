package windows

import (
	"strings"

	"github.com/forPelevin/argseg/internal/types"
)

type SentenceSplitter interface {
	Split(text string) []string
}

// Config controls window generation.
type Config struct {
	WindowSize int // Sentences per window.
	StepSize   int // Sentences to advance between window starts.
}

// DefaultConfig returns the window and step sizes used when none are given.
func DefaultConfig() Config {
	return Config{WindowSize: 3, StepSize: 1}
}

// Normalize lowercases text and trims surrounding whitespace. Nothing else is
// touched.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Build emits the windows of every document, in document order and then by
// increasing start index. Documents with fewer sentences than the window
// size contribute nothing.
func Build(docs []types.Document, sp SentenceSplitter, cfg Config) []types.Window {
	if cfg.WindowSize <= 0 || cfg.StepSize <= 0 {
		return nil
	}
	var out []types.Window
	for _, d := range docs {
		out = append(out, ForDocument(d, sp, cfg)...)
	}
	return out
}

// ForDocument emits the windows of a single document.
func ForDocument(d types.Document, sp SentenceSplitter, cfg Config) []types.Window {
	sents := sp.Split(Normalize(d.Text))
	n := Count(len(sents), cfg)
	if n == 0 {
		return nil
	}
	out := make([]types.Window, 0, n)
	for start := 0; start+cfg.WindowSize <= len(sents); start += cfg.StepSize {
		end := start + cfg.WindowSize
		out = append(out, types.Window{
			DocID:      d.ID,
			StartIndex: start,
			EndIndex:   end,
			Text:       strings.Join(sents[start:end], " "),
		})
	}
	return out
}

// Count is the number of windows produced for n sentences.
func Count(n int, cfg Config) int {
	if cfg.WindowSize <= 0 || cfg.StepSize <= 0 || n < cfg.WindowSize {
		return 0
	}
	return (n-cfg.WindowSize)/cfg.StepSize + 1
}
