package sentences

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultAbbreviations are the title abbreviations after which a period does
// not end a sentence.
var DefaultAbbreviations = []string{"Mr", "Mrs", "Dr", "Ms", "Prof"}

// Splitter breaks text into sentences at '.', '?' or '!' followed by
// whitespace. A split is suppressed when the punctuation directly follows
// one of the configured abbreviations as a whole word (case-insensitive).
type Splitter struct {
	abbrevs []string
}

func New(abbrevs []string) *Splitter {
	if abbrevs == nil {
		abbrevs = DefaultAbbreviations
	}
	out := make([]string, 0, len(abbrevs))
	for _, a := range abbrevs {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		out = append(out, a)
	}
	return &Splitter{abbrevs: out}
}

// Split returns the trimmed sentences of text in order of appearance.
// Empty text yields no sentences.
func (s *Splitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var out []string
	start := 0
	prev := rune(-1)
	for i, r := range text {
		if unicode.IsSpace(r) && isTerminal(prev) && !s.afterAbbrev(text, i-utf8.RuneLen(prev)) {
			out = append(out, strings.TrimSpace(text[start:i]))
			start = i + utf8.RuneLen(r)
		}
		prev = r
	}
	out = append(out, strings.TrimSpace(text[start:]))
	return out
}

func isTerminal(r rune) bool {
	return r == '.' || r == '?' || r == '!'
}

// afterAbbrev reports whether text[:punct] ends with a configured
// abbreviation that starts at a word boundary.
func (s *Splitter) afterAbbrev(text string, punct int) bool {
	head := text[:punct]
	for _, a := range s.abbrevs {
		k := len(head) - len(a)
		if k < 0 || !strings.EqualFold(head[k:], a) {
			continue
		}
		if k == 0 {
			return true
		}
		before, _ := utf8.DecodeLastRuneInString(head[:k])
		if !isWordRune(before) {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
