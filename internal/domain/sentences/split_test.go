package sentences

import (
	"reflect"
	"testing"
)

func TestSplit_Table(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"single", "one sentence without end", []string{"one sentence without end"}},
		{
			"mixed punctuation",
			"is it true? yes! it is.",
			[]string{"is it true?", "yes!", "it is."},
		},
		{
			"title abbreviation",
			"mr. smith spoke. he argued well. the committee agreed.",
			[]string{"mr. smith spoke.", "he argued well.", "the committee agreed."},
		},
		{
			"all abbreviations",
			"mrs. a met dr. b and ms. c with prof. d. then left.",
			[]string{"mrs. a met dr. b and ms. c with prof. d.", "then left."},
		},
		{
			"abbreviation must be whole word",
			"call the hummr. now go.",
			[]string{"call the hummr.", "now go."},
		},
		{
			"no whitespace after punctuation",
			"version 1.2 shipped.next",
			[]string{"version 1.2 shipped.next"},
		},
		{
			"extra whitespace is trimmed",
			"first.   second.\tthird",
			[]string{"first.", "second.", "third"},
		},
		{
			"newline counts as whitespace",
			"first.\nsecond",
			[]string{"first.", "second"},
		},
	}
	sp := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sp.Split(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Split(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSplit_CustomAbbreviations(t *testing.T) {
	sp := New([]string{"Sen", " ", "Rep"})
	got := sp.Split("sen. warren asked. rep. jordan answered. mr. x left.")
	want := []string{"sen. warren asked.", "rep. jordan answered.", "mr.", "x left."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected sentences: %q", got)
	}
}

func TestSplit_AbbreviationMatchIgnoresCase(t *testing.T) {
	got := New(nil).Split("Dr. Who arrived. He left.")
	want := []string{"Dr. Who arrived.", "He left."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected sentences: %q", got)
	}
}
