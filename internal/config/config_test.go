package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Settings{
		WindowSize:    3,
		StepSize:      1,
		Abbreviations: []string{"Mr", "Mrs", "Dr", "Ms", "Prof"},
		OverlapPolicy: "first",
		IndexMode:     "auto",
		LogLevel:      "info",
		LogFormat:     "text",
	}
	if !reflect.DeepEqual(s, want) {
		t.Fatalf("defaults = %+v, want %+v", s, want)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "argseg.yaml")
	yaml := "window_size: 5\nstep_size: 2\nabbreviations:\n  - Sen\n  - Rep\noverlap_policy: merge\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ARGSEG_STEP_SIZE", "4")
	t.Setenv("ARGSEG_INDEX_MODE", " Row ")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.WindowSize != 5 || s.StepSize != 4 {
		t.Fatalf("unexpected sizes: %+v", s)
	}
	if !reflect.DeepEqual(s.Abbreviations, []string{"Sen", "Rep"}) {
		t.Fatalf("unexpected abbreviations: %q", s.Abbreviations)
	}
	if s.OverlapPolicy != "merge" || s.IndexMode != "row" {
		t.Fatalf("unexpected modes: %+v", s)
	}
}

func TestLoad_EnvAbbreviationsAreCommaSeparated(t *testing.T) {
	t.Setenv("ARGSEG_ABBREVIATIONS", "Mr, Hon ,,Sen")
	s, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(s.Abbreviations, []string{"Mr", "Hon", "Sen"}) {
		t.Fatalf("unexpected abbreviations: %q", s.Abbreviations)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatalf("expected error for missing config file")
		}
	})
	t.Run("bad window size", func(t *testing.T) {
		t.Setenv("ARGSEG_WINDOW_SIZE", "three")
		if _, err := Load(""); err == nil {
			t.Fatalf("expected error for non-integer window size")
		}
	})
}
