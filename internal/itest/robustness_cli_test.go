//go:build integration

package itest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type robustCase struct {
	name            string
	args            []string
	env             map[string]string
	wantContains    []string
	wantNotContains []string
}

func TestRobustness_ArgsValidation(t *testing.T) {
	tmp := t.TempDir()
	in := writeFixture(t, tmp, "in.csv", "text\nOne. Two. Three.\n")
	out := filepath.Join(tmp, "out.csv")

	cases := []robustCase{
		{
			name:         "no args",
			wantContains: []string{"invalid arguments: a subcommand is required", "process <input> <output>"},
		},
		{
			name:         "unknown subcommand",
			args:         []string{"train", in, out},
			wantContains: []string{
				`invalid arguments: unknown command "train"`,
				"usage:",
				"process <input> <output> [window_size] [step_size]",
				"select <input> <output> [window_size]",
			},
		},
		{
			name:         "process without output",
			args:         []string{"process", in},
			wantContains: []string{"accepts between 2 and 4 arg(s), received 1"},
		},
		{
			name:         "window size not int",
			args:         []string{"process", in, out, "big"},
			wantContains: []string{`window_size must be an integer >= 1, got "big"`},
		},
		{
			name:         "unknown flag",
			args:         []string{"select", in, out, "--wat"},
			wantContains: []string{"invalid arguments: unknown flag: --wat", "select <input> <output> [window_size]"},
		},
		{
			name:         "bad window size from env",
			args:         []string{"process", in, out},
			env:          map[string]string{"ARGSEG_WINDOW_SIZE": "0"},
			wantContains: []string{"config: window size must be > 0"},
		},
		{
			name:         "bad index mode from env",
			args:         []string{"select", in, out},
			env:          map[string]string{"ARGSEG_INDEX_MODE": "sentence"},
			wantContains: []string{`unknown index mode "sentence"`},
		},
	}
	runRobustCases(t, cases, out)
}

func TestRobustness_InvalidInput(t *testing.T) {
	tmp := t.TempDir()
	out := filepath.Join(tmp, "out.csv")
	noText := writeFixture(t, tmp, "speech.csv", "speech\nHello.\n")
	badLabel := writeFixture(t, tmp, "scored.csv", "id,text,argument_predictions,argument_confidence\n0,a,Claim,0.5\n")
	noConf := writeFixture(t, tmp, "noconf.csv", "id,text,argument_predictions\n0,a,Argument\n")

	cases := []robustCase{
		{
			name:         "missing input path",
			args:         []string{"process", filepath.Join(tmp, "does-not-exist.csv"), out},
			wantContains: []string{"config: stat input:"},
		},
		{
			name:         "input is directory",
			args:         []string{"process", tmp, out},
			wantContains: []string{"is a directory"},
		},
		{
			name:         "missing text column",
			args:         []string{"process", noText, out},
			wantContains: []string{`column "text": missing field`},
		},
		{
			name:            "unknown label",
			args:            []string{"select", badLabel, out},
			wantContains:    []string{"malformed score", `unknown label "Claim"`},
			wantNotContains: []string{"Selected segments saved"},
		},
		{
			name:         "missing confidence column",
			args:         []string{"select", noConf, out},
			wantContains: []string{`column "argument_confidence": missing field`},
		},
	}
	runRobustCases(t, cases, out)
}

func runRobustCases(t *testing.T, cases []robustCase, out string) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := runCLI(t, tc.args, tc.env)
			if res.exitCode == 0 {
				t.Fatalf("expected non-zero exit code, got 0\noutput:\n%s", res.output)
			}
			for _, want := range tc.wantContains {
				if !strings.Contains(res.output, want) {
					t.Fatalf("expected output to contain %q\noutput:\n%s", want, res.output)
				}
			}
			for _, notWant := range tc.wantNotContains {
				if strings.Contains(res.output, notWant) {
					t.Fatalf("expected output to not contain %q\noutput:\n%s", notWant, res.output)
				}
			}
			if _, err := os.Stat(out); !os.IsNotExist(err) {
				t.Fatalf("failed run must not create output, stat err=%v", err)
			}
		})
	}
}
