//go:build integration

package itest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestE2E(t *testing.T) {
	tmp := t.TempDir()
	in := writeFixture(t, tmp, "hearings.csv", "text\n"+
		"\"Mr. Smith spoke. He argued well. The committee agreed.\"\n"+
		"\"Prof. Jones objected! Was it fair? Nobody knew. The vote passed.\"\n")

	windows := filepath.Join(tmp, "windows.csv")
	res := runCLI(t, []string{"process", in, windows, "2", "1"}, nil)
	if res.exitCode != 0 {
		t.Fatalf("process failed:\n%s", res.output)
	}
	if !strings.Contains(res.stdout, "Processed data saved to "+windows) {
		t.Fatalf("unexpected stdout: %q", res.stdout)
	}
	b, err := os.ReadFile(windows)
	if err != nil {
		t.Fatalf("read windows: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 1+2+3 {
		t.Fatalf("expected 5 windows plus header, got:\n%s", b)
	}
	if lines[1] != "0,mr. smith spoke. he argued well.,0,2" {
		t.Fatalf("unexpected first window: %q", lines[1])
	}

	// Label the windows the way the external classifier would.
	var scored strings.Builder
	scored.WriteString(lines[0] + ",argument_predictions,argument_confidence\n")
	confs := []string{"0.6", "0.9", "0.2", "0.7", "0.5"}
	labels := []string{"Argument", "Argument", "Non-argument", "Argument", "Argument"}
	for i, ln := range lines[1:] {
		scored.WriteString(ln + "," + labels[i] + "," + confs[i] + "\n")
	}
	scoredPath := writeFixture(t, tmp, "scored.csv", scored.String())

	segments := filepath.Join(tmp, "segments.csv")
	res = runCLI(t, []string{"select", scoredPath, segments, "2"}, nil)
	if res.exitCode != 0 {
		t.Fatalf("select failed:\n%s", res.output)
	}
	b, err = os.ReadFile(segments)
	if err != nil {
		t.Fatalf("read segments: %v", err)
	}
	want := "id,start_index,end_index,confidence,label,text\n" +
		"0,1,3,0.9,1,he argued well. the committee agreed.\n" +
		"1,1,3,0.7,1,was it fair? nobody knew.\n"
	if string(b) != want {
		t.Fatalf("segments file:\n%s\nwant:\n%s", b, want)
	}
}
