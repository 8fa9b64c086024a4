//go:build integration

package itest

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"
)

const cliTimeout = 60 * time.Second

type cliRunResult struct {
	exitCode int
	stdout   string
	output   string
}

// runCLI executes the argseg binary through `go run` from the module root.
func runCLI(t *testing.T, args []string, env map[string]string) cliRunResult {
	t.Helper()

	root := mustModuleRoot(t)
	ctx, cancel := context.WithTimeout(context.Background(), cliTimeout)
	defer cancel()

	cmdArgs := append([]string{"run", "./cmd/argseg"}, args...)
	cmd := exec.CommandContext(ctx, "go", cmdArgs...)
	cmd.Dir = root
	cmd.Env = withEnv(os.Environ(), map[string]string{"NO_COLOR": "1", "ARGSEG_LOG_LEVEL": "warn"}, env)

	var stdout, combined strings.Builder
	cmd.Stdout = multiWriter{&stdout, &combined}
	cmd.Stderr = &combined
	err := cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		t.Fatalf("command timed out after %s: go %s", cliTimeout, strings.Join(cmdArgs, " "))
	}

	res := cliRunResult{stdout: stdout.String(), output: combined.String()}
	if err == nil {
		return res
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.exitCode = exitErr.ExitCode()
		return res
	}
	t.Fatalf("run command: %v\noutput:\n%s", err, res.output)
	return cliRunResult{}
}

type multiWriter []*strings.Builder

func (m multiWriter) Write(p []byte) (int, error) {
	for _, b := range m {
		b.Write(p)
	}
	return len(p), nil
}

func withEnv(base []string, overrides ...map[string]string) []string {
	env := make(map[string]string, len(base))
	for _, kv := range base {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}
	for _, set := range overrides {
		for k, v := range set {
			env[k] = v
		}
	}
	out := make([]string, 0, len(env))
	for k, v := range env {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}

func mustModuleRoot(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	for dir := wd; ; dir = filepath.Dir(dir) {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		if filepath.Dir(dir) == dir {
			break
		}
	}
	t.Fatalf("could not locate go.mod above %s", wd)
	return ""
}

func writeFixture(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return p
}
