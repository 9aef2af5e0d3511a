package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dillipbehera-ai/hadoop/internal/analysis"
	"github.com/dillipbehera-ai/hadoop/internal/report"
)

func clearCredentialEnv(t *testing.T) {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("ANTHROPIC_AUTH_TOKEN", "")
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestFactorialCmd(t *testing.T) {
	out, err := execute(t, "", "factorial", "10")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.TrimSpace(out) != "3628800" {
		t.Fatalf("output: got %q", out)
	}
}

func TestFactorialCmd_Invalid(t *testing.T) {
	if _, err := execute(t, "", "factorial", "abc"); err == nil {
		t.Fatalf("expected error for non-integer")
	}
	if _, err := execute(t, "", "factorial", "--", "-3"); err == nil {
		t.Fatalf("expected error for negative input")
	}
}

func TestPatternsCmd(t *testing.T) {
	out, err := execute(t, "", "patterns")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "out_of_memory") {
		t.Fatalf("output: missing rule names: %q", out)
	}
	if !strings.Contains(out, "OutOfMemoryError") {
		t.Fatalf("output: missing pattern expressions: %q", out)
	}
}

func TestReportCmd_FromFile(t *testing.T) {
	clearCredentialEnv(t)

	path := filepath.Join(t.TempDir(), "task.log")
	if err := os.WriteFile(path, []byte("Task failed with exit status 137\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, err := execute(t, "", "report", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "exit status 137") {
		t.Fatalf("output: got %q", out)
	}
	if !strings.Contains(out, analysis.SkippedNotice) {
		t.Fatalf("output: missing skip notice: %q", out)
	}
	if !strings.Contains(out, report.ClosingGuidance) {
		t.Fatalf("output: missing closing guidance: %q", out)
	}
}

func TestReportCmd_FromStdin(t *testing.T) {
	clearCredentialEnv(t)

	out, err := execute(t, "java.lang.OutOfMemoryError\n", "report")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "ran out of memory") {
		t.Fatalf("output: got %q", out)
	}
}

func TestReportCmd_EmptyStdin(t *testing.T) {
	clearCredentialEnv(t)

	out, err := execute(t, "", "report")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.TrimSpace(out) != report.EmptyLogNotice {
		t.Fatalf("output: got %q want the sentinel", out)
	}
}

func TestReportCmd_MissingFile(t *testing.T) {
	clearCredentialEnv(t)

	_, err := execute(t, "", "report", filepath.Join(t.TempDir(), "missing.log"))
	if err == nil {
		t.Fatalf("expected error for unreadable log file")
	}
	if !strings.Contains(err.Error(), "read log") {
		t.Fatalf("error: got %v", err)
	}
}

func TestReportCmd_NoAnalysisFlag(t *testing.T) {
	// Even with a credential in the environment, --no-analysis must not
	// construct a provider; the skip notice appears instead.
	t.Setenv("OPENAI_API_KEY", "k")

	out, err := execute(t, "Permission denied\n", "report", "--no-analysis")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, analysis.SkippedNotice) {
		t.Fatalf("output: missing skip notice: %q", out)
	}
}
