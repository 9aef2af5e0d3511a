package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dillipbehera-ai/hadoop/internal/analysis"
	"github.com/dillipbehera-ai/hadoop/internal/llm"
)

type stubProvider struct {
	text string
	err  error
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Complete(ctx context.Context, req *llm.Request) (*llm.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llm.Response{Text: s.text}, nil
}

func newGenerator(p llm.Provider) *Generator {
	return NewGenerator(nil, analysis.New(p))
}

func TestGenerate_EmptyLog(t *testing.T) {
	t.Parallel()

	out := newGenerator(nil).Generate(context.Background(), "")
	if out.Report != EmptyLogNotice {
		t.Fatalf("Report: got %q want %q", out.Report, EmptyLogNotice)
	}
	if len(out.Lines) != 1 {
		t.Fatalf("Lines: got %v", out.Lines)
	}
	if out.Matched != 0 || out.Analyzed {
		t.Fatalf("Outcome: got %+v", out)
	}
}

func TestGenerate_OutOfMemoryOnce(t *testing.T) {
	t.Parallel()

	log := "OutOfMemoryError here\nand OUTOFMEMORYERROR again\nand outofmemoryerror once more"
	out := newGenerator(nil).Generate(context.Background(), log)

	count := 0
	for _, line := range out.Lines {
		if strings.Contains(line, "ran out of memory") {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("out-of-memory message: appeared %d times in %v", count, out.Lines)
	}
}

func TestGenerate_ExitStatusSubstitution(t *testing.T) {
	t.Parallel()

	out := newGenerator(nil).Generate(context.Background(), "Task failed with exit status 137")
	if !strings.Contains(out.Report, "exit status 137") {
		t.Fatalf("Report: %q does not mention the captured code", out.Report)
	}
}

func TestGenerate_NoMatchNoCredential(t *testing.T) {
	t.Parallel()

	out := newGenerator(nil).Generate(context.Background(), "nothing interesting happened")

	want := []string{
		analysis.SkippedNotice,
		FallbackInstruction,
		ClosingGuidance,
	}
	if len(out.Lines) != len(want) {
		t.Fatalf("Lines: got %v", out.Lines)
	}
	for i := range want {
		if out.Lines[i] != want[i] {
			t.Fatalf("Lines[%d]: got %q want %q", i, out.Lines[i], want[i])
		}
	}
	if out.Matched != 0 || out.Analyzed {
		t.Fatalf("Outcome: got %+v", out)
	}
}

func TestGenerate_SparkConnectionRefusedScenario(t *testing.T) {
	t.Parallel()

	out := newGenerator(nil).Generate(context.Background(),
		"SparkException: Connection refused while accessing HDFS")

	want := []string{
		"Spark could not connect to a required service. Verify network settings and service endpoints.",
		"Spark reported a generic error. Inspect earlier log entries for a more specific cause.",
		analysis.SkippedNotice,
		ClosingGuidance,
	}
	if len(out.Lines) != len(want) {
		t.Fatalf("Lines: got %v", out.Lines)
	}
	for i := range want {
		if out.Lines[i] != want[i] {
			t.Fatalf("Lines[%d]: got %q want %q", i, out.Lines[i], want[i])
		}
	}
	// Matches exist, so no generic fallback.
	if strings.Contains(out.Report, FallbackInstruction) {
		t.Fatalf("Report: unexpected fallback instruction in %q", out.Report)
	}
	if out.Matched != 2 {
		t.Fatalf("Matched: got %d want 2", out.Matched)
	}
}

func TestGenerate_AnalysisLinesAppended(t *testing.T) {
	t.Parallel()

	gen := newGenerator(&stubProvider{text: "Summary line one.\nSummary line two."})
	out := gen.Generate(context.Background(), "OutOfMemoryError")

	want := []string{
		"The Spark job ran out of memory. Increase executor memory or reduce data size.",
		"Summary line one.",
		"Summary line two.",
		ClosingGuidance,
	}
	if len(out.Lines) != len(want) {
		t.Fatalf("Lines: got %v", out.Lines)
	}
	for i := range want {
		if out.Lines[i] != want[i] {
			t.Fatalf("Lines[%d]: got %q want %q", i, out.Lines[i], want[i])
		}
	}
	if !out.Analyzed {
		t.Fatalf("Analyzed: expected true")
	}
}

func TestGenerate_AnalysisFailureBecomesLine(t *testing.T) {
	t.Parallel()

	gen := newGenerator(&stubProvider{err: errors.New("connection reset")})
	out := gen.Generate(context.Background(), "nothing known")

	joined := out.Report
	if !strings.Contains(joined, "connection reset") {
		t.Fatalf("Report: failure reason missing: %q", joined)
	}
	// A failed analysis is no concrete cause either; the fallback applies.
	if !strings.Contains(joined, FallbackInstruction) {
		t.Fatalf("Report: fallback missing: %q", joined)
	}
	if !strings.HasSuffix(joined, ClosingGuidance) {
		t.Fatalf("Report: closing guidance not last: %q", joined)
	}
}

func TestGenerate_NeverExceedsMaxLines(t *testing.T) {
	t.Parallel()

	var long strings.Builder
	for i := 0; i < 200; i++ {
		fmt.Fprintf(&long, "analysis line %d\n", i)
	}

	log := strings.Join([]string{
		"OutOfMemoryError",
		"No space left on device",
		"Permission denied",
		"Connection refused",
		"SparkException",
		"Task failed with exit status 1",
	}, "\n")

	out := newGenerator(&stubProvider{text: long.String()}).Generate(context.Background(), log)
	if len(out.Lines) != MaxLines {
		t.Fatalf("Lines: got %d want %d", len(out.Lines), MaxLines)
	}
	if got := strings.Count(out.Report, "\n"); got != MaxLines-1 {
		t.Fatalf("Report newlines: got %d want %d", got, MaxLines-1)
	}
	// Earliest entries are retained: all six pattern messages first.
	if out.Matched != 6 {
		t.Fatalf("Matched: got %d want 6", out.Matched)
	}
	if !strings.Contains(out.Lines[0], "ran out of memory") {
		t.Fatalf("Lines[0]: got %q", out.Lines[0])
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	gen := newGenerator(&stubProvider{text: "Same analysis."})
	log := "SparkException: Task failed with exit status 42"

	first := gen.Generate(context.Background(), log)
	second := gen.Generate(context.Background(), log)
	if first.Report != second.Report {
		t.Fatalf("Generate: not deterministic:\n%q\n%q", first.Report, second.Report)
	}
}

func TestGenerate_PackageLevel(t *testing.T) {
	t.Parallel()

	if got := Generate(context.Background(), ""); got != EmptyLogNotice {
		t.Fatalf("Generate(empty): got %q", got)
	}
	got := Generate(context.Background(), "Permission denied")
	if !strings.Contains(got, "permission issues") {
		t.Fatalf("Generate: got %q", got)
	}
}
