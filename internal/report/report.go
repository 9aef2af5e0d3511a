// Package report assembles troubleshooting reports for failed Airflow
// tasks from raw log text. The pipeline is fixed: known-signature
// matching, optional model analysis, fallback guidance, truncation.
package report

import (
	"context"
	"strings"

	"github.com/dillipbehera-ai/hadoop/internal/analysis"
	"github.com/dillipbehera-ai/hadoop/internal/patterns"
)

// MaxLines caps the assembled report.
const MaxLines = 50

const (
	// EmptyLogNotice is the whole report when no log text is supplied.
	EmptyLogNotice = "No log information provided."

	// FallbackInstruction is appended when neither pattern matching nor
	// model analysis produced a concrete cause.
	FallbackInstruction = "Could not determine a specific cause. Check the stack trace and " +
		"verify Spark configuration, resource allocation, and input data."

	// ClosingGuidance is always the report's last line (subject to the
	// line cap).
	ClosingGuidance = "For more detailed analysis, review the full executor logs and Airflow " +
		"task output around the failure time."
)

// Generator produces failure reports. It holds no mutable state; a
// report is a pure function of the table, the log text, and the
// analysis result.
type Generator struct {
	table    *patterns.Table
	analyzer *analysis.Analyzer
}

// NewGenerator builds a Generator. A nil table falls back to the
// built-in pattern table; a nil analyzer behaves like an analyzer with
// no credential (analysis skipped).
func NewGenerator(table *patterns.Table, analyzer *analysis.Analyzer) *Generator {
	if table == nil {
		table = patterns.Builtin()
	}
	if analyzer == nil {
		analyzer = analysis.New(nil)
	}
	return &Generator{table: table, analyzer: analyzer}
}

// Outcome carries the assembled report plus per-stage detail for
// callers that present more than the joined text.
type Outcome struct {
	Report   string   `json:"report"`
	Lines    []string `json:"lines"`
	Matched  int      `json:"matched"`
	Analyzed bool     `json:"analyzed"`
}

// Generate produces an Outcome for the given log text. It never fails:
// analysis errors degrade to informational lines and an empty log
// yields the fixed sentinel report.
func (g *Generator) Generate(ctx context.Context, log string) Outcome {
	if log == "" {
		return Outcome{
			Report: EmptyLogNotice,
			Lines:  []string{EmptyLogNotice},
		}
	}

	matches := g.table.Match(log)
	instructions := append([]string(nil), matches...)

	res := g.analyzer.Analyze(ctx, log)
	instructions = append(instructions, res.Lines()...)

	if len(matches) == 0 && !res.OK() {
		instructions = append(instructions, FallbackInstruction)
	}

	instructions = append(instructions, ClosingGuidance)

	if len(instructions) > MaxLines {
		instructions = instructions[:MaxLines]
	}

	return Outcome{
		Report:   strings.Join(instructions, "\n"),
		Lines:    instructions,
		Matched:  len(matches),
		Analyzed: res.OK(),
	}
}

// Generate is the package-level convenience over the built-in table
// with analysis disabled.
func Generate(ctx context.Context, log string) string {
	return NewGenerator(nil, nil).Generate(ctx, log).Report
}
