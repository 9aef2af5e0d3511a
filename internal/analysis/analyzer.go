package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dillipbehera-ai/hadoop/internal/llm"
)

// MaxLines caps the number of lines taken from the model's answer.
const MaxLines = 50

const systemPrompt = "You are an expert at analysing Apache Airflow and Spark logs. " +
	"Summarise why the job failed, provide root cause analysis, and " +
	"suggest code changes to resolve it in no more than 50 lines."

const (
	// SkippedNotice is reported when no credential is configured.
	SkippedNotice = "No analysis credential configured; skipping model analysis."

	failureNoticeFormat = "Model analysis request failed: %v"
)

// Result is the outcome of one analysis request. Exactly one of the
// variants applies: Err set means the request failed, Skipped means no
// provider was configured, otherwise Text holds the answer.
type Result struct {
	Text    string
	Err     error
	Skipped bool
}

// OK reports whether the result carries usable analysis text.
func (r Result) OK() bool {
	return r.Err == nil && !r.Skipped && strings.TrimSpace(r.Text) != ""
}

// Lines converts the result into report lines. Skip and failure
// variants become a single informational line; the error is never
// surfaced as an error value.
func (r Result) Lines() []string {
	switch {
	case r.Skipped:
		return []string{SkippedNotice}
	case r.Err != nil:
		return []string{fmt.Sprintf(failureNoticeFormat, r.Err)}
	}
	text := strings.TrimSpace(r.Text)
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Analyzer requests a free-text root-cause summary from a language
// model. A nil provider means no credential is configured; Analyze then
// reports the skip variant instead of calling out.
type Analyzer struct {
	provider    llm.Provider
	maxTokens   int
	temperature float64
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithMaxTokens sets the completion token budget.
func WithMaxTokens(n int) Option {
	return func(a *Analyzer) {
		if a != nil && n > 0 {
			a.maxTokens = n
		}
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) Option {
	return func(a *Analyzer) {
		if a != nil && t > 0 {
			a.temperature = t
		}
	}
}

func New(provider llm.Provider, opts ...Option) *Analyzer {
	a := &Analyzer{
		provider:    provider,
		temperature: 0.2,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// Analyze submits the log text for summarization. It never returns an
// error: provider failures are captured in the Result so the caller can
// degrade to an informational report line. One outbound call, no
// retries beyond the client's own behavior.
func (a *Analyzer) Analyze(ctx context.Context, log string) Result {
	if a == nil || a.provider == nil {
		return Result{Skipped: true}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	resp, err := a.provider.Complete(ctx, &llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: "user", Content: "Log excerpt:\n" + log},
		},
		MaxTokens:   a.maxTokens,
		Temperature: a.temperature,
	})
	if err != nil {
		return Result{Err: err}
	}
	if resp == nil {
		return Result{Err: errors.New("empty response")}
	}

	return Result{Text: truncateLines(strings.TrimSpace(resp.Text), MaxLines)}
}

func truncateLines(s string, max int) string {
	if s == "" || max <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= max {
		return s
	}
	return strings.Join(lines[:max], "\n")
}
