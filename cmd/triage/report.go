package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/dillipbehera-ai/hadoop/internal/analysis"
	"github.com/dillipbehera-ai/hadoop/internal/llm"
	"github.com/dillipbehera-ai/hadoop/internal/report"
)

type reportOptions struct {
	timeout    time.Duration
	noAnalysis bool
}

func newReportCmd(st *cliState) *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:   "report [logfile]",
		Short: "Generate a failure report from an Airflow task log",
		Long: "Reads log text from the given file (or standard input when no file " +
			"is given), scans it for known failure signatures, optionally asks a " +
			"language model for a root-cause summary, and prints up to 50 lines " +
			"of troubleshooting instructions.",
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadState(st)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, st, &opts, args)
		},
	}

	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "analysis timeout (default from config)")
	cmd.Flags().BoolVar(&opts.noAnalysis, "no-analysis", false, "skip model analysis even if a credential is configured")

	return cmd
}

func runReport(cmd *cobra.Command, st *cliState, opts *reportOptions, args []string) error {
	if st == nil || st.cfg == nil {
		return fmt.Errorf("report: missing config (internal error)")
	}
	if opts == nil {
		return fmt.Errorf("report: nil options")
	}

	logText, err := readLogSource(cmd, args)
	if err != nil {
		return err
	}

	var provider llm.Provider
	if !opts.noAnalysis {
		provider, err = llm.DefaultProviderFromConfig(st.cfg)
		if err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}

	analyzer := analysis.New(provider,
		analysis.WithMaxTokens(st.cfg.Analysis.MaxTokens),
		analysis.WithTemperature(st.cfg.Analysis.Temperature),
	)
	gen := report.NewGenerator(nil, analyzer)

	timeout := opts.timeout
	if timeout <= 0 {
		timeout = st.cfg.Analysis.Timeout
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	outcome := gen.Generate(ctx, logText)
	fmt.Fprintln(cmd.OutOrStdout(), outcome.Report)
	return nil
}

// readLogSource reads the log from the file argument or standard input.
// An unreadable source is the one fatal error the tool reports.
func readLogSource(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("report: read log %q: %w", args[0], err)
		}
		return string(b), nil
	}

	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("report: read stdin: %w", err)
	}
	return string(b), nil
}
