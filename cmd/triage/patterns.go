package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dillipbehera-ai/hadoop/internal/patterns"
)

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the built-in failure signatures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tPATTERN\tMESSAGE")
			for _, r := range patterns.Builtin().Rules() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, r.Pattern(), r.Message)
			}
			return tw.Flush()
		},
	}
}
