package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dillipbehera-ai/hadoop/internal/mathutil"
)

func newFactorialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factorial <n>",
		Short: "Print the factorial of a non-negative integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("factorial: %q is not an integer", args[0])
			}
			result, err := mathutil.Factorial(n)
			if err != nil {
				return fmt.Errorf("factorial: n must be >= 0")
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.String())
			return nil
		},
	}
}
