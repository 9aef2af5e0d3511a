package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dillipbehera-ai/hadoop/internal/config"
)

type cliState struct {
	configPath string
	cfg        *config.Config
}

var (
	osExit                 = os.Exit
	stderrWriter io.Writer = os.Stderr
)

func main() {
	// Credentials may live in a local .env; a missing file is fine.
	_ = godotenv.Load()

	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderrWriter, err)
		osExit(1)
	}
}

func newRootCmd() *cobra.Command {
	st := &cliState{}

	root := &cobra.Command{
		Use:           "triage",
		Short:         "Generate troubleshooting reports for failed Airflow tasks",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&st.configPath, "config", "", "path to config file")

	root.AddCommand(newReportCmd(st))
	root.AddCommand(newPatternsCmd())
	root.AddCommand(newFactorialCmd())
	return root
}

func loadState(st *cliState) error {
	if st == nil {
		return fmt.Errorf("triage: nil cli state")
	}
	cfg, err := config.Load(st.configPath)
	if err != nil {
		return err
	}
	st.cfg = cfg
	return nil
}
