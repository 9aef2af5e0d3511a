package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/dillipbehera-ai/hadoop/api"
	"github.com/dillipbehera-ai/hadoop/internal/analysis"
	"github.com/dillipbehera-ai/hadoop/internal/config"
	"github.com/dillipbehera-ai/hadoop/internal/llm"
	"github.com/dillipbehera-ai/hadoop/internal/report"
)

var (
	osExit                 = os.Exit
	stderrWriter io.Writer = os.Stderr

	loadConfig                = config.Load
	defaultProviderFromConfig = llm.DefaultProviderFromConfig
	newServer                 = api.NewServer
	runServer                 = (*api.Server).Run
)

func main() {
	_ = godotenv.Load()
	osExit(runMain(os.Args[1:]))
}

func runMain(args []string) int {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(stderrWriter)

	var addr string
	var configPath string
	fs.StringVar(&addr, "addr", "", "listen address (default from config)")
	fs.StringVar(&configPath, "config", "", "path to config file")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintln(stderrWriter, err)
		return 1
	}

	provider, err := defaultProviderFromConfig(cfg)
	if err != nil {
		fmt.Fprintln(stderrWriter, err)
		return 1
	}

	analyzer := analysis.New(provider,
		analysis.WithMaxTokens(cfg.Analysis.MaxTokens),
		analysis.WithTemperature(cfg.Analysis.Temperature),
	)
	gen := report.NewGenerator(nil, analyzer)

	srv, err := newServer(cfg, gen)
	if err != nil {
		fmt.Fprintln(stderrWriter, err)
		return 1
	}

	if addr == "" {
		addr = cfg.Server.Addr
	}
	if err := runServer(srv, addr); err != nil {
		fmt.Fprintln(stderrWriter, err)
		return 1
	}

	return 0
}
