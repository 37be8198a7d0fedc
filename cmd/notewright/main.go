package main

import (
	"fmt"
	"os"

	"github.com/calebsorensen/notewright/internal/cli"
	"github.com/calebsorensen/notewright/internal/generation"
	"github.com/calebsorensen/notewright/internal/llm"
	"github.com/calebsorensen/notewright/internal/roster"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env next to the binary; real env vars win.
	_ = godotenv.Load()

	cfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	client := llm.NewClient(cfg, observer)

	app := &cli.App{
		Store: roster.NewStore(),
		Gen:   generation.NewService(client),
		Out:   os.Stdout,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
