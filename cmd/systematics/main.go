package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/systematics/internal/builder"
	"github.com/alexanderramin/systematics/internal/cli"
	"github.com/alexanderramin/systematics/internal/cli/formatter"
	"github.com/alexanderramin/systematics/internal/config"
	"github.com/alexanderramin/systematics/internal/logging"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger, closeLog, err := logging.New(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	format, err := formatter.ParseFormat(cfg.Format)
	if err != nil {
		logger.Warn("ignoring SYSTEMATICS_FORMAT", "value", cfg.Format, "error", err)
		format = formatter.FormatText
	}

	cli.ApplyColorMode(cfg.Color)

	app := &cli.App{
		Logger:   logger,
		Observer: builder.NewLogObserver(logger),
		Format:   format,
	}

	// Form mode needs a terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
