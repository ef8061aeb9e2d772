package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"invoicegen/m/internal/config"
)

func main() {
	_ = godotenv.Load()

	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "invoicegen",
		Usage:     "generate purchase orders, invoices and receipts",
		Writer:    stdout,
		ErrWriter: stderr,
		// Exit codes are decided in main so the app can run inside tests.
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			generateCommand(),
			serveCommand(),
			teleportCommand(),
		},
	}
}

func exitCode(err error) int {
	var coder cli.ExitCoder
	if errors.As(err, &coder) && coder.ExitCode() != 0 {
		return coder.ExitCode()
	}
	return 1
}

// loadConfig reads the environment configuration and installs a text logger
// on w at the configured level.
func loadConfig(w io.Writer) config.Config {
	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel})))
	return cfg
}
