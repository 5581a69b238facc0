package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/qualbench/internal/app"
	"github.com/vk/qualbench/internal/cli"
	"github.com/vk/qualbench/internal/forks"
)

// main is the entrypoint for the qualbench harness.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	code, err := run(os.Stderr, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
	}
	os.Exit(code)
}

// run encapsulates the harness logic for easier testing and error handling.
func run(outW io.Writer, args []string) (int, error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			return exitErr.Code, fmt.Errorf("%s", exitErr.Message)
		}
		return forks.ExitUsage, err
	}
	if shouldExit {
		return forks.ExitSuccess, nil
	}

	harness := app.NewApp(outW, appConfig)
	return harness.Run(context.Background())
}
