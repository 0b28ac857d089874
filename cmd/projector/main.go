// Package main implements the projector command, a key-value store whose
// values are scoped to directories and inherited by their descendants.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/phrazzld/projector/internal/cli"
	"github.com/phrazzld/projector/internal/command"
	"github.com/phrazzld/projector/internal/config"
	"github.com/phrazzld/projector/internal/platform/logger"
	"github.com/phrazzld/projector/internal/store"
	"github.com/spf13/afero"
)

// main is the entry point for the projector binary.
func main() {
	// Use a minimal logger until the configured one is set up.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "projector: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// run wires the application together so it can be driven from tests.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, stdout)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	cfg, err := config.Resolve(*opts)
	if err != nil {
		if errors.Is(err, config.ErrUsage) {
			return &cli.ExitError{Code: cli.ExitUsage, Message: err.Error()}
		}
		return fmt.Errorf("failed to resolve configuration: %w", err)
	}

	l, err := logger.Setup(logger.LoggerConfig{Level: cfg.LogLevel, Output: stderr})
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	ctx = logger.WithLogger(ctx, l)

	l.DebugContext(ctx, "configuration resolved",
		"operation", cfg.Operation.Name(),
		"store_path", cfg.StorePath,
		"working_dir", cfg.WorkingDir)

	s := store.Load(ctx, afero.NewOsFs(), cfg.StorePath, cfg.WorkingDir)
	return command.New(s, stdout).Execute(ctx, cfg.Operation)
}

// exitCode maps an error returned by run onto a process exit status.
func exitCode(err error) int {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return cli.ExitFailure
}
