package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Delfictus/Prism-Tuning/internal/cli"
)

func main() {
	// Minimal logger until the command layer configures the real one.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run keeps the real entrypoint testable: it wires the writers and
// delegates to the command tree.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	return cli.New(outW, errW).Run(ctx, args)
}
