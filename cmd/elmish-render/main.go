package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vcrobe/elmish/internal/cli"
	"github.com/vcrobe/elmish/internal/config"
	"github.com/vcrobe/elmish/internal/ctxlog"
	"github.com/vcrobe/elmish/internal/replay"
)

// main is the entrypoint for the elmish-render tool.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, replays the scenario and writes the markup to outW, or
// to the file named by -out. Logs go to logW.
func run(outW, logW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := appConfig.NewLogger(logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	sc, err := config.Load(ctx, appConfig.ScenarioPath)
	if err != nil {
		return err
	}

	w := outW
	if appConfig.OutputPath != "-" {
		f, err := os.Create(appConfig.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		w = f
	}

	return replay.Run(ctx, sc, w)
}
