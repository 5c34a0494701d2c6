package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zspawn/internal/cli"
	"github.com/zarlcorp/zspawn/internal/config"
	"github.com/zarlcorp/zspawn/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zspawn"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	if len(os.Args) > 1 {
		runCLI(ctx, os.Args[1])
		_ = app.Close()
		return
	}

	if !cli.Interactive() {
		cli.CmdRun(ctx)
		_ = app.Close()
		return
	}

	if err := runTUI(ctx); err != nil {
		slog.Error("run", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(ctx context.Context, cmd string) {
	switch cmd {
	case "version":
		fmt.Printf("zspawn %s\n", version)
	case "run":
		cli.CmdRun(ctx)
	case "sample":
		cli.CmdSample(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "zspawn: unknown command %q\n", cmd)
		os.Exit(1)
	}
}

func runTUI(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// the progress view owns the terminal
	r, err := cli.NewRunner(ctx, cfg, cli.NewLogger(io.Discard))
	if err != nil {
		return err
	}

	res, err := tui.Run(ctx, version, r, cli.EventCount)
	if err != nil {
		return err
	}

	fmt.Println(res.Summary())
	if !res.UploadedOK() {
		return fmt.Errorf("%w (%d of %d attempts)", cli.ErrUploadsFailed, len(res.Failures), res.Attempts)
	}
	return nil
}
