// Package cli implements zspawn's command-line subcommands.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zspawn/internal/batch"
	"github.com/zarlcorp/zspawn/internal/config"
	"github.com/zarlcorp/zspawn/internal/objstore"
	"github.com/zarlcorp/zspawn/internal/synth"
	"golang.org/x/term"
)

// EventCount is the number of records generated per run.
const EventCount = 100

// ErrUploadsFailed is returned when a run finished but at least one upload
// was rejected.
var ErrUploadsFailed = errors.New("one or more uploads failed")

// Interactive reports whether stdout is a terminal.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// NewLogger returns a text slog logger writing to w.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// NewRunner wires configuration into a batch runner backed by the local
// output directory and the configured bucket.
func NewRunner(ctx context.Context, cfg config.Config, logger *slog.Logger) (*batch.Runner, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	store, err := objstore.New(ctx, cfg.Store())
	if err != nil {
		return nil, err
	}

	return &batch.Runner{
		Source: synth.New(synth.WithSeed(cfg.Seed), synth.WithClock(time.Now)),
		Files:  zfilesystem.NewOSFileSystem(cfg.OutputDir),
		Store:  store,
		Mode:   cfg.Mode(),
		Pace:   cfg.Pace,
		Now:    time.Now,
		Logger: logger,
	}, nil
}

// Run executes a batch of count records, printing the banner and the final
// status to w.
func Run(ctx context.Context, r *batch.Runner, count int, w io.Writer) (batch.Result, error) {
	fmt.Fprintln(w, "generating random user events as json files, locally and in the bucket")
	fmt.Fprintf(w, "%d events will be generated\n", count)

	res, err := r.Run(ctx, count)
	if err != nil {
		return res, err
	}

	fmt.Fprintln(w, res.Report())
	if !res.UploadedOK() {
		return res, ErrUploadsFailed
	}
	return res, nil
}

// CmdRun loads configuration and runs a batch with plain log output.
func CmdRun(ctx context.Context) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "zspawn: %v\n", err)
		os.Exit(1)
	}

	r, err := NewRunner(ctx, cfg, NewLogger(os.Stderr))
	if err != nil {
		fmt.Fprintf(os.Stderr, "zspawn: %v\n", err)
		os.Exit(1)
	}

	if _, err := Run(ctx, r, EventCount, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "zspawn: %v\n", err)
		os.Exit(1)
	}
}

// CmdSample generates and prints one record without persisting it.
func CmdSample(args []string) {
	g := synth.New()
	if err := writeSample(os.Stdout, g, hasFlag(args, "--pretty")); err != nil {
		fmt.Fprintf(os.Stderr, "zspawn: encode json: %v\n", err)
		os.Exit(1)
	}
}

func writeSample(w io.Writer, src batch.Source, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(src.Generate())
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if strings.EqualFold(a, flag) {
			return true
		}
	}
	return false
}
