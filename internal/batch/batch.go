// Package batch generates a run of synthetic records, writes each one to a
// local file and uploads it to an object store. Upload failures are recorded
// and the run continues; a local write failure ends the run.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"time"

	"github.com/zarlcorp/zspawn/internal/event"
)

const (
	// DefaultPrefix is the file and object name prefix.
	DefaultPrefix = "event_customers_mobile"

	// TimestampLayout formats the name suffix as day_month_year_hour_minute_second.
	TimestampLayout = "02_01_2006_15_04_05"

	filePerm fs.FileMode = 0o644
)

// Source produces records.
type Source interface {
	Generate() event.Record
}

// FileWriter writes a named file. zfilesystem.ReadWriteFileFS satisfies it.
type FileWriter interface {
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// Store uploads an object under key.
type Store interface {
	Put(ctx context.Context, key string, body []byte) error
}

// Runner holds the collaborators and settings for a batch run.
type Runner struct {
	Source Source
	Files  FileWriter
	Store  Store

	Mode   UploadMode
	Pace   time.Duration // delay before each local write
	Prefix string        // defaults to DefaultPrefix

	Now        func() time.Time // defaults to time.Now
	Logger     *slog.Logger     // defaults to a discarding logger
	OnProgress func(Progress)   // optional

	sleep func(context.Context, time.Duration) error // defaults to sleep
}

// Run generates count records. For each one it writes a local file and then
// uploads according to r.Mode. In replay mode each iteration's name suffix
// is a later second than the one before it, waiting for the clock if needed,
// so replayed keys never overwrite an earlier iteration's objects.
// The returned Result is valid even when err is non-nil; err is a *WriteError
// or the context's error.
func (r *Runner) Run(ctx context.Context, count int) (Result, error) {
	var res Result
	if count <= 0 {
		return res, nil
	}

	log := r.logger()
	log.Info("starting batch", "count", count, "mode", r.Mode.String(), "pace", r.Pace)

	var last time.Time
	for i := range count {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		rec := r.Source.Generate()
		res.Generated++
		log.Info("record generated", "index", i+1, "total", count)
		r.emit(Progress{Kind: KindGenerated, Index: i, Total: count})

		data, err := json.Marshal(rec)
		if err != nil {
			return res, fmt.Errorf("encode record %d: %w", i, err)
		}

		at, err := r.stamp(ctx, last)
		if err != nil {
			return res, err
		}
		last = at
		suffix := at.Format(TimestampLayout)
		name := r.objectName(i, suffix)

		if err := r.pause(ctx, r.Pace); err != nil {
			return res, err
		}

		if err := r.Files.WriteFile(name, data, filePerm); err != nil {
			return res, &WriteError{Name: name, Err: err}
		}
		res.Files = append(res.Files, name)
		log.Info("file written", "index", i+1, "total", count, "name", name)
		r.emit(Progress{Kind: KindWritten, Index: i, Total: count, Name: name})

		for _, key := range r.uploadKeys(count, name, suffix) {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			res.upload(ctx, r, key, data)
		}
	}

	if res.UploadedOK() {
		log.Info("batch complete", "generated", res.Generated, "attempts", res.Attempts)
	} else {
		log.Warn("batch complete with upload failures",
			"generated", res.Generated, "attempts", res.Attempts, "failed", len(res.Failures))
	}

	return res, nil
}

// uploadKeys returns the keys the current record is uploaded under.
func (r *Runner) uploadKeys(count int, name, suffix string) []string {
	if r.Mode == ModeEach {
		return []string{name}
	}

	// replay: every index of the run, stamped with this iteration's suffix
	keys := make([]string, count)
	for j := range count {
		keys[j] = r.objectName(j, suffix)
	}
	return keys
}

func (r *Runner) objectName(i int, suffix string) string {
	return ObjectName(r.prefix(), i, suffix)
}

// ObjectName builds "<prefix><i>_<suffix>.json".
func ObjectName(prefix string, i int, suffix string) string {
	return fmt.Sprintf("%s%d_%s.json", prefix, i, suffix)
}

// stamp returns the time an iteration's name suffix is formatted from,
// truncated to the second. In replay mode the result is always after prev.
func (r *Runner) stamp(ctx context.Context, prev time.Time) (time.Time, error) {
	t := r.now().Truncate(time.Second)
	if r.Mode != ModeReplay || prev.IsZero() || t.After(prev) {
		return t, nil
	}

	next := prev.Add(time.Second)
	if err := r.pause(ctx, next.Sub(r.now())); err != nil {
		return time.Time{}, err
	}

	// a clock that still reads prev's second gets the next one anyway
	if t = r.now().Truncate(time.Second); !t.After(prev) {
		t = next
	}
	return t, nil
}

func (r *Runner) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	if r.sleep != nil {
		return r.sleep(ctx, d)
	}
	return sleep(ctx, d)
}

// sleep blocks for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (r *Runner) emit(p Progress) {
	if r.OnProgress != nil {
		r.OnProgress(p)
	}
}

func (r *Runner) prefix() string {
	if r.Prefix == "" {
		return DefaultPrefix
	}
	return r.Prefix
}

func (r *Runner) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Logger
}
