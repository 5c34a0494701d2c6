package batch

import (
	"context"
	"fmt"
	"strings"
)

// UploadFailure records one rejected upload attempt.
type UploadFailure struct {
	Key string
	Err error
}

// Result summarizes a run. Failures accumulate per attempt; they never stop
// the run.
type Result struct {
	Generated int
	Attempts  int
	Files     []string
	Failures  []UploadFailure
}

// UploadedOK reports whether every upload attempt succeeded. A run with no
// attempts is trivially ok.
func (r Result) UploadedOK() bool {
	return len(r.Failures) == 0
}

// Succeeded returns the number of accepted uploads.
func (r Result) Succeeded() int {
	return r.Attempts - len(r.Failures)
}

// Summary returns the final status line.
func (r Result) Summary() string {
	if r.UploadedOK() {
		return fmt.Sprintf("%d events created and uploaded successfully", r.Generated)
	}
	return "failed to upload one or more events"
}

// Report returns the summary followed by one line per failed upload.
func (r Result) Report() string {
	var b strings.Builder
	b.WriteString(r.Summary())

	for _, f := range r.Failures {
		fmt.Fprintf(&b, "\n- %s: %v", f.Key, f.Err)
	}

	return b.String()
}

func (r *Result) upload(ctx context.Context, run *Runner, key string, data []byte) {
	r.Attempts++

	if err := run.Store.Put(ctx, key, data); err != nil {
		r.Failures = append(r.Failures, UploadFailure{Key: key, Err: err})
		run.logger().Error("upload failed", "key", key, "err", err)
		run.emit(Progress{Kind: KindUploadFailed, Key: key, Err: err})
		return
	}

	run.emit(Progress{Kind: KindUploaded, Key: key})
}

// WriteError is the fatal local write failure that ends a run.
type WriteError struct {
	Name string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Name, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
