package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zspawn/internal/batch"
	"github.com/zarlcorp/zspawn/internal/config"
	"github.com/zarlcorp/zspawn/internal/event"
	"github.com/zarlcorp/zspawn/internal/synth"
)

type fakeStore struct {
	calls int
	err   error
}

func (f *fakeStore) Put(context.Context, string, []byte) error {
	f.calls++
	return f.err
}

func testRunner(store batch.Store) *batch.Runner {
	now := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)
	return &batch.Runner{
		Source: synth.New(synth.WithSeed(1)),
		Files:  zfilesystem.NewMemFS(),
		Store:  store,
		Now: func() time.Time {
			now = now.Add(time.Second)
			return now
		},
	}
}

func TestRunSuccess(t *testing.T) {
	st := &fakeStore{}
	var out bytes.Buffer

	res, err := Run(context.Background(), testRunner(st), 2, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if res.Generated != 2 {
		t.Errorf("generated = %d, want 2", res.Generated)
	}
	if st.calls != 4 {
		t.Errorf("store calls = %d, want 4", st.calls)
	}
	if !strings.Contains(out.String(), "2 events will be generated") {
		t.Errorf("missing banner:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "2 events created and uploaded successfully") {
		t.Errorf("missing success line:\n%s", out.String())
	}
}

func TestRunUploadFailure(t *testing.T) {
	st := &fakeStore{err: errors.New("denied")}
	var out bytes.Buffer

	_, err := Run(context.Background(), testRunner(st), 3, &out)
	if !errors.Is(err, ErrUploadsFailed) {
		t.Fatalf("got %v, want ErrUploadsFailed", err)
	}
	if st.calls != 9 {
		t.Errorf("store calls = %d, want 9", st.calls)
	}
	if !strings.Contains(out.String(), "failed to upload one or more events") {
		t.Errorf("missing failure line:\n%s", out.String())
	}
}

func TestNewRunnerWiresConfig(t *testing.T) {
	dir := t.TempDir() + "/out"
	cfg := config.Config{
		Bucket:          "raw",
		Region:          "sa-east-1",
		AccessKeyID:     "AKID",
		SecretAccessKey: "secret",
		OutputDir:       dir,
		Pace:            time.Second,
		UploadMode:      "each",
		Seed:            5,
	}

	r, err := NewRunner(context.Background(), cfg, NewLogger(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}

	if r.Mode != batch.ModeEach {
		t.Errorf("mode: got %v, want each", r.Mode)
	}
	if r.Pace != time.Second {
		t.Errorf("pace: got %s, want 1s", r.Pace)
	}
	if err := r.Files.WriteFile("check.json", []byte("{}"), 0o644); err != nil {
		t.Errorf("output dir not writable: %v", err)
	}
}

func TestWriteSample(t *testing.T) {
	tests := []struct {
		name   string
		pretty bool
	}{
		{"compact", false},
		{"pretty", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeSample(&buf, synth.New(), tt.pretty); err != nil {
				t.Fatalf("write sample: %v", err)
			}

			var rec event.Record
			if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if err := rec.Validate(); err != nil {
				t.Errorf("sample invalid: %v", err)
			}

			indented := strings.Contains(buf.String(), "\n  ")
			if indented != tt.pretty {
				t.Errorf("indented = %v, want %v", indented, tt.pretty)
			}
		})
	}
}

func TestHasFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		flag string
		want bool
	}{
		{"present", []string{"--pretty"}, "--pretty", true},
		{"absent", []string{"--json"}, "--pretty", false},
		{"empty", nil, "--pretty", false},
		{"case insensitive", []string{"--PRETTY"}, "--pretty", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hasFlag(tt.args, tt.flag)
			if got != tt.want {
				t.Errorf("hasFlag(%v, %s) = %v, want %v", tt.args, tt.flag, got, tt.want)
			}
		})
	}
}
