package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/zarlcorp/zspawn/internal/batch"
)

func missing(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BUCKET_RAW", "raw-events")

	cfg, err := Load(missing(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Bucket != "raw-events" {
		t.Errorf("bucket: got %q", cfg.Bucket)
	}
	if cfg.Region != "us-east-1" {
		t.Errorf("region: got %q, want us-east-1", cfg.Region)
	}
	if cfg.OutputDir != "." {
		t.Errorf("output dir: got %q, want .", cfg.OutputDir)
	}
	if cfg.Pace != 0 {
		t.Errorf("pace: got %s, want 0", cfg.Pace)
	}
	if cfg.Mode() != batch.ModeReplay {
		t.Errorf("mode: got %v, want replay", cfg.Mode())
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BUCKET_RAW", "b")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKID")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("AWS_REGION", "sa-east-1")
	t.Setenv("ZSPAWN_S3_ENDPOINT", "http://localhost:9000")
	t.Setenv("ZSPAWN_S3_PATH_STYLE", "true")
	t.Setenv("ZSPAWN_OUTPUT_DIR", "/tmp/events")
	t.Setenv("ZSPAWN_PACE", "1s")
	t.Setenv("ZSPAWN_UPLOAD_MODE", "each")
	t.Setenv("ZSPAWN_SEED", "42")

	cfg, err := Load(missing(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Pace != time.Second {
		t.Errorf("pace: got %s, want 1s", cfg.Pace)
	}
	if cfg.Mode() != batch.ModeEach {
		t.Errorf("mode: got %v, want each", cfg.Mode())
	}
	if cfg.Seed != 42 {
		t.Errorf("seed: got %d, want 42", cfg.Seed)
	}

	st := cfg.Store()
	if st.Bucket != "b" || st.Region != "sa-east-1" || st.AccessKeyID != "AKID" ||
		st.SecretAccessKey != "secret" || st.Endpoint != "http://localhost:9000" || !st.PathStyle {
		t.Errorf("store config: got %+v", st)
	}
}

func TestLoadDotenv(t *testing.T) {
	// godotenv sets variables via os.Setenv; register cleanup through t.Setenv
	t.Setenv("BUCKET_RAW", "")
	os.Unsetenv("BUCKET_RAW")
	t.Setenv("ZSPAWN_UPLOAD_MODE", "")
	os.Unsetenv("ZSPAWN_UPLOAD_MODE")

	path := filepath.Join(t.TempDir(), ".env")
	content := "BUCKET_RAW=from-dotenv\nZSPAWN_UPLOAD_MODE=each\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Bucket != "from-dotenv" {
		t.Errorf("bucket: got %q, want from-dotenv", cfg.Bucket)
	}
	if cfg.Mode() != batch.ModeEach {
		t.Errorf("mode: got %v, want each", cfg.Mode())
	}
}

func TestProcessEnvWinsOverDotenv(t *testing.T) {
	t.Setenv("BUCKET_RAW", "from-process")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("BUCKET_RAW=from-dotenv\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Bucket != "from-process" {
		t.Errorf("bucket: got %q, want from-process", cfg.Bucket)
	}
}

func TestLoadMissingBucket(t *testing.T) {
	t.Setenv("BUCKET_RAW", "")

	_, err := Load(missing(t))
	if !errors.Is(err, ErrMissingBucket) {
		t.Errorf("got %v, want ErrMissingBucket", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"ok", Config{Bucket: "b", UploadMode: "replay"}, false},
		{"empty mode is replay", Config{Bucket: "b"}, false},
		{"no bucket", Config{UploadMode: "each"}, true},
		{"negative pace", Config{Bucket: "b", Pace: -time.Second}, true},
		{"unknown mode", Config{Bucket: "b", UploadMode: "twice"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadBadDuration(t *testing.T) {
	t.Setenv("BUCKET_RAW", "b")
	t.Setenv("ZSPAWN_PACE", "soon")

	if _, err := Load(missing(t)); err == nil {
		t.Fatal("expected parse error")
	}
}
