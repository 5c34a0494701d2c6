// Package config loads zspawn settings from the environment.
// A .env file in the working directory is read first if present; variables
// already set in the process take precedence over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/zarlcorp/zspawn/internal/batch"
	"github.com/zarlcorp/zspawn/internal/objstore"
)

// ErrMissingBucket is returned when BUCKET_RAW is not set.
var ErrMissingBucket = errors.New("BUCKET_RAW is not set")

// Config holds everything a batch run needs.
type Config struct {
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	Bucket          string `env:"BUCKET_RAW"`
	Endpoint        string `env:"ZSPAWN_S3_ENDPOINT"`
	PathStyle       bool   `env:"ZSPAWN_S3_PATH_STYLE" envDefault:"false"`

	OutputDir  string        `env:"ZSPAWN_OUTPUT_DIR" envDefault:"."`
	Pace       time.Duration `env:"ZSPAWN_PACE" envDefault:"0s"`
	UploadMode string        `env:"ZSPAWN_UPLOAD_MODE" envDefault:"replay"`
	Seed       uint64        `env:"ZSPAWN_SEED" envDefault:"0"`
}

// Load reads dotenv files (default ".env") and parses the environment.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		// godotenv.Load never overrides variables that are already set
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks required values and enumerations.
func (c Config) Validate() error {
	if c.Bucket == "" {
		return ErrMissingBucket
	}
	if c.Pace < 0 {
		return fmt.Errorf("ZSPAWN_PACE must not be negative, got %s", c.Pace)
	}
	if _, err := batch.ParseUploadMode(c.UploadMode); err != nil {
		return fmt.Errorf("ZSPAWN_UPLOAD_MODE: %w", err)
	}
	return nil
}

// Store converts the settings to an objstore.Config.
func (c Config) Store() objstore.Config {
	return objstore.Config{
		Bucket:          c.Bucket,
		Region:          c.Region,
		AccessKeyID:     c.AccessKeyID,
		SecretAccessKey: c.SecretAccessKey,
		Endpoint:        c.Endpoint,
		PathStyle:       c.PathStyle,
	}
}

// Mode returns the parsed upload mode. Call after Validate.
func (c Config) Mode() batch.UploadMode {
	m, _ := batch.ParseUploadMode(c.UploadMode)
	return m
}
