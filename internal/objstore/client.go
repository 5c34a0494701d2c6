// Package objstore writes objects to an S3-compatible bucket.
package objstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

const (
	defaultRegion = "us-east-1"
	contentType   = "application/json"
)

// ErrNoBucket is returned when a client is created without a bucket name.
var ErrNoBucket = errors.New("objstore: bucket not set")

// Config holds the bucket and credentials for a client.
// Empty credentials fall back to the SDK's default provider chain.
type Config struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // custom endpoint, e.g. MinIO or LocalStack
	PathStyle       bool
}

// Client puts objects into a single bucket.
type Client struct {
	bucket string
	s3     *s3.Client
}

// New creates a client for cfg.Bucket. The SDK retryer is disabled so every
// Put is exactly one request.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Bucket == "" {
		return nil, ErrNoBucket
	}

	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("objstore: load aws config: %w", err)
	}

	return newClient(awsCfg, cfg), nil
}

func newClient(awsCfg aws.Config, cfg Config) *Client {
	c := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.PathStyle
		o.Retryer = aws.NopRetryer{}
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	return &Client{bucket: cfg.Bucket, s3: c}
}

// Bucket returns the target bucket name.
func (c *Client) Bucket() string {
	return c.bucket
}

// Put writes body under key, replacing any existing object.
func (c *Client) Put(ctx context.Context, key string, body []byte) error {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", key, describe(err))
	}
	return nil
}

// Error is a service-side rejection of a request.
type Error struct {
	Code    string
	Message string
	err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("s3: %s: %s", e.Code, e.Message)
	}
	return "s3: " + e.Code
}

func (e *Error) Unwrap() error {
	return e.err
}

// describe flattens SDK API errors into *Error so callers and logs see the
// service code rather than the full operation chain.
func describe(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &Error{Code: apiErr.ErrorCode(), Message: apiErr.ErrorMessage(), err: err}
	}
	return err
}
