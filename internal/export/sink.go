package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/thenoetrevino/board/internal/config"
)

// ErrBucketRequired is returned when an S3 export has no bucket configured
var ErrBucketRequired = errors.New("export bucket is required (set export.bucket or BOARD_EXPORT_S3_BUCKET)")

// FileSink writes snapshots to a local file
type FileSink struct {
	Path string
}

// Put writes data to the file, creating parent directories as needed
func (f FileSink) Put(_ context.Context, data []byte) (string, error) {
	if f.Path == "" {
		return "", errors.New("export path is required")
	}
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	if err := os.WriteFile(f.Path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return f.Path, nil
}

// objectPutter is the part of the S3 client the sink needs
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink uploads snapshots to an S3-compatible bucket such as MinIO
type S3Sink struct {
	client objectPutter
	bucket string
	key    string
}

// NewS3Client builds an S3 client from the export configuration.
// A custom endpoint switches the client to that host for S3-compatible stores.
func NewS3Client(ctx context.Context, cfg config.ExportConfig) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" || cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}
	if cfg.Endpoint != "" {
		if _, err := url.ParseRequestURI(cfg.Endpoint); err != nil {
			return nil, fmt.Errorf("invalid S3 endpoint: %w", err)
		}
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}), nil
}

// NewS3Sink creates a sink that uploads to key in the configured bucket
func NewS3Sink(ctx context.Context, cfg config.ExportConfig, key string) (*S3Sink, error) {
	if cfg.Bucket == "" {
		return nil, ErrBucketRequired
	}
	client, err := NewS3Client(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return newS3Sink(client, cfg.Bucket, key), nil
}

func newS3Sink(client objectPutter, bucket, key string) *S3Sink {
	return &S3Sink{
		client: client,
		bucket: bucket,
		key:    strings.TrimPrefix(key, "/"),
	}
}

// Put uploads data as a JSON object
func (s *S3Sink) Put(ctx context.Context, data []byte) (string, error) {
	if s.key == "" {
		return "", errors.New("export key is required")
	}
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchBucket" {
			return "", fmt.Errorf("bucket %s does not exist: %w", s.bucket, err)
		}
		return "", fmt.Errorf("error uploading export to S3: %w", err)
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.key), nil
}

// DefaultKey names an export object after the board and the time
func DefaultKey(boardID int, at time.Time) string {
	return fmt.Sprintf("boards/%d/%s.json", boardID, at.UTC().Format("20060102T150405Z"))
}
