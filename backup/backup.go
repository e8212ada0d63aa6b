// Package backup uploads snapshots of the saved selections to S3.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/user/video-trimmer-cli/db"
)

// S3Config holds the configuration for the backup bucket.
type S3Config struct {
	Bucket          string
	Region          string
	Prefix          string
	Endpoint        string // Optional: for S3-compatible endpoints
	AccessKeyID     string // Optional: static credentials
	SecretAccessKey string
}

// Uploader writes objects to a single bucket.
type Uploader struct {
	client *s3.Client
	bucket string
	region string
	prefix string
}

// NewUploader creates an Uploader from cfg. Without static credentials the
// default AWS credential chain is used.
func NewUploader(ctx context.Context, cfg S3Config) (*Uploader, error) {
	configOpts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		configOpts = append(configOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, configOpts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	var clientOpts []func(*s3.Options)
	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	return &Uploader{
		client: s3.NewFromConfig(awsCfg, clientOpts...),
		bucket: cfg.Bucket,
		region: cfg.Region,
		prefix: cfg.Prefix,
	}, nil
}

// Upload stores body under key and returns the object URL.
func (u *Uploader) Upload(ctx context.Context, key string, body io.Reader) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("upload to S3: %w", err)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}

// Selection is one saved selection in a snapshot.
type Selection struct {
	ID        int64     `json:"id"`
	Video     string    `json:"video"`
	Name      string    `json:"name"`
	Note      string    `json:"note,omitempty"`
	StartMs   int64     `json:"start_ms"`
	EndMs     int64     `json:"end_ms"`
	CreatedAt time.Time `json:"created_at"`
}

// Snapshot is the document written by a backup.
type Snapshot struct {
	CreatedAt  time.Time   `json:"created_at"`
	Selections []Selection `json:"selections"`
}

// NewSnapshot converts stored trims into a snapshot taken at now.
func NewSnapshot(trims []db.Trim, now time.Time) Snapshot {
	s := Snapshot{CreatedAt: now.UTC(), Selections: make([]Selection, 0, len(trims))}
	for _, t := range trims {
		s.Selections = append(s.Selections, Selection{
			ID:        t.ID,
			Video:     t.VideoPath,
			Name:      t.Name,
			Note:      t.Note,
			StartMs:   t.Start.Milliseconds(),
			EndMs:     t.End.Milliseconds(),
			CreatedAt: t.CreatedAt,
		})
	}
	return s
}

// Key returns the object key for the snapshot under prefix.
func (s Snapshot) Key(prefix string) string {
	return path.Join(prefix, "selections-"+s.CreatedAt.Format("20060102T150405Z")+".json")
}

// UploadSnapshot writes s as JSON and returns the object key and URL.
func (u *Uploader) UploadSnapshot(ctx context.Context, s Snapshot) (string, string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("encode snapshot: %w", err)
	}
	key := s.Key(u.prefix)
	url, err := u.Upload(ctx, key, bytes.NewReader(data))
	if err != nil {
		return "", "", err
	}
	return key, url, nil
}
