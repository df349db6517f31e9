// Package storage uploads user files (resumes, avatars, company logos) to
// an S3-compatible object store and hands back the public URL the rest of
// the system persists.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/hirewire-dev/hirewire/backend/internal/config"
)

type Uploader struct {
	cfg    *config.Config
	client *s3.Client
}

func NewUploader(cfg *config.Config) (*Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3.AccessKey,
			cfg.S3.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3.BaseEndpoint != "" {
			// self-hosted stores (minio) need a fixed endpoint and path-style addressing
			o.BaseEndpoint = aws.String(cfg.S3.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &Uploader{
		cfg:    cfg,
		client: client,
	}, nil
}

// ObjectKey builds a collision-free, date-partitioned key such as
// "resumes/2026/8/27/<uuid>.pdf".
func ObjectKey(prefix, ext string) string {
	d := time.Now()
	return fmt.Sprintf("%s/%d/%d/%d/%v%s", prefix, d.Year(), d.Month(), d.Day(), uuid.New(), ext)
}

// Upload stores the object and returns its public URL.
func (u *Uploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.S3.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        body,
	})
	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(u.cfg.S3.PublicURL, "/") + "/" + key, nil
}
