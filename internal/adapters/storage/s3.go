package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"invitepages/internal/domain"
)

// S3Config holds configuration for the S3 media bucket.
type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	// PublicURL is the base under which stored objects are reachable,
	// e.g. a CloudFront distribution or the bucket website endpoint.
	PublicURL string
}

type s3Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3Storage returns a MediaStorage backed by an S3 bucket.
func NewS3Storage(config S3Config) domain.MediaStorage {
	awsCfg := aws.Config{
		Region: config.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				config.AccessKeyID,
				config.SecretAccessKey,
				"",
			),
		),
	}
	return &s3Storage{
		client:    s3.NewFromConfig(awsCfg),
		bucket:    config.Bucket,
		publicURL: strings.TrimRight(config.PublicURL, "/"),
	}
}

// Put uploads the object and returns its public URL.
func (s *s3Storage) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	if s.publicURL != "" {
		return s.publicURL + "/" + key, nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key), nil
}
