package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	appconfig "github.com/semmidev/s3sweep/internal/config"
	"github.com/semmidev/s3sweep/internal/domain"
)

type S3Storage struct {
	client *s3.Client
}

// NewS3 creates a new S3Storage instance using AWS SDK v2. Static credentials
// are used when both keys are configured; otherwise the SDK's default chain
// applies.
func NewS3(ctx context.Context, cfg appconfig.S3Config) (*S3Storage, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{client: client}, nil
}

// Resolve splits an s3://bucket/prefix path spec into its parts.
func (s *S3Storage) Resolve(pathSpec string) (domain.Location, error) {
	rest, ok := strings.CutPrefix(pathSpec, "s3://")
	if !ok {
		return domain.Location{}, fmt.Errorf("path spec %q is not an s3:// URI", pathSpec)
	}

	bucket, prefix, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return domain.Location{}, fmt.Errorf("path spec %q has no bucket", pathSpec)
	}

	return domain.Location{Bucket: bucket, Prefix: prefix}, nil
}

// List returns every object under the location, walking continuation tokens
// until the listing is complete.
func (s *S3Storage) List(ctx context.Context, loc domain.Location) ([]domain.Object, error) {
	var objects []domain.Object
	var continuationToken *string

	for {
		resp, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(loc.Bucket),
			Prefix:            aws.String(loc.Prefix),
			ContinuationToken: continuationToken,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list S3 objects: %w", apiError(err))
		}

		for _, obj := range resp.Contents {
			objects = append(objects, domain.Object{
				Key:          aws.ToString(obj.Key),
				LastModified: aws.ToTime(obj.LastModified).UTC().Format(time.RFC3339Nano),
			})
		}

		if !aws.ToBool(resp.IsTruncated) {
			break
		}
		continuationToken = resp.NextContinuationToken
	}

	return objects, nil
}

// Delete removes a single object.
func (s *S3Storage) Delete(ctx context.Context, loc domain.Location, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(loc.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", apiError(err))
	}

	return nil
}

func apiError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
	}
	return err
}
