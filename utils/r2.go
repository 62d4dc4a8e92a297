package utils

import (
	"context"
	"fmt"
	"io"
	"strings"

	appconfig "findly-api/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// R2Store writes objects to an S3-compatible bucket, Cloudflare R2 in production.
type R2Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewR2Store(ctx context.Context, cfg appconfig.StorageConfig) (*R2Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.AccessKeySecret, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load R2 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.EndpointURL())
		o.UsePathStyle = true
		// R2 rejects some of the default flexible checksums.
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	return &R2Store{client: client, bucket: cfg.Bucket, publicURL: cfg.PublicURL()}, nil
}

// Upload stores body under key and returns the public URL of the object.
func (s *R2Store) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to R2: %w", err)
	}
	return s.publicURL + "/" + key, nil
}

// ObjectKey builds "<prefix>/<slug-of-name>-<uuid><ext>". The uuid keeps
// repeated uploads for the same name from overwriting each other.
func ObjectKey(prefix, name, ext string) string {
	base := slug.Make(name)
	if base == "" {
		base = "object"
	}
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return fmt.Sprintf("%s/%s-%s%s", strings.Trim(prefix, "/"), base, uuid.NewString(), ext)
}
