// Package storage talks to the S3-compatible media host product images are
// uploaded to (MinIO in dev, any S3 API in prod).
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	appconfig "github.com/developerUmair/ecommerce-backend/internal/config"
)

// S3Client wraps the AWS S3 client for MinIO/R2-style endpoints.
type S3Client struct {
	client     *s3.Client
	bucket     string
	cdnBaseURL string
	log        zerolog.Logger
}

func NewS3Client(cfg *appconfig.Config, log zerolog.Logger) (*S3Client, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL:               cfg.S3Endpoint,
			HostnameImmutable: true,
		}, nil
	})

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithEndpointResolverWithOptions(resolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKeyID,
			cfg.S3SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.S3UsePathStyle
	})

	return &S3Client{
		client:     client,
		bucket:     cfg.S3Bucket,
		cdnBaseURL: strings.TrimRight(cfg.CDNBaseURL, "/"),
		log:        log,
	}, nil
}

// Put uploads an object and returns its public URL.
func (c *S3Client) Put(ctx context.Context, objectKey, contentType string, body io.Reader, size int64) (string, error) {
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(objectKey),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", objectKey, err)
	}
	return c.PublicURL(objectKey), nil
}

// PublicURL returns the browser-facing URL for an uploaded object.
func (c *S3Client) PublicURL(objectKey string) string {
	return c.cdnBaseURL + "/" + objectKey
}

// EnsureBucket creates the product image bucket if missing and opens it for
// public reads so returned image URLs resolve without signing.
func (c *S3Client) EnsureBucket(ctx context.Context) error {
	_, err := c.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.bucket),
	})
	if err != nil {
		c.log.Info().Str("bucket", c.bucket).Msg("creating bucket")
		if _, createErr := c.client.CreateBucket(ctx, &s3.CreateBucketInput{
			Bucket: aws.String(c.bucket),
		}); createErr != nil {
			return fmt.Errorf("create bucket %s: %w", c.bucket, createErr)
		}
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [{
			"Effect": "Allow",
			"Principal": {"AWS": ["*"]},
			"Action": ["s3:GetObject"],
			"Resource": ["arn:aws:s3:::%s/*"]
		}]
	}`, c.bucket)

	if _, err := c.client.PutBucketPolicy(ctx, &s3.PutBucketPolicyInput{
		Bucket: aws.String(c.bucket),
		Policy: aws.String(policy),
	}); err != nil {
		// Bucket might already carry a policy; reads can still work.
		c.log.Warn().Err(err).Str("bucket", c.bucket).Msg("failed to set public bucket policy")
	}

	return nil
}
