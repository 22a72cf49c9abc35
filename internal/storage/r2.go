package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// R2Client stores dish photos in an S3-compatible bucket and hands
// back their public URLs for the menu.
type R2Client struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewR2Client(ctx context.Context) (*R2Client, error) {
	endpoint := os.Getenv("R2_ENDPOINT")
	bucket := os.Getenv("R2_BUCKET_NAME")
	baseURL := os.Getenv("R2_PUBLIC_BASE_URL")

	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion("auto"),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				os.Getenv("R2_ACCESS_KEY"),
				os.Getenv("R2_SECRET_KEY"),
				"",
			),
		),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})

	return &R2Client{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

func (r *R2Client) Upload(ctx context.Context, key string, file multipart.File) (string, error) {
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &r.bucket,
		Key:    &key,
		Body:   file,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", r.baseURL, key), nil
}
