// Package s3 stores avatar uploads in an S3-compatible bucket (AWS or MinIO).
package s3

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/msilviu/taskpro/pkg/auth"
)

type Options struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string

	// PublicURL is the prefix avatar URLs are built from, e.g. a CDN or the
	// bucket website endpoint.
	PublicURL string
}

// AvatarStore implements auth.AvatarStore on top of an S3 bucket.
type AvatarStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewAvatarStore(ctx context.Context, opts Options) (*AvatarStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(opts.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &AvatarStore{
		client:    client,
		bucket:    opts.Bucket,
		publicURL: strings.TrimRight(opts.PublicURL, "/"),
	}, nil
}

// Save uploads the avatar under a per-user key and returns its public URL.
// Re-uploading overwrites the previous avatar for the same user.
func (s *AvatarStore) Save(ctx context.Context, userID uuid.UUID, upload auth.AvatarUpload) (string, error) {
	key := fmt.Sprintf("avatars/%s%s", userID, path.Ext(upload.Filename))

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   upload.Reader,
	}
	if upload.ContentType != "" {
		input.ContentType = aws.String(upload.ContentType)
	}
	if upload.Size > 0 {
		input.ContentLength = aws.Int64(upload.Size)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put avatar object: %w", err)
	}
	return fmt.Sprintf("%s/%s", s.publicURL, key), nil
}
