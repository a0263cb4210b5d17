// Package media issues upload URLs for wardrobe photos.
package media

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
	"github.com/google/uuid"
)

// ErrUnsupportedType is returned for uploads that are not images
var ErrUnsupportedType = errors.New("only image uploads are supported")

var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
	"image/heic": "heic",
}

// Upload tells the client where to PUT the photo and what URL to save on the item
type Upload struct {
	Key       string    `json:"key"`
	UploadURL string    `json:"upload_url"`
	ImageURL  string    `json:"image_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// S3Options configures the bucket
type S3Options struct {
	Bucket    string
	Region    string
	Endpoint  string // S3-compatible endpoint (MinIO, R2); empty for AWS
	AccessKey string
	SecretKey string
	PublicURL string // base URL objects are served from; derived from the endpoint when empty
	Expires   time.Duration
}

// S3Uploader presigns PUT requests into a bucket
type S3Uploader struct {
	presign *s3.PresignClient
	opts    S3Options
	now     func() time.Time
}

// NewS3Uploader builds a presign client. No request is sent until a URL is used.
func NewS3Uploader(ctx context.Context, opts S3Options) (*S3Uploader, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(opts.Region)}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("media: failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	if opts.Expires <= 0 {
		opts.Expires = 15 * time.Minute
	}

	return &S3Uploader{presign: s3.NewPresignClient(client), opts: opts, now: time.Now}, nil
}

// ObjectKey builds a unique key for a user's photo
func ObjectKey(userID, ext string, now time.Time) string {
	return fmt.Sprintf("wardrobe/%s/%d/%02d/%s.%s", userID, now.Year(), now.Month(), uuid.New(), ext)
}

// PresignUpload returns a short-lived PUT URL for one image
func (u *S3Uploader) PresignUpload(ctx context.Context, userID, contentType string) (Upload, error) {
	ext, ok := imageExtensions[strings.ToLower(contentType)]
	if !ok {
		return Upload{}, ErrUnsupportedType
	}

	now := u.now()
	key := ObjectKey(userID, ext, now)

	req, err := u.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.opts.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(u.opts.Expires))
	if err != nil {
		return Upload{}, fmt.Errorf("media: failed to presign upload: %w", err)
	}

	return Upload{
		Key:       key,
		UploadURL: req.URL,
		ImageURL:  u.publicURL(key),
		ExpiresAt: now.Add(u.opts.Expires),
	}, nil
}

func (u *S3Uploader) publicURL(key string) string {
	if u.opts.PublicURL != "" {
		return strings.TrimRight(u.opts.PublicURL, "/") + "/" + key
	}
	if u.opts.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(u.opts.Endpoint, "/"), u.opts.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.opts.Bucket, u.opts.Region, key)
}
