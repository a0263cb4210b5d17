package media

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUploader(t *testing.T, opts S3Options) *S3Uploader {
	t.Helper()
	opts.Bucket = "wardrobe"
	if opts.Region == "" {
		opts.Region = "us-east-1"
	}
	opts.AccessKey = "minio"
	opts.SecretKey = "minio-secret"
	u, err := NewS3Uploader(context.Background(), opts)
	require.NoError(t, err)
	u.now = func() time.Time { return time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC) }
	return u
}

func TestPresignUpload_CustomEndpoint(t *testing.T) {
	u := newTestUploader(t, S3Options{Endpoint: "http://localhost:9000"})

	up, err := u.PresignUpload(context.Background(), "u1", "image/png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(up.Key, "wardrobe/u1/2024/03/"), up.Key)
	assert.True(t, strings.HasSuffix(up.Key, ".png"))
	assert.True(t, strings.HasPrefix(up.UploadURL, "http://localhost:9000/wardrobe/"+up.Key), up.UploadURL)
	assert.Contains(t, up.UploadURL, "X-Amz-Signature=")
	assert.Equal(t, "http://localhost:9000/wardrobe/"+up.Key, up.ImageURL)
	assert.Equal(t, time.Date(2024, 3, 9, 12, 15, 0, 0, time.UTC), up.ExpiresAt)
}

func TestPresignUpload_PublicURL(t *testing.T) {
	u := newTestUploader(t, S3Options{Region: "eu-west-1", PublicURL: "https://cdn.outfique.app/", Expires: time.Minute})

	up, err := u.PresignUpload(context.Background(), "u1", "IMAGE/JPEG")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.outfique.app/"+up.Key, up.ImageURL)
	assert.True(t, strings.HasSuffix(up.Key, ".jpg"))
	assert.Contains(t, up.UploadURL, "wardrobe.s3.eu-west-1.amazonaws.com")
}

func TestPresignUpload_RejectsNonImages(t *testing.T) {
	u := newTestUploader(t, S3Options{})

	_, err := u.PresignUpload(context.Background(), "u1", "application/pdf")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestObjectKey_Unique(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.NotEqual(t, ObjectKey("u1", "jpg", now), ObjectKey("u1", "jpg", now))
}
