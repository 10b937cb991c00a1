package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ErrInvalidFileURL is returned when a URL does not point into the bucket.
var ErrInvalidFileURL = errors.New("invalid file URL")

// R2Storage stores marketing media (FAQ images, video posters) in a Cloudflare R2 bucket.
type R2Storage struct {
	client        *s3.Client
	bucketName    string
	publicURL     string
	uploadTimeout time.Duration
}

func NewR2Storage(ctx context.Context, accountID, accessKey, secretKey, bucketName, publicURL string, uploadTimeout time.Duration) (*R2Storage, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("load r2 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID))
		o.UsePathStyle = true
	})

	return &R2Storage{
		client:        client,
		bucketName:    bucketName,
		publicURL:     strings.TrimSuffix(publicURL, "/"),
		uploadTimeout: uploadTimeout,
	}, nil
}

// ObjectKey builds a fresh key under uploads/ for the content type.
func ObjectKey(contentType string) string {
	ext := ".bin"
	switch contentType {
	case "image/webp":
		ext = ".webp"
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	}
	return "uploads/" + uuid.NewString() + ext
}

// UploadBuffer uploads a processed image and returns its public URL.
func (s *R2Storage) UploadBuffer(ctx context.Context, data []byte, contentType string) (string, error) {
	key := ObjectKey(contentType)

	uploadCtx, cancel := context.WithTimeout(ctx, s.uploadTimeout)
	defer cancel()

	_, err := s.client.PutObject(uploadCtx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucketName),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload buffer to R2: %w", err)
	}

	return s.publicURL + "/" + key, nil
}

// DeleteFile deletes an object by the public URL UploadBuffer returned.
func (s *R2Storage) DeleteFile(ctx context.Context, fileURL string) error {
	key, err := KeyFromURL(s.publicURL, fileURL)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from R2: %w", err)
	}
	return nil
}

// KeyFromURL extracts the object key from a URL under publicURL.
func KeyFromURL(publicURL, fileURL string) (string, error) {
	prefix := strings.TrimSuffix(publicURL, "/") + "/"
	if publicURL == "" || !strings.HasPrefix(fileURL, prefix) {
		return "", fmt.Errorf("%w: domain mismatch", ErrInvalidFileURL)
	}
	key := strings.TrimPrefix(fileURL, prefix)
	if key == "" || strings.Contains(key, "..") {
		return "", fmt.Errorf("%w: empty or unsafe key", ErrInvalidFileURL)
	}
	return key, nil
}
