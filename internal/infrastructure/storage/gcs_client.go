package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"sombateka/internal/domain/service"
)

// CloudStorageClient stores product images in a public GCS bucket. It
// is the fallback provider for deployments that cannot use Cloudinary.
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

func NewCloudStorageClient(ctx context.Context, bucketName, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

func (c *CloudStorageClient) UploadImage(ctx context.Context, file io.Reader, contentType, filename string) (string, error) {
	objectName := fmt.Sprintf("products/%s-%s%s", uuid.New().String(), time.Now().Format("20060102150405"), extensionFor(contentType))

	obj := c.client.Bucket(c.bucketName).Object(objectName)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(wc, file); err != nil {
		return "", fmt.Errorf("failed to copy file to GCS: %v", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %v", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("failed to set ACL: %v", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName), nil
}

func (c *CloudStorageClient) DeleteImage(ctx context.Context, imageURL string) error {
	const prefix = "https://storage.googleapis.com/"
	if !strings.HasPrefix(imageURL, prefix) {
		return fmt.Errorf("invalid GCS URL format")
	}

	path := imageURL[len(prefix):]
	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 || parts[0] != c.bucketName {
		return fmt.Errorf("invalid GCS URL format or bucket mismatch")
	}

	obj := c.client.Bucket(c.bucketName).Object(parts[1])
	if err := obj.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete file: %v", err)
	}

	return nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}

var _ service.MediaUploadService = (*CloudStorageClient)(nil)
