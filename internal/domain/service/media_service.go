package service

import (
	"context"
	"io"
)

// MediaUploadService is implemented by the Cloudinary and Cloud
// Storage clients. URLs returned are delivery URLs, already rewritten
// to the compressed form where the provider supports it.
type MediaUploadService interface {
	UploadImage(ctx context.Context, file io.Reader, contentType, filename string) (string, error)
	DeleteImage(ctx context.Context, imageURL string) error
	Close() error
}
