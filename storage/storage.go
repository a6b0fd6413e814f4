// Package storage saves uploaded post images.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"Yatube/config"

	"github.com/twinj/uuid"
)

// MaxImageSize caps uploads at 5MB.
const MaxImageSize = 5 << 20

var (
	ErrNotAnImage    = errors.New("upload a valid image")
	ErrImageTooLarge = errors.New("image file too large")
)

// ImageStore persists an upload and returns the reference saved on the post.
// Delete drops a stored image; deleting a missing one is not an error.
type ImageStore interface {
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, ref string) error
	URL(ref string) string
}

// New builds the store selected by STORAGE_BACKEND.
func New(ctx context.Context, cfg *config.Config) (ImageStore, error) {
	switch cfg.StorageBackend {
	case "s3":
		return NewS3Store(ctx, cfg.S3Bucket, cfg.AWSRegion)
	case "", "local":
		return NewLocalStore(cfg.MediaRoot, cfg.MediaURL)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// readImage loads the upload into memory and sniffs its content type.
func readImage(file *multipart.FileHeader) ([]byte, string, error) {
	if file.Size > MaxImageSize {
		return nil, "", ErrImageTooLarge
	}
	f, err := file.Open()
	if err != nil {
		return nil, "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	buf, err := io.ReadAll(io.LimitReader(f, MaxImageSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("read upload: %w", err)
	}
	if len(buf) > MaxImageSize {
		return nil, "", ErrImageTooLarge
	}
	fileType := http.DetectContentType(buf)
	if !strings.HasPrefix(fileType, "image/") {
		return nil, "", ErrNotAnImage
	}
	buf, err = fitWidth(buf, fileType, MaxImageWidth)
	if err != nil {
		return nil, "", err
	}
	return buf, fileType, nil
}

// objectKey names uploads "posts/<uuid><ext>" so user file names never collide.
func objectKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return "posts/" + uuid.NewV4().String() + ext
}
