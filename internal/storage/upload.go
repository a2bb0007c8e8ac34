package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Uploader is the contract services depend on.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// ObjectKey builds a collision-resistant storage key: prefix/<uuid><ext>.
func ObjectKey(prefix, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), ext)
}

// UploadFileHeader uploads a multipart file and returns its public URL.
func UploadFileHeader(
	ctx context.Context,
	client Uploader,
	key string,
	file *multipart.FileHeader,
) (string, error) {

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	return client.Upload(ctx, key, f, file.Header.Get("Content-Type"))
}
