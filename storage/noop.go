package storage

import (
	"context"
	"errors"
	"io"
)

var ErrUploadsDisabled = errors.New("file uploads are not configured")

// noopUploader используется, когда хранилище R2 не настроено.
// Чтение публичных URL отдаёт пустую строку, загрузка возвращает ошибку.
type noopUploader struct{}

func NewNoopUploader() FileUploader {
	return noopUploader{}
}

func (noopUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error) {
	return nil, ErrUploadsDisabled
}

func (noopUploader) Delete(ctx context.Context, key string) error {
	return ErrUploadsDisabled
}

func (noopUploader) GetPublicURL(key string) string {
	return ""
}
