package storage

import (
	"context"
	"io"

	"github.com/marcos-nsantos/image-resizer/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

type ObjectStore interface {
	Get(ctx context.Context, ref entity.ObjectRef) ([]byte, error)
	Put(ctx context.Context, ref entity.ObjectRef, body io.Reader, contentType string, size int64) error
	// List returns every object under prefix, following pagination.
	List(ctx context.Context, bucket, prefix string) ([]entity.ObjectRef, error)
	Delete(ctx context.Context, ref entity.ObjectRef) error
}

type ImageProcessor interface {
	Thumbnail(data []byte, maxWidth, maxHeight int) (*entity.ProcessedImage, error)
}
