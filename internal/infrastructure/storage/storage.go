package storage

import (
	"context"
	"fmt"

	adapter "github.com/marcos-nsantos/image-resizer/internal/adapter/storage"
	"github.com/marcos-nsantos/image-resizer/internal/infrastructure/config"
)

// New returns the object store selected by STORAGE_DRIVER.
func New(ctx context.Context, cfg *config.Config) (adapter.ObjectStore, error) {
	switch cfg.Storage.Driver {
	case config.DriverS3, "":
		s, err := NewS3Storage(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverMinio:
		s, err := NewMinioStorage(cfg.S3)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
