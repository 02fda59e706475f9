package resize

import (
	"bytes"
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-resizer/internal/adapter/storage"
	"github.com/marcos-nsantos/image-resizer/internal/domain/entity"
	"github.com/marcos-nsantos/image-resizer/internal/infrastructure/config"
)

// SourcePrefix is the only key prefix the resizer acts on.
const SourcePrefix = "originals/"

const StatusOK = "ok"

type Service struct {
	store          storage.ObjectStore
	imageProcessor storage.ImageProcessor
	cfg            config.ResizerConfig
	logger         *zap.Logger
}

func NewService(
	store storage.ObjectStore,
	imageProcessor storage.ImageProcessor,
	cfg config.ResizerConfig,
	logger *zap.Logger,
) *Service {
	return &Service{
		store:          store,
		imageProcessor: imageProcessor,
		cfg:            cfg,
		logger:         logger,
	}
}

type Result struct {
	Status    string
	Processed int
	Skipped   int
}

// Resize handles records in order. The first failure aborts the batch and
// the remaining records are left untouched; the partial counts are returned
// with the error.
func (s *Service) Resize(ctx context.Context, records []entity.ObjectRef) (*Result, error) {
	result := &Result{}

	for _, src := range records {
		if !src.HasPrefix(SourcePrefix) {
			s.logger.Debug("skipping object outside source prefix",
				zap.String("bucket", src.Bucket),
				zap.String("key", src.Key),
			)
			result.Skipped++
			continue
		}

		dest, err := s.resizeOne(ctx, src)
		if err != nil {
			return result, fmt.Errorf("resizing %s: %w", src, err)
		}

		s.logger.Info("resized image",
			zap.String("source", src.String()),
			zap.String("destination", dest.String()),
		)
		result.Processed++
	}

	result.Status = StatusOK
	return result, nil
}

func (s *Service) resizeOne(ctx context.Context, src entity.ObjectRef) (entity.ObjectRef, error) {
	data, err := s.store.Get(ctx, src)
	if err != nil {
		return entity.ObjectRef{}, err
	}

	img, err := s.imageProcessor.Thumbnail(data, s.cfg.TargetWidth, s.cfg.TargetHeight)
	if err != nil {
		return entity.ObjectRef{}, fmt.Errorf("processing image: %w", err)
	}

	dest := s.Destination(src)
	if err := s.store.Put(ctx, dest, bytes.NewReader(img.Data), img.ContentType(), img.Size()); err != nil {
		return entity.ObjectRef{}, fmt.Errorf("uploading to storage: %w", err)
	}

	return dest, nil
}

// Destination maps a source object to DEST_PREFIX plus its filename, in
// DEST_BUCKET or the source bucket when that is unset.
func (s *Service) Destination(src entity.ObjectRef) entity.ObjectRef {
	bucket := s.cfg.DestBucket
	if bucket == "" {
		bucket = src.Bucket
	}
	return entity.NewObjectRef(bucket, s.cfg.DestPrefix+src.Filename())
}
