package clean

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-resizer/internal/adapter/storage"
)

// Bucket and Prefixes are fixed for the single deployment this cleans.
const Bucket = "image-resizer-yahya"

var Prefixes = []string{"originals/", "resized/"}

type Service struct {
	store    storage.ObjectStore
	bucket   string
	prefixes []string
	logger   *zap.Logger
}

func NewService(store storage.ObjectStore, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		bucket:   Bucket,
		prefixes: Prefixes,
		logger:   logger,
	}
}

type Result struct {
	Status   string
	Deleted  int
	Bucket   string
	Prefixes []string
}

// Clean deletes every object under each prefix, one at a time. A failed
// list or delete stops the run; objects already removed stay removed.
func (s *Service) Clean(ctx context.Context) (*Result, error) {
	result := &Result{Bucket: s.bucket, Prefixes: s.prefixes}

	for _, prefix := range s.prefixes {
		refs, err := s.store.List(ctx, s.bucket, prefix)
		if err != nil {
			return result, fmt.Errorf("listing %s: %w", prefix, err)
		}

		for _, ref := range refs {
			if err := s.store.Delete(ctx, ref); err != nil {
				return result, fmt.Errorf("deleting %s: %w", ref, err)
			}
			s.logger.Debug("deleted object", zap.String("key", ref.Key))
			result.Deleted++
		}
	}

	result.Status = Summary(result.Deleted, s.prefixes, s.bucket)
	s.logger.Info("cleaned bucket",
		zap.String("bucket", s.bucket),
		zap.Strings("prefixes", s.prefixes),
		zap.Int("deleted", result.Deleted),
	)
	return result, nil
}

// Summary renders e.g. "Deleted 3 objects from ['originals/', 'resized/'] in bucket".
func Summary(deleted int, prefixes []string, bucket string) string {
	quoted := make([]string, len(prefixes))
	for i, p := range prefixes {
		quoted[i] = "'" + p + "'"
	}
	return fmt.Sprintf("Deleted %d objects from [%s] in %s", deleted, strings.Join(quoted, ", "), bucket)
}
