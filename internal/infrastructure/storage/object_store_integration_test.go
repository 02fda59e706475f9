package storage_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/marcos-nsantos/image-resizer/internal/adapter/storage"
	"github.com/marcos-nsantos/image-resizer/internal/domain"
	"github.com/marcos-nsantos/image-resizer/internal/domain/entity"
	"github.com/marcos-nsantos/image-resizer/internal/infrastructure/storage"
)

func TestObjectStore_Integration(t *testing.T) {
	m := SetupTestMinio(t)
	defer m.Cleanup(t)

	ctx := context.Background()

	s3Store, err := storage.NewS3Storage(ctx, m.S3Config())
	require.NoError(t, err)

	minioStore, err := storage.NewMinioStorage(m.S3Config())
	require.NoError(t, err)

	stores := map[string]adapter.ObjectStore{
		"s3":    s3Store,
		"minio": minioStore,
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			prefix := name + "/originals/"

			t.Run("put and get", func(t *testing.T) {
				ref := entity.NewObjectRef(testBucket, prefix+"a.jpg")
				body := []byte("image bytes")

				err := store.Put(ctx, ref, bytes.NewReader(body), "image/jpeg", int64(len(body)))
				require.NoError(t, err)

				data, err := store.Get(ctx, ref)
				require.NoError(t, err)
				assert.Equal(t, body, data)

				info, err := m.Client.StatObject(ctx, testBucket, ref.Key, minio.StatObjectOptions{})
				require.NoError(t, err)
				assert.Equal(t, "image/jpeg", info.ContentType)
			})

			t.Run("get missing object", func(t *testing.T) {
				data, err := store.Get(ctx, entity.NewObjectRef(testBucket, prefix+"missing.jpg"))
				assert.Nil(t, data)
				assert.ErrorIs(t, err, domain.ErrObjectNotFound)
			})

			t.Run("list only returns keys under prefix", func(t *testing.T) {
				for _, key := range []string{prefix + "b.jpg", prefix + "nested/c.jpg", name + "/resized/a.jpg"} {
					require.NoError(t, store.Put(ctx, entity.NewObjectRef(testBucket, key), bytes.NewReader([]byte("x")), "image/jpeg", 1))
				}

				refs, err := store.List(ctx, testBucket, prefix)
				require.NoError(t, err)

				keys := make([]string, 0, len(refs))
				for _, r := range refs {
					assert.Equal(t, testBucket, r.Bucket)
					keys = append(keys, r.Key)
				}
				assert.ElementsMatch(t, []string{prefix + "a.jpg", prefix + "b.jpg", prefix + "nested/c.jpg"}, keys)
			})

			t.Run("delete", func(t *testing.T) {
				ref := entity.NewObjectRef(testBucket, prefix+"b.jpg")
				require.NoError(t, store.Delete(ctx, ref))

				_, err := store.Get(ctx, ref)
				assert.ErrorIs(t, err, domain.ErrObjectNotFound)
			})

			t.Run("list empty prefix", func(t *testing.T) {
				refs, err := store.List(ctx, testBucket, name+"/nothing-here/")
				require.NoError(t, err)
				assert.Empty(t, refs)
			})
		})
	}
}
