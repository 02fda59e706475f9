package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/image-resizer/internal/infrastructure/config"
)

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("s3 with static credentials", func(t *testing.T) {
		store, err := New(ctx, &config.Config{
			Storage: config.StorageConfig{Driver: config.DriverS3},
			S3: config.S3Config{
				Region:          "us-east-1",
				AccessKeyID:     "key",
				SecretAccessKey: "secret",
			},
		})
		require.NoError(t, err)
		assert.IsType(t, &S3Storage{}, store)
	})

	t.Run("minio", func(t *testing.T) {
		store, err := New(ctx, &config.Config{
			Storage: config.StorageConfig{Driver: config.DriverMinio},
			S3: config.S3Config{
				Endpoint:        "localhost:9000",
				AccessKeyID:     "key",
				SecretAccessKey: "secret",
			},
		})
		require.NoError(t, err)
		assert.IsType(t, &MinioStorage{}, store)
	})

	t.Run("minio without endpoint", func(t *testing.T) {
		store, err := New(ctx, &config.Config{
			Storage: config.StorageConfig{Driver: config.DriverMinio},
		})
		assert.Nil(t, store)
		assert.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		store, err := New(ctx, &config.Config{
			Storage: config.StorageConfig{Driver: "gcs"},
		})
		assert.Nil(t, store)
		assert.Error(t, err)
	})
}

func TestMinioEndpoint(t *testing.T) {
	tests := []struct {
		raw        string
		useSSL     bool
		wantHost   string
		wantSecure bool
	}{
		{"localhost:9000", false, "localhost:9000", false},
		{"127.0.0.1:9000", true, "127.0.0.1:9000", true},
		{"http://minio:9000", true, "minio:9000", false},
		{"https://files.example.com", false, "files.example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			host, secure := minioEndpoint(tt.raw, tt.useSSL)
			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, tt.wantSecure, secure)
		})
	}
}
