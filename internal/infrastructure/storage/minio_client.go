package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/marcos-nsantos/image-resizer/internal/domain"
	"github.com/marcos-nsantos/image-resizer/internal/domain/entity"
	"github.com/marcos-nsantos/image-resizer/internal/infrastructure/config"
)

// MinioStorage talks to a self-hosted MinIO server.
type MinioStorage struct {
	client *minio.Client
}

func NewMinioStorage(cfg config.S3Config) (*MinioStorage, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio driver requires S3_ENDPOINT")
	}

	endpoint, secure := minioEndpoint(cfg.Endpoint, cfg.UseSSL)

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: secure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("creating minio client: %w", err)
	}

	return &MinioStorage{client: client}, nil
}

// minioEndpoint accepts either host:port or a full URL. A scheme, when
// present, decides TLS.
func minioEndpoint(raw string, useSSL bool) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw, useSSL
	}
	return u.Host, u.Scheme == "https"
}

func (s *MinioStorage) Get(ctx context.Context, ref entity.ObjectRef) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, ref.Bucket, ref.Key, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.wrap(err, "getting", ref)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, s.wrap(err, "reading", ref)
	}
	return data, nil
}

func (s *MinioStorage) Put(ctx context.Context, ref entity.ObjectRef, body io.Reader, contentType string, size int64) error {
	_, err := s.client.PutObject(ctx, ref.Bucket, ref.Key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("uploading %s to minio: %w", ref, err)
	}
	return nil
}

func (s *MinioStorage) List(ctx context.Context, bucket, prefix string) ([]entity.ObjectRef, error) {
	var refs []entity.ObjectRef

	for obj := range s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("listing minio://%s/%s: %w", bucket, prefix, obj.Err)
		}
		refs = append(refs, entity.NewObjectRef(bucket, obj.Key))
	}

	return refs, nil
}

func (s *MinioStorage) Delete(ctx context.Context, ref entity.ObjectRef) error {
	if err := s.client.RemoveObject(ctx, ref.Bucket, ref.Key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("deleting %s from minio: %w", ref, err)
	}
	return nil
}

func (s *MinioStorage) wrap(err error, op string, ref entity.ObjectRef) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%w: %s", domain.ErrObjectNotFound, ref)
	}
	return fmt.Errorf("%s %s from minio: %w", op, ref, err)
}
