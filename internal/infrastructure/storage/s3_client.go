package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/marcos-nsantos/image-resizer/internal/domain"
	"github.com/marcos-nsantos/image-resizer/internal/domain/entity"
	"github.com/marcos-nsantos/image-resizer/internal/infrastructure/config"
)

type S3Storage struct {
	client *s3.Client
}

// NewS3Storage uses static credentials when configured and the default AWS
// credential chain otherwise.
func NewS3Storage(ctx context.Context, cfg config.S3Config) (*S3Storage, error) {
	var opts []func(*s3.Options)

	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.UsePathStyle
		})
	}

	if cfg.HasStaticCredentials() {
		opts = append(opts, func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			)
		})
		return &S3Storage{client: s3.New(s3.Options{}, opts...)}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	return &S3Storage{client: s3.NewFromConfig(awsCfg, opts...)}, nil
}

func (s *S3Storage) Get(ctx context.Context, ref entity.ObjectRef) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(ref.Bucket),
		Key:    aws.String(ref.Key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, fmt.Errorf("%w: %s", domain.ErrObjectNotFound, ref)
		}
		return nil, fmt.Errorf("getting %s from s3: %w", ref, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s from s3: %w", ref, err)
	}
	return data, nil
}

func (s *S3Storage) Put(ctx context.Context, ref entity.ObjectRef, body io.Reader, contentType string, size int64) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(ref.Bucket),
		Key:           aws.String(ref.Key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return fmt.Errorf("uploading %s to s3: %w", ref, err)
	}
	return nil
}

func (s *S3Storage) List(ctx context.Context, bucket, prefix string) ([]entity.ObjectRef, error) {
	var refs []entity.ObjectRef

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing s3://%s/%s: %w", bucket, prefix, err)
		}
		for _, obj := range page.Contents {
			refs = append(refs, entity.NewObjectRef(bucket, aws.ToString(obj.Key)))
		}
	}

	return refs, nil
}

func (s *S3Storage) Delete(ctx context.Context, ref entity.ObjectRef) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(ref.Bucket),
		Key:    aws.String(ref.Key),
	})
	if err != nil {
		return fmt.Errorf("deleting %s from s3: %w", ref, err)
	}
	return nil
}
