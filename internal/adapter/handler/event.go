package handler

import (
	"fmt"
	"net/url"

	"github.com/aws/aws-lambda-go/events"

	"github.com/marcos-nsantos/image-resizer/internal/domain"
	"github.com/marcos-nsantos/image-resizer/internal/domain/entity"
)

// RecordsFromS3Event converts an S3 (or MinIO) bucket notification into
// object references. Keys arrive URL encoded.
func RecordsFromS3Event(event events.S3Event) ([]entity.ObjectRef, error) {
	records := make([]entity.ObjectRef, 0, len(event.Records))

	for i, rec := range event.Records {
		bucket := rec.S3.Bucket.Name
		key := rec.S3.Object.URLDecodedKey
		if key == "" && rec.S3.Object.Key != "" {
			decoded, err := url.QueryUnescape(rec.S3.Object.Key)
			if err != nil {
				return nil, fmt.Errorf("%w: record %d: decoding key %q: %v", domain.ErrInvalidEvent, i, rec.S3.Object.Key, err)
			}
			key = decoded
		}

		if bucket == "" || key == "" {
			return nil, fmt.Errorf("%w: record %d is missing bucket or key", domain.ErrInvalidEvent, i)
		}

		records = append(records, entity.NewObjectRef(bucket, key))
	}

	return records, nil
}
