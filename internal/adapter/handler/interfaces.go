package handler

import (
	"context"

	"github.com/marcos-nsantos/image-resizer/internal/domain/entity"
	"github.com/marcos-nsantos/image-resizer/internal/usecase/clean"
	"github.com/marcos-nsantos/image-resizer/internal/usecase/resize"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type ResizeService interface {
	Resize(ctx context.Context, records []entity.ObjectRef) (*resize.Result, error)
}

type CleanService interface {
	Clean(ctx context.Context) (*clean.Result, error)
}
