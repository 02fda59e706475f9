package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-resizer/internal/adapter/handler"
	"github.com/marcos-nsantos/image-resizer/internal/infrastructure/config"
	"github.com/marcos-nsantos/image-resizer/internal/infrastructure/observability"
	"github.com/marcos-nsantos/image-resizer/internal/infrastructure/storage"
	"github.com/marcos-nsantos/image-resizer/internal/usecase/resize"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log, "resizer")
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	store, err := storage.New(context.Background(), cfg)
	if err != nil {
		logger.Fatal("failed to create object store", zap.Error(err))
	}

	resizeSvc := resize.NewService(store, storage.NewImageProcessor(), cfg.Resizer, logger)
	resizeHandler := handler.NewResizeHandler(resizeSvc, logger)

	logger.Info("resizer ready",
		zap.String("dest_bucket", cfg.Resizer.DestBucket),
		zap.String("dest_prefix", cfg.Resizer.DestPrefix),
		zap.Int("target_width", cfg.Resizer.TargetWidth),
		zap.Int("target_height", cfg.Resizer.TargetHeight),
	)

	lambda.Start(resizeHandler.HandleLambda)
}
