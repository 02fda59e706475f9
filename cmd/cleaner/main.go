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
	"github.com/marcos-nsantos/image-resizer/internal/usecase/clean"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log, "cleaner")
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	store, err := storage.New(context.Background(), cfg)
	if err != nil {
		logger.Fatal("failed to create object store", zap.Error(err))
	}

	cleanHandler := handler.NewCleanHandler(clean.NewService(store, logger), logger)

	lambda.Start(cleanHandler.HandleLambda)
}
