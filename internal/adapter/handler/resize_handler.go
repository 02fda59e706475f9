package handler

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-resizer/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/image-resizer/internal/pkg/apperror"
	"github.com/marcos-nsantos/image-resizer/internal/pkg/httputil"
)

type ResizeHandler struct {
	resizeSvc ResizeService
	logger    *zap.Logger
}

func NewResizeHandler(resizeSvc ResizeService, logger *zap.Logger) *ResizeHandler {
	return &ResizeHandler{resizeSvc: resizeSvc, logger: logger}
}

// HandleLambda is the Lambda entry point for S3 ObjectCreated notifications.
// Errors are returned as is so the invocation is marked failed.
func (h *ResizeHandler) HandleLambda(ctx context.Context, event events.S3Event) (response.StatusResponse, error) {
	logger := withLambdaRequestID(ctx, h.logger)

	records, err := RecordsFromS3Event(event)
	if err != nil {
		logger.Error("invalid s3 event", zap.Error(err))
		return response.StatusResponse{}, err
	}

	result, err := h.resizeSvc.Resize(ctx, records)
	if err != nil {
		logger.Error("resize failed", zap.Int("records", len(records)), zap.Error(err))
		return response.StatusResponse{}, err
	}

	return response.FromResizeResult(result), nil
}

// Handle accepts the same notification body over HTTP, as sent by MinIO
// webhook targets.
func (h *ResizeHandler) Handle(c *gin.Context) {
	var event events.S3Event
	if err := c.ShouldBindJSON(&event); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	records, err := RecordsFromS3Event(event)
	if err != nil {
		httputil.HandleError(c, apperror.FromError(err))
		return
	}

	result, err := h.resizeSvc.Resize(c.Request.Context(), records)
	if err != nil {
		appErr := apperror.FromError(err)
		if appErr.StatusCode >= http.StatusInternalServerError {
			_ = c.Error(err)
		}
		httputil.HandleError(c, appErr)
		return
	}

	httputil.OK(c, response.FromResizeResult(result))
}

func withLambdaRequestID(ctx context.Context, logger *zap.Logger) *zap.Logger {
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		return logger.With(zap.String("aws_request_id", lc.AwsRequestID))
	}
	return logger
}
