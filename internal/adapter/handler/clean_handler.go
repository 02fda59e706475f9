package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-resizer/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/image-resizer/internal/pkg/apperror"
	"github.com/marcos-nsantos/image-resizer/internal/pkg/httputil"
)

type CleanHandler struct {
	cleanSvc CleanService
	logger   *zap.Logger
}

func NewCleanHandler(cleanSvc CleanService, logger *zap.Logger) *CleanHandler {
	return &CleanHandler{cleanSvc: cleanSvc, logger: logger}
}

// HandleLambda takes no input; the bucket and prefixes are fixed.
func (h *CleanHandler) HandleLambda(ctx context.Context) (response.StatusResponse, error) {
	result, err := h.cleanSvc.Clean(ctx)
	if err != nil {
		withLambdaRequestID(ctx, h.logger).Error("clean failed", zap.Error(err))
		return response.StatusResponse{}, err
	}

	return response.FromCleanResult(result), nil
}

func (h *CleanHandler) Handle(c *gin.Context) {
	result, err := h.cleanSvc.Clean(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		httputil.HandleError(c, apperror.FromError(err))
		return
	}

	httputil.OK(c, response.FromCleanResult(result))
}
