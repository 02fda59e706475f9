package response

import (
	"github.com/marcos-nsantos/image-resizer/internal/usecase/clean"
	"github.com/marcos-nsantos/image-resizer/internal/usecase/resize"
)

// StatusResponse is the body returned by both functions.
type StatusResponse struct {
	Status string `json:"status"`
}

func FromResizeResult(result *resize.Result) StatusResponse {
	return StatusResponse{Status: result.Status}
}

func FromCleanResult(result *clean.Result) StatusResponse {
	return StatusResponse{Status: result.Status}
}
