package domain

import "errors"

var (
	ErrObjectNotFound   = errors.New("object not found")
	ErrUnsupportedImage = errors.New("unsupported image")
	ErrInvalidEvent     = errors.New("invalid event")
)
