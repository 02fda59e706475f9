package entity

import "strings"

type ImageFormat string

const (
	FormatJPEG ImageFormat = "JPEG"
	FormatPNG  ImageFormat = "PNG"
	FormatWEBP ImageFormat = "WEBP"
	FormatGIF  ImageFormat = "GIF"
	FormatTIFF ImageFormat = "TIFF"
	FormatBMP  ImageFormat = "BMP"
)

// ParseImageFormat normalizes a decoder format name. "jpg" is treated as JPEG.
func ParseImageFormat(name string) ImageFormat {
	f := ImageFormat(strings.ToUpper(strings.TrimSpace(name)))
	if f == "JPG" {
		return FormatJPEG
	}
	return f
}

// OutputFormat returns the encoding used when writing a resized copy.
// Anything other than JPEG, PNG or WEBP is written as JPEG.
func (f ImageFormat) OutputFormat() ImageFormat {
	switch f {
	case FormatJPEG, FormatPNG, FormatWEBP:
		return f
	default:
		return FormatJPEG
	}
}

func (f ImageFormat) ContentType() string {
	if f == FormatJPEG || f == "JPG" {
		return "image/jpeg"
	}
	return "image/" + strings.ToLower(string(f))
}

func (f ImageFormat) String() string {
	return string(f)
}

// ProcessedImage is an encoded, resized image ready to be stored.
type ProcessedImage struct {
	Data   []byte
	Format ImageFormat
	Width  int
	Height int
}

func (p *ProcessedImage) ContentType() string {
	return p.Format.ContentType()
}

func (p *ProcessedImage) Size() int64 {
	return int64(len(p.Data))
}
