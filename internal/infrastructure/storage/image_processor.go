package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/marcos-nsantos/image-resizer/internal/domain"
	"github.com/marcos-nsantos/image-resizer/internal/domain/entity"
)

const (
	DefaultQuality = 85
)

type ImageProcessorImpl struct {
	quality int
}

func NewImageProcessor() *ImageProcessorImpl {
	return &ImageProcessorImpl{quality: DefaultQuality}
}

// Thumbnail decodes data, applies its EXIF orientation and shrinks it to fit
// inside maxWidth x maxHeight. Images that already fit keep their size.
// The result is re-encoded in the source format when that is JPEG, PNG or
// WEBP and as JPEG otherwise. No metadata is carried over, so the
// orientation tag is gone from the output.
func (p *ImageProcessorImpl) Thumbnail(data []byte, maxWidth, maxHeight int) (*entity.ProcessedImage, error) {
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", maxWidth, maxHeight)
	}

	_, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnsupportedImage, err)
	}
	format := entity.ParseImageFormat(name).OutputFormat()

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", domain.ErrUnsupportedImage, name, err)
	}

	img = imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)

	out, err := p.encode(img, format)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &entity.ProcessedImage{
		Data:   out,
		Format: format,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

func (p *ImageProcessorImpl) encode(img image.Image, format entity.ImageFormat) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case entity.FormatPNG:
		if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
			return nil, fmt.Errorf("encoding png: %w", err)
		}
	case entity.FormatWEBP:
		if err := webp.Encode(&buf, img, &webp.Options{Quality: float32(p.quality)}); err != nil {
			return nil, fmt.Errorf("encoding webp: %w", err)
		}
	default:
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(p.quality)); err != nil {
			return nil, fmt.Errorf("encoding jpeg: %w", err)
		}
	}

	return buf.Bytes(), nil
}
