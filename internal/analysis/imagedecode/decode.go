// Package imagedecode turns the base64 image field of an analyze request into
// pixels plus the mean color used by the theme rules.
package imagedecode

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/domain"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/constants"
)

const dataURLMarker = "base64,"

var (
	ErrEmpty         = errors.New("image payload is empty")
	ErrInvalidBase64 = errors.New("image payload is not valid base64")
	ErrTooManyPixels = errors.New("image dimensions exceed limit")
)

type Decoded struct {
	Image    image.Image
	Data     []byte
	Format   string
	MIMEType string
	Average  domain.Color
}

// Decode accepts raw base64 or a data URL. Supported formats are PNG, JPEG,
// GIF and WebP.
func Decode(payload string) (*Decoded, error) {
	payload = strings.TrimSpace(payload)
	if idx := strings.Index(payload, dataURLMarker); idx != -1 {
		payload = payload[idx+len(dataURLMarker):]
	}
	if payload == "" {
		return nil, ErrEmpty
	}

	data, err := decodeBase64(payload)
	if err != nil {
		return nil, err
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("read image header: %w", err)
	}
	if cfg.Width*cfg.Height > constants.MaxImagePixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooManyPixels, cfg.Width, cfg.Height)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	return &Decoded{
		Image:    img,
		Data:     data,
		Format:   format,
		MIMEType: "image/" + format,
		Average:  AverageColor(img),
	}, nil
}

func decodeBase64(payload string) ([]byte, error) {
	if data, err := base64.StdEncoding.DecodeString(payload); err == nil {
		return data, nil
	}
	data, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
	if err != nil {
		return nil, ErrInvalidBase64
	}
	return data, nil
}

// AverageColor scales img to a fixed square and returns the mean RGB over
// all pixels of the scaled copy.
func AverageColor(img image.Image) domain.Color {
	size := constants.ImageAnalysisSize
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	var r, g, b uint64
	for i := 0; i < len(dst.Pix); i += 4 {
		r += uint64(dst.Pix[i])
		g += uint64(dst.Pix[i+1])
		b += uint64(dst.Pix[i+2])
	}

	n := float64(size * size)
	return domain.Color{
		R: float64(r) / n,
		G: float64(g) / n,
		B: float64(b) / n,
	}
}
