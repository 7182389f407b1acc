package qrcode

import (
	"encoding/base64"
	"fmt"
	"strings"

	goqrcode "github.com/skip2/go-qrcode"

	"github.com/samandr77/microservices/pix/internal/entity"
)

const MediaTypePNG = "image/png"

// Renderer draws payloads as PNG QR codes.
type Renderer struct {
	size  int
	level goqrcode.RecoveryLevel
}

// NewRenderer returns a renderer producing size x size pixel images.
func NewRenderer(size int, level goqrcode.RecoveryLevel) *Renderer {
	return &Renderer{
		size:  size,
		level: level,
	}
}

// ParseRecoveryLevel maps low, medium, high and highest to the QR error correction levels.
func ParseRecoveryLevel(s string) (goqrcode.RecoveryLevel, error) {
	switch strings.ToLower(s) {
	case "low", "l":
		return goqrcode.Low, nil
	case "medium", "m":
		return goqrcode.Medium, nil
	case "high", "q":
		return goqrcode.High, nil
	case "highest", "h":
		return goqrcode.Highest, nil
	default:
		return goqrcode.Low, fmt.Errorf("unknown qr recovery level %q", s)
	}
}

func (r *Renderer) Render(payload string) (entity.Image, error) {
	q, err := goqrcode.New(payload, r.level)
	if err != nil {
		return entity.Image{}, fmt.Errorf("encode qr code: %w", err)
	}

	png, err := q.PNG(r.size)
	if err != nil {
		return entity.Image{}, fmt.Errorf("draw png: %w", err)
	}

	return entity.Image{
		MediaType: MediaTypePNG,
		Content:   base64.StdEncoding.EncodeToString(png),
	}, nil
}
