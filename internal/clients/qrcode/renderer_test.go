package qrcode_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"testing"

	goqrcode "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/pix/internal/clients/qrcode"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	r := qrcode.NewRenderer(256, goqrcode.Low)

	img, err := r.Render("00020126350014BR.GOV.BCB.PIX0113user@bank.com5204000053039865802BR" +
		"5913EXAMPLE STORE6008BRASILIA62110507TX123456304EDEC")
	require.NoError(t, err)
	require.Equal(t, qrcode.MediaTypePNG, img.MediaType)

	raw, err := base64.StdEncoding.DecodeString(img.Content)
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, 256, decoded.Bounds().Dx())
}

func TestParseRecoveryLevel(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]goqrcode.RecoveryLevel{
		"low":     goqrcode.Low,
		"MEDIUM":  goqrcode.Medium,
		"high":    goqrcode.High,
		"highest": goqrcode.Highest,
	} {
		got, err := qrcode.ParseRecoveryLevel(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := qrcode.ParseRecoveryLevel("extreme")
	require.Error(t, err)
}
