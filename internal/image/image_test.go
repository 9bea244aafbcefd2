package imagepkg

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQRPNG(t *testing.T) {
	b, err := GenerateQRPNG("CEAQIAIFB4WDANQAAA", 256)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())

	qr, err := GenerateQRImage("CEAQIAIFB4WDANQAAA", 128)
	require.NoError(t, err)
	assert.Equal(t, 128, qr.Bounds().Dy())
}

func TestComposeDeckImage(t *testing.T) {
	card := imaging.New(cardW, cardH, color.NRGBA{R: 0xff, A: 0xff})
	cards := []image.Image{card, nil, card, card, card, card, card, card, card}
	counts := []int{3, 1, 2, 2, 3, 1, 1, 40, 2}

	out := ComposeDeckImage(cards, counts, nil)
	b := out.Bounds()
	assert.Equal(t, 2*margin+perRow*cardW+(perRow-1)*gap, b.Dx())
	assert.Equal(t, 2*margin+qrSize+2*rowSpacing+margin, b.Dy())

	// First card is red, the second a placeholder.
	top := 2*margin + qrSize
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, out.At(margin+1, top+1))
	assert.Equal(t, placeholder, out.At(margin+cardW+gap+1, top+1))
	// Third pip present under the first card, absent under the second.
	pipY := top + cardH + gap + 1
	assert.Equal(t, pipColor, out.At(margin+2*(pipW+pipGap)+1, pipY))
	assert.Equal(t, background, out.At(margin+cardW+gap+2*(pipW+pipGap)+1, pipY))
}

func TestComposeDeckImage_Empty(t *testing.T) {
	qr := imaging.New(50, 50, color.NRGBA{A: 0xff})
	out := ComposeDeckImage(nil, nil, qr)
	assert.Equal(t, 2*margin+qrSize+rowSpacing+margin, out.Bounds().Dy())
}

func TestDownloadImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/card.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		assert.NoError(t, png.Encode(w, imaging.New(10, 20, color.NRGBA{B: 0xff, A: 0xff})))
	}))
	defer srv.Close()

	img, err := DownloadImage(srv.URL + "/card.png")
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dy())

	_, err = DownloadImage(srv.URL + "/missing.png")
	assert.Error(t, err)
}
