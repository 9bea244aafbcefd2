package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

const (
	margin     = 48
	cardW      = 215
	cardH      = 300
	gap        = 8
	perRow     = 8
	qrSize     = 400
	pipH       = 14
	pipW       = 20
	pipGap     = 4
	maxPips    = 8
	rowSpacing = cardH + pipH + 3*gap
)

var (
	background  = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	placeholder = color.NRGBA{R: 0x9a, G: 0x9a, B: 0xa8, A: 0xff}
	pipColor    = color.NRGBA{R: 0x2b, G: 0x6c, B: 0xb0, A: 0xff}
)

// ComposeDeckImage lays cards out in rows under a header band, with the QR
// code top-right. cards and counts are parallel; a nil card is drawn as a
// grey placeholder. Each card gets count pips underneath, capped at maxPips.
func ComposeDeckImage(cards []image.Image, counts []int, qr image.Image) image.Image {
	rows := (len(cards) + perRow - 1) / perRow
	if rows == 0 {
		rows = 1
	}
	w := 2*margin + perRow*cardW + (perRow-1)*gap
	top := 2*margin + qrSize
	h := top + rows*rowSpacing + margin
	canvas := imaging.New(w, h, background)

	if qr != nil {
		q := imaging.Resize(qr, qrSize, qrSize, imaging.Lanczos)
		canvas = imaging.Paste(canvas, q, image.Pt(w-margin-qrSize, margin))
	}

	for i, c := range cards {
		x := margin + (i%perRow)*(cardW+gap)
		y := top + (i/perRow)*rowSpacing
		var tile image.Image
		if c != nil {
			tile = imaging.Fill(c, cardW, cardH, imaging.Center, imaging.Lanczos)
		} else {
			tile = imaging.New(cardW, cardH, placeholder)
		}
		canvas = imaging.Paste(canvas, tile, image.Pt(x, y))

		count := 0
		if i < len(counts) {
			count = min(counts[i], maxPips)
		}
		pip := imaging.New(pipW, pipH, pipColor)
		for p := 0; p < count; p++ {
			canvas = imaging.Paste(canvas, pip, image.Pt(x+p*(pipW+pipGap), y+cardH+gap))
		}
	}

	return canvas
}
