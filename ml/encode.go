// Package ml prepares model inputs from rendered ink.
package ml

import (
	"image"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
	"gorgonia.org/tensor"
)

// ErrEmptyRaster is returned when there is no image to encode.
var ErrEmptyRaster = errors.New("empty raster")

// Encode shrinks img to side×side and packs it into a [1, side, side, 1]
// float32 tensor, row-major. Pixels are grayscaled with the Rec. 601
// luma weights, scaled to [0, 1] and inverted, so ink is hot and the
// background is zero.
func Encode(img image.Image, side int) (*tensor.Dense, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyRaster
	}
	if side <= 0 {
		return nil, errors.Errorf("invalid model input size %d", side)
	}

	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	data := make([]float32, side*side)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			i := dst.PixOffset(x, y)
			r := float32(dst.Pix[i])
			g := float32(dst.Pix[i+1])
			b := float32(dst.Pix[i+2])

			luma := (0.299*r + 0.587*g + 0.114*b) / 255
			if luma < 0 {
				luma = 0
			} else if luma > 1 {
				luma = 1
			}
			data[y*side+x] = 1 - luma
		}
	}

	return tensor.New(tensor.WithShape(1, side, side, 1), tensor.WithBacking(data)), nil
}
