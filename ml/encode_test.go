package ml

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniform(c color.Color, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestEncodeShape(t *testing.T) {
	img := uniform(color.White, 300, 300)

	enc, err := Encode(img, 64)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 64, 64, 1}, []int(enc.Shape()))
	assert.Len(t, enc.Data().([]float32), 64*64)
}

func TestEncodeBackgroundIsZero(t *testing.T) {
	enc, err := Encode(uniform(color.White, 128, 128), 32)
	require.NoError(t, err)

	for i, v := range enc.Data().([]float32) {
		if v != 0 {
			t.Fatalf("white pixel %d encoded as %v", i, v)
		}
	}
}

func TestEncodeInkIsHot(t *testing.T) {
	enc, err := Encode(uniform(color.Black, 128, 128), 32)
	require.NoError(t, err)

	for i, v := range enc.Data().([]float32) {
		if v != 1 {
			t.Fatalf("black pixel %d encoded as %v", i, v)
		}
	}
}

func TestEncodeValuesStayInRange(t *testing.T) {
	// sharp edges make the resample kernel overshoot, values must
	// still be clamped
	img := uniform(color.White, 256, 256)
	draw.Draw(img, image.Rect(60, 60, 196, 196), image.NewUniform(color.Black), image.Point{}, draw.Src)

	enc, err := Encode(img, 64)
	require.NoError(t, err)

	var hot int
	for _, v := range enc.Data().([]float32) {
		require.GreaterOrEqual(t, v, float32(0))
		require.LessOrEqual(t, v, float32(1))
		if v > 0.5 {
			hot++
		}
	}
	assert.NotZero(t, hot, "black square lost during encoding")
}

func TestEncodeEmptyRaster(t *testing.T) {
	_, err := Encode(nil, 64)
	assert.ErrorIs(t, err, ErrEmptyRaster)

	_, err = Encode(image.NewRGBA(image.Rect(0, 0, 0, 0)), 64)
	assert.ErrorIs(t, err, ErrEmptyRaster)
}

func TestEncodeInvalidSide(t *testing.T) {
	_, err := Encode(uniform(color.White, 64, 64), 0)
	assert.Error(t, err)
}
