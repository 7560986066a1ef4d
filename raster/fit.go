// Package raster turns a stroke snapshot into the fixed-size bitmap
// handed to the tensor encoder.
package raster

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/ryuichi1/hiranaga-demo-app/encoding/ink"
)

// FitMatrix builds the transform that centers the stroke bounds on a
// canvas×canvas surface: translate(-boxCenter), scale, translate(canvasCenter).
// The larger box dimension is clamped into [minFit, maxFit] to pick the
// target size; a size already inside the range stays unscaled, so the
// natural drawing size is preserved. A degenerate box (single point,
// zero extent) is never scaled.
func FitMatrix(b ink.Bounds, canvas, minFit, maxFit float64) gg.Matrix {
	raw := math.Max(b.Width(), b.Height())

	scale := 1.0
	if raw > 0 {
		target := raw
		if target < minFit {
			target = minFit
		}
		if target > maxFit {
			target = maxFit
		}
		scale = target / raw
	}

	cx, cy := b.Center()
	half := canvas / 2

	return gg.Translate(half, half).
		Multiply(gg.Scale(scale, scale)).
		Multiply(gg.Translate(-cx, -cy))
}
