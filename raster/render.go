package raster

import (
	"image"

	"github.com/gogpu/gg"

	"github.com/ryuichi1/hiranaga-demo-app/encoding/ink"
)

// Style controls how a snapshot is painted. Recognition rasters use a
// much thicker pen than on-screen ink so strokes survive the downsample
// to the model input size.
type Style struct {
	Background gg.RGBA
	Ink        gg.RGBA
	Width      float64
}

// DefaultStyle is black ink on a white background at the given width.
func DefaultStyle(width float64) Style {
	return Style{
		Background: gg.White,
		Ink:        gg.Black,
		Width:      width,
	}
}

// Renderer paints stroke snapshots onto a fixed square canvas.
type Renderer struct {
	size  int
	style Style
}

func NewRenderer(size int, style Style) *Renderer {
	return &Renderer{size: size, style: style}
}

// Size returns the canvas side length in pixels.
func (r *Renderer) Size() int {
	return r.size
}

// Render draws every stroke of the snapshot through m onto a fresh
// canvas. Strokes are polylines with round caps and joins. A stroke
// needs at least two points to leave ink, so an isolated tap is
// invisible to the recognizer.
func (r *Renderer) Render(snap ink.Snapshot, m gg.Matrix) (image.Image, error) {
	dc := gg.NewContext(r.size, r.size)
	defer dc.Close()

	dc.ClearWithColor(r.style.Background)
	dc.SetRGBA(r.style.Ink.R, r.style.Ink.G, r.style.Ink.B, r.style.Ink.A)
	dc.SetLineWidth(r.style.Width)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	for _, stroke := range snap.Strokes {
		if len(stroke.Points) < 2 {
			continue
		}
		first := m.TransformPoint(gg.Pt(float64(stroke.Points[0].X), float64(stroke.Points[0].Y)))
		dc.MoveTo(first.X, first.Y)
		for _, p := range stroke.Points[1:] {
			q := m.TransformPoint(gg.Pt(float64(p.X), float64(p.Y)))
			dc.LineTo(q.X, q.Y)
		}
		if err := dc.Stroke(); err != nil {
			return nil, err
		}
	}

	if err := dc.FlushGPU(); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}
