package raster

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"

	"github.com/ryuichi1/hiranaga-demo-app/encoding/ink"
)

func TestFitMatrixCentersBounds(t *testing.T) {
	boxes := []ink.Bounds{
		{MinX: 4, MinY: 4, MaxX: 96, MaxY: 16},
		{MinX: 0, MinY: 0, MaxX: 300, MaxY: 300},
		{MinX: 120, MinY: 40, MaxX: 121, MaxY: 290},
		{MinX: 12.5, MinY: 200, MaxX: 13.25, MaxY: 201},
	}

	for _, b := range boxes {
		m := FitMatrix(b, 300, 64, 220)
		cx, cy := b.Center()
		p := m.TransformPoint(gg.Pt(cx, cy))
		assert.InDelta(t, 150.0, p.X, 1e-9)
		assert.InDelta(t, 150.0, p.Y, 1e-9)
	}
}

func TestFitMatrixKeepsNaturalSize(t *testing.T) {
	// 92x12 box, larger side already inside [64, 220]
	b := ink.Bounds{MinX: 4, MinY: 4, MaxX: 96, MaxY: 16}
	m := FitMatrix(b, 300, 64, 220)
	assert.Equal(t, 1.0, m.A)
	assert.Equal(t, 1.0, m.E)
}

func TestFitMatrixGrowsSmallDrawing(t *testing.T) {
	// 10x4 box scales up so the larger side reaches 64
	b := ink.Bounds{MinX: 100, MinY: 100, MaxX: 110, MaxY: 104}
	m := FitMatrix(b, 300, 64, 220)
	assert.InDelta(t, 6.4, m.A, 1e-9)
	assert.InDelta(t, 6.4, m.E, 1e-9)
}

func TestFitMatrixShrinksLargeDrawing(t *testing.T) {
	// 400x100 box scales down so the larger side drops to 220
	b := ink.Bounds{MinX: -50, MinY: 0, MaxX: 350, MaxY: 100}
	m := FitMatrix(b, 300, 64, 220)
	assert.InDelta(t, 0.55, m.A, 1e-9)
}

func TestFitMatrixDegenerateBox(t *testing.T) {
	b := ink.Bounds{MinX: 70, MinY: 80, MaxX: 70, MaxY: 80}
	m := FitMatrix(b, 300, 64, 220)
	assert.Equal(t, 1.0, m.A)

	p := m.TransformPoint(gg.Pt(70, 80))
	assert.InDelta(t, 150.0, p.X, 1e-9)
	assert.InDelta(t, 150.0, p.Y, 1e-9)
}

func TestFitMatrixCollinearStroke(t *testing.T) {
	// Horizontal stroke at y=10 spanning x 10..90, padded by half a
	// 12-wide pen. Natural size, so endpoints land symmetrically
	// around the canvas center.
	b := ink.Bounds{MinX: 4, MinY: 4, MaxX: 96, MaxY: 16}
	m := FitMatrix(b, 300, 64, 220)

	p := m.TransformPoint(gg.Pt(10, 10))
	assert.InDelta(t, 110.0, p.X, 1e-9)
	assert.InDelta(t, 150.0, p.Y, 1e-9)

	q := m.TransformPoint(gg.Pt(90, 10))
	assert.InDelta(t, 190.0, q.X, 1e-9)
	assert.InDelta(t, 150.0, q.Y, 1e-9)
}
