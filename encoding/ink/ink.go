// Package ink holds the stroke data model for one capture session and
// implements the binary codec for .ink files.
package ink

import "github.com/google/uuid"

// Point is a pen position in capture-surface coordinates.
type Point struct {
	X float32
	Y float32
}

// Stroke is one continuous pen-down-to-pen-up point sequence.
type Stroke struct {
	Points []Point
}

// Drawing accumulates the strokes of one input session: an ordered list
// of finished strokes plus at most one active stroke. It is single-writer.
// Renderers and recognizers must work from a Snapshot, never from the
// live Drawing.
type Drawing struct {
	ID string

	strokes []Stroke
	active  []Point
}

// NewDrawing returns an empty drawing with a fresh ID.
func NewDrawing() *Drawing {
	return &Drawing{ID: uuid.New().String()}
}

// Begin starts a new active stroke at p. An unfinished previous active
// stroke is discarded.
func (d *Drawing) Begin(p Point) {
	d.active = []Point{p}
}

// Extend appends p to the active stroke. No-op when no stroke is active.
func (d *Drawing) Extend(p Point) {
	if d.active == nil {
		return
	}
	d.active = append(d.active, p)
}

// End finishes the active stroke, keeping it when it holds at least one
// point. No-op when no stroke is active.
func (d *Drawing) End() {
	if len(d.active) > 0 {
		d.strokes = append(d.strokes, Stroke{Points: d.active})
	}
	d.active = nil
}

// Clear drops every stroke, finished and active.
func (d *Drawing) Clear() {
	d.strokes = nil
	d.active = nil
}

// IsEmpty reports whether the drawing holds no points at all.
func (d *Drawing) IsEmpty() bool {
	return len(d.strokes) == 0 && len(d.active) == 0
}

// Snapshot is an immutable copy of a drawing, handed to the render and
// recognition stages.
type Snapshot struct {
	ID      string
	Strokes []Stroke
}

// Snapshot deep-copies the drawing. The active stroke, if any, is
// included as the final stroke: a capture requested mid-stroke sees the
// ink drawn so far.
func (d *Drawing) Snapshot() Snapshot {
	strokes := make([]Stroke, 0, len(d.strokes)+1)
	for _, s := range d.strokes {
		pts := make([]Point, len(s.Points))
		copy(pts, s.Points)
		strokes = append(strokes, Stroke{Points: pts})
	}
	if len(d.active) > 0 {
		pts := make([]Point, len(d.active))
		copy(pts, d.active)
		strokes = append(strokes, Stroke{Points: pts})
	}
	return Snapshot{ID: d.ID, Strokes: strokes}
}

// IsEmpty reports whether the snapshot holds no strokes.
func (s Snapshot) IsEmpty() bool {
	return len(s.Strokes) == 0
}

// PointCount returns the total number of points across all strokes.
func (s Snapshot) PointCount() int {
	n := 0
	for _, st := range s.Strokes {
		n += len(st.Points)
	}
	return n
}
