package ink

// Bounds is the axis-aligned box around a set of stroke points.
// MinX <= MaxX and MinY <= MaxY hold whenever the box exists; a single
// point yields a zero-size box.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Bounds computes the box enclosing every point of the snapshot in a
// single pass. ok is false when the snapshot has no points.
func (s Snapshot) Bounds() (b Bounds, ok bool) {
	for _, st := range s.Strokes {
		for _, p := range st.Points {
			x, y := float64(p.X), float64(p.Y)
			if !ok {
				b = Bounds{MinX: x, MinY: y, MaxX: x, MaxY: y}
				ok = true
				continue
			}
			if x < b.MinX {
				b.MinX = x
			}
			if x > b.MaxX {
				b.MaxX = x
			}
			if y < b.MinY {
				b.MinY = y
			}
			if y > b.MaxY {
				b.MaxY = y
			}
		}
	}
	return b, ok
}

// Width returns the horizontal extent of the box.
func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent of the box.
func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

// Center returns the midpoint of the box.
func (b Bounds) Center() (x, y float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2
}

// Pad grows the box by margin on every side.
func (b Bounds) Pad(margin float64) Bounds {
	return Bounds{
		MinX: b.MinX - margin,
		MinY: b.MinY - margin,
		MaxX: b.MaxX + margin,
		MaxY: b.MaxY + margin,
	}
}

// Clamp restricts the box to the rectangle (0,0)-(w,h), so padding never
// pushes it off the capture surface.
func (b Bounds) Clamp(w, h float64) Bounds {
	return Bounds{
		MinX: clamp(b.MinX, 0, w),
		MinY: clamp(b.MinY, 0, h),
		MaxX: clamp(b.MaxX, 0, w),
		MaxY: clamp(b.MaxY, 0, h),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
