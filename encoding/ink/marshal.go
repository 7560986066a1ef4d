package ink

import (
	"bytes"
	"encoding/binary"
)

// MarshalBinary implements encoding.BinaryMarshaler for
// transforming a drawing into .ink bytes. The active stroke, if any,
// is written as the final stroke.
func (d *Drawing) MarshalBinary() (data []byte, err error) {
	w := new(writer)

	w.writeHeader()

	snap := d.Snapshot()
	w.writeNumber(len(snap.Strokes))

	for _, stroke := range snap.Strokes {
		w.writeStroke(stroke)
	}
	data = w.Bytes()

	return
}

type writer struct {
	b bytes.Buffer
}

func (w *writer) Bytes() []byte {
	return w.b.Bytes()
}

func (w *writer) writeHeader() error {
	w.b.Write([]byte(HeaderV1))
	return nil
}

func (w *writer) writeNumber(n int) error {
	binary.Write(&w.b, binary.LittleEndian, uint32(n))
	return nil
}

func (w *writer) writeFloat32(n float32) error {
	binary.Write(&w.b, binary.LittleEndian, n)
	return nil
}

func (w *writer) writeStroke(stroke Stroke) error {
	w.writeNumber(len(stroke.Points))

	for _, point := range stroke.Points {
		w.writePoint(point)
	}

	return nil
}

func (w *writer) writePoint(point Point) error {
	w.writeFloat32(point.X)
	w.writeFloat32(point.Y)

	return nil
}
