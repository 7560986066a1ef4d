package ink

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// HeaderV1 is the magic line at the start of every .ink file, padded to
// a fixed length.
const HeaderV1 = "hiranaga .ink file, version=1   "

// HeaderLen is the byte length of the .ink header.
const HeaderLen = len(HeaderV1)

// UnmarshalBinary implements encoding.BinaryUnmarshaler for
// transforming .ink bytes into a drawing. The previous content of the
// drawing is replaced; an active stroke is never restored.
func (d *Drawing) UnmarshalBinary(data []byte) error {
	r := newReader(data)
	if err := r.checkHeader(); err != nil {
		return err
	}

	nbStrokes, err := r.readNumber()
	if err != nil {
		return err
	}

	strokes := make([]Stroke, nbStrokes)
	for i := uint32(0); i < nbStrokes; i++ {
		stroke, err := r.readStroke()
		if err != nil {
			return err
		}
		strokes[i] = stroke
	}

	d.strokes = strokes
	d.active = nil

	return nil
}

type reader struct {
	bytes.Reader
}

func newReader(data []byte) reader {
	br := bytes.NewReader(data)
	return reader{*br}
}

func (r *reader) checkHeader() error {
	buf := make([]byte, HeaderLen)

	n, err := r.Read(buf)
	if err != nil {
		return err
	}

	if n != HeaderLen {
		return fmt.Errorf("wrong header size")
	}

	if string(buf) != HeaderV1 {
		return fmt.Errorf("unknown header")
	}

	return nil
}

func (r *reader) readNumber() (uint32, error) {
	var nb uint32
	if err := binary.Read(r, binary.LittleEndian, &nb); err != nil {
		return 0, fmt.Errorf("wrong number read")
	}
	return nb, nil
}

func (r *reader) readStroke() (Stroke, error) {
	var stroke Stroke

	nbPoints, err := r.readNumber()
	if err != nil {
		return stroke, err
	}

	if nbPoints == 0 {
		return stroke, nil
	}

	stroke.Points = make([]Point, nbPoints)

	for i := uint32(0); i < nbPoints; i++ {
		p, err := r.readPoint()
		if err != nil {
			return stroke, err
		}

		stroke.Points[i] = p
	}

	return stroke, nil
}

func (r *reader) readPoint() (Point, error) {
	var point Point

	if err := binary.Read(r, binary.LittleEndian, &point.X); err != nil {
		return point, fmt.Errorf("failed to read point")
	}
	if err := binary.Read(r, binary.LittleEndian, &point.Y); err != nil {
		return point, fmt.Errorf("failed to read point")
	}

	return point, nil
}
