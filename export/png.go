package export

import (
	"bytes"
	"image/png"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"github.com/ryuichi1/hiranaga-demo-app/encoding/ink"
	"github.com/ryuichi1/hiranaga-demo-app/recognizer"
)

// PNG renders the snapshot exactly as the recognizer sees it and
// encodes it as PNG.
func PNG(rec *recognizer.Recognizer, snap ink.Snapshot) ([]byte, error) {
	img, err := rec.Render(snap)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "cannot encode png")
	}
	return buf.Bytes(), nil
}

// Thumbnail renders the snapshot and shrinks it to fit inside a
// side×side box.
func Thumbnail(rec *recognizer.Recognizer, snap ink.Snapshot, side uint) ([]byte, error) {
	img, err := rec.Render(snap)
	if err != nil {
		return nil, err
	}

	small := resize.Thumbnail(side, side, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := png.Encode(&buf, small); err != nil {
		return nil, errors.Wrap(err, "cannot encode thumbnail")
	}
	return buf.Bytes(), nil
}
