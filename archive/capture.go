// Package archive reads and writes .inkz capture archives: a zip that
// bundles the drawing payload with its metadata and an optional
// rendered preview.
package archive

import (
	"time"

	"github.com/ryuichi1/hiranaga-demo-app/encoding/ink"
	"github.com/ryuichi1/hiranaga-demo-app/recognizer"
)

// Ext is the file extension of a capture archive, without the dot.
const Ext = "inkz"

// Meta describes a capture. It is stored as <id>.json inside the
// archive.
type Meta struct {
	ID          string              `json:"id"`
	CreatedAt   time.Time           `json:"createdAt"`
	Canvas      int                 `json:"canvas"`
	StrokeCount int                 `json:"strokeCount"`
	Results     []recognizer.Result `json:"results,omitempty"`
}

// Capture is the in-memory form of one archive.
type Capture struct {
	Meta    Meta
	Drawing *ink.Drawing
	Preview []byte
}

// NewCapture wraps a drawing for archiving. Results and Preview can be
// filled in afterwards.
func NewCapture(d *ink.Drawing, canvas int) *Capture {
	return &Capture{
		Meta: Meta{
			ID:          d.ID,
			CreatedAt:   time.Now(),
			Canvas:      canvas,
			StrokeCount: len(d.Snapshot().Strokes),
		},
		Drawing: d,
	}
}
