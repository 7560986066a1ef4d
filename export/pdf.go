// Package export renders captures into portable formats.
package export

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/unidoc/unipdf/v3/contentstream"
	"github.com/unidoc/unipdf/v3/contentstream/draw"
	"github.com/unidoc/unipdf/v3/creator"

	"github.com/ryuichi1/hiranaga-demo-app/archive"
)

var pdfPageSize = creator.PageSize{445, 445}

const fallbackCanvas = 300

// PDFOptions tune the generated document.
type PDFOptions struct {
	// Results prints the ranked guesses in the page footer. The
	// standard PDF fonts carry no kana, so glyphs are listed as code
	// points.
	Results bool
	// Width is the stroke width in capture units. Zero keeps the pen
	// invisible-thin, so callers normally pass their configured width.
	Width float64
}

// PDF draws the capture as vector stroke paths on one square page.
func PDF(c *archive.Capture, opts PDFOptions) (*creator.Creator, error) {
	if c.Drawing == nil || c.Drawing.IsEmpty() {
		return nil, errors.New("capture carries no ink")
	}

	canvas := float64(c.Meta.Canvas)
	if canvas <= 0 {
		// archives from before the canvas field
		canvas = fallbackCanvas
	}

	cr := creator.New()
	cr.SetPageSize(pdfPageSize)
	page := cr.NewPage()

	ratio := cr.Width() / canvas

	cc := contentstream.NewContentCreator()
	for _, stroke := range c.Drawing.Snapshot().Strokes {
		if len(stroke.Points) < 2 {
			continue
		}

		path := draw.NewPath()
		for _, p := range stroke.Points {
			x := float64(p.X) * ratio
			y := float64(p.Y) * ratio
			path = path.AppendPoint(draw.NewPoint(x, cr.Height()-y))
		}

		cc.Add_q()
		cc.Add_w(opts.Width * ratio)
		cc.Add_rg(0, 0, 0)
		draw.DrawPathWithCreator(path, cc)
		cc.Add_S()
		cc.Add_Q()
	}

	if err := page.AppendContentStream(string(cc.Operations().Bytes())); err != nil {
		return nil, errors.Wrap(err, "cannot append stroke paths")
	}

	if opts.Results && len(c.Meta.Results) > 0 {
		cr.DrawFooter(func(block *creator.Block, args creator.FooterFunctionArgs) {
			p := cr.NewParagraph(resultsLine(c.Meta))
			p.SetFontSize(10)
			p.SetPos(20, block.Height()-14)
			block.Draw(p)
		})
	}

	return cr, nil
}

// WritePDF writes the capture as a PDF document at path.
func WritePDF(path string, c *archive.Capture, opts PDFOptions) error {
	cr, err := PDF(c, opts)
	if err != nil {
		return err
	}
	return cr.WriteToFile(path)
}

func resultsLine(m archive.Meta) string {
	var b strings.Builder
	for i, r := range m.Results {
		if i > 0 {
			b.WriteString("   ")
		}
		for _, g := range r.Glyph {
			fmt.Fprintf(&b, "U+%04X", g)
		}
		fmt.Fprintf(&b, " (%.2f)", r.Confidence)
	}
	return b.String()
}
