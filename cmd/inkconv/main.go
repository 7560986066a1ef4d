package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ryuichi1/hiranaga-demo-app/archive"
	"github.com/ryuichi1/hiranaga-demo-app/config"
	"github.com/ryuichi1/hiranaga-demo-app/export"
	"github.com/ryuichi1/hiranaga-demo-app/recognizer"
)

func main() {
	inputName := flag.String("i", "", "capture archive to convert")
	outputName := flag.String("o", "", "output file, .pdf or .png (default: input name with .pdf)")
	withResults := flag.Bool("r", false, "append recognition results to a pdf")
	flag.Parse()

	if err := convert(*inputName, *outputName, *withResults); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func convert(inputName, outputName string, withResults bool) error {
	if inputName == "" {
		return errors.New("missing input file")
	}
	if outputName == "" {
		nameOnly := strings.TrimSuffix(inputName, filepath.Ext(inputName))
		outputName = nameOnly + ".pdf"
	}

	capture, err := archive.ReadFile(inputName)
	if err != nil {
		return fmt.Errorf("can't read archive: %w", err)
	}

	switch strings.ToLower(filepath.Ext(outputName)) {
	case ".pdf":
		return export.WritePDF(outputName, capture, export.PDFOptions{Results: withResults})
	case ".png":
		data, err := capturePNG(capture)
		if err != nil {
			return err
		}
		return os.WriteFile(outputName, data, 0644)
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(outputName))
	}
}

// capturePNG prefers the preview stored in the archive and re-renders
// the ink only when there is none.
func capturePNG(capture *archive.Capture) ([]byte, error) {
	if len(capture.Preview) > 0 {
		return capture.Preview, nil
	}

	cfg := config.Default()
	if capture.Meta.Canvas > 0 {
		cfg.CanvasSize = capture.Meta.Canvas
	}
	rec := recognizer.New(recognizer.Config{Params: cfg})
	return export.PNG(rec, capture.Drawing.Snapshot())
}
