package archive

import (
	"archive/zip"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/ryuichi1/hiranaga-demo-app/encoding/ink"
	"github.com/ryuichi1/hiranaga-demo-app/log"
)

// Read parses a capture archive. Entries are matched by extension, so
// the file names inside the zip do not matter beyond that. Unknown
// entries are skipped.
func Read(r io.ReaderAt, size int64) (*Capture, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open archive")
	}

	c := &Capture{}
	for _, f := range zr.File {
		data, err := readEntry(f)
		if err != nil {
			return nil, err
		}

		switch filepath.Ext(f.Name) {
		case ".json":
			if err := json.Unmarshal(data, &c.Meta); err != nil {
				return nil, errors.Wrapf(err, "cannot decode %s", f.Name)
			}
		case ".ink":
			d := &ink.Drawing{}
			if err := d.UnmarshalBinary(data); err != nil {
				return nil, errors.Wrapf(err, "cannot decode %s", f.Name)
			}
			c.Drawing = d
		case ".png":
			c.Preview = data
		default:
			log.Trace.Printf("skipping unknown archive entry %s", f.Name)
		}
	}

	if c.Drawing == nil {
		return nil, errors.New("archive carries no ink payload")
	}
	if c.Meta.ID != "" {
		c.Drawing.ID = c.Meta.ID
	}
	return c, nil
}

// ReadFile opens and parses the capture archive at path.
func ReadFile(path string) (*Capture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open archive")
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "cannot stat archive")
	}
	return Read(file, info.Size())
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open entry %s", f.Name)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read entry %s", f.Name)
	}
	return data, nil
}
