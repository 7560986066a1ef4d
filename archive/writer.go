package archive

import (
	"archive/zip"
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Write streams the capture as a zip archive to w.
func (c *Capture) Write(w io.Writer) error {
	if c.Drawing == nil {
		return errors.New("capture carries no drawing")
	}

	z := zip.NewWriter(w)

	meta, err := json.Marshal(c.Meta)
	if err != nil {
		return errors.Wrap(err, "cannot encode metadata")
	}
	if err := writeEntry(z, c.Meta.ID+".json", meta); err != nil {
		return err
	}

	payload, err := c.Drawing.MarshalBinary()
	if err != nil {
		return errors.Wrap(err, "cannot encode drawing")
	}
	if err := writeEntry(z, c.Meta.ID+".ink", payload); err != nil {
		return err
	}

	if len(c.Preview) > 0 {
		if err := writeEntry(z, c.Meta.ID+".png", c.Preview); err != nil {
			return err
		}
	}

	return z.Close()
}

// WriteFile writes the capture to path, overwriting an existing file.
func (c *Capture) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "cannot create archive")
	}
	defer file.Close()

	return c.Write(file)
}

func writeEntry(z *zip.Writer, name string, data []byte) error {
	entry, err := z.Create(name)
	if err != nil {
		return errors.Wrapf(err, "cannot create entry %s", name)
	}
	if _, err := entry.Write(data); err != nil {
		return errors.Wrapf(err, "cannot write entry %s", name)
	}
	return nil
}
