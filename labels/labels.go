// Package labels maps model class indices to the glyphs shown to the
// user. The table file lists one label per line, in model output order.
package labels

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrNoLabels    = errors.New("label table is empty")
	ErrNoneInRange = errors.New("no label within the configured range")
)

// Table is the raw class-index to label mapping, in model output order.
type Table []string

// Load reads a newline-delimited label table from path.
func Load(path string) (Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open label table")
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads one label per line. Trailing blank lines are dropped.
// Blank lines in the middle keep their class index so the table stays
// aligned with the model output, they just never match a policy.
func Parse(r io.Reader) (Table, error) {
	var table Table

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		table = append(table, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "cannot read label table")
	}

	for len(table) > 0 && table[len(table)-1] == "" {
		table = table[:len(table)-1]
	}
	if len(table) == 0 {
		return nil, ErrNoLabels
	}
	return table, nil
}
