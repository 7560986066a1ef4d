package labels

import "unicode/utf8"

// Policy decides which labels are eligible results and which glyph
// stands for them.
type Policy interface {
	Keep(label string) (rune, bool)
}

// RangePolicy keeps labels whose leading rune falls inside
// [First, Last]. A multi-rune label collapses to its leading rune.
type RangePolicy struct {
	First, Last rune
}

func (p RangePolicy) Keep(label string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(label)
	if size == 0 || (r == utf8.RuneError && size == 1) {
		return 0, false
	}
	if r < p.First || r > p.Last {
		return 0, false
	}
	return r, true
}

// Entry ties a model class index to its display glyph.
type Entry struct {
	Class int
	Glyph rune
}

// Index is the filtered view of a table: the entries the policy kept,
// in class order. It is immutable once built, so it is safe to share
// across goroutines.
type Index struct {
	entries []Entry
	total   int
}

// NewIndex filters table through policy.
func NewIndex(table Table, policy Policy) (*Index, error) {
	if len(table) == 0 {
		return nil, ErrNoLabels
	}

	idx := &Index{total: len(table)}
	for class, label := range table {
		if glyph, ok := policy.Keep(label); ok {
			idx.entries = append(idx.entries, Entry{Class: class, Glyph: glyph})
		}
	}
	if len(idx.entries) == 0 {
		return nil, ErrNoneInRange
	}
	return idx, nil
}

// Entries returns the kept entries in class order. Treat the slice as
// read-only.
func (i *Index) Entries() []Entry {
	return i.entries
}

// Len is the number of labels that survived filtering.
func (i *Index) Len() int {
	return len(i.entries)
}

// Total is the full class count of the underlying table, and therefore
// the score vector length the model must produce.
func (i *Index) Total() int {
	return i.total
}

// Glyphs returns the kept glyphs as strings, in class order.
func (i *Index) Glyphs() []string {
	out := make([]string, len(i.entries))
	for n, e := range i.entries {
		out[n] = string(e.Glyph)
	}
	return out
}
