package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ryuichi1/hiranaga-demo-app/encoding/ink"
	"github.com/ryuichi1/hiranaga-demo-app/recognizer"
)

func testDrawing() *ink.Drawing {
	d := ink.NewDrawing()
	d.Begin(ink.Point{X: 1, Y: 2})
	d.Extend(ink.Point{X: 3, Y: 4})
	d.End()
	return d
}

func TestNewEntry(t *testing.T) {
	d := testDrawing()

	e, err := NewEntry(d, []recognizer.Result{{Glyph: "あ", Confidence: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if e.ID != d.ID {
		t.Errorf("id mismatch: %s != %s", e.ID, d.ID)
	}
	if e.PointCount != 2 {
		t.Errorf("expected 2 points got %d", e.PointCount)
	}
	if e.Hash == "" {
		t.Error("entry has no hash")
	}

	same, err := HashDrawing(testDrawingAt(1, 2, 3, 4))
	if err != nil {
		t.Fatal(err)
	}
	if e.Hash != same {
		t.Error("identical ink hashes differently")
	}
}

func testDrawingAt(coords ...float32) *ink.Drawing {
	d := ink.NewDrawing()
	d.Begin(ink.Point{X: coords[0], Y: coords[1]})
	for i := 2; i+1 < len(coords); i += 2 {
		d.Extend(ink.Point{X: coords[i], Y: coords[i+1]})
	}
	d.End()
	return d
}

func TestSaveLoadRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "history.json")

	h := &History{}
	e, err := NewEntry(testDrawing(), []recognizer.Result{{Glyph: "い", Confidence: 0.8}})
	if err != nil {
		t.Fatal(err)
	}
	h.Append(e, 0)

	if err := h.SaveTo(file); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFrom(file)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Entries) != 1 {
		t.Fatalf("expected 1 entry got %d", len(got.Entries))
	}
	if got.Entries[0].Results[0].Glyph != "い" {
		t.Errorf("results lost: %+v", got.Entries[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	h, err := LoadFrom(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatal(err)
	}
	if len(h.Entries) != 0 {
		t.Fatalf("expected fresh journal got %d entries", len(h.Entries))
	}
}

func TestLoadCorruptFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(file, []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}

	h, err := LoadFrom(file)
	if err != nil {
		t.Fatal(err)
	}
	if len(h.Entries) != 0 {
		t.Fatal("corrupt journal must start fresh")
	}
}

func TestLoadWrongVersion(t *testing.T) {
	file := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(file, []byte(`{"cache_version":99,"entries":[{"id":"x"}]}`), 0644); err != nil {
		t.Fatal(err)
	}

	h, err := LoadFrom(file)
	if err != nil {
		t.Fatal(err)
	}
	if len(h.Entries) != 0 {
		t.Fatal("versioned-out journal must start fresh")
	}
}

func TestSaveUsesLoadedPath(t *testing.T) {
	file := filepath.Join(t.TempDir(), "history.json")

	h, err := LoadFrom(file)
	if err != nil {
		t.Fatal(err)
	}
	h.Append(Entry{ID: "x"}, 0)
	if err := h.Save(); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFrom(file)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Entries) != 1 {
		t.Fatal("save did not target the loaded path")
	}
}

func TestAppendLimit(t *testing.T) {
	h := &History{}
	for i := 0; i < 7; i++ {
		h.Append(Entry{ID: string(rune('a' + i))}, 5)
	}
	if len(h.Entries) != 5 {
		t.Fatalf("expected 5 entries got %d", len(h.Entries))
	}
	if h.Entries[0].ID != "c" || h.Entries[4].ID != "g" {
		t.Errorf("wrong entries survived: %+v", h.Entries)
	}
}

func TestTail(t *testing.T) {
	h := &History{}
	for i := 0; i < 4; i++ {
		h.Append(Entry{ID: string(rune('a' + i))}, 0)
	}

	tail := h.Tail(2)
	if len(tail) != 2 || tail[0].ID != "c" || tail[1].ID != "d" {
		t.Errorf("unexpected tail %+v", tail)
	}
	if len(h.Tail(0)) != 4 || len(h.Tail(10)) != 4 {
		t.Error("tail bounds mishandled")
	}
}
