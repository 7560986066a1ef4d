package ink

import "testing"

func testDrawing() *Drawing {
	d := NewDrawing()

	d.Begin(Point{X: 100, Y: 0})
	for i := 1; i < 200; i++ {
		d.Extend(Point{X: 100, Y: float32(i)})
	}
	d.End()

	d.Begin(Point{X: 10, Y: 10})
	d.Extend(Point{X: 250, Y: 250})
	d.End()

	return d
}

func TestMarshalBinaryRoundTrip(t *testing.T) {
	d := testDrawing()

	data, err := d.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	got := NewDrawing()
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatal(err)
	}

	want := d.Snapshot()
	snap := got.Snapshot()
	if len(snap.Strokes) != len(want.Strokes) {
		t.Fatalf("stroke count: got %d, want %d", len(snap.Strokes), len(want.Strokes))
	}
	for i := range want.Strokes {
		if len(snap.Strokes[i].Points) != len(want.Strokes[i].Points) {
			t.Fatalf("stroke %d point count: got %d, want %d",
				i, len(snap.Strokes[i].Points), len(want.Strokes[i].Points))
		}
		for j, p := range want.Strokes[i].Points {
			if snap.Strokes[i].Points[j] != p {
				t.Fatalf("stroke %d point %d: got %v, want %v",
					i, j, snap.Strokes[i].Points[j], p)
			}
		}
	}
}

func TestMarshalIncludesActiveStroke(t *testing.T) {
	d := NewDrawing()
	d.Begin(Point{X: 1, Y: 2})
	d.Extend(Point{X: 3, Y: 4})

	data, err := d.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	got := NewDrawing()
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatal(err)
	}
	if n := len(got.Snapshot().Strokes); n != 1 {
		t.Fatalf("active stroke not persisted, got %d strokes", n)
	}
}

func TestUnmarshalUnknownHeader(t *testing.T) {
	data := []byte("not an ink file, definitely not, nope")
	if err := NewDrawing().UnmarshalBinary(data); err == nil {
		t.Fatal("expected an error for an unknown header")
	}
}

func TestUnmarshalTruncated(t *testing.T) {
	d := testDrawing()
	data, err := d.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	if err := NewDrawing().UnmarshalBinary(data[:len(data)-5]); err == nil {
		t.Fatal("expected an error for truncated data")
	}
}
