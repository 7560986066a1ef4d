package recognizer

// Result is one ranked guess.
type Result struct {
	Glyph      string  `json:"glyph"`
	Confidence float64 `json:"confidence"`
}

// Completion carries the outcome of one submitted recognition. Seq
// identifies the request so callers can drop stale completions when
// newer ink has already been submitted.
type Completion struct {
	Seq     uint64
	Results []Result
	Err     error
}
