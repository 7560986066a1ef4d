package recognizer

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/ryuichi1/hiranaga-demo-app/labels"
)

// ErrScoreCount is returned when the engine score vector does not
// match the label table.
var ErrScoreCount = errors.New("score count does not match label table")

// ScorePolicy turns the raw scores of the kept candidates into
// confidences in [0, 1]. Raw scores are not required to be
// probabilities.
type ScorePolicy interface {
	Confidences(raw []float64) []float64
}

// MinMax rescales candidate scores linearly so the best candidate maps
// to 1 and the worst to 0. A degenerate spread, all scores equal,
// maps every candidate to 0: such an engine reply carries no signal.
type MinMax struct{}

func (MinMax) Confidences(raw []float64) []float64 {
	if len(raw) == 0 {
		return nil
	}

	min, max := raw[0], raw[0]
	for _, v := range raw[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	out := make([]float64, len(raw))
	if max == min {
		return out
	}
	span := max - min
	for i, v := range raw {
		out[i] = (v - min) / span
	}
	return out
}

// Rank keeps only the scores of the indexed candidates, rescales them
// with policy and returns the k best guesses, best first. Ties keep
// class order.
func Rank(scores []float32, idx *labels.Index, policy ScorePolicy, k int) ([]Result, error) {
	if idx == nil {
		return nil, ErrNotReady
	}
	if len(scores) != idx.Total() {
		return nil, errors.Wrapf(ErrScoreCount, "%d scores for %d classes", len(scores), idx.Total())
	}

	entries := idx.Entries()
	raw := make([]float64, len(entries))
	for i, e := range entries {
		raw[i] = float64(scores[e.Class])
	}

	conf := policy.Confidences(raw)

	results := make([]Result, len(entries))
	for i, e := range entries {
		results[i] = Result{Glyph: string(e.Glyph), Confidence: conf[i]}
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Confidence > results[b].Confidence
	})

	if k > 0 && len(results) > k {
		results = results[:k]
	}
	return results, nil
}
