// Package recognizer wires capture, rasterization, encoding and
// scoring into the recognition pipeline.
package recognizer

import (
	"context"
	"image"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/sync/semaphore"

	"github.com/ryuichi1/hiranaga-demo-app/config"
	"github.com/ryuichi1/hiranaga-demo-app/encoding/ink"
	"github.com/ryuichi1/hiranaga-demo-app/engine"
	"github.com/ryuichi1/hiranaga-demo-app/labels"
	"github.com/ryuichi1/hiranaga-demo-app/log"
	"github.com/ryuichi1/hiranaga-demo-app/ml"
	"github.com/ryuichi1/hiranaga-demo-app/raster"
)

var (
	// ErrNotReady is returned when recognition is invoked before the
	// engine and label index are wired up.
	ErrNotReady = errors.New("recognizer is not initialized")

	// ErrEmptyDrawing is returned for a snapshot without any points.
	// It is an expected state, not a failure: there is simply nothing
	// to recognize yet.
	ErrEmptyDrawing = errors.New("nothing to recognize")
)

// Config assembles the recognizer collaborators. Engine and Index may
// be left nil while credentials or label files are missing, the
// recognizer then reports ErrNotReady instead of failing construction.
type Config struct {
	Params config.Parameters
	Engine engine.Engine
	Index  *labels.Index

	// Style overrides the default black-on-white pen when set.
	Style raster.Style
	// Scores overrides the default min-max confidence policy.
	Scores ScorePolicy
}

type Recognizer struct {
	params   config.Parameters
	engine   engine.Engine
	index    *labels.Index
	renderer *raster.Renderer
	scores   ScorePolicy

	seq uint64
	sem *semaphore.Weighted
}

func New(cfg Config) *Recognizer {
	style := cfg.Style
	if style.Width == 0 {
		style = raster.DefaultStyle(cfg.Params.StrokeWidth)
	}
	scores := cfg.Scores
	if scores == nil {
		scores = MinMax{}
	}
	batch := cfg.Params.Engine.BatchSize
	if batch <= 0 {
		batch = 1
	}

	return &Recognizer{
		params:   cfg.Params,
		engine:   cfg.Engine,
		index:    cfg.Index,
		renderer: raster.NewRenderer(cfg.Params.CanvasSize, style),
		scores:   scores,
		sem:      semaphore.NewWeighted(batch),
	}
}

// Ready reports whether both the engine and the label index are wired.
func (r *Recognizer) Ready() bool {
	return r.engine != nil && r.index != nil
}

// Index returns the label index, nil when not wired.
func (r *Recognizer) Index() *labels.Index {
	return r.index
}

// Render rasterizes the snapshot exactly as the scoring pipeline sees
// it: bounds padded by the pen radius, clamped to the capture surface,
// centered and fit-scaled onto the canvas.
func (r *Recognizer) Render(snap ink.Snapshot) (image.Image, error) {
	bounds, ok := snap.Bounds()
	if !ok {
		return nil, ErrEmptyDrawing
	}
	side := float64(r.params.CanvasSize)
	bounds = bounds.Pad(r.params.Padding).Clamp(side, side)

	m := raster.FitMatrix(bounds, side, r.params.MinFit, r.params.MaxFit)
	return r.renderer.Render(snap, m)
}

// Recognize runs the full pipeline on one snapshot and blocks until
// the engine replies or ctx is done.
func (r *Recognizer) Recognize(ctx context.Context, snap ink.Snapshot) ([]Result, error) {
	if !r.Ready() {
		return nil, ErrNotReady
	}
	if snap.IsEmpty() {
		return nil, ErrEmptyDrawing
	}

	img, err := r.Render(snap)
	if err != nil {
		return nil, err
	}

	input, err := ml.Encode(img, r.params.ModelInput)
	if err != nil {
		return nil, err
	}

	scores, err := r.engine.Infer(ctx, input)
	if err != nil {
		return nil, errors.Wrap(err, "inference failed")
	}

	return Rank(scores, r.index, r.scores, r.params.TopK)
}

// Submit schedules a recognition and returns immediately with the
// request sequence number and a channel that receives exactly one
// Completion. In-flight work is bounded by the engine batch size.
// Callers that only care about the freshest ink remember the last
// sequence number they submitted and drop older completions.
func (r *Recognizer) Submit(ctx context.Context, snap ink.Snapshot) (uint64, <-chan Completion) {
	seq := atomic.AddUint64(&r.seq, 1)
	done := make(chan Completion, 1)

	go func() {
		if err := r.sem.Acquire(ctx, 1); err != nil {
			log.Trace.Printf("failed to acquire recognition slot: %v", err)
			done <- Completion{Seq: seq, Err: err}
			return
		}
		defer r.sem.Release(1)

		results, err := r.Recognize(ctx, snap)
		done <- Completion{Seq: seq, Results: results, Err: err}
	}()

	return seq, done
}
