// Package engine abstracts the model that turns an encoded drawing
// into per-class scores.
package engine

import (
	"context"

	"gorgonia.org/tensor"
)

// Engine scores an encoded drawing. The returned slice has one raw
// score per model class. Implementations must be safe for concurrent
// use.
type Engine interface {
	Infer(ctx context.Context, input *tensor.Dense) ([]float32, error)
}

// Func adapts a plain function to the Engine interface.
type Func func(ctx context.Context, input *tensor.Dense) ([]float32, error)

func (f Func) Infer(ctx context.Context, input *tensor.Dense) ([]float32, error) {
	return f(ctx, input)
}
