package prism

import "errors"

// ErrFallbackToCPU indicates an accelerator cannot handle this transform.
// The engine transparently falls back to the CPU generators.
var ErrFallbackToCPU = errors.New("prism: falling back to CPU transform")

// Accelerator is an optional alternate transform backend (for example a
// GPU implementation living in its own module). When injected via
// WithAccelerator, the engine offers every transform to the accelerator
// first; returning ErrFallbackToCPU or any other error hands the work back
// to the CPU path.
//
// Implementations outside this module own their device lifecycle; the
// engine only calls Transform.
type Accelerator interface {
	// Name returns the backend name (e.g. "wgpu").
	Name() string

	// Transform runs one effect transform, or returns an error to decline.
	Transform(src []uint8, width, height int, params map[string]float64) ([]uint8, error)
}
