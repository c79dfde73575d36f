package prism

import (
	"errors"

	"github.com/prismfx/prism/internal/buffer"
)

// ErrUnknownEffect is returned by ApplyEffect when an identifier resolves
// to neither an alias nor a direct implementation.
var ErrUnknownEffect = errors.New("prism: unknown effect identifier")

// BufferPool is the reusable byte-buffer pool engines draw working and
// result buffers from. Construct one per rendering session with
// NewBufferPool and inject it via WithPool.
type BufferPool = buffer.Pool

// NewBufferPool creates a pool retaining at most maxPerBucket buffers per
// size class (0 means unlimited).
func NewBufferPool(maxPerBucket int) *BufferPool {
	return buffer.NewPool(maxPerBucket)
}

// Generator transforms a source RGBA buffer into a result buffer. The
// source must never be written; the returned buffer comes from the
// engine's pool.
type Generator func(e *Engine, src []uint8, width, height int, params map[string]float64) []uint8

// Engine runs effect transforms against a dedicated buffer pool.
//
// Create one engine per rendering session and dispose it with the session.
// The pool behind an engine serves one transform at a time; concurrent
// transforms need separate engines or external locking.
type Engine struct {
	pool  *buffer.Pool
	accel Accelerator
}

// New creates an engine. With no options it owns a fresh buffer pool
// retaining up to four buffers per size class.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.pool == nil {
		o.pool = buffer.NewPool(4)
	}
	return &Engine{pool: o.pool, accel: o.accel}
}

// Pool exposes the engine's buffer pool for callers that manage working
// buffers themselves.
func (e *Engine) Pool() *buffer.Pool {
	return e.pool
}

// Release returns a buffer previously produced by Transform (or acquired
// from Pool) to the engine's pool. The caller must not touch the buffer
// afterward, and must not release the same buffer twice.
func (e *Engine) Release(buf []uint8) {
	e.pool.Release(buf)
}

// ApplyEffect resolves an effect identifier to a runnable generator plus a
// fully resolved parameter map.
//
// Legacy aliases resolve to their unified implementation with the alias
// preset merged in; caller-supplied parameters win over preset values.
// Parameters are clamped to the implementation's schema and missing ones
// take schema defaults. Unknown identifiers return ErrUnknownEffect.
func (e *Engine) ApplyEffect(effectID string, params map[string]float64) (Generator, map[string]float64, error) {
	merged := params

	if unified := GetUnifiedEffect(effectID); unified != nil {
		merged = make(map[string]float64, len(params)+1)
		merged["preset"] = float64(unified.Preset)
		for k, v := range params {
			merged[k] = v
		}
		effectID = unified.Unified
	}

	impl, ok := implementations[effectID]
	if !ok {
		return nil, nil, ErrUnknownEffect
	}

	resolved := resolveParams(impl.Params, merged)
	Logger().Debug("effect resolved",
		"effect", effectID, "params", len(resolved))
	return impl.generator, resolved, nil
}

// Transform runs a generator over a source buffer and returns the result.
// The source is never mutated; generators that read original pixels while
// writing in place snapshot it through the pool first. Release the result
// via Release when done.
func (e *Engine) Transform(src []uint8, width, height int, gen Generator, params map[string]float64) []uint8 {
	if gen == nil || width <= 0 || height <= 0 {
		return nil
	}
	if e.accel != nil {
		if out, err := e.accel.Transform(src, width, height, params); err == nil {
			return out
		}
		// Accelerator declined; fall through to the CPU path.
	}
	return gen(e, src, width, height, params)
}
