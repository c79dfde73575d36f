// Package prism is a procedural pixel-effects engine.
//
// # Overview
//
// prism transforms flat RGBA pixel buffers with generative numerical
// algorithms: coherent noise, complex-plane fractal iteration, Gray-Scott
// reaction-diffusion, and flow-field particle advection, composited against
// the source image with classic blend modes.
//
// # Quick Start
//
//	import "github.com/prismfx/prism"
//
//	eng := prism.New()
//
//	gen, params, err := eng.ApplyEffect("mandelbrot", map[string]float64{
//	    "zoom": 2, "opacity": 0.8,
//	})
//	if err != nil {
//	    // unknown effect id
//	}
//
//	result := eng.Transform(src, width, height, gen, params)
//	defer eng.Release(result)
//
// The source buffer is never mutated; the result comes from the engine's
// buffer pool and should be released when no longer needed.
//
// # Effect identifiers
//
// Many historical effect names are aliases onto a small set of unified
// studios with presets ("blur" is preset 0 of "unifiedBlur"). ApplyEffect
// resolves aliases transparently; GetUnifiedEffect, IsLegacyEffect, and
// ShouldHideFromUI expose the mapping to catalog UIs.
//
// # Concurrency
//
// All work runs synchronously on the calling goroutine; the engine exposes
// no async points and performs no I/O. Run concurrent transforms on
// separate Engine instances, since the buffer pool backing an engine is
// meant for one transform at a time.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Engine, effect registry, alias resolution, Pixmap, ParamSpec
//   - Internal: buffer (pool, pixel helpers), noise, fractal, reaction,
//     flow, blend, filter
package prism
