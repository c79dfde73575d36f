package prism

// Option configures an Engine during creation.
//
// Example:
//
//	// Default pool
//	eng := prism.New()
//
//	// Shared pool across engines in one worker (dependency injection)
//	pool := prism.NewBufferPool(8)
//	eng := prism.New(prism.WithPool(pool))
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	pool  *BufferPool
	accel Accelerator
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{}
}

// WithPool sets a custom buffer pool for the engine. Use this to share one
// pool across engines that never run concurrently, or to control retention.
func WithPool(pool *BufferPool) Option {
	return func(o *engineOptions) {
		o.pool = pool
	}
}

// WithAccelerator injects an alternate transform backend. The engine tries
// the accelerator first and falls back to the CPU generators when it
// declines.
func WithAccelerator(a Accelerator) Option {
	return func(o *engineOptions) {
		o.accel = a
	}
}
