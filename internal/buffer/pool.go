// Package buffer provides pooled RGBA byte buffers and low-level pixel helpers
// for the prism effect generators.
package buffer

import "sync"

// Pool is a pool of reusable byte buffers grouped by size class.
//
// Pool reduces GC pressure for effect pipelines that repeatedly acquire
// working buffers of the same image size. Acquire never fails: when no
// pooled buffer of the requested size exists, a fresh one is allocated.
//
// A released buffer must not be read or written by its previous owner, and
// releasing the same buffer twice is a caller error. Acquire/Release are
// mutex-guarded, but concurrent transforms should use independent Pool
// instances (one per rendering session).
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]uint8
	maxSize int // max buffers retained per size class

	hits   int64
	misses int64
}

// NewPool creates a buffer pool retaining at most maxPerBucket buffers per
// size class. A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]uint8),
		maxSize: maxPerBucket,
	}
}

// Acquire returns a zeroed buffer of exactly size bytes, reusing a pooled
// buffer when one is available.
func (p *Pool) Acquire(size int) []uint8 {
	if size <= 0 {
		return nil
	}

	p.mu.Lock()
	bucket := p.buckets[size]
	if n := len(bucket); n > 0 {
		buf := bucket[n-1]
		p.buckets[size] = bucket[:n-1]
		p.hits++
		p.mu.Unlock()

		clear(buf)
		return buf
	}
	p.misses++
	p.mu.Unlock()

	return make([]uint8, size)
}

// AcquireCopy acquires a buffer of len(src) bytes and copies src into it.
// Generators use this to snapshot original pixels before writing results
// into the destination in place.
func (p *Pool) AcquireCopy(src []uint8) []uint8 {
	buf := p.Acquire(len(src))
	copy(buf, src)
	return buf
}

// Release returns a buffer to the pool for later reuse. Nil buffers are
// ignored. When the size class is at capacity the buffer is discarded and
// left to the GC.
func (p *Pool) Release(buf []uint8) {
	if buf == nil {
		return
	}

	size := len(buf)
	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[size]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[size] = append(bucket, buf)
}

// Hits reports how many Acquire calls were served from the pool.
func (p *Pool) Hits() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hits
}

// Misses reports how many Acquire calls fell back to a fresh allocation.
func (p *Pool) Misses() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.misses
}
