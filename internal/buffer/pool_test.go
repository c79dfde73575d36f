package buffer

import "testing"

func TestNewPool(t *testing.T) {
	pool := NewPool(4)
	if pool == nil {
		t.Fatal("NewPool returned nil")
	}
	if pool.maxSize != 4 {
		t.Errorf("maxSize = %d, want 4", pool.maxSize)
	}
	if pool.buckets == nil {
		t.Error("buckets map is nil")
	}
}

func TestPool_AcquireRelease_Reuse(t *testing.T) {
	pool := NewPool(4)

	buf := pool.Acquire(64)
	if len(buf) != 64 {
		t.Fatalf("len(buf) = %d, want 64", len(buf))
	}
	if pool.Misses() != 1 {
		t.Errorf("Misses = %d, want 1", pool.Misses())
	}

	// Dirty the buffer so reuse clearing is observable.
	buf[0] = 200
	pool.Release(buf)

	buf2 := pool.Acquire(64)
	if pool.Hits() != 1 {
		t.Errorf("Hits = %d, want 1 (no new allocation required)", pool.Hits())
	}
	if buf2[0] != 0 {
		t.Errorf("reused buffer not cleared: buf2[0] = %d, want 0", buf2[0])
	}
}

func TestPool_Acquire_SizeClasses(t *testing.T) {
	pool := NewPool(4)

	a := pool.Acquire(16)
	pool.Release(a)

	// Different size class must not reuse the released buffer.
	b := pool.Acquire(32)
	if len(b) != 32 {
		t.Errorf("len(b) = %d, want 32", len(b))
	}
	if pool.Hits() != 0 {
		t.Errorf("Hits = %d, want 0 for a different size class", pool.Hits())
	}
}

func TestPool_Acquire_InvalidSize(t *testing.T) {
	pool := NewPool(4)
	if buf := pool.Acquire(0); buf != nil {
		t.Errorf("Acquire(0) = %v, want nil", buf)
	}
	if buf := pool.Acquire(-8); buf != nil {
		t.Errorf("Acquire(-8) = %v, want nil", buf)
	}
}

func TestPool_Release_RespectsCap(t *testing.T) {
	pool := NewPool(1)
	a := pool.Acquire(16)
	b := pool.Acquire(16)
	pool.Release(a)
	pool.Release(b) // discarded, bucket full

	pool.Acquire(16)
	pool.Acquire(16)
	if pool.Hits() != 1 {
		t.Errorf("Hits = %d, want 1 (only one buffer retained)", pool.Hits())
	}
}

func TestPool_AcquireCopy(t *testing.T) {
	pool := NewPool(4)
	src := []uint8{1, 2, 3, 4, 5, 6, 7, 8}

	cp := pool.AcquireCopy(src)
	if len(cp) != len(src) {
		t.Fatalf("len(cp) = %d, want %d", len(cp), len(src))
	}
	for i := range src {
		if cp[i] != src[i] {
			t.Fatalf("cp[%d] = %d, want %d", i, cp[i], src[i])
		}
	}

	// Writing to the copy must not touch the source.
	cp[0] = 99
	if src[0] != 1 {
		t.Errorf("src[0] = %d, want 1 (copy aliased source)", src[0])
	}
}

func TestPool_Release_Nil(t *testing.T) {
	pool := NewPool(4)
	pool.Release(nil) // must not panic
}

func BenchmarkPool_AcquireRelease(b *testing.B) {
	pool := NewPool(8)
	size := 256 * 256 * 4
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf := pool.Acquire(size)
		pool.Release(buf)
	}
}
