package blockpool_test

import (
	"testing"

	"github.com/embedded-go/blockpool"
)

func TestAcquireReleaseRefCounting(t *testing.T) {
	a1, err := blockpool.Acquire(&blockpool.Config{Mode: blockpool.ModeDynamic, MaxPools: 4, NumBlocks: 2})
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	a2, err := blockpool.Acquire(nil) // cfg ignored while refs outstanding
	if err != nil {
		t.Fatalf("second Acquire: %v", err)
	}
	if a1 != a2 {
		t.Fatal("Acquire should return the same process-wide Allocator while references are outstanding")
	}

	p := blockpool.Alloc(5)
	if p == nil {
		t.Fatal("package-level Alloc returned none")
	}

	blockpool.Release() // one outstanding reference remains
	if got := blockpool.TotalMemoryUsed(); got == 0 {
		t.Fatal("allocator should still be alive after one Release with a reference outstanding")
	}

	blockpool.Free(p)
	blockpool.Release() // last reference: tears down

	if got := blockpool.Alloc(1); got != nil {
		t.Fatal("Alloc after the final Release should return none, not allocate from a torn-down family")
	}
}

func TestIntrospectionAsymmetryWithLowestFit(t *testing.T) {
	a, err := blockpool.NewAllocator(&blockpool.Config{Mode: blockpool.ModeDynamic, MaxPools: 4, NumBlocks: 2})
	if err != nil {
		t.Fatalf("NewAllocator: %v", err)
	}
	defer a.Close()

	// Alloc(n) for n producing req=13 succeeds via lowest-fit against the
	// 16-byte class...
	if p := a.Alloc(5); p == nil {
		t.Fatal("Alloc(5) should succeed via lowest-fit against the 16-byte class")
	}
	// ...but introspection by exact size still reports false for any size
	// that isn't itself one of the schedule's exact block sizes.
	if a.IsSizeAvailable(13) {
		t.Fatal("IsSizeAvailable(13) should be false: no pool has block_size == 13, only >= 13")
	}
}
