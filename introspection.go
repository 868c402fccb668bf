// File: introspection.go
// License: Apache-2.0
//
// Aggregate queries over the registry. Note the asymmetry with allocation
// routing: findPool resolves by lowest-fit (or exact match in no-pool
// mode), while every query here surfaces block-size *equality* only. A
// caller asking IsSizeAvailable(200) gets false even when a 256-byte pool
// exists and would happily serve a 200-byte request.

package blockpool

// TotalMemoryUsed returns the sum, over every populated pool, of
// num_allocations * block_size.
func (a *Allocator) TotalMemoryUsed() int {
	total := 0
	for _, p := range a.registry.pools {
		total += p.NumAllocations() * p.BlockSize()
	}
	return total
}

// TotalMemoryAvailable returns the sum, over every populated pool, of
// total_blocks * block_size.
func (a *Allocator) TotalMemoryAvailable() int {
	total := 0
	for _, p := range a.registry.pools {
		total += p.TotalBlocks() * p.BlockSize()
	}
	return total
}

// IsSizeAvailable reports whether any pool has exactly this block size.
func (a *Allocator) IsSizeAvailable(size int) bool {
	for _, p := range a.registry.pools {
		if p.BlockSize() == size {
			return true
		}
	}
	return false
}

// IsMemoryAvailableFor reports whether a pool of exactly this block size
// exists and currently has at least one free block.
func (a *Allocator) IsMemoryAvailableFor(size int) bool {
	for _, p := range a.registry.pools {
		if p.BlockSize() == size {
			return p.NumAllocations() < p.TotalBlocks()
		}
	}
	return false
}

// FreeBlocksFor returns the total free-block count across every pool whose
// block size exactly matches size.
func (a *Allocator) FreeBlocksFor(size int) int {
	free := 0
	for _, p := range a.registry.pools {
		if p.BlockSize() == size {
			free += p.TotalBlocks() - p.NumAllocations()
		}
	}
	return free
}

// NumBlocksPerPool returns the configured per-pool capacity.
func (a *Allocator) NumBlocksPerPool() int { return a.registry.numBlocks }

// MaxPools returns the configured maximum number of size classes.
func (a *Allocator) MaxPools() int { return a.registry.maxPools }

// SmallestBlockSize returns 2^powStart, the block size of size class 0.
func (a *Allocator) SmallestBlockSize() int { return 1 << powStart }

// TotalMemoryUsed, TotalMemoryAvailable, IsSizeAvailable,
// IsMemoryAvailableFor, FreeBlocksFor, NumBlocksPerPool, MaxPools, and
// SmallestBlockSize delegate to the process-wide Allocator, mirroring the
// instance methods above. They return zero values before Acquire.

func TotalMemoryUsed() int {
	globalMu.Lock()
	a := globalAlloc
	globalMu.Unlock()
	if a == nil {
		return 0
	}
	return a.TotalMemoryUsed()
}

func TotalMemoryAvailable() int {
	globalMu.Lock()
	a := globalAlloc
	globalMu.Unlock()
	if a == nil {
		return 0
	}
	return a.TotalMemoryAvailable()
}

func IsSizeAvailable(size int) bool {
	globalMu.Lock()
	a := globalAlloc
	globalMu.Unlock()
	if a == nil {
		return false
	}
	return a.IsSizeAvailable(size)
}

func IsMemoryAvailableFor(size int) bool {
	globalMu.Lock()
	a := globalAlloc
	globalMu.Unlock()
	if a == nil {
		return false
	}
	return a.IsMemoryAvailableFor(size)
}

func FreeBlocksFor(size int) int {
	globalMu.Lock()
	a := globalAlloc
	globalMu.Unlock()
	if a == nil {
		return 0
	}
	return a.FreeBlocksFor(size)
}

func NumBlocksPerPool() int {
	globalMu.Lock()
	a := globalAlloc
	globalMu.Unlock()
	if a == nil {
		return 0
	}
	return a.NumBlocksPerPool()
}

func MaxPools() int {
	globalMu.Lock()
	a := globalAlloc
	globalMu.Unlock()
	if a == nil {
		return 0
	}
	return a.MaxPools()
}

func SmallestBlockSize() int {
	globalMu.Lock()
	a := globalAlloc
	globalMu.Unlock()
	if a == nil {
		return 0
	}
	return a.SmallestBlockSize()
}
