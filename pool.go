// File: pool.go
// License: Apache-2.0

package blockpool

import "github.com/eapache/queue"

// Pool is a fixed-capacity collection of same-sized blocks. Both Pool
// implementations (static and dynamic) share the same allocation ordering:
// free list first, then a never-used block, then failure. Neither Allocate
// nor Deallocate ever fails for a reason other than "pool fully committed";
// deallocate cannot fail at all.
type Pool interface {
	// Allocate returns a handle to a free block, or nil if the pool is
	// fully committed.
	Allocate() *Ptr
	// Deallocate returns ptr's block to the free list. ptr must have been
	// produced by this pool's Allocate and must currently be in-use;
	// passing any other pointer is undefined behavior.
	Deallocate(ptr *Ptr)
	// BlockSize returns this pool's fixed size class.
	BlockSize() int
	// TotalBlocks returns this pool's capacity.
	TotalBlocks() int
	// NumAllocations returns the number of blocks currently in-use.
	NumAllocations() int
}

// closer is implemented by pool variants that hold backing storage needing
// explicit release at registry teardown (the static variant's mmap/
// VirtualAlloc-backed store). The dynamic variant's per-block heap
// allocations need no such hook; the GC reclaims them once unreferenced.
type closer interface {
	closeBacking()
}

// blockPool holds the allocation bookkeeping shared by both Pool variants.
// carve is supplied by the embedding variant and produces the backing data
// slice for the block at the given never-before-used index; blockPool
// itself never inspects backing storage directly.
//
// The free list is a FIFO of recycled *block values implemented with
// eapache/queue, standing in for an intrusive, in-block linked list threaded
// through each free block's leading machine word — this pool's
// single-threaded, GC-managed setting has no use for raw next pointers
// spliced through client memory.
type blockPool struct {
	blockSize      int
	totalBlocks    int
	numAllocations int
	nextUnused     int
	freeList       *queue.Queue
	carve          func(index int) *block
}

func newBlockPool(blockSize, totalBlocks int) *blockPool {
	return &blockPool{
		blockSize:   blockSize,
		totalBlocks: totalBlocks,
		freeList:    queue.New(),
	}
}

func (p *blockPool) Allocate() *Ptr {
	if p.freeList.Length() > 0 {
		blk := p.freeList.Remove().(*block)
		p.numAllocations++
		return &Ptr{blk: blk}
	}
	if p.nextUnused < p.totalBlocks {
		blk := p.carve(p.nextUnused)
		p.nextUnused++
		p.numAllocations++
		return &Ptr{blk: blk}
	}
	return nil
}

func (p *blockPool) Deallocate(ptr *Ptr) {
	if ptr == nil {
		return
	}
	p.freeList.Add(ptr.blk)
	p.numAllocations--
}

func (p *blockPool) BlockSize() int      { return p.blockSize }
func (p *blockPool) TotalBlocks() int    { return p.totalBlocks }
func (p *blockPool) NumAllocations() int { return p.numAllocations }
