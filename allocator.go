// File: allocator.go
// License: Apache-2.0

package blockpool

import "sync"

// Allocator owns one pool family and routes Alloc/Free/Realloc requests to
// it. Alloc, Free, and Realloc are not safe for concurrent use: there is no
// internal locking over the pool data structures, and clients requiring
// concurrent use must serialize access externally. Close takes no lock
// either. The package-level Acquire/Release pair built on top of it may be
// called from any goroutine, guarded by an internal mutex.
type Allocator struct {
	registry *registry
}

// NewAllocator validates cfg and builds a private pool family for it. Use
// this directly for tests or non-global usage; for a process-wide
// singleton, use Acquire/Release instead.
func NewAllocator(cfg *Config) (*Allocator, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Allocator{registry: newRegistry(cfg)}, nil
}

// Close tears down the allocator's pool family, implicitly releasing any
// still-outstanding client blocks. Every *Ptr this allocator ever returned
// becomes invalid.
func (a *Allocator) Close() {
	a.registry.teardown()
}

// Alloc routes a request for n bytes to the appropriate size class,
// applying size-class rounding and overflow escalation, and returns a
// handle to the allocated block's client region, or nil if the family is
// exhausted at every class up to the largest.
func (a *Allocator) Alloc(n int) *Ptr {
	if n < 0 {
		return nil
	}
	req := n + headerSize

	if a.registry.mode == ModeNone {
		// No-pool mode creates (at most) one pool per distinct rounded
		// size and never escalates beyond that single class.
		size := roundNoPoolSize(req)
		p := a.registry.findPool(size)
		if p == nil {
			np := newDynamicPool(size, a.registry.numBlocks)
			if !a.registry.insertPool(np) {
				return nil
			}
			p = np
		}
		return p.Allocate()
	}

	p := a.registry.findPool(req)
	if p == nil {
		return nil // size overflow: larger than the largest pool
	}
	return a.allocateWithEscalation(p)
}

// allocateWithEscalation retries with the next-larger size class whenever
// the chosen pool returns none, bounded by the registry's largest block
// size so the loop always terminates.
func (a *Allocator) allocateWithEscalation(p Pool) *Ptr {
	largest := a.registry.largestBlockSize()
	for {
		if ptr := p.Allocate(); ptr != nil {
			return ptr
		}
		if p.BlockSize() >= largest {
			return nil
		}
		next := a.registry.findPool(p.BlockSize() + 1)
		if next == nil {
			return nil
		}
		p = next
	}
}

// Free returns p's block to its owning pool. A nil p is a no-op. Passing a
// pointer not produced by Alloc, or double-freeing, is undefined behavior —
// no detection is attempted.
func (a *Allocator) Free(p *Ptr) {
	if p == nil {
		return
	}
	p.blk.pool.Deallocate(p)
}

// Realloc resizes the allocation behind p to n bytes, preserving the
// leading min(old_usable, n) bytes. A nil p defers to Alloc(n); n == 0
// defers to Free(p) and returns nil. If the new allocation fails, p remains
// valid and unchanged and nil is returned.
func (a *Allocator) Realloc(p *Ptr, n int) *Ptr {
	if p == nil {
		return a.Alloc(n)
	}
	if n == 0 {
		a.Free(p)
		return nil
	}
	newPtr := a.Alloc(n)
	if newPtr == nil {
		return nil
	}
	oldUsable := p.blk.pool.BlockSize() - headerSize
	copyLen := oldUsable
	if n < copyLen {
		copyLen = n
	}
	copy(newPtr.blk.data, p.blk.data[:copyLen])
	a.Free(p)
	return newPtr
}

var (
	globalMu       sync.Mutex
	globalRefCount int
	globalAlloc    *Allocator
)

// Acquire returns the process-wide Allocator, constructing it with cfg (or
// DefaultConfig if cfg is nil) on the first call and ignoring cfg on
// subsequent calls while references are outstanding: the first reference
// triggers init, the last Release triggers teardown.
func Acquire(cfg *Config) (*Allocator, error) {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalRefCount == 0 {
		a, err := NewAllocator(cfg)
		if err != nil {
			return nil, err
		}
		globalAlloc = a
	}
	globalRefCount++
	return globalAlloc, nil
}

// Release drops a reference to the process-wide Allocator, tearing it down
// once the last reference is released. Calling Release without a matching
// Acquire is a no-op.
func Release() {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalRefCount == 0 {
		return
	}
	globalRefCount--
	if globalRefCount == 0 {
		globalAlloc.Close()
		globalAlloc = nil
	}
}

// Alloc, Free, and Realloc delegate to the process-wide Allocator acquired
// via Acquire. Calling them before Acquire (or after the matching Release)
// is a misuse of the documented contract; they degrade to safe no-ops/none
// rather than panicking.
func Alloc(n int) *Ptr {
	globalMu.Lock()
	a := globalAlloc
	globalMu.Unlock()
	if a == nil {
		return nil
	}
	return a.Alloc(n)
}

func Free(p *Ptr) {
	globalMu.Lock()
	a := globalAlloc
	globalMu.Unlock()
	if a == nil {
		return
	}
	a.Free(p)
}

func Realloc(p *Ptr, n int) *Ptr {
	globalMu.Lock()
	a := globalAlloc
	globalMu.Unlock()
	if a == nil {
		return nil
	}
	return a.Realloc(p, n)
}
