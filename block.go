// File: block.go
// License: Apache-2.0

package blockpool

import "unsafe"

// headerSize is the byte width reserved for a block's back-reference, and
// therefore the constant the size-class arithmetic (req = n + header_size)
// is built on. It matches the machine pointer width (8 bytes on 64-bit
// targets), even though the back-reference itself is carried directly on
// the block's handle (*Ptr) rather than stored as literal header bytes.
const headerSize = int(unsafe.Sizeof(uintptr(0)))

// block is a single fixed-size memory region together with the pool that
// owns it. A block alternates between two lifecycle states: free (reachable
// from its owning pool's free list) and in-use (referenced by exactly one
// outstanding *Ptr).
type block struct {
	pool Pool
	data []byte // client region, length == pool.BlockSize() - headerSize
}

// Ptr is an opaque handle to an in-use block's client region: a memory-safe
// substitute for a raw client pointer. It carries the owning pool directly,
// so Free and Realloc never need to read a header byte or walk a registry
// to recover it. The zero value is not a valid Ptr; a nil *Ptr is the
// "none" sentinel every allocation operation returns on failure.
type Ptr struct {
	blk *block
}

// Bytes returns the client-visible region of the block this handle refers
// to. The slice's length is fixed at the owning pool's usable size
// (BlockSize() - headerSize) and must not be re-sliced past that bound.
func (p *Ptr) Bytes() []byte {
	if p == nil {
		return nil
	}
	return p.blk.data
}
