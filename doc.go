// Package blockpool implements a process-wide, fixed-block pool memory
// allocator for memory-constrained targets that want to avoid relying on a
// general-purpose heap for hot-path allocations.
//
// Clients request byte regions of arbitrary size through Alloc; the
// allocator routes the request to one of a family of pre-sized block pools,
// rounds up to the chosen pool's block size, and hands back an opaque
// handle (*Ptr) that Free and Realloc later consume. Allocation granularity
// is always one whole block, regardless of the requested size — there is no
// sub-allocation, coalescing, or compaction within a block.
//
// The allocator is not safe for concurrent use without external
// serialization; see Allocator's doc comment for the concurrency model.
package blockpool
