// File: dynamic_pool.go
// License: Apache-2.0

package blockpool

// dynamicPool backs a size class with blocks carved on demand, one
// make([]byte, ...) at a time, up to totalBlocks. It never pre-reserves the
// full total_blocks*block_size span the way the static variant does; its
// backing store grows incrementally and shrinks back to nothing once the
// registry drops its last reference.
type dynamicPool struct {
	*blockPool
}

func newDynamicPool(blockSize, totalBlocks int) *dynamicPool {
	dp := &dynamicPool{}
	dp.blockPool = newBlockPool(blockSize, totalBlocks)
	dp.blockPool.carve = func(i int) *block {
		return &block{pool: dp, data: make([]byte, blockSize-headerSize)}
	}
	return dp
}

var _ Pool = (*dynamicPool)(nil)
