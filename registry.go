// File: registry.go
// License: Apache-2.0

package blockpool

// registry is the ordered set of pools spanning the supported size classes.
// For ModeStatic/ModeDynamic it is populated once, in ascending block_size
// order, at construction, and that order is stable for the registry's
// lifetime. For ModeNone it starts empty and pools are appended in whatever
// order the client's requests first need them — an intentional asymmetry,
// mirroring the same split between lowest-fit allocation routing and
// exact-match introspection.
type registry struct {
	mode      PoolMode
	numBlocks int
	maxPools  int
	pools     []Pool
}

func newRegistry(cfg *Config) *registry {
	r := &registry{mode: cfg.Mode, numBlocks: cfg.NumBlocks, maxPools: cfg.MaxPools}
	if cfg.Mode == ModeNone {
		return r
	}
	r.pools = make([]Pool, 0, cfg.MaxPools)
	for i := 0; i < cfg.MaxPools; i++ {
		pow := powStart + i
		size := scheduleBlockSize(pow)
		if cfg.Mode == ModeStatic {
			r.pools = append(r.pools, newStaticPool(size, cfg.NumBlocks))
		} else {
			r.pools = append(r.pools, newDynamicPool(size, cfg.NumBlocks))
		}
	}
	return r
}

// findPool returns the first pool with block_size >= size in pool mode
// (lowest-fit over the ascending schedule), or the exact-size match in
// no-pool mode. Returns nil when no such pool exists.
func (r *registry) findPool(size int) Pool {
	if r.mode == ModeNone {
		for _, p := range r.pools {
			if p.BlockSize() == size {
				return p
			}
		}
		return nil
	}
	for _, p := range r.pools {
		if p.BlockSize() >= size {
			return p
		}
	}
	return nil
}

// insertPool places p into the first empty registry slot, failing once
// maxPools slots are occupied.
func (r *registry) insertPool(p Pool) bool {
	if len(r.pools) >= r.maxPools {
		return false
	}
	r.pools = append(r.pools, p)
	return true
}

// largestBlockSize returns the biggest block_size currently registered, or
// 0 if the registry is empty. Used by the router to bound overflow
// escalation.
func (r *registry) largestBlockSize() int {
	biggest := 0
	for _, p := range r.pools {
		if p.BlockSize() > biggest {
			biggest = p.BlockSize()
		}
	}
	return biggest
}

// teardown destroys every pool, releasing any still-outstanding client
// blocks en-bloc, and empties the registry.
func (r *registry) teardown() {
	for _, p := range r.pools {
		if c, ok := p.(closer); ok {
			c.closeBacking()
		}
	}
	r.pools = nil
}
