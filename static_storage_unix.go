// +build linux darwin freebsd netbsd openbsd dragonfly

// File: static_storage_unix.go
// License: Apache-2.0

package blockpool

import "golang.org/x/sys/unix"

// acquireStaticStorage reserves an anonymous, private mapping for a
// static pool's backing store, keeping it off the Go heap for the
// process-lifetime span a static pool is meant to occupy. Falls back to a
// plain heap slice (mmapBacked=false) if the mapping cannot be created.
func acquireStaticStorage(size int) (data []byte, mmapBacked bool) {
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return make([]byte, size), false
	}
	return b, true
}

func releaseStaticStorage(b []byte, mmapBacked bool) {
	if b == nil || !mmapBacked {
		return
	}
	_ = unix.Munmap(b)
}
