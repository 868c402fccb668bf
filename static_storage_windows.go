// +build windows

// File: static_storage_windows.go
// License: Apache-2.0

package blockpool

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// acquireStaticStorage reserves a VirtualAlloc-backed region for a static
// pool's backing store, keeping long-lived buffers off the Go heap.
func acquireStaticStorage(size int) (data []byte, mmapBacked bool) {
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if addr == 0 || err != nil {
		return make([]byte, size), false
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), true
}

func releaseStaticStorage(b []byte, mmapBacked bool) {
	if b == nil || !mmapBacked {
		return
	}
	addr := uintptr(unsafe.Pointer(&b[0]))
	_ = windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
}
