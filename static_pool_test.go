package blockpool_test

import (
	"testing"

	"github.com/embedded-go/blockpool"
)

func TestStaticModeServesSameSchedule(t *testing.T) {
	a, err := blockpool.NewAllocator(&blockpool.Config{
		Mode:      blockpool.ModeStatic,
		MaxPools:  4,
		NumBlocks: 2,
	})
	if err != nil {
		t.Fatalf("NewAllocator: %v", err)
	}
	defer a.Close()

	for _, size := range []int{16, 32, 64, 128} {
		if !a.IsSizeAvailable(size) {
			t.Errorf("IsSizeAvailable(%d) = false, want true", size)
		}
	}

	p := a.Alloc(5)
	if p == nil {
		t.Fatal("Alloc(5) returned none")
	}
	for i := range p.Bytes() {
		p.Bytes()[i] = 0xCD
	}
	for i, b := range p.Bytes() {
		if b != 0xCD {
			t.Fatalf("byte %d = 0x%02X, want 0xCD (static backing storage must be writable)", i, b)
		}
	}
}

func TestStaticPoolCapacityNeverGrows(t *testing.T) {
	a, err := blockpool.NewAllocator(&blockpool.Config{
		Mode:      blockpool.ModeStatic,
		MaxPools:  1,
		NumBlocks: 2,
	})
	if err != nil {
		t.Fatalf("NewAllocator: %v", err)
	}
	defer a.Close()

	p1 := a.Alloc(1)
	p2 := a.Alloc(1)
	if p1 == nil || p2 == nil {
		t.Fatal("both blocks in the 2-block static pool should allocate")
	}
	if p3 := a.Alloc(1); p3 != nil {
		t.Fatal("a static pool of capacity 2 must not serve a third block")
	}
}

func TestCloseInvalidatesFurtherUseSafely(t *testing.T) {
	a, err := blockpool.NewAllocator(blockpool.DefaultConfig())
	if err != nil {
		t.Fatalf("NewAllocator: %v", err)
	}
	a.Alloc(5)
	a.Close()
	if got := a.TotalMemoryUsed(); got != 0 {
		t.Fatalf("TotalMemoryUsed after Close = %d, want 0", got)
	}
}
