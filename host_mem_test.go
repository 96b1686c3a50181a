package main

import "testing"

func TestMemAllocStartsAboveLoadedImage(t *testing.T) {
	vm := newTestVM(t)
	img := make([]byte, 256)
	if err := vm.Load(img); err != nil {
		t.Fatalf("Load: %v", err)
	}
	addr := vm.memAlloc(64)
	if addr == 0 {
		t.Fatal("memAlloc returned 0 for a small request on a freshly loaded VM")
	}
	imageEnd := uint64(ENTRY_OFFSET) + uint64(len(img))
	if addr < imageEnd {
		t.Fatalf("memAlloc returned %#x, which overlaps the loaded image ending at %#x", addr, imageEnd)
	}
}

func TestMemAllocWriteReadRoundTrip(t *testing.T) {
	vm := newTestVM(t)
	if err := vm.Load(make([]byte, 16)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	addr := vm.memAlloc(32)
	if addr == 0 {
		t.Fatal("memAlloc returned 0")
	}
	vm.memSet(addr, 0xAB, 32)
	view, err := vm.Mem.View(addr, 32)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	for i, b := range view {
		if b != 0xAB {
			t.Fatalf("byte %d = %#x, want 0xAB", i, b)
		}
	}
}

func TestMemFreeAllowsReuse(t *testing.T) {
	vm := newTestVM(t)
	if err := vm.Load(make([]byte, 16)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	first := vm.memAlloc(64)
	if first == 0 {
		t.Fatal("memAlloc returned 0")
	}
	vm.memFree(first)
	second := vm.memAlloc(64)
	if second != first {
		t.Fatalf("memAlloc after memFree = %#x, want reused block at %#x", second, first)
	}
}

func TestMemAllocScalesWithLargerImage(t *testing.T) {
	small := newTestVM(t)
	_ = small.Load(make([]byte, 16))
	smallAddr := small.memAlloc(8)

	large := newTestVM(t)
	_ = large.Load(make([]byte, 4096))
	largeAddr := large.memAlloc(8)

	if largeAddr <= smallAddr {
		t.Fatalf("heap base did not move past a larger image: small=%#x large=%#x", smallAddr, largeAddr)
	}
}
