package main

// Mem facility: a small first-fit heap allocator carved out of the
// sandbox above the loaded image. Block metadata is kept host-side, not
// guest-visible, since the sandbox memory is a flat array with no
// segmentation of its own — the allocator is bookkeeping layered on top,
// the way a libc malloc would be on real hardware.
type memBlock struct {
	addr uint64
	size uint64
	free bool
}

type heapAllocator struct {
	blocks []memBlock
	base   uint64
	limit  uint64
}

func newHeapAllocator(base, limit uint64) *heapAllocator {
	return &heapAllocator{
		blocks: []memBlock{{addr: base, size: limit - base, free: true}},
		base:   base,
		limit:  limit,
	}
}

func (h *heapAllocator) alloc(size uint64) uint64 {
	if size == 0 {
		return 0
	}
	size = (size + 7) &^ 7 // 8-byte align
	for i, b := range h.blocks {
		if b.free && b.size >= size {
			h.blocks[i].free = false
			if b.size > size {
				h.blocks[i].size = size
				h.blocks = append(h.blocks, memBlock{})
				copy(h.blocks[i+2:], h.blocks[i+1:])
				h.blocks[i+1] = memBlock{addr: b.addr + size, size: b.size - size, free: true}
			}
			return b.addr
		}
	}
	return 0
}

func (h *heapAllocator) free(addr uint64) {
	for i, b := range h.blocks {
		if b.addr == addr && !b.free {
			h.blocks[i].free = true
			h.coalesce()
			return
		}
	}
}

func (h *heapAllocator) coalesce() {
	for i := 0; i < len(h.blocks)-1; i++ {
		if h.blocks[i].free && h.blocks[i+1].free {
			h.blocks[i].size += h.blocks[i+1].size
			h.blocks = append(h.blocks[:i+1], h.blocks[i+2:]...)
			i--
		}
	}
}

func (h *heapAllocator) blockSize(addr uint64) (uint64, bool) {
	for _, b := range h.blocks {
		if b.addr == addr && !b.free {
			return b.size, true
		}
	}
	return 0, false
}

func (vm *VM) memAlloc(size uint64) uint64 {
	if vm.heap == nil {
		vm.initHeap()
	}
	return vm.heap.alloc(size)
}

func (vm *VM) memCalloc(count, size uint64) uint64 {
	total := count * size
	addr := vm.memAlloc(total)
	if addr == 0 {
		return 0
	}
	view, err := vm.Mem.View(addr, int(total))
	if err == nil {
		for i := range view {
			view[i] = 0
		}
	}
	return addr
}

func (vm *VM) memRealloc(addr, newSize uint64) uint64 {
	if vm.heap == nil {
		vm.initHeap()
	}
	oldSize, ok := vm.heap.blockSize(addr)
	newAddr := vm.heap.alloc(newSize)
	if newAddr == 0 {
		return 0
	}
	n := oldSize
	if !ok {
		n = 0
	}
	if newSize < n {
		n = newSize
	}
	if n > 0 {
		src, errSrc := vm.Mem.View(addr, int(n))
		dst, errDst := vm.Mem.View(newAddr, int(n))
		if errSrc == nil && errDst == nil {
			copy(dst, src)
		}
	}
	if ok {
		vm.heap.free(addr)
	}
	return newAddr
}

func (vm *VM) memFree(addr uint64) {
	if vm.heap == nil {
		return
	}
	vm.heap.free(addr)
}

func (vm *VM) memSet(addr, value, n uint64) {
	view, err := vm.Mem.View(addr, int(n))
	if err != nil {
		vm.panicVM("mem_set out of range")
		return
	}
	for i := range view {
		view[i] = byte(value)
	}
}

func (vm *VM) initHeap() {
	// Heap lives above the loaded image, below a fixed guard margin
	// reserved for the stack's deepest expected growth.
	const stackGuard = 4096
	base := (uint64(ENTRY_OFFSET) + vm.imageLen + 7) &^ 7 // 8-byte align
	limit := uint64(MEM_SIZE - stackGuard)
	if base >= limit {
		base = limit
	}
	vm.heap = newHeapAllocator(base, limit)
}
