package main

import "fmt"

// IO facility handlers. All output goes through vm.Terminal (an
// io.Writer), all input comes from its ring buffer via
// ReadByte/ReadLine/Available/PeekByte.

func (vm *VM) ioPrints(addr uint64) {
	s, err := vm.readGuestString(addr, MEM_SIZE)
	if err != nil {
		vm.panicVM("prints: bad pointer")
		return
	}
	fmt.Fprint(vm.Terminal, s)
}

func (vm *VM) ioPrintn(n int64) {
	fmt.Fprintf(vm.Terminal, "%d", n)
}

func (vm *VM) ioPrintd(bits uint64) {
	fmt.Fprintf(vm.Terminal, "%g", Float64FromBits(bits))
}

// ioReadch returns the next byte as a zero-extended register value, or
// -1 (all bits set) on timeout: failures are reported in-band as numeric
// sentinels, never by panicking.
func (vm *VM) ioReadch() uint64 {
	b, ok := vm.Terminal.ReadByte()
	if !ok {
		return uint64(int64(-1))
	}
	return uint64(b)
}

// ioReadline streams the accumulated line back to the guest via the
// RT_STRPASS cursor and returns its length in R[10].
func (vm *VM) ioReadline() uint64 {
	line, ok := vm.Terminal.ReadLine()
	if !ok {
		return uint64(int64(-1))
	}
	return uint64(vm.strStream.begin(line))
}

// ioRead mirrors ioReadch's single-byte semantics under the IO group's
// own name (distinct host call from readch in the ABI, same underlying
// stream).
func (vm *VM) ioRead() uint64 {
	return vm.ioReadch()
}

func (vm *VM) ioAvailable() uint64 {
	return uint64(vm.Terminal.Available())
}

func (vm *VM) ioPeek() uint64 {
	b, ok := vm.Terminal.PeekByte()
	if !ok {
		return uint64(int64(-1))
	}
	return uint64(b)
}

// ioFind drains bytes until it sees the given single-byte target or the
// input runs dry; returns 1/0 found/not-found.
func (vm *VM) ioFind(target byte) uint64 {
	for {
		b, ok := vm.Terminal.ReadByte()
		if !ok {
			return 0
		}
		if b == target {
			return 1
		}
	}
}

// ioFindUntil is ioFind bounded by a second terminator byte; returns 0 if
// the terminator is seen before the target.
func (vm *VM) ioFindUntil(target, terminator byte) uint64 {
	for {
		b, ok := vm.Terminal.ReadByte()
		if !ok {
			return 0
		}
		if b == target {
			return 1
		}
		if b == terminator {
			return 0
		}
	}
}

func (vm *VM) ioSetTimeout(ms int64) {
	vm.Terminal.SetTimeoutMs(ms)
}

func (vm *VM) ioGetTimeout() uint64 {
	return uint64(vm.Terminal.TimeoutMs())
}
