package main

import "runtime"

// Runtime facility: strpass (pull the next byte of the active host
// string stream) and yield (let the host scheduler run its own
// background work between guest instructions).

func (vm *VM) rtStrpass() uint64 {
	return uint64(vm.strStream.next())
}

// rtYield translates the guest's Runtime::yield into whatever
// cooperative yield the host platform provides — runtime.Gosched lets
// the errgroup-driven control goroutine in main.go make
// progress between guest instructions, the same relationship
// runtime_ipc.go's accept loop has with the interpreter's own goroutine.
func (vm *VM) rtYield() {
	runtime.Gosched()
}
