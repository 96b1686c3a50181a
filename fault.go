package main

import "fmt"

// Fault describes the single reason every recoverable contract violation
// (bad opcode, bad funct3, out-of-range memory access, unknown syscall ID)
// reaches the same panic path.
type Fault struct {
	Reason string
}

func (f *Fault) Error() string { return f.Reason }

// panicVM is the VM's single uniform "panic" procedure. It prints a
// CRLF-framed diagnostic to the terminal channel, sets exit_code = -1,
// clears open resources, and halts the fetch/execute loop. The fault is
// observable but not recoverable within the same run: reset() must be
// called before the next run().
func (vm *VM) panicVM(reason string) {
	vm.running.Store(false)
	vm.exitCode = -1
	if vm.Terminal != nil {
		fmt.Fprintf(vm.Terminal, "PANIC: %s\r\n", reason)
	}
	vm.closeAllFiles()
}
