package main

import (
	"sync/atomic"
)

// VM is the RV64IM interpreter: sandbox memory, register file, program
// counter, and execution-state flags. Facilities are external
// collaborators reached only through their contracts; the VM never
// depends on a concrete driver.
type VM struct {
	Mem  *Memory
	Regs *RegisterFile
	PC   int64

	running  atomic.Bool
	exitCode int64

	Terminal   *TerminalChannel
	Facilities *Facilities

	files    *FileTable
	workDir  string
	argv     []string
	heap     *heapAllocator
	imageLen uint64

	dirCursors map[int64][]string

	strStream stringStream
}

// NewVM constructs a VM wired to the given terminal channel and host-call
// facilities, then puts it into the post-initialise state.
func NewVM(terminal *TerminalChannel, facilities *Facilities) *VM {
	vm := &VM{
		Mem:        NewMemory(),
		Regs:       &RegisterFile{},
		Terminal:   terminal,
		Facilities: facilities,
		files:      newFileTable(),
	}
	vm.initialise()
	return vm
}

// initialise sets running=false, pc=0, exit_code=0, an empty register
// file, an empty file table, and the working directory to "/".
func (vm *VM) initialise() {
	vm.running.Store(false)
	vm.PC = 0
	vm.exitCode = 0
	vm.Regs.Reset()
	vm.files.closeAll()
	vm.workDir = "/"
	vm.strStream = stringStream{}
	vm.heap = nil
	vm.imageLen = 0
}

// Load reads a raw RV64 instruction stream into the sandbox at
// ENTRY_OFFSET, sets the stack pointer to MEM_SIZE, and sets pc to
// ENTRY_OFFSET. Images that would not fit return an error and leave the
// VM unchanged. The image length is recorded so the heap allocator
// (host_mem.go) never hands out memory the image itself occupies.
func (vm *VM) Load(img []byte) error {
	if err := vm.Mem.LoadImage(img); err != nil {
		return err
	}
	vm.Regs.Set(regSP, MEM_SIZE)
	vm.PC = ENTRY_OFFSET
	vm.imageLen = uint64(len(img))
	return nil
}

// Run stores argc/argv and enters the fetch/execute loop. It returns once
// running becomes false, via Sys::exit, EBREAK, or a fault.
func (vm *VM) Run(argv []string) int64 {
	vm.argv = argv
	vm.running.Store(true)
	vm.execute()
	return vm.exitCode
}

// Reset returns the VM to its post-initialise state, closing any open
// file handles. Must be called before the next Run after a halt.
func (vm *VM) Reset() {
	vm.Mem.Reset()
	vm.initialise()
}

// ExitCode returns the signed exit code set by Sys::exit or a fault.
func (vm *VM) ExitCode() int64 { return vm.exitCode }

// Running reports whether the fetch/execute loop is still active.
func (vm *VM) Running() bool { return vm.running.Load() }

// Stop requests termination from outside the fetch/execute loop; the
// loop observes this once the instruction in flight has finished (see
// rv64_execute.go).
func (vm *VM) Stop() {
	vm.running.Store(false)
}

func (vm *VM) closeAllFiles() {
	vm.files.closeAll()
}
