package main

import (
	"bytes"
	"testing"
)

func newTestVM(t *testing.T) *VM {
	t.Helper()
	terminal := NewTerminalChannel(&bytes.Buffer{})
	facilities := NewDefaultFacilities(t.TempDir())
	return NewVM(terminal, facilities)
}

func TestDivisionByZeroInvariants(t *testing.T) {
	if got := divSigned64(7, 0); got != -1 {
		t.Fatalf("DIV(7,0) = %d, want -1", got)
	}
	if got := remSigned64(7, 0); got != 7 {
		t.Fatalf("REM(7,0) = %d, want 7", got)
	}
	if got := divUnsigned64(7, 0); got != maxUint64 {
		t.Fatalf("DIVU(7,0) = %d, want maxUint64", got)
	}
	if got := remUnsigned64(7, 0); got != 7 {
		t.Fatalf("REMU(7,0) = %d, want 7", got)
	}
}

func TestDivisionOverflowInvariants(t *testing.T) {
	if got := divSigned64(minInt64, -1); got != minInt64 {
		t.Fatalf("DIV(MIN,-1) = %d, want MIN", got)
	}
	if got := remSigned64(minInt64, -1); got != 0 {
		t.Fatalf("REM(MIN,-1) = %d, want 0", got)
	}
	if got := divSigned32(minInt32, -1); got != minInt32 {
		t.Fatalf("DIVW(MIN,-1) = %d, want MIN32", got)
	}
	if got := remSigned32(minInt32, -1); got != 0 {
		t.Fatalf("REMW(MIN,-1) = %d, want 0", got)
	}
}

func TestMulhSignCombinations(t *testing.T) {
	if got := mulh(-1, -1); got != 0 {
		t.Fatalf("MULH(-1,-1) = %d, want 0 (product is 1, fits in low word)", got)
	}
	// MULH(MIN64, MIN64) high word should be 0x4000000000000000 (positive product's top bits).
	want := int64(0x4000000000000000)
	if got := mulh(minInt64, minInt64); got != want {
		t.Fatalf("MULH(MIN,MIN) = %#x, want %#x", got, want)
	}
}

func TestWordFormSignExtension(t *testing.T) {
	vm := newTestVM(t)
	// ADDIW x1, x0, -1 then observe the full 64-bit lane is all-ones.
	word := encodeI(-1, 0, 0x0, 1, opImm32)
	d := decode(word)
	vm.step(d)
	if got := vm.Regs.Get(1); got != ^uint64(0) {
		t.Fatalf("ADDIW sign extension: R1 = %#x, want all-ones", got)
	}
}

func TestJALDiscardsLinkWhenRdIsZero(t *testing.T) {
	vm := newTestVM(t)
	vm.PC = ENTRY_OFFSET
	// JAL x0, 8 (immediate bit 3 lives at instruction bit 23)
	word := uint32(1<<23) | opJAL
	d := decode(word)
	advance := vm.step(d)
	if advance {
		t.Fatal("JAL should never auto-advance the PC")
	}
	if vm.Regs.Get(regZero) != 0 {
		t.Fatal("R0 must read 0 even after JAL x0")
	}
	if vm.PC != ENTRY_OFFSET+8 {
		t.Fatalf("PC = %#x, want %#x", vm.PC, ENTRY_OFFSET+8)
	}
}

func TestECallAdvancesPCByFour(t *testing.T) {
	vm := newTestVM(t)
	vm.PC = ENTRY_OFFSET
	vm.Regs.Set(regA7, uint64(RT_YIELD))

	word := uint32(opSystem) // funct12 = 0 -> ECALL
	d := decode(word)
	advance := vm.step(d)
	if !advance {
		t.Fatal("ECALL should auto-advance the PC like any other non-control instruction")
	}
}

func TestDispatchUnknownSyscallPanics(t *testing.T) {
	vm := newTestVM(t)
	vm.running.Store(true)
	vm.Regs.Set(regA7, 0xFFFFFF)
	vm.dispatchSyscall()
	if vm.Running() {
		t.Fatal("an unrecognised syscall ID must halt the VM")
	}
	if vm.ExitCode() != -1 {
		t.Fatalf("exit code after unknown syscall = %d, want -1", vm.ExitCode())
	}
}

func TestDispatchWritesReturnValueToA0(t *testing.T) {
	vm := newTestVM(t)
	vm.argv = []string{"prog", "one", "two"}
	vm.Regs.Set(regA7, uint64(ARGS_COUNT))
	vm.dispatchSyscall()
	if got := vm.Regs.Get(regA0); got != 3 {
		t.Fatalf("ARGS_COUNT return in R[a0] = %d, want 3", got)
	}
}
