package main

import "testing"

func TestRegisterZeroAlwaysReadsZero(t *testing.T) {
	r := &RegisterFile{}
	r.Set(regZero, 0xDEADBEEF)
	if got := r.Get(regZero); got != 0 {
		t.Fatalf("R0 = %#x after write, want 0", got)
	}
}

func TestRegisterSetGetRoundTrip(t *testing.T) {
	r := &RegisterFile{}
	r.Set(regA0, 0x1234)
	if got := r.Get(regA0); got != 0x1234 {
		t.Fatalf("R%d = %#x, want 0x1234", regA0, got)
	}
}

func TestRegisterSignedRoundTrip(t *testing.T) {
	r := &RegisterFile{}
	r.SetSigned(5, -1)
	if got := r.Get(5); got != ^uint64(0) {
		t.Fatalf("SetSigned(-1) stored as %#x, want all-ones", got)
	}
	if got := r.GetSigned(5); got != -1 {
		t.Fatalf("GetSigned = %d, want -1", got)
	}
}

func TestRegisterResetClearsAllLanes(t *testing.T) {
	r := &RegisterFile{}
	for i := 1; i < 32; i++ {
		r.Set(i, uint64(i)+1)
	}
	r.Reset()
	for i := 0; i < 32; i++ {
		if got := r.Get(i); got != 0 {
			t.Fatalf("lane %d = %#x after Reset, want 0", i, got)
		}
	}
}
