package main

import "testing"

func TestNVSGetterReturnsDeclaredWidthNotI8Cast(t *testing.T) {
	nvs := NewFileNVS(t.TempDir())
	nvs.SetI64("wide", 1000) // does not fit in an int8

	got, ok := nvs.GetI64("wide")
	if !ok || got != 1000 {
		t.Fatalf("GetI64 = %d, %v; want 1000, true", got, ok)
	}
}

func TestNVSDispatchNarrowsOnlyAtBoundary(t *testing.T) {
	vm := newTestVM(t)
	key := "k\x00"
	for i, b := range []byte(key) {
		_ = vm.Mem.WriteU8(ENTRY_OFFSET+uint64(i), b)
	}
	vm.nvsSetI16(ENTRY_OFFSET, 30000)
	if got := vm.nvsGetI16(ENTRY_OFFSET); got != 30000 {
		t.Fatalf("nvsGetI16 = %d, want 30000 (full i16 width preserved)", got)
	}
	if got := vm.nvsGetI64(ENTRY_OFFSET); got != 30000 {
		t.Fatalf("nvsGetI64 over the same key = %d, want 30000", got)
	}
}

func TestNVSCommitPersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	a := NewFileNVS(dir)
	a.SetString("ssid", "testnet")
	if !a.Commit() {
		t.Fatal("Commit failed")
	}

	b := NewFileNVS(dir)
	got, ok := b.GetString("ssid")
	if !ok || got != "testnet" {
		t.Fatalf("GetString after reload = %q, %v; want testnet, true", got, ok)
	}
}
