package main

import "testing"

func TestMemoryBoundsChecking(t *testing.T) {
	m := NewMemory()

	if _, err := m.ReadU8(MEM_SIZE); err == nil {
		t.Fatal("ReadU8 at MEM_SIZE should fault")
	}
	if err := m.WriteU8(MEM_SIZE, 1); err == nil {
		t.Fatal("WriteU8 at MEM_SIZE should fault")
	}
	if _, err := m.ReadU64(MEM_SIZE-4); err == nil {
		t.Fatal("ReadU64 spanning past MEM_SIZE should fault")
	}
	if _, err := m.View(MEM_SIZE-1, 2); err == nil {
		t.Fatal("View spanning past MEM_SIZE should fault")
	}
}

func TestMemoryOverflowAddrRejected(t *testing.T) {
	m := NewMemory()
	addr := ^uint64(0) - 2 // addr+width overflows uint64
	if _, err := m.View(addr, 8); err == nil {
		t.Fatal("View with an overflowing addr+width should fault, not wrap")
	}
}

func TestMemoryLittleEndianRoundTrip(t *testing.T) {
	m := NewMemory()

	if err := m.WriteU16(0x10, 0xBEEF); err != nil {
		t.Fatalf("WriteU16: %v", err)
	}
	lo, _ := m.ReadU8(0x10)
	hi, _ := m.ReadU8(0x11)
	if lo != 0xEF || hi != 0xBE {
		t.Fatalf("WriteU16 not little-endian: lo=%#x hi=%#x", lo, hi)
	}
	got, err := m.ReadU16(0x10)
	if err != nil || got != 0xBEEF {
		t.Fatalf("ReadU16 round trip = %#x, %v", got, err)
	}

	if err := m.WriteU32(0x20, 0xDEADBEEF); err != nil {
		t.Fatalf("WriteU32: %v", err)
	}
	got32, err := m.ReadU32(0x20)
	if err != nil || got32 != 0xDEADBEEF {
		t.Fatalf("ReadU32 round trip = %#x, %v", got32, err)
	}

	if err := m.WriteU64(0x30, 0x0102030405060708); err != nil {
		t.Fatalf("WriteU64: %v", err)
	}
	got64, err := m.ReadU64(0x30)
	if err != nil || got64 != 0x0102030405060708 {
		t.Fatalf("ReadU64 round trip = %#x, %v", got64, err)
	}
	b, _ := m.ReadU8(0x30)
	if b != 0x08 {
		t.Fatalf("WriteU64 not little-endian: first byte = %#x, want 0x08", b)
	}
}

func TestMemoryResetClearsBytes(t *testing.T) {
	m := NewMemory()
	_ = m.WriteU32(100, 0xFFFFFFFF)
	m.Reset()
	v, _ := m.ReadU32(100)
	if v != 0 {
		t.Fatalf("Reset left %#x at addr 100, want 0", v)
	}
}

func TestMemoryLoadImageRejectsOversize(t *testing.T) {
	m := NewMemory()
	img := make([]byte, MEM_SIZE-ENTRY_OFFSET+1)
	if err := m.LoadImage(img); err == nil {
		t.Fatal("LoadImage should reject an image larger than MEM_SIZE-ENTRY_OFFSET")
	}
}

func TestMemoryLoadImagePlacement(t *testing.T) {
	m := NewMemory()
	img := []byte{0x01, 0x02, 0x03, 0x04}
	if err := m.LoadImage(img); err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	got, _ := m.ReadU32(ENTRY_OFFSET)
	if got != 0x04030201 {
		t.Fatalf("image not placed at ENTRY_OFFSET: got %#x", got)
	}
}

func TestFloatBitcastRoundTrip(t *testing.T) {
	f := 3.14159
	if got := Float64FromBits(Float64ToBits(f)); got != f {
		t.Fatalf("float64 bitcast round trip = %v, want %v", got, f)
	}
	f32 := float32(2.71828)
	if got := Float32FromBits(Float32ToBits(f32)); got != f32 {
		t.Fatalf("float32 bitcast round trip = %v, want %v", got, f32)
	}
}
