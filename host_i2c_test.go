package main

import "testing"

func TestI2COnReceiveAndOnRequestAreDistinctSlots(t *testing.T) {
	i2c := NewMockI2C()
	i2c.OnReceive(0x1000)
	i2c.OnRequest(0x2000)

	if i2c.onReceiveFn != 0x1000 {
		t.Fatalf("onReceiveFn = %#x, want 0x1000", i2c.onReceiveFn)
	}
	if i2c.onRequestFn != 0x2000 {
		t.Fatalf("onRequestFn = %#x, want 0x2000", i2c.onRequestFn)
	}
	if i2c.onReceiveFn == i2c.onRequestFn {
		t.Fatal("setting one handler must not clobber the other")
	}
}

func TestI2CRequestLoopsBackTransmittedBytes(t *testing.T) {
	i2c := NewMockI2C()
	i2c.BeginTransmission(0x42)
	i2c.Write('a')
	i2c.Write('b')

	n := i2c.Request(0x42, 2)
	if n != 2 {
		t.Fatalf("Request returned %d, want 2", n)
	}
	if got := i2c.Read(); got != 'a' {
		t.Fatalf("first byte read = %d, want 'a'", got)
	}
	if got := i2c.Read(); got != 'b' {
		t.Fatalf("second byte read = %d, want 'b'", got)
	}
	if got := i2c.Read(); got != -1 {
		t.Fatalf("Read after exhaustion = %d, want -1", got)
	}
}
