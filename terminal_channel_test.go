package main

import (
	"bytes"
	"testing"
)

func TestTerminalChannelWriteGoesToUnderlyingWriter(t *testing.T) {
	var out bytes.Buffer
	tc := NewTerminalChannel(&out)
	if _, err := tc.Write([]byte("hello")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if out.String() != "hello" {
		t.Fatalf("out = %q, want hello", out.String())
	}
}

func TestTerminalChannelReadByteRoundTrip(t *testing.T) {
	tc := NewTerminalChannel(&bytes.Buffer{})
	tc.EnqueueByte('x')
	b, ok := tc.ReadByte()
	if !ok || b != 'x' {
		t.Fatalf("ReadByte = %q, %v; want 'x', true", b, ok)
	}
}

func TestTerminalChannelReadByteTimesOutWhenEmpty(t *testing.T) {
	tc := NewTerminalChannel(&bytes.Buffer{})
	tc.SetTimeoutMs(5)
	_, ok := tc.ReadByte()
	if ok {
		t.Fatal("ReadByte on an empty buffer should time out, not block forever")
	}
}

func TestTerminalChannelReadLineStopsAtNewline(t *testing.T) {
	tc := NewTerminalChannel(&bytes.Buffer{})
	tc.SetTimeoutMs(50)
	for _, b := range []byte("hi\n") {
		tc.EnqueueByte(b)
	}
	line, ok := tc.ReadLine()
	if !ok || line != "hi" {
		t.Fatalf("ReadLine = %q, %v; want hi, true", line, ok)
	}
}

func TestTerminalChannelAvailableAndPeek(t *testing.T) {
	tc := NewTerminalChannel(&bytes.Buffer{})
	if tc.Available() != 0 {
		t.Fatal("Available on an empty buffer must be 0")
	}
	tc.EnqueueByte('z')
	if tc.Available() != 1 {
		t.Fatalf("Available = %d, want 1", tc.Available())
	}
	b, ok := tc.PeekByte()
	if !ok || b != 'z' {
		t.Fatalf("PeekByte = %q, %v; want 'z', true", b, ok)
	}
	if tc.Available() != 1 {
		t.Fatal("PeekByte must not consume the byte")
	}
}

func TestTerminalChannelRingBufferWraparound(t *testing.T) {
	tc := NewTerminalChannel(&bytes.Buffer{})
	for i := 0; i < 1024; i++ {
		tc.EnqueueByte(byte(i))
	}
	tc.EnqueueByte(0xFF) // buffer is full; must be dropped, not overwrite the head
	if tc.Available() != 1024 {
		t.Fatalf("Available = %d, want 1024 (overflow byte dropped)", tc.Available())
	}
	b, _ := tc.ReadByte()
	if b != 0 {
		t.Fatalf("first byte = %d, want 0 (oldest byte, not overwritten)", b)
	}
}
