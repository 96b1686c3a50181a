package main

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/term"
)

// TerminalChannel is the byte-oriented stream used both for IO::print*
// output and for fault diagnostics, CRLF terminated. It combines an
// input ring buffer with a raw-mode stdin reader in one type because
// this ABI reaches the terminal through synchronous host calls rather
// than polled MMIO registers.
type TerminalChannel struct {
	mu  sync.Mutex
	out io.Writer

	inputBuf  [1024]byte
	inputHead int
	inputTail int
	inputLen  int

	timeoutMs atomic.Int64

	fd           int
	oldTermState *term.State
	nonblockSet  bool
	stopCh       chan struct{}
	done         chan struct{}
	stopped      sync.Once
}

// NewTerminalChannel wraps an io.Writer (typically os.Stdout) for output.
// Call StartHostReader to additionally feed real stdin into the input
// ring buffer; tests instead call EnqueueByte directly.
func NewTerminalChannel(out io.Writer) *TerminalChannel {
	tc := &TerminalChannel{out: out, stopCh: make(chan struct{})}
	tc.timeoutMs.Store(1000)
	return tc
}

// Write satisfies io.Writer so the fault path and IO::print* handlers
// can both write through the same channel.
func (tc *TerminalChannel) Write(p []byte) (int, error) {
	return tc.out.Write(p)
}

// StartHostReader puts stdin into raw mode and begins routing bytes into
// the input ring buffer. Only called from main.go for interactive use —
// never in tests.
func (tc *TerminalChannel) StartHostReader() {
	tc.fd = int(os.Stdin.Fd())
	tc.done = make(chan struct{})

	oldState, err := term.MakeRaw(tc.fd)
	if err != nil {
		close(tc.done)
		return
	}
	tc.oldTermState = oldState

	if err := syscall.SetNonblock(tc.fd, true); err != nil {
		_ = term.Restore(tc.fd, tc.oldTermState)
		tc.oldTermState = nil
		close(tc.done)
		return
	}
	tc.nonblockSet = true

	go func() {
		defer close(tc.done)
		buf := make([]byte, 1)
		for {
			select {
			case <-tc.stopCh:
				return
			default:
			}
			n, err := syscall.Read(tc.fd, buf)
			if n > 0 {
				b := buf[0]
				if b == '\r' {
					b = '\n'
				}
				tc.EnqueueByte(b)
			}
			if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
				time.Sleep(5 * time.Millisecond)
				continue
			}
			if err != nil {
				return
			}
			if n == 0 {
				time.Sleep(5 * time.Millisecond)
			}
		}
	}()
}

// StopHostReader restores stdin and stops the reader goroutine started
// by StartHostReader. Safe to call even if StartHostReader never ran.
func (tc *TerminalChannel) StopHostReader() {
	tc.stopped.Do(func() { close(tc.stopCh) })
	if tc.done != nil {
		<-tc.done
	}
	if tc.nonblockSet {
		_ = syscall.SetNonblock(tc.fd, false)
		tc.nonblockSet = false
	}
	if tc.oldTermState != nil {
		_ = term.Restore(tc.fd, tc.oldTermState)
		tc.oldTermState = nil
	}
}

// EnqueueByte appends a byte to the input ring buffer; used by the host
// reader goroutine and directly by tests that simulate guest stdin.
func (tc *TerminalChannel) EnqueueByte(b byte) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	if tc.inputLen >= len(tc.inputBuf) {
		return
	}
	tc.inputBuf[tc.inputTail] = b
	tc.inputTail = (tc.inputTail + 1) % len(tc.inputBuf)
	tc.inputLen++
}

func (tc *TerminalChannel) dequeueLocked() (byte, bool) {
	if tc.inputLen == 0 {
		return 0, false
	}
	b := tc.inputBuf[tc.inputHead]
	tc.inputHead = (tc.inputHead + 1) % len(tc.inputBuf)
	tc.inputLen--
	return b, true
}

// ReadByte pops one byte from the input ring buffer, blocking up to the
// channel's configured timeout. ok is false on timeout (IO::readch's
// "nothing available" sentinel path).
func (tc *TerminalChannel) ReadByte() (byte, bool) {
	deadline := time.Now().Add(time.Duration(tc.timeoutMs.Load()) * time.Millisecond)
	for {
		tc.mu.Lock()
		b, ok := tc.dequeueLocked()
		tc.mu.Unlock()
		if ok {
			return b, true
		}
		if time.Now().After(deadline) {
			return 0, false
		}
		time.Sleep(time.Millisecond)
	}
}

// ReadLine accumulates bytes until '\n' or timeout, mirroring the
// teacher's line-mode input handling without its MMIO register framing.
func (tc *TerminalChannel) ReadLine() (string, bool) {
	var line []byte
	deadline := time.Now().Add(time.Duration(tc.timeoutMs.Load()) * time.Millisecond)
	for {
		tc.mu.Lock()
		b, ok := tc.dequeueLocked()
		tc.mu.Unlock()
		if ok {
			if b == '\n' {
				return string(line), true
			}
			line = append(line, b)
			continue
		}
		if time.Now().After(deadline) {
			if len(line) > 0 {
				return string(line), true
			}
			return "", false
		}
		time.Sleep(time.Millisecond)
	}
}

// Available reports how many bytes are waiting in the input ring buffer.
func (tc *TerminalChannel) Available() int {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.inputLen
}

// PeekByte returns the next byte without consuming it.
func (tc *TerminalChannel) PeekByte() (byte, bool) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	if tc.inputLen == 0 {
		return 0, false
	}
	return tc.inputBuf[tc.inputHead], true
}

// SetTimeoutMs / TimeoutMs back IO::set_timeout / IO::get_timeout.
func (tc *TerminalChannel) SetTimeoutMs(ms int64) { tc.timeoutMs.Store(ms) }
func (tc *TerminalChannel) TimeoutMs() int64       { return tc.timeoutMs.Load() }
