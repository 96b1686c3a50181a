package main

import (
	"time"

	"golang.org/x/sys/unix"
)

// GPIOBackend is the contract for the GPIO facility's real hardware
// collaborator: pin state lives outside the core interpreter and is
// reached only through this interface.
type GPIOBackend interface {
	PinMode(pin int64, mode int64)
	DigitalRead(pin int64) int64
	DigitalWrite(pin int64, value int64)
	AnalogRead(pin int64) int64
	AnalogWrite(pin int64, value int64)
	PulseIn(pin int64, value int64, timeoutUs int64) int64
	ShiftIn(dataPin, clockPin, order int64) int64
	ShiftOut(dataPin, clockPin, order, value int64)
	Tone(pin int64, freq int64)
	NoTone(pin int64)
}

// MockGPIO is the reference in-process backend used by tests and by
// main.go when no real board is attached. Pin state is held
// entirely host-side; the VM never touches it directly.
type MockGPIO struct {
	pinModes  map[int64]int64
	pinValues map[int64]int64
}

func NewMockGPIO() *MockGPIO {
	return &MockGPIO{pinModes: map[int64]int64{}, pinValues: map[int64]int64{}}
}

func (g *MockGPIO) PinMode(pin, mode int64)       { g.pinModes[pin] = mode }
func (g *MockGPIO) DigitalRead(pin int64) int64    { return g.pinValues[pin] }
func (g *MockGPIO) DigitalWrite(pin, value int64)  { g.pinValues[pin] = value }
func (g *MockGPIO) AnalogRead(pin int64) int64     { return g.pinValues[pin] }
func (g *MockGPIO) AnalogWrite(pin, value int64)   { g.pinValues[pin] = value }
func (g *MockGPIO) Tone(pin, freq int64)           { g.pinValues[pin] = freq }
func (g *MockGPIO) NoTone(pin int64)               { g.pinValues[pin] = 0 }

// monotonicNow reads the host's monotonic clock, the same source a real
// board's bus drivers would use to bound a blocking transaction. Shared
// by GPIO, I2C, and SPI so timeout/elapsed-time logic is measured
// against wall-clock drift rather than a loop-iteration count.
func monotonicNow() time.Duration {
	var ts unix.Timespec
	_ = unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts)
	return time.Duration(ts.Sec)*time.Second + time.Duration(ts.Nsec)
}

// PulseIn waits for a pin transition and times the pulse, bounded by
// timeoutUs microseconds. The bound is enforced against monotonicNow(),
// not a fixed sleep, so a slow host doesn't silently blow past the
// guest-requested timeout — this mock has no real pulse to time, so it
// always reports a timeout (0) once the bound elapses.
func (g *MockGPIO) PulseIn(pin, value, timeoutUs int64) int64 {
	bound := time.Duration(timeoutUs) * time.Microsecond
	if bound > 2*time.Millisecond {
		bound = 2 * time.Millisecond
	}
	deadline := monotonicNow() + bound
	for monotonicNow() < deadline {
		time.Sleep(100 * time.Microsecond)
	}
	return 0
}

func (g *MockGPIO) ShiftIn(dataPin, clockPin, order int64) int64 {
	return g.pinValues[dataPin]
}

func (g *MockGPIO) ShiftOut(dataPin, clockPin, order, value int64) {
	g.pinValues[dataPin] = value
}

// IntBackend is the Int facility's contract: enable/disable the global
// interrupt gate and attach/detach a handler per pin.
type IntBackend interface {
	Enable()
	Disable()
	Attach(pin int64, mode int64) bool
	Detach(pin int64) bool
}

type MockInt struct {
	enabled  bool
	attached map[int64]int64
}

func NewMockInt() *MockInt {
	return &MockInt{attached: map[int64]int64{}}
}

func (m *MockInt) Enable()  { m.enabled = true }
func (m *MockInt) Disable() { m.enabled = false }

func (m *MockInt) Attach(pin, mode int64) bool {
	m.attached[pin] = mode
	return true
}

func (m *MockInt) Detach(pin int64) bool {
	if _, ok := m.attached[pin]; !ok {
		return false
	}
	delete(m.attached, pin)
	return true
}

// GPIO/Int dispatch handlers on VM.

func (vm *VM) gpioPinMode(pin, mode int64)      { vm.Facilities.GPIO.PinMode(pin, mode) }
func (vm *VM) gpioDigitalRead(pin int64) int64  { return vm.Facilities.GPIO.DigitalRead(pin) }
func (vm *VM) gpioDigitalWrite(pin, v int64)    { vm.Facilities.GPIO.DigitalWrite(pin, v) }
func (vm *VM) gpioAnalogRead(pin int64) int64   { return vm.Facilities.GPIO.AnalogRead(pin) }
func (vm *VM) gpioAnalogWrite(pin, v int64)     { vm.Facilities.GPIO.AnalogWrite(pin, v) }
func (vm *VM) gpioPulseIn(pin, v, timeout int64) int64 {
	return vm.Facilities.GPIO.PulseIn(pin, v, timeout)
}
func (vm *VM) gpioShiftIn(d, c, o int64) int64 { return vm.Facilities.GPIO.ShiftIn(d, c, o) }
func (vm *VM) gpioShiftOut(d, c, o, v int64)   { vm.Facilities.GPIO.ShiftOut(d, c, o, v) }
func (vm *VM) gpioTone(pin, freq int64)        { vm.Facilities.GPIO.Tone(pin, freq) }
func (vm *VM) gpioNoTone(pin int64)            { vm.Facilities.GPIO.NoTone(pin) }

func (vm *VM) intEnable()             { vm.Facilities.Int.Enable() }
func (vm *VM) intDisable()            { vm.Facilities.Int.Disable() }
func (vm *VM) intAttach(p, m int64) uint64 { return boolToU64(vm.Facilities.Int.Attach(p, m)) }
func (vm *VM) intDetach(p int64) uint64    { return boolToU64(vm.Facilities.Int.Detach(p)) }
