package main

import (
	"time"
)

// I2CBackend is the I2C facility's external collaborator contract.
// on_receive and on_request are two distinct callback slots: a slave
// reacting to incoming bytes is a different event than a master asking
// it to produce bytes, and conflating them into one slot loses that
// distinction.
type I2CBackend interface {
	Begin() bool
	End()
	BeginTransmission(addr int64)
	EndTransmission() int64
	Write(b byte) uint64
	SlaveWrite(b byte) uint64
	Read() int64
	Peek() int64
	Request(addr int64, quantity int64) int64
	Available() int64
	Flush()
	OnReceive(handlerAddr uint64)
	OnRequest(handlerAddr uint64)
	GetTimeout() int64
	SetTimeout(us int64)
	GetClock() int64
	SetClock(hz int64)
	Pins(sda, scl int64)
	Bufsize() int64
}

// MockI2C is the reference in-process backend: a loopback byte queue
// standing in for a real bus transaction, with the two Open-Question
// callback slots kept genuinely distinct.
type MockI2C struct {
	txBuf        []byte
	rxBuf        []byte
	timeoutUs    int64
	clockHz      int64
	onReceiveFn  uint64
	onRequestFn  uint64
}

func NewMockI2C() *MockI2C {
	return &MockI2C{timeoutUs: 1000, clockHz: 100000}
}

func (i *MockI2C) Begin() bool { return true }
func (i *MockI2C) End()        { i.txBuf = nil; i.rxBuf = nil }

func (i *MockI2C) BeginTransmission(addr int64) { i.txBuf = i.txBuf[:0] }
func (i *MockI2C) EndTransmission() int64       { return 0 }

func (i *MockI2C) Write(b byte) uint64      { i.txBuf = append(i.txBuf, b); return 1 }
func (i *MockI2C) SlaveWrite(b byte) uint64 { i.rxBuf = append(i.rxBuf, b); return 1 }

func (i *MockI2C) Read() int64 {
	if len(i.rxBuf) == 0 {
		return -1
	}
	b := i.rxBuf[0]
	i.rxBuf = i.rxBuf[1:]
	return int64(b)
}

func (i *MockI2C) Peek() int64 {
	if len(i.rxBuf) == 0 {
		return -1
	}
	return int64(i.rxBuf[0])
}

// Request loops back quantity bytes of the last transmission. If fewer
// bytes are available than requested, it waits up to the configured
// timeout (GetTimeout/SetTimeout) for more to arrive, polling against
// monotonicNow() the same way PulseIn bounds its wait, before loop-back
// with whatever ended up available.
func (i *MockI2C) Request(addr int64, quantity int64) int64 {
	deadline := monotonicNow() + time.Duration(i.timeoutUs)*time.Microsecond
	for int64(len(i.txBuf)) < quantity && monotonicNow() < deadline {
		time.Sleep(50 * time.Microsecond)
	}
	if quantity > int64(len(i.txBuf)) {
		quantity = int64(len(i.txBuf))
	}
	i.rxBuf = append(i.rxBuf, i.txBuf[:quantity]...)
	return quantity
}

func (i *MockI2C) Available() int64 { return int64(len(i.rxBuf)) }
func (i *MockI2C) Flush()           { i.txBuf = nil }

func (i *MockI2C) OnReceive(handlerAddr uint64) { i.onReceiveFn = handlerAddr }
func (i *MockI2C) OnRequest(handlerAddr uint64) { i.onRequestFn = handlerAddr }

func (i *MockI2C) GetTimeout() int64    { return i.timeoutUs }
func (i *MockI2C) SetTimeout(us int64)  { i.timeoutUs = us }
func (i *MockI2C) GetClock() int64      { return i.clockHz }
func (i *MockI2C) SetClock(hz int64)    { i.clockHz = hz }
func (i *MockI2C) Pins(sda, scl int64)  {}
func (i *MockI2C) Bufsize() int64       { return 128 }

// I2C dispatch handlers on VM.

func (vm *VM) i2cBegin() uint64                   { return boolToU64(vm.Facilities.I2C.Begin()) }
func (vm *VM) i2cEnd()                            { vm.Facilities.I2C.End() }
func (vm *VM) i2cBeginTransmission(addr int64)    { vm.Facilities.I2C.BeginTransmission(addr) }
func (vm *VM) i2cEndTransmission() int64          { return vm.Facilities.I2C.EndTransmission() }
func (vm *VM) i2cWrite(b byte) uint64             { return vm.Facilities.I2C.Write(b) }
func (vm *VM) i2cSlaveWrite(b byte) uint64        { return vm.Facilities.I2C.SlaveWrite(b) }
func (vm *VM) i2cRead() int64                     { return vm.Facilities.I2C.Read() }
func (vm *VM) i2cPeek() int64                     { return vm.Facilities.I2C.Peek() }
func (vm *VM) i2cRequest(addr, qty int64) int64   { return vm.Facilities.I2C.Request(addr, qty) }
func (vm *VM) i2cAvailable() int64                { return vm.Facilities.I2C.Available() }
func (vm *VM) i2cFlush()                          { vm.Facilities.I2C.Flush() }
func (vm *VM) i2cOnReceive(handlerAddr uint64)    { vm.Facilities.I2C.OnReceive(handlerAddr) }
func (vm *VM) i2cOnRequest(handlerAddr uint64)    { vm.Facilities.I2C.OnRequest(handlerAddr) }
func (vm *VM) i2cGetTimeout() int64               { return vm.Facilities.I2C.GetTimeout() }
func (vm *VM) i2cSetTimeout(us int64)             { vm.Facilities.I2C.SetTimeout(us) }
func (vm *VM) i2cGetClock() int64                 { return vm.Facilities.I2C.GetClock() }
func (vm *VM) i2cSetClock(hz int64)               { vm.Facilities.I2C.SetClock(hz) }
func (vm *VM) i2cPins(sda, scl int64)             { vm.Facilities.I2C.Pins(sda, scl) }
func (vm *VM) i2cBufsize() int64                  { return vm.Facilities.I2C.Bufsize() }
