package main

import "time"

// SPIBackend is the SPI facility's external collaborator contract, the
// same device-table idiom generalization as GPIO/I2C. A stalled
// transaction (one left open far longer than a real bus would tolerate)
// is detected the same way GPIO/I2C bound their waits: against the host's
// monotonic clock.
type SPIBackend interface {
	Begin() bool
	End()
	BeginTransaction(clockHz int64, bitOrder int64, dataMode int64)
	EndTransaction()
	Transfer8(v byte) byte
	Transfer16(v uint16) uint16
	Transfer32(v uint32) uint32
	TransferBytes(data []byte) []byte
	TransferBits(v uint32, bits int64) uint32
	SetHWCS(enabled bool)
	SetBitOrder(order int64)
	SetDataMode(mode int64)
	SetFrequency(hz int64)
	SetClockDiv(div int64)
	GetClockDiv() int64
	Write8(v byte)
	Write16(v uint16)
	Write32(v uint32)
	WriteBytes(data []byte)
	WritePixels(data []byte)
	WritePattern(data []byte, repeat int64)
}

// spiStallGuard bounds how long a transaction may stay open before
// EndTransaction treats the bus as stalled and falls back to the
// slowest clock divider, mirroring a watchdog a real SPI driver would
// apply to a transaction that never completes in time.
const spiStallGuard = 500 * time.Millisecond

// spiSafeClockDiv is the divider EndTransaction falls back to after a
// stalled transaction — the slowest of the dividers this mock ever
// hands out under normal operation.
const spiSafeClockDiv = 256

// MockSPI is the reference backend: a loopback transfer (what is written
// is what is read back), since there is no real bus attached.
type MockSPI struct {
	clockDiv int64
	txStart  time.Duration
}

func NewMockSPI() *MockSPI { return &MockSPI{clockDiv: 4} }

func (s *MockSPI) Begin() bool { return true }
func (s *MockSPI) End()        {}
func (s *MockSPI) BeginTransaction(clockHz, bitOrder, dataMode int64) {
	s.txStart = monotonicNow()
}
func (s *MockSPI) EndTransaction() {
	if monotonicNow()-s.txStart > spiStallGuard {
		s.clockDiv = spiSafeClockDiv
	}
}
func (s *MockSPI) Transfer8(v byte) byte                                { return v }
func (s *MockSPI) Transfer16(v uint16) uint16                           { return v }
func (s *MockSPI) Transfer32(v uint32) uint32                           { return v }
func (s *MockSPI) TransferBytes(data []byte) []byte                     { return data }
func (s *MockSPI) TransferBits(v uint32, bits int64) uint32             { return v }
func (s *MockSPI) SetHWCS(enabled bool)                                 {}
func (s *MockSPI) SetBitOrder(order int64)                              {}
func (s *MockSPI) SetDataMode(mode int64)                               {}
func (s *MockSPI) SetFrequency(hz int64)                                {}
func (s *MockSPI) SetClockDiv(div int64)                                { s.clockDiv = div }
func (s *MockSPI) GetClockDiv() int64                                   { return s.clockDiv }
func (s *MockSPI) Write8(v byte)                                        {}
func (s *MockSPI) Write16(v uint16)                                     {}
func (s *MockSPI) Write32(v uint32)                                     {}
func (s *MockSPI) WriteBytes(data []byte)                               {}
func (s *MockSPI) WritePixels(data []byte)                              {}
func (s *MockSPI) WritePattern(data []byte, repeat int64)               {}

// SPI dispatch handlers on VM. Bulk operations (transfer_bytes,
// write_bytes, write_pixels, write_pattern) marshal a bounded guest
// buffer via vm.Mem.View.

func (vm *VM) spiBegin() uint64 { return boolToU64(vm.Facilities.SPI.Begin()) }
func (vm *VM) spiEnd()          { vm.Facilities.SPI.End() }
func (vm *VM) spiBeginTransaction(clock, order, mode int64) {
	vm.Facilities.SPI.BeginTransaction(clock, order, mode)
}
func (vm *VM) spiEndTransaction()           { vm.Facilities.SPI.EndTransaction() }
func (vm *VM) spiTransfer8(v byte) byte     { return vm.Facilities.SPI.Transfer8(v) }
func (vm *VM) spiTransfer16(v uint16) uint16 { return vm.Facilities.SPI.Transfer16(v) }
func (vm *VM) spiTransfer32(v uint32) uint32 { return vm.Facilities.SPI.Transfer32(v) }

func (vm *VM) spiTransferBytes(addr uint64, length int64) uint64 {
	view, err := vm.Mem.View(addr, int(length))
	if err != nil {
		vm.panicVM("spi transfer_bytes out of range")
		return 0
	}
	result := vm.Facilities.SPI.TransferBytes(view)
	copy(view, result)
	return uint64(len(result))
}

func (vm *VM) spiTransferBits(v uint32, bits int64) uint32 {
	return vm.Facilities.SPI.TransferBits(v, bits)
}

func (vm *VM) spiSetHWCS(enabled int64)     { vm.Facilities.SPI.SetHWCS(enabled != 0) }
func (vm *VM) spiSetBitOrder(order int64)   { vm.Facilities.SPI.SetBitOrder(order) }
func (vm *VM) spiSetDataMode(mode int64)    { vm.Facilities.SPI.SetDataMode(mode) }
func (vm *VM) spiSetFrequency(hz int64)     { vm.Facilities.SPI.SetFrequency(hz) }
func (vm *VM) spiSetClockDiv(div int64)     { vm.Facilities.SPI.SetClockDiv(div) }
func (vm *VM) spiGetClockDiv() int64        { return vm.Facilities.SPI.GetClockDiv() }
func (vm *VM) spiWrite8(v byte)             { vm.Facilities.SPI.Write8(v) }
func (vm *VM) spiWrite16(v uint16)          { vm.Facilities.SPI.Write16(v) }
func (vm *VM) spiWrite32(v uint32)          { vm.Facilities.SPI.Write32(v) }

func (vm *VM) spiWriteBytes(addr uint64, length int64) {
	view, err := vm.Mem.View(addr, int(length))
	if err != nil {
		vm.panicVM("spi write_bytes out of range")
		return
	}
	vm.Facilities.SPI.WriteBytes(view)
}

func (vm *VM) spiWritePixels(addr uint64, length int64) {
	view, err := vm.Mem.View(addr, int(length))
	if err != nil {
		vm.panicVM("spi write_pixels out of range")
		return
	}
	vm.Facilities.SPI.WritePixels(view)
}

func (vm *VM) spiWritePattern(addr uint64, length int64, repeat int64) {
	view, err := vm.Mem.View(addr, int(length))
	if err != nil {
		vm.panicVM("spi write_pattern out of range")
		return
	}
	vm.Facilities.SPI.WritePattern(view, repeat)
}
