package main

// Facilities bundles every host-call group's external collaborator
// behind its contract interface. The VM depends only on these
// interfaces, never on a concrete driver; a host controller wires in
// real GPIO/I2C/SPI/FS/Display backends, tests wire in mocks.
type Facilities struct {
	GPIO     GPIOBackend
	Int      IntBackend
	FS       FSBackend
	I2C      I2CBackend
	Keyboard KeyboardBackend
	Display  DisplayBackend
	NVS      NVSBackend
	SPI      SPIBackend
	Sys      SysBackend
}

// NewDefaultFacilities wires every facility to its in-process reference
// implementation: the build-tag-selected display (EbitenDisplay, or
// HeadlessDisplay under -tags headless), a mock GPIO/I2C/SPI/Int bus, and
// a file-backed FS/NVS rooted at baseDir. This is what main.go uses unless
// the host swaps in a real driver.
func NewDefaultFacilities(baseDir string) *Facilities {
	return &Facilities{
		GPIO:     NewMockGPIO(),
		Int:      NewMockInt(),
		FS:       NewOSFSBackend(baseDir),
		I2C:      NewMockI2C(),
		Keyboard: NewMockKeyboard(),
		Display:  NewDisplayBackend(),
		NVS:      NewFileNVS(baseDir),
		SPI:      NewMockSPI(),
		Sys:      NewHostSys(),
	}
}
