package main

// DisplayBackend is the Display facility's contract: query-only size and
// colour-depth reporting, with no drawing operations. Two backends
// satisfy it, selected by build tag: host_display_ebiten.go for a real
// window, host_display_headless.go for a fixed-size virtual screen.
type DisplayBackend interface {
	ScreenHeight() int64
	ScreenWidth() int64
	ViewportHeight() int64
	ViewportWidth() int64
	SupportedColors() int64
}

// Display dispatch handlers on VM.

func (vm *VM) displayScreenHeight() int64    { return vm.Facilities.Display.ScreenHeight() }
func (vm *VM) displayScreenWidth() int64     { return vm.Facilities.Display.ScreenWidth() }
func (vm *VM) displayViewportHeight() int64  { return vm.Facilities.Display.ViewportHeight() }
func (vm *VM) displayViewportWidth() int64   { return vm.Facilities.Display.ViewportWidth() }
func (vm *VM) displaySupportedColors() int64 { return vm.Facilities.Display.SupportedColors() }
