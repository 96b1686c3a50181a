//go:build headless

package main

// HeadlessDisplay backs the Display facility when no window system is
// available: fixed, plausible values instead of a real window query.
type HeadlessDisplay struct{}

func NewDisplayBackend() DisplayBackend { return &HeadlessDisplay{} }

func (d *HeadlessDisplay) ScreenHeight() int64    { return 480 }
func (d *HeadlessDisplay) ScreenWidth() int64     { return 640 }
func (d *HeadlessDisplay) ViewportHeight() int64  { return 480 }
func (d *HeadlessDisplay) ViewportWidth() int64   { return 640 }
func (d *HeadlessDisplay) SupportedColors() int64 { return 1 << 24 }
