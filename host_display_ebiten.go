//go:build !headless

package main

import "github.com/hajimehoshi/ebiten/v2"

// EbitenDisplay backs the Display facility with a real window when one
// is available. The facility is query-only — screen/viewport size and
// supported-colour-count getters, no drawing operations — so this
// backend never opens a window itself: it reads whatever window size
// ebiten reports for the process, falling back to a sane default before
// any window exists.
type EbitenDisplay struct{}

// NewDisplayBackend is the one constructor name the rest of the codebase
// calls regardless of build tag; host_display_headless.go provides the
// other implementation under the same name.
func NewDisplayBackend() DisplayBackend { return &EbitenDisplay{} }

func (d *EbitenDisplay) ScreenHeight() int64 {
	_, h := ebiten.WindowSize()
	if h == 0 {
		return 480
	}
	return int64(h)
}

func (d *EbitenDisplay) ScreenWidth() int64 {
	w, _ := ebiten.WindowSize()
	if w == 0 {
		return 640
	}
	return int64(w)
}

func (d *EbitenDisplay) ViewportHeight() int64 { return d.ScreenHeight() }
func (d *EbitenDisplay) ViewportWidth() int64  { return d.ScreenWidth() }

// SupportedColors reports ebiten's RGBA32 colour depth in colours, not bits.
func (d *EbitenDisplay) SupportedColors() int64 { return 1 << 24 }
