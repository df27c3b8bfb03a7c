package ebitenhal

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/indev"
)

// MouseHAL reads the primary mouse button and cursor position as a single
// KindPointer device (pointer slot 0 in the teacher's numbering). A
// ToWorld hook lets the host apply its own screen-to-world transform
// (the teacher's Camera.ScreenToWorld); when nil, screen coordinates are
// used directly.
type MouseHAL struct {
	Button  ebiten.MouseButton
	ToWorld func(sx, sy float64) (float64, float64)
}

// NewMouseHAL returns a HAL driven by the left mouse button.
func NewMouseHAL() *MouseHAL {
	return &MouseHAL{Button: ebiten.MouseButtonLeft}
}

func (h *MouseHAL) Read(_ context.Context, _ *indev.Device) (indev.Sample, bool) {
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)
	if h.ToWorld != nil {
		sx, sy = h.ToWorld(sx, sy)
	}

	state := indev.Released
	if ebiten.IsMouseButtonPressed(h.Button) {
		state = indev.Pressed
	}

	return indev.Sample{State: state, Point: indev.Vec2{X: sx, Y: sy}}, false
}
