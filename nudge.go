package indev

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// nudgeFraction is how far toward zero a single nudge step moves a value,
// expressed as the dt handed to a unit-duration linear tween.
const nudgeFraction = 0.5

// settleEpsilon is the magnitude below which a nudged value is snapped to
// exactly zero, so the low-pass estimate actually reaches rest instead of
// approaching it forever (§4.3 "so it actually settles").
const settleEpsilon = 0.01

// nudgeTowardZero moves v one step closer to zero on each axis
// independently. It reuses github.com/tanema/gween — the same tweening
// dependency the corpus uses for node animation — for the "ease a scalar
// toward a target over one discrete step" computation, rather than
// hand-writing the equivalent multiply-and-clamp (see DESIGN.md).
func nudgeTowardZero(v Vec2) Vec2 {
	return Vec2{nudgeAxis(v.X), nudgeAxis(v.Y)}
}

func nudgeAxis(x float64) float64 {
	if x == 0 {
		return 0
	}
	tw := gween.New(float32(x), 0, 1, ease.Linear)
	val, _ := tw.Update(nudgeFraction)
	v := float64(val)
	if v > -settleEpsilon && v < settleEpsilon {
		return 0
	}
	return v
}
