package ebitenhal

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/indev"
)

// TouchTracker assigns ebiten touch contacts to stable numbered slots
// across frames, the same scheme as the teacher's Scene.touchSlot /
// touchMap. One tracker is shared by every slotHAL it hands out via Slot,
// since slot allocation only makes sense with a single shared view of
// which touch IDs are already claimed.
type TouchTracker struct {
	ToWorld func(sx, sy float64) (float64, float64)

	ids     []ebiten.TouchID
	used    []bool
	lastPos []indev.Vec2 // last known position per slot, for the release sample
	current []ebiten.TouchID // scratch buffer for AppendTouchIDs
}

// NewTouchTracker creates a tracker supporting up to maxSlots simultaneous
// contacts.
func NewTouchTracker(maxSlots int) *TouchTracker {
	return &TouchTracker{
		ids:     make([]ebiten.TouchID, maxSlots),
		used:    make([]bool, maxSlots),
		lastPos: make([]indev.Vec2, maxSlots),
	}
}

// BeginFrame refreshes the slot assignment. The host calls this once per
// ebiten Update, before Registry.Tick drains the devices built from
// Slot — every slotHAL.Read call that frame then shares the same mapping,
// the same single-refresh-per-frame shape as processTouchPointers.
func (t *TouchTracker) BeginFrame() {
	t.current = ebiten.AppendTouchIDs(t.current[:0])

	activeSlot := make([]bool, len(t.ids))
	for _, tid := range t.current {
		slot := t.slotFor(tid)
		if slot >= 0 {
			activeSlot[slot] = true
		}
	}
	for i, active := range activeSlot {
		if t.used[i] && !active {
			t.used[i] = false
		}
	}
}

// slotFor returns the slot tid occupies, allocating a fresh one if tid is
// new and a slot is free. Returns -1 if every slot is already claimed by
// a different contact.
func (t *TouchTracker) slotFor(tid ebiten.TouchID) int {
	for i, used := range t.used {
		if used && t.ids[i] == tid {
			return i
		}
	}
	for i, used := range t.used {
		if !used {
			t.ids[i] = tid
			t.used[i] = true
			return i
		}
	}
	return -1
}

// Slot returns an indev.HAL reading slot's contact, for wiring into one
// KindPointer device.
func (t *TouchTracker) Slot(slot int) indev.HAL {
	return slotHAL{tracker: t, slot: slot}
}

type slotHAL struct {
	tracker *TouchTracker
	slot    int
}

func (h slotHAL) Read(_ context.Context, _ *indev.Device) (indev.Sample, bool) {
	t := h.tracker
	if !t.used[h.slot] {
		return indev.Sample{State: indev.Released, Point: t.lastPos[h.slot]}, false
	}

	tid := t.ids[h.slot]
	tx, ty := ebiten.TouchPosition(tid)
	sx, sy := float64(tx), float64(ty)
	if t.ToWorld != nil {
		sx, sy = t.ToWorld(sx, sy)
	}
	t.lastPos[h.slot] = indev.Vec2{X: sx, Y: sy}
	return indev.Sample{State: indev.Pressed, Point: t.lastPos[h.slot]}, false
}
