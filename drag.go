package indev

import "math"

// updateDragThrowVect folds the most recent sample delta into the
// low-pass velocity estimate that seeds the throw engine on release
// (§4.3): multiply by 5/8, nudge one step toward zero, add vect*4/8. This
// runs on every pressed sample regardless of whether a drag is underway,
// so the estimate is warm the instant a release happens.
func (d *Device) updateDragThrowVect() {
	ps := &d.state.pointer
	v := ps.dragThrowVect.Scale(5.0 / 8.0)
	v = nudgeTowardZero(v)
	v = v.Add(ps.vect.Scale(4.0 / 8.0))
	ps.dragThrowVect = v
}

// processDrag drives the drag engine for the current pressed sample
// (§4.3). It is a no-op unless act_obj is set and its effective drag
// target is draggable.
func (d *Device) processDrag() {
	ps := &d.state.pointer
	obj := ps.actObj
	if obj == nil {
		return
	}

	target := effectiveDragTarget(obj)
	if target == nil || !target.Draggable() {
		return
	}

	ps.dragSum = ps.dragSum.Add(ps.vect)

	if !ps.dragLimitOut {
		limit := d.cfg.DragLimitPx
		if math.Abs(ps.dragSum.X) >= limit || math.Abs(ps.dragSum.Y) >= limit {
			ps.dragLimitOut = true
		}
	}
	if !ps.dragLimitOut {
		return
	}

	oldX, oldY := target.Position()
	newX, newY := oldX+ps.vect.X, oldY+ps.vect.Y
	target.SetPosition(newX, newY)

	if newX != oldX || newY != oldY {
		if !ps.dragInProg {
			ps.dragInProg = true
			target.Signal(SignalDragBegin, d)
		}
		return
	}

	// No coordinate change: the move's speculative invalidation can be
	// popped back off the renderer's queue (§4.3's optimization
	// contract). indev has no notion of a parent resizing independently
	// of a child move, so it treats "no coordinate change" as sufficient
	// on its own.
	if inv, ok := target.(Invalidator); ok {
		inv.PopInvalidation()
	}
}

// endDrag finalizes a drag in progress on release, handing the target to
// the throw engine unless throw is disabled, in which case it terminates
// immediately (§4.4 "If the resolved drag target does not permit throw").
func (d *Device) endDrag() {
	ps := &d.state.pointer
	obj := ps.lastObj
	if obj == nil {
		return
	}
	if !ps.dragInProg && !ps.dragLimitOut {
		return
	}
	target := effectiveDragTarget(obj)
	if target == nil || !target.DragThrowEnabled() {
		ps.dragInProg = false
		ps.throwing = false
		ps.vect = Vec2{}
		ps.dragThrowVect = Vec2{}
		obj.Signal(SignalDragEnd, d)
		return
	}
	// drag_in_prog stays true: the gesture that began with drag-begin
	// hasn't ended yet, it has just changed its vect source from sample
	// deltas to the decaying throw estimate. throw.go's stepThrow
	// continues it from the registry's normal periodic drain and is the
	// one that eventually emits the matching drag-end.
	ps.throwing = true
}
