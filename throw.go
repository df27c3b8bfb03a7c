package indev

// stepThrow advances the inertial throw one tick (§4.4). It is a no-op
// unless endDrag (drag.go) put the device into the throwing state on a
// prior release. Registry.Tick calls this for every enabled pointer-family
// device on every tick, independent of whether the HAL produced any new
// samples — throw has no separate timer, it rides the scheduler period.
func (d *Device) stepThrow() {
	ps := &d.state.pointer
	if !ps.throwing {
		return
	}
	obj := ps.lastObj
	if obj == nil {
		ps.throwing = false
		return
	}
	target := effectiveDragTarget(obj)
	if target == nil {
		ps.throwing = false
		return
	}

	// Decay: drag_throw_vect *= (100-THROW)/100.
	factor := float64(100-d.cfg.DragThrowPercent) / 100.0
	ps.dragThrowVect = ps.dragThrowVect.Scale(factor)

	oldX, oldY := target.Position()
	newX := oldX + ps.dragThrowVect.X
	newY := oldY + ps.dragThrowVect.Y
	target.SetPosition(newX, newY)

	stalled := (ps.dragThrowVect.X != 0 && newX == oldX) ||
		(ps.dragThrowVect.Y != 0 && newY == oldY)

	if stalled || ps.dragThrowVect.IsZero() {
		d.terminateThrow(obj)
	}
}

// terminateThrow ends the throw (and the drag gesture it continued),
// clearing the velocity vectors and the drag/throw flags and emitting the
// matching drag-end signal.
func (d *Device) terminateThrow(obj Widget) {
	ps := &d.state.pointer
	ps.vect = Vec2{}
	ps.dragThrowVect = Vec2{}
	ps.dragInProg = false
	ps.throwing = false
	obj.Signal(SignalDragEnd, d)
}
