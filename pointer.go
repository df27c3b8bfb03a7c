package indev

// ProcessPointerSample runs the pointer state machine (C5) for one sample.
// It is also the machine KindButtonArray delegates into (buttonarray.go),
// which is why it takes point/pressed explicitly rather than reading a
// HAL sample itself.
func (d *Device) ProcessPointerSample(point Vec2, pressed bool) {
	ps := &d.state.pointer

	if d.cursor != nil && point != ps.actPoint {
		d.cursor.SetPosition(point.X, point.Y)
	}
	ps.actPoint = point

	if pressed {
		d.pointerPress()
	} else {
		d.pointerRelease()
	}
	ps.lastPoint = ps.actPoint
}

// pointerPress is the press path of §4.5.
func (d *Device) pointerPress() {
	ps := &d.state.pointer
	if ps.waitUntilRelease {
		return
	}

	rehit := ps.actObj == nil ||
		(!ps.dragInProg && !ps.actObj.PressLostProtected())

	var hit Widget
	if rehit {
		hit = FindTarget(d.display, ps.actPoint.X, ps.actPoint.Y)
	} else {
		hit = ps.actObj
	}

	if hit != ps.actObj {
		if ps.actObj != nil {
			ps.actObj.Signal(SignalPressLost, d)
			d.dispatchEvent(ps.actObj, EventPressLost)
			if d.honorReset() {
				return
			}
		}
		ps.actObj = hit
		ps.lastObj = hit
		if hit != nil {
			ps.prTimestamp = d.tick.Now()
			d.state.longPrSent = false
			ps.dragSum = Vec2{}
			ps.dragLimitOut = false
			ps.dragInProg = false
			ps.throwing = false
			ps.vect = Vec2{}

			if top := findTopAncestor(hit); top != nil {
				if r, ok := top.(Reorderable); ok {
					r.BringToFront()
				}
				if inv, ok := top.(Invalidator); ok {
					inv.Invalidate()
				}
			}

			hit.Signal(SignalPressed, d)
			d.dispatchEvent(hit, EventPressed)
			if d.honorReset() {
				return
			}
		}
	}

	ps.vect = ps.actPoint.Sub(ps.lastPoint)
	d.updateDragThrowVect()

	if ps.actObj == nil {
		return
	}

	ps.actObj.Signal(SignalPressing, d)
	d.dispatchEvent(ps.actObj, EventPressing)
	if d.honorReset() {
		return
	}

	d.processDrag()
	if d.honorReset() {
		return
	}

	now := d.tick.Now()
	switch {
	case !ps.dragInProg && !d.state.longPrSent:
		if elapsed(ps.prTimestamp, now) > uint32(d.cfg.LongPressMS) {
			ps.actObj.Signal(SignalLongPress, d)
			d.dispatchEvent(ps.actObj, EventLongPressed)
			d.state.longPrSent = true
			d.state.longPrRepTimestamp = now
			d.honorReset()
		}
	case !ps.dragInProg && d.state.longPrSent:
		if elapsed(d.state.longPrRepTimestamp, now) > uint32(d.cfg.LongPressRepMS) {
			ps.actObj.Signal(SignalLongPressRepeat, d)
			d.dispatchEvent(ps.actObj, EventLongPressedRep)
			d.state.longPrRepTimestamp = now
			d.honorReset()
		}
	}
}

// findTopAncestor walks w and its ancestors looking for the nearest one
// bearing the "top" attribute (§4.5 step 3).
func findTopAncestor(w Widget) Widget {
	for cur := w; cur != nil; cur = cur.Parent() {
		if cur.Top() {
			return cur
		}
	}
	return nil
}

// pointerRelease is the release path of §4.5.
func (d *Device) pointerRelease() {
	ps := &d.state.pointer

	if ps.waitUntilRelease {
		ps.actObj = nil
		ps.lastObj = nil
		d.state.prTimestamp = 0
		d.state.longPrRepTimestamp = 0
		d.state.longPrSent = false
		ps.waitUntilRelease = false
		return
	}

	obj := ps.actObj
	if obj != nil {
		if obj.PressLostProtected() && !obj.Bounds().Contains(ps.actPoint.X, ps.actPoint.Y) {
			obj.Signal(SignalPressLost, d)
			d.dispatchEvent(obj, EventPressLost)
		} else {
			obj.Signal(SignalReleased, d)
			if !d.state.longPrSent && !ps.dragInProg {
				d.dispatchEvent(obj, EventClicked)
			} else {
				d.dispatchEvent(obj, EventReleased)
			}
		}
		if d.honorReset() {
			return
		}
		d.handleClickFocus(obj)
	}

	ps.actObj = nil
	d.state.prTimestamp = 0
	d.state.longPrSent = false
	d.state.longPrRepTimestamp = 0

	if ps.lastObj != nil && !d.state.resetQuery {
		d.endDrag()
	}
}

// handleClickFocus implements the click-to-focus behavior §4.5 defers to
// §4.6: a pointer click can move a shared focus ring's focus, unless the
// clicked widget opts out via ClickFocusProtected.
func (d *Device) handleClickFocus(obj Widget) {
	if d.group == nil || obj == nil || obj.ClickFocusProtected() {
		return
	}
	if !d.group.ClickFocusEnabled() {
		return
	}
	d.group.FocusWidget(obj)
}
