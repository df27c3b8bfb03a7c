package indev

// ProcessKeypadSample runs the keypad state machine (C6) for one sample.
// It no-ops silently when the device has no focus group attached, or when
// Config.UseGroup disables the whole C6/C7 family (§7 "unconfigured
// device ... operation no-ops silently").
func (d *Device) ProcessKeypadSample(state PressState, key Key) {
	if d.group == nil || !d.cfg.UseGroup {
		return
	}
	ks := &d.state.key
	last := ks.lastState

	// PR→REL restores a key the HAL cleared on the release edge, using
	// the last key actually seen while pressed (§6 "The HAL may clear
	// transient fields ... on the release edge").
	effKey := key
	if last == Pressed && state == Released && effKey == KeyNone {
		effKey = ks.lastKey
	}

	focused := d.group.Focused()

	switch {
	case last == Released && state == Pressed: // REL→PR
		d.state.prTimestamp = d.tick.Now()
		if effKey == KeyEnter && focused != nil {
			focused.Signal(SignalPressed, d)
			d.dispatchEvent(focused, EventPressed)
			d.honorReset()
		}

	case last == Pressed && state == Pressed: // PR→PR
		if effKey == KeyEnter && !d.state.longPrSent {
			if elapsed(d.state.prTimestamp, d.tick.Now()) > uint32(d.cfg.LongPressMS) {
				if focused != nil {
					focused.Signal(SignalLongPress, d)
				}
				d.state.longPrSent = true
				d.honorReset()
			}
		}

	case last == Pressed && state == Released: // PR→REL
		switch effKey {
		case KeyNext, KeyPrev:
			d.group.SetEditing(false)
			if effKey == KeyNext {
				d.group.FocusNext()
			} else {
				d.group.FocusPrev()
			}
		case KeyEnter:
			if focused != nil {
				focused.Signal(SignalReleased, d)
				d.dispatchEvent(focused, EventReleased)
				if !d.state.longPrSent {
					d.dispatchEvent(focused, EventClicked)
				}
			}
		default:
			d.group.SendData(effKey)
		}
	}

	if state == Released {
		d.honorReset()
		d.state.prTimestamp = 0
		d.state.longPrSent = false
	}

	ks.lastState = state
	ks.lastKey = effKey
}
