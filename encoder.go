package indev

// ProcessEncoderSample runs the encoder state machine (C7) for one
// sample. It no-ops silently under the same conditions as the keypad
// machine (§7): no focus group attached, or Config.UseGroup false.
func (d *Device) ProcessEncoderSample(state PressState, encDiff int) {
	if d.group == nil || !d.cfg.UseGroup {
		return
	}
	ks := &d.state.key
	last := ks.lastState

	if state == Released && encDiff != 0 {
		d.applyEncoderSteps(encDiff)
	}

	focused := d.group.Focused()
	var editable bool
	if focused != nil {
		editable = focused.Signal(SignalGetEditable, d)
	}

	switch {
	case last == Released && state == Pressed: // REL→PR: start timer
		d.state.prTimestamp = d.tick.Now()

	case last == Pressed && state == Pressed: // PR→PR: long-press / edit toggle
		if !d.state.longPrSent {
			if elapsed(d.state.prTimestamp, d.tick.Now()) > uint32(d.cfg.LongPressMS) {
				singleton := d.group.Size() < 2
				switch {
				case editable && !singleton:
					d.group.SetEditing(!d.group.Editing())
				case focused != nil:
					focused.Signal(SignalLongPress, d)
				}
				d.state.longPrSent = true
				d.honorReset()
			}
		}

	case last == Pressed && state == Released: // PR→REL
		editing := d.group.Editing()
		singleton := d.group.Size() < 2
		switch {
		case !editable:
			d.sendEncoderEnter(focused)
		case editing && (!d.state.longPrSent || singleton):
			d.sendEncoderEnter(focused)
		case !editing && !d.state.longPrSent:
			d.group.SetEditing(true)
		}
	}

	if state == Released {
		d.honorReset()
		d.state.prTimestamp = 0
		d.state.longPrSent = false
	}
	ks.lastState = state
}

// applyEncoderSteps applies |encDiff| discrete rotation steps: value
// edits in edit mode, focus navigation otherwise (§4.7).
func (d *Device) applyEncoderSteps(encDiff int) {
	steps := encDiff
	forward := steps > 0
	if !forward {
		steps = -steps
	}
	editing := d.group.Editing()
	for i := 0; i < steps; i++ {
		switch {
		case editing && forward:
			d.group.SendData(KeyRight)
		case editing && !forward:
			d.group.SendData(KeyLeft)
		case forward:
			d.group.FocusNext()
		default:
			d.group.FocusPrev()
		}
	}
}

// sendEncoderEnter forwards KeyEnter through the focus group exactly like
// the keypad's "other key" edge (§4.6, keypad.go's default case), the
// encoder's substitute for a keypad's literal ENTER key (§4.7 "send
// ENTER"). It never touches the focused widget's signal callback
// directly — SendData is the one forwarding mechanism both device
// families use to hand a key to the focused widget.
func (d *Device) sendEncoderEnter(focused Widget) {
	if focused == nil {
		return
	}
	d.group.SendData(KeyEnter)
}
