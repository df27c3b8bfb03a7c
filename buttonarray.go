package indev

// ProcessButtonArraySample runs the button-array adapter (C8) for one
// sample: it resolves btnID to a synthetic pointer coordinate and
// delegates to the pointer state machine (C5). Unknown button ids no-op
// silently (§7 "unconfigured device").
//
// Per §4.8 and invariant I6, any sample whose resolved point differs from
// last_point forces a release-path call first — pressing a different
// button must always release whatever point was previously held — even
// though the sample itself reports a press.
func (d *Device) ProcessButtonArraySample(btnID int, state PressState) {
	point, ok := d.buttonPoints[btnID]
	if !ok {
		return
	}

	changed := point != d.state.pointer.lastPoint

	if state == Pressed {
		if changed {
			d.ProcessPointerSample(point, false)
		}
		d.ProcessPointerSample(point, true)
		return
	}
	d.ProcessPointerSample(point, false)
}
