package indev

// pointerState is the pointer-family half of a device's processing state,
// live for KindPointer and KindButtonArray devices (§3 "Pointer-family
// state").
type pointerState struct {
	actPoint  Vec2 // current sample coordinate
	lastPoint Vec2 // previous sample coordinate

	actObj  Widget // the widget currently considered pressed, or nil
	lastObj Widget // the widget most recently pressed; survives release to drive throw

	vect Vec2 // delta actPoint-lastPoint from the most recent press step

	dragSum       Vec2 // cumulative motion since press, cleared on each new press
	dragThrowVect Vec2 // low-pass velocity estimate, the initial throw vector

	dragLimitOut bool // has cumulative motion crossed the drag dead zone?
	dragInProg   bool // is a drag currently moving the target?
	throwing     bool // drag_in_prog is true because throw.go is decaying it, not live samples

	waitUntilRelease bool // ignore all samples until the next release edge
}

// keyState is the key-family half of a device's processing state, live
// for KindKeypad and KindEncoder devices (§3 "Key-family state").
type keyState struct {
	lastState PressState // PRESSED or RELEASED at the previous sample
	lastKey   Key        // last key code seen (keypad only)
}

// procState is the per-device processing state (§3). Both sub-structs
// exist on every device; only the one matching Device.kind is ever
// written. Go has no tagged-union/sum type, so this "struct of optional
// parts" is the nearest idiomatic mapping; a heavier sum-type emulation
// (e.g. an interface per variant) is not used for four fixed,
// known-at-compile-time kinds.
type procState struct {
	pointer pointerState
	key     keyState

	prTimestamp        uint32 // time of the most recent press edge
	longPrRepTimestamp uint32 // time of the last long-press-repeat emission
	longPrSent         bool   // long-press already emitted for this press
	resetQuery         bool   // a callback asked us to drop all references
}

// Device is one registered physical input, persisting from registration
// until shutdown. Its processing state is mutated only inside its own
// drain, while the registry's active-device handle points at it.
type Device struct {
	kind    DeviceKind
	enabled bool

	display Display
	hal     HAL
	tick    TickSource
	cfg     Config
	log     Logger

	state procState

	lastActivity uint32

	cursor       Widget          // pointer customization
	group        FocusGroup      // keypad/encoder customization
	buttonPoints map[int]Vec2    // button-array customization
	feedback     func(Event)     // optional feedback hook, fired alongside every SendEvent
}

func newDevice(kind DeviceKind, display Display, hal HAL, tick TickSource, cfg Config, log Logger) *Device {
	if log == nil {
		log = noopLogger{}
	}
	return &Device{
		kind:    kind,
		enabled: true,
		display: display,
		hal:     hal,
		tick:    tick,
		cfg:     cfg,
		log:     log,
	}
}

// Kind reports which state machine processes this device's samples
// ("get-device-type").
func (d *Device) Kind() DeviceKind { return d.kind }

// Enabled reports whether the registry currently drains this device.
func (d *Device) Enabled() bool { return d.enabled }

// SetEnabled enables or disables this device. A disabled device is
// skipped entirely by Registry.Tick.
func (d *Device) SetEnabled(enabled bool) { d.enabled = enabled }

// LastPoint returns the most recent sample coordinate ("get-last-point").
// Meaningful for KindPointer and KindButtonArray devices only.
func (d *Device) LastPoint() Vec2 { return d.state.pointer.lastPoint }

// LastKey returns the last key code seen ("get-last-key"). Meaningful for
// KindKeypad devices only.
func (d *Device) LastKey() Key { return d.state.key.lastKey }

// IsDragging reports whether a drag is currently in progress
// ("is-dragging").
func (d *Device) IsDragging() bool { return d.state.pointer.dragInProg }

// DragVector returns the current low-pass velocity estimate
// ("get-drag-vector"), which is also the vector handed to the throw
// engine on release.
func (d *Device) DragVector() Vec2 { return d.state.pointer.dragThrowVect }

// InactiveTime reports the elapsed time since the last PR sample
// ("get-inactive-time"). Per the resolved Open Question in SPEC_FULL.md
// §9, this does not saturate at 16 bits; it is a plain elapsed() value.
func (d *Device) InactiveTime() uint32 {
	return elapsed(d.lastActivity, d.tick.Now())
}

// WaitUntilRelease puts the device into the "ignore all samples until the
// next release edge" state (§3 invariant 4), as a host-invoked command
// rather than a state the core entered on its own.
func (d *Device) WaitUntilRelease() { d.state.pointer.waitUntilRelease = true }

// Feedback returns the currently configured feedback hook
// ("get-feedback").
func (d *Device) Feedback() func(Event) { return d.feedback }

// SetFeedback installs a feedback hook, invoked alongside every
// SendEvent dispatch this device makes.
func (d *Device) SetFeedback(fn func(Event)) { d.feedback = fn }

// SetCursor configures a cursor widget to track a pointer device's
// act_point (§4.5 pre-step). No-ops on non-pointer devices (§7
// "unconfigured device ... operation no-ops silently").
func (d *Device) SetCursor(w Widget) {
	if d.kind != KindPointer {
		return
	}
	d.cursor = w
}

// SetFocusGroup attaches the focus ring a keypad or encoder device
// navigates. A pointer device may also carry a group purely so its
// clicks can drive click-to-focus (§4.5/§4.6); it never navigates the
// ring itself. No-ops on button-array devices.
func (d *Device) SetFocusGroup(g FocusGroup) {
	if d.kind == KindButtonArray {
		return
	}
	d.group = g
}

// SetButtonPoints configures the button-id → coordinate table a
// button-array device resolves samples through. No-ops on any other kind.
func (d *Device) SetButtonPoints(table map[int]Vec2) {
	if d.kind != KindButtonArray {
		return
	}
	d.buttonPoints = table
}

// RequestReset is how a widget callback tells the core "my world changed
// under you" (§5 "Cancellation"). Callbacks receive the active *Device as
// a parameter specifically so they can call this instead of reaching for
// a global. The request is honored — processing state fully wiped — at
// the next opportunity the core checks (after the callback returns, and
// again after every HAL read).
func (d *Device) RequestReset() { d.state.resetQuery = true }

// Reset immediately performs the same full state wipe RequestReset
// eventually causes, without waiting for the next check point. Calling
// it twice in a row is equivalent to calling it once (R1).
func (d *Device) Reset() { d.wipe() }

// ResetLongPress clears the long-press-sent flag and restarts the
// press timer, without otherwise disturbing the current press
// ("reset-long-press").
func (d *Device) ResetLongPress() {
	d.state.longPrSent = false
	d.state.prTimestamp = d.tick.Now()
}

// honorReset wipes state and reports true if a callback requested a
// reset since the last check; otherwise it reports false and does
// nothing. Call sites check this after every callback dispatch and after
// every HAL read (§4.9, §5).
func (d *Device) honorReset() bool {
	if !d.state.resetQuery {
		return false
	}
	d.wipe()
	return true
}

// wipe drops all per-device gesture references and zeroes all timers
// (§3 invariant 5), leaving device customization (cursor, group, button
// points, feedback) untouched.
func (d *Device) wipe() {
	d.state = procState{}
}

// dispatchEvent sends ev to w and, if configured, invokes the feedback
// hook alongside it.
func (d *Device) dispatchEvent(w Widget, ev Event) {
	if w != nil {
		w.SendEvent(ev)
	}
	if d.feedback != nil {
		d.feedback(ev)
	}
}
