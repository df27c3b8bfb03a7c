package indev

// DeviceKind selects which state machine (C5–C8) processes a device's
// samples, and which sub-struct of procState is live for it.
type DeviceKind uint8

const (
	KindPointer     DeviceKind = iota // mouse/touch pointer; see pointer.go
	KindKeypad                        // matrix keypad; see keypad.go
	KindEncoder                       // rotary encoder; see encoder.go
	KindButtonArray                   // discrete button array; see buttonarray.go
)

// String returns a short human-readable name, used by trace logging.
func (k DeviceKind) String() string {
	switch k {
	case KindPointer:
		return "pointer"
	case KindKeypad:
		return "keypad"
	case KindEncoder:
		return "encoder"
	case KindButtonArray:
		return "button-array"
	default:
		return "unknown"
	}
}

// Signal identifies a widget-lifecycle notification delivered through
// [Widget.Signal]. Signals are the core's way of telling a widget "this
// happened to you"; they carry no click-vs-drag classification — that
// distinction is carried by [Event] instead.
type Signal uint8

const (
	SignalPressed        Signal = iota // the widget was just pressed
	SignalPressing                     // the widget is being held down
	SignalReleased                     // the widget was released
	SignalPressLost                    // the widget was act_obj but no longer is
	SignalLongPress                    // held past the long-press threshold
	SignalLongPressRepeat              // long-press threshold re-armed and fired again
	SignalDragBegin                    // a drag gesture started on this widget
	SignalDragEnd                      // a drag (or throw) gesture ended
	SignalGetEditable                  // query: can this widget's value be edited (encoder)
)

// Event identifies a terminal, application-facing notification delivered
// through [Widget.SendEvent]. Unlike [Signal], an Event is something an
// application-level listener subscribes to without caring about the
// gesture machinery that produced it.
type Event uint8

const (
	EventPressed       Event = iota // mirrors SignalPressed for event listeners
	EventPressing                   // mirrors SignalPressing for event listeners
	EventReleased                   // mirrors SignalReleased for event listeners
	EventClicked                    // a full press+release with no long-press and no drag
	EventLongPressed                // mirrors SignalLongPress for event listeners
	EventLongPressedRep             // mirrors SignalLongPressRepeat for event listeners
	EventPressLost                  // mirrors SignalPressLost for event listeners
)
