package indev

import "context"

// Sample is one raw reading from a physical device. Only the fields
// relevant to the device's Kind are populated; the rest are left zero.
type Sample struct {
	// State is the physical press/release level, read directly by the
	// registry for every device kind (§6: "populates state, and one of
	// point/key/...").
	State PressState

	// Point is the sample coordinate (pointer devices).
	Point Vec2
	// Key is the key code (keypad devices). The HAL may clear this on
	// the release edge; the keypad state machine compensates using the
	// previously seen key (§6).
	Key Key
	// EncDiff is the signed step count since the last sample (encoder
	// devices).
	EncDiff int
	// ButtonID identifies which button produced this sample
	// (button-array devices).
	ButtonID int
}

// HAL is the hardware-read contract the core polls once per device per
// drain iteration. A read must be non-blocking: it inspects whatever
// state the physical device last reported and returns immediately,
// reporting via more whether another sample is already queued.
type HAL interface {
	// Read populates and returns the next sample for dev, and reports
	// whether additional samples are available without blocking.
	Read(ctx context.Context, dev *Device) (sample Sample, more bool)
}

// Logger is the trace-logging capability the registry drain uses for its
// diagnostics: one line at drain start and end, and one per HAL read. The
// state machines do not log. A nil Logger is treated as noopLogger.
type Logger interface {
	Tracef(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Tracef(string, ...any) {}
