// Package indev is the input-device processing core of an embedded
// graphical widget toolkit. It turns raw per-device samples — touch/mouse
// pointers, keypads, rotary encoders, and matrix-button arrays — into a
// stream of semantic widget events: press, release, click, long-press,
// long-press-repeat, press-lost, drag-begin, drag-end, and focus.
//
// indev does not render, lay out widgets, or multiplex multi-touch; it
// consumes a scene of [Widget] values through an interface and drives
// them from samples supplied by a [HAL] implementation.
//
// # Quick start
//
//	reg := indev.NewRegistry(indev.DefaultConfig(), tickSource, nil)
//	dev := reg.AddDevice(indev.KindPointer, display, mouseHAL)
//	// configure dev (cursor, focus group, feedback) before the first Tick.
//	// once per scheduler period:
//	reg.Tick(ctx)
//
// # Device families
//
// [KindPointer] and [KindButtonArray] share the press/release/hold state
// machine in pointer.go. [KindKeypad] and [KindEncoder] share the
// edge-triggered navigation machine split across keypad.go and encoder.go.
// All four consult the hit-tester (hit.go) or a [FocusGroup] to find their
// target, and all four read elapsed time through tick.go to derive
// long-press and long-press-repeat.
//
// # Re-entrancy
//
// Widget callbacks run synchronously and may destroy the very widget that
// received the callback. The core never holds a widget reference across a
// callback without re-checking the device's reset latch immediately
// afterward; see the reset-query protocol documented on
// [Device.RequestReset].
package indev
