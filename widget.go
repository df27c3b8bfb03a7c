package indev

// Widget is the scene-graph contract the core consumes. indev never
// renders or lays out widgets; it only hit-tests their bounds, walks
// their parent chain, repositions draggable ones, and delivers signals
// and events to them. A host toolkit's real widget type implements this
// interface directly.
type Widget interface {
	// Bounds returns the widget's axis-aligned bounds in the same
	// coordinate space samples arrive in.
	Bounds() Rect

	// Clickable reports whether this widget may become act_obj at all.
	Clickable() bool
	// Hidden reports this widget's own hidden flag. The hit-tester applies
	// inheritance itself by never descending into a hidden widget's
	// children (an ancestor's Hidden() hides the whole subtree from hit
	// testing), so implementations need not do so themselves.
	Hidden() bool

	// Draggable reports whether this widget (as the effective drag
	// target, see DragParent) can be moved by the drag engine.
	Draggable() bool
	// DragThrowEnabled reports whether a release should hand this widget
	// to the throw engine for inertial continuation.
	DragThrowEnabled() bool
	// DragParent reports whether drag motion on this widget should be
	// redirected to Parent() instead (walked repeatedly to find the
	// effective drag target, see §4.3).
	DragParent() bool

	// Top reports whether this widget should be raised to the front of
	// its parent's child list on press (the "top" attribute, §4.5 step 3).
	Top() bool

	// ClickFocusProtected reports whether a click on this widget should
	// be excluded from the focus group's click-to-focus behavior.
	ClickFocusProtected() bool
	// PressLostProtected reports whether, on release, the core must
	// re-hit-test this widget specifically before emitting released or
	// clicked (§4.5 release path "Special case").
	PressLostProtected() bool

	// Parent returns the enclosing widget, or nil at the scene root.
	Parent() Widget
	// Children returns this widget's children in scene (paint) order.
	// The hit-tester searches them in this order and the first
	// qualifying descendant wins.
	Children() []Widget

	// Position returns the widget's current top-left coordinate.
	Position() (x, y float64)
	// SetPosition moves the widget. Implementations that also render
	// should treat this as the single point of truth the core uses to
	// drive drag and throw.
	SetPosition(x, y float64)

	// Signal delivers a lifecycle notification. dev is the device whose
	// drain produced it (the replacement for the source's process-wide
	// "active device" global, see Design Notes). For SignalGetEditable
	// the return value is the query's answer; it is ignored for every
	// other signal.
	Signal(sig Signal, dev *Device) bool
	// SendEvent delivers an application-facing event.
	SendEvent(ev Event)
	// SendData delivers a non-navigation key as application data, the
	// keypad/encoder "other" edge's payload (§4.6's send_data(group,key)).
	SendData(key Key)
}

// Reorderable is an optional capability a Widget may implement to support
// the "top" attribute (§4.5): BringToFront moves the receiver to the front
// of its parent's child list, where the hit-tester, which takes the first
// qualifying child, reaches it before its siblings. Widgets that never need top-on-press need not implement it.
type Reorderable interface {
	BringToFront()
}

// Invalidator is an optional capability a Widget may implement to talk to
// a render/invalidation engine: Invalidate marks the widget dirty (used
// when it is raised to the front of its parent's child list, §4.5 step
// 3), and PopInvalidation drops a speculative invalidation a drag sample
// caused when it turned out not to move anything (§4.3's "optimization
// contract with the renderer"). Widgets with no renderer behind them can
// leave both as no-ops or skip the interface entirely.
type Invalidator interface {
	Invalidate()
	PopInvalidation()
}

// Display supplies the three search roots the hit-tester walks, in the
// order §4.2 specifies: system layer, top layer, active screen.
type Display interface {
	SystemLayer() Widget
	TopLayer() Widget
	ActiveScreen() Widget
}

// FocusGroup is the focus-ring contract keypad and encoder devices
// navigate. A nil *Device.group disables C6/C7 entirely for that device,
// matching the USE_GROUP configuration switch.
type FocusGroup interface {
	// Focused returns the currently focused widget, or nil.
	Focused() Widget
	// FocusNext advances focus to the next widget in the ring.
	FocusNext()
	// FocusPrev moves focus to the previous widget in the ring.
	FocusPrev()
	// FocusWidget focuses a specific widget directly.
	FocusWidget(w Widget)

	// Editing reports whether the group is in edit mode (directional
	// input modifies the focused widget's value) as opposed to navigate
	// mode (directional input moves focus).
	Editing() bool
	// SetEditing toggles edit mode.
	SetEditing(editing bool)

	// ClickFocusEnabled reports whether a pointer click should also move
	// focus to the clicked widget.
	ClickFocusEnabled() bool
	// Size reports how many widgets are in the ring. Encoders consult
	// this to decide whether a long-press should toggle edit mode or
	// simply emit long-press (a singleton group can't usefully "navigate").
	Size() int

	// SendData forwards a non-navigation key to the focused widget as
	// application data (keypad "other" edge, §4.6).
	SendData(key Key)
}
