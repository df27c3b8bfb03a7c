package indev

import "context"

// fakeWidget is a minimal Widget implementation for exercising the state
// machines without a real scene graph, in the spirit of the teacher's
// Node (a plain struct with flags and a parent/children slice).
type fakeWidget struct {
	name string

	bounds               Rect
	clickable            bool
	hidden               bool
	draggable            bool
	dragThrowEnabled     bool
	dragParent           bool
	top                  bool
	clickFocusProtected  bool
	pressLostProtected   bool
	editable             bool

	parent   Widget
	children []Widget

	x, y float64

	reordered  int
	invalidated int
	popped      int

	signals []Signal
	events  []Event
	data    []Key
}

func newFakeWidget(name string, bounds Rect) *fakeWidget {
	return &fakeWidget{name: name, bounds: bounds, clickable: true}
}

func (w *fakeWidget) Bounds() Rect                 { return w.bounds }
func (w *fakeWidget) Clickable() bool              { return w.clickable }
func (w *fakeWidget) Hidden() bool                 { return w.hidden }
func (w *fakeWidget) Draggable() bool              { return w.draggable }
func (w *fakeWidget) DragThrowEnabled() bool       { return w.dragThrowEnabled }
func (w *fakeWidget) DragParent() bool             { return w.dragParent }
func (w *fakeWidget) Top() bool                    { return w.top }
func (w *fakeWidget) ClickFocusProtected() bool    { return w.clickFocusProtected }
func (w *fakeWidget) PressLostProtected() bool     { return w.pressLostProtected }
func (w *fakeWidget) Parent() Widget               { return w.parent }
func (w *fakeWidget) Children() []Widget           { return w.children }
func (w *fakeWidget) Position() (float64, float64) { return w.x, w.y }

func (w *fakeWidget) SetPosition(x, y float64) {
	w.x, w.y = x, y
}

func (w *fakeWidget) Signal(sig Signal, _ *Device) bool {
	w.signals = append(w.signals, sig)
	if sig == SignalGetEditable {
		return w.editable
	}
	return false
}

func (w *fakeWidget) SendEvent(ev Event) { w.events = append(w.events, ev) }
func (w *fakeWidget) SendData(key Key)   { w.data = append(w.data, key) }

func (w *fakeWidget) BringToFront()   { w.reordered++ }
func (w *fakeWidget) Invalidate()     { w.invalidated++ }
func (w *fakeWidget) PopInvalidation() { w.popped++ }

func (w *fakeWidget) lastSignal() Signal {
	if len(w.signals) == 0 {
		return 0xFF
	}
	return w.signals[len(w.signals)-1]
}

func (w *fakeWidget) hasSignal(sig Signal) bool {
	for _, s := range w.signals {
		if s == sig {
			return true
		}
	}
	return false
}

func (w *fakeWidget) hasEvent(ev Event) bool {
	for _, e := range w.events {
		if e == ev {
			return true
		}
	}
	return false
}

// fakeDisplay is a Display backed by three directly settable layers.
type fakeDisplay struct {
	system, top, screen Widget
}

func (d *fakeDisplay) SystemLayer() Widget   { return d.system }
func (d *fakeDisplay) TopLayer() Widget      { return d.top }
func (d *fakeDisplay) ActiveScreen() Widget  { return d.screen }

// fakeHAL replays a fixed queue of samples: Read pops the front of the
// queue each call and reports more as long as the queue isn't empty yet.
type fakeHAL struct {
	queue []Sample
}

func (h *fakeHAL) push(s Sample) { h.queue = append(h.queue, s) }

func (h *fakeHAL) Read(_ context.Context, _ *Device) (Sample, bool) {
	if len(h.queue) == 0 {
		return Sample{}, false
	}
	s := h.queue[0]
	h.queue = h.queue[1:]
	return s, len(h.queue) > 0
}

// fakeTick is a directly settable TickSource.
type fakeTick struct {
	now uint32
}

func (t *fakeTick) Now() uint32 { return t.now }

// fakeGroup is a FocusGroup backed by a plain slice, independent of
// FocusRing so keypad/encoder tests aren't coupled to its implementation.
type fakeGroup struct {
	widgets  []Widget
	idx      int
	editing  bool
	clickFoc bool
}

func (g *fakeGroup) Focused() Widget {
	if g.idx < 0 || g.idx >= len(g.widgets) {
		return nil
	}
	return g.widgets[g.idx]
}
func (g *fakeGroup) FocusNext() {
	if len(g.widgets) > 0 {
		g.idx = (g.idx + 1) % len(g.widgets)
	}
}
func (g *fakeGroup) FocusPrev() {
	if len(g.widgets) > 0 {
		g.idx = (g.idx - 1 + len(g.widgets)) % len(g.widgets)
	}
}
func (g *fakeGroup) FocusWidget(w Widget) {
	for i, cand := range g.widgets {
		if cand == w {
			g.idx = i
			return
		}
	}
}
func (g *fakeGroup) Editing() bool             { return g.editing }
func (g *fakeGroup) SetEditing(e bool)         { g.editing = e }
func (g *fakeGroup) ClickFocusEnabled() bool   { return g.clickFoc }
func (g *fakeGroup) Size() int                 { return len(g.widgets) }
func (g *fakeGroup) SendData(key Key) {
	if w := g.Focused(); w != nil {
		w.SendData(key)
	}
}
