package indev

import "testing"

func newTestEncoderDevice(group FocusGroup, tick *fakeTick, cfg Config) *Device {
	d := newDevice(KindEncoder, nil, &fakeHAL{}, tick, cfg, nil)
	d.SetFocusGroup(group)
	return d
}

func TestEncoderRotateNavigatesWhenNotEditing(t *testing.T) {
	a := newFakeWidget("a", Rect{})
	b := newFakeWidget("b", Rect{})
	group := &fakeGroup{widgets: []Widget{a, b}, idx: 0}
	tick := &fakeTick{}
	d := newTestEncoderDevice(group, tick, DefaultConfig())

	d.ProcessEncoderSample(Released, 1)
	if group.Focused() != Widget(b) {
		t.Errorf("a forward step outside edit mode should move focus forward, got %v", group.Focused())
	}
}

func TestEncoderRotateEditsWhenEditing(t *testing.T) {
	w := newFakeWidget("field", Rect{})
	group := &fakeGroup{widgets: []Widget{w}, idx: 0, editing: true}
	tick := &fakeTick{}
	d := newTestEncoderDevice(group, tick, DefaultConfig())

	d.ProcessEncoderSample(Released, -2)
	if len(w.data) != 2 || w.data[0] != KeyLeft || w.data[1] != KeyLeft {
		t.Errorf("two backward steps in edit mode should send KeyLeft twice, got %v", w.data)
	}
}

func TestEncoderLongPressTogglesEditWhenMultiWidget(t *testing.T) {
	a := newFakeWidget("a", Rect{})
	a.editable = true
	b := newFakeWidget("b", Rect{})
	group := &fakeGroup{widgets: []Widget{a, b}, idx: 0}
	tick := &fakeTick{}
	cfg := DefaultConfig()
	d := newTestEncoderDevice(group, tick, cfg)

	d.ProcessEncoderSample(Pressed, 0)
	tick.now = uint32(cfg.LongPressMS) + 1
	d.ProcessEncoderSample(Pressed, 0)

	if !group.editing {
		t.Error("long-press on an editable widget in a multi-widget group should toggle edit mode")
	}
	if a.hasSignal(SignalLongPress) {
		t.Error("toggling edit mode should not also emit SignalLongPress")
	}
}

func TestEncoderLongPressSignalsWhenSingleton(t *testing.T) {
	a := newFakeWidget("a", Rect{})
	a.editable = true
	group := &fakeGroup{widgets: []Widget{a}, idx: 0}
	tick := &fakeTick{}
	cfg := DefaultConfig()
	d := newTestEncoderDevice(group, tick, cfg)

	d.ProcessEncoderSample(Pressed, 0)
	tick.now = uint32(cfg.LongPressMS) + 1
	d.ProcessEncoderSample(Pressed, 0)

	if !a.hasSignal(SignalLongPress) {
		t.Error("a singleton group can't usefully toggle edit mode, so long-press should fire directly")
	}
	if group.editing {
		t.Error("a singleton group should not enter edit mode from long-press")
	}
}

func TestEncoderReleaseSendsEnterWhenNotEditable(t *testing.T) {
	a := newFakeWidget("a", Rect{}) // editable defaults to false
	group := &fakeGroup{widgets: []Widget{a}, idx: 0}
	tick := &fakeTick{}
	d := newTestEncoderDevice(group, tick, DefaultConfig())

	d.ProcessEncoderSample(Pressed, 0)
	d.ProcessEncoderSample(Released, 0)

	if len(a.data) != 1 || a.data[0] != KeyEnter {
		t.Errorf("a non-editable focused widget should receive KeyEnter via SendData on release, got %v", a.data)
	}
	if a.hasSignal(SignalPressed) || a.hasSignal(SignalReleased) {
		t.Error("ENTER forwarding must go through SendData, not the signal callback")
	}
}

func TestEncoderReleaseEntersEditMode(t *testing.T) {
	a := newFakeWidget("a", Rect{})
	a.editable = true
	group := &fakeGroup{widgets: []Widget{a}, idx: 0}
	tick := &fakeTick{}
	d := newTestEncoderDevice(group, tick, DefaultConfig())

	d.ProcessEncoderSample(Pressed, 0)
	d.ProcessEncoderSample(Released, 0)

	if !group.editing {
		t.Error("a short press on an editable, not-yet-editing widget should enter edit mode")
	}
	if len(a.data) != 0 {
		t.Errorf("entering edit mode should not send ENTER, got data %v", a.data)
	}
}

func TestEncoderNoGroupNoOps(t *testing.T) {
	tick := &fakeTick{}
	d := newDevice(KindEncoder, nil, &fakeHAL{}, tick, DefaultConfig(), nil)
	d.ProcessEncoderSample(Pressed, 1)
	d.ProcessEncoderSample(Released, 1)
}
