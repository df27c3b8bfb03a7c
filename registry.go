package indev

import "context"

// Registry owns every registered device and drives their drains (C9).
// It is the only piece of indev that is not safe to touch concurrently
// with Tick — the whole core assumes a single-threaded scheduler loop
// (§5), the same model the teacher's Scene.Update follows for its own
// per-frame input pass.
type Registry struct {
	cfg  Config
	tick TickSource
	log  Logger

	devices []*Device
	active  *Device
}

// NewRegistry creates an empty registry. tick supplies the free-running
// counter every device's timers are measured against; log may be nil.
func NewRegistry(cfg Config, tick TickSource, log Logger) *Registry {
	if log == nil {
		log = noopLogger{}
	}
	return &Registry{cfg: cfg, tick: tick, log: log}
}

// AddDevice registers a new device of the given kind and returns it so
// the caller can finish configuring it (cursor, focus group, button
// table, feedback hook) before the first Tick.
func (r *Registry) AddDevice(kind DeviceKind, display Display, hal HAL) *Device {
	d := newDevice(kind, display, hal, r.tick, r.cfg, r.log)
	r.devices = append(r.devices, d)
	return d
}

// ActiveDevice returns the device currently being drained, or nil outside
// of Tick. Widget.Signal callbacks are also handed this same *Device
// directly as a parameter (Design Notes §9); Widget.SendEvent is not, so
// event listeners and code that only has ambient context, such as a
// FocusGroup implementation, read it through ActiveDevice.
func (r *Registry) ActiveDevice() *Device { return r.active }

// ResetAll requests a reset on every registered device (§5 "Cancellation"
// at registry scope, e.g. on scene teardown).
func (r *Registry) ResetAll() {
	for _, d := range r.devices {
		d.RequestReset()
	}
}

// EnableByType enables or disables every device of the given kind.
func (r *Registry) EnableByType(kind DeviceKind, enabled bool) {
	for _, d := range r.devices {
		if d.kind == kind {
			d.SetEnabled(enabled)
		}
	}
}

// Tick drains every enabled device once (§4.9). For each device it reads
// samples from the HAL until none remain, dispatching each to the state
// machine matching the device's kind, and re-checks the reset latch after
// every dispatch and after every HAL read so a mid-drain RequestReset
// takes effect immediately instead of at the next Tick.
func (r *Registry) Tick(ctx context.Context) {
	for _, d := range r.devices {
		if !d.enabled {
			continue
		}
		r.active = d
		d.honorReset()
		r.drain(ctx, d)
		r.stepThrowIfPointerFamily(d)
	}
	r.active = nil
}

func (r *Registry) drain(ctx context.Context, d *Device) {
	r.log.Tracef("indev: drain start kind=%s", d.kind)
	defer r.log.Tracef("indev: drain end kind=%s", d.kind)
	for {
		sample, more := d.hal.Read(ctx, d)
		r.log.Tracef("indev: device kind=%s sample=%+v more=%v", d.kind, sample, more)

		if d.honorReset() {
			return
		}

		if sample.State == Pressed {
			d.lastActivity = d.tick.Now()
		}

		switch d.kind {
		case KindPointer:
			d.ProcessPointerSample(sample.Point, sample.State == Pressed)
		case KindButtonArray:
			d.ProcessButtonArraySample(sample.ButtonID, sample.State)
		case KindKeypad:
			d.ProcessKeypadSample(sample.State, sample.Key)
		case KindEncoder:
			d.ProcessEncoderSample(sample.State, sample.EncDiff)
		}

		if d.honorReset() || !more {
			return
		}
	}
}

func (r *Registry) stepThrowIfPointerFamily(d *Device) {
	if d.kind == KindPointer || d.kind == KindButtonArray {
		d.stepThrow()
	}
}
