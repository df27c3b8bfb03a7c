package indev

// Vec2 is a 2D vector used for points, deltas, and velocities throughout
// the core. The coordinate system has its origin at the top-left, with Y
// increasing downward, matching the space widget bounds are expressed in.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns the component-wise difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v with both components multiplied by f.
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Rect is an axis-aligned rectangle in the same space as Vec2. The
// hit-tester and drag engine only ever need AABB containment, so indev
// carries no affine transform stack the way a rendering engine would.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Key identifies a logical key code delivered by a keypad or forwarded as
// navigation data to a focus group. The concrete values are defined by the
// host application; indev only special-cases the five keys below.
type Key int

const (
	// KeyNone is the zero value, meaning "no key" / "cleared".
	KeyNone Key = iota
	// KeyEnter activates the focused widget (keypad) or triggers ENTER
	// semantics on an encoder's focused widget.
	KeyEnter
	// KeyNext moves focus to the next widget in the focus ring.
	KeyNext
	// KeyPrev moves focus to the previous widget in the focus ring.
	KeyPrev
	// KeyLeft decreases an edited value (encoder edit mode).
	KeyLeft
	// KeyRight increases an edited value (encoder edit mode).
	KeyRight
)

// PressState is the physical press/release level of a sample
// (Sample.State), shared by every device kind.
type PressState uint8

const (
	// Released is the rest level: no key or button is held.
	Released PressState = iota
	// Pressed is the active level: a key or button is held down.
	Pressed
)
