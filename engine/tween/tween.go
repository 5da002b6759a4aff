// Package tween provides small time-based interpolation helpers for
// animating positions and colors.
package tween

// Curve shapes a tween's output. It maps linear progress in [0, 1] to eased
// progress in [0, 1].
type Curve func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// Smooth is the classic smoothstep curve, easing in and out.
func Smooth(t float64) float64 { return t * t * (3 - 2*t) }

// Tween tracks progress through a fixed duration. It can advance and rewind
// freely, clamping at both ends, which makes it suitable for hover effects
// that reverse when the cursor leaves.
type Tween struct {
	duration float64
	curve    Curve
	t        float64
}

// New creates a tween over the given duration in seconds. A nil curve means
// Linear. New panics when duration is not positive.
func New(duration float64, curve Curve) *Tween {
	if duration <= 0 {
		panic("tween duration must be positive")
	}
	if curve == nil {
		curve = Linear
	}
	return &Tween{duration: duration, curve: curve}
}

// Advance moves the tween forward by dt seconds, clamping at the end.
func (tw *Tween) Advance(dt float64) {
	tw.t += dt
	if tw.t > tw.duration {
		tw.t = tw.duration
	}
}

// Rewind moves the tween backward by dt seconds, clamping at the start.
func (tw *Tween) Rewind(dt float64) {
	tw.t -= dt
	if tw.t < 0 {
		tw.t = 0
	}
}

// Play advances when forward is true and rewinds otherwise.
func (tw *Tween) Play(dt float64, forward bool) {
	if forward {
		tw.Advance(dt)
	} else {
		tw.Rewind(dt)
	}
}

// Value returns the eased progress in [0, 1].
func (tw *Tween) Value() float64 {
	return tw.curve(tw.t / tw.duration)
}

// Progress returns the raw, uneased progress in [0, 1].
func (tw *Tween) Progress() float64 {
	return tw.t / tw.duration
}

// Done reports whether the tween has reached its end.
func (tw *Tween) Done() bool {
	return tw.t >= tw.duration
}

// Reset rewinds the tween to the start.
func (tw *Tween) Reset() {
	tw.t = 0
}

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
