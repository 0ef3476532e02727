package chartcore

import "math"

const (
	// DefaultFriction is the velocity retained per deceleration tick.
	DefaultFriction = 0.9
	maxFriction     = 0.999

	// Deceleration stops once both velocity components drop below this.
	velocityStopThreshold = 0.001

	// sampleWindow is how far back velocity samples are kept, in seconds.
	sampleWindow = 1.0
)

// Decelerator continues a pan or rotation after the finger lifts. Each tick
// multiplies the velocity by the friction coefficient and yields the
// displacement for that tick. It is cancelled by calling Stop or simply by
// no longer ticking it.
type Decelerator struct {
	friction float64
	velocity Vec2
	active   bool
}

// NewDecelerator creates a decelerator with the given friction.
func NewDecelerator(friction float64) *Decelerator {
	d := &Decelerator{}
	d.SetFriction(friction)
	return d
}

// SetFriction sets the friction coefficient, clamped into [0, 0.999].
// 0 stops immediately; values at or above 1 would never stop.
func (d *Decelerator) SetFriction(c float64) {
	if math.IsNaN(c) {
		c = DefaultFriction
	}
	d.friction = clamp(c, 0, maxFriction)
}

func (d *Decelerator) Friction() float64 { return d.friction }
func (d *Decelerator) Velocity() Vec2    { return d.velocity }
func (d *Decelerator) Active() bool      { return d.active }

// Start begins decelerating from v.
func (d *Decelerator) Start(v Vec2) {
	d.velocity = v
	d.active = !belowThreshold(v)
}

// Stop cancels deceleration.
func (d *Decelerator) Stop() {
	d.velocity = Vec2{}
	d.active = false
}

// Tick advances by dt and returns the displacement to apply. The second
// result is false once the decelerator has stopped.
func (d *Decelerator) Tick(dt float64) (Vec2, bool) {
	if !d.active {
		return Vec2{}, false
	}
	d.velocity.X *= d.friction
	d.velocity.Y *= d.friction
	dist := Vec2{d.velocity.X * dt, d.velocity.Y * dt}
	if belowThreshold(d.velocity) {
		d.Stop()
	}
	return dist, true
}

// Reject zeroes the velocity after the displacement of the last tick was
// refused at a boundary. There is no bounce.
func (d *Decelerator) Reject() {
	d.Stop()
}

func belowThreshold(v Vec2) bool {
	return math.Abs(v.X) < velocityStopThreshold && math.Abs(v.Y) < velocityStopThreshold
}

// --- Velocity sampling ---

type velocitySample struct {
	t     float64
	point Vec2
	angle float64
}

// trimSamples drops samples older than the window while keeping at least
// two.
func trimSamples(s []velocitySample, now float64) []velocitySample {
	drop := 0
	for drop < len(s)-2 && now-s[drop].t > sampleWindow {
		drop++
	}
	return s[drop:]
}

func sampleTimeDelta(first, last velocitySample) float64 {
	dt := last.t - first.t
	if dt == 0 {
		dt = 0.1
	}
	return dt
}

// VelocitySampler estimates pan velocity from the last second of touch
// positions using the first and last retained sample.
type VelocitySampler struct {
	samples []velocitySample
}

// Reset discards every sample.
func (s *VelocitySampler) Reset() { s.samples = s.samples[:0] }

// Add records the touch position p at time t in seconds.
func (s *VelocitySampler) Add(p Vec2, t float64) {
	s.samples = trimSamples(append(s.samples, velocitySample{t: t, point: p}), t)
}

// Velocity returns the estimated velocity in pixels per second.
func (s *VelocitySampler) Velocity() Vec2 {
	if len(s.samples) == 0 {
		return Vec2{}
	}
	first, last := s.samples[0], s.samples[len(s.samples)-1]
	dt := sampleTimeDelta(first, last)
	return Vec2{(last.point.X - first.point.X) / dt, (last.point.Y - first.point.Y) / dt}
}

// AngularVelocitySampler estimates rotation velocity in degrees per second
// from the last second of touch angles. Angles are in [0, 360) and may wrap.
type AngularVelocitySampler struct {
	samples []velocitySample
}

// Reset discards every sample.
func (s *AngularVelocitySampler) Reset() { s.samples = s.samples[:0] }

// Add records the touch angle at time t in seconds.
func (s *AngularVelocitySampler) Add(angle, t float64) {
	s.samples = trimSamples(append(s.samples, velocitySample{t: t, angle: angle}), t)
}

// Velocity returns the angular velocity. Positive is clockwise.
func (s *AngularVelocitySampler) Velocity() float64 {
	if len(s.samples) == 0 {
		return 0
	}
	first, last := s.samples[0], s.samples[len(s.samples)-1]

	// The direction comes from the most recent sample that differs from the
	// last one.
	beforeLast := first
	for i := len(s.samples) - 1; i >= 0; i-- {
		beforeLast = s.samples[i]
		if beforeLast.angle != last.angle {
			break
		}
	}

	dt := sampleTimeDelta(first, last)

	clockwise := last.angle >= beforeLast.angle
	if math.Abs(last.angle-beforeLast.angle) > 270 {
		clockwise = !clockwise
	}

	// Bring the end points to the same side of the 0/360 seam.
	if last.angle-first.angle > 180 {
		first.angle += 360
	} else if first.angle-last.angle > 180 {
		last.angle += 360
	}

	v := math.Abs((last.angle - first.angle) / dt)
	if !clockwise {
		v = -v
	}
	return v
}
