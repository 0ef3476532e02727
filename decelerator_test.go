package chartcore

import (
	"math"
	"testing"
)

func TestDeceleratorStopsBelowThreshold(t *testing.T) {
	d := NewDecelerator(0.9)
	d.Start(Vec2{X: 100})
	if !d.Active() {
		t.Fatal("expected active")
	}

	ticks := 0
	var total float64
	for d.Active() {
		dist, ok := d.Tick(1)
		if !ok {
			t.Fatal("Tick reported stopped while active")
		}
		total += dist.X
		ticks++
		if ticks > 1000 {
			t.Fatal("deceleration never stopped")
		}
	}
	// 100 * 0.9^n drops below 0.001 at n = 110.
	if ticks != 110 {
		t.Errorf("ticks = %d, want 110", ticks)
	}
	if math.Abs(total-900) > 0.05 {
		t.Errorf("total distance = %v, want about 900", total)
	}
	if d.Velocity() != (Vec2{}) {
		t.Errorf("velocity after stop = %v", d.Velocity())
	}
}

func TestDeceleratorFirstTick(t *testing.T) {
	d := NewDecelerator(0.9)
	d.Start(Vec2{X: -500, Y: 200})
	dist, ok := d.Tick(0.1)
	if !ok {
		t.Fatal("expected a displacement")
	}
	assertVec(t, "dist", dist, Vec2{-45, 18})
	assertVec(t, "velocity", d.Velocity(), Vec2{-450, 180})
}

func TestDeceleratorInactive(t *testing.T) {
	d := NewDecelerator(DefaultFriction)
	if dist, ok := d.Tick(1); ok || dist != (Vec2{}) {
		t.Errorf("idle Tick = %v, %v", dist, ok)
	}
	d.Start(Vec2{X: 0.0005, Y: -0.0005})
	if d.Active() {
		t.Error("start below threshold should not activate")
	}
}

func TestDeceleratorReject(t *testing.T) {
	d := NewDecelerator(DefaultFriction)
	d.Start(Vec2{X: 300})
	d.Tick(0.1)
	d.Reject()
	if d.Active() || d.Velocity() != (Vec2{}) {
		t.Errorf("after Reject: active=%v velocity=%v", d.Active(), d.Velocity())
	}
}

func TestDeceleratorFriction(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.5, 0.5},
		{2, 0.999},
		{1, 0.999},
		{-1, 0},
		{math.NaN(), DefaultFriction},
	}
	for _, tt := range tests {
		d := NewDecelerator(tt.in)
		assertNear(t, "friction", d.Friction(), tt.want)
	}

	d := NewDecelerator(0)
	d.Start(Vec2{X: 100})
	dist, ok := d.Tick(1)
	if !ok || dist != (Vec2{}) || d.Active() {
		t.Errorf("zero friction: dist=%v ok=%v active=%v", dist, ok, d.Active())
	}
}

func TestVelocitySampler(t *testing.T) {
	var s VelocitySampler
	assertVec(t, "empty", s.Velocity(), Vec2{})

	s.Add(Vec2{0, 0}, 0)
	s.Add(Vec2{10, 20}, 0.5)
	assertVec(t, "velocity", s.Velocity(), Vec2{20, 40})

	s.Reset()
	s.Add(Vec2{5, 5}, 1)
	s.Add(Vec2{6, 5}, 1)
	// Equal timestamps fall back to a 0.1 s interval.
	assertVec(t, "same time", s.Velocity(), Vec2{10, 0})
}

func TestVelocitySamplerWindow(t *testing.T) {
	var s VelocitySampler
	s.Add(Vec2{0, 0}, 0)
	s.Add(Vec2{100, 0}, 0.5)
	s.Add(Vec2{200, 0}, 2.0)
	s.Add(Vec2{300, 0}, 2.1)
	v := s.Velocity()
	if math.Abs(v.X-1000) > 1e-6 || v.Y != 0 {
		t.Errorf("velocity = %v, want only samples from the last second", v)
	}
}

func TestAngularVelocitySampler(t *testing.T) {
	tests := []struct {
		name   string
		angles []float64
		times  []float64
		want   float64
	}{
		{"clockwise", []float64{0, 90}, []float64{0, 0.5}, 180},
		{"counter clockwise", []float64{90, 0}, []float64{0, 0.5}, -180},
		{"clockwise across seam", []float64{350, 10}, []float64{0, 0.1}, 200},
		{"counter clockwise across seam", []float64{10, 350}, []float64{0, 0.1}, -200},
		{"repeated last sample", []float64{45, 135, 135}, []float64{0, 0.1, 0.1}, 900},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s AngularVelocitySampler
			for i := range tt.angles {
				s.Add(tt.angles[i], tt.times[i])
			}
			if got := s.Velocity(); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Velocity() = %v, want %v", got, tt.want)
			}
		})
	}

	var s AngularVelocitySampler
	if s.Velocity() != 0 {
		t.Error("empty sampler should report 0")
	}
}
