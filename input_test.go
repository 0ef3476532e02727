package chartcore

import (
	"fmt"
	"testing"
)

// recordingTarget logs every gesture it receives.
type recordingTarget struct {
	calls []string
}

func (r *recordingTarget) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recordingTarget) Tap(x, y float64)          { r.add("tap %g,%g", x, y) }
func (r *recordingTarget) DoubleTap(x, y float64)    { r.add("doubletap %g,%g", x, y) }
func (r *recordingTarget) PanBegin(x, y, _ float64)  { r.add("panbegin %g,%g", x, y) }
func (r *recordingTarget) PanChange(x, y, _ float64) { r.add("panchange %g,%g", x, y) }
func (r *recordingTarget) PanEnd(x, y, _ float64)    { r.add("panend %g,%g", x, y) }
func (r *recordingTarget) PanCancel()                { r.add("pancancel") }
func (r *recordingTarget) PinchBegin(cx, cy, sx, sy float64) {
	r.add("pinchbegin %g,%g %g,%g", cx, cy, sx, sy)
}
func (r *recordingTarget) PinchChange(cx, cy, scale float64) {
	r.add("pinchchange %g,%g %g", cx, cy, scale)
}
func (r *recordingTarget) PinchEnd() { r.add("pinchend") }

func assertCalls(t *testing.T, got *recordingTarget, want ...string) {
	t.Helper()
	if len(got.calls) != len(want) {
		t.Fatalf("calls = %q, want %q", got.calls, want)
	}
	for i := range want {
		if got.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, got.calls[i], want[i])
		}
	}
}

func TestRecognizerTap(t *testing.T) {
	rec := &recordingTarget{}
	g := NewGestureRecognizer(rec)
	g.PointerDown(0, 10, 10)
	if !g.IsDown(0) {
		t.Fatal("pointer should be down")
	}
	g.PointerUp(0, 10, 10)
	assertCalls(t, rec, "tap 10,10")
	if g.IsDown(0) {
		t.Error("pointer should be up")
	}
}

func TestRecognizerDeadZone(t *testing.T) {
	rec := &recordingTarget{}
	g := NewGestureRecognizer(rec)
	g.PointerDown(0, 10, 10)
	g.PointerMove(0, 13, 10)
	g.PointerUp(0, 13, 10)
	assertCalls(t, rec, "tap 13,10")
}

func TestRecognizerDrag(t *testing.T) {
	rec := &recordingTarget{}
	g := NewGestureRecognizer(rec)
	g.PointerDown(0, 10, 10)
	g.PointerMove(0, 30, 10)
	g.PointerUp(0, 40, 10)
	assertCalls(t, rec,
		"panbegin 10,10",
		"panchange 30,10",
		"panchange 40,10",
		"panend 40,10")
}

func TestRecognizerMoveWithoutPress(t *testing.T) {
	rec := &recordingTarget{}
	g := NewGestureRecognizer(rec)
	g.PointerMove(0, 100, 100)
	g.PointerMove(-1, 0, 0)
	g.PointerDown(maxPointers, 0, 0)
	assertCalls(t, rec)
}

func TestRecognizerDoubleTap(t *testing.T) {
	rec := &recordingTarget{}
	g := NewGestureRecognizer(rec)

	g.PointerDown(0, 50, 50)
	g.PointerUp(0, 50, 50)
	g.Update(0.2)
	g.PointerDown(0, 55, 55)
	g.PointerUp(0, 55, 55)
	g.Update(0.2)
	g.PointerDown(0, 55, 55)
	g.PointerUp(0, 55, 55)

	assertCalls(t, rec, "tap 50,50", "doubletap 55,55", "tap 55,55")
}

func TestRecognizerDoubleTapLimits(t *testing.T) {
	tests := []struct {
		name   string
		wait   float64
		second Vec2
	}{
		{"too slow", 0.5, Vec2{50, 50}},
		{"too far", 0.1, Vec2{80, 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingTarget{}
			g := NewGestureRecognizer(rec)
			g.PointerDown(0, 50, 50)
			g.PointerUp(0, 50, 50)
			g.Update(tt.wait)
			g.PointerDown(0, tt.second.X, tt.second.Y)
			g.PointerUp(0, tt.second.X, tt.second.Y)
			if len(rec.calls) != 2 || rec.calls[1][:4] != "tap " {
				t.Errorf("calls = %q, want two taps", rec.calls)
			}
		})
	}
}

func TestRecognizerPinch(t *testing.T) {
	rec := &recordingTarget{}
	g := NewGestureRecognizer(rec)
	g.PointerDown(1, 100, 100)
	g.PointerDown(2, 200, 100)
	g.PointerMove(2, 300, 100)
	g.PointerUp(1, 100, 100)
	g.PointerUp(2, 300, 100)

	assertCalls(t, rec,
		"pinchbegin 150,100 100,0",
		"pinchchange 200,100 2",
		"pinchend")
}

func TestRecognizerPinchCancelsPan(t *testing.T) {
	rec := &recordingTarget{}
	g := NewGestureRecognizer(rec)
	g.PointerDown(1, 0, 0)
	g.PointerMove(1, 50, 0)
	g.PointerDown(2, 50, 100)
	g.PointerUp(2, 50, 100)
	g.PointerUp(1, 50, 0)

	assertCalls(t, rec,
		"panbegin 0,0",
		"panchange 50,0",
		"pancancel",
		"pinchbegin 50,50 0,100",
		"pinchend")
}

func TestRecognizerMouseIsNotAPinchFinger(t *testing.T) {
	rec := &recordingTarget{}
	g := NewGestureRecognizer(rec)
	g.PointerDown(0, 10, 10)
	g.PointerDown(1, 100, 100)
	g.PointerUp(1, 100, 100)
	g.PointerUp(0, 10, 10)
	assertCalls(t, rec, "tap 100,100", "tap 10,10")
}

func TestRecognizerSetDragDeadZone(t *testing.T) {
	rec := &recordingTarget{}
	g := NewGestureRecognizer(rec)
	g.SetDragDeadZone(50)
	g.PointerDown(0, 0, 0)
	g.PointerMove(0, 30, 0)
	g.PointerUp(0, 30, 0)
	assertCalls(t, rec, "tap 30,0")
}

func TestRecognizerDrivesChart(t *testing.T) {
	c := newTestLineChart(rampSet())
	c.Zoom(2, 1, 200, 100)
	g := NewGestureRecognizer(c)
	g.PointerDown(0, 200, 100)
	g.PointerMove(0, 150, 100)
	assertNear(t, "transX", c.ViewPort().TransX(), -250)
	g.Update(0.1)
	g.PointerUp(0, 150, 100)
	if c.GestureState() == GesturePanning {
		t.Error("pan should have ended")
	}
}
