package chartcore

import "testing"

func TestInjectClick(t *testing.T) {
	rec := &recordingTarget{}
	g := NewGestureRecognizer(rec)
	g.InjectClick(50, 50)
	if len(g.injectQueue) != 2 {
		t.Fatalf("expected 2 queued frames, got %d", len(g.injectQueue))
	}

	// Frame 1: press
	if !g.Update(1.0 / 60) {
		t.Fatal("first frame should consume injected input")
	}
	if !g.Pending() || len(rec.calls) != 0 {
		t.Fatalf("after press: pending=%v calls=%q", g.Pending(), rec.calls)
	}

	// Frame 2: release fires the tap
	g.Update(1.0 / 60)
	assertCalls(t, rec, "tap 50,50")
	if g.Pending() {
		t.Error("queue should be empty")
	}
	if g.Update(1.0 / 60) {
		t.Error("empty queue should report no injected input")
	}
}

func TestInjectDrag(t *testing.T) {
	rec := &recordingTarget{}
	g := NewGestureRecognizer(rec)
	g.InjectDrag(0, 0, 100, 0, 5)
	if len(g.injectQueue) != 5 {
		t.Fatalf("expected 5 frames, got %d", len(g.injectQueue))
	}
	for g.Pending() {
		g.Update(1.0 / 60)
	}
	assertCalls(t, rec,
		"panbegin 0,0",
		"panchange 25,0",
		"panchange 50,0",
		"panchange 75,0",
		"panchange 100,0",
		"panend 100,0")
}

func TestInjectDragMinimumFrames(t *testing.T) {
	g := NewGestureRecognizer(&recordingTarget{})
	g.InjectDrag(0, 0, 10, 10, 0)
	if len(g.injectQueue) != 2 {
		t.Errorf("expected 2 frames, got %d", len(g.injectQueue))
	}
}

func TestInjectPinch(t *testing.T) {
	rec := &recordingTarget{}
	g := NewGestureRecognizer(rec)
	g.InjectPinch(100, 100, 100, 200, 0, 1)
	if len(g.injectQueue) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(g.injectQueue))
	}
	for g.Pending() {
		g.Update(1.0 / 60)
	}

	// Fingers move one at a time, so the growth arrives in two changes.
	if len(rec.calls) != 4 {
		t.Fatalf("calls = %q", rec.calls)
	}
	if rec.calls[0] != "pinchbegin 100,100 100,0" {
		t.Errorf("begin = %q", rec.calls[0])
	}
	if rec.calls[3] != "pinchend" {
		t.Errorf("end = %q", rec.calls[3])
	}
}

func TestInjectPinchZoomsChart(t *testing.T) {
	c := newTestLineChart(rampSet())
	c.PinchZoomEnabled = true
	g := NewGestureRecognizer(c)
	g.InjectPinch(200, 100, 100, 200, 0, 4)
	for g.Pending() {
		g.Update(1.0 / 60)
	}
	assertNear(t, "scaleX", c.ScaleX(), 2)
	assertNear(t, "scaleY", c.ScaleY(), 2)
	if c.GestureState() != GestureIdle {
		t.Errorf("state = %v, want idle", c.GestureState())
	}
}
