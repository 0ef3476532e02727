package chartcore

import "testing"

type recordingSink struct {
	events []ChartEvent
}

func (s *recordingSink) EmitEvent(e ChartEvent) { s.events = append(s.events, e) }

func TestCallbacksFireAndRemove(t *testing.T) {
	c := newTestLineChart(rampSet())
	var scaled, translated int
	hs := c.OnChartScaled(func(sx, sy float64) { scaled++ })
	c.OnChartTranslated(func(dx, dy float64) { translated++ })

	c.DoubleTap(200, 100)
	c.PerformPanChange(Vec2{X: -10})
	if scaled != 1 || translated != 1 {
		t.Fatalf("scaled=%d translated=%d, want 1 and 1", scaled, translated)
	}

	hs.Remove()
	hs.Remove() // removing twice is harmless
	c.DoubleTap(200, 100)
	if scaled != 1 {
		t.Errorf("removed callback fired, scaled=%d", scaled)
	}
}

func TestRemoveKeepsOtherCallbacks(t *testing.T) {
	var r handlerRegistry
	var got []int
	a := r.add(EventChartRotated, func(ChartEvent) { got = append(got, 1) })
	r.add(EventChartRotated, func(ChartEvent) { got = append(got, 2) })
	r.add(EventChartRotated, func(ChartEvent) { got = append(got, 3) })

	a.Remove()
	r.fire(ChartEvent{Type: EventChartRotated})
	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("fired %v, want [2 3]", got)
	}

	var zero CallbackHandle
	zero.Remove()
}

func TestEventSinkReceivesEverything(t *testing.T) {
	c := newTestLineChart(rampSet())
	sink := &recordingSink{}
	c.SetEventSink(sink)

	c.Tap(100, 150)
	c.DoubleTap(200, 100)
	c.PerformPanChange(Vec2{X: -5, Y: 2})

	want := []EventType{EventValueSelected, EventChartScaled, EventChartTranslated}
	if len(sink.events) != len(want) {
		t.Fatalf("sink got %d events, want %d", len(sink.events), len(want))
	}
	for i, w := range want {
		if sink.events[i].Type != w {
			t.Errorf("event %d = %v, want %v", i, sink.events[i].Type, w)
		}
	}
	assertNear(t, "selected x", sink.events[0].Highlight.X, 1)
	assertNear(t, "scale", sink.events[1].ScaleX, 1.4)
	assertNear(t, "dx", sink.events[2].DX, -5)

	c.SetEventSink(nil)
	c.Tap(100, 150)
	if len(sink.events) != len(want) {
		t.Error("detached sink still receives events")
	}
}

func TestEventTypeString(t *testing.T) {
	if EventChartRotated.String() != "chartRotated" {
		t.Errorf("got %q", EventChartRotated.String())
	}
	if EventType(99).String() != "unknown" {
		t.Errorf("got %q", EventType(99).String())
	}
}
