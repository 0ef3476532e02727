package ecs

import (
	"testing"

	"github.com/phanxgames/chartcore"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []chartcore.ChartEvent
	ChartEventType.Subscribe(world, func(w donburi.World, e chartcore.ChartEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(chartcore.ChartEvent{
		Type:      chartcore.EventValueSelected,
		Highlight: chartcore.Highlight{X: 3, Y: 42, DataSetIndex: 1},
	})
	sink.EmitEvent(chartcore.ChartEvent{
		Type:   chartcore.EventChartScaled,
		ScaleX: 1.4,
		ScaleY: 1,
	})

	// Events are queued until processed.
	ChartEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Type != chartcore.EventValueSelected || e0.Highlight.Y != 42 || e0.Highlight.DataSetIndex != 1 {
		t.Errorf("event 0: %+v", e0)
	}
	e1 := received[1]
	if e1.Type != chartcore.EventChartScaled || e1.ScaleX != 1.4 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink chartcore.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_ChartTap(t *testing.T) {
	world := donburi.NewWorld()

	chart := chartcore.NewBarChart(chartcore.Vertical, chartcore.BarModeNone)
	chart.SetEventSink(NewDonburiSink(world))
	chart.SetBarData(chartcore.NewBarData(chartcore.NewDataSet("a", chartcore.KindBar,
		chartcore.Entry{X: 0, Y: 10},
		chartcore.Entry{X: 1, Y: 20},
	)))
	chart.SetViewPortOffsets(0, 0, 0, 0)
	chart.SetChartDimens(200, 100)
	chart.Tick(0)

	var types []chartcore.EventType
	ChartEventType.Subscribe(world, func(w donburi.World, e chartcore.ChartEvent) {
		types = append(types, e.Type)
	})

	// Pixel x 150 lies on bar 1.
	chart.Tap(150, 50)
	chart.Tap(150, 50)
	events.ProcessAllEvents(world)

	if len(types) != 2 || types[0] != chartcore.EventValueSelected || types[1] != chartcore.EventValueDeselected {
		t.Errorf("events = %v, want [selected deselected]", types)
	}
}
