// Package ecs provides ECS adapters for chartcore.
package ecs

import (
	"github.com/phanxgames/chartcore"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ChartEventType is the Donburi event type for chart events. Subscribe to
// this in your ECS systems to receive selections and viewport changes.
var ChartEventType = events.NewEventType[chartcore.ChartEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Chart
// events are published to ChartEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) chartcore.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event chartcore.ChartEvent) {
	ChartEventType.Publish(s.world, event)
}
