// Package ecs provides ECS adapters for chartcore's chart events.
//
// The primary adapter is [NewDonburiSink], which forwards chart events
// (value selected/deselected, scaled, translated, rotated) into a [Donburi]
// world as typed events. Subscribe to [ChartEventType] in your ECS systems
// to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	chart.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
