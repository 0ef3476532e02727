package chartcore

import "math"

// syntheticPointerEvent represents a single injected pointer event in chart
// pixels.
type syntheticPointerEvent struct {
	pointer int
	x, y    float64
	pressed bool
}

func (g *GestureRecognizer) injectFrame(evts ...syntheticPointerEvent) {
	g.injectQueue = append(g.injectQueue, evts)
}

// InjectPress queues a mouse press at (x, y). The event is consumed on the
// next Update.
func (g *GestureRecognizer) InjectPress(x, y float64) {
	g.injectFrame(syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a mouse move at (x, y) with the button held. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (g *GestureRecognizer) InjectMove(x, y float64) {
	g.injectFrame(syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a mouse release at (x, y).
func (g *GestureRecognizer) InjectRelease(x, y float64) {
	g.injectFrame(syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectClick queues a press followed by a release at the same position.
// Consumes two frames.
func (g *GestureRecognizer) InjectClick(x, y float64) {
	g.InjectPress(x, y)
	g.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2.
func (g *GestureRecognizer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	g.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		g.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	g.InjectRelease(toX, toY)
}

// InjectPinch queues a two-finger pinch centred on (cx, cy). The fingers
// start fromDist pixels apart along angle degrees and end toDist apart.
// Minimum frames is 3 (press, one move, release).
func (g *GestureRecognizer) InjectPinch(cx, cy, fromDist, toDist, angle float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	sin, cos := math.Sincos(angle * math.Pi / 180)
	fingers := func(dist float64, pressed bool) []syntheticPointerEvent {
		h := dist / 2
		return []syntheticPointerEvent{
			{pointer: 1, x: cx - h*cos, y: cy - h*sin, pressed: pressed},
			{pointer: 2, x: cx + h*cos, y: cy + h*sin, pressed: pressed},
		}
	}
	g.injectFrame(fingers(fromDist, true)...)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		g.injectFrame(fingers(fromDist+(toDist-fromDist)*t, true)...)
	}
	g.injectFrame(fingers(toDist, false)...)
}

// Pending reports whether injected input is still queued.
func (g *GestureRecognizer) Pending() bool { return len(g.injectQueue) > 0 }

// processInjectedInput pops one frame of events from the inject queue and
// feeds it through processPointer. Returns true if a frame was consumed.
func (g *GestureRecognizer) processInjectedInput() bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	frame := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue[len(g.injectQueue)-1] = nil
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]

	for _, evt := range frame {
		g.processPointer(evt.pointer, evt.x, evt.y, evt.pressed)
	}
	return true
}
