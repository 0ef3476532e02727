package chartcore

import "math"

// --- Constants ---

const (
	maxPointers         = 10  // pointer 0 = mouse, 1-9 = touch
	defaultDragDeadZone = 4.0 // pixels

	defaultDoubleTapInterval = 0.3  // seconds
	defaultDoubleTapSlop     = 20.0 // pixels
)

// GestureTarget receives recognized gestures. Both chart controllers
// implement it. Coordinates are chart pixels; t is the recognizer clock in
// seconds.
type GestureTarget interface {
	Tap(x, y float64)
	DoubleTap(x, y float64)

	PanBegin(x, y, t float64)
	PanChange(x, y, t float64)
	PanEnd(x, y, t float64)
	PanCancel()

	// PinchBegin reports the centre and the horizontal and vertical finger
	// spread at the start of a pinch.
	PinchBegin(cx, cy, spreadX, spreadY float64)
	// PinchChange reports the scale relative to the previous change.
	PinchChange(cx, cy, scale float64)
	PinchEnd()
}

// --- Per-pointer state ---

type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	dragging bool
	pinched  bool // took part in a pinch since it went down
}

// --- Pinch state ---

type pinchState struct {
	active   bool
	pointer0 int
	pointer1 int
	prevDist float64
}

// GestureRecognizer turns raw pointer events into taps, double taps, pans
// and pinches for a GestureTarget. Hosts feed it with PointerDown,
// PointerMove and PointerUp and call Update once per frame.
type GestureRecognizer struct {
	target GestureTarget

	pointers [maxPointers]pointerState
	pinch    pinchState

	// panPointer is the pointer driving the current pan, or -1.
	panPointer int

	now          float64
	dragDeadZone float64

	DoubleTapInterval float64
	DoubleTapSlop     float64

	lastTapTime float64
	lastTap     Vec2
	hasLastTap  bool

	injectQueue [][]syntheticPointerEvent
	runner      *GestureRunner
}

// NewGestureRecognizer creates a recognizer delivering to target.
func NewGestureRecognizer(target GestureTarget) *GestureRecognizer {
	return &GestureRecognizer{
		target:            target,
		panPointer:        -1,
		dragDeadZone:      defaultDragDeadZone,
		DoubleTapInterval: defaultDoubleTapInterval,
		DoubleTapSlop:     defaultDoubleTapSlop,
	}
}

// SetTarget replaces the gesture target.
func (g *GestureRecognizer) SetTarget(t GestureTarget) { g.target = t }

// SetDragDeadZone sets the minimum movement in pixels before a pan starts.
func (g *GestureRecognizer) SetDragDeadZone(pixels float64) {
	g.dragDeadZone = pixels
}

// Now returns the recognizer clock in seconds.
func (g *GestureRecognizer) Now() float64 { return g.now }

// Update advances the clock by dt seconds, steps an attached script runner
// and consumes one frame of injected input. It returns true when injected
// input was consumed; hosts skip real input for that frame.
func (g *GestureRecognizer) Update(dt float64) bool {
	g.now += dt
	if g.runner != nil {
		g.runner.step(g)
	}
	return g.processInjectedInput()
}

// PointerDown reports that pointer id went down at (x, y).
func (g *GestureRecognizer) PointerDown(id int, x, y float64) {
	g.processPointer(id, x, y, true)
}

// PointerMove reports that a held pointer moved to (x, y).
func (g *GestureRecognizer) PointerMove(id int, x, y float64) {
	if id >= 0 && id < maxPointers && g.pointers[id].down {
		g.processPointer(id, x, y, true)
	}
}

// PointerUp reports that pointer id was released at (x, y).
func (g *GestureRecognizer) PointerUp(id int, x, y float64) {
	g.processPointer(id, x, y, false)
}

// IsDown reports whether pointer id is held.
func (g *GestureRecognizer) IsDown(id int) bool {
	return id >= 0 && id < maxPointers && g.pointers[id].down
}

// processPointer runs the pointer state machine for a single pointer.
func (g *GestureRecognizer) processPointer(id int, x, y float64, pressed bool) {
	if id < 0 || id >= maxPointers || g.target == nil {
		return
	}
	ps := &g.pointers[id]

	switch {
	case pressed && !ps.down:
		*ps = pointerState{down: true, startX: x, startY: y, lastX: x, lastY: y}

	case !pressed && ps.down:
		g.movePointer(id, ps, x, y)
		if ps.dragging && g.panPointer == id {
			g.target.PanEnd(x, y, g.now)
			g.panPointer = -1
		} else if !ps.dragging && !ps.pinched {
			g.tap(x, y)
		}
		ps.down = false
		ps.dragging = false

	case pressed && ps.down:
		g.movePointer(id, ps, x, y)
	}

	g.detectPinch()
}

// movePointer starts or continues a pan once a held pointer leaves the dead
// zone.
func (g *GestureRecognizer) movePointer(id int, ps *pointerState, x, y float64) {
	if x == ps.lastX && y == ps.lastY {
		return
	}
	if !ps.dragging && !ps.pinched && !g.pinch.active && g.panPointer < 0 {
		if math.Hypot(x-ps.startX, y-ps.startY) > g.dragDeadZone {
			ps.dragging = true
			g.panPointer = id
			g.target.PanBegin(ps.startX, ps.startY, g.now)
		}
	}
	if ps.dragging && g.panPointer == id {
		g.target.PanChange(x, y, g.now)
	}
	ps.lastX = x
	ps.lastY = y
}

// tap fires Tap, or DoubleTap when it follows a tap closely in time and
// space.
func (g *GestureRecognizer) tap(x, y float64) {
	if g.hasLastTap && g.now-g.lastTapTime <= g.DoubleTapInterval &&
		math.Hypot(x-g.lastTap.X, y-g.lastTap.Y) <= g.DoubleTapSlop {
		g.hasLastTap = false
		g.target.DoubleTap(x, y)
		return
	}
	g.hasLastTap = true
	g.lastTapTime = g.now
	g.lastTap = Vec2{x, y}
	g.target.Tap(x, y)
}

// --- Pinch detection ---

func (g *GestureRecognizer) detectPinch() {
	var p [2]int
	count := 0
	for i := 1; i < maxPointers; i++ {
		if g.pointers[i].down {
			if count < 2 {
				p[count] = i
			}
			count++
		}
	}

	if count != 2 {
		if g.pinch.active {
			g.pinch.active = false
			// A remaining finger starts over instead of jumping.
			for i := range g.pointers {
				ps := &g.pointers[i]
				if ps.down {
					ps.startX, ps.startY = ps.lastX, ps.lastY
				}
			}
			g.target.PinchEnd()
		}
		return
	}

	ps0 := &g.pointers[p[0]]
	ps1 := &g.pointers[p[1]]
	cx := (ps0.lastX + ps1.lastX) / 2
	cy := (ps0.lastY + ps1.lastY) / 2
	dx := ps1.lastX - ps0.lastX
	dy := ps1.lastY - ps0.lastY
	dist := math.Hypot(dx, dy)

	if !g.pinch.active {
		if g.panPointer >= 0 {
			g.pointers[g.panPointer].dragging = false
			g.panPointer = -1
			g.target.PanCancel()
		}
		g.pinch = pinchState{active: true, pointer0: p[0], pointer1: p[1], prevDist: dist}
		ps0.pinched, ps1.pinched = true, true
		ps0.dragging, ps1.dragging = false, false
		g.target.PinchBegin(cx, cy, math.Abs(dx), math.Abs(dy))
		return
	}

	if g.pinch.prevDist > 0 && dist != g.pinch.prevDist {
		g.target.PinchChange(cx, cy, dist/g.pinch.prevDist)
	}
	g.pinch.prevDist = dist
}
