// Package ebitenchart hosts chartcore charts in an Ebitengine window: it
// polls mouse, wheel and touch input into a gesture recognizer and draws
// bars, slices, radar webs and the selection with plain triangles.
package ebitenchart

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/chartcore"
)

const maxTouchSlots = 10 // slot 0 = mouse, 1-9 = touch

// Chart is what the host needs from a chart controller.
type Chart interface {
	chartcore.GestureTarget
	Tick(dt float64)
	Dirty() bool
	SetChartDimens(width, height float64)
}

// Zoomer is implemented by charts that zoom on the mouse wheel.
type Zoomer interface {
	Zoom(scaleX, scaleY, x, y float64)
}

// Host feeds ebiten input to one chart placed at (X, Y) on screen.
type Host struct {
	Chart      Chart
	Recognizer *chartcore.GestureRecognizer

	X, Y          float64
	Width, Height float64

	// WheelZoomStep is the zoom factor per wheel notch. 0 disables wheel
	// zoom.
	WheelZoomStep float64

	mouseDown bool
	touchIDs  []ebiten.TouchID
	touchMap  [maxTouchSlots]ebiten.TouchID
	touchUsed [maxTouchSlots]bool
}

// NewHost creates a host for chart sized width x height pixels.
func NewHost(chart Chart, width, height float64) *Host {
	h := &Host{
		Chart:         chart,
		Recognizer:    chartcore.NewGestureRecognizer(chart),
		Width:         width,
		Height:        height,
		WheelZoomStep: 1.1,
	}
	chart.SetChartDimens(width, height)
	return h
}

// Update polls input and advances the chart by one tick. Call it from
// ebiten.Game.Update.
func (h *Host) Update() {
	dt := 1 / float64(ebiten.TPS())
	if !h.Recognizer.Update(dt) {
		h.processMouse()
		h.processTouches()
		h.processWheel()
	}
	h.Chart.Tick(dt)
}

func (h *Host) local(x, y int) (float64, float64) {
	return float64(x) - h.X, float64(y) - h.Y
}

func (h *Host) inside(x, y float64) bool {
	return x >= 0 && y >= 0 && x <= h.Width && y <= h.Height
}

// processMouse handles the left mouse button as pointer 0.
func (h *Host) processMouse() {
	x, y := h.local(ebiten.CursorPosition())
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	switch {
	case pressed && !h.mouseDown:
		if !h.inside(x, y) {
			return
		}
		h.mouseDown = true
		h.Recognizer.PointerDown(0, x, y)
	case pressed:
		h.Recognizer.PointerMove(0, x, y)
	case h.mouseDown:
		h.mouseDown = false
		h.Recognizer.PointerUp(0, x, y)
	}
}

// processTouches maps touch IDs to pointer slots 1-9.
func (h *Host) processTouches() {
	for _, tid := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := h.local(ebiten.TouchPosition(tid))
		if !h.inside(x, y) {
			continue
		}
		if slot := h.allocSlot(tid); slot > 0 {
			h.Recognizer.PointerDown(slot, x, y)
		}
	}

	h.touchIDs = ebiten.AppendTouchIDs(h.touchIDs[:0])
	var active [maxTouchSlots]bool
	for _, tid := range h.touchIDs {
		slot := h.slotOf(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		x, y := h.local(ebiten.TouchPosition(tid))
		h.Recognizer.PointerMove(slot, x, y)
	}

	for i := 1; i < maxTouchSlots; i++ {
		if h.touchUsed[i] && !active[i] {
			tid := h.touchMap[i]
			x, y := h.local(inpututil.TouchPositionInPreviousTick(tid))
			h.Recognizer.PointerUp(i, x, y)
			h.touchUsed[i] = false
		}
	}
}

func (h *Host) slotOf(tid ebiten.TouchID) int {
	for i := 1; i < maxTouchSlots; i++ {
		if h.touchUsed[i] && h.touchMap[i] == tid {
			return i
		}
	}
	return -1
}

func (h *Host) allocSlot(tid ebiten.TouchID) int {
	if s := h.slotOf(tid); s > 0 {
		return s
	}
	for i := 1; i < maxTouchSlots; i++ {
		if !h.touchUsed[i] {
			h.touchUsed[i] = true
			h.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processWheel zooms zoomable charts around the cursor.
func (h *Host) processWheel() {
	z, ok := h.Chart.(Zoomer)
	if !ok || h.WheelZoomStep <= 0 {
		return
	}
	_, dy := ebiten.Wheel()
	if dy == 0 {
		return
	}
	x, y := h.local(ebiten.CursorPosition())
	if !h.inside(x, y) {
		return
	}
	s := h.WheelZoomStep
	if dy < 0 {
		s = 1 / s
	}
	z.Zoom(s, s, x, y)
}
