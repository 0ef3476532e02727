package chartcore

import "github.com/charmbracelet/log"

// chartBase is the state shared by cartesian and radial charts: event
// callbacks, selection, the gesture state machine and deceleration.
type chartBase struct {
	events   handlerRegistry
	log      *log.Logger
	gestures GestureMachine
	decel    *Decelerator
	animator *Animator

	highlighter     Highlighter
	highlighted     []Highlight
	lastHighlighted Highlight
	hasLast         bool

	dirty bool

	// HighlightPerTapEnabled selects entries on tap; tapping the selected
	// entry again clears the selection.
	HighlightPerTapEnabled bool
	// DragDecelerationEnabled keeps the chart moving after a pan or
	// rotation is released.
	DragDecelerationEnabled bool
}

func newChartBase() chartBase {
	b := chartBase{
		log:                     newLogger(),
		decel:                   NewDecelerator(DefaultFriction),
		animator:                NewAnimator(),
		HighlightPerTapEnabled:  true,
		DragDecelerationEnabled: true,
	}
	return b
}

// init wires callbacks that need a stable pointer to the base.
func (c *chartBase) init() {
	c.gestures.OnTransition = func(from, to GestureState) {
		c.log.Debug("gesture", "from", from, "to", to)
	}
}

// --- Events ---

// SetEventSink forwards every event to sink in addition to the registered
// callbacks. Pass nil to stop forwarding.
func (c *chartBase) SetEventSink(sink EventSink) { c.events.sink = sink }

// OnValueSelected registers fn to run when a touch selects an entry.
func (c *chartBase) OnValueSelected(fn func(Highlight)) CallbackHandle {
	return c.events.add(EventValueSelected, func(e ChartEvent) { fn(e.Highlight) })
}

// OnValueDeselected registers fn to run when the selection is cleared.
func (c *chartBase) OnValueDeselected(fn func()) CallbackHandle {
	return c.events.add(EventValueDeselected, func(ChartEvent) { fn() })
}

// OnChartScaled registers fn to run after a gesture zooms the chart. The
// arguments are the relative scale factors applied.
func (c *chartBase) OnChartScaled(fn func(scaleX, scaleY float64)) CallbackHandle {
	return c.events.add(EventChartScaled, func(e ChartEvent) { fn(e.ScaleX, e.ScaleY) })
}

// OnChartTranslated registers fn to run after a gesture pans the chart.
func (c *chartBase) OnChartTranslated(fn func(dx, dy float64)) CallbackHandle {
	return c.events.add(EventChartTranslated, func(e ChartEvent) { fn(e.DX, e.DY) })
}

// OnChartRotated registers fn to run after a radial chart rotates.
func (c *chartBase) OnChartRotated(fn func(angle float64)) CallbackHandle {
	return c.events.add(EventChartRotated, func(e ChartEvent) { fn(e.Rotation) })
}

// --- Selection ---

// Highlighter returns the active highlighter.
func (c *chartBase) Highlighter() Highlighter { return c.highlighter }

// SetHighlighter replaces the highlighter.
func (c *chartBase) SetHighlighter(h Highlighter) { c.highlighter = h }

// HighlightByTouchPoint resolves a pixel touch point without changing the
// selection.
func (c *chartBase) HighlightByTouchPoint(x, y float64) (Highlight, bool) {
	if c.highlighter == nil {
		return Highlight{}, false
	}
	h, ok := c.highlighter.Highlight(x, y)
	if ok {
		c.log.Debug("highlight", "x", x, "y", y, "highlight", h)
	}
	return h, ok
}

// Highlighted returns the current selection.
func (c *chartBase) Highlighted() []Highlight { return c.highlighted }

// LastHighlighted returns the entry selected by the last tap or drag.
func (c *chartBase) LastHighlighted() (Highlight, bool) { return c.lastHighlighted, c.hasLast }

// HighlightValue selects h, or clears the selection when h is nil. When
// notify is true the matching selected/deselected event fires.
func (c *chartBase) HighlightValue(h *Highlight, notify bool) {
	if h == nil {
		c.highlighted = nil
		if notify {
			c.events.fire(ChartEvent{Type: EventValueDeselected})
		}
	} else {
		c.highlighted = []Highlight{*h}
		if notify {
			c.events.fire(ChartEvent{Type: EventValueSelected, Highlight: *h})
		}
	}
	c.dirty = true
}

// tapHighlight toggles the selection at a tapped point.
func (c *chartBase) tapHighlight(x, y float64) {
	if !c.HighlightPerTapEnabled {
		return
	}
	h, ok := c.HighlightByTouchPoint(x, y)
	if !ok || (c.hasLast && h.Equal(c.lastHighlighted)) {
		c.hasLast = false
		c.HighlightValue(nil, true)
		return
	}
	c.lastHighlighted, c.hasLast = h, true
	c.HighlightValue(&h, true)
}

// dragHighlight selects the entry under a dragging finger, notifying only
// when it changes.
func (c *chartBase) dragHighlight(x, y float64) {
	h, ok := c.HighlightByTouchPoint(x, y)
	switch {
	case !ok && !c.hasLast:
		return
	case !ok:
		c.hasLast = false
		c.HighlightValue(nil, true)
	case !c.hasLast || !h.Equal(c.lastHighlighted):
		c.lastHighlighted, c.hasLast = h, true
		c.HighlightValue(&h, true)
	}
}

// --- Deceleration and animation ---

// SetDragDecelerationFriction sets the per-tick velocity retention,
// clamped into [0, 0.999].
func (c *chartBase) SetDragDecelerationFriction(f float64) { c.decel.SetFriction(f) }

// DragDecelerationFriction returns the per-tick velocity retention.
func (c *chartBase) DragDecelerationFriction() float64 { return c.decel.Friction() }

// StopDeceleration cancels any running deceleration.
func (c *chartBase) StopDeceleration() {
	c.decel.Stop()
	c.gestures.DecelerationDone()
}

// GestureState returns the state of the gesture machine.
func (c *chartBase) GestureState() GestureState { return c.gestures.State() }

// Animator returns the phase animator.
func (c *chartBase) Animator() *Animator { return c.animator }

// PhaseX and PhaseY return the animator phases in [0, 1].
func (c *chartBase) PhaseX() float64 { return c.animator.PhaseX }
func (c *chartBase) PhaseY() float64 { return c.animator.PhaseY }

// Dirty reports whether the chart changed since the last call and clears
// the flag. Hosts redraw when it returns true.
func (c *chartBase) Dirty() bool {
	d := c.dirty
	c.dirty = false
	return d
}
