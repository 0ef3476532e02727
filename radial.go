package chartcore

import (
	"math"

	"github.com/aclements/go-moremath/vec"
	"github.com/tanema/gween/ease"
)

const (
	// DefaultRotationAngle places the first slice at north.
	DefaultRotationAngle = 270.0

	// rotationThreshold is how far a finger must travel, in pixels, before
	// a pan starts rotating the chart.
	rotationThreshold = 8.0
)

// RadialChart is the controller for pie and radar charts. Angles are in
// degrees, 0 pointing east in screen space and increasing clockwise.
type RadialChart struct {
	chartBase

	kind DataKind
	vp   *ViewPortHandler
	data *ChartData

	// YAxis is the value axis of a radar chart. Pie charts ignore it.
	YAxis *YAxis

	rotation    float64
	rawRotation float64

	// RotationEnabled lets a pan rotate the chart.
	RotationEnabled bool
	MinOffset       float64

	drawAngles     []float64
	absoluteAngles []float64

	panStart   Vec2
	startAngle float64
	tracking   bool
	sampler    AngularVelocitySampler

	spin *TweenGroup
}

// NewPieChart creates a pie chart. Only the first data set is drawn.
func NewPieChart() *RadialChart {
	c := newRadialChart(KindPie)
	c.highlighter = NewPieHighlighter(c)
	return c
}

// NewRadarChart creates a radar chart. Its value axis always includes zero so
// the web starts at the centre.
func NewRadarChart() *RadialChart {
	c := newRadialChart(KindRadar)
	c.YAxis.StartAtZero = true
	c.highlighter = NewRadarHighlighter(c)
	return c
}

func newRadialChart(kind DataKind) *RadialChart {
	c := &RadialChart{
		chartBase:       newChartBase(),
		kind:            kind,
		vp:              NewViewPortHandler(),
		YAxis:           NewYAxis(AxisLeft),
		rotation:        DefaultRotationAngle,
		rawRotation:     DefaultRotationAngle,
		RotationEnabled: true,
		MinOffset:       0,
	}
	c.chartBase.init()
	c.animator.OnUpdate = func() { c.dirty = true }
	return c
}

// Kind returns KindPie or KindRadar.
func (c *RadialChart) Kind() DataKind { return c.kind }

// ViewPort returns the viewport handler holding the content rect.
func (c *RadialChart) ViewPort() *ViewPortHandler { return c.vp }

// SetData binds data and recomputes slice angles and the value axis.
func (c *RadialChart) SetData(d *ChartData) {
	c.data = d
	c.NotifyDataSetChanged()
}

// Data implements RadialProvider.
func (c *RadialChart) Data() *ChartData { return c.data }

// NotifyDataSetChanged recomputes slice angles and the value axis.
func (c *RadialChart) NotifyDataSetChanged() {
	c.drawAngles, c.absoluteAngles = nil, nil
	if c.data.IsEmpty() {
		return
	}
	c.data.NotifyDataChanged()
	if c.kind == KindPie {
		c.calcAngles()
	} else {
		c.YAxis.Calculate(c.data.YMin(AxisLeft), c.data.YMax(AxisLeft))
	}
	c.dirty = true
}

// calcAngles splits 360 degrees across the entries of the first set in
// proportion to their absolute values.
func (c *RadialChart) calcAngles() {
	set := c.data.DataSet(0)
	abs := make([]float64, set.Len())
	for i, e := range set.Entries() {
		abs[i] = math.Abs(e.Y)
	}
	total := vec.Sum(abs)

	c.drawAngles = make([]float64, len(abs))
	c.absoluteAngles = make([]float64, len(abs))
	acc := 0.0
	for i, v := range abs {
		if total > 0 {
			c.drawAngles[i] = v / total * 360
		}
		acc += c.drawAngles[i]
		c.absoluteAngles[i] = acc
	}
}

// DrawAngles returns the sweep of each pie slice.
func (c *RadialChart) DrawAngles() []float64 { return c.drawAngles }

// AbsoluteAngles returns the cumulative end angle of each pie slice,
// relative to the rotation angle.
func (c *RadialChart) AbsoluteAngles() []float64 { return c.absoluteAngles }

// SetChartDimens sets the chart size in pixels and lays out the content
// rect inside MinOffset.
func (c *RadialChart) SetChartDimens(width, height float64) {
	c.vp.SetChartDimens(width, height)
	o := c.MinOffset
	c.vp.RestrainViewPort(o, o, o, o)
	c.dirty = true
}

// SetViewPortOffsets overrides the content rect offsets.
func (c *RadialChart) SetViewPortOffsets(left, top, right, bottom float64) {
	c.vp.RestrainViewPort(left, top, right, bottom)
	c.dirty = true
}

// --- Geometry ---

// Center returns the centre of the content rect.
func (c *RadialChart) Center() Vec2 { return c.vp.ContentCenter() }

// Radius returns the radius of the largest circle fitting the content rect.
func (c *RadialChart) Radius() float64 {
	return math.Min(c.vp.ContentWidth(), c.vp.ContentHeight()) / 2
}

// DistanceToCenter returns the pixel distance from (x, y) to the centre.
func (c *RadialChart) DistanceToCenter(x, y float64) float64 {
	ctr := c.Center()
	return math.Hypot(x-ctr.X, y-ctr.Y)
}

// AngleForPoint returns the screen angle of (x, y) around the centre in
// [0, 360). The centre itself has angle 0.
func (c *RadialChart) AngleForPoint(x, y float64) float64 {
	ctr := c.Center()
	tx, ty := x-ctr.X, y-ctr.Y
	length := math.Hypot(tx, ty)
	if length == 0 {
		return 0
	}
	r := math.Acos(ty/length) * 180 / math.Pi
	if x > ctr.X {
		r = 360 - r
	}
	return normalizeAngle(r + 90)
}

// IndexForAngle returns the slice (pie) or spoke (radar) at a screen angle.
// A pie returns -1 for an angle past the last slice.
func (c *RadialChart) IndexForAngle(angle float64) int {
	a := normalizeAngle(angle - c.rotation)
	if c.kind == KindPie {
		for i, abs := range c.absoluteAngles {
			if abs > a {
				return i
			}
		}
		return -1
	}
	slice := c.SliceAngle()
	n := 0
	if s := c.data.MaxEntryCountSet(); s != nil {
		n = s.Len()
	}
	for i := 0; i < n; i++ {
		if slice*float64(i+1)-slice/2 > a {
			return i
		}
	}
	return 0
}

// SliceAngle returns the angle between radar spokes.
func (c *RadialChart) SliceAngle() float64 {
	if c.data.IsEmpty() {
		return 360
	}
	n := c.data.MaxEntryCountSet().Len()
	if n == 0 {
		return 360
	}
	return 360 / float64(n)
}

// Factor returns pixels per value unit along a radar spoke.
func (c *RadialChart) Factor() float64 {
	if c.YAxis.Range <= 0 {
		return 0
	}
	return c.Radius() / c.YAxis.Range
}

// AxisRange implements RadarProvider. Pie charts have no value axis.
func (c *RadialChart) AxisRange(AxisDependency) AxisRange {
	if c.kind == KindPie {
		return AxisRange{}
	}
	return c.YAxis.AxisRange
}

// --- Rotation ---

// RotationAngle returns the rotation in [0, 360).
func (c *RadialChart) RotationAngle() float64 { return c.rotation }

// RawRotationAngle returns the rotation without normalization.
func (c *RadialChart) RawRotationAngle() float64 { return c.rawRotation }

// SetRotationAngle rotates the chart to angle degrees.
func (c *RadialChart) SetRotationAngle(angle float64) {
	c.rawRotation = angle
	c.rotation = normalizeAngle(angle)
	c.dirty = true
	c.events.fire(ChartEvent{Type: EventChartRotated, Rotation: c.rotation})
}

// SpinAnimated rotates from fromAngle to toAngle over duration seconds.
func (c *RadialChart) SpinAnimated(duration float32, fromAngle, toAngle float64, fn ease.TweenFunc) {
	c.StopDeceleration()
	angle := fromAngle
	c.SetRotationAngle(angle)
	c.spin = newTweenGroup(func() { c.SetRotationAngle(angle) }, duration, fn,
		tweenField{&angle, toAngle})
}

// Spinning reports whether a SpinAnimated rotation is running.
func (c *RadialChart) Spinning() bool { return c.spin != nil }

// Tick advances animations, spin and rotation deceleration by dt seconds.
func (c *RadialChart) Tick(dt float64) {
	c.animator.Update(float32(dt))

	if c.spin != nil {
		c.spin.Update(float32(dt))
		if c.spin.Done {
			c.spin = nil
		}
	}

	if c.decel.Active() {
		d, _ := c.decel.Tick(dt)
		c.SetRotationAngle(c.rawRotation + d.X)
		if !c.decel.Active() {
			c.gestures.DecelerationDone()
		}
	}
}

// --- Queries ---

// EntryByTouchPoint returns the entry under a touch.
func (c *RadialChart) EntryByTouchPoint(x, y float64) (Entry, bool) {
	h, ok := c.HighlightByTouchPoint(x, y)
	if !ok {
		return Entry{}, false
	}
	set := c.data.DataSet(h.DataSetIndex)
	if set == nil {
		return Entry{}, false
	}
	return set.EntryForIndex(int(h.X))
}

// --- Gestures ---
//
// RadialChart implements GestureTarget. Pans rotate; pinches are ignored.

// Tap selects or deselects the slice under (x, y).
func (c *RadialChart) Tap(x, y float64) {
	if c.data.IsEmpty() {
		return
	}
	c.tapHighlight(x, y)
}

func (c *RadialChart) DoubleTap(x, y float64) {}

// PanBegin records the touch angle. Rotation starts once the finger has
// moved rotationThreshold pixels.
func (c *RadialChart) PanBegin(x, y, t float64) {
	c.StopDeceleration()
	c.spin = nil
	if c.data.IsEmpty() || !c.RotationEnabled {
		return
	}
	c.tracking = true
	c.panStart = Vec2{x, y}
	c.startAngle = c.AngleForPoint(x, y) - c.rawRotation
	c.sampler.Reset()
	c.sampler.Add(c.AngleForPoint(x, y), t)
}

// PanChange rotates the chart to follow the finger.
func (c *RadialChart) PanChange(x, y, t float64) {
	if !c.tracking {
		return
	}
	if !c.gestures.Is(GestureRotate) {
		if math.Hypot(x-c.panStart.X, y-c.panStart.Y) <= rotationThreshold {
			return
		}
		if err := c.gestures.Begin(GestureRotate); err != nil {
			c.log.Debug("rotation rejected", "err", err)
			c.tracking = false
			return
		}
	}
	angle := c.AngleForPoint(x, y)
	c.sampler.Add(angle, t)
	c.SetRotationAngle(angle - c.startAngle)
}

// PanEnd finishes a rotation and starts angular deceleration if enabled.
func (c *RadialChart) PanEnd(x, y, t float64) {
	if !c.tracking {
		return
	}
	c.PanChange(x, y, t)
	c.tracking = false
	if !c.gestures.Is(GestureRotate) {
		return
	}
	if c.DragDecelerationEnabled {
		c.decel.Start(Vec2{X: c.sampler.Velocity()})
	}
	c.gestures.End(GestureRotate, c.decel.Active())
}

// PanCancel abandons a rotation without deceleration.
func (c *RadialChart) PanCancel() {
	c.tracking = false
	c.gestures.Cancel(GestureRotate)
}

func (c *RadialChart) PinchBegin(cx, cy, spreadX, spreadY float64) {}
func (c *RadialChart) PinchChange(cx, cy, scale float64)           {}
func (c *RadialChart) PinchEnd()                                   {}
