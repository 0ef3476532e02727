package chartcore

import (
	"math"
	"sync"

	"github.com/tanema/gween/ease"
)

// pinchAxis is the axis a non-uniform pinch scales.
type pinchAxis uint8

const (
	pinchBoth pinchAxis = iota
	pinchX
	pinchY
)

// BarLineChart is the controller shared by every cartesian chart: bar,
// horizontal bar, line, scatter, candle, bubble and combined. It owns the
// viewport, the axes and one transformer per value axis, and turns gestures
// into viewport changes and selections.
//
// All methods except SetViewPortOffsets must be called from the goroutine
// that calls Tick.
type BarLineChart struct {
	chartBase

	vp *ViewPortHandler

	XAxis     *XAxis
	LeftAxis  *YAxis
	RightAxis *YAxis

	leftTr  *Transformer
	rightTr *Transformer

	orientation Orientation
	barMode     BarMode

	data     *ChartData
	barData  *BarData
	combined *CombinedData

	DragEnabled             bool
	ScaleXEnabled           bool
	ScaleYEnabled           bool
	PinchZoomEnabled        bool
	DoubleTapToZoomEnabled  bool
	HighlightPerDragEnabled bool
	// AutoScaleMinMaxEnabled recomputes the value axes from the visible
	// entries on every Tick.
	AutoScaleMinMaxEnabled bool

	MaxVisibleValueCount int
	maxHighlightDistance float64

	// Default content offsets used until SetViewPortOffsets is called.
	MinOffset float64

	sampler   VelocitySampler
	panning   bool
	lastPan   Vec2
	// touchAxis is the axis of the data set closest to the current touch.
	touchAxis    AxisDependency
	hasTouchAxis bool
	pinchAxis pinchAxis

	customOffsets bool
	pendingJobs   []func()

	jobsMu      sync.Mutex
	offsetsJobs []func()

	view *TweenGroup
}

// NewChart creates a vertical line/scatter/candle/bubble style chart.
func NewChart() *BarLineChart {
	c := newBarLineChart(Vertical, BarModeNone)
	c.highlighter = NewChartHighlighter(c)
	return c
}

// NewBarChart creates a bar chart with the given orientation and layout.
func NewBarChart(orientation Orientation, mode BarMode) *BarLineChart {
	c := newBarLineChart(orientation, mode)
	c.highlighter = NewBarHighlighter(c, orientation, mode)
	return c
}

// NewCombinedChart creates a vertical chart that mixes data kinds. Bars are
// laid out with mode.
func NewCombinedChart(mode BarMode) *BarLineChart {
	c := newBarLineChart(Vertical, mode)
	c.highlighter = NewCombinedHighlighter(c, NewBarHighlighter(c, Vertical, mode))
	return c
}

func newBarLineChart(orientation Orientation, mode BarMode) *BarLineChart {
	vp := NewViewPortHandler()
	c := &BarLineChart{
		chartBase:              newChartBase(),
		vp:                     vp,
		XAxis:                  NewXAxis(),
		LeftAxis:               NewYAxis(AxisLeft),
		RightAxis:              NewYAxis(AxisRight),
		leftTr:                 NewTransformer(vp, orientation),
		rightTr:                NewTransformer(vp, orientation),
		orientation:            orientation,
		barMode:                mode,
		DragEnabled:            true,
		ScaleXEnabled:          true,
		ScaleYEnabled:          true,
		PinchZoomEnabled:       false,
		DoubleTapToZoomEnabled: true,
		MaxVisibleValueCount:   100,
		maxHighlightDistance:   DefaultMaxHighlightDistance,
		MinOffset:              10,
	}
	c.chartBase.init()
	vp.OnInvalidate(func() { c.dirty = true })
	c.animator.OnUpdate = func() { c.dirty = true }
	return c
}

// ViewPort returns the chart's viewport handler.
func (c *BarLineChart) ViewPort() *ViewPortHandler { return c.vp }

// Orientation returns the chart orientation.
func (c *BarLineChart) Orientation() Orientation { return c.orientation }

// BarMode returns the bar layout.
func (c *BarLineChart) BarMode() BarMode { return c.barMode }

// --- Data ---

// SetData binds line/scatter/candle/bubble data.
func (c *BarLineChart) SetData(d *ChartData) {
	c.data, c.barData, c.combined = d, nil, nil
	c.NotifyDataSetChanged()
}

// SetBarData binds bar data.
func (c *BarLineChart) SetBarData(d *BarData) {
	c.data, c.barData, c.combined = nil, d, nil
	if d != nil {
		c.data = d.ChartData
	}
	c.NotifyDataSetChanged()
}

// SetCombinedData binds mixed-kind data.
func (c *BarLineChart) SetCombinedData(d *CombinedData) {
	c.data, c.barData, c.combined = nil, nil, d
	if d != nil {
		c.barData = d.Bar
		c.data = d.Merged()
	}
	c.NotifyDataSetChanged()
}

// Data implements DataProvider. Combined charts return the union of their
// members.
func (c *BarLineChart) Data() *ChartData { return c.data }

// BarData implements BarDataProvider.
func (c *BarLineChart) BarData() *BarData { return c.barData }

// CombinedData implements CombinedDataProvider.
func (c *BarLineChart) CombinedData() *CombinedData { return c.combined }

// AxisRange implements DataProvider.
func (c *BarLineChart) AxisRange(dep AxisDependency) AxisRange {
	return c.axis(dep).AxisRange
}

// Transformer implements DataProvider.
func (c *BarLineChart) Transformer(dep AxisDependency) *Transformer {
	if dep == AxisRight {
		return c.rightTr
	}
	return c.leftTr
}

// MaxVisibleCount implements DataProvider.
func (c *BarLineChart) MaxVisibleCount() int { return c.MaxVisibleValueCount }

// MaxHighlightDistance implements DataProvider.
func (c *BarLineChart) MaxHighlightDistance() float64 { return c.maxHighlightDistance }

// SetMaxHighlightDistance sets the pixel radius within which touches select
// entries.
func (c *BarLineChart) SetMaxHighlightDistance(d float64) { c.maxHighlightDistance = d }

func (c *BarLineChart) axis(dep AxisDependency) *YAxis {
	if dep == AxisRight {
		return c.RightAxis
	}
	return c.LeftAxis
}

// NotifyDataSetChanged recomputes the axis ranges and matrices after the
// bound data changed. Empty data leaves the axes untouched.
func (c *BarLineChart) NotifyDataSetChanged() {
	if c.data.IsEmpty() {
		c.log.Debug("no data, skipping axis calculation")
		return
	}
	c.data.NotifyDataChanged()
	c.calcMinMax()
	c.prepareMatrices()
	c.dirty = true
}

func (c *BarLineChart) calcMinMax() {
	xMin, xMax := c.data.XMin(), c.data.XMax()
	if bd := c.barData; bd != nil && !bd.IsEmpty() {
		if c.barMode == BarModeGrouped && bd.DataSetCount() > 1 {
			xMin, xMax = bd.GroupedXExtent()
		} else {
			xMin = math.Min(xMin, bd.XMin()-bd.BarWidth/2)
			xMax = math.Max(xMax, bd.XMax()+bd.BarWidth/2)
		}
	}
	c.XAxis.Calculate(xMin, xMax)
	c.LeftAxis.Calculate(c.data.YMin(AxisLeft), c.data.YMax(AxisLeft))
	c.RightAxis.Calculate(c.data.YMin(AxisRight), c.data.YMax(AxisRight))
}

func (c *BarLineChart) prepareMatrices() {
	c.prepareValuePxMatrix()
	c.prepareOffsetMatrix()
}

func (c *BarLineChart) prepareValuePxMatrix() {
	x := c.XAxis
	if c.orientation == Horizontal {
		c.rightTr.PrepareMatrixValuePx(c.RightAxis.Min, c.RightAxis.Range, x.Range, x.Min)
		c.leftTr.PrepareMatrixValuePx(c.LeftAxis.Min, c.LeftAxis.Range, x.Range, x.Min)
		return
	}
	c.rightTr.PrepareMatrixValuePx(x.Min, x.Range, c.RightAxis.Range, c.RightAxis.Min)
	c.leftTr.PrepareMatrixValuePx(x.Min, x.Range, c.LeftAxis.Range, c.LeftAxis.Min)
}

func (c *BarLineChart) prepareOffsetMatrix() {
	c.rightTr.PrepareMatrixOffset(c.RightAxis.Inverted)
	c.leftTr.PrepareMatrixOffset(c.LeftAxis.Inverted)
}

// autoScale recomputes the value axes from the entries visible under the
// previous frame's transform. The result lags the viewport by one frame.
func (c *BarLineChart) autoScale() {
	if c.data.IsEmpty() {
		return
	}
	c.data.CalcMinMaxY(c.LowestVisibleX(), c.HighestVisibleX())
	c.LeftAxis.Calculate(c.data.YMin(AxisLeft), c.data.YMax(AxisLeft))
	c.RightAxis.Calculate(c.data.YMin(AxisRight), c.data.YMax(AxisRight))
	c.prepareValuePxMatrix()
}

// --- Layout ---

// SetChartDimens sets the chart size in pixels. Viewport jobs queued before
// the chart had dimensions run now.
func (c *BarLineChart) SetChartDimens(width, height float64) {
	c.vp.SetChartDimens(width, height)
	if !c.customOffsets {
		o := c.MinOffset
		c.vp.RestrainViewPort(o, o, o, o)
	}
	c.prepareMatrices()

	if c.vp.HasChartDimens() {
		jobs := c.pendingJobs
		c.pendingJobs = nil
		for _, job := range jobs {
			job()
		}
	}
	c.dirty = true
}

// SetViewPortOffsets fixes the content offsets instead of using MinOffset.
// It may be called from any goroutine; the change is applied on the next
// Tick.
func (c *BarLineChart) SetViewPortOffsets(left, top, right, bottom float64) {
	c.jobsMu.Lock()
	c.offsetsJobs = append(c.offsetsJobs, func() {
		c.customOffsets = true
		c.vp.RestrainViewPort(left, top, right, bottom)
		c.prepareMatrices()
		c.dirty = true
	})
	c.jobsMu.Unlock()
}

// ResetViewPortOffsets returns to MinOffset on the next Tick.
func (c *BarLineChart) ResetViewPortOffsets() {
	c.jobsMu.Lock()
	c.offsetsJobs = append(c.offsetsJobs, func() {
		c.customOffsets = false
		o := c.MinOffset
		c.vp.RestrainViewPort(o, o, o, o)
		c.prepareMatrices()
		c.dirty = true
	})
	c.jobsMu.Unlock()
}

func (c *BarLineChart) drainOffsetJobs() {
	c.jobsMu.Lock()
	jobs := c.offsetsJobs
	c.offsetsJobs = nil
	c.jobsMu.Unlock()
	for _, job := range jobs {
		job()
	}
}

// addViewportJob runs job now if the chart has dimensions, otherwise when
// SetChartDimens provides them.
func (c *BarLineChart) addViewportJob(job func()) {
	if c.vp.HasChartDimens() {
		job()
		return
	}
	c.pendingJobs = append(c.pendingJobs, job)
}

// --- Frame ---

// Tick advances the chart by dt seconds: queued offset changes, animations,
// deceleration and auto-scaling, in that order.
func (c *BarLineChart) Tick(dt float64) {
	c.drainOffsetJobs()
	c.animator.Update(float32(dt))

	if c.view != nil {
		c.view.Update(float32(dt))
		if c.view.Done {
			c.view = nil
		}
	}

	if c.decel.Active() {
		dist, _ := c.decel.Tick(dt)
		if !c.PerformPanChange(dist) {
			c.decel.Reject()
		}
		if !c.decel.Active() {
			c.gestures.DecelerationDone()
		}
	}

	if c.AutoScaleMinMaxEnabled {
		c.autoScale()
	}
}

// --- Viewport operations ---

// touchPoint converts a chart pixel into touch space.
func (c *BarLineChart) touchPoint(x, y float64) Vec2 {
	vp := c.vp
	p := Vec2{X: x - vp.OffsetLeft()}
	if c.isTouchInverted() {
		p.Y = -(y - vp.OffsetTop())
	} else {
		p.Y = -(vp.ChartHeight() - y - vp.OffsetBottom())
	}
	return p
}

// isTouchInverted reports whether touch y runs downward: the axis of the
// data set closest to the touch decides, then the selected entry's axis,
// then the left axis.
func (c *BarLineChart) isTouchInverted() bool {
	if c.hasTouchAxis {
		return c.axis(c.touchAxis).Inverted
	}
	if h, ok := c.LastHighlighted(); ok {
		return c.axis(h.Axis).Inverted
	}
	return c.LeftAxis.Inverted
}

// trackTouchAxis records the axis of the data set closest to (x, y).
func (c *BarLineChart) trackTouchAxis(x, y float64) {
	h, ok := c.HighlightByTouchPoint(x, y)
	c.touchAxis, c.hasTouchAxis = h.Axis, ok
}

func (c *BarLineChart) refresh(op string, m Matrix) Matrix {
	got := c.vp.Refresh(m, true)
	c.debugMatrix(op, m, got)
	return got
}

// Zoom scales by (scaleX, scaleY) around the chart pixel (x, y).
func (c *BarLineChart) Zoom(scaleX, scaleY, x, y float64) {
	p := c.touchPoint(x, y)
	c.refresh("zoom", c.vp.Zoom(scaleX, scaleY, p.X, p.Y))
}

// ZoomIn zooms in by 1.4 around the content centre.
func (c *BarLineChart) ZoomIn() {
	ctr := c.vp.ContentCenter()
	p := c.touchPoint(ctr.X, ctr.Y)
	c.refresh("zoomIn", c.vp.ZoomIn(p.X, p.Y))
}

// ZoomOut zooms out by 0.7 around the content centre.
func (c *BarLineChart) ZoomOut() {
	ctr := c.vp.ContentCenter()
	p := c.touchPoint(ctr.X, ctr.Y)
	c.refresh("zoomOut", c.vp.ZoomOut(p.X, p.Y))
}

// ResetZoom sets both scale factors back to 1.
func (c *BarLineChart) ResetZoom() {
	c.refresh("resetZoom", c.vp.ResetZoom())
}

// SetZoom sets absolute scale factors.
func (c *BarLineChart) SetZoom(scaleX, scaleY float64) {
	c.refresh("setZoom", c.vp.SetZoom(scaleX, scaleY))
}

// ZoomToCenter scales by (scaleX, scaleY) around the content centre.
func (c *BarLineChart) ZoomToCenter(scaleX, scaleY float64) {
	ctr := c.vp.ContentCenter()
	c.Zoom(scaleX, scaleY, ctr.X, ctr.Y)
}

// FitScreen resets all zooming and panning.
func (c *BarLineChart) FitScreen() {
	c.refresh("fitScreen", c.vp.FitScreen())
}

func (c *BarLineChart) ScaleX() float64 { return c.vp.ScaleX() }
func (c *BarLineChart) ScaleY() float64 { return c.vp.ScaleY() }

// SetVisibleXRangeMaximum limits zooming out so at most maxRange x units are
// visible.
func (c *BarLineChart) SetVisibleXRangeMaximum(maxRange float64) {
	if maxRange > 0 {
		c.vp.SetMinimumScaleX(c.XAxis.Range / maxRange)
	}
}

// SetVisibleXRangeMinimum limits zooming in so at least minRange x units are
// visible.
func (c *BarLineChart) SetVisibleXRangeMinimum(minRange float64) {
	if minRange > 0 {
		c.vp.SetMaximumScaleX(c.XAxis.Range / minRange)
	}
}

// SetVisibleYRangeMaximum limits zooming out on one value axis.
func (c *BarLineChart) SetVisibleYRangeMaximum(maxRange float64, dep AxisDependency) {
	if maxRange > 0 {
		c.vp.SetMinimumScaleY(c.AxisRange(dep).Range / maxRange)
	}
}

// MoveViewToX scrolls so that xValue is the left edge of the content.
func (c *BarLineChart) MoveViewToX(xValue float64) {
	c.moveView(xValue, 0, AxisLeft)
}

// MoveViewTo scrolls so that xValue is the left edge and yValue the
// vertical centre of the content.
func (c *BarLineChart) MoveViewTo(xValue, yValue float64, dep AxisDependency) {
	yInView := c.AxisRange(dep).Range / c.vp.ScaleY()
	c.moveView(xValue, yValue+yInView/2, dep)
}

// CenterViewTo scrolls so that (xValue, yValue) is the content centre.
func (c *BarLineChart) CenterViewTo(xValue, yValue float64, dep AxisDependency) {
	yInView := c.AxisRange(dep).Range / c.vp.ScaleY()
	xInView := c.XAxis.Range / c.vp.ScaleX()
	c.moveView(xValue-xInView/2, yValue+yInView/2, dep)
}

func (c *BarLineChart) moveView(xValue, yValue float64, dep AxisDependency) {
	c.addViewportJob(func() {
		pt := c.PixelForValues(xValue, yValue, dep)
		want := c.vp.Translate(pt)
		c.refresh("moveView", want)
	})
}

// CenterViewToAnimated is CenterViewTo animated over duration seconds.
func (c *BarLineChart) CenterViewToAnimated(xValue, yValue float64, dep AxisDependency, duration float32, fn ease.TweenFunc) {
	c.ZoomAndCenterAnimated(1, 1, xValue, yValue, dep, duration, fn)
}

// ZoomAndCenterAnimated zooms by (scaleX, scaleY) relative to the current
// zoom while centring (xValue, yValue), animated over duration seconds.
func (c *BarLineChart) ZoomAndCenterAnimated(scaleX, scaleY, xValue, yValue float64, dep AxisDependency, duration float32, fn ease.TweenFunc) {
	c.addViewportJob(func() {
		ctr := c.vp.ContentCenter()
		origin := c.ValuesByTouchPoint(ctr.X, ctr.Y, dep)
		sx, sy := c.vp.ScaleX(), c.vp.ScaleY()
		x, y := origin.X, origin.Y
		apply := func() {
			c.refresh("animatedZoom", c.vp.SetZoom(sx, sy))
			xInView := c.XAxis.Range / c.vp.ScaleX()
			yInView := c.AxisRange(dep).Range / c.vp.ScaleY()
			pt := c.PixelForValues(x-xInView/2, y+yInView/2, dep)
			c.vp.CenterViewPort(pt, true)
		}
		c.view = newTweenGroup(apply, duration, fn,
			tweenField{&sx, sx * scaleX},
			tweenField{&sy, sy * scaleY},
			tweenField{&x, xValue},
			tweenField{&y, yValue})
	})
}

// PerformPanChange pans by (dx, dy) pixels and reports whether the viewport
// actually moved. A false result means the pan was refused at a boundary.
func (c *BarLineChart) PerformPanChange(d Vec2) bool {
	if c.isTouchInverted() {
		if c.orientation == Horizontal {
			d.X = -d.X
		} else {
			d.Y = -d.Y
		}
	}
	before := c.vp.TouchMatrix()
	after := c.refresh("pan", before.Concat(TranslateMatrix(d.X, d.Y)))
	c.events.fire(ChartEvent{Type: EventChartTranslated, DX: d.X, DY: d.Y})
	return after[4] != before[4] || after[5] != before[5]
}

// --- Queries ---

// ValuesByTouchPoint converts a chart pixel to value space on one axis.
func (c *BarLineChart) ValuesByTouchPoint(x, y float64, dep AxisDependency) Vec2 {
	return c.Transformer(dep).PixelToValues(x, y)
}

// PixelForValues converts a value-space point on one axis to chart pixels.
func (c *BarLineChart) PixelForValues(x, y float64, dep AxisDependency) Vec2 {
	return c.Transformer(dep).PointValueToPixel(Vec2{x, y})
}

// EntryByTouchPoint returns the entry under a touch.
func (c *BarLineChart) EntryByTouchPoint(x, y float64) (Entry, bool) {
	h, ok := c.HighlightByTouchPoint(x, y)
	if !ok {
		return Entry{}, false
	}
	data := c.data
	if c.combined != nil && h.DataIndex >= 0 {
		if all := c.combined.AllData(); h.DataIndex < len(all) {
			data = all[h.DataIndex]
		}
	}
	return data.EntryForHighlight(h)
}

// LowestVisibleX returns the smallest x value inside the content rect.
func (c *BarLineChart) LowestVisibleX() float64 {
	vp := c.vp
	var v float64
	if c.orientation == Horizontal {
		v = c.leftTr.PixelToValues(vp.ContentLeft(), vp.ContentBottom()).Y
	} else {
		v = c.leftTr.PixelToValues(vp.ContentLeft(), vp.ContentBottom()).X
	}
	return math.Max(c.XAxis.Min, v)
}

// HighestVisibleX returns the largest x value inside the content rect.
func (c *BarLineChart) HighestVisibleX() float64 {
	vp := c.vp
	var v float64
	if c.orientation == Horizontal {
		v = c.leftTr.PixelToValues(vp.ContentLeft(), vp.ContentTop()).Y
	} else {
		v = c.leftTr.PixelToValues(vp.ContentRight(), vp.ContentBottom()).X
	}
	return math.Min(c.XAxis.Max, v)
}

// BarBounds returns the pixel rectangle of a bar, scaled by the animator's
// PhaseY. ok is false when there is no such bar.
func (c *BarLineChart) BarBounds(setIndex, entryIndex int) (Rect, bool) {
	e, ok := c.barEntry(setIndex, entryIndex)
	if !ok {
		return Rect{}, false
	}
	lo, hi := math.Min(0, e.Y), math.Max(0, e.Y)
	return c.barRect(setIndex, entryIndex, lo, hi), true
}

// StackSegmentBounds returns the pixel rectangle of one segment of a
// stacked bar.
func (c *BarLineChart) StackSegmentBounds(setIndex, entryIndex, stackIndex int) (Rect, bool) {
	e, ok := c.barEntry(setIndex, entryIndex)
	if !ok || stackIndex < 0 || stackIndex >= len(e.Stack) {
		return Rect{}, false
	}
	rg := e.StackRanges()[stackIndex]
	return c.barRect(setIndex, entryIndex, math.Min(rg.From, rg.To), math.Max(rg.From, rg.To)), true
}

func (c *BarLineChart) barEntry(setIndex, entryIndex int) (Entry, bool) {
	if c.barData == nil {
		return Entry{}, false
	}
	set := c.barData.DataSet(setIndex)
	if set == nil {
		return Entry{}, false
	}
	return set.EntryForIndex(entryIndex)
}

// barRect converts the value extent [lo, hi] of bar (setIndex, entryIndex)
// to pixels.
func (c *BarLineChart) barRect(setIndex, entryIndex int, lo, hi float64) Rect {
	bd := c.barData
	set := bd.DataSet(setIndex)
	e, _ := set.EntryForIndex(entryIndex)

	center, width := e.X, bd.BarWidth
	if c.barMode == BarModeGrouped && bd.DataSetCount() > 1 {
		center = bd.GroupedBarX(entryIndex, setIndex)
	}
	tr := c.Transformer(set.Axis)
	if c.orientation == Horizontal {
		r := Rect{X: lo, Y: center - width/2, Width: hi - lo, Height: width}
		return tr.RectToPixelPhaseHorizontal(r, c.PhaseY())
	}
	r := Rect{X: center - width/2, Y: hi, Width: width, Height: lo - hi}
	return tr.RectToPixelPhase(r, c.PhaseY())
}

// --- Gestures ---
//
// BarLineChart implements GestureTarget.

// Tap selects or deselects the entry under (x, y).
func (c *BarLineChart) Tap(x, y float64) {
	if c.data.IsEmpty() {
		return
	}
	c.tapHighlight(x, y)
}

// DoubleTap zooms in by 1.4 around (x, y).
func (c *BarLineChart) DoubleTap(x, y float64) {
	if c.data.IsEmpty() || !c.DoubleTapToZoomEnabled {
		return
	}
	sx, sy := 1.0, 1.0
	if c.ScaleXEnabled {
		sx = 1.4
	}
	if c.ScaleYEnabled {
		sy = 1.4
	}
	c.trackTouchAxis(x, y)
	c.Zoom(sx, sy, x, y)
	c.events.fire(ChartEvent{Type: EventChartScaled, ScaleX: sx, ScaleY: sy})
}

// PanBegin starts a pan at (x, y). t is the event time in seconds.
func (c *BarLineChart) PanBegin(x, y, t float64) {
	c.StopDeceleration()
	if c.data.IsEmpty() || (!c.DragEnabled && !c.HighlightPerDragEnabled) {
		return
	}
	if err := c.gestures.Begin(GesturePan); err != nil {
		c.log.Debug("pan rejected", "err", err)
		return
	}
	// Panning moves the viewport only when there is somewhere to go;
	// otherwise a drag scrubs the selection.
	c.panning = c.DragEnabled && (!c.vp.HasNoDragOffset() || !c.vp.IsFullyZoomedOut())
	c.trackTouchAxis(x, y)
	c.lastPan = Vec2{x, y}
	c.sampler.Reset()
	c.sampler.Add(c.lastPan, t)
	if !c.panning && c.HighlightPerDragEnabled {
		c.dragHighlight(x, y)
	}
}

// PanChange continues a pan at (x, y).
func (c *BarLineChart) PanChange(x, y, t float64) {
	if !c.gestures.Is(GesturePan) {
		return
	}
	if c.panning {
		c.PerformPanChange(Vec2{x - c.lastPan.X, y - c.lastPan.Y})
	} else if c.HighlightPerDragEnabled {
		c.dragHighlight(x, y)
	}
	c.lastPan = Vec2{x, y}
	c.sampler.Add(c.lastPan, t)
}

// PanEnd finishes a pan and starts deceleration if enabled.
func (c *BarLineChart) PanEnd(x, y, t float64) {
	if !c.gestures.Is(GesturePan) {
		return
	}
	if x != c.lastPan.X || y != c.lastPan.Y {
		c.PanChange(x, y, t)
	}
	if c.panning && c.DragDecelerationEnabled {
		c.decel.Start(c.sampler.Velocity())
	}
	c.panning = false
	c.gestures.End(GesturePan, c.decel.Active())
}

// PanCancel abandons a pan without deceleration.
func (c *BarLineChart) PanCancel() {
	c.panning = false
	c.gestures.Cancel(GesturePan)
}

// PinchBegin starts a pinch centred on (cx, cy). spreadX and spreadY are the
// initial horizontal and vertical distances between the fingers and select
// the scaled axis when PinchZoomEnabled is false.
func (c *BarLineChart) PinchBegin(cx, cy, spreadX, spreadY float64) {
	c.StopDeceleration()
	if c.data.IsEmpty() || !(c.PinchZoomEnabled || c.ScaleXEnabled || c.ScaleYEnabled) {
		return
	}
	if err := c.gestures.Begin(GesturePinch); err != nil {
		c.log.Debug("pinch rejected", "err", err)
		return
	}
	c.trackTouchAxis(cx, cy)
	switch {
	case c.PinchZoomEnabled:
		c.pinchAxis = pinchBoth
	case c.ScaleXEnabled != c.ScaleYEnabled:
		if c.ScaleXEnabled {
			c.pinchAxis = pinchX
		} else {
			c.pinchAxis = pinchY
		}
	case math.Abs(spreadX) > math.Abs(spreadY):
		c.pinchAxis = pinchX
	default:
		c.pinchAxis = pinchY
	}
}

// PinchChange scales by the relative factor scale since the previous change.
// Scaling stops at the zoom limits without touching the other axis.
func (c *BarLineChart) PinchChange(cx, cy, scale float64) {
	if !c.gestures.Is(GesturePinch) || scale <= 0 {
		return
	}
	zoomingOut := scale < 1
	canX := c.vp.CanZoomInMoreX()
	canY := c.vp.CanZoomInMoreY()
	if zoomingOut {
		canX = c.vp.CanZoomOutMoreX()
		canY = c.vp.CanZoomOutMoreY()
	}
	if !canX && !canY {
		return
	}
	sx, sy := 1.0, 1.0
	if canX && c.ScaleXEnabled && c.pinchAxis != pinchY {
		sx = scale
	}
	if canY && c.ScaleYEnabled && c.pinchAxis != pinchX {
		sy = scale
	}
	p := c.touchPoint(cx, cy)
	c.refresh("pinch", c.vp.Zoom(sx, sy, p.X, p.Y))
	c.events.fire(ChartEvent{Type: EventChartScaled, ScaleX: sx, ScaleY: sy})
}

// PinchEnd finishes a pinch.
func (c *BarLineChart) PinchEnd() {
	c.gestures.End(GesturePinch, false)
}
