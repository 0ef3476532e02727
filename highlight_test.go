package chartcore

import (
	"math"
	"testing"
)

// zeroBasedAxes removes padding so value axes span exactly [0, max].
func zeroBasedAxes(axes ...*YAxis) {
	for _, a := range axes {
		a.SpaceTop, a.SpaceBottom = 0, 0
		a.StartAtZero = true
	}
}

// newTestLineChart lays out sets on a 400x200 chart without offsets.
func newTestLineChart(sets ...*DataSet) *BarLineChart {
	c := NewChart()
	c.MinOffset = 0
	zeroBasedAxes(c.LeftAxis, c.RightAxis)
	c.SetData(NewChartData(sets...))
	c.SetChartDimens(400, 200)
	return c
}

// newTestBarChart lays out bar data on a 400x200 chart without offsets.
func newTestBarChart(orientation Orientation, mode BarMode, bd *BarData) *BarLineChart {
	c := NewBarChart(orientation, mode)
	c.MinOffset = 0
	zeroBasedAxes(c.LeftAxis, c.RightAxis)
	c.SetBarData(bd)
	c.SetChartDimens(400, 200)
	return c
}

// rampSet is x 0..4 with y = 10x: 100 px per x unit and 5 px per y unit on
// the test chart.
func rampSet() *DataSet {
	return NewDataSet("ramp", KindLine, entries(0, 0, 1, 10, 2, 20, 3, 30, 4, 40)...)
}

func assertHighlight(t *testing.T, got Highlight, x, y, xPx, yPx float64, set int) {
	t.Helper()
	assertNear(t, "X", got.X, x)
	assertNear(t, "Y", got.Y, y)
	assertNear(t, "XPx", got.XPx, xPx)
	assertNear(t, "YPx", got.YPx, yPx)
	if got.DataSetIndex != set {
		t.Errorf("DataSetIndex = %d, want %d", got.DataSetIndex, set)
	}
}

func TestHighlightNearestEntry(t *testing.T) {
	c := newTestLineChart(rampSet())
	tests := []struct {
		name   string
		x, y   float64
		wantX  float64
		wantY  float64
		wantPx Vec2
	}{
		{"on entry", 100, 150, 1, 10, Vec2{100, 150}},
		{"between entries", 140, 150, 1, 10, Vec2{100, 150}},
		{"past midpoint", 260, 50, 3, 30, Vec2{300, 50}},
		{"left edge", 0, 0, 0, 0, Vec2{0, 200}},
		{"right edge", 400, 100, 4, 40, Vec2{400, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := c.HighlightByTouchPoint(tt.x, tt.y)
			if !ok {
				t.Fatal("expected a highlight")
			}
			assertHighlight(t, h, tt.wantX, tt.wantY, tt.wantPx.X, tt.wantPx.Y, 0)
			if h.StackIndex != -1 || h.DataIndex != -1 {
				t.Errorf("StackIndex/DataIndex = %d/%d, want -1/-1", h.StackIndex, h.DataIndex)
			}
			assertNear(t, "DrawX", h.DrawX, tt.wantPx.X)
			assertNear(t, "DrawY", h.DrawY, tt.wantPx.Y)
		})
	}
}

func TestHighlightMaxDistance(t *testing.T) {
	c := newTestLineChart(rampSet())
	c.SetMaxHighlightDistance(5)

	if _, ok := c.HighlightByTouchPoint(100, 100); ok {
		t.Error("touch 50px away should be rejected")
	}
	if _, ok := c.HighlightByTouchPoint(103, 149); !ok {
		t.Error("touch within 5px should be accepted")
	}
}

func TestHighlightPicksClosestAxis(t *testing.T) {
	left := NewDataSet("left", KindLine, entries(0, 10, 2, 10, 4, 40)...)
	right := NewDataSet("right", KindLine, entries(0, 100, 2, 100, 4, 100)...)
	right.Axis = AxisRight
	c := newTestLineChart(left, right)

	onLeft := c.PixelForValues(2, 10, AxisLeft)
	onRight := c.PixelForValues(2, 100, AxisRight)
	if math.Abs(onLeft.Y-onRight.Y) < 20 {
		t.Fatalf("fixture entries too close: %v %v", onLeft, onRight)
	}

	h, ok := c.HighlightByTouchPoint(onRight.X, onRight.Y+3)
	if !ok || h.DataSetIndex != 1 || h.Axis != AxisRight {
		t.Errorf("near right entry: %v ok=%v", h, ok)
	}
	h, ok = c.HighlightByTouchPoint(onLeft.X, onLeft.Y-3)
	if !ok || h.DataSetIndex != 0 || h.Axis != AxisLeft {
		t.Errorf("near left entry: %v ok=%v", h, ok)
	}
}

func TestHighlightSkipsDisabledSets(t *testing.T) {
	s := rampSet()
	s.HighlightEnabled = false
	c := newTestLineChart(s)
	if _, ok := c.HighlightByTouchPoint(100, 150); ok {
		t.Error("disabled set should not highlight")
	}
}

func TestHighlightEmptyChart(t *testing.T) {
	c := NewChart()
	c.SetChartDimens(400, 200)
	if _, ok := c.HighlightByTouchPoint(10, 10); ok {
		t.Error("empty chart should not highlight")
	}
	c.SetData(NewChartData())
	if _, ok := c.HighlightByTouchPoint(10, 10); ok {
		t.Error("chart without sets should not highlight")
	}
}

func TestHighlightFollowsZoom(t *testing.T) {
	c := newTestLineChart(rampSet())
	c.Zoom(2, 1, 0, 200)

	// x = 1 is now 200 px from the left edge.
	h, ok := c.HighlightByTouchPoint(200, 150)
	if !ok {
		t.Fatal("expected a highlight")
	}
	assertHighlight(t, h, 1, 10, 200, 150, 0)
}

func TestHighlightEqual(t *testing.T) {
	a := newHighlight(1, 2, 10, 20, 0, AxisLeft)
	b := newHighlight(1, 2, 99, 99, 0, AxisLeft)
	if !a.Equal(b) {
		t.Error("pixel positions should not affect equality")
	}
	b.StackIndex = 1
	if a.Equal(b) {
		t.Error("different stack index should differ")
	}
	if a.IsStacked() || !b.IsStacked() {
		t.Error("IsStacked")
	}
}
