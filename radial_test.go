package chartcore

import (
	"testing"

	"github.com/tanema/gween/ease"
)

// newTestPie lays out one slice per value on a 200x200 chart: centre
// (100, 100), radius 100.
func newTestPie(values ...float64) *RadialChart {
	es := make([]Entry, len(values))
	for i, v := range values {
		es[i] = Entry{X: float64(i), Y: v}
	}
	c := NewPieChart()
	c.SetData(NewChartData(NewDataSet("pie", KindPie, es...)))
	c.SetChartDimens(200, 200)
	return c
}

// newTestRadar has four spokes and a value axis of [0, 40]: 2.5 px per unit.
func newTestRadar() *RadialChart {
	c := NewRadarChart()
	c.YAxis.SpaceTop = 0
	c.SetData(NewChartData(
		NewDataSet("a", KindRadar, entries(0, 10, 1, 20, 2, 30, 3, 40)...),
		NewDataSet("b", KindRadar, entries(0, 40, 1, 30, 2, 20, 3, 10)...)))
	c.SetChartDimens(200, 200)
	return c
}

func TestRadialGeometry(t *testing.T) {
	c := newTestPie(25, 25, 25, 25)
	assertVec(t, "center", c.Center(), Vec2{100, 100})
	assertNear(t, "radius", c.Radius(), 100)
	assertNear(t, "distance", c.DistanceToCenter(130, 140), 50)
}

func TestAngleForPoint(t *testing.T) {
	c := newTestPie(25, 25, 25, 25)
	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"south", 100, 150, 90},
		{"west", 50, 100, 180},
		{"north", 100, 50, 270},
		{"south east", 150, 150, 45},
		{"south west", 50, 150, 135},
		{"north west", 50, 50, 225},
		{"north east", 150, 50, 315},
		{"centre", 100, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertNear(t, "angle", c.AngleForPoint(tt.x, tt.y), tt.want)
		})
	}
}

func TestPieAngles(t *testing.T) {
	c := newTestPie(10, 30, 60)
	want := []float64{36, 108, 216}
	wantAbs := []float64{36, 144, 360}
	for i := range want {
		assertNear(t, "draw angle", c.DrawAngles()[i], want[i])
		assertNear(t, "absolute angle", c.AbsoluteAngles()[i], wantAbs[i])
	}
}

func TestPieIndexForAngle(t *testing.T) {
	c := newTestPie(10, 30, 60)
	// The first slice starts at north (rotation 270).
	tests := []struct {
		angle float64
		want  int
	}{
		{300, 0},
		{10, 1},
		{110, 2},
		{269, 2},
	}
	for _, tt := range tests {
		if got := c.IndexForAngle(tt.angle); got != tt.want {
			t.Errorf("IndexForAngle(%v) = %d, want %d", tt.angle, got, tt.want)
		}
	}

	zero := newTestPie(0, 0)
	if got := zero.IndexForAngle(100); got != -1 {
		t.Errorf("all-zero pie: IndexForAngle = %d, want -1", got)
	}
	if _, ok := zero.HighlightByTouchPoint(150, 150); ok {
		t.Error("all-zero pie should not highlight")
	}
}

func TestPieHighlight(t *testing.T) {
	c := newTestPie(25, 25, 25, 25)
	tests := []struct {
		name string
		x, y float64
		want int
	}{
		{"north east", 150, 50, 0},
		{"south east", 150, 150, 1},
		{"south west", 50, 150, 2},
		{"north west", 50, 50, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := c.HighlightByTouchPoint(tt.x, tt.y)
			if !ok {
				t.Fatal("expected a highlight")
			}
			assertNear(t, "X", h.X, float64(tt.want))
			assertNear(t, "Y", h.Y, 25)
			if h.DataSetIndex != 0 {
				t.Errorf("DataSetIndex = %d", h.DataSetIndex)
			}
		})
	}

	if _, ok := c.HighlightByTouchPoint(199, 199); ok {
		t.Error("touch outside the radius should be rejected")
	}
}

func TestPieHighlightFollowsRotation(t *testing.T) {
	c := newTestPie(25, 25, 25, 25)
	c.SetRotationAngle(0)
	// Slice 0 now spans east to south.
	h, ok := c.HighlightByTouchPoint(150, 150)
	if !ok || h.X != 0 {
		t.Errorf("after rotation: %v ok=%v", h, ok)
	}
}

func TestRadarScale(t *testing.T) {
	c := newTestRadar()
	assertNear(t, "slice", c.SliceAngle(), 90)
	assertNear(t, "factor", c.Factor(), 2.5)
	r := c.AxisRange(AxisLeft)
	assertNear(t, "min", r.Min, 0)
	assertNear(t, "max", r.Max, 40)

	pie := newTestPie(1, 2)
	if pie.AxisRange(AxisLeft) != (AxisRange{}) {
		t.Error("pie has no value axis")
	}
	empty := NewRadarChart()
	assertNear(t, "empty slice", empty.SliceAngle(), 360)
	assertNear(t, "empty factor", empty.Factor(), 0)
}

func TestRadarIndexForAngle(t *testing.T) {
	c := newTestRadar()
	tests := []struct {
		angle float64
		want  int
	}{
		{270, 0},
		{300, 0},
		{250, 0}, // wraps back to the first spoke
		{0, 1},
		{90, 2},
		{180, 3},
	}
	for _, tt := range tests {
		if got := c.IndexForAngle(tt.angle); got != tt.want {
			t.Errorf("IndexForAngle(%v) = %d, want %d", tt.angle, got, tt.want)
		}
	}
}

func TestRadarHighlight(t *testing.T) {
	c := newTestRadar()
	tests := []struct {
		name    string
		x, y    float64
		wantX   float64
		wantY   float64
		wantSet int
		wantPx  Vec2
	}{
		{"east spoke on a", 150, 100, 1, 20, 0, Vec2{150, 100}},
		{"south spoke on a", 100, 175, 2, 30, 0, Vec2{100, 175}},
		{"south spoke on b", 100, 150, 2, 20, 1, Vec2{100, 150}},
		{"north spoke near b", 100, 5, 0, 40, 1, Vec2{100, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := c.HighlightByTouchPoint(tt.x, tt.y)
			if !ok {
				t.Fatal("expected a highlight")
			}
			assertHighlight(t, h, tt.wantX, tt.wantY, tt.wantPx.X, tt.wantPx.Y, tt.wantSet)
		})
	}

	if _, ok := c.HighlightByTouchPoint(100, 205); ok {
		t.Error("touch outside the radius should be rejected")
	}
	e, ok := c.EntryByTouchPoint(100, 150)
	if !ok || e.X != 2 || e.Y != 20 {
		t.Errorf("EntryByTouchPoint = %+v, %v", e, ok)
	}
}

func TestRadarHighlightsForIndex(t *testing.T) {
	c := newTestRadar()
	hs := c.Highlighter().(*RadarHighlighter).HighlightsForIndex(0)
	if len(hs) != 2 {
		t.Fatalf("got %d highlights, want 2", len(hs))
	}
	assertVec(t, "a", Vec2{hs[0].XPx, hs[0].YPx}, Vec2{100, 75})
	assertVec(t, "b", Vec2{hs[1].XPx, hs[1].YPx}, Vec2{100, 0})
}

func TestSetRotationAngle(t *testing.T) {
	c := newTestPie(1, 1)
	var got []float64
	c.OnChartRotated(func(a float64) { got = append(got, a) })

	c.SetRotationAngle(-90)
	assertNear(t, "rotation", c.RotationAngle(), 270)
	assertNear(t, "raw", c.RawRotationAngle(), -90)
	c.SetRotationAngle(725)
	assertNear(t, "rotation", c.RotationAngle(), 5)

	if len(got) != 2 || got[0] != 270 {
		t.Errorf("rotation events = %v", got)
	}
}

func TestRadialPanRotates(t *testing.T) {
	c := newTestPie(25, 25, 25, 25)
	c.SetRotationAngle(0)

	c.PanBegin(150, 150, 0) // 45 degrees
	c.PanChange(153, 153, 0.05)
	if c.GestureState() != GestureIdle {
		t.Fatalf("moves inside the threshold should not rotate, state %v", c.GestureState())
	}
	assertNear(t, "rotation inside threshold", c.RotationAngle(), 0)

	c.PanChange(50, 150, 0.1) // 135 degrees
	if c.GestureState() != GestureRotating {
		t.Fatalf("state = %v, want rotating", c.GestureState())
	}
	assertNear(t, "rotation", c.RotationAngle(), 90)

	c.PanEnd(50, 150, 0.1)
	if c.GestureState() != GestureDecelerating {
		t.Fatalf("state = %v, want decelerating", c.GestureState())
	}

	// 90 degrees in 0.1 s: 900 deg/s, 810 after one tick of friction.
	c.Tick(0.1)
	assertNear(t, "after tick", c.RotationAngle(), 171)

	c.PanBegin(100, 150, 1)
	if c.GestureState() != GestureIdle {
		t.Errorf("a new touch should stop deceleration, state %v", c.GestureState())
	}
}

func TestRadialPanWithoutDeceleration(t *testing.T) {
	c := newTestPie(25, 25, 25, 25)
	c.SetRotationAngle(0)
	c.DragDecelerationEnabled = false

	c.PanBegin(150, 150, 0)
	c.PanEnd(50, 150, 0.1)
	assertNear(t, "rotation", c.RotationAngle(), 90)
	if c.GestureState() != GestureIdle {
		t.Errorf("state = %v, want idle", c.GestureState())
	}
}

func TestRadialRotationDisabled(t *testing.T) {
	c := newTestPie(25, 25, 25, 25)
	c.RotationEnabled = false
	c.PanBegin(150, 150, 0)
	c.PanChange(50, 150, 0.1)
	assertNear(t, "rotation", c.RotationAngle(), DefaultRotationAngle)
}

func TestRadialPanCancel(t *testing.T) {
	c := newTestPie(25, 25, 25, 25)
	c.PanBegin(150, 150, 0)
	c.PanChange(50, 150, 0.1)
	c.PanCancel()
	if c.GestureState() != GestureIdle {
		t.Errorf("state = %v, want idle", c.GestureState())
	}
	c.PanChange(150, 50, 0.2)
	if c.GestureState() != GestureIdle {
		t.Error("changes after cancel should be ignored")
	}
}

func TestSpinAnimated(t *testing.T) {
	c := newTestPie(1, 1)
	c.SpinAnimated(1, 0, 90, ease.Linear)
	assertNear(t, "start", c.RotationAngle(), 0)
	if !c.Spinning() {
		t.Fatal("expected spinning")
	}
	c.Tick(0.5)
	assertNear(t, "half way", c.RotationAngle(), 45)
	c.Tick(0.5)
	assertNear(t, "end", c.RotationAngle(), 90)
	if c.Spinning() {
		t.Error("spin should be finished")
	}
}

func TestRadialTapToggles(t *testing.T) {
	c := newTestPie(25, 25, 25, 25)
	var selected []Highlight
	deselected := 0
	c.OnValueSelected(func(h Highlight) { selected = append(selected, h) })
	c.OnValueDeselected(func() { deselected++ })

	c.Tap(150, 50)
	if len(selected) != 1 || selected[0].X != 0 || len(c.Highlighted()) != 1 {
		t.Fatalf("first tap: selected %v", selected)
	}
	c.Tap(150, 50)
	if deselected != 1 || len(c.Highlighted()) != 0 {
		t.Errorf("second tap should deselect, got %d deselections", deselected)
	}
	c.Tap(199, 199)
	if deselected != 2 {
		t.Errorf("tap outside should clear the selection, got %d", deselected)
	}
}
