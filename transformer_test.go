package chartcore

import "testing"

// newTestTransformer returns a vertical transformer for a 200x100 chart
// without offsets, mapping x in [0, 10] and y in [0, 50].
func newTestTransformer(inverted bool) (*ViewPortHandler, *Transformer) {
	vp := NewViewPortHandler()
	vp.SetChartDimens(200, 100)
	tr := NewTransformer(vp, Vertical)
	tr.PrepareMatrixValuePx(0, 10, 50, 0)
	tr.PrepareMatrixOffset(inverted)
	return vp, tr
}

func TestTransformerValueToPixel(t *testing.T) {
	_, tr := newTestTransformer(false)

	tests := []struct {
		name  string
		value Vec2
		want  Vec2
	}{
		{"origin is bottom-left", Vec2{0, 0}, Vec2{0, 100}},
		{"centre", Vec2{5, 25}, Vec2{100, 50}},
		{"top-right", Vec2{10, 50}, Vec2{200, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, "pixel", tr.PointValueToPixel(tt.value), tt.want)
			assertVec(t, "round trip", tr.PixelToValues(tt.want.X, tt.want.Y), tt.value)
		})
	}
}

func TestTransformerInverted(t *testing.T) {
	_, tr := newTestTransformer(true)
	assertVec(t, "zero at top", tr.PointValueToPixel(Vec2{0, 0}), Vec2{0, 0})
	assertVec(t, "max at bottom", tr.PointValueToPixel(Vec2{10, 50}), Vec2{200, 100})
}

func TestTransformerHorizontalInverted(t *testing.T) {
	vp := NewViewPortHandler()
	vp.SetChartDimens(200, 100)
	tr := NewTransformer(vp, Horizontal)
	// Value axis along pixel x, domain along pixel y.
	tr.PrepareMatrixValuePx(0, 50, 10, 0)
	tr.PrepareMatrixOffset(true)

	assertVec(t, "zero value at right", tr.PointValueToPixel(Vec2{0, 0}), Vec2{200, 100})
	assertVec(t, "max value at left", tr.PointValueToPixel(Vec2{50, 10}), Vec2{0, 0})
}

func TestTransformerFollowsTouchMatrix(t *testing.T) {
	vp, tr := newTestTransformer(false)
	vp.Refresh(vp.Zoom(2, 1, 0, 0), false)

	assertVec(t, "zoomed", tr.PointValueToPixel(Vec2{5, 25}), Vec2{200, 50})

	vp.Refresh(Matrix{2, 0, 0, 1, -100, 0}, false)
	assertVec(t, "panned", tr.PointValueToPixel(Vec2{5, 25}), Vec2{100, 50})
	assertVec(t, "inverse", tr.PixelToValues(0, 100), Vec2{2.5, 0})
}

func TestTransformerWithOffsets(t *testing.T) {
	vp := NewViewPortHandler()
	vp.SetChartDimens(220, 120)
	vp.RestrainViewPort(10, 5, 10, 15)
	tr := NewTransformer(vp, Vertical)
	tr.PrepareMatrixValuePx(0, 10, 50, 0)
	tr.PrepareMatrixOffset(false)

	assertVec(t, "origin", tr.PointValueToPixel(Vec2{0, 0}), Vec2{10, 105})
	assertVec(t, "max", tr.PointValueToPixel(Vec2{10, 50}), Vec2{210, 5})
}

func TestTransformerZeroDeltaIsSafe(t *testing.T) {
	vp := NewViewPortHandler()
	vp.SetChartDimens(200, 100)
	tr := NewTransformer(vp, Vertical)
	tr.PrepareMatrixValuePx(0, 0, 0, 0)
	if !tr.ValueToPixelMatrix().IsFinite() {
		t.Errorf("matrix should stay finite, got %v", tr.ValueToPixelMatrix())
	}
}

func TestTransformerPointValuesToPixel(t *testing.T) {
	_, tr := newTestTransformer(false)
	pts := []Vec2{{0, 0}, {10, 50}}
	tr.PointValuesToPixel(pts)
	assertVec(t, "pts[0]", pts[0], Vec2{0, 100})
	assertVec(t, "pts[1]", pts[1], Vec2{200, 0})
}

func TestTransformerRectToPixelPhase(t *testing.T) {
	_, tr := newTestTransformer(false)

	// Bar at x=4.5, width 1, from 0 up to 30.
	bar := Rect{X: 4, Y: 30, Width: 1, Height: -30}

	full := tr.RectToPixelPhase(bar, 1).Normalized()
	if full != (Rect{X: 80, Y: 40, Width: 20, Height: 60}) {
		t.Errorf("phase 1 = %+v", full)
	}

	half := tr.RectToPixelPhase(bar, 0.5).Normalized()
	if half != (Rect{X: 80, Y: 70, Width: 20, Height: 30}) {
		t.Errorf("phase 0.5 = %+v", half)
	}

	rects := []Rect{bar}
	tr.RectValuesToPixel(rects)
	if rects[0].Normalized() != full {
		t.Errorf("RectValuesToPixel = %+v, want %+v", rects[0].Normalized(), full)
	}
}

func TestTransformerRectToPixelPhaseHorizontal(t *testing.T) {
	vp := NewViewPortHandler()
	vp.SetChartDimens(200, 100)
	tr := NewTransformer(vp, Horizontal)
	tr.PrepareMatrixValuePx(0, 50, 10, 0)
	tr.PrepareMatrixOffset(false)

	// Horizontal bar at domain 4.5 with value 40.
	bar := Rect{X: 0, Y: 4, Width: 40, Height: 1}
	got := tr.RectToPixelPhaseHorizontal(bar, 0.5).Normalized()
	if got != (Rect{X: 0, Y: 50, Width: 80, Height: 10}) {
		t.Errorf("got %+v", got)
	}
}
