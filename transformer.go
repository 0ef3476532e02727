package chartcore

import "math"

// Transformer converts between value space and chart pixels for one value
// axis. The effective value-to-pixel matrix is
//
//	offset * touch * valuePx
//
// where valuePx maps axis ranges onto the content size, touch is the shared
// viewport pan/zoom matrix and offset places touch space inside the chart.
type Transformer struct {
	vp          *ViewPortHandler
	orientation Orientation

	valuePx Matrix
	offset  Matrix
}

// NewTransformer creates a transformer bound to the given viewport. The
// viewport is shared, not owned.
func NewTransformer(vp *ViewPortHandler, orientation Orientation) *Transformer {
	return &Transformer{
		vp:          vp,
		orientation: orientation,
		valuePx:     Identity,
		offset:      Identity,
	}
}

// Orientation returns the orientation the offset matrix is prepared for.
func (t *Transformer) Orientation() Orientation { return t.orientation }

// PrepareMatrixValuePx builds the value-to-pixel matrix. chartXMin and
// deltaX describe the axis laid out along pixel x, deltaY and chartYMin the
// axis laid out along pixel y. Horizontal charts pass the value axis as x
// and the domain axis as y.
func (t *Transformer) PrepareMatrixValuePx(chartXMin, deltaX, deltaY, chartYMin float64) {
	scaleX := t.vp.ContentWidth() / deltaX
	scaleY := t.vp.ContentHeight() / deltaY

	if math.IsInf(scaleX, 0) || math.IsNaN(scaleX) {
		scaleX = 0
	}
	if math.IsInf(scaleY, 0) || math.IsNaN(scaleY) {
		scaleY = 0
	}

	t.valuePx = Identity.Scaled(scaleX, -scaleY).Translated(-chartXMin, -chartYMin)
}

// PrepareMatrixOffset places touch space inside the chart. inverted flips the
// value axis so that larger values are drawn further from the origin edge.
func (t *Transformer) PrepareMatrixOffset(inverted bool) {
	vp := t.vp
	switch {
	case !inverted:
		t.offset = TranslateMatrix(vp.OffsetLeft(), vp.ChartHeight()-vp.OffsetBottom())
	case t.orientation == Horizontal:
		t.offset = ScaleMatrix(-1, 1).Translated(-(vp.ChartWidth() - vp.OffsetRight()), vp.ChartHeight()-vp.OffsetBottom())
	default:
		t.offset = ScaleMatrix(1, -1).Translated(vp.OffsetLeft(), -vp.OffsetTop())
	}
}

// ValueToPixelMatrix returns the full value-to-pixel transform.
func (t *Transformer) ValueToPixelMatrix() Matrix {
	return t.valuePx.Concat(t.vp.TouchMatrix()).Concat(t.offset)
}

// PixelToValueMatrix returns the inverse of ValueToPixelMatrix.
func (t *Transformer) PixelToValueMatrix() Matrix {
	return t.ValueToPixelMatrix().Inverted()
}

// PointValueToPixel converts a value-space point to chart pixels.
func (t *Transformer) PointValueToPixel(p Vec2) Vec2 {
	x, y := t.ValueToPixelMatrix().Apply(p.X, p.Y)
	return Vec2{x, y}
}

// PointValuesToPixel converts pts in place.
func (t *Transformer) PointValuesToPixel(pts []Vec2) {
	m := t.ValueToPixelMatrix()
	for i := range pts {
		pts[i].X, pts[i].Y = m.Apply(pts[i].X, pts[i].Y)
	}
}

// PixelToValues converts chart pixels to value space.
func (t *Transformer) PixelToValues(x, y float64) Vec2 {
	vx, vy := t.PixelToValueMatrix().Apply(x, y)
	return Vec2{vx, vy}
}

// RectValueToPixel transforms both corners of a value-space rect. The sides
// of the result are reversed when an axis is inverted; use Normalized before
// drawing.
func (t *Transformer) RectValueToPixel(r Rect) Rect {
	m := t.ValueToPixelMatrix()
	x0, y0 := m.Apply(r.X, r.Y)
	x1, y1 := m.Apply(r.X+r.Width, r.Y+r.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// RectValuesToPixel transforms rects in place.
func (t *Transformer) RectValuesToPixel(rects []Rect) {
	for i := range rects {
		rects[i] = t.RectValueToPixel(rects[i])
	}
}

// RectToPixelPhase scales the vertical extent of a bar rect by phaseY before
// transforming it. The rect's Y is the bar top value and Y+Height the bottom.
func (t *Transformer) RectToPixelPhase(r Rect, phaseY float64) Rect {
	top := r.Y * phaseY
	bottom := (r.Y + r.Height) * phaseY
	r.Y = top
	r.Height = bottom - top
	return t.RectValueToPixel(r)
}

// RectToPixelPhaseHorizontal is RectToPixelPhase for horizontal bars, where
// the value extent runs along x.
func (t *Transformer) RectToPixelPhaseHorizontal(r Rect, phaseY float64) Rect {
	left := r.X * phaseY
	right := (r.X + r.Width) * phaseY
	r.X = left
	r.Width = right - left
	return t.RectValueToPixel(r)
}
