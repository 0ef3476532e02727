package chartcore

import "math"

// ViewPortHandler owns the pan/zoom state of a chart: the touch matrix, the
// content rectangle inside which data is drawn, and the zoom limits.
//
// The touch matrix operates in "touch space": the origin is the bottom-left
// corner of the content rect, x grows rightward and y grows downward (values
// above the bottom edge are negative). Every matrix produced by Refresh keeps
// MinScaleX <= ScaleX <= MaxScaleX and MinScaleY <= ScaleY <= MaxScaleY.
type ViewPortHandler struct {
	touch   Matrix
	content Rect

	chartWidth  float64
	chartHeight float64

	minScaleX, maxScaleX float64
	minScaleY, maxScaleY float64

	// Over-pan margins in pixels.
	transOffsetX float64
	transOffsetY float64

	onInvalidate func()
}

// NewViewPortHandler creates a handler with no dimensions, identity touch
// matrix and unbounded zoom-in.
func NewViewPortHandler() *ViewPortHandler {
	return &ViewPortHandler{
		touch:     Identity,
		minScaleX: 1,
		maxScaleX: math.MaxFloat64,
		minScaleY: 1,
		maxScaleY: math.MaxFloat64,
	}
}

// OnInvalidate registers the function called whenever a refresh asks for a
// redraw. Only one function is kept.
func (v *ViewPortHandler) OnInvalidate(fn func()) {
	v.onInvalidate = fn
}

// --- Dimensions ---

// SetChartDimens sets the outer chart size and keeps the current offsets.
func (v *ViewPortHandler) SetChartDimens(width, height float64) {
	left, top := v.OffsetLeft(), v.OffsetTop()
	right, bottom := v.OffsetRight(), v.OffsetBottom()

	v.chartWidth = width
	v.chartHeight = height

	v.RestrainViewPort(left, top, right, bottom)
}

// HasChartDimens reports whether both chart dimensions are positive.
func (v *ViewPortHandler) HasChartDimens() bool {
	return v.chartWidth > 0 && v.chartHeight > 0
}

// RestrainViewPort shrinks the chart bounds by the given offsets to form the
// content rect.
func (v *ViewPortHandler) RestrainViewPort(left, top, right, bottom float64) {
	v.content = Rect{
		X:      left,
		Y:      top,
		Width:  v.chartWidth - left - right,
		Height: v.chartHeight - top - bottom,
	}
}

func (v *ViewPortHandler) ContentRect() Rect     { return v.content }
func (v *ViewPortHandler) ContentWidth() float64  { return v.content.Width }
func (v *ViewPortHandler) ContentHeight() float64 { return v.content.Height }
func (v *ViewPortHandler) ContentCenter() Vec2    { return v.content.Center() }
func (v *ViewPortHandler) ChartWidth() float64    { return v.chartWidth }
func (v *ViewPortHandler) ChartHeight() float64   { return v.chartHeight }

func (v *ViewPortHandler) OffsetLeft() float64 { return v.content.X }
func (v *ViewPortHandler) OffsetTop() float64  { return v.content.Y }

func (v *ViewPortHandler) OffsetRight() float64 {
	return v.chartWidth - v.content.X - v.content.Width
}

func (v *ViewPortHandler) OffsetBottom() float64 {
	return v.chartHeight - v.content.Y - v.content.Height
}

// ContentLeft, ContentRight, ContentTop and ContentBottom return the content
// rect edges in chart pixels.
func (v *ViewPortHandler) ContentLeft() float64   { return v.content.X }
func (v *ViewPortHandler) ContentRight() float64  { return v.content.X + v.content.Width }
func (v *ViewPortHandler) ContentTop() float64    { return v.content.Y }
func (v *ViewPortHandler) ContentBottom() float64 { return v.content.Y + v.content.Height }

// --- Zoom ---

// Zoom returns a candidate touch matrix scaled by (scaleX, scaleY) around the
// touch-space pivot (x, y). The handler is not modified; pass the result to
// Refresh.
func (v *ViewPortHandler) Zoom(scaleX, scaleY, x, y float64) Matrix {
	z := TranslateMatrix(x, y).Scaled(scaleX, scaleY).Translated(-x, -y)
	return v.touch.Concat(z)
}

// ZoomIn returns a candidate matrix zoomed in by 1.4 around (x, y).
func (v *ViewPortHandler) ZoomIn(x, y float64) Matrix {
	return v.Zoom(1.4, 1.4, x, y)
}

// ZoomOut returns a candidate matrix zoomed out by 0.7 around (x, y).
func (v *ViewPortHandler) ZoomOut(x, y float64) Matrix {
	return v.Zoom(0.7, 0.7, x, y)
}

// SetZoom returns a candidate matrix with absolute scale factors.
func (v *ViewPortHandler) SetZoom(scaleX, scaleY float64) Matrix {
	m := v.touch
	m[0] = scaleX
	m[3] = scaleY
	return m
}

// ResetZoom returns a candidate matrix with both scale factors set to 1.
func (v *ViewPortHandler) ResetZoom() Matrix {
	return v.SetZoom(1, 1)
}

// FitScreen resets the minimum scales to 1 and returns the identity matrix
// as the candidate.
func (v *ViewPortHandler) FitScreen() Matrix {
	v.minScaleX = 1
	v.minScaleY = 1
	return Identity
}

// Translate returns a candidate matrix that moves the chart pixel pt to the
// content origin.
func (v *ViewPortHandler) Translate(pt Vec2) Matrix {
	tx := pt.X - v.OffsetLeft()
	ty := pt.Y - v.OffsetTop()
	return v.touch.Concat(TranslateMatrix(-tx, -ty))
}

// CenterViewPort translates so that pt is placed at the content origin and
// applies the result.
func (v *ViewPortHandler) CenterViewPort(pt Vec2, invalidate bool) Matrix {
	return v.Refresh(v.Translate(pt), invalidate)
}

// --- Refresh ---

// Refresh clamps m to the zoom and pan limits, stores it as the touch matrix
// and returns the stored value. Callers compare the result with what they
// asked for to detect a partially rejected change. Before the chart has
// dimensions, or while offsets leave no content area, Refresh is a no-op
// returning the current matrix.
func (v *ViewPortHandler) Refresh(m Matrix, invalidate bool) Matrix {
	if !v.HasChartDimens() || v.content.Width <= 0 || v.content.Height <= 0 {
		return v.touch
	}
	v.touch = v.limitTransAndScale(m)
	if invalidate && v.onInvalidate != nil {
		v.onInvalidate()
	}
	return v.touch
}

func (v *ViewPortHandler) limitTransAndScale(m Matrix) Matrix {
	scaleX := clamp(m[0], v.minScaleX, v.maxScaleX)
	scaleY := clamp(m[3], v.minScaleY, v.maxScaleY)

	width := v.content.Width
	height := v.content.Height

	maxTransX := -width * (scaleX - 1)
	transX := math.Min(math.Max(m[4], maxTransX-v.transOffsetX), v.transOffsetX)

	maxTransY := height * (scaleY - 1)
	transY := math.Max(math.Min(m[5], maxTransY+v.transOffsetY), -v.transOffsetY)

	m[0] = scaleX
	m[3] = scaleY
	m[4] = transX
	m[5] = transY
	return m
}

// --- State ---

func (v *ViewPortHandler) TouchMatrix() Matrix { return v.touch }
func (v *ViewPortHandler) ScaleX() float64     { return v.touch[0] }
func (v *ViewPortHandler) ScaleY() float64     { return v.touch[3] }
func (v *ViewPortHandler) TransX() float64     { return v.touch[4] }
func (v *ViewPortHandler) TransY() float64     { return v.touch[5] }

func (v *ViewPortHandler) MinScaleX() float64 { return v.minScaleX }
func (v *ViewPortHandler) MaxScaleX() float64 { return v.maxScaleX }
func (v *ViewPortHandler) MinScaleY() float64 { return v.minScaleY }
func (v *ViewPortHandler) MaxScaleY() float64 { return v.maxScaleY }

// IsFullyZoomedOut reports whether both axes sit at their minimum scale.
func (v *ViewPortHandler) IsFullyZoomedOut() bool {
	return v.IsFullyZoomedOutX() && v.IsFullyZoomedOutY()
}

func (v *ViewPortHandler) IsFullyZoomedOutX() bool { return v.ScaleX() <= v.minScaleX }
func (v *ViewPortHandler) IsFullyZoomedOutY() bool { return v.ScaleY() <= v.minScaleY }

func (v *ViewPortHandler) CanZoomInMoreX() bool  { return v.ScaleX() < v.maxScaleX }
func (v *ViewPortHandler) CanZoomOutMoreX() bool { return v.ScaleX() > v.minScaleX }
func (v *ViewPortHandler) CanZoomInMoreY() bool  { return v.ScaleY() < v.maxScaleY }
func (v *ViewPortHandler) CanZoomOutMoreY() bool { return v.ScaleY() > v.minScaleY }

// HasNoDragOffset reports whether over-panning is disabled on both axes.
func (v *ViewPortHandler) HasNoDragOffset() bool {
	return v.transOffsetX <= 0 && v.transOffsetY <= 0
}

// --- Limits ---
//
// Setters clamp invalid values immediately and re-apply the limits to the
// current touch matrix.

func (v *ViewPortHandler) SetMinimumScaleX(s float64) {
	v.minScaleX = validMinScale(s)
	v.maxScaleX = math.Max(v.maxScaleX, v.minScaleX)
	v.touch = v.limitTransAndScale(v.touch)
}

func (v *ViewPortHandler) SetMaximumScaleX(s float64) {
	v.maxScaleX = math.Max(validMaxScale(s), v.minScaleX)
	v.touch = v.limitTransAndScale(v.touch)
}

func (v *ViewPortHandler) SetMinimumScaleY(s float64) {
	v.minScaleY = validMinScale(s)
	v.maxScaleY = math.Max(v.maxScaleY, v.minScaleY)
	v.touch = v.limitTransAndScale(v.touch)
}

func (v *ViewPortHandler) SetMaximumScaleY(s float64) {
	v.maxScaleY = math.Max(validMaxScale(s), v.minScaleY)
	v.touch = v.limitTransAndScale(v.touch)
}

// SetMinMaxScaleX sets both horizontal limits at once.
func (v *ViewPortHandler) SetMinMaxScaleX(min, max float64) {
	v.minScaleX = validMinScale(min)
	v.maxScaleX = math.Max(validMaxScale(max), v.minScaleX)
	v.touch = v.limitTransAndScale(v.touch)
}

// SetMinMaxScaleY sets both vertical limits at once.
func (v *ViewPortHandler) SetMinMaxScaleY(min, max float64) {
	v.minScaleY = validMinScale(min)
	v.maxScaleY = math.Max(validMaxScale(max), v.minScaleY)
	v.touch = v.limitTransAndScale(v.touch)
}

// SetDragOffsetX sets the horizontal over-pan margin in pixels.
func (v *ViewPortHandler) SetDragOffsetX(offset float64) { v.transOffsetX = math.Max(offset, 0) }

// SetDragOffsetY sets the vertical over-pan margin in pixels.
func (v *ViewPortHandler) SetDragOffsetY(offset float64) { v.transOffsetY = math.Max(offset, 0) }

func validMinScale(s float64) float64 {
	if s < 1 || math.IsNaN(s) {
		return 1
	}
	return s
}

func validMaxScale(s float64) float64 {
	if s <= 0 || math.IsNaN(s) {
		return math.MaxFloat64
	}
	return s
}

// --- Bounds checks ---

func (v *ViewPortHandler) IsInBoundsX(x float64) bool {
	return v.IsInBoundsLeft(x) && v.IsInBoundsRight(x)
}

func (v *ViewPortHandler) IsInBoundsY(y float64) bool {
	return v.IsInBoundsTop(y) && v.IsInBoundsBottom(y)
}

func (v *ViewPortHandler) IsInBounds(x, y float64) bool {
	return v.IsInBoundsX(x) && v.IsInBoundsY(y)
}

func (v *ViewPortHandler) IsInBoundsLeft(x float64) bool {
	return v.ContentLeft() <= x+1
}

func (v *ViewPortHandler) IsInBoundsRight(x float64) bool {
	x = math.Floor(x*100) / 100
	return v.ContentRight() >= x-1
}

func (v *ViewPortHandler) IsInBoundsTop(y float64) bool {
	return v.ContentTop() <= y
}

func (v *ViewPortHandler) IsInBoundsBottom(y float64) bool {
	y = math.Floor(y*100) / 100
	return v.ContentBottom() >= y
}
