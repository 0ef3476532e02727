package chartcore

import "math"

// Vec2 is a 2D vector used for pixel positions, value-space points and
// velocities throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward. Width and Height may be negative
// after a transform through an inverted axis; see Normalized.
type Rect struct {
	X, Y, Width, Height float64
}

// Left returns the smaller x edge.
func (r Rect) Left() float64 { return math.Min(r.X, r.X+r.Width) }

// Right returns the larger x edge.
func (r Rect) Right() float64 { return math.Max(r.X, r.X+r.Width) }

// Top returns the smaller y edge.
func (r Rect) Top() float64 { return math.Min(r.Y, r.Y+r.Height) }

// Bottom returns the larger y edge.
func (r Rect) Bottom() float64 { return math.Max(r.Y, r.Y+r.Height) }

// MidX returns the horizontal centre.
func (r Rect) MidX() float64 { return r.X + r.Width/2 }

// MidY returns the vertical centre.
func (r Rect) MidY() float64 { return r.Y + r.Height/2 }

// Center returns the centre point of the rectangle.
func (r Rect) Center() Vec2 { return Vec2{r.MidX(), r.MidY()} }

// Normalized returns an equivalent rectangle with non-negative Width and Height.
func (r Rect) Normalized() Rect {
	return Rect{X: r.Left(), Y: r.Top(), Width: math.Abs(r.Width), Height: math.Abs(r.Height)}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	n := r.Normalized()
	return x >= n.X && x <= n.X+n.Width &&
		y >= n.Y && y <= n.Y+n.Height
}

// Range is a half-open [From, To) interval on a value axis. Stacked bar
// segments are reported as ranges.
type Range struct {
	From, To float64
}

// Contains reports whether v lies in [From, To). A value that sits exactly on
// the boundary between two adjacent ranges belongs to the upper one.
func (r Range) Contains(v float64) bool {
	return v >= r.From && v < r.To
}

// IsLarger reports whether v lies above the range.
func (r Range) IsLarger(v float64) bool { return v > r.To }

// IsSmaller reports whether v lies below the range.
func (r Range) IsSmaller(v float64) bool { return v < r.From }

// AxisDependency selects which value axis a data set is plotted against.
type AxisDependency uint8

const (
	AxisLeft AxisDependency = iota
	AxisRight
)

func (a AxisDependency) String() string {
	if a == AxisRight {
		return "right"
	}
	return "left"
}

// Orientation selects which pixel axis carries the domain (x) values.
type Orientation uint8

const (
	Vertical   Orientation = iota // domain along pixel x, values grow upward
	Horizontal                    // domain along pixel y, values grow rightward
)

// BarMode selects the bar hit-testing strategy.
type BarMode uint8

const (
	BarModeNone BarMode = iota
	BarModeGrouped
	BarModeStacked
)

// EventType identifies a chart notification.
type EventType uint8

const (
	EventValueSelected EventType = iota
	EventValueDeselected
	EventChartScaled
	EventChartTranslated
	EventChartRotated
)

var eventNames = [...]string{"valueSelected", "valueDeselected", "chartScaled", "chartTranslated", "chartRotated"}

func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

// ChartEvent is the value delivered to event listeners and event sinks.
// Only the fields relevant to Type are set.
type ChartEvent struct {
	Type      EventType
	Highlight Highlight
	ScaleX    float64
	ScaleY    float64
	DX, DY    float64
	Rotation  float64
}

// EventSink receives every chart event. Used to forward events into an
// external system such as an ECS world.
type EventSink interface {
	EmitEvent(ChartEvent)
}

// normalizeAngle maps any angle in degrees into [0, 360).
func normalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
