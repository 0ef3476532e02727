package chartcore

import (
	"fmt"
	"math"
)

// DefaultMaxHighlightDistance is the default pixel radius within which a
// touch selects an entry. It is large enough to accept any touch inside a
// typical chart.
const DefaultMaxHighlightDistance = 500.0

// Highlight is the resolved result of a touch: which entry of which data set
// was hit, and where its marker should be drawn.
type Highlight struct {
	// X and Y are the entry's value-space coordinates.
	X, Y float64
	// XPx and YPx are the entry's pixel position.
	XPx, YPx float64

	// DataIndex is the member index inside combined data, -1 otherwise.
	DataIndex    int
	DataSetIndex int
	// StackIndex is the segment of a stacked entry, -1 when not applicable.
	StackIndex int

	Axis AxisDependency

	DrawX, DrawY float64
}

func newHighlight(x, y, xPx, yPx float64, set int, axis AxisDependency) Highlight {
	return Highlight{
		X: x, Y: y,
		XPx: xPx, YPx: yPx,
		DataIndex:    -1,
		DataSetIndex: set,
		StackIndex:   -1,
		Axis:         axis,
		DrawX:        xPx,
		DrawY:        yPx,
	}
}

// IsStacked reports whether the highlight targets one stack segment.
func (h Highlight) IsStacked() bool { return h.StackIndex >= 0 }

// Equal reports whether h and o refer to the same entry and segment.
func (h Highlight) Equal(o Highlight) bool {
	return h.X == o.X && h.Y == o.Y &&
		h.DataIndex == o.DataIndex &&
		h.DataSetIndex == o.DataSetIndex &&
		h.StackIndex == o.StackIndex
}

func (h Highlight) String() string {
	return fmt.Sprintf("Highlight{x: %g, y: %g, dataSet: %d, stack: %d, data: %d}",
		h.X, h.Y, h.DataSetIndex, h.StackIndex, h.DataIndex)
}

// Highlighter resolves a pixel touch point to an entry.
type Highlighter interface {
	Highlight(x, y float64) (Highlight, bool)
}

// distanceFunc measures the pixel distance between a touch and a highlight.
type distanceFunc func(x1, y1, x2, y2 float64) float64

func hypotDistance(x1, y1, x2, y2 float64) float64 { return math.Hypot(x1-x2, y1-y2) }
func xDistance(x1, _, x2, _ float64) float64       { return math.Abs(x1 - x2) }
func yDistance(_, y1, _, y2 float64) float64       { return math.Abs(y1 - y2) }

// ChartHighlighter is the nearest-entry highlighter used by line, scatter,
// candle and bubble charts.
//
// A touch is converted to value space, every highlight-enabled data set
// contributes the entries at (or closest to) the touched x, the value axis
// whose entries lie closest to the touch in pixels wins, and among that
// axis' entries the one closest to the touch is returned if it is within
// MaxHighlightDistance.
type ChartHighlighter struct {
	provider    DataProvider
	orientation Orientation
	distance    distanceFunc
}

// NewChartHighlighter creates a highlighter for a vertical chart.
func NewChartHighlighter(p DataProvider) *ChartHighlighter {
	return &ChartHighlighter{provider: p, orientation: Vertical, distance: hypotDistance}
}

// Highlight implements Highlighter.
func (h *ChartHighlighter) Highlight(x, y float64) (Highlight, bool) {
	return h.highlightIn(h.provider.Data(), x, y)
}

func (h *ChartHighlighter) highlightIn(data *ChartData, x, y float64) (Highlight, bool) {
	if data.IsEmpty() {
		return Highlight{}, false
	}
	domain, _ := h.valuesForTouch(AxisLeft, x, y)
	hs := h.highlightsAtX(data, domain)
	if len(hs) == 0 {
		return Highlight{}, false
	}
	axis := h.axisForTouch(hs, x, y)
	return h.closestByPixel(hs, axis, x, y)
}

// valuesForTouch returns the domain and value coordinates of a touch as seen
// by the given axis' transformer.
func (h *ChartHighlighter) valuesForTouch(axis AxisDependency, x, y float64) (domain, value float64) {
	pos := h.provider.Transformer(axis).PixelToValues(x, y)
	if h.orientation == Horizontal {
		return pos.Y, pos.X
	}
	return pos.X, pos.Y
}

// pixelFor returns the pixel position of a (domain, value) pair.
func (h *ChartHighlighter) pixelFor(axis AxisDependency, domain, value float64) Vec2 {
	tr := h.provider.Transformer(axis)
	if h.orientation == Horizontal {
		return tr.PointValueToPixel(Vec2{value, domain})
	}
	return tr.PointValueToPixel(Vec2{domain, value})
}

// highlightsAtX collects one highlight per entry at xVal in every enabled
// set. A set without an entry at exactly xVal contributes all entries at its
// closest x.
func (h *ChartHighlighter) highlightsAtX(data *ChartData, xVal float64) []Highlight {
	var out []Highlight
	for i, set := range data.DataSets() {
		if !set.HighlightEnabled || set.Len() == 0 {
			continue
		}
		entries := set.EntriesForXValue(xVal)
		if len(entries) == 0 {
			if e, ok := set.EntryForXValue(xVal, math.NaN(), RoundClosest); ok {
				entries = set.EntriesForXValue(e.X)
			}
		}
		for _, e := range entries {
			px := h.pixelFor(set.Axis, e.X, e.Y)
			out = append(out, newHighlight(e.X, e.Y, px.X, px.Y, i, set.Axis))
		}
	}
	return out
}

// axisForTouch picks the value axis whose highlights come closest to the
// touch along the value direction.
func (h *ChartHighlighter) axisForTouch(hs []Highlight, x, y float64) AxisDependency {
	left := h.minValueDistance(hs, AxisLeft, x, y)
	right := h.minValueDistance(hs, AxisRight, x, y)
	if left < right {
		return AxisLeft
	}
	return AxisRight
}

func (h *ChartHighlighter) minValueDistance(hs []Highlight, axis AxisDependency, x, y float64) float64 {
	d := math.MaxFloat64
	for _, hl := range hs {
		if hl.Axis != axis {
			continue
		}
		var dist float64
		if h.orientation == Horizontal {
			dist = math.Abs(hl.XPx - x)
		} else {
			dist = math.Abs(hl.YPx - y)
		}
		d = math.Min(d, dist)
	}
	return d
}

// closestByPixel returns the first closest highlight on axis within the
// maximum highlight distance.
func (h *ChartHighlighter) closestByPixel(hs []Highlight, axis AxisDependency, x, y float64) (Highlight, bool) {
	best := -1
	bestDist := h.provider.MaxHighlightDistance()
	for i, hl := range hs {
		if hl.Axis != axis {
			continue
		}
		if d := h.distance(x, y, hl.XPx, hl.YPx); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Highlight{}, false
	}
	return hs[best], true
}
