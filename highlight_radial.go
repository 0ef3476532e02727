package chartcore

import "math"

// PieHighlighter resolves touches on pie charts to a slice of the first data
// set.
type PieHighlighter struct {
	provider RadialProvider
}

// NewPieHighlighter creates a pie highlighter.
func NewPieHighlighter(p RadialProvider) *PieHighlighter {
	return &PieHighlighter{provider: p}
}

// Highlight implements Highlighter. Touches outside the radius are rejected.
// While slices are animating in, the touch angle is scaled by the phase.
func (h *PieHighlighter) Highlight(x, y float64) (Highlight, bool) {
	index, ok := radialIndex(h.provider, x, y, h.provider.PhaseY())
	if !ok {
		return Highlight{}, false
	}
	set := h.provider.Data().DataSet(0)
	e, ok := set.EntryForIndex(index)
	if !ok || !set.HighlightEnabled {
		return Highlight{}, false
	}
	return newHighlight(float64(index), e.Y, x, y, 0, set.Axis), true
}

// RadarHighlighter resolves touches on radar charts to the web spoke under
// the touch and the data set whose value lies closest to the touch radius.
type RadarHighlighter struct {
	provider RadarProvider
}

// NewRadarHighlighter creates a radar highlighter.
func NewRadarHighlighter(p RadarProvider) *RadarHighlighter {
	return &RadarHighlighter{provider: p}
}

// Highlight implements Highlighter. Touches outside the radius are rejected.
func (h *RadarHighlighter) Highlight(x, y float64) (Highlight, bool) {
	index, ok := radialIndex(h.provider, x, y, 1)
	if !ok {
		return Highlight{}, false
	}
	factor := h.provider.Factor()
	if factor <= 0 {
		return Highlight{}, false
	}
	touchValue := h.provider.DistanceToCenter(x, y) / factor

	best, bestDist := Highlight{}, math.MaxFloat64
	for _, hl := range h.HighlightsForIndex(index) {
		d := math.Abs(hl.Y - h.provider.AxisRange(hl.Axis).Min - touchValue)
		if d < bestDist {
			best, bestDist = hl, d
		}
	}
	return best, bestDist < math.MaxFloat64
}

// HighlightsForIndex returns one highlight per enabled data set for the
// entry at index, positioned on its web spoke.
func (h *RadarHighlighter) HighlightsForIndex(index int) []Highlight {
	p := h.provider
	sliceAngle := p.SliceAngle()
	factor := p.Factor()
	center := p.Center()

	var out []Highlight
	for i, set := range p.Data().DataSets() {
		if !set.HighlightEnabled {
			continue
		}
		e, ok := set.EntryForIndex(index)
		if !ok {
			continue
		}
		dist := (e.Y - p.AxisRange(set.Axis).Min) * factor
		pt := PointOnCircle(center, dist, sliceAngle*float64(index)+p.RotationAngle())
		out = append(out, newHighlight(float64(index), e.Y, pt.X, pt.Y, i, set.Axis))
	}
	return out
}

// radialIndex returns the slice index under a touch, or false when the touch
// lies outside the chart radius or past the last slice.
func radialIndex(p RadialProvider, x, y, phase float64) (int, bool) {
	data := p.Data()
	if data.IsEmpty() {
		return 0, false
	}
	if p.DistanceToCenter(x, y) > p.Radius() {
		return 0, false
	}
	angle := p.AngleForPoint(x, y)
	if phase > 0 {
		angle /= phase
	}
	index := p.IndexForAngle(angle)
	if index < 0 || index >= data.MaxEntryCountSet().Len() {
		return 0, false
	}
	return index, true
}

// PointOnCircle returns the point at distance from center in the direction
// of angle degrees, measured clockwise from east in screen space.
func PointOnCircle(center Vec2, distance, angle float64) Vec2 {
	sin, cos := math.Sincos(angle * math.Pi / 180)
	return Vec2{center.X + distance*cos, center.Y + distance*sin}
}
