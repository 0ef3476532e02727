package chartcore

import "math"

// BarHighlighter resolves touches on bar charts. One implementation covers
// every layout: Orientation swaps the domain and value axes, Mode selects
// grouped index arithmetic, and stacked entries are always narrowed to the
// touched segment unless FullBar is set.
type BarHighlighter struct {
	base     ChartHighlighter
	provider BarDataProvider

	Mode BarMode
	// FullBar reports StackIndex -1 for stacked bars so the whole stack is
	// selected.
	FullBar bool
}

// NewBarHighlighter creates a bar highlighter for the given layout.
func NewBarHighlighter(p BarDataProvider, orientation Orientation, mode BarMode) *BarHighlighter {
	dist := distanceFunc(xDistance)
	if orientation == Horizontal {
		dist = yDistance
	}
	return &BarHighlighter{
		base:     ChartHighlighter{provider: p, orientation: orientation, distance: dist},
		provider: p,
		Mode:     mode,
	}
}

// Orientation returns the layout orientation.
func (h *BarHighlighter) Orientation() Orientation { return h.base.orientation }

// Highlight implements Highlighter.
func (h *BarHighlighter) Highlight(x, y float64) (Highlight, bool) {
	bd := h.provider.BarData()
	if bd == nil || bd.IsEmpty() {
		return Highlight{}, false
	}
	if h.Mode == BarModeGrouped && bd.DataSetCount() > 1 {
		return h.groupedHighlight(bd, x, y)
	}

	hl, ok := h.base.highlightIn(bd.ChartData, x, y)
	if !ok {
		return Highlight{}, false
	}
	set := bd.DataSet(hl.DataSetIndex)
	if set.IsStacked() {
		e, ok := set.EntryForXValue(hl.X, hl.Y, RoundClosest)
		if ok && e.IsStacked() {
			_, value := h.base.valuesForTouch(set.Axis, x, y)
			return h.stackedHighlight(hl, e, value), true
		}
	}
	return hl, true
}

func (h *BarHighlighter) groupedHighlight(bd *BarData, x, y float64) (Highlight, bool) {
	domain, _ := h.base.valuesForTouch(AxisLeft, x, y)
	cnt := bd.MaxEntryCountSet().Len()
	xIndex, setIndex := GroupedBarIndex(domain, bd.DataSetCount(), bd.GroupSpace, cnt)

	set := bd.DataSet(setIndex)
	if !set.HighlightEnabled || set.Len() == 0 {
		return Highlight{}, false
	}
	e, _ := set.EntryForIndex(min(xIndex, set.Len()-1))

	px := h.base.pixelFor(set.Axis, bd.GroupedBarX(xIndex, setIndex), e.Y)
	hl := newHighlight(e.X, e.Y, px.X, px.Y, setIndex, set.Axis)
	if e.IsStacked() {
		_, value := h.base.valuesForTouch(set.Axis, x, y)
		return h.stackedHighlight(hl, e, value), true
	}
	return hl, true
}

// stackedHighlight narrows hl to the stack segment containing value. The
// marker moves to the top of that segment.
func (h *BarHighlighter) stackedHighlight(hl Highlight, e Entry, value float64) Highlight {
	if h.FullBar {
		hl.StackIndex = -1
		return hl
	}
	idx := e.ClosestStackIndex(value)
	ranges := e.StackRanges()

	// Only the value coordinate moves; the bar keeps its domain position.
	top := h.base.pixelFor(hl.Axis, hl.X, ranges[idx].To)
	if h.base.orientation == Horizontal {
		hl.XPx = top.X
	} else {
		hl.YPx = top.Y
	}
	hl.DrawX, hl.DrawY = hl.XPx, hl.YPx
	hl.StackIndex = idx
	return hl
}

// GroupedBarIndex maps a domain-axis touch position to the bar it hits in a
// grouped bar layout with setCount bars per group, groupSpace x units
// between groups and entryCount groups. Positions outside the chart snap to
// the nearest valid bar.
func GroupedBarIndex(x float64, setCount int, groupSpace float64, entryCount int) (xIndex, setIndex int) {
	if setCount <= 0 || entryCount <= 0 {
		return 0, 0
	}
	n := float64(setCount)
	steps := math.Floor(x / (n + groupSpace))
	base := x - groupSpace*steps

	setIndex = int(math.Floor(base)) % setCount
	xIndex = int(math.Floor(base / n))

	return clampInt(xIndex, 0, entryCount-1), clampInt(setIndex, 0, setCount-1)
}
