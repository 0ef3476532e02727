package chartcore

// CombinedHighlighter hit-tests combined charts. Members are tried in a
// fixed priority order (bar, line, scatter, candle, bubble) and the first
// member that resolves the touch wins; bars are usually drawn on top.
type CombinedHighlighter struct {
	provider CombinedDataProvider
	base     *ChartHighlighter
	bar      *BarHighlighter
}

// NewCombinedHighlighter creates a combined highlighter. bar resolves touches
// on the bar member and may be nil when the chart has no bars.
func NewCombinedHighlighter(p CombinedDataProvider, bar *BarHighlighter) *CombinedHighlighter {
	return &CombinedHighlighter{
		provider: p,
		base:     NewChartHighlighter(p),
		bar:      bar,
	}
}

// Highlight implements Highlighter. The returned highlight's DataIndex is
// the member's position among the non-nil members of the combined data.
func (h *CombinedHighlighter) Highlight(x, y float64) (Highlight, bool) {
	cd := h.provider.CombinedData()
	if cd == nil {
		return Highlight{}, false
	}
	dataIndex := 0
	for _, kind := range combinedOrder {
		d := cd.ForKind(kind)
		if d == nil {
			continue
		}
		var hl Highlight
		var ok bool
		if kind == KindBar && h.bar != nil {
			hl, ok = h.bar.Highlight(x, y)
		} else {
			hl, ok = h.base.highlightIn(d, x, y)
		}
		if ok {
			hl.DataIndex = dataIndex
			return hl, true
		}
		dataIndex++
	}
	return Highlight{}, false
}
