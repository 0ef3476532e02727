package chartcore

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// DataKind identifies how a data set is drawn and hit-tested.
type DataKind uint8

const (
	KindBar DataKind = iota
	KindLine
	KindScatter
	KindCandle
	KindBubble
	KindPie
	KindRadar
)

var kindNames = [...]string{"bar", "line", "scatter", "candle", "bubble", "pie", "radar"}

func (k DataKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseDataKind maps a kind name back to its value.
func ParseDataKind(s string) (DataKind, bool) {
	for i, n := range kindNames {
		if n == s {
			return DataKind(i), true
		}
	}
	return 0, false
}

// Rounding selects which neighbour EntryIndex picks when no entry sits
// exactly at the requested x.
type Rounding uint8

const (
	RoundClosest Rounding = iota
	RoundUp
	RoundDown
)

// --- Entry ---

// Entry is one data point. Only the fields relevant to the owning data set's
// kind are meaningful: Stack for stacked bars, High/Low/Open/Close for
// candles, Size for bubbles.
type Entry struct {
	X, Y float64

	Stack []float64

	High, Low   float64
	Open, Close float64

	Size float64
}

// NewStackedEntry creates a bar entry whose Y is the sum of its segments.
func NewStackedEntry(x float64, values ...float64) Entry {
	return Entry{X: x, Y: vec.Sum(values), Stack: values}
}

// NewCandleEntry creates a candle entry. Y is the midpoint of the shadow.
func NewCandleEntry(x, high, low, open, close float64) Entry {
	return Entry{X: x, Y: (high + low) / 2, High: high, Low: low, Open: open, Close: close}
}

// IsStacked reports whether the entry has stack segments.
func (e Entry) IsStacked() bool { return len(e.Stack) > 0 }

// PositiveSum returns the sum of the non-negative stack segments.
func (e Entry) PositiveSum() float64 {
	var s float64
	for _, v := range e.Stack {
		if v >= 0 {
			s += v
		}
	}
	return s
}

// NegativeSum returns the magnitude of the sum of negative stack segments.
func (e Entry) NegativeSum() float64 {
	var s float64
	for _, v := range e.Stack {
		if v < 0 {
			s -= v
		}
	}
	return s
}

// StackRanges returns the cumulative extent of every stack segment in value
// space. Negative segments stack downward from the bottom of the negative
// pile, positive segments stack upward from zero.
func (e Entry) StackRanges() []Range {
	if !e.IsStacked() {
		return nil
	}
	ranges := make([]Range, 0, len(e.Stack))
	negRemain := -e.NegativeSum()
	posRemain := 0.0
	for _, v := range e.Stack {
		if v < 0 {
			ranges = append(ranges, Range{From: negRemain, To: negRemain - v})
			negRemain -= v
		} else {
			ranges = append(ranges, Range{From: posRemain, To: posRemain + v})
			posRemain += v
		}
	}
	return ranges
}

// ClosestStackIndex returns the segment whose range contains v. On a shared
// boundary the upper segment wins. Values at or above the top of the last
// segment map to it; values below every segment map to 0. Returns -1 for an
// entry without segments.
func (e Entry) ClosestStackIndex(v float64) int {
	ranges := e.StackRanges()
	if len(ranges) == 0 {
		return -1
	}
	for i, r := range ranges {
		if r.Contains(v) {
			return i
		}
	}
	last := len(ranges) - 1
	if v >= ranges[last].To {
		return last
	}
	return 0
}

// yBounds returns the vertical extent the entry occupies.
func (e Entry) yBounds(kind DataKind) (float64, float64) {
	switch {
	case kind == KindCandle:
		return e.Low, e.High
	case e.IsStacked():
		return -e.NegativeSum(), e.PositiveSum()
	}
	return e.Y, e.Y
}

// --- DataSet ---

// DataSet is an ordered series of entries sharing a kind and an axis.
// Entries are kept sorted by X.
type DataSet struct {
	Label            string
	Kind             DataKind
	Axis             AxisDependency
	HighlightEnabled bool

	entries []Entry

	xMin, xMax float64
	yMin, yMax float64
}

// NewDataSet creates a data set from entries. The entries are copied and
// sorted by X; entries with equal X keep their relative order.
func NewDataSet(label string, kind DataKind, entries ...Entry) *DataSet {
	d := &DataSet{
		Label:            label,
		Kind:             kind,
		HighlightEnabled: true,
		entries:          append([]Entry(nil), entries...),
	}
	sort.SliceStable(d.entries, func(i, j int) bool { return d.entries[i].X < d.entries[j].X })
	d.calcMinMax()
	return d
}

func (d *DataSet) calcMinMax() {
	d.xMin, d.xMax = math.MaxFloat64, -math.MaxFloat64
	d.yMin, d.yMax = math.MaxFloat64, -math.MaxFloat64
	if len(d.entries) == 0 {
		return
	}
	d.xMin = d.entries[0].X
	d.xMax = d.entries[len(d.entries)-1].X
	d.yMin, d.yMax = d.yBoundsIn(0, len(d.entries)-1)
}

// yBoundsIn returns the vertical extent of entries[from..to] inclusive.
func (d *DataSet) yBoundsIn(from, to int) (float64, float64) {
	lows := make([]float64, 0, to-from+1)
	highs := make([]float64, 0, to-from+1)
	for i := from; i <= to; i++ {
		lo, hi := d.entries[i].yBounds(d.Kind)
		lows = append(lows, lo)
		highs = append(highs, hi)
	}
	min, _ := stats.Bounds(lows)
	_, max := stats.Bounds(highs)
	return min, max
}

// AddEntry inserts e at its sorted position.
func (d *DataSet) AddEntry(e Entry) {
	i := sort.Search(len(d.entries), func(i int) bool { return d.entries[i].X > e.X })
	d.entries = append(d.entries, Entry{})
	copy(d.entries[i+1:], d.entries[i:])
	d.entries[i] = e
	d.calcMinMax()
}

// RemoveEntry removes the entry at index i.
func (d *DataSet) RemoveEntry(i int) bool {
	if i < 0 || i >= len(d.entries) {
		return false
	}
	d.entries = append(d.entries[:i], d.entries[i+1:]...)
	d.calcMinMax()
	return true
}

func (d *DataSet) Len() int { return len(d.entries) }

// Entries returns the sorted entries. The slice must not be modified.
func (d *DataSet) Entries() []Entry { return d.entries }

// EntryForIndex returns the entry at i.
func (d *DataSet) EntryForIndex(i int) (Entry, bool) {
	if i < 0 || i >= len(d.entries) {
		return Entry{}, false
	}
	return d.entries[i], true
}

func (d *DataSet) XMin() float64 { return d.xMin }
func (d *DataSet) XMax() float64 { return d.xMax }
func (d *DataSet) YMin() float64 { return d.yMin }
func (d *DataSet) YMax() float64 { return d.yMax }

// StackSize returns the largest number of stack segments of any entry, or 1
// for a set without stacked entries.
func (d *DataSet) StackSize() int {
	n := 1
	for _, e := range d.entries {
		n = max(n, len(e.Stack))
	}
	return n
}

// IsStacked reports whether any entry has more than one segment.
func (d *DataSet) IsStacked() bool { return d.StackSize() > 1 }

// EntryIndex returns the index of the entry closest to x, or -1 for an empty
// set. Rounding picks the neighbour above or below when no entry sits at x.
// When closestToY is not NaN and several entries share the resulting x, the
// one whose Y is closest to closestToY is chosen.
func (d *DataSet) EntryIndex(x, closestToY float64, r Rounding) int {
	if len(d.entries) == 0 {
		return -1
	}
	low, high := 0, len(d.entries)-1
	closest := high
	for low < high {
		m := (low + high) / 2
		d1 := d.entries[m].X - x
		d2 := d.entries[m+1].X - x
		ad1, ad2 := math.Abs(d1), math.Abs(d2)
		switch {
		case ad2 < ad1:
			low = m + 1
		case ad1 < ad2:
			high = m
		case d1 >= 0:
			high = m
		default:
			low = m + 1
		}
		closest = high
	}

	closestX := d.entries[closest].X
	switch {
	case r == RoundUp && closestX < x && closest < len(d.entries)-1:
		closest++
	case r == RoundDown && closestX > x && closest > 0:
		closest--
	}

	if !math.IsNaN(closestToY) {
		closestX = d.entries[closest].X
		for closest > 0 && d.entries[closest-1].X == closestX {
			closest--
		}
		best := closest
		for i := closest + 1; i < len(d.entries) && d.entries[i].X == closestX; i++ {
			if math.Abs(d.entries[i].Y-closestToY) < math.Abs(d.entries[best].Y-closestToY) {
				best = i
			}
		}
		closest = best
	}
	return closest
}

// EntryForXValue returns the entry EntryIndex selects.
func (d *DataSet) EntryForXValue(x, closestToY float64, r Rounding) (Entry, bool) {
	return d.EntryForIndex(d.EntryIndex(x, closestToY, r))
}

// EntriesForXValue returns every entry whose X equals x exactly.
func (d *DataSet) EntriesForXValue(x float64) []Entry {
	i := sort.Search(len(d.entries), func(i int) bool { return d.entries[i].X >= x })
	j := i
	for j < len(d.entries) && d.entries[j].X == x {
		j++
	}
	if i == j {
		return nil
	}
	return d.entries[i:j]
}

// CalcMinMaxY returns the vertical extent of the entries between fromX and
// toX, widened to the neighbours just outside the window so that partially
// visible segments are included.
func (d *DataSet) CalcMinMaxY(fromX, toX float64) (min, max float64, ok bool) {
	if len(d.entries) == 0 {
		return 0, 0, false
	}
	from := d.EntryIndex(fromX, math.NaN(), RoundDown)
	to := d.EntryIndex(toX, math.NaN(), RoundUp)
	if to < from {
		from, to = to, from
	}
	min, max = d.yBoundsIn(from, to)
	return min, max, true
}

// --- ChartData ---

// ChartData is an ordered collection of data sets with cached extents.
type ChartData struct {
	sets []*DataSet

	xMin, xMax float64
	yMin, yMax [2]float64
}

// NewChartData creates chart data from the given sets.
func NewChartData(sets ...*DataSet) *ChartData {
	c := &ChartData{sets: sets}
	c.NotifyDataChanged()
	return c
}

// NotifyDataChanged recomputes the cached extents. Call it after mutating a
// data set in place.
func (c *ChartData) NotifyDataChanged() {
	c.xMin, c.xMax = math.MaxFloat64, -math.MaxFloat64
	for _, s := range c.sets {
		if s.Len() == 0 {
			continue
		}
		c.xMin = math.Min(c.xMin, s.XMin())
		c.xMax = math.Max(c.xMax, s.XMax())
	}
	c.calcY(func(s *DataSet) (float64, float64, bool) {
		return s.YMin(), s.YMax(), s.Len() > 0
	})
}

// CalcMinMaxY recomputes the vertical extents using only entries inside
// [fromX, toX].
func (c *ChartData) CalcMinMaxY(fromX, toX float64) {
	c.calcY(func(s *DataSet) (float64, float64, bool) {
		return s.CalcMinMaxY(fromX, toX)
	})
}

func (c *ChartData) calcY(bounds func(*DataSet) (float64, float64, bool)) {
	for i := range c.yMin {
		c.yMin[i], c.yMax[i] = math.MaxFloat64, -math.MaxFloat64
	}
	for _, s := range c.sets {
		lo, hi, ok := bounds(s)
		if !ok {
			continue
		}
		a := s.Axis
		c.yMin[a] = math.Min(c.yMin[a], lo)
		c.yMax[a] = math.Max(c.yMax[a], hi)
	}
	// An axis without data mirrors the other one.
	for a := range c.yMin {
		o := 1 - a
		if c.yMin[a] == math.MaxFloat64 {
			c.yMin[a], c.yMax[a] = c.yMin[o], c.yMax[o]
		}
	}
}

// IsEmpty reports whether no set holds any entry.
func (c *ChartData) IsEmpty() bool {
	return c == nil || c.EntryCount() == 0
}

func (c *ChartData) DataSets() []*DataSet { return c.sets }
func (c *ChartData) DataSetCount() int    { return len(c.sets) }

// DataSet returns the set at index i, or nil.
func (c *ChartData) DataSet(i int) *DataSet {
	if i < 0 || i >= len(c.sets) {
		return nil
	}
	return c.sets[i]
}

// AddDataSet appends a set and updates the extents.
func (c *ChartData) AddDataSet(s *DataSet) {
	c.sets = append(c.sets, s)
	c.NotifyDataChanged()
}

// EntryCount returns the total number of entries across all sets.
func (c *ChartData) EntryCount() int {
	n := 0
	for _, s := range c.sets {
		n += s.Len()
	}
	return n
}

// MaxEntryCountSet returns the set with the most entries, or nil.
func (c *ChartData) MaxEntryCountSet() *DataSet {
	var best *DataSet
	for _, s := range c.sets {
		if best == nil || s.Len() > best.Len() {
			best = s
		}
	}
	return best
}

func (c *ChartData) XMin() float64 { return c.xMin }
func (c *ChartData) XMax() float64 { return c.xMax }

func (c *ChartData) YMin(a AxisDependency) float64 { return c.yMin[a] }
func (c *ChartData) YMax(a AxisDependency) float64 { return c.yMax[a] }

// EntryForHighlight returns the entry a highlight refers to.
func (c *ChartData) EntryForHighlight(h Highlight) (Entry, bool) {
	s := c.DataSet(h.DataSetIndex)
	if s == nil {
		return Entry{}, false
	}
	for _, e := range s.EntriesForXValue(h.X) {
		if e.Y == h.Y || math.IsNaN(h.Y) {
			return e, true
		}
	}
	return Entry{}, false
}

// --- BarData ---

// BarData is chart data drawn as bars.
type BarData struct {
	*ChartData

	// BarWidth is the bar width in x units when bars are not grouped.
	BarWidth float64
	// GroupSpace is the gap between bar groups in x units.
	GroupSpace float64
}

// NewBarData creates bar data with the default bar width of 0.85.
func NewBarData(sets ...*DataSet) *BarData {
	return &BarData{ChartData: NewChartData(sets...), BarWidth: 0.85}
}

// GroupedXExtent returns the x range occupied by grouped bars. Bar
// (xIndex, set) spans [xIndex*(sets+GroupSpace)+set, +1).
func (b *BarData) GroupedXExtent() (float64, float64) {
	n := float64(b.DataSetCount())
	cnt := 0
	if s := b.MaxEntryCountSet(); s != nil {
		cnt = s.Len()
	}
	if cnt == 0 {
		return 0, 0
	}
	return 0, float64(cnt-1)*(n+b.GroupSpace) + n
}

// GroupedBarX returns the x centre of bar (xIndex, set) in grouped layout.
func (b *BarData) GroupedBarX(xIndex, set int) float64 {
	n := float64(b.DataSetCount())
	return float64(xIndex)*(n+b.GroupSpace) + float64(set) + 0.5
}

// --- CombinedData ---

// CombinedData holds one data object per kind for charts that mix kinds.
// Nil members are skipped.
type CombinedData struct {
	Bar     *BarData
	Line    *ChartData
	Scatter *ChartData
	Candle  *ChartData
	Bubble  *ChartData
}

// combinedOrder is the hit-testing priority of combined charts.
var combinedOrder = [...]DataKind{KindBar, KindLine, KindScatter, KindCandle, KindBubble}

// ForKind returns the member for a kind, or nil.
func (c *CombinedData) ForKind(k DataKind) *ChartData {
	switch k {
	case KindBar:
		if c.Bar != nil {
			return c.Bar.ChartData
		}
	case KindLine:
		return c.Line
	case KindScatter:
		return c.Scatter
	case KindCandle:
		return c.Candle
	case KindBubble:
		return c.Bubble
	}
	return nil
}

// AllData returns the non-nil members in hit-testing priority order.
func (c *CombinedData) AllData() []*ChartData {
	var out []*ChartData
	for _, k := range combinedOrder {
		if d := c.ForKind(k); d != nil {
			out = append(out, d)
		}
	}
	return out
}

// Merged returns a ChartData holding every set of every member, used for
// axis extents.
func (c *CombinedData) Merged() *ChartData {
	var sets []*DataSet
	for _, d := range c.AllData() {
		sets = append(sets, d.DataSets()...)
	}
	return NewChartData(sets...)
}
