package chartcore

// DataProvider is what highlighters and external renderers need from a
// chart: the computed axis ranges, the transformer for each value axis and
// the bound data.
type DataProvider interface {
	AxisRange(AxisDependency) AxisRange
	Transformer(AxisDependency) *Transformer
	MaxVisibleCount() int
	MaxHighlightDistance() float64
	Data() *ChartData
}

// BarDataProvider is a DataProvider that also exposes bar layout settings.
type BarDataProvider interface {
	DataProvider
	BarData() *BarData
}

// CombinedDataProvider is a BarDataProvider whose data mixes kinds.
type CombinedDataProvider interface {
	BarDataProvider
	CombinedData() *CombinedData
}

// RadialProvider is what the pie and radar highlighters need from a radial
// chart.
type RadialProvider interface {
	Data() *ChartData
	Center() Vec2
	Radius() float64
	RotationAngle() float64
	DistanceToCenter(x, y float64) float64
	AngleForPoint(x, y float64) float64
	IndexForAngle(angle float64) int
	PhaseY() float64
}

// RadarProvider adds the value scale of a radar chart.
type RadarProvider interface {
	RadialProvider
	SliceAngle() float64
	Factor() float64
	AxisRange(AxisDependency) AxisRange
}
