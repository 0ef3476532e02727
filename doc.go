// Package chartcore is the coordinate, highlight and gesture core of an
// interactive charting library.
//
// It owns no pixels. A host (see package chartcore/ebitenchart for an
// [Ebitengine] one) draws from the values chartcore computes and feeds it
// pointer input; chartcore answers with viewport changes, highlights and
// events.
//
// # Quick start
//
//	chart := chartcore.NewChart()
//	chart.SetData(chartcore.NewChartData(
//		chartcore.NewDataSet("sales", chartcore.KindLine,
//			chartcore.Entry{X: 0, Y: 10},
//			chartcore.Entry{X: 1, Y: 25},
//		),
//	))
//	chart.SetChartDimens(640, 480)
//	chart.OnValueSelected(func(h chartcore.Highlight) {
//		fmt.Println("picked", h.X, h.Y)
//	})
//
// Call [BarLineChart.Tick] once per frame. It applies queued viewport
// offsets, advances deceleration and runs animations.
//
// # Coordinates
//
// [ViewPortHandler] holds the content rectangle and the touch matrix
// (scale and translation). [Transformer] combines the value-to-pixel
// matrix, the touch matrix and the offset matrix, and converts between
// entry values and chart pixels in both directions. Pixel y grows
// downward; value y grows upward unless the axis is inverted.
//
// # Highlighting
//
// [ChartHighlighter] finds the entry nearest to a touch point on line,
// scatter and candle charts. [BarHighlighter] adds stacked and grouped bars,
// [CombinedHighlighter] tries each sub-data in priority order, and
// [PieHighlighter] and [RadarHighlighter] work on angles around the chart
// centre.
//
// # Gestures
//
// [GestureRecognizer] turns pointer events into taps, double taps, pans and
// pinches. Both [BarLineChart] and [RadialChart] implement [GestureTarget].
// A [GestureRunner] replays JSON gesture scripts through the same path.
//
// Tweens use [gween]; logging goes through [charmbracelet/log].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [charmbracelet/log]: https://github.com/charmbracelet/log
package chartcore
