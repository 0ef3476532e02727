package chartcore

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// AxisRange is the effective extent of an axis after padding and zero
// clamping. Range is always Max - Min and never negative.
type AxisRange struct {
	Min, Max, Range float64
}

// AxisBase holds what the domain and value axes share: the computed range,
// custom overrides and tick settings.
type AxisBase struct {
	AxisRange

	// LabelCount is the maximum number of tick entries Entries returns.
	LabelCount int
	// Granularity is the minimum spacing between ticks. Zero disables it.
	Granularity float64

	customMin, customMax       float64
	hasCustomMin, hasCustomMax bool
}

// SetAxisMinimum fixes the axis minimum, bypassing padding.
func (a *AxisBase) SetAxisMinimum(v float64) {
	a.customMin = v
	a.hasCustomMin = true
}

// SetAxisMaximum fixes the axis maximum, bypassing padding.
func (a *AxisBase) SetAxisMaximum(v float64) {
	a.customMax = v
	a.hasCustomMax = true
}

// ResetCustomMinimum returns the minimum to automatic calculation.
func (a *AxisBase) ResetCustomMinimum() { a.hasCustomMin = false }

// ResetCustomMaximum returns the maximum to automatic calculation.
func (a *AxisBase) ResetCustomMaximum() { a.hasCustomMax = false }

// IsAxisMinCustom reports whether a custom minimum is set.
func (a *AxisBase) IsAxisMinCustom() bool { return a.hasCustomMin }

// IsAxisMaxCustom reports whether a custom maximum is set.
func (a *AxisBase) IsAxisMaxCustom() bool { return a.hasCustomMax }

// Entries returns tick positions inside [Min, Max], at most LabelCount of
// them, placed on round values. Ticks closer together than Granularity are
// thinned out by asking for fewer of them.
func (a *AxisBase) Entries() []float64 {
	if a.Range <= 0 || a.LabelCount <= 0 {
		return nil
	}
	lin := scale.Linear{Min: a.Min, Max: a.Max}
	var major []float64
	for n := a.LabelCount; n >= 1; n-- {
		major, _ = lin.Ticks(scale.TickOptions{Max: n})
		if a.Granularity <= 0 || len(major) < 2 || major[1]-major[0] >= a.Granularity {
			break
		}
	}
	out := make([]float64, 0, len(major))
	for _, v := range major {
		if v >= a.Min && v <= a.Max {
			out = append(out, v)
		}
	}
	return out
}

// XAxis is the domain axis. Its padding is absolute, in x units.
type XAxis struct {
	AxisBase

	SpaceMin float64
	SpaceMax float64
}

// NewXAxis creates a domain axis with default settings.
func NewXAxis() *XAxis {
	return &XAxis{AxisBase: AxisBase{LabelCount: 6}}
}

// Calculate computes Min, Max and Range from the data extent.
func (x *XAxis) Calculate(dataMin, dataMax float64) {
	min := dataMin - x.SpaceMin
	if x.hasCustomMin {
		min = x.customMin
	}
	max := dataMax + x.SpaceMax
	if x.hasCustomMax {
		max = x.customMax
	}
	if math.Abs(max-min) == 0 {
		max++
		min--
	}
	x.Min, x.Max, x.Range = min, max, math.Abs(max-min)
}

// YAxis is a value axis. Its padding is a fraction of the data range.
type YAxis struct {
	AxisBase

	Dependency AxisDependency
	Inverted   bool

	// StartAtZero keeps zero inside the axis range.
	StartAtZero bool
	// SpaceTop and SpaceBottom are fractions of the data range added above
	// the maximum and below the minimum.
	SpaceTop    float64
	SpaceBottom float64
}

// NewYAxis creates a value axis with 10% padding on both ends.
func NewYAxis(dep AxisDependency) *YAxis {
	return &YAxis{
		AxisBase:    AxisBase{LabelCount: 6},
		Dependency:  dep,
		SpaceTop:    0.1,
		SpaceBottom: 0.1,
	}
}

// Calculate computes Min, Max and Range from the data extent.
//
// A zero-spread extent is widened by 1 on both sides. Padding is computed
// from the spread before widening, so a data set where every value is 7
// yields the range [6, 8].
func (y *YAxis) Calculate(dataMin, dataMax float64) {
	min, max := dataMin, dataMax
	if y.hasCustomMin {
		min = y.customMin
	}
	if y.hasCustomMax {
		max = y.customMax
	}
	if min > max {
		min, max = y.reconcile(min, max)
	}
	customLo, customHi := min, max
	negative := min < 0 && max < 0
	positive := min >= 0

	spread := math.Abs(max - min)
	if spread == 0 {
		max++
		min--
	}

	lo := min - spread*y.SpaceBottom
	if y.hasCustomMin {
		lo = customLo
	}
	hi := max + spread*y.SpaceTop
	if y.hasCustomMax {
		hi = customHi
	}

	if y.StartAtZero {
		switch {
		case negative:
			lo = math.Min(0, lo)
			hi = 0
		case positive:
			lo = 0
			hi = math.Max(0, hi)
		default:
			lo = math.Min(0, lo)
			hi = math.Max(0, hi)
		}
	}
	if hi == lo {
		hi++
		lo--
	}

	y.Min, y.Max, y.Range = lo, hi, math.Abs(hi-lo)
}

// reconcile repairs a custom bound that crossed the other bound. Two custom
// bounds are swapped. A single custom bound keeps its value and moves the
// data bound half its magnitude away from it.
func (y *YAxis) reconcile(min, max float64) (float64, float64) {
	switch {
	case y.hasCustomMin && y.hasCustomMax:
		return max, min
	case y.hasCustomMin:
		if min < 0 {
			return min, min * 0.5
		}
		return min, min * 1.5
	default:
		if max < 0 {
			return max * 1.5, max
		}
		return max * 0.5, max
	}
}
