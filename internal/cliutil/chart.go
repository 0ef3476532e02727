// Package cliutil builds charts from chartctl configuration and renders
// command output.
package cliutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/phanxgames/chartcore"
)

// ErrNoData is returned when the configuration defines no data sets.
var ErrNoData = errors.New("config defines no data sets")

// EntryConfig is one data point.
type EntryConfig struct {
	X     float64   `mapstructure:"x"`
	Y     float64   `mapstructure:"y"`
	Stack []float64 `mapstructure:"stack"`
}

// DataSetConfig is one data set.
type DataSetConfig struct {
	Label   string        `mapstructure:"label"`
	Kind    string        `mapstructure:"kind"`
	Axis    string        `mapstructure:"axis"`
	Entries []EntryConfig `mapstructure:"entries"`
}

// ChartConfig is the "chart" section of the config file.
type ChartConfig struct {
	// Type is one of bar, hbar, line, combined, pie or radar.
	Type string `mapstructure:"type"`
	// BarMode is one of none, grouped or stacked.
	BarMode     string          `mapstructure:"barMode"`
	Width       float64         `mapstructure:"width"`
	Height      float64         `mapstructure:"height"`
	Offsets     []float64       `mapstructure:"offsets"`
	GroupSpace  float64         `mapstructure:"groupSpace"`
	BarWidth    float64         `mapstructure:"barWidth"`
	Inverted    bool            `mapstructure:"inverted"`
	StartAtZero bool            `mapstructure:"startAtZero"`
	DataSets    []DataSetConfig `mapstructure:"datasets"`
}

// LoadChartConfig reads the chart section from v.
func LoadChartConfig(v *viper.Viper) (ChartConfig, error) {
	cfg := ChartConfig{Type: "bar", Width: 400, Height: 300}
	if err := v.UnmarshalKey("chart", &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode chart config: %w", err)
	}
	if len(cfg.DataSets) == 0 {
		return cfg, ErrNoData
	}
	return cfg, nil
}

// LoadScene builds the chart described by the global viper config and logs
// through the default logger.
func LoadScene() (*Scene, error) {
	cfg, err := LoadChartConfig(viper.GetViper())
	if err != nil {
		return nil, err
	}
	return Build(cfg, log.Default())
}

// Scene wraps the chart built from a config.
type Scene struct {
	Bar    *chartcore.BarLineChart
	Radial *chartcore.RadialChart
}

// Build creates and lays out the chart described by cfg.
func Build(cfg ChartConfig, logger *log.Logger) (*Scene, error) {
	sets := make([]*chartcore.DataSet, 0, len(cfg.DataSets))
	for i, dc := range cfg.DataSets {
		s, err := buildDataSet(dc, cfg.Type)
		if err != nil {
			return nil, fmt.Errorf("data set %d: %w", i, err)
		}
		sets = append(sets, s)
	}

	switch strings.ToLower(cfg.Type) {
	case "pie", "radar":
		var c *chartcore.RadialChart
		if strings.EqualFold(cfg.Type, "pie") {
			c = chartcore.NewPieChart()
		} else {
			c = chartcore.NewRadarChart()
		}
		c.SetLogger(logger)
		c.SetData(chartcore.NewChartData(sets...))
		c.SetChartDimens(cfg.Width, cfg.Height)
		if len(cfg.Offsets) == 4 {
			c.SetViewPortOffsets(cfg.Offsets[0], cfg.Offsets[1], cfg.Offsets[2], cfg.Offsets[3])
		}
		return &Scene{Radial: c}, nil
	}

	c, err := buildBarLine(cfg, sets)
	if err != nil {
		return nil, err
	}
	c.SetLogger(logger)
	c.LeftAxis.Inverted = cfg.Inverted
	c.LeftAxis.StartAtZero = cfg.StartAtZero
	c.RightAxis.StartAtZero = cfg.StartAtZero
	c.NotifyDataSetChanged()
	if len(cfg.Offsets) == 4 {
		c.SetViewPortOffsets(cfg.Offsets[0], cfg.Offsets[1], cfg.Offsets[2], cfg.Offsets[3])
	}
	c.SetChartDimens(cfg.Width, cfg.Height)
	c.Tick(0)
	return &Scene{Bar: c}, nil
}

func buildBarLine(cfg ChartConfig, sets []*chartcore.DataSet) (*chartcore.BarLineChart, error) {
	mode, err := parseBarMode(cfg.BarMode)
	if err != nil {
		return nil, err
	}
	newBarData := func(sets ...*chartcore.DataSet) *chartcore.BarData {
		bd := chartcore.NewBarData(sets...)
		bd.GroupSpace = cfg.GroupSpace
		if cfg.BarWidth > 0 {
			bd.BarWidth = cfg.BarWidth
		}
		return bd
	}

	switch strings.ToLower(cfg.Type) {
	case "bar", "hbar":
		orientation := chartcore.Vertical
		if strings.EqualFold(cfg.Type, "hbar") {
			orientation = chartcore.Horizontal
		}
		c := chartcore.NewBarChart(orientation, mode)
		c.SetBarData(newBarData(sets...))
		return c, nil
	case "line":
		c := chartcore.NewChart()
		c.SetData(chartcore.NewChartData(sets...))
		return c, nil
	case "combined":
		byKind := map[chartcore.DataKind][]*chartcore.DataSet{}
		for _, s := range sets {
			byKind[s.Kind] = append(byKind[s.Kind], s)
		}
		cd := &chartcore.CombinedData{}
		if s := byKind[chartcore.KindBar]; len(s) > 0 {
			cd.Bar = newBarData(s...)
		}
		member := func(k chartcore.DataKind) *chartcore.ChartData {
			if s := byKind[k]; len(s) > 0 {
				return chartcore.NewChartData(s...)
			}
			return nil
		}
		cd.Line = member(chartcore.KindLine)
		cd.Scatter = member(chartcore.KindScatter)
		cd.Candle = member(chartcore.KindCandle)
		cd.Bubble = member(chartcore.KindBubble)
		c := chartcore.NewCombinedChart(mode)
		c.SetCombinedData(cd)
		return c, nil
	}
	return nil, fmt.Errorf("unknown chart type %q", cfg.Type)
}

func buildDataSet(dc DataSetConfig, chartType string) (*chartcore.DataSet, error) {
	kindName := dc.Kind
	if kindName == "" {
		kindName = defaultKind(chartType)
	}
	kind, ok := chartcore.ParseDataKind(kindName)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", kindName)
	}
	entries := make([]chartcore.Entry, len(dc.Entries))
	for i, ec := range dc.Entries {
		if len(ec.Stack) > 0 {
			entries[i] = chartcore.NewStackedEntry(ec.X, ec.Stack...)
		} else {
			entries[i] = chartcore.Entry{X: ec.X, Y: ec.Y}
		}
	}
	s := chartcore.NewDataSet(dc.Label, kind, entries...)
	if strings.EqualFold(dc.Axis, "right") {
		s.Axis = chartcore.AxisRight
	}
	return s, nil
}

func defaultKind(chartType string) string {
	switch strings.ToLower(chartType) {
	case "line":
		return "line"
	case "pie":
		return "pie"
	case "radar":
		return "radar"
	}
	return "bar"
}

func parseBarMode(s string) (chartcore.BarMode, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return chartcore.BarModeNone, nil
	case "grouped":
		return chartcore.BarModeGrouped, nil
	case "stacked":
		return chartcore.BarModeStacked, nil
	}
	return 0, fmt.Errorf("unknown bar mode %q", s)
}

// Target returns the chart as a gesture target.
func (p *Scene) Target() chartcore.GestureTarget {
	if p.Radial != nil {
		return p.Radial
	}
	return p.Bar
}

// Tick advances the chart by dt seconds.
func (p *Scene) Tick(dt float64) {
	if p.Radial != nil {
		p.Radial.Tick(dt)
		return
	}
	p.Bar.Tick(dt)
}

// Highlight resolves a touch without changing the selection.
func (p *Scene) Highlight(x, y float64) (chartcore.Highlight, bool) {
	if p.Radial != nil {
		return p.Radial.HighlightByTouchPoint(x, y)
	}
	return p.Bar.HighlightByTouchPoint(x, y)
}

// EntryByTouchPoint returns the entry under a touch.
func (p *Scene) EntryByTouchPoint(x, y float64) (chartcore.Entry, bool) {
	if p.Radial != nil {
		return p.Radial.EntryByTouchPoint(x, y)
	}
	return p.Bar.EntryByTouchPoint(x, y)
}

// State snapshots the viewport and selection.
func (p *Scene) State(label string) State {
	st := State{Label: label}
	var hs []chartcore.Highlight
	if p.Radial != nil {
		st.Rotation = p.Radial.RotationAngle()
		st.Gesture = p.Radial.GestureState().String()
		hs = p.Radial.Highlighted()
	} else {
		vp := p.Bar.ViewPort()
		st.ScaleX, st.ScaleY = vp.ScaleX(), vp.ScaleY()
		st.TransX, st.TransY = vp.TransX(), vp.TransY()
		st.Gesture = p.Bar.GestureState().String()
		hs = p.Bar.Highlighted()
	}
	for _, h := range hs {
		st.Highlighted = append(st.Highlighted, NewHighlightOutput(h))
	}
	return st
}

// State is a serializable chart snapshot.
type State struct {
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	ScaleX      float64           `json:"scaleX" yaml:"scaleX"`
	ScaleY      float64           `json:"scaleY" yaml:"scaleY"`
	TransX      float64           `json:"transX" yaml:"transX"`
	TransY      float64           `json:"transY" yaml:"transY"`
	Rotation    float64           `json:"rotation" yaml:"rotation"`
	Gesture     string            `json:"gesture" yaml:"gesture"`
	Highlighted []HighlightOutput `json:"highlighted" yaml:"highlighted"`
}

// HighlightOutput is the serializable form of a highlight.
type HighlightOutput struct {
	X            float64 `json:"x" yaml:"x"`
	Y            float64 `json:"y" yaml:"y"`
	XPx          float64 `json:"xPx" yaml:"xPx"`
	YPx          float64 `json:"yPx" yaml:"yPx"`
	DataSetIndex int     `json:"dataSet" yaml:"dataSet"`
	DataIndex    int     `json:"dataIndex" yaml:"dataIndex"`
	StackIndex   int     `json:"stackIndex" yaml:"stackIndex"`
	Axis         string  `json:"axis" yaml:"axis"`
}

// NewHighlightOutput converts a highlight.
func NewHighlightOutput(h chartcore.Highlight) HighlightOutput {
	return HighlightOutput{
		X: h.X, Y: h.Y, XPx: h.XPx, YPx: h.YPx,
		DataSetIndex: h.DataSetIndex,
		DataIndex:    h.DataIndex,
		StackIndex:   h.StackIndex,
		Axis:         h.Axis.String(),
	}
}
