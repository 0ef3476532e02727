package ebitenchart

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/chartcore"
)

// Palette colors data sets in order.
var Palette = []color.RGBA{
	{R: 80, G: 180, B: 255, A: 255},
	{R: 255, G: 140, B: 60, A: 255},
	{R: 120, G: 220, B: 120, A: 255},
	{R: 230, G: 90, B: 140, A: 255},
	{R: 200, G: 200, B: 90, A: 255},
}

var (
	gridColor      = color.RGBA{R: 70, G: 70, B: 90, A: 255}
	highlightColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	whiteImage *ebiten.Image
)

func paletteColor(i int) color.RGBA { return Palette[i%len(Palette)] }

func solidImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage
}

// Draw renders the host's chart.
func (h *Host) Draw(dst *ebiten.Image) {
	switch c := h.Chart.(type) {
	case *chartcore.BarLineChart:
		DrawBarLine(dst, c, h.X, h.Y)
	case *chartcore.RadialChart:
		if c.Kind() == chartcore.KindPie {
			DrawPie(dst, c, h.X, h.Y)
		} else {
			DrawRadar(dst, c, h.X, h.Y)
		}
	}
}

// DrawBarLine draws the grid, the bars and the line/scatter data of a
// cartesian chart at (ox, oy), then marks the selection.
func DrawBarLine(dst *ebiten.Image, c *chartcore.BarLineChart, ox, oy float64) {
	vp := c.ViewPort()
	drawGrid(dst, c, ox, oy)

	if bd := c.BarData(); bd != nil {
		for i, set := range bd.DataSets() {
			clr := paletteColor(i)
			for j, e := range set.Entries() {
				if e.IsStacked() {
					for k := range e.Stack {
						r, _ := c.StackSegmentBounds(i, j, k)
						fillRect(dst, r, ox, oy, shade(clr, k))
					}
					continue
				}
				r, ok := c.BarBounds(i, j)
				if ok {
					fillRect(dst, r, ox, oy, clr)
				}
			}
		}
	}

	data := c.Data()
	if !data.IsEmpty() {
		for i, set := range data.DataSets() {
			if set.Kind == chartcore.KindBar {
				continue
			}
			clr := paletteColor(i)
			tr := c.Transformer(set.Axis)
			var prev chartcore.Vec2
			for j, e := range set.Entries() {
				p := tr.PointValueToPixel(chartcore.Vec2{X: e.X, Y: e.Y * c.PhaseY()})
				switch set.Kind {
				case chartcore.KindLine:
					if j > 0 {
						vector.StrokeLine(dst, float32(ox+prev.X), float32(oy+prev.Y),
							float32(ox+p.X), float32(oy+p.Y), 2, clr, true)
					}
				default:
					if vp.IsInBounds(p.X, p.Y) {
						vector.DrawFilledCircle(dst, float32(ox+p.X), float32(oy+p.Y), 3, clr, true)
					}
				}
				prev = p
			}
		}
	}

	for _, hl := range c.Highlighted() {
		drawMarker(dst, hl.DrawX+ox, hl.DrawY+oy)
	}
}

func drawGrid(dst *ebiten.Image, c *chartcore.BarLineChart, ox, oy float64) {
	vp := c.ViewPort()
	r := vp.ContentRect()
	left, right := float32(ox+r.Left()), float32(ox+r.Right())
	top, bottom := float32(oy+r.Top()), float32(oy+r.Bottom())
	vector.StrokeRect(dst, left, top, right-left, bottom-top, 1, gridColor, false)

	tr := c.Transformer(chartcore.AxisLeft)
	for _, v := range c.LeftAxis.Entries() {
		var y float64
		if c.Orientation() == chartcore.Horizontal {
			x := tr.PointValueToPixel(chartcore.Vec2{X: v}).X
			if vp.IsInBoundsX(x) {
				vector.StrokeLine(dst, float32(ox+x), top, float32(ox+x), bottom, 1, gridColor, false)
			}
			continue
		}
		y = tr.PointValueToPixel(chartcore.Vec2{Y: v}).Y
		if vp.IsInBoundsY(y) {
			vector.StrokeLine(dst, left, float32(oy+y), right, float32(oy+y), 1, gridColor, false)
		}
	}
}

func fillRect(dst *ebiten.Image, r chartcore.Rect, ox, oy float64, clr color.Color) {
	r = r.Normalized()
	vector.DrawFilledRect(dst, float32(ox+r.X), float32(oy+r.Y), float32(r.Width), float32(r.Height), clr, false)
}

// shade darkens c for stack segment k.
func shade(c color.RGBA, k int) color.RGBA {
	f := math.Pow(0.8, float64(k))
	return color.RGBA{R: uint8(float64(c.R) * f), G: uint8(float64(c.G) * f), B: uint8(float64(c.B) * f), A: c.A}
}

func drawMarker(dst *ebiten.Image, x, y float64) {
	vector.StrokeCircle(dst, float32(x), float32(y), 6, 2, highlightColor, true)
}

// DrawPie draws the slices of a pie chart at (ox, oy). The selected slice
// is pushed out from the centre.
func DrawPie(dst *ebiten.Image, c *chartcore.RadialChart, ox, oy float64) {
	center := c.Center()
	center.X += ox
	center.Y += oy
	radius := c.Radius()

	selected := -1
	for _, hl := range c.Highlighted() {
		selected = int(hl.X)
	}

	start := c.RotationAngle()
	phaseX := c.PhaseX()
	for i, sweep := range c.DrawAngles() {
		sweep *= phaseX
		ctr := center
		if i == selected {
			ctr = chartcore.PointOnCircle(center, radius*0.06, start+sweep/2)
		}
		fillSector(dst, ctr, radius*c.PhaseY(), start, sweep, paletteColor(i))
		start += sweep
	}
}

// fillSector fills a circular sector with a triangle fan.
func fillSector(dst *ebiten.Image, center chartcore.Vec2, radius, start, sweep float64, clr color.RGBA) {
	if sweep <= 0 || radius <= 0 {
		return
	}
	segs := int(math.Ceil(sweep / 4))
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	vertex := func(p chartcore.Vec2) ebiten.Vertex {
		return ebiten.Vertex{DstX: float32(p.X), DstY: float32(p.Y), SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a}
	}

	verts := []ebiten.Vertex{vertex(center)}
	var inds []uint16
	for i := 0; i <= segs; i++ {
		angle := start + sweep*float64(i)/float64(segs)
		verts = append(verts, vertex(chartcore.PointOnCircle(center, radius, angle)))
		if i > 0 {
			inds = append(inds, 0, uint16(i), uint16(i+1))
		}
	}
	dst.DrawTriangles(verts, inds, solidImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// DrawRadar draws the web and one outline per data set of a radar chart at
// (ox, oy).
func DrawRadar(dst *ebiten.Image, c *chartcore.RadialChart, ox, oy float64) {
	data := c.Data()
	if data.IsEmpty() {
		return
	}
	center := c.Center()
	center.X += ox
	center.Y += oy
	radius := c.Radius()
	slice := c.SliceAngle()
	rot := c.RotationAngle()
	n := data.MaxEntryCountSet().Len()

	for i := 0; i < n; i++ {
		p := chartcore.PointOnCircle(center, radius, rot+slice*float64(i))
		vector.StrokeLine(dst, float32(center.X), float32(center.Y), float32(p.X), float32(p.Y), 1, gridColor, true)
	}

	factor := c.Factor()
	yMin := c.AxisRange(chartcore.AxisLeft).Min
	for si, set := range data.DataSets() {
		clr := paletteColor(si)
		entries := set.Entries()
		for i, e := range entries {
			next := entries[(i+1)%len(entries)]
			a := chartcore.PointOnCircle(center, (e.Y-yMin)*factor*c.PhaseY(), rot+slice*float64(i))
			b := chartcore.PointOnCircle(center, (next.Y-yMin)*factor*c.PhaseY(), rot+slice*float64((i+1)%len(entries)))
			vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, clr, true)
		}
	}

	for _, hl := range c.Highlighted() {
		drawMarker(dst, hl.DrawX+ox, hl.DrawY+oy)
	}
}
