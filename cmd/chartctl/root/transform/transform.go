package transform

import (
	"errors"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/phanxgames/chartcore"
	"github.com/phanxgames/chartcore/internal/cliutil"
)

var errRadial = errors.New("transform needs a cartesian chart, not pie or radar")

type result struct {
	Axis   string     `json:"axis" yaml:"axis"`
	Value  [2]float64 `json:"value" yaml:"value"`
	Pixel  [2]float64 `json:"pixel" yaml:"pixel"`
	ScaleX float64    `json:"scaleX" yaml:"scaleX"`
	ScaleY float64    `json:"scaleY" yaml:"scaleY"`
	TransX float64    `json:"transX" yaml:"transX"`
	TransY float64    `json:"transY" yaml:"transY"`

	// Visible is the x range inside the content rect.
	Visible [2]float64 `json:"visible" yaml:"visible"`
}

func NewTransformCmd() *cobra.Command {
	var (
		value, pixel string
		zoom, pan    string
		axis         string
	)

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Convert between value space and chart pixels",
		Long: heredoc.Doc(`
			Convert a value-space point to chart pixels with --value, or a pixel to
			value space with --pixel. --zoom and --pan adjust the viewport first,
			the same way a pinch around the content centre and a drag would.
		`),
		Example: heredoc.Doc(`
			$ chartctl transform --value 3,12.5
			$ chartctl transform --pixel 200,150 --zoom 2,1 --pan -40,0
			$ chartctl transform --value 3,40 --axis right
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (value == "") == (pixel == "") {
				return errors.New("exactly one of --value or --pixel is required")
			}
			dep := chartcore.AxisLeft
			if strings.EqualFold(axis, "right") {
				dep = chartcore.AxisRight
			}

			scene, err := cliutil.LoadScene()
			if err != nil {
				return err
			}
			c := scene.Bar
			if c == nil {
				return errRadial
			}

			if zoom != "" {
				sx, sy, err := cliutil.ParsePair(zoom)
				if err != nil {
					return err
				}
				c.ZoomToCenter(sx, sy)
			}
			if pan != "" {
				dx, dy, err := cliutil.ParsePair(pan)
				if err != nil {
					return err
				}
				c.PerformPanChange(chartcore.Vec2{X: dx, Y: dy})
			}

			res := result{Axis: dep.String()}
			if value != "" {
				x, y, err := cliutil.ParsePair(value)
				if err != nil {
					return err
				}
				p := c.PixelForValues(x, y, dep)
				res.Value = [2]float64{x, y}
				res.Pixel = [2]float64{p.X, p.Y}
			} else {
				x, y, err := cliutil.ParsePair(pixel)
				if err != nil {
					return err
				}
				v := c.ValuesByTouchPoint(x, y, dep)
				res.Pixel = [2]float64{x, y}
				res.Value = [2]float64{v.X, v.Y}
			}

			vp := c.ViewPort()
			res.ScaleX, res.ScaleY = vp.ScaleX(), vp.ScaleY()
			res.TransX, res.TransY = vp.TransX(), vp.TransY()
			res.Visible = [2]float64{c.LowestVisibleX(), c.HighestVisibleX()}
			return cliutil.HandleOutput(cmd, res)
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Value-space point as x,y")
	cmd.Flags().StringVar(&pixel, "pixel", "", "Chart pixel as x,y")
	cmd.Flags().StringVar(&zoom, "zoom", "", "Zoom factors sx,sy applied around the content centre")
	cmd.Flags().StringVar(&pan, "pan", "", "Pan by dx,dy pixels after zooming")
	cmd.Flags().StringVar(&axis, "axis", "left", "Value axis: left or right")

	return cmd
}
