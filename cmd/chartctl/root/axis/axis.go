package axis

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/phanxgames/chartcore"
	"github.com/phanxgames/chartcore/internal/cliutil"
)

type axisOutput struct {
	Min     float64   `json:"min" yaml:"min"`
	Max     float64   `json:"max" yaml:"max"`
	Range   float64   `json:"range" yaml:"range"`
	Entries []float64 `json:"entries" yaml:"entries"`
}

type result struct {
	X     *axisOutput `json:"x,omitempty" yaml:"x,omitempty"`
	Left  *axisOutput `json:"left,omitempty" yaml:"left,omitempty"`
	Right *axisOutput `json:"right,omitempty" yaml:"right,omitempty"`

	// Radial charts only.
	Factor     float64   `json:"factor,omitempty" yaml:"factor,omitempty"`
	SliceAngle float64   `json:"sliceAngle,omitempty" yaml:"sliceAngle,omitempty"`
	DrawAngles []float64 `json:"drawAngles,omitempty" yaml:"drawAngles,omitempty"`
}

func newAxisOutput(a *chartcore.AxisBase) *axisOutput {
	return &axisOutput{Min: a.Min, Max: a.Max, Range: a.Range, Entries: a.Entries()}
}

func NewAxisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "axis",
		Short: "Print the axis ranges computed from the configured data",
		Example: heredoc.Doc(`
			$ chartctl axis
			$ chartctl axis --format yaml
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := cliutil.LoadScene()
			if err != nil {
				return err
			}

			var res result
			if c := scene.Radial; c != nil {
				if c.Kind() == chartcore.KindRadar {
					res.Left = newAxisOutput(&c.YAxis.AxisBase)
					res.Factor = c.Factor()
				}
				res.SliceAngle = c.SliceAngle()
				res.DrawAngles = c.DrawAngles()
				return cliutil.HandleOutput(cmd, res)
			}

			c := scene.Bar
			res.X = newAxisOutput(&c.XAxis.AxisBase)
			res.Left = newAxisOutput(&c.LeftAxis.AxisBase)
			res.Right = newAxisOutput(&c.RightAxis.AxisBase)
			return cliutil.HandleOutput(cmd, res)
		},
	}

	return cmd
}
