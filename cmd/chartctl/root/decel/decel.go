package decel

import (
	"errors"
	"math"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/phanxgames/chartcore"
	"github.com/phanxgames/chartcore/internal/cliutil"
)

// maxTicks bounds a simulation whose friction is close to 1.
const maxTicks = 100000

type result struct {
	Friction float64    `json:"friction" yaml:"friction"`
	Ticks    int        `json:"ticks" yaml:"ticks"`
	Seconds  float64    `json:"seconds" yaml:"seconds"`
	Distance [2]float64 `json:"distance" yaml:"distance"`
	Stopped  bool       `json:"stopped" yaml:"stopped"`
}

func NewDecelCmd() *cobra.Command {
	var (
		velocity string
		friction float64
		dt       float64
	)

	cmd := &cobra.Command{
		Use:   "decel",
		Short: "Simulate the fling that follows a released pan",
		Long: heredoc.Doc(`
			Run the drag decelerator from an initial velocity in pixels per second
			until it stops and report how far the content travelled. Every tick
			keeps --friction of the previous velocity.
		`),
		Example: heredoc.Doc(`
			$ chartctl decel --velocity 1200,0
			$ chartctl decel --velocity 300,-80 --friction 0.95 --dt 0.008
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dt <= 0 {
				return errors.New("--dt must be positive")
			}
			vx, vy, err := cliutil.ParsePair(velocity)
			if err != nil {
				return err
			}

			d := chartcore.NewDecelerator(friction)
			d.Start(chartcore.Vec2{X: vx, Y: vy})

			res := result{Friction: d.Friction()}
			for res.Ticks < maxTicks {
				step, ok := d.Tick(dt)
				if !ok {
					break
				}
				res.Ticks++
				res.Distance[0] += step.X
				res.Distance[1] += step.Y
			}
			res.Stopped = !d.Active()
			res.Seconds = math.Round(float64(res.Ticks)*dt*1e6) / 1e6
			return cliutil.HandleOutput(cmd, res)
		},
	}

	cmd.Flags().StringVar(&velocity, "velocity", "0,0", "Initial velocity vx,vy in pixels per second")
	cmd.Flags().Float64Var(&friction, "friction", chartcore.DefaultFriction, "Velocity retained per tick, 0 to 0.999")
	cmd.Flags().Float64Var(&dt, "dt", 1.0/60, "Tick length in seconds")

	return cmd
}
