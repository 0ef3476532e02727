package highlight

import (
	"fmt"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/phanxgames/chartcore/internal/cliutil"
)

type result struct {
	Touch     [2]float64                  `json:"touch" yaml:"touch"`
	Found     bool                        `json:"found" yaml:"found"`
	Highlight *cliutil.HighlightOutput  `json:"highlight,omitempty" yaml:"highlight,omitempty"`
	Entry     *entryOutput                `json:"entry,omitempty" yaml:"entry,omitempty"`
	Selected  []cliutil.HighlightOutput `json:"selected,omitempty" yaml:"selected,omitempty"`
}

type entryOutput struct {
	X     float64   `json:"x" yaml:"x"`
	Y     float64   `json:"y" yaml:"y"`
	Stack []float64 `json:"stack,omitempty" yaml:"stack,omitempty"`
}

func NewHighlightCmd() *cobra.Command {
	var taps int

	cmd := &cobra.Command{
		Use:   "highlight <x> <y>",
		Short: "Resolve the entry a touch at pixel (x, y) selects",
		Long: heredoc.Doc(`
			Run the chart's highlighter for a touch at chart pixel (x, y) and print
			the resulting highlight and entry. With --taps the touch is also
			delivered as that many taps and the final selection is reported, so
			an even count on the same entry shows it deselected again.
		`),
		Example: heredoc.Doc(`
			$ chartctl highlight 120 80
			$ chartctl highlight 120 80 --taps 2 --format yaml
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid x %q: %w", args[0], err)
			}
			y, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid y %q: %w", args[1], err)
			}

			scene, err := cliutil.LoadScene()
			if err != nil {
				return err
			}

			res := result{Touch: [2]float64{x, y}}
			if h, ok := scene.Highlight(x, y); ok {
				out := cliutil.NewHighlightOutput(h)
				res.Found = true
				res.Highlight = &out
			}
			if e, ok := scene.EntryByTouchPoint(x, y); ok {
				res.Entry = &entryOutput{X: e.X, Y: e.Y, Stack: e.Stack}
			}
			if taps > 0 {
				for i := 0; i < taps; i++ {
					scene.Target().Tap(x, y)
				}
				res.Selected = scene.State("").Highlighted
			}
			return cliutil.HandleOutput(cmd, res)
		},
	}

	cmd.Flags().IntVar(&taps, "taps", 0, "Also deliver the touch as this many taps and report the selection")

	return cmd
}
