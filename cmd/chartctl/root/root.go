package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/phanxgames/chartcore/cmd/chartctl/root/axis"
	"github.com/phanxgames/chartcore/cmd/chartctl/root/decel"
	"github.com/phanxgames/chartcore/cmd/chartctl/root/highlight"
	"github.com/phanxgames/chartcore/cmd/chartctl/root/replay"
	"github.com/phanxgames/chartcore/cmd/chartctl/root/transform"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "chartctl <command>",
		Short: "Inspect chart transforms, highlights and gestures",
		Long: heredoc.Doc(`
			chartctl builds a chart from the "chart" section of the config
			file and answers questions about it without opening a window:
			which entry a touch selects, where a value lands on screen, what
			axis range the data produces and how a recorded gesture script
			moves the viewport.
		`),
		Example: heredoc.Doc(`
			# Resolve a touch at pixel (120, 80)
			$ chartctl highlight 120 80 --config bars.yaml

			# Replay a gesture script and print YAML snapshots
			$ chartctl replay pan.json --config bars.yaml --format yaml
		`),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log gesture transitions and viewport clamps")
	cmd.PersistentFlags().String("format", "json", "Output format. Accepts 'json' or 'yaml'")

	cmd.AddCommand(highlight.NewHighlightCmd())
	cmd.AddCommand(transform.NewTransformCmd())
	cmd.AddCommand(axis.NewAxisCmd())
	cmd.AddCommand(decel.NewDecelCmd())
	cmd.AddCommand(replay.NewReplayCmd())

	return cmd
}
