package replay

import (
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/phanxgames/chartcore"
	"github.com/phanxgames/chartcore/internal/cliutil"
)

type options struct {
	dt        float64
	maxFrames int
	watch     bool
}

func NewReplayCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "replay <script.json>",
		Short: "Replay a gesture script against the configured chart",
		Long: heredoc.Doc(`
			Feed a JSON gesture script through the gesture recognizer frame by
			frame, ticking the chart after every frame, and print the chart state
			at each "snapshot" step.

			A script is a list of steps:

			  {"steps": [
			    {"action": "drag", "fromX": 300, "fromY": 150, "toX": 100, "toY": 150, "frames": 10},
			    {"action": "wait", "frames": 30},
			    {"action": "snapshot", "label": "after-fling"}
			  ]}

			Actions are tap, doubletap, drag, pinch, wait and snapshot. With
			--watch the script is replayed again whenever the config file changes.
		`),
		Example: heredoc.Doc(`
			$ chartctl replay pan.json
			$ chartctl replay pinch.json --config bars.yaml --watch
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.dt <= 0 {
				return fmt.Errorf("--dt must be positive")
			}
			path := args[0]
			if err := replayOnce(cmd, path, opts); err != nil {
				return err
			}
			if !opts.watch {
				return nil
			}
			return watch(cmd, path, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.dt, "dt", 1.0/60, "Frame length in seconds")
	cmd.Flags().IntVar(&opts.maxFrames, "max-frames", 10000, "Give up after this many frames")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Replay again when the config file changes")

	return cmd
}

func replayOnce(cmd *cobra.Command, path string, opts options) error {
	script, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	runner, err := chartcore.LoadGestureScript(script)
	if err != nil {
		return err
	}
	scene, err := cliutil.LoadScene()
	if err != nil {
		return err
	}

	var states []cliutil.State
	runner.OnSnapshot = func(label string) {
		states = append(states, scene.State(label))
	}
	rec := chartcore.NewGestureRecognizer(scene.Target())
	rec.SetScriptRunner(runner)

	frames := 0
	for ; !runner.Done(); frames++ {
		if frames >= opts.maxFrames {
			return fmt.Errorf("script did not finish within %d frames", opts.maxFrames)
		}
		rec.Update(opts.dt)
		scene.Tick(opts.dt)
	}
	log.Debug("replay finished", "script", path, "frames", frames, "snapshots", len(states))

	return cliutil.HandleOutput(cmd, states)
}

func watch(cmd *cobra.Command, path string, opts options) error {
	if viper.ConfigFileUsed() == "" {
		return fmt.Errorf("--watch needs a config file")
	}

	var mu sync.Mutex
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		log.Info("config changed, replaying", "file", e.Name)
		if err := replayOnce(cmd, path, opts); err != nil {
			log.Error("replay failed", "error", err)
		}
	})
	viper.WatchConfig()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	return nil
}
