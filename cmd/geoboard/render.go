package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/phanxgames/geoboard"
	"github.com/phanxgames/geoboard/internal/watcher"
	"github.com/phanxgames/geoboard/raster"
	"github.com/spf13/cobra"
)

var renderOpts struct {
	out   string
	watch bool
}

var renderCmd = &cobra.Command{
	Use:   "render <script>",
	Short: "Replay a script and render the board to PNG",
	Long: `Replay an event script without a window and write the final board to a PNG.
Screenshot steps in the script are written next to the output as
<out>_<label>.png. With --watch the script is rendered again whenever it
changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOpts.out, "output", "o", "board.png", "output PNG path")
	renderCmd.Flags().BoolVarP(&renderOpts.watch, "watch", "w", false, "re-render when the script changes")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	path := args[0]
	if err := renderScript(path, renderOpts.out); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", renderOpts.out)
	if !renderOpts.watch {
		return nil
	}

	fw, err := watcher.New(100 * time.Millisecond)
	if err != nil {
		return err
	}
	defer fw.Close()

	var mu sync.Mutex
	err = fw.Watch([]string{path}, func(string) {
		mu.Lock()
		defer mu.Unlock()
		if err := renderScript(path, renderOpts.out); err != nil {
			geoboard.Logger().Warn("render failed", "script", path, "err", err)
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", renderOpts.out)
	})
	if err != nil {
		return err
	}
	fw.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	fmt.Fprintf(cmd.OutOrStdout(), "watching %s (Ctrl+C to stop)\n", path)
	<-ctx.Done()
	return nil
}

// renderScript replays the script at path and writes the final frame to
// out. Screenshot steps are written alongside it.
func renderScript(path, out string) error {
	s, err := geoboard.LoadScriptFile(path)
	if err != nil {
		return err
	}
	cfg := s.Config(geoboard.DefaultConfig())

	canvas, err := raster.New(int(cfg.Width), int(cfg.Height))
	if err != nil {
		return err
	}
	defer canvas.Close()

	e := geoboard.NewEditor(nil, cfg)
	base := strings.TrimSuffix(out, filepath.Ext(out))
	save := func(dst string) error {
		f := e.Frame()
		if err := canvas.Render(&f); err != nil {
			return err
		}
		return canvas.SavePNG(dst)
	}

	err = s.Run(e, func(label string) error {
		return save(fmt.Sprintf("%s_%s.png", base, geoboard.SafeLabel(label)))
	})
	if err != nil {
		return err
	}
	if err := save(out); err != nil {
		return err
	}
	geoboard.Logger().Info("rendered", "script", path, "out", out,
		"points", len(e.Scene().Points()), "lines", len(e.Scene().Lines()))
	return nil
}
