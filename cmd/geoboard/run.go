package main

import (
	"github.com/phanxgames/geoboard"
	"github.com/phanxgames/geoboard/window"
	"github.com/spf13/cobra"
)

var runOpts struct {
	width, height float64
	tool          string
	showFPS       bool
	screenshots   string
}

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Open the board in a window",
	Long: `Open an interactive board. Keys 1-4 select the point, line, angle and circle
tools, Delete clears the board, F12 saves a screenshot and Escape quits.
If a script is given it is replayed before the window opens.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBoard,
}

func init() {
	f := runCmd.Flags()
	f.Float64Var(&runOpts.width, "width", 0, "board width in pixels (default 800)")
	f.Float64Var(&runOpts.height, "height", 0, "board height in pixels (default 600)")
	f.StringVar(&runOpts.tool, "tool", "point", "initial tool: point, line, angle or circle")
	f.BoolVar(&runOpts.showFPS, "fps", false, "show frames per second")
	f.StringVar(&runOpts.screenshots, "screenshots", "screenshots", "directory for F12 screenshots")
	rootCmd.AddCommand(runCmd)
}

func runBoard(cmd *cobra.Command, args []string) error {
	tool, err := geoboard.ParseTool(runOpts.tool)
	if err != nil {
		return err
	}

	cfg := geoboard.DefaultConfig()
	var script *geoboard.Script
	if len(args) == 1 {
		if script, err = geoboard.LoadScriptFile(args[0]); err != nil {
			return err
		}
		cfg = script.Config(cfg)
	}
	if runOpts.width > 0 {
		cfg.Width = runOpts.width
	}
	if runOpts.height > 0 {
		cfg.Height = runOpts.height
	}

	e := geoboard.NewEditor(nil, cfg)
	if script != nil {
		script.Apply(e)
	}
	if script == nil || cmd.Flags().Changed("tool") {
		e.SetTool(tool)
	}

	geoboard.Logger().Info("window open", "width", cfg.Width, "height", cfg.Height, "tool", e.Tool())
	return window.Run(e, window.Config{
		ShowFPS:       runOpts.showFPS,
		ScreenshotDir: runOpts.screenshots,
	})
}
