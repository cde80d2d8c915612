package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/phanxgames/geoboard"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "geoboard",
	Short: "An interactive board for points, lines, angles and circles",
	Long: `geoboard is a small geometry sketch board. Open a window to place and drag
points, connect them with lines, measure angles and draw circles, or replay
an event script headlessly and render the result to PNG.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log to stderr at this level (debug, info, warn, error)")
}

func setupLogging(level string) error {
	if level == "" {
		geoboard.SetLogger(nil)
		return nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q", level)
	}
	geoboard.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
