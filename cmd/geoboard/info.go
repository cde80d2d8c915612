package main

import (
	"fmt"
	"io"

	"github.com/phanxgames/geoboard"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <script>",
	Short: "Replay a script and describe the resulting board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := geoboard.LoadScriptFile(args[0])
		if err != nil {
			return err
		}
		e := geoboard.NewEditor(nil, s.Config(geoboard.DefaultConfig()))
		s.Apply(e)
		printInfo(cmd.OutOrStdout(), e.Scene())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func printInfo(w io.Writer, s *geoboard.Scene) {
	snap := s.Snapshot()

	fmt.Fprintf(w, "Points: %d\n", len(snap.Points))
	for _, p := range snap.Points {
		fmt.Fprintf(w, "  %s (%.1f, %.1f)\n", p.Label, p.X, p.Y)
	}
	fmt.Fprintf(w, "Lines: %d\n", len(snap.Lines))
	for _, l := range snap.Lines {
		mark := ""
		if l.ID == snap.AnimatedLine {
			mark = " *"
		}
		fmt.Fprintf(w, "  %s %s-%s length %.1f%s\n", l.Label, l.Start.Label, l.End.Label, l.Length(), mark)
	}
	fmt.Fprintf(w, "Angles: %d\n", len(snap.Angles))
	for _, a := range snap.Angles {
		fmt.Fprintf(w, "  %s at %s %.1f°\n", a.Label, a.Vertex.Label, a.Degrees())
	}
	fmt.Fprintf(w, "Circles: %d\n", len(snap.Circles))
	for _, c := range snap.Circles {
		fmt.Fprintf(w, "  %s center %s radius %.1f\n", c.Label, c.Center.Label, c.Radius)
	}
}
