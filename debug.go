package geoboard

import (
	"log/slog"
	"time"
)

// FrameStats holds per-frame command metrics reported by backends.
type FrameStats struct {
	BuildTime   time.Duration
	DrawTime    time.Duration
	Commands    int
	Lines       int
	Arcs        int
	Shapes      int // rings and discs
	Texts       int
	SceneCounts [4]int // points, lines, angles, circles
}

// NewFrameStats counts cmds and the entities of f.
func NewFrameStats(f *Frame, cmds []RenderCommand) FrameStats {
	counts := CountCommands(cmds)
	return FrameStats{
		Commands: len(cmds),
		Lines:    counts[CommandLine],
		Arcs:     counts[CommandArc],
		Shapes:   counts[CommandRing] + counts[CommandDisc],
		Texts:    counts[CommandText],
		SceneCounts: [4]int{
			len(f.Scene.Points), len(f.Scene.Lines),
			len(f.Scene.Angles), len(f.Scene.Circles),
		},
	}
}

// LogValue implements slog.LogValuer.
func (s FrameStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("build", s.BuildTime),
		slog.Duration("draw", s.DrawTime),
		slog.Int("commands", s.Commands),
		slog.Int("lines", s.Lines),
		slog.Int("arcs", s.Arcs),
		slog.Int("shapes", s.Shapes),
		slog.Int("texts", s.Texts),
		slog.Int("points", s.SceneCounts[0]),
		slog.Int("segments", s.SceneCounts[1]),
		slog.Int("angles", s.SceneCounts[2]),
		slog.Int("circles", s.SceneCounts[3]),
	)
}

// LogFrameStats writes s at debug level.
func LogFrameStats(s FrameStats) {
	Logger().Debug("frame", "stats", s)
}
