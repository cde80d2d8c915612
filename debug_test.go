package geoboard

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func lineFrame(t *testing.T) (Frame, []RenderCommand) {
	t.Helper()
	e := newTestEditor()
	e.SetTool(ToolLine)
	e.Tap(100, 100)
	e.Tap(300, 100)
	f := e.Frame()
	return f, BuildCommands(&f)
}

func TestNewFrameStats(t *testing.T) {
	f, cmds := lineFrame(t)
	s := NewFrameStats(&f, cmds)

	if s.Commands != 6 {
		t.Errorf("Commands = %d, want 6", s.Commands)
	}
	if s.Lines != 1 || s.Shapes != 2 || s.Texts != 3 || s.Arcs != 0 {
		t.Errorf("stats = %+v, want 1 line, 2 shapes, 3 texts", s)
	}
	if s.SceneCounts != [4]int{2, 1, 0, 0} {
		t.Errorf("SceneCounts = %v, want [2 1 0 0]", s.SceneCounts)
	}
}

func TestLogFrameStats(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	f, cmds := lineFrame(t)
	buf.Reset()
	LogFrameStats(NewFrameStats(&f, cmds))

	out := buf.String()
	for _, want := range []string{`"msg":"frame"`, `"commands":6`, `"segments":1`} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %s in %s", want, out)
		}
	}
}

func TestDefaultLoggerSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}
