package geoboard

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ScriptStep is a single recorded input event.
type ScriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Tool   string  `json:"tool,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// Script is a replayable sequence of editor events. It records input, not
// scene state.
type Script struct {
	Width  float64      `json:"width,omitempty"`
	Height float64      `json:"height,omitempty"`
	Steps  []ScriptStep `json:"steps"`
}

// Script actions.
const (
	ActionMove       = "move"
	ActionDown       = "down"
	ActionUp         = "up"
	ActionLeave      = "leave"
	ActionClick      = "click"     // move, down, up, click
	ActionRawClick   = "raw-click" // click event only
	ActionDrag       = "drag"
	ActionTool       = "tool"
	ActionClear      = "clear"
	ActionTick       = "tick"
	ActionScreenshot = "screenshot"
)

// tickDT is the frame time used for scripted ticks.
const tickDT = float32(1.0 / 60)

// LoadScript parses and validates a JSON event script.
func LoadScript(data []byte) (*Script, error) {
	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case ActionMove, ActionDown, ActionUp, ActionLeave, ActionClick,
			ActionRawClick, ActionDrag, ActionClear, ActionTick, ActionScreenshot:
		case ActionTool:
			if _, err := ParseTool(st.Tool); err != nil {
				return nil, fmt.Errorf("parse script: step %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &s, nil
}

// LoadScriptFile reads and parses the script at path.
func LoadScriptFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	s, err := LoadScript(data)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", path, err)
	}
	return s, nil
}

// Config returns base with the script's surface size applied.
func (s *Script) Config(base Config) Config {
	if s.Width > 0 {
		base.Width = s.Width
	}
	if s.Height > 0 {
		base.Height = s.Height
	}
	return base
}

// Apply replays every step into e. Screenshot steps are skipped.
func (s *Script) Apply(e *Editor) {
	_ = s.Run(e, nil)
}

// Run replays every step into e. For screenshot steps it calls shot with
// the step label and stops at the first error it returns.
func (s *Script) Run(e *Editor, shot func(label string) error) error {
	for i, st := range s.Steps {
		switch st.Action {
		case ActionMove:
			e.PointerMove(st.X, st.Y)
		case ActionDown:
			e.PointerDown()
		case ActionUp:
			e.PointerUp()
		case ActionLeave:
			e.PointerLeave()
		case ActionClick:
			e.Tap(st.X, st.Y)
		case ActionRawClick:
			e.Click(st.X, st.Y)
		case ActionDrag:
			e.DragPoint(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
		case ActionTool:
			t, err := ParseTool(st.Tool)
			if err != nil {
				return fmt.Errorf("run script: step %d: %w", i, err)
			}
			e.SetTool(t)
		case ActionClear:
			e.Clear()
		case ActionTick:
			for n := max(st.Frames, 1); n > 0; n-- {
				e.Tick(tickDT)
			}
		case ActionScreenshot:
			if shot == nil {
				continue
			}
			if err := shot(st.Label); err != nil {
				return fmt.Errorf("run script: step %d: %w", i, err)
			}
		}
	}
	return nil
}

// SafeLabel makes a screenshot label safe for use in a file name. Empty
// labels become "board".
func SafeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "board"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
