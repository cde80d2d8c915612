package geoboard

import (
	"fmt"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("parse color %q: want 3, 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// Entity palette.
var (
	ColorPoint      = RGB(0x34, 0x98, 0xdb)
	ColorLine       = RGB(0x2c, 0x3e, 0x50)
	ColorAngle      = RGB(0xe7, 0x4c, 0x3c)
	ColorCircle     = RGB(0x9b, 0x59, 0xb6)
	ColorCircleFill = RGB(0x9b, 0x59, 0xb6).WithAlpha(0.2)
	ColorHover      = RGB(0xff, 0x98, 0x00)
	ColorMarch      = RGB(0x34, 0x98, 0xdb)
	ColorPreview    = RGB(0x2e, 0xcc, 0x71)
	ColorArcPreview = RGB(0xf3, 0x9c, 0x12)
	ColorText       = RGB(0, 0, 0)
	ColorBackground = RGB(0xff, 0xff, 0xff)
)

// Vec2 is a 2D vector in surface coordinates. Y grows downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// StrokeStyle selects the dash pattern of a stroked outline.
type StrokeStyle uint8

const (
	StyleSolid  StrokeStyle = iota // continuous stroke
	StyleDashed                    // 8 on, 4 off
	StyleDotted                    // 2 on, 2 off
)

// DashPattern returns the on/off lengths for the style, or nil for solid.
func (s StrokeStyle) DashPattern() []float64 {
	switch s {
	case StyleDashed:
		return []float64{8, 4}
	case StyleDotted:
		return []float64{2, 2}
	default:
		return nil
	}
}

// Tool is the active construction tool of an Editor.
type Tool uint8

const (
	ToolPoint  Tool = iota // place points, toggle line animation
	ToolLine               // two points make a line
	ToolAngle              // point, vertex, point make an angle
	ToolCircle             // center then edge make a circle
)

var toolNames = [...]string{"point", "line", "angle", "circle"}

func (t Tool) String() string {
	if int(t) < len(toolNames) {
		return toolNames[t]
	}
	return "tool(" + strconv.Itoa(int(t)) + ")"
}

// ParseTool returns the tool with the given name.
func ParseTool(name string) (Tool, error) {
	for i, n := range toolNames {
		if strings.EqualFold(name, n) {
			return Tool(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tool %q", name)
}

// EventType identifies a kind of scene change.
type EventType uint8

const (
	EventPointAdded   EventType = iota // a point was appended
	EventPointMoved                    // a point and its dependents moved
	EventLineAdded                     // a line was appended
	EventAngleAdded                    // an angle was appended
	EventCircleAdded                   // a circle was appended
	EventLineAnimated                  // the animated line changed (EntityID 0 = none)
	EventCleared                       // the scene was emptied and a new epoch began
)

var eventNames = [...]string{
	"point-added", "point-moved", "line-added", "angle-added",
	"circle-added", "line-animated", "cleared",
}

func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "event(" + strconv.Itoa(int(e)) + ")"
}

// SceneEvent describes a completed scene mutation.
type SceneEvent struct {
	Type     EventType
	EntityID int
	X, Y     float64
	Epoch    uint32
}
