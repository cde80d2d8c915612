package geoboard

import (
	"fmt"
	"strings"
)

// Renderer receives a consistent frame after every handled event.
type Renderer interface {
	Render(f *Frame) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(f *Frame) error

// Render calls fn(f).
func (fn RendererFunc) Render(f *Frame) error { return fn(f) }

type dragState struct {
	active  bool
	pointID int
	epoch   uint32
	moved   bool
}

// Editor turns pointer and tool events into scene mutations. It holds the
// transient interaction state (tool, temp points, hover, drag, animation)
// that is not part of the scene.
//
// Events must be delivered from a single goroutine.
type Editor struct {
	scene *Scene
	cfg   Config

	tool    Tool
	temp    []Point
	hovered int

	pointer Vec2
	inside  bool

	drag          dragState
	suppressClick bool

	anim  Animation
	hover hoverTween

	renderer Renderer
}

// NewEditor creates an editor over scene. A nil scene starts a new one.
// An animated line already selected in scene starts animating.
func NewEditor(scene *Scene, cfg Config) *Editor {
	if scene == nil {
		scene = NewScene()
	}
	cfg = cfg.withDefaults()
	return &Editor{
		scene: scene,
		cfg:   cfg,
		anim: Animation{
			Active: scene.AnimatedLine() != 0,
			step:   cfg.AnimationStep,
			period: cfg.AnimationPeriod,
		},
		hover: newHoverTween(cfg.HoverDuration),
	}
}

// Scene returns the edited scene.
func (e *Editor) Scene() *Scene { return e.scene }

// Config returns the editor's effective configuration.
func (e *Editor) Config() Config { return e.cfg }

// Tool returns the active tool.
func (e *Editor) Tool() Tool { return e.tool }

// TempPoints returns the points selected so far by the active tool.
// The returned slice MUST NOT be mutated.
func (e *Editor) TempPoints() []Point { return e.temp }

// HoveredID returns the id of the hovered point, or 0.
func (e *Editor) HoveredID() int { return e.hovered }

// Dragging reports whether a point is being dragged, and which.
func (e *Editor) Dragging() (int, bool) { return e.drag.pointID, e.drag.active }

// Animation returns the line animation state.
func (e *Editor) Animation() Animation { return e.anim }

// SetRenderer sets the renderer invoked after each event. Nil disables it.
func (e *Editor) SetRenderer(r Renderer) {
	e.renderer = r
}

// PointerMove handles pointer motion inside the surface. While dragging it
// moves the dragged point; otherwise it updates the hovered point.
func (e *Editor) PointerMove(x, y float64) {
	e.pointer = Vec2{x, y}
	e.inside = true
	if e.drag.active {
		if e.drag.epoch == e.scene.Epoch() && e.scene.MovePoint(e.drag.pointID, x, y) {
			e.drag.moved = true
		}
		e.present()
		return
	}
	e.updateHover(x, y)
	e.present()
}

// PointerDown starts a drag when a movable point is hovered.
func (e *Editor) PointerDown() {
	e.suppressClick = false
	if e.drag.active || e.hovered == 0 {
		e.present()
		return
	}
	if p, ok := e.scene.Point(e.hovered); ok && p.Movable {
		e.drag = dragState{active: true, pointID: p.ID, epoch: e.scene.Epoch()}
		Logger().Debug("drag start", "point", p.ID)
	}
	e.present()
}

// PointerUp ends a drag. If the drag moved its point, the click that the
// input layer delivers right after the release is swallowed.
func (e *Editor) PointerUp() {
	if e.drag.active {
		Logger().Debug("drag end", "point", e.drag.pointID, "moved", e.drag.moved)
		e.suppressClick = e.drag.moved
		e.drag = dragState{}
	}
	e.present()
}

// PointerLeave ends any drag and clears hover.
func (e *Editor) PointerLeave() {
	e.inside = false
	e.drag = dragState{}
	e.suppressClick = false
	e.setHovered(0)
	e.present()
}

// Click runs the active tool's selection step at (x, y).
func (e *Editor) Click(x, y float64) {
	if e.drag.active {
		Logger().Debug("click suppressed: dragging")
		return
	}
	if e.suppressClick {
		e.suppressClick = false
		Logger().Debug("click suppressed: after drag")
		return
	}

	existing, hit := FindExistingPoint(x, y, e.scene.Points(), e.cfg.PointHitRadius)

	if e.tool == ToolPoint && !hit {
		if l, ok := FindLineNearPoint(x, y, e.scene.Lines(), e.cfg.LineHitRadius); ok {
			e.toggleLineAnimation(l.ID)
			e.present()
			return
		}
	}

	switch e.tool {
	case ToolPoint:
		if !hit {
			e.scene.AddPoint(x, y)
		}
	case ToolLine:
		e.clickLine(x, y, existing, hit)
	case ToolAngle:
		e.clickAngle(x, y, existing, hit)
	case ToolCircle:
		e.clickCircle(x, y, existing, hit)
	}
	e.present()
}

// resolve returns the hit point or a newly added one at (x, y).
func (e *Editor) resolve(x, y float64, existing Point, hit bool) Point {
	if hit {
		return existing
	}
	return e.scene.AddPoint(x, y)
}

func (e *Editor) clickLine(x, y float64, existing Point, hit bool) {
	if len(e.temp) == 0 {
		e.temp = []Point{e.resolve(x, y, existing, hit)}
		return
	}
	start := e.temp[0]
	if hit && existing.ID == start.ID {
		Logger().Debug("line click ignored: same point", "id", start.ID)
		return
	}
	end := e.resolve(x, y, existing, hit)
	e.scene.AddLine(start, end)
	e.temp = nil
}

func (e *Editor) clickAngle(x, y float64, existing Point, hit bool) {
	switch len(e.temp) {
	case 0:
		e.temp = []Point{e.resolve(x, y, existing, hit)}
	case 1:
		if hit && existing.ID == e.temp[0].ID {
			Logger().Debug("angle click ignored: same point", "id", existing.ID)
			return
		}
		e.temp = append(e.temp, e.resolve(x, y, existing, hit))
	default:
		first, vertex := e.temp[0], e.temp[1]
		if hit && (existing.ID == first.ID || existing.ID == vertex.ID) {
			Logger().Debug("angle click ignored: point already selected", "id", existing.ID)
			return
		}
		third := e.resolve(x, y, existing, hit)
		e.temp = nil
		line1, ok1 := e.scene.AddLine(vertex, first)
		line2, ok2 := e.scene.AddLine(vertex, third)
		if !ok1 || !ok2 {
			return
		}
		e.scene.AddAngle(vertex, line1, line2)
	}
}

// clickCircle uses a hit point's position as the edge; a click on empty
// space defines the edge without adding a point.
func (e *Editor) clickCircle(x, y float64, existing Point, hit bool) {
	if len(e.temp) == 0 {
		e.temp = []Point{e.resolve(x, y, existing, hit)}
		return
	}
	edge := Vec2{x, y}
	if hit {
		edge = existing.Pos()
	}
	e.scene.AddCircle(e.temp[0], edge)
	e.temp = nil
}

func (e *Editor) toggleLineAnimation(id int) {
	if e.scene.AnimatedLine() == id {
		e.scene.SetAnimatedLine(0)
		e.anim.Active = false
		return
	}
	e.scene.SetAnimatedLine(id)
	e.anim.Active = true
}

// SetTool switches tools, discarding any partial construction.
func (e *Editor) SetTool(t Tool) {
	e.tool = t
	e.temp = nil
	e.present()
}

// Clear empties the scene and resets every piece of transient state.
func (e *Editor) Clear() {
	e.scene.Clear()
	e.temp = nil
	e.drag = dragState{}
	e.suppressClick = false
	e.anim.Active = false
	e.anim.Phase = 0
	e.setHovered(0)
	e.present()
}

// Tick advances the line animation one step and the hover ease by dt
// seconds. Hosts call it once per frame.
func (e *Editor) Tick(dt float32) {
	e.anim.Advance()
	e.hover.update(dt)
	e.present()
}

func (e *Editor) updateHover(x, y float64) {
	if p, ok := FindExistingPoint(x, y, e.scene.Points(), e.cfg.PointHitRadius); ok {
		e.setHovered(p.ID)
		return
	}
	e.setHovered(0)
}

func (e *Editor) setHovered(id int) {
	if id == e.hovered {
		return
	}
	e.hovered = id
	if id == 0 {
		e.hover.reset()
		return
	}
	e.hover.start(e.cfg.HoverScale)
}

func (e *Editor) present() {
	if e.renderer == nil {
		return
	}
	f := e.Frame()
	if err := e.renderer.Render(&f); err != nil {
		Logger().Warn("render failed", "err", err)
	}
}

// Frame is everything a renderer needs: a scene snapshot plus the
// transient interaction state.
type Frame struct {
	Scene Snapshot

	Tool          Tool
	Temp          []Point
	Pointer       Vec2
	PointerInside bool

	HoveredID  int
	HoverScale float64

	Dragging bool
	DragID   int

	SelectedLineID  int
	AnimationActive bool
	AnimationPhase  int

	Bounds Rect
	Label  LabelConfig
}

// Frame captures the current state. Temp points carry their live
// positions.
func (e *Editor) Frame() Frame {
	temp := make([]Point, 0, len(e.temp))
	for _, p := range e.temp {
		if live, ok := e.scene.Point(p.ID); ok {
			p = live
		}
		temp = append(temp, p)
	}
	return Frame{
		Scene:           e.scene.Snapshot(),
		Tool:            e.tool,
		Temp:            temp,
		Pointer:         e.pointer,
		PointerInside:   e.inside,
		HoveredID:       e.hovered,
		HoverScale:      e.hover.value,
		Dragging:        e.drag.active,
		DragID:          e.drag.pointID,
		SelectedLineID:  e.scene.AnimatedLine(),
		AnimationActive: e.anim.Active,
		AnimationPhase:  e.anim.Phase,
		Bounds:          e.cfg.Bounds(),
		Label:           e.cfg.Label,
	}
}

var toolHints = [...]string{
	"click to place a point, click a line to animate it",
	"pick the start point",
	"pick the first arm point",
	"pick the center",
}

// Status returns a one-line description of the interaction state.
func (f *Frame) Status() string {
	var b strings.Builder
	b.WriteString(f.Tool.String())
	b.WriteString(": ")
	switch {
	case f.Tool == ToolLine && len(f.Temp) == 1:
		b.WriteString("pick the end point")
	case f.Tool == ToolAngle && len(f.Temp) == 1:
		b.WriteString("pick the vertex")
	case f.Tool == ToolAngle && len(f.Temp) == 2:
		b.WriteString("pick the second arm point")
	case f.Tool == ToolCircle && len(f.Temp) == 1:
		b.WriteString("pick a point on the circle")
	case int(f.Tool) < len(toolHints):
		b.WriteString(toolHints[f.Tool])
	}
	if len(f.Temp) > 0 {
		ids := make([]string, len(f.Temp))
		for i, p := range f.Temp {
			ids[i] = p.Label
		}
		fmt.Fprintf(&b, " [%s]", strings.Join(ids, ", "))
	}
	if f.PointerInside {
		fmt.Fprintf(&b, " (%.0f, %.0f)", f.Pointer.X, f.Pointer.Y)
	}
	if f.Dragging {
		fmt.Fprintf(&b, " dragging P%d", f.DragID)
	}
	if f.SelectedLineID != 0 {
		fmt.Fprintf(&b, " animating L%d", f.SelectedLineID)
	}
	return b.String()
}
