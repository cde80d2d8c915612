package geoboard

import (
	"slices"
	"strconv"
)

// EventSink is the interface for optional ECS integration.
// When set on a Scene, every scene event is forwarded to it.
type EventSink interface {
	EmitEvent(event SceneEvent)
}

// Scene owns the points, lines, angles and circles of a drawing.
//
// Lines, angles and circles store copies of the points they were built
// from. MovePoint rewrites every copy of the moved point before it returns,
// so readers never observe a half-propagated move.
//
// Scene is not safe for concurrent use.
type Scene struct {
	points  []Point
	lines   []Line
	angles  []Angle
	circles []Circle

	index  map[int]int // point id -> index into points
	nextID int
	epoch  uint32

	animatedLine int

	sink     EventSink
	handlers handlerRegistry
}

// NewScene creates an empty scene whose first id is 1.
func NewScene() *Scene {
	return &Scene{
		index:  make(map[int]int),
		nextID: 1,
		epoch:  1,
	}
}

// Snapshot is a deep copy of a scene's contents.
type Snapshot struct {
	Points       []Point
	Lines        []Line
	Angles       []Angle
	Circles      []Circle
	NextID       int
	Epoch        uint32
	AnimatedLine int
}

// Snapshot returns a copy of the scene that later mutations do not affect.
func (s *Scene) Snapshot() Snapshot {
	return Snapshot{
		Points:       slices.Clone(s.points),
		Lines:        slices.Clone(s.lines),
		Angles:       slices.Clone(s.angles),
		Circles:      slices.Clone(s.circles),
		NextID:       s.nextID,
		Epoch:        s.epoch,
		AnimatedLine: s.animatedLine,
	}
}

// Points returns the scene's points in creation order. The returned slice
// MUST NOT be mutated.
func (s *Scene) Points() []Point { return s.points }

// Lines returns the scene's lines in creation order. The returned slice
// MUST NOT be mutated.
func (s *Scene) Lines() []Line { return s.lines }

// Angles returns the scene's angles in creation order. The returned slice
// MUST NOT be mutated.
func (s *Scene) Angles() []Angle { return s.angles }

// Circles returns the scene's circles in creation order. The returned slice
// MUST NOT be mutated.
func (s *Scene) Circles() []Circle { return s.circles }

// NextID returns the id the next created entity will receive.
func (s *Scene) NextID() int { return s.nextID }

// Epoch returns the current id epoch. It starts at 1 and increments on Clear.
func (s *Scene) Epoch() uint32 { return s.epoch }

// AnimatedLine returns the id of the animated line, or 0 if none.
func (s *Scene) AnimatedLine() int { return s.animatedLine }

// Point returns the live point with the given id.
func (s *Scene) Point(id int) (Point, bool) {
	i, ok := s.index[id]
	if !ok {
		return Point{}, false
	}
	return s.points[i], true
}

// Line returns the live line with the given id.
func (s *Scene) Line(id int) (Line, bool) {
	if i := s.lineIndex(id); i >= 0 {
		return s.lines[i], true
	}
	return Line{}, false
}

// SetEventSink sets the optional ECS bridge.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

func (s *Scene) allocID() int {
	id := s.nextID
	s.nextID++
	return id
}

// livePoint resolves a point value to its index, rejecting values from an
// earlier epoch whose id happens to match a current point.
func (s *Scene) livePoint(p Point) (int, bool) {
	if p.epoch != s.epoch {
		return 0, false
	}
	i, ok := s.index[p.ID]
	return i, ok
}

func (s *Scene) lineIndex(id int) int {
	for i := range s.lines {
		if s.lines[i].ID == id {
			return i
		}
	}
	return -1
}

// AddPoint appends a point at (x, y) with default styling.
func (s *Scene) AddPoint(x, y float64) Point {
	id := s.allocID()
	p := Point{
		ID:        id,
		X:         x,
		Y:         y,
		Label:     "P" + strconv.Itoa(id),
		Size:      5,
		Color:     ColorPoint,
		ShowLabel: true,
		Movable:   true,
		epoch:     s.epoch,
	}
	s.index[id] = len(s.points)
	s.points = append(s.points, p)
	Logger().Debug("point added", "id", id, "x", x, "y", y)
	s.emit(SceneEvent{Type: EventPointAdded, EntityID: id, X: x, Y: y})
	return p
}

// AddLine connects two distinct live points. It reports false, and changes
// nothing, when both ends are the same point or either end is not live.
// The endpoint copies are taken from the scene, not from the arguments.
func (s *Scene) AddLine(start, end Point) (Line, bool) {
	if start.ID == end.ID {
		Logger().Debug("line rejected: same endpoint", "id", start.ID)
		return Line{}, false
	}
	i, ok1 := s.livePoint(start)
	j, ok2 := s.livePoint(end)
	if !ok1 || !ok2 {
		Logger().Debug("line rejected: stale endpoint", "start", start.ID, "end", end.ID)
		return Line{}, false
	}
	id := s.allocID()
	l := Line{
		ID:        id,
		Start:     s.points[i],
		End:       s.points[j],
		Color:     ColorLine,
		Width:     2,
		Style:     StyleSolid,
		Label:     "L" + strconv.Itoa(id),
		ShowLabel: true,
		epoch:     s.epoch,
	}
	s.lines = append(s.lines, l)
	Logger().Debug("line added", "id", id, "start", start.ID, "end", end.ID)
	s.emit(SceneEvent{Type: EventLineAdded, EntityID: id})
	return l, true
}

// AddAngle builds an angle from two live lines that share vertex as an
// endpoint. The far endpoints must differ from each other, which together
// with the line invariant keeps the three points pairwise distinct.
func (s *Scene) AddAngle(vertex Point, line1, line2 Line) (Angle, bool) {
	vi, ok := s.livePoint(vertex)
	if !ok || line1.epoch != s.epoch || line2.epoch != s.epoch {
		Logger().Debug("angle rejected: stale input", "vertex", vertex.ID)
		return Angle{}, false
	}
	i1, i2 := s.lineIndex(line1.ID), s.lineIndex(line2.ID)
	if i1 < 0 || i2 < 0 || i1 == i2 {
		Logger().Debug("angle rejected: unknown legs", "line1", line1.ID, "line2", line2.ID)
		return Angle{}, false
	}
	l1, l2 := s.lines[i1], s.lines[i2]
	far1, ok1 := otherEnd(l1, vertex.ID)
	far2, ok2 := otherEnd(l2, vertex.ID)
	if !ok1 || !ok2 {
		Logger().Debug("angle rejected: vertex not shared", "vertex", vertex.ID)
		return Angle{}, false
	}
	if far1 == far2 {
		Logger().Debug("angle rejected: duplicate arm", "point", far1)
		return Angle{}, false
	}
	id := s.allocID()
	a := Angle{
		ID:         id,
		Vertex:     s.points[vi],
		Line1:      l1,
		Line2:      l2,
		Color:      ColorAngle,
		Radius:     20,
		ShowArc:    true,
		ShowDegree: true,
		Label:      "A" + strconv.Itoa(id),
		ShowLabel:  true,
		epoch:      s.epoch,
	}
	s.angles = append(s.angles, a)
	Logger().Debug("angle added", "id", id, "vertex", vertex.ID, "degrees", a.Degrees())
	s.emit(SceneEvent{Type: EventAngleAdded, EntityID: id})
	return a, true
}

// otherEnd returns the id of l's endpoint that is not id.
func otherEnd(l Line, id int) (int, bool) {
	switch id {
	case l.Start.ID:
		return l.End.ID, true
	case l.End.ID:
		return l.Start.ID, true
	}
	return 0, false
}

// AddCircle adds a circle around a live center point through edge.
// The radius is fixed now; later moves of whatever defined edge do not
// change it. A zero radius is accepted.
func (s *Scene) AddCircle(center Point, edge Vec2) (Circle, bool) {
	ci, ok := s.livePoint(center)
	if !ok {
		Logger().Debug("circle rejected: stale center", "center", center.ID)
		return Circle{}, false
	}
	c := s.points[ci]
	id := s.allocID()
	circle := Circle{
		ID:        id,
		Center:    c,
		Radius:    Distance(c.Pos(), edge),
		Color:     ColorCircle,
		Width:     2,
		Style:     StyleSolid,
		FillColor: ColorCircleFill,
		Label:     "C" + strconv.Itoa(id),
		ShowLabel: true,
		epoch:     s.epoch,
	}
	s.circles = append(s.circles, circle)
	Logger().Debug("circle added", "id", id, "center", c.ID, "radius", circle.Radius)
	s.emit(SceneEvent{Type: EventCircleAdded, EntityID: id, X: c.X, Y: c.Y})
	return circle, true
}

// MovePoint moves the point with the given id and rewrites every copy of it
// held by lines, angle vertices and legs, and circle centers. Unknown ids
// are ignored. Movable is not consulted; it only gates interactive drags.
func (s *Scene) MovePoint(id int, x, y float64) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.points[i].X, s.points[i].Y = x, y

	for k := range s.lines {
		moveEnds(&s.lines[k], id, x, y)
	}
	for k := range s.angles {
		a := &s.angles[k]
		if a.Vertex.ID == id {
			a.Vertex.X, a.Vertex.Y = x, y
		}
		moveEnds(&a.Line1, id, x, y)
		moveEnds(&a.Line2, id, x, y)
	}
	for k := range s.circles {
		c := &s.circles[k]
		if c.Center.ID == id {
			c.Center.X, c.Center.Y = x, y
		}
	}

	s.emit(SceneEvent{Type: EventPointMoved, EntityID: id, X: x, Y: y})
	return true
}

func moveEnds(l *Line, id int, x, y float64) {
	if l.Start.ID == id {
		l.Start.X, l.Start.Y = x, y
	}
	if l.End.ID == id {
		l.End.X, l.End.Y = x, y
	}
}

// SetAnimatedLine makes the line with the given id the only animated line.
// An id of 0 stops all animation. Unknown ids are ignored.
func (s *Scene) SetAnimatedLine(id int) bool {
	if id != 0 && s.lineIndex(id) < 0 {
		return false
	}
	s.animatedLine = id
	for k := range s.lines {
		s.lines[k].Animated = s.lines[k].ID == id
	}
	Logger().Debug("animated line", "id", id)
	s.emit(SceneEvent{Type: EventLineAnimated, EntityID: id})
	return true
}

// Clear removes every entity and restarts ids at 1 in a new epoch.
// Values obtained before Clear no longer match anything in the scene.
func (s *Scene) Clear() {
	s.points = nil
	s.lines = nil
	s.angles = nil
	s.circles = nil
	s.index = make(map[int]int)
	s.nextID = 1
	s.epoch++
	s.animatedLine = 0
	Logger().Debug("scene cleared", "epoch", s.epoch)
	s.emit(SceneEvent{Type: EventCleared})
}

// --- Event registration ---

type sceneHandler struct {
	id uint32
	fn func(SceneEvent)
}

type handlerRegistry struct {
	handlers []sceneHandler
	nextID   uint32
}

// CallbackHandle allows removing a registered scene callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.handlers
	for i := range s {
		if s[i].id == h.id {
			h.reg.handlers = slices.Delete(s, i, i+1)
			return
		}
	}
}

// OnEvent registers a callback invoked after every completed mutation.
func (s *Scene) OnEvent(fn func(SceneEvent)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.handlers = append(s.handlers.handlers, sceneHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers}
}

func (s *Scene) emit(e SceneEvent) {
	e.Epoch = s.epoch
	if s.sink != nil {
		s.sink.EmitEvent(e)
	}
	if len(s.handlers.handlers) == 0 {
		return
	}
	for _, h := range slices.Clone(s.handlers.handlers) {
		h.fn(e)
	}
}
