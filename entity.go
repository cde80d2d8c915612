package geoboard

import "math"

// Point is a user-placed point. Lines, angles and circles hold copies of
// points; Scene.MovePoint keeps those copies current.
type Point struct {
	ID        int
	X, Y      float64
	Label     string
	Size      float64
	Color     Color
	ShowLabel bool
	Movable   bool

	epoch uint32
}

// Pos returns the point's coordinates.
func (p Point) Pos() Vec2 {
	return Vec2{p.X, p.Y}
}

// Line is a segment between two points.
type Line struct {
	ID        int
	Start     Point
	End       Point
	Color     Color
	Width     float64
	Style     StrokeStyle
	Label     string
	ShowLabel bool
	Animated  bool

	epoch uint32
}

// Midpoint returns the midpoint of the segment.
func (l Line) Midpoint() Vec2 {
	return Vec2{(l.Start.X + l.End.X) / 2, (l.Start.Y + l.End.Y) / 2}
}

// Length returns the segment length.
func (l Line) Length() float64 {
	return Distance(l.Start.Pos(), l.End.Pos())
}

// Angle is formed by two legs that both start at Vertex.
type Angle struct {
	ID         int
	Vertex     Point
	Line1      Line
	Line2      Line
	Color      Color
	Radius     float64
	ShowArc    bool
	ShowDegree bool
	Label      string
	ShowLabel  bool

	epoch uint32
}

// legEnd returns the endpoint of l that is not the vertex.
func (a Angle) legEnd(l Line) Point {
	if l.Start.ID == a.Vertex.ID {
		return l.End
	}
	return l.Start
}

// Arms returns the far endpoints of both legs.
func (a Angle) Arms() (Point, Point) {
	return a.legEnd(a.Line1), a.legEnd(a.Line2)
}

// Degrees returns the non-reflex angle between the legs.
func (a Angle) Degrees() float64 {
	p1, p2 := a.Arms()
	return AngleBetweenRays(a.Vertex.Pos(), p1.Pos(), p2.Pos())
}

// Bisector returns the direction in radians halfway along the arc.
func (a Angle) Bisector() float64 {
	p1, p2 := a.Arms()
	start, sweep := ArcSweep(a.Vertex.Pos(), p1.Pos(), p2.Pos())
	return start + sweep/2
}

// LabelAnchor is where the angle's label is drawn: along the bisector,
// 20px beyond the arc.
func (a Angle) LabelAnchor() Vec2 {
	mid := a.Bisector()
	r := a.Radius + 20
	return Vec2{a.Vertex.X + r*math.Cos(mid), a.Vertex.Y + r*math.Sin(mid)}
}

// Circle has a center point and a radius fixed at creation.
type Circle struct {
	ID        int
	Center    Point
	Radius    float64
	Color     Color
	Width     float64
	Style     StrokeStyle
	Fill      bool
	FillColor Color
	Label     string
	ShowLabel bool

	epoch uint32
}
