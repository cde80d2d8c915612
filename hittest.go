package geoboard

// Default hit tolerances in pixels.
const (
	DefaultPointHitRadius = 10.0
	DefaultLineHitRadius  = 5.0
)

// FindExistingPoint returns the first point, in insertion order, whose
// distance to (x, y) is at most radius. When several points qualify the
// earliest created one wins.
func FindExistingPoint(x, y float64, points []Point, radius float64) (Point, bool) {
	c := Vec2{x, y}
	for _, p := range points {
		if Distance(c, p.Pos()) <= radius {
			return p, true
		}
	}
	return Point{}, false
}

// FindLineNearPoint returns the first line, in insertion order, whose
// segment lies strictly closer than radius to (x, y).
func FindLineNearPoint(x, y float64, lines []Line, radius float64) (Line, bool) {
	c := Vec2{x, y}
	for _, l := range lines {
		if PointToSegmentDistance(c, l.Start.Pos(), l.End.Pos()) < radius {
			return l, true
		}
	}
	return Line{}, false
}
