package geoboard

import "math"

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// PointToSegmentDistance returns the distance from p to the segment a-b.
// The projection is clamped to the segment, so points beyond either end
// measure to that endpoint. A zero-length segment measures to a.
func PointToSegmentDistance(p, a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Distance(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return Distance(p, Vec2{a.X + t*dx, a.Y + t*dy})
}

// RayAngle returns the direction of the ray vertex->p in radians.
func RayAngle(vertex, p Vec2) float64 {
	return math.Atan2(p.Y-vertex.Y, p.X-vertex.X)
}

// AngleBetweenRays returns the non-reflex angle in degrees, in [0, 180],
// between the rays vertex->p1 and vertex->p2.
func AngleBetweenRays(vertex, p1, p2 Vec2) float64 {
	d := math.Abs(RayAngle(vertex, p1)-RayAngle(vertex, p2)) * 180 / math.Pi
	if d > 180 {
		d = 360 - d
	}
	return d
}

// ArcSweep returns the start direction and positive sweep, both in radians,
// of the non-reflex arc between the rays vertex->p1 and vertex->p2.
// Sweep runs in the direction of increasing angle (clockwise on screen).
func ArcSweep(vertex, p1, p2 Vec2) (start, sweep float64) {
	a1 := RayAngle(vertex, p1)
	a2 := RayAngle(vertex, p2)
	d := math.Mod(a2-a1+2*math.Pi, 2*math.Pi)
	if d > math.Pi {
		return a2, 2*math.Pi - d
	}
	return a1, d
}
