package window

import (
	"math"

	"github.com/phanxgames/geoboard"
)

// segment is one straight piece of a stroked path.
type segment struct {
	A, B geoboard.Vec2
}

// arcSteps is the number of segments used for a full circle.
const arcSteps = 64

// arcPoints returns a polyline approximating the arc from start through
// start+sweep (radians, clockwise in screen space).
func arcPoints(cx, cy, r, start, sweep float64) []geoboard.Vec2 {
	n := int(math.Ceil(math.Abs(sweep) / (2 * math.Pi) * arcSteps))
	if n < 1 {
		n = 1
	}
	pts := make([]geoboard.Vec2, n+1)
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		pts[i] = geoboard.Vec2{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	return pts
}

// dashSegments splits a polyline into the visible pieces of a dash pattern.
// An empty pattern yields the polyline's own segments. A negative offset
// shifts the pattern forward along the path, as canvas lineDashOffset does.
func dashSegments(pts []geoboard.Vec2, dash []float64, offset float64) []segment {
	if len(pts) < 2 {
		return nil
	}
	var total float64
	for _, d := range dash {
		total += d
	}
	if len(dash) == 0 || total <= 0 {
		out := make([]segment, 0, len(pts)-1)
		for i := 1; i < len(pts); i++ {
			out = append(out, segment{pts[i-1], pts[i]})
		}
		return out
	}

	// Find where in the pattern the path starts.
	pos := math.Mod(offset, total)
	if pos < 0 {
		pos += total
	}
	idx := 0
	for pos >= dash[idx] {
		pos -= dash[idx]
		idx = (idx + 1) % len(dash)
	}
	remaining := dash[idx] - pos
	on := idx%2 == 0

	var out []segment
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		length := geoboard.Distance(a, b)
		if length == 0 {
			continue
		}
		dir := geoboard.Vec2{X: (b.X - a.X) / length, Y: (b.Y - a.Y) / length}
		var done float64
		for done < length {
			step := math.Min(remaining, length-done)
			if on {
				out = append(out, segment{
					A: geoboard.Vec2{X: a.X + dir.X*done, Y: a.Y + dir.Y*done},
					B: geoboard.Vec2{X: a.X + dir.X*(done+step), Y: a.Y + dir.Y*(done+step)},
				})
			}
			done += step
			remaining -= step
			if remaining <= 0 {
				idx = (idx + 1) % len(dash)
				remaining = dash[idx]
				on = idx%2 == 0
			}
		}
	}
	return out
}
