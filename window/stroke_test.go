package window

import (
	"math"
	"testing"

	"github.com/phanxgames/geoboard"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestDashSegmentsSolid(t *testing.T) {
	pts := []geoboard.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	segs := dashSegments(pts, nil, 0)
	if len(segs) != 2 {
		t.Fatalf("segments = %d, want 2", len(segs))
	}
	if segs[1].B != (geoboard.Vec2{X: 10, Y: 10}) {
		t.Errorf("last end = %v, want (10,10)", segs[1].B)
	}
}

func TestDashSegments(t *testing.T) {
	tests := []struct {
		name   string
		dash   []float64
		offset float64
		want   [][2]float64 // x ranges of visible pieces along y=0
	}{
		{"plain", []float64{5, 3}, 0, [][2]float64{{0, 5}, {8, 13}, {16, 20}}},
		{"negative offset", []float64{5, 3}, -5, [][2]float64{{0, 2}, {5, 10}, {13, 18}}},
		{"positive offset", []float64{5, 3}, 6, [][2]float64{{2, 7}, {10, 15}, {18, 20}}},
		{"offset wraps", []float64{4, 12}, -16, [][2]float64{{0, 4}, {16, 20}}},
	}
	pts := []geoboard.Vec2{{X: 0, Y: 0}, {X: 20, Y: 0}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := dashSegments(pts, tt.dash, tt.offset)
			if len(segs) != len(tt.want) {
				t.Fatalf("segments = %v, want %v", segs, tt.want)
			}
			for i, s := range segs {
				if !near(s.A.X, tt.want[i][0]) || !near(s.B.X, tt.want[i][1]) {
					t.Errorf("segment %d = %v..%v, want %v", i, s.A.X, s.B.X, tt.want[i])
				}
			}
		})
	}
}

func TestDashSegmentsAcrossCorner(t *testing.T) {
	pts := []geoboard.Vec2{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 10}}
	segs := dashSegments(pts, []float64{5, 3}, 0)
	// The first dash continues around the corner: 3 on x, 2 on y.
	if len(segs) < 2 {
		t.Fatalf("segments = %v", segs)
	}
	if segs[1].A != (geoboard.Vec2{X: 3, Y: 0}) || !near(segs[1].B.Y, 2) {
		t.Errorf("second piece = %v, want (3,0)-(3,2)", segs[1])
	}
}

func TestArcPoints(t *testing.T) {
	pts := arcPoints(0, 0, 10, 0, math.Pi/2)
	if len(pts) != arcSteps/4+1 {
		t.Errorf("points = %d, want %d", len(pts), arcSteps/4+1)
	}
	first, last := pts[0], pts[len(pts)-1]
	if !near(first.X, 10) || !near(first.Y, 0) {
		t.Errorf("first = %v, want (10,0)", first)
	}
	if !near(last.X, 0) || !near(last.Y, 10) {
		t.Errorf("last = %v, want (0,10)", last)
	}
	if n := len(arcPoints(0, 0, 10, 0, 0)); n != 2 {
		t.Errorf("zero sweep points = %d, want 2", n)
	}
}

func TestToColor(t *testing.T) {
	got := toColor(geoboard.ColorCircleFill)
	if got.R != 0x9b || got.G != 0x59 || got.B != 0xb6 || got.A != 51 {
		t.Errorf("toColor = %+v, want {155 89 182 51}", got)
	}
}
