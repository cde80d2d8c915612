package geoboard

import "testing"

func TestFindExistingPointEarliestWins(t *testing.T) {
	s := NewScene()
	s.AddPoint(100, 100)
	s.AddPoint(104, 100)

	p, ok := FindExistingPoint(102, 100, s.Points(), DefaultPointHitRadius)
	if !ok {
		t.Fatal("expected a hit")
	}
	if p.ID != 1 {
		t.Errorf("ID = %d, want 1", p.ID)
	}
}

func TestFindExistingPointTolerance(t *testing.T) {
	s := NewScene()
	s.AddPoint(0, 0)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 0, 0, true},
		{"on boundary", 10, 0, true},
		{"diagonal inside", 6, 8, true},
		{"just outside", 10.01, 0, false},
		{"far", 50, 50, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := FindExistingPoint(tt.x, tt.y, s.Points(), DefaultPointHitRadius)
			if got != tt.want {
				t.Errorf("hit = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindExistingPointEmpty(t *testing.T) {
	if _, ok := FindExistingPoint(0, 0, nil, DefaultPointHitRadius); ok {
		t.Error("expected no hit on empty scene")
	}
}

func TestFindLineNearPoint(t *testing.T) {
	s := NewScene()
	a := s.AddPoint(0, 0)
	b := s.AddPoint(100, 0)
	c := s.AddPoint(0, 3)
	d := s.AddPoint(100, 3)
	first, _ := s.AddLine(a, b)
	s.AddLine(c, d)

	tests := []struct {
		name   string
		x, y   float64
		wantID int
		want   bool
	}{
		{"between both lines picks earliest", 50, 1.5, first.ID, true},
		{"strictly inside", 50, -4.9, first.ID, true},
		{"exactly at tolerance", 50, -5, 0, false},
		{"past the end", 106, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, ok := FindLineNearPoint(tt.x, tt.y, s.Lines(), DefaultLineHitRadius)
			if ok != tt.want {
				t.Fatalf("hit = %v, want %v", ok, tt.want)
			}
			if ok && l.ID != tt.wantID {
				t.Errorf("ID = %d, want %d", l.ID, tt.wantID)
			}
		})
	}
}
