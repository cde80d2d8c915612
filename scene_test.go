package geoboard

import "testing"

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.NextID() != 1 {
		t.Errorf("NextID = %d, want 1", s.NextID())
	}
	if len(s.Points())+len(s.Lines())+len(s.Angles())+len(s.Circles()) != 0 {
		t.Error("new scene should be empty")
	}
}

func TestSceneLineFollowsMovedPoint(t *testing.T) {
	s := NewScene()
	p1 := s.AddPoint(10, 10)
	p2 := s.AddPoint(50, 10)
	if p1.ID != 1 || p2.ID != 2 {
		t.Fatalf("ids = %d, %d, want 1, 2", p1.ID, p2.ID)
	}
	line, ok := s.AddLine(p1, p2)
	if !ok {
		t.Fatal("AddLine rejected distinct points")
	}
	if line.ID != 3 {
		t.Errorf("line ID = %d, want 3", line.ID)
	}
	if line.Start.Pos() != (Vec2{10, 10}) || line.End.Pos() != (Vec2{50, 10}) {
		t.Errorf("line = %v-%v, want (10,10)-(50,10)", line.Start.Pos(), line.End.Pos())
	}

	if !s.MovePoint(1, 20, 20) {
		t.Fatal("MovePoint returned false")
	}
	got, _ := s.Line(3)
	if got.Start.Pos() != (Vec2{20, 20}) {
		t.Errorf("Start = %v, want (20,20)", got.Start.Pos())
	}
	if got.End.Pos() != (Vec2{50, 10}) {
		t.Errorf("End = %v, want (50,10)", got.End.Pos())
	}
}

func TestSceneAddLineRejectsSamePoint(t *testing.T) {
	s := NewScene()
	p := s.AddPoint(0, 0)
	if _, ok := s.AddLine(p, p); ok {
		t.Error("AddLine(p, p) accepted")
	}
	if len(s.Lines()) != 0 {
		t.Errorf("lines = %d, want 0", len(s.Lines()))
	}
	if s.NextID() != 2 {
		t.Errorf("NextID = %d, want 2 (rejection must not allocate)", s.NextID())
	}
}

func TestSceneStaleValuesAfterClear(t *testing.T) {
	s := NewScene()
	old1 := s.AddPoint(0, 0)
	old2 := s.AddPoint(10, 0)
	oldLine, _ := s.AddLine(old1, old2)

	s.Clear()
	p1 := s.AddPoint(5, 5)
	p2 := s.AddPoint(15, 5)
	if p1.ID != old1.ID || p2.ID != old2.ID {
		t.Fatalf("ids should restart at 1, got %d, %d", p1.ID, p2.ID)
	}

	if _, ok := s.AddLine(old1, p2); ok {
		t.Error("AddLine accepted a point from a cleared epoch")
	}
	if _, ok := s.AddCircle(old1, Vec2{}); ok {
		t.Error("AddCircle accepted a center from a cleared epoch")
	}
	l, ok := s.AddLine(p1, p2)
	if !ok {
		t.Fatal("AddLine rejected live points")
	}
	if _, ok := s.AddAngle(p1, oldLine, l); ok {
		t.Error("AddAngle accepted a line from a cleared epoch")
	}
}

func TestSceneMovePropagatesToEveryDependent(t *testing.T) {
	s := NewScene()
	a := s.AddPoint(100, 0)
	v := s.AddPoint(0, 0)
	b := s.AddPoint(0, 100)
	l1, _ := s.AddLine(v, a)
	l2, _ := s.AddLine(v, b)
	angle, ok := s.AddAngle(v, l1, l2)
	if !ok {
		t.Fatal("AddAngle rejected a valid angle")
	}
	circle, ok := s.AddCircle(v, Vec2{30, 40})
	if !ok {
		t.Fatal("AddCircle rejected a live center")
	}
	if circle.Radius != 50 {
		t.Errorf("Radius = %v, want 50", circle.Radius)
	}

	s.MovePoint(v.ID, 5, 5)

	for _, l := range s.Lines() {
		if l.Start.Pos() != (Vec2{5, 5}) {
			t.Errorf("line %d Start = %v, want (5,5)", l.ID, l.Start.Pos())
		}
	}
	got := s.Angles()[0]
	if got.ID != angle.ID {
		t.Fatalf("angle ID = %d, want %d", got.ID, angle.ID)
	}
	if got.Vertex.Pos() != (Vec2{5, 5}) {
		t.Errorf("Vertex = %v, want (5,5)", got.Vertex.Pos())
	}
	if got.Line1.Start.Pos() != (Vec2{5, 5}) || got.Line2.Start.Pos() != (Vec2{5, 5}) {
		t.Errorf("legs start = %v, %v, want (5,5)", got.Line1.Start.Pos(), got.Line2.Start.Pos())
	}
	c := s.Circles()[0]
	if c.Center.Pos() != (Vec2{5, 5}) {
		t.Errorf("Center = %v, want (5,5)", c.Center.Pos())
	}
	if c.Radius != 50 {
		t.Errorf("Radius = %v, want 50 (frozen)", c.Radius)
	}

	// Moving an arm point updates the leg end, not the vertex.
	s.MovePoint(a.ID, 200, 0)
	got = s.Angles()[0]
	if got.Line1.End.Pos() != (Vec2{200, 0}) {
		t.Errorf("Line1.End = %v, want (200,0)", got.Line1.End.Pos())
	}
	if got.Vertex.Pos() != (Vec2{5, 5}) {
		t.Errorf("Vertex moved to %v", got.Vertex.Pos())
	}
}

func TestSceneMoveUnknownPoint(t *testing.T) {
	s := NewScene()
	s.AddPoint(0, 0)
	if s.MovePoint(42, 1, 1) {
		t.Error("MovePoint(42) returned true")
	}
	if p, _ := s.Point(1); p.Pos() != (Vec2{0, 0}) {
		t.Errorf("point moved to %v", p.Pos())
	}
}

func TestSceneAddAngleRejections(t *testing.T) {
	s := NewScene()
	a := s.AddPoint(100, 0)
	v := s.AddPoint(0, 0)
	b := s.AddPoint(0, 100)
	va, _ := s.AddLine(v, a)
	vb, _ := s.AddLine(v, b)
	ab, _ := s.AddLine(a, b)
	va2, _ := s.AddLine(v, a)

	tests := []struct {
		name         string
		vertex       Point
		line1, line2 Line
	}{
		{"vertex not shared", v, va, ab},
		{"same line twice", v, va, va},
		{"duplicate arm", v, va, va2},
		{"vertex on neither", b, va, ab},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := s.AddAngle(tt.vertex, tt.line1, tt.line2); ok {
				t.Error("AddAngle accepted")
			}
		})
	}
	if len(s.Angles()) != 0 {
		t.Errorf("angles = %d, want 0", len(s.Angles()))
	}

	angle, ok := s.AddAngle(v, va, vb)
	if !ok {
		t.Fatal("AddAngle rejected a valid angle")
	}
	if angle.Line1.Start.ID != v.ID || angle.Line2.Start.ID != v.ID {
		t.Error("legs should start at the vertex")
	}
	if got := angle.Degrees(); !approxEqual(got, 90, 1e-9) {
		t.Errorf("Degrees = %v, want 90", got)
	}
}

func TestSceneZeroRadiusCircle(t *testing.T) {
	s := NewScene()
	c := s.AddPoint(10, 10)
	circle, ok := s.AddCircle(c, Vec2{10, 10})
	if !ok {
		t.Fatal("zero radius circle rejected")
	}
	if circle.Radius != 0 {
		t.Errorf("Radius = %v, want 0", circle.Radius)
	}
}

func TestSceneClear(t *testing.T) {
	s := NewScene()
	a := s.AddPoint(0, 0)
	b := s.AddPoint(10, 0)
	l, _ := s.AddLine(a, b)
	s.AddCircle(a, Vec2{5, 0})
	s.SetAnimatedLine(l.ID)
	epoch := s.Epoch()

	s.Clear()

	if s.NextID() != 1 {
		t.Errorf("NextID = %d, want 1", s.NextID())
	}
	if s.Epoch() != epoch+1 {
		t.Errorf("Epoch = %d, want %d", s.Epoch(), epoch+1)
	}
	if n := len(s.Points()) + len(s.Lines()) + len(s.Angles()) + len(s.Circles()); n != 0 {
		t.Errorf("entities = %d, want 0", n)
	}
	if s.AnimatedLine() != 0 {
		t.Errorf("AnimatedLine = %d, want 0", s.AnimatedLine())
	}
	if p := s.AddPoint(1, 1); p.ID != 1 {
		t.Errorf("first id after clear = %d, want 1", p.ID)
	}
}

func TestSceneSnapshotIsolated(t *testing.T) {
	s := NewScene()
	a := s.AddPoint(0, 0)
	b := s.AddPoint(10, 0)
	s.AddLine(a, b)

	snap := s.Snapshot()
	s.MovePoint(a.ID, 99, 99)

	if snap.Points[0].Pos() != (Vec2{0, 0}) {
		t.Errorf("snapshot point = %v, want (0,0)", snap.Points[0].Pos())
	}
	if snap.Lines[0].Start.Pos() != (Vec2{0, 0}) {
		t.Errorf("snapshot line start = %v, want (0,0)", snap.Lines[0].Start.Pos())
	}
	if snap.NextID != 4 {
		t.Errorf("snapshot NextID = %d, want 4", snap.NextID)
	}
}

func TestSceneSetAnimatedLine(t *testing.T) {
	s := NewScene()
	a := s.AddPoint(0, 0)
	b := s.AddPoint(10, 0)
	c := s.AddPoint(20, 0)
	l1, _ := s.AddLine(a, b)
	l2, _ := s.AddLine(b, c)

	s.SetAnimatedLine(l1.ID)
	s.SetAnimatedLine(l2.ID)

	animated := 0
	for _, l := range s.Lines() {
		if l.Animated {
			animated++
			if l.ID != l2.ID {
				t.Errorf("animated line = %d, want %d", l.ID, l2.ID)
			}
		}
	}
	if animated != 1 {
		t.Errorf("animated lines = %d, want 1", animated)
	}
	if s.SetAnimatedLine(99) {
		t.Error("SetAnimatedLine(99) returned true")
	}
	if s.AnimatedLine() != l2.ID {
		t.Errorf("AnimatedLine = %d, want %d", s.AnimatedLine(), l2.ID)
	}
}

type recordingSink struct {
	events []SceneEvent
}

func (r *recordingSink) EmitEvent(e SceneEvent) {
	r.events = append(r.events, e)
}

func TestSceneEvents(t *testing.T) {
	s := NewScene()
	sink := &recordingSink{}
	s.SetEventSink(sink)

	var handled []EventType
	h := s.OnEvent(func(e SceneEvent) {
		handled = append(handled, e.Type)
	})

	a := s.AddPoint(0, 0)
	b := s.AddPoint(10, 0)
	s.AddLine(a, b)
	s.MovePoint(a.ID, 1, 1)
	h.Remove()
	s.Clear()

	want := []EventType{EventPointAdded, EventPointAdded, EventLineAdded, EventPointMoved}
	if len(handled) != len(want) {
		t.Fatalf("handled = %v, want %v", handled, want)
	}
	for i := range want {
		if handled[i] != want[i] {
			t.Errorf("handled[%d] = %v, want %v", i, handled[i], want[i])
		}
	}
	if len(sink.events) != 5 {
		t.Fatalf("sink events = %d, want 5", len(sink.events))
	}
	last := sink.events[4]
	if last.Type != EventCleared || last.Epoch != 2 {
		t.Errorf("last event = %+v, want cleared in epoch 2", last)
	}
	if moved := sink.events[3]; moved.EntityID != a.ID || moved.X != 1 || moved.Y != 1 {
		t.Errorf("move event = %+v", moved)
	}
}

func TestCallbackHandleRemoveInsideHandler(t *testing.T) {
	s := NewScene()
	var calls int
	var h CallbackHandle
	h = s.OnEvent(func(SceneEvent) {
		calls++
		h.Remove()
	})
	s.AddPoint(0, 0)
	s.AddPoint(1, 1)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
