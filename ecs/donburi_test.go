package ecs

import (
	"testing"

	"github.com/phanxgames/geoboard"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestDonburiSinkForwardsSceneEvents(t *testing.T) {
	world := donburi.NewWorld()
	scene := geoboard.NewScene()
	scene.SetEventSink(NewDonburiSink(world))

	var received []geoboard.SceneEvent
	SceneEventType.Subscribe(world, func(w donburi.World, e geoboard.SceneEvent) {
		received = append(received, e)
	})

	p1 := scene.AddPoint(10, 20)
	p2 := scene.AddPoint(50, 20)
	scene.AddLine(p1, p2)
	scene.MovePoint(p1.ID, 15, 25)

	if len(received) != 0 {
		t.Fatalf("events delivered before processing: %d", len(received))
	}
	SceneEventType.ProcessEvents(world)

	want := []geoboard.EventType{
		geoboard.EventPointAdded,
		geoboard.EventPointAdded,
		geoboard.EventLineAdded,
		geoboard.EventPointMoved,
	}
	if len(received) != len(want) {
		t.Fatalf("events = %d, want %d", len(received), len(want))
	}
	for i, typ := range want {
		if received[i].Type != typ {
			t.Errorf("event %d = %v, want %v", i, received[i].Type, typ)
		}
	}
	moved := received[3]
	if moved.EntityID != p1.ID || moved.X != 15 || moved.Y != 25 {
		t.Errorf("moved = %+v", moved)
	}
}

func TestDonburiSinkEpochs(t *testing.T) {
	world := donburi.NewWorld()
	scene := geoboard.NewScene()
	scene.SetEventSink(NewDonburiSink(world))

	var epochs []uint32
	var cleared int
	SceneEventType.Subscribe(world, func(w donburi.World, e geoboard.SceneEvent) {
		epochs = append(epochs, e.Epoch)
		if e.Type == geoboard.EventCleared {
			cleared++
		}
	})

	scene.AddPoint(1, 1)
	scene.Clear()
	scene.AddPoint(2, 2)
	events.ProcessAllEvents(world)

	if cleared != 1 {
		t.Errorf("cleared events = %d, want 1", cleared)
	}
	if len(epochs) != 3 || epochs[0] != 1 || epochs[2] != 2 {
		t.Errorf("epochs = %v, want [1 ? 2]", epochs)
	}
}

func TestDonburiSinkMultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	SceneEventType.Subscribe(world, func(w donburi.World, e geoboard.SceneEvent) { count1++ })
	SceneEventType.Subscribe(world, func(w donburi.World, e geoboard.SceneEvent) { count2++ })

	sink.EmitEvent(geoboard.SceneEvent{Type: geoboard.EventLineAnimated, EntityID: 3})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("subscribers called %d and %d times, want 1 and 1", count1, count2)
	}
}
