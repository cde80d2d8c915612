// Package ecs bridges geoboard scene events into ECS worlds.
package ecs

import (
	"github.com/phanxgames/geoboard"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SceneEventType is the Donburi event type for scene mutations. Subscribe
// to it to react to points, lines, angles and circles being added, points
// moving, the animated line changing and the board being cleared.
var SceneEventType = events.NewEventType[geoboard.SceneEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink returns an EventSink that publishes every scene event to
// SceneEventType in world. Events are queued until ProcessEvents runs.
func NewDonburiSink(world donburi.World) geoboard.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event geoboard.SceneEvent) {
	SceneEventType.Publish(s.world, event)
}
