// Package ecs forwards geoboard scene events into a [Donburi] world.
//
// [NewDonburiSink] publishes each [geoboard.SceneEvent] as a typed Donburi
// event. Systems subscribe to [SceneEventType] and drain the queue with
// ProcessEvents once per tick:
//
//	scene.SetEventSink(ecs.NewDonburiSink(world))
//	ecs.SceneEventType.Subscribe(world, onSceneEvent)
//	...
//	ecs.SceneEventType.ProcessEvents(world)
//
// Every event carries the scene epoch it was emitted in, so a system can
// drop anything older than the last Cleared event.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
