// Package geoboard is the core of an interactive 2D geometry board: points,
// the lines connecting them, angles formed by point triples, and circles
// defined by a center and a radius.
//
// # Scene
//
// A [Scene] owns every entity and hands out ids from a counter that
// restarts at 1 on [Scene.Clear]. Lines, angles and circles keep copies of
// the points they were built from; [Scene.MovePoint] rewrites all of them
// before returning.
//
//	scene := geoboard.NewScene()
//	a := scene.AddPoint(10, 10)
//	b := scene.AddPoint(50, 10)
//	line, _ := scene.AddLine(a, b)
//	scene.MovePoint(a.ID, 20, 20) // line.Start in the scene is now (20, 20)
//
// A circle's radius is fixed when it is created. Moving the center moves
// the circle; nothing else changes it.
//
// # Editor
//
// An [Editor] turns high-level input events (PointerMove, PointerDown,
// PointerUp, PointerLeave, Click, SetTool, Clear, Tick) into scene
// mutations using the active [Tool]. After each event it hands a [Frame]
// to the registered [Renderer].
//
//	ed := geoboard.NewEditor(nil, geoboard.DefaultConfig())
//	ed.SetTool(geoboard.ToolCircle)
//	ed.Tap(0, 0)  // center, point 1
//	ed.Tap(30, 0) // circle 2, radius 30
//
// # Rendering
//
// [BuildCommands] converts a frame into an ordered list of [RenderCommand]
// values. Backends only execute commands: geoboard/raster draws into PNG
// images with gogpu/gg, geoboard/window runs an [Ebitengine] window.
//
// Point labels are placed by [BestLabelPosition], which scores eight fixed
// offsets against nearby points, lines, angle labels, circles and the
// canvas edge.
//
// # ECS
//
// Scene events can be published into a [Donburi] world with the adapter in
// geoboard/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package geoboard
