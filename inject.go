package geoboard

// Tap is the event sequence a real pointer produces for a click at (x, y):
// move, press, release, click.
func (e *Editor) Tap(x, y float64) {
	e.PointerMove(x, y)
	e.PointerDown()
	e.PointerUp()
	e.Click(x, y)
}

// DragPoint presses at (fromX, fromY), moves through steps linearly
// interpolated positions, and releases at (toX, toY). Like a browser, it
// delivers a click after the release; the editor swallows it when the drag
// moved a point. Minimum steps is 1.
func (e *Editor) DragPoint(fromX, fromY, toX, toY float64, steps int) {
	if steps < 1 {
		steps = 1
	}
	e.PointerMove(fromX, fromY)
	e.PointerDown()
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		e.PointerMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	e.PointerUp()
	e.Click(toX, toY)
}
