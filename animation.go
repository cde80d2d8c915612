package geoboard

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation is the marching-ants state of the animated line. Phase is a
// free-running dash offset; it only advances while Active.
type Animation struct {
	Active bool
	Phase  int

	step   int
	period int
}

// Advance moves the phase one step forward, wrapping at the period.
func (a *Animation) Advance() {
	if !a.Active || a.period <= 0 {
		return
	}
	a.Phase = (a.Phase + a.step) % a.period
}

// hoverTween eases the hovered point's size multiplier from 1 up to the
// configured hover scale. There is no global animation manager; the Editor
// updates it on Tick.
type hoverTween struct {
	tween    *gween.Tween
	value    float64
	target   float64
	duration float32
}

func newHoverTween(duration float32) hoverTween {
	return hoverTween{value: 1, target: 1, duration: duration}
}

// start restarts the ease from 1 toward to.
func (h *hoverTween) start(to float64) {
	h.value = 1
	h.target = to
	h.tween = gween.New(1, float32(to), h.duration, ease.OutQuad)
}

func (h *hoverTween) reset() {
	h.tween = nil
	h.value = 1
	h.target = 1
}

// update advances the tween by dt seconds.
func (h *hoverTween) update(dt float32) {
	if h.tween == nil {
		return
	}
	val, finished := h.tween.Update(dt)
	h.value = float64(val)
	if finished {
		h.value = h.target
		h.tween = nil
	}
}
