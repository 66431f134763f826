package ebitenhost

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates. exit marks the pointer leaving the window.
type syntheticPointerEvent struct {
	x, y float64
	exit bool
}

// InjectMove queues a pointer move to (x, y). The event is consumed on the
// next Update instead of the real cursor position.
func (g *Game) InjectMove(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectExit queues the pointer leaving the window.
func (g *Game) InjectExit() {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{exit: true})
}

// InjectPath queues moves linearly interpolated from (fromX, fromY) to
// (toX, toY), one per frame. Minimum frames is 2.
func (g *Game) InjectPath(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := range frames {
		t := float64(i) / float64(frames-1)
		g.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// processInjectedInput pops one event from the inject queue and feeds it to
// the chart. Returns true if an event was consumed.
func (g *Game) processInjectedInput() bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	evt := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]

	if evt.exit {
		g.pointerExit()
	} else {
		g.pointerMove(evt.x, evt.y)
	}
	return true
}
