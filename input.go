package ringchart

// --- Hover context ---

// HoverContext carries hover event data.
type HoverContext struct {
	Item     *Item
	UserData any
	X, Y     float64 // surface coordinates
	Radius   float64 // polar coordinates around the chart center
	Angle    float64
}

// --- Pointer state ---

type pointerState struct {
	inside bool
	lastX  float64
	lastY  float64
}

// --- Handler registry ---

type hoverHandler struct {
	id uint32
	fn func(HoverContext)
}

type handlerRegistry struct {
	pointerEnter []hoverHandler
	pointerLeave []hoverHandler
	nextID       uint32
}

// CallbackHandle allows removing a registered chart-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerEnter:
		h.reg.pointerEnter = removeHoverHandler(h.reg.pointerEnter, h.id)
	case EventPointerLeave:
		h.reg.pointerLeave = removeHoverHandler(h.reg.pointerLeave, h.id)
	}
}

func removeHoverHandler(s []hoverHandler, id uint32) []hoverHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = hoverHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// OnPointerEnter registers a chart-level callback fired when an item becomes
// highlighted under the pointer.
func (c *Chart) OnPointerEnter(fn func(HoverContext)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.pointerEnter = append(c.handlers.pointerEnter, hoverHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, event: EventPointerEnter}
}

// OnPointerLeave registers a chart-level callback fired when the pointer
// leaves the highlighted item.
func (c *Chart) OnPointerLeave(fn func(HoverContext)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.pointerLeave = append(c.handlers.pointerLeave, hoverHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, event: EventPointerLeave}
}

// --- Pointer processing ---

// PointerMove runs the highlight state machine for a pointer at surface
// position (x, y), painting transitions onto s.
//
// If the highlighted item no longer holds the pointer in its own ring it is
// unhighlighted. Then, if nothing is highlighted, the first item under the
// pointer is highlighted. Each transition paints exactly once; moving within
// the highlighted item paints nothing. A nil s updates state only.
func (c *Chart) PointerMove(x, y float64, s Surface) {
	c.pointer = pointerState{inside: true, lastX: x, lastY: y}
	r, a := c.PolarFromPoint(x, y)

	if cur := c.highlighted; cur != nil {
		if cur.HitTest(r, a, false) != nil {
			return
		}
		cur.Unhighlight(s)
		c.firePointerLeave(cur, x, y, r, a)
	}

	if match := c.hitTestPolar(r, a); match != nil {
		match.Highlight(s)
		c.firePointerEnter(match, x, y, r, a)
	}
}

// PointerExit clears the highlight when the pointer leaves the host widget.
func (c *Chart) PointerExit(s Surface) {
	if !c.pointer.inside {
		return
	}
	c.pointer.inside = false
	cur := c.highlighted
	if cur == nil {
		return
	}
	x, y := c.pointer.lastX, c.pointer.lastY
	r, a := c.PolarFromPoint(x, y)
	cur.Unhighlight(s)
	c.firePointerLeave(cur, x, y, r, a)
}

// --- Event dispatch ---

func (c *Chart) firePointerEnter(it *Item, x, y, r, a float64) {
	ctx := HoverContext{Item: it, UserData: it.UserData, X: x, Y: y, Radius: r, Angle: a}
	// Chart-level handlers first.
	for _, h := range c.handlers.pointerEnter {
		h.fn(ctx)
	}
	// Per-item callback.
	if it.OnPointerEnter != nil {
		it.OnPointerEnter(ctx)
	}
}

func (c *Chart) firePointerLeave(it *Item, x, y, r, a float64) {
	ctx := HoverContext{Item: it, UserData: it.UserData, X: x, Y: y, Radius: r, Angle: a}
	for _, h := range c.handlers.pointerLeave {
		h.fn(ctx)
	}
	if it.OnPointerLeave != nil {
		it.OnPointerLeave(ctx)
	}
}
