package game

import "fmt"

// DragMode is what the pointer is currently holding. Only one drag can be
// active at a time.
type DragMode int

const (
	DragNone DragMode = iota
	DragSeeker
	DragJammer
	DragAngle
	DragLength
	DragRotation
)

func (d DragMode) String() string {
	switch d {
	case DragNone:
		return "idle"
	case DragSeeker:
		return "dragging-seeker"
	case DragJammer:
		return "dragging-jammer"
	case DragAngle:
		return "dragging-angle"
	case DragLength:
		return "dragging-length"
	case DragRotation:
		return "dragging-rotation"
	default:
		return "unknown"
	}
}

// PointerKind distinguishes pointer events.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerUp
	PointerMove
)

// PointerEvent is one pointer action in screen coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// Controller turns pointer events into world mutations.
type Controller struct {
	drag    DragMode
	layout  widgetLayout
	targets []hitTarget
	log     *EventLog
}

// NewController builds a controller for a window of the given width.
// log may be nil.
func NewController(width int, log *EventLog) *Controller {
	l := newWidgetLayout(width)
	return &Controller{
		layout:  l,
		targets: hitTargets(l),
		log:     log,
	}
}

// Drag returns the active drag mode.
func (c *Controller) Drag() DragMode {
	return c.drag
}

// Handle applies a single pointer event to w.
func (c *Controller) Handle(w *World, ev PointerEvent) {
	switch ev.Kind {
	case PointerDown:
		c.pointerDown(w, ev.X, ev.Y)
	case PointerUp:
		c.endDrag(w)
	case PointerMove:
		c.pointerMove(w, ev.X, ev.Y)
	}
}

// targetAt returns the first hit target under (x,y), or nil.
func (c *Controller) targetAt(w *World, x, y float64) *hitTarget {
	for i := range c.targets {
		if c.targets[i].hit(w, x, y) {
			return &c.targets[i]
		}
	}
	return nil
}

func (c *Controller) pointerDown(w *World, x, y float64) {
	if t := c.targetAt(w, x, y); t != nil {
		t.press(c, w, x, y)
	}
}

func (c *Controller) pointerMove(w *World, x, y float64) {
	switch c.drag {
	case DragSeeker:
		w.Seeker.X, w.Seeker.Y = w.clampToBounds(x, y)
	case DragJammer:
		w.Jammer.X, w.Jammer.Y = w.clampToBounds(x, y)
	case DragAngle:
		w.Jammer.SignalAngle = c.layout.angleFromSlider(x)
	case DragLength:
		w.Jammer.SignalLength = c.layout.lengthFromSlider(x, w.Diagonal())
	case DragRotation:
		w.Jammer.Rotation = BearingTo(w.Jammer.X, w.Jammer.Y, x, y)
	}
}

func (c *Controller) beginDrag(w *World, mode DragMode) {
	c.drag = mode
	w.Seeker.Dragging = mode == DragSeeker
	w.Jammer.Dragging = mode == DragJammer
}

func (c *Controller) endDrag(w *World) {
	c.drag = DragNone
	w.Seeker.Dragging = false
	w.Jammer.Dragging = false
}

func (c *Controller) toggleJam(w *World, _, _ float64) {
	w.Jammer.Active = !w.Jammer.Active
	state := "off"
	if w.Jammer.Active {
		state = "on"
	}
	c.record(w, CatUI, "jam_toggle", "jamming "+state)
}

func (c *Controller) toggleSignal(w *World, _, _ float64) {
	w.Jammer.Signal = w.Jammer.Signal.Toggle()
	c.record(w, CatUI, "signal_toggle", "signal "+w.Jammer.Signal.String())
}

func (c *Controller) reset(w *World, _, _ float64) {
	c.Reset(w)
}

// Reset replaces w with a fresh world and drops any drag in progress.
func (c *Controller) Reset(w *World) {
	c.drag = DragNone
	*w = w.Reset()
	c.record(w, CatUI, "reset", "simulation reset")
}

func (c *Controller) toggleContinue(w *World, _, _ float64) {
	w.Continue = !w.Continue
	c.record(w, CatUI, "continue", fmt.Sprintf("continue after capture: %t", w.Continue))
}

// ToggleRandomWalk flips the jammer's autonomous wandering.
func (c *Controller) ToggleRandomWalk(w *World) {
	w.Jammer.RandomWalk = !w.Jammer.RandomWalk
	if !w.Jammer.RandomWalk {
		w.Jammer.Target = nil
	}
	c.record(w, CatJammer, "random_walk", fmt.Sprintf("random walk: %t", w.Jammer.RandomWalk))
}

func (c *Controller) record(w *World, category, key, value string) {
	if c.log == nil {
		return
	}
	c.log.Add(w.Tick, category, key, value)
}
