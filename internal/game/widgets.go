package game

// Widget geometry, relative to the right edge of the window.
const (
	panelInset    = 140 // distance from the right window edge to the widget column
	buttonW       = 100
	buttonH       = 50
	sliderW       = 100 // px; one px of the angle slider is one degree
	sliderH       = 20
	checkboxSize  = 20
	jamButtonY    = 10
	signalButtonY = 70
	angleSliderY  = 130
	lengthSliderY = 190
	resetButtonY  = 250
	continueBoxY  = 310
)

type rect struct {
	x int
	y int
	w int
	h int
}

// contains uses half-open bounds: [x, x+w) × [y, y+h).
func (r rect) contains(px, py float64) bool {
	return px >= float64(r.x) && px < float64(r.x+r.w) &&
		py >= float64(r.y) && py < float64(r.y+r.h)
}

// widgetLayout holds the fixed screen rectangles of every control.
type widgetLayout struct {
	jam      rect
	signal   rect
	angle    rect
	length   rect
	reset    rect
	checkbox rect
}

func newWidgetLayout(width int) widgetLayout {
	x := width - panelInset
	return widgetLayout{
		jam:      rect{x: x, y: jamButtonY, w: buttonW, h: buttonH},
		signal:   rect{x: x, y: signalButtonY, w: buttonW, h: buttonH},
		angle:    rect{x: x, y: angleSliderY, w: sliderW, h: sliderH},
		length:   rect{x: x, y: lengthSliderY, w: sliderW, h: sliderH},
		reset:    rect{x: x, y: resetButtonY, w: buttonW, h: buttonH},
		checkbox: rect{x: x, y: continueBoxY, w: checkboxSize, h: checkboxSize},
	}
}

// angleFromSlider maps a pointer x onto the angle slider's domain.
func (l widgetLayout) angleFromSlider(px float64) float64 {
	return clamp(px-float64(l.angle.x), 0, maxSignalSpan)
}

// lengthFromSlider maps a pointer x onto [0, diagonal].
func (l widgetLayout) lengthFromSlider(px, diagonal float64) float64 {
	return clamp((px-float64(l.length.x))*diagonal/float64(sliderW), 0, diagonal)
}

// angleFill is the filled width of the angle slider bar.
func angleFill(j Jammer) float32 {
	return float32(j.SignalAngle / maxSignalSpan * sliderW)
}

// lengthFill is the filled width of the length slider bar.
func lengthFill(j Jammer, diagonal float64) float32 {
	if diagonal <= 0 {
		return 0
	}
	return float32(j.SignalLength / diagonal * sliderW)
}

// hitTarget pairs a pointer-down region with the action it triggers.
type hitTarget struct {
	name  string
	hit   func(w *World, x, y float64) bool
	press func(c *Controller, w *World, x, y float64)
}

func rectTarget(name string, r rect, press func(c *Controller, w *World, x, y float64)) hitTarget {
	return hitTarget{
		name:  name,
		hit:   func(_ *World, x, y float64) bool { return r.contains(x, y) },
		press: press,
	}
}

// hitTargets returns every pointer-down target in priority order. Fixed UI
// rectangles come first so they win over entities drawn underneath them.
func hitTargets(l widgetLayout) []hitTarget {
	return []hitTarget{
		rectTarget("jam", l.jam, (*Controller).toggleJam),
		rectTarget("signal", l.signal, (*Controller).toggleSignal),
		rectTarget("angle", l.angle, func(c *Controller, w *World, _, _ float64) { c.beginDrag(w, DragAngle) }),
		rectTarget("length", l.length, func(c *Controller, w *World, _, _ float64) { c.beginDrag(w, DragLength) }),
		rectTarget("reset", l.reset, (*Controller).reset),
		rectTarget("continue", l.checkbox, (*Controller).toggleContinue),
		{
			name: "seeker",
			hit: func(w *World, x, y float64) bool {
				return Distance(x, y, w.Seeker.X, w.Seeker.Y) < entityRadius
			},
			press: func(c *Controller, w *World, _, _ float64) { c.beginDrag(w, DragSeeker) },
		},
		{
			name: "jammer",
			hit: func(w *World, x, y float64) bool {
				return Distance(x, y, w.Jammer.X, w.Jammer.Y) < entityRadius
			},
			press: func(c *Controller, w *World, _, _ float64) { c.beginDrag(w, DragJammer) },
		},
		{
			name: "cone",
			hit: func(w *World, x, y float64) bool {
				j := w.Jammer
				return j.Signal == SignalCone && Distance(x, y, j.X, j.Y) < j.SignalLength
			},
			press: func(c *Controller, w *World, _, _ float64) { c.beginDrag(w, DragRotation) },
		},
	}
}
