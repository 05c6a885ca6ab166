package game

import "math"

const (
	// Default window dimensions.
	defaultWidth  = 800
	defaultHeight = 600

	spawnPadding  = 96  // distance of each spawn point from its window corner
	seekerSpeed   = 2.0 // px per tick
	wanderSpeed   = 2.0 // px per tick
	arriveDist    = 1.0 // capture / arrival threshold in px
	entityRadius  = 10  // draw and hit radius of both entities
	defaultAngle  = 90.0
	maxSignalSpan = 100.0 // slider domain for SignalAngle, in degrees
)

// SignalType is the shape of the jammer's emission.
type SignalType int

const (
	SignalOmni SignalType = iota
	SignalCone
)

func (s SignalType) String() string {
	switch s {
	case SignalOmni:
		return "omni"
	case SignalCone:
		return "cone"
	default:
		return "unknown"
	}
}

// Toggle returns the other signal shape.
func (s SignalType) Toggle() SignalType {
	if s == SignalOmni {
		return SignalCone
	}
	return SignalOmni
}

// Point is a screen-space position.
type Point struct {
	X, Y float64
}

// Seeker homes in on the jammer while it can hear it.
type Seeker struct {
	X, Y     float64
	Speed    float64 // px per tick
	Dragging bool
	Caught   bool
}

// Jammer emits the signal the seeker follows.
type Jammer struct {
	X, Y       float64
	Active     bool
	Dragging   bool
	RandomWalk bool
	Target     *Point // current random-walk destination, nil when unset

	Signal       SignalType
	SignalAngle  float64 // full cone aperture in degrees, [0, maxSignalSpan]
	SignalLength float64 // reach in px, [0, diagonal]
	Rotation     float64 // cone heading in degrees, [0, 360); 90 = down
}

// World is the complete simulation state. The game loop owns exactly one.
type World struct {
	Width  int
	Height int
	Seeker Seeker
	Jammer Jammer

	// Continue keeps the seeker tracking after it has been caught.
	Continue bool
	Tick     int
}

// NewWorld returns a freshly reset world of the given size.
func NewWorld(width, height int) World {
	w := World{Width: width, Height: height, Continue: true}
	w.Seeker = Seeker{
		X:     spawnPadding,
		Y:     spawnPadding,
		Speed: seekerSpeed,
	}
	w.Jammer = Jammer{
		X:            float64(width - spawnPadding),
		Y:            float64(height - spawnPadding),
		Signal:       SignalOmni,
		SignalAngle:  defaultAngle,
		SignalLength: w.Diagonal(),
	}
	return w
}

// Reset returns a fresh world of the same size. The Continue flag and the
// tick counter survive a reset.
func (w World) Reset() World {
	fresh := NewWorld(w.Width, w.Height)
	fresh.Continue = w.Continue
	fresh.Tick = w.Tick
	return fresh
}

// Diagonal is the window diagonal, the upper bound of SignalLength.
func (w World) Diagonal() float64 {
	return math.Hypot(float64(w.Width), float64(w.Height))
}

// SeekerFrozen reports whether a caught seeker should stop tracking.
func (w World) SeekerFrozen() bool {
	return w.Seeker.Caught && !w.Continue
}

// InSignal reports whether the seeker currently receives the jammer's
// signal. It ignores Active. A seeker within arriveDist of the jammer always
// receives it, so an overshoot past a cone apex still ends in capture.
func (w World) InSignal() bool {
	j := w.Jammer
	if Distance(w.Seeker.X, w.Seeker.Y, j.X, j.Y) <= arriveDist {
		return true
	}
	switch j.Signal {
	case SignalCone:
		return InCone(w.Seeker.X, w.Seeker.Y, j.X, j.Y, j.SignalAngle, j.SignalLength, j.Rotation)
	default:
		return Distance(w.Seeker.X, w.Seeker.Y, j.X, j.Y) <= j.SignalLength
	}
}

// clampToBounds keeps a dragged position inside the window rectangle.
func (w World) clampToBounds(x, y float64) (float64, float64) {
	return clamp(x, 0, float64(w.Width-1)), clamp(y, 0, float64(w.Height-1))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
