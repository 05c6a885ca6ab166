package game

import "math/rand"

// PointSampler picks random-walk destinations inside a w×h rectangle.
type PointSampler interface {
	Sample(w, h int) Point
}

// uniformSampler samples uniformly over [0,w)×[0,h).
type uniformSampler struct {
	rng *rand.Rand
}

func newUniformSampler(seed int64) *uniformSampler {
	return &uniformSampler{rng: rand.New(rand.NewSource(seed))} // #nosec G404 -- simulation only
}

func (u *uniformSampler) Sample(w, h int) Point {
	return Point{X: u.rng.Float64() * float64(w), Y: u.rng.Float64() * float64(h)}
}

// StepReport lists the notable transitions of one tick.
type StepReport struct {
	Captured   bool // seeker became caught this tick
	Retargeted bool // jammer picked a new random-walk destination
}

// Step advances the world by one tick: pursuit, then random walk.
func (w *World) Step(sampler PointSampler) StepReport {
	w.Tick++
	var rep StepReport

	if !w.Seeker.Dragging && !w.SeekerFrozen() {
		wasCaught := w.Seeker.Caught
		w.stepPursuit()
		rep.Captured = !wasCaught && w.Seeker.Caught
	}
	if !w.Jammer.Dragging {
		rep.Retargeted = w.stepWander(sampler)
	}
	return rep
}

// stepPursuit moves the seeker one proportional step toward an active
// jammer whose signal reaches it.
func (w *World) stepPursuit() {
	if !w.Jammer.Active || !w.InSignal() {
		return
	}
	s := &w.Seeker
	if Distance(s.X, s.Y, w.Jammer.X, w.Jammer.Y) > arriveDist {
		s.X, s.Y = stepToward(s.X, s.Y, w.Jammer.X, w.Jammer.Y, s.Speed)
		return
	}
	s.Caught = true
}

// stepWander walks the jammer toward its random-walk target and samples a
// new one on arrival. It returns true when a target was sampled.
func (w *World) stepWander(sampler PointSampler) bool {
	j := &w.Jammer
	if !j.RandomWalk {
		return false
	}
	if j.Target == nil {
		w.retarget(sampler)
		return true
	}

	dist := Distance(j.X, j.Y, j.Target.X, j.Target.Y)
	if dist <= arriveDist {
		w.retarget(sampler)
		return true
	}
	// Never step past the target so the jammer stays inside the window.
	step := wanderSpeed
	if dist < step {
		step = dist
	}
	j.X, j.Y = stepToward(j.X, j.Y, j.Target.X, j.Target.Y, step)
	return false
}

func (w *World) retarget(sampler PointSampler) {
	p := sampler.Sample(w.Width, w.Height)
	w.Jammer.Target = &p
}
