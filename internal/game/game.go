package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// TicksPerSecond is the fixed simulation rate.
const TicksPerSecond = 60

// Sounds is the audio surface the game drives. Implementations must be safe
// to call every tick.
type Sounds interface {
	SetJamming(on bool)
	PlayCapture()
}

// Game owns the world and threads it through input, physics and rendering.
type Game struct {
	width  int
	height int

	world      World
	controller *Controller
	sampler    PointSampler
	events     *EventLog
	sounds     Sounds

	showHUD      bool
	prevPointer  Point
	clipboardSet func(string) error
}

// config collects construction-time settings.
type config struct {
	width      int
	height     int
	sampler    PointSampler
	randomWalk bool
	continueOn bool
	sounds     Sounds
}

// Option configures a Game at construction.
type Option func(*config)

// WithSize sets the window dimensions.
func WithSize(w, h int) Option {
	return func(c *config) {
		c.width = w
		c.height = h
	}
}

// WithSeed makes random-walk targets deterministic.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.sampler = newUniformSampler(seed)
	}
}

// WithSampler replaces the random-walk target sampler.
func WithSampler(s PointSampler) Option {
	return func(c *config) {
		c.sampler = s
	}
}

// WithRandomWalk starts the jammer wandering.
func WithRandomWalk(on bool) Option {
	return func(c *config) {
		c.randomWalk = on
	}
}

// WithContinue sets whether the seeker keeps tracking after capture.
func WithContinue(on bool) Option {
	return func(c *config) {
		c.continueOn = on
	}
}

// WithSounds attaches an audio backend.
func WithSounds(s Sounds) Option {
	return func(c *config) {
		c.sounds = s
	}
}

// New builds a game from the given options.
func New(opts ...Option) *Game {
	cfg := config{
		width:      defaultWidth,
		height:     defaultHeight,
		continueOn: true,
	}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.sampler == nil {
		cfg.sampler = newUniformSampler(time.Now().UnixNano())
	}

	g := &Game{
		width:        cfg.width,
		height:       cfg.height,
		world:        NewWorld(cfg.width, cfg.height),
		sampler:      cfg.sampler,
		events:       NewEventLog(),
		sounds:       cfg.sounds,
		showHUD:      true,
		clipboardSet: writeClipboard,
	}
	g.world.Continue = cfg.continueOn
	g.world.Jammer.RandomWalk = cfg.randomWalk
	g.controller = NewController(g.width, g.events)
	g.events.Add(0, CatSystem, "start", "simulation started")
	return g
}

// World returns a copy of the current world state.
func (g *Game) World() World {
	return g.world
}

// Events returns the game's event log.
func (g *Game) Events() *EventLog {
	return g.events
}

// Update runs one fixed-rate tick: drain input, then advance physics.
func (g *Game) Update() error {
	g.handleInput()
	g.tick()
	return nil
}

// tick advances physics and syncs audio with the resulting state.
func (g *Game) tick() {
	rep := g.world.Step(g.sampler)
	if rep.Captured {
		g.events.Add(g.world.Tick, CatSeeker, "caught", "seeker caught the jammer")
		if g.sounds != nil {
			g.sounds.PlayCapture()
		}
	}
	if rep.Retargeted && g.world.Jammer.Target != nil {
		t := g.world.Jammer.Target
		g.events.Add(g.world.Tick, CatJammer, "retarget", fmt.Sprintf("walking to (%.0f, %.0f)", t.X, t.Y))
	}
	if g.sounds != nil {
		g.sounds.SetJamming(g.world.Jammer.Active)
	}
}

// Apply feeds pointer events to the controller in order.
func (g *Game) Apply(events ...PointerEvent) {
	for _, ev := range events {
		g.controller.Handle(&g.world, ev)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Configure sets the window properties the game expects.
func (g *Game) Configure() {
	ebiten.SetWindowTitle("RSSI-Based Seeker Simulation")
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetTPS(TicksPerSecond)
}
