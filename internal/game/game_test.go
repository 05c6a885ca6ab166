package game

import (
	"errors"
	"strings"
	"testing"
)

type recordingSounds struct {
	jamming  []bool
	captures int
}

func (r *recordingSounds) SetJamming(on bool) { r.jamming = append(r.jamming, on) }
func (r *recordingSounds) PlayCapture() { r.captures++ }

func TestNew_AppliesOptions(t *testing.T) {
	g := New(WithSize(1024, 768), WithSeed(7), WithRandomWalk(true), WithContinue(false))
	w, h := g.Layout(0, 0)
	if w != 1024 || h != 768 {
		t.Fatalf("layout should be 1024x768, got %dx%d", w, h)
	}
	world := g.World()
	if world.Width != 1024 || world.Jammer.X != 1024-spawnPadding {
		t.Fatalf("world should use the configured size: %+v", world)
	}
	if !world.Jammer.RandomWalk || world.Continue {
		t.Fatal("random walk and continue options should be applied")
	}
	if g.Events().Count(CatSystem, "start") != 1 {
		t.Fatal("start should be logged")
	}
}

func TestGame_HuntEndToEnd(t *testing.T) {
	sounds := &recordingSounds{}
	g := New(WithSounds(sounds), WithSampler(&fixedSampler{points: []Point{{X: 1, Y: 1}}}))

	// Switch jamming on through the UI, then let physics run.
	g.Apply(down(700, 30), up())
	for i := 0; i < 1000 && !g.World().Seeker.Caught; i++ {
		g.tick()
	}
	if !g.World().Seeker.Caught {
		t.Fatal("seeker should catch an active omni jammer with full-diagonal reach")
	}
	if sounds.captures != 1 {
		t.Fatalf("capture sound should play once, got %d", sounds.captures)
	}
	if len(sounds.jamming) == 0 || !sounds.jamming[len(sounds.jamming)-1] {
		t.Fatal("jamming sound should be on while the jammer is active")
	}
	if g.Events().Count(CatSeeker, "caught") != 1 {
		t.Fatal("capture should be logged once")
	}
}

func TestGame_ResetThroughButton(t *testing.T) {
	g := New(WithSampler(&fixedSampler{points: []Point{{X: 1, Y: 1}}}))
	g.Apply(down(700, 30), up())
	for i := 0; i < 20; i++ {
		g.tick()
	}
	g.Apply(down(700, 270), up())
	fresh := NewWorld(defaultWidth, defaultHeight)
	if got := g.World(); got.Seeker != fresh.Seeker || got.Jammer != fresh.Jammer {
		t.Fatal("reset button should restore the spawn state")
	}
}

func TestPointerEvents_Order(t *testing.T) {
	evs := pointerEvents(Point{X: 1, Y: 1}, Point{X: 5, Y: 6}, true, true)
	if len(evs) != 3 {
		t.Fatalf("expected move, down, up; got %+v", evs)
	}
	if evs[0].Kind != PointerMove || evs[1].Kind != PointerDown || evs[2].Kind != PointerUp {
		t.Fatalf("unexpected order: %+v", evs)
	}
	if evs[1].X != 5 || evs[1].Y != 6 {
		t.Fatal("events should carry the current cursor position")
	}
	if evs := pointerEvents(Point{X: 5, Y: 6}, Point{X: 5, Y: 6}, false, false); len(evs) != 0 {
		t.Fatalf("a still, idle pointer should produce no events, got %+v", evs)
	}
}

func TestSnapshot_ContainsState(t *testing.T) {
	g := New(WithSeed(1))
	g.Apply(down(700, 90)) // switch to cone
	snap := g.Snapshot()
	for _, want := range []string{"seeker  pos=(96.0, 96.0)", "type=cone", "angle=90.0", "signal_toggle"} {
		if !strings.Contains(snap, want) {
			t.Fatalf("snapshot missing %q:\n%s", want, snap)
		}
	}
}

func TestCopySnapshot_LogsOutcome(t *testing.T) {
	g := New(WithSeed(1))
	var copied string
	g.clipboardSet = func(s string) error { copied = s; return nil }
	g.copySnapshot()
	if !strings.Contains(copied, "--- Snapshot at T=0000 ---") {
		t.Fatalf("clipboard should receive the snapshot, got %q", copied)
	}

	g.clipboardSet = func(string) error { return errors.New("no clipboard") }
	g.copySnapshot()
	last, ok := lastEntry(g.Events())
	if !ok || !strings.Contains(last.Value, "no clipboard") {
		t.Fatalf("clipboard failure should be logged, got %+v", last)
	}
}

func TestHUDLines_Status(t *testing.T) {
	g := New(WithSeed(1), WithContinue(false))
	g.world.Seeker.Caught = true
	if lines := g.hudLines(); !strings.Contains(lines[0], "CAUGHT (frozen)") {
		t.Fatalf("HUD should show a frozen capture, got %q", lines[0])
	}
}

func lastEntry(el *EventLog) (EventEntry, bool) {
	r := el.Recent()
	if len(r) == 0 {
		return EventEntry{}, false
	}
	return r[len(r)-1], true
}
