package game

import (
	"math"
	"testing"
)

func down(x, y float64) PointerEvent { return PointerEvent{Kind: PointerDown, X: x, Y: y} }
func move(x, y float64) PointerEvent { return PointerEvent{Kind: PointerMove, X: x, Y: y} }
func up() PointerEvent { return PointerEvent{Kind: PointerUp} }

func newTestController() (*Controller, World, *EventLog) {
	log := NewEventLog()
	return NewController(800, log), NewWorld(800, 600), log
}

func TestHitTargets_PriorityOrder(t *testing.T) {
	want := []string{"jam", "signal", "angle", "length", "reset", "continue", "seeker", "jammer", "cone"}
	targets := hitTargets(newWidgetLayout(800))
	if len(targets) != len(want) {
		t.Fatalf("expected %d targets, got %d", len(want), len(targets))
	}
	for i, tg := range targets {
		if tg.name != want[i] {
			t.Fatalf("target %d: got %q, want %q", i, tg.name, want[i])
		}
	}
}

func TestController_UIBeatsEntityUnderneath(t *testing.T) {
	c, w, _ := newTestController()
	w.Seeker.X, w.Seeker.Y = 700, 30 // under the jam button
	if tg := c.targetAt(&w, 700, 30); tg == nil || tg.name != "jam" {
		t.Fatalf("jam button should win over the seeker, got %v", tg)
	}
	c.Handle(&w, down(700, 30))
	if !w.Jammer.Active || w.Seeker.Dragging {
		t.Fatal("pressing the jam button should toggle jamming and not grab the seeker")
	}
}

func TestController_JamToggleLogs(t *testing.T) {
	c, w, log := newTestController()
	c.Handle(&w, down(700, 30))
	c.Handle(&w, up())
	c.Handle(&w, down(700, 30))
	if w.Jammer.Active {
		t.Fatal("two presses should leave jamming off")
	}
	if n := log.Count(CatUI, "jam_toggle"); n != 2 {
		t.Fatalf("expected 2 jam_toggle entries, got %d", n)
	}
}

func TestController_SignalToggle(t *testing.T) {
	c, w, _ := newTestController()
	c.Handle(&w, down(700, 90))
	if w.Jammer.Signal != SignalCone {
		t.Fatal("signal button should switch to cone")
	}
}

func TestController_AngleSliderClamps(t *testing.T) {
	c, w, _ := newTestController()
	c.Handle(&w, down(670, 140))
	if c.Drag() != DragAngle {
		t.Fatalf("expected angle drag, got %s", c.Drag())
	}
	c.Handle(&w, move(700, 400))
	if w.Jammer.SignalAngle != 40 {
		t.Fatalf("slider offset 40px should be 40°, got %.1f", w.Jammer.SignalAngle)
	}
	c.Handle(&w, move(900, 140))
	if w.Jammer.SignalAngle != maxSignalSpan {
		t.Fatalf("angle should clamp to %.0f, got %.1f", maxSignalSpan, w.Jammer.SignalAngle)
	}
	c.Handle(&w, move(0, 140))
	if w.Jammer.SignalAngle != 0 {
		t.Fatalf("angle should clamp to 0, got %.1f", w.Jammer.SignalAngle)
	}
	c.Handle(&w, up())
	c.Handle(&w, move(700, 140))
	if w.Jammer.SignalAngle != 0 {
		t.Fatal("moves after release should not change the angle")
	}
}

func TestController_LengthSliderClamps(t *testing.T) {
	c, w, _ := newTestController()
	c.Handle(&w, down(670, 200))
	c.Handle(&w, move(710, 200))
	if math.Abs(w.Jammer.SignalLength-500) > 1e-9 {
		t.Fatalf("half the slider should be half the diagonal, got %.3f", w.Jammer.SignalLength)
	}
	c.Handle(&w, move(1000, 200))
	if w.Jammer.SignalLength != w.Diagonal() {
		t.Fatalf("length should clamp to the diagonal, got %.3f", w.Jammer.SignalLength)
	}
	c.Handle(&w, move(-50, 200))
	if w.Jammer.SignalLength != 0 {
		t.Fatalf("length should clamp to 0, got %.3f", w.Jammer.SignalLength)
	}
}

func TestController_DragSeeker(t *testing.T) {
	c, w, _ := newTestController()
	c.Handle(&w, down(spawnPadding+3, spawnPadding))
	if c.Drag() != DragSeeker || !w.Seeker.Dragging {
		t.Fatal("pressing on the seeker should start a seeker drag")
	}
	c.Handle(&w, move(200, 250))
	if w.Seeker.X != 200 || w.Seeker.Y != 250 {
		t.Fatalf("seeker should follow the pointer, got (%.0f,%.0f)", w.Seeker.X, w.Seeker.Y)
	}
	c.Handle(&w, move(-40, 9000))
	if w.Seeker.X != 0 || w.Seeker.Y != 599 {
		t.Fatalf("dragged seeker should stay in the window, got (%.0f,%.0f)", w.Seeker.X, w.Seeker.Y)
	}
	c.Handle(&w, up())
	if c.Drag() != DragNone || w.Seeker.Dragging {
		t.Fatal("pointer up should return to idle")
	}
}

func TestController_DragJammer(t *testing.T) {
	c, w, _ := newTestController()
	c.Handle(&w, down(704, 500))
	if c.Drag() != DragJammer || !w.Jammer.Dragging || w.Seeker.Dragging {
		t.Fatal("pressing on the jammer should start a jammer drag only")
	}
	c.Handle(&w, move(300, 300))
	if w.Jammer.X != 300 || w.Jammer.Y != 300 {
		t.Fatal("jammer should follow the pointer")
	}
}

func TestController_RotationDragOnlyForCone(t *testing.T) {
	c, w, _ := newTestController()
	// Omni: pressing inside the signal but off both entities does nothing.
	c.Handle(&w, down(400, 300))
	if c.Drag() != DragNone {
		t.Fatalf("omni signal should not allow rotation drag, got %s", c.Drag())
	}

	w.Jammer.Signal = SignalCone
	c.Handle(&w, down(400, 300))
	if c.Drag() != DragRotation {
		t.Fatalf("pressing inside a cone's reach should start rotation drag, got %s", c.Drag())
	}
	c.Handle(&w, move(w.Jammer.X, w.Jammer.Y+50))
	if math.Abs(w.Jammer.Rotation-90) > 1e-9 {
		t.Fatalf("pointer straight below should rotate to 90, got %.3f", w.Jammer.Rotation)
	}
	c.Handle(&w, move(w.Jammer.X, w.Jammer.Y-50))
	if math.Abs(w.Jammer.Rotation-270) > 1e-9 {
		t.Fatalf("pointer straight above should rotate to 270, got %.3f", w.Jammer.Rotation)
	}
}

func TestController_ResetButton(t *testing.T) {
	c, w, log := newTestController()
	w.Jammer.Active = true
	w.Seeker.X = 300
	w.Continue = false
	c.Handle(&w, down(700, 270))
	fresh := NewWorld(800, 600)
	if w.Seeker != fresh.Seeker || w.Jammer != fresh.Jammer {
		t.Fatal("reset button should restore spawn state")
	}
	if w.Continue {
		t.Fatal("reset should not touch the continue flag")
	}
	if log.Count(CatUI, "reset") != 1 {
		t.Fatal("reset should be logged")
	}
}

func TestController_ContinueCheckbox(t *testing.T) {
	c, w, _ := newTestController()
	c.Handle(&w, down(665, 315))
	if w.Continue {
		t.Fatal("checkbox should turn continue off")
	}
	c.Handle(&w, down(665, 315))
	if !w.Continue {
		t.Fatal("checkbox should turn continue back on")
	}
}

func TestController_MissDoesNothing(t *testing.T) {
	c, w, log := newTestController()
	before := w
	c.Handle(&w, down(300, 500))
	if c.Drag() != DragNone || w != before || log.Len() != 0 {
		t.Fatal("a press on empty space should not change anything")
	}
}

func TestController_ToggleRandomWalkClearsTarget(t *testing.T) {
	c, w, _ := newTestController()
	c.ToggleRandomWalk(&w)
	if !w.Jammer.RandomWalk {
		t.Fatal("random walk should be on")
	}
	w.Jammer.Target = &Point{X: 1, Y: 2}
	c.ToggleRandomWalk(&w)
	if w.Jammer.RandomWalk || w.Jammer.Target != nil {
		t.Fatal("turning random walk off should clear the target")
	}
}
