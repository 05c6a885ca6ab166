package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

func writeClipboard(text string) error {
	if text == "" {
		text = " "
	}
	return clipboard.WriteAll(text)
}

// Snapshot renders the world state and the event log as plain text.
func (g *Game) Snapshot() string {
	w := g.world
	s, j := w.Seeker, w.Jammer
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Snapshot at T=%04d ---\n", w.Tick)
	fmt.Fprintf(&sb, "seeker  pos=(%.1f, %.1f) speed=%.1f caught=%t\n", s.X, s.Y, s.Speed, s.Caught)
	fmt.Fprintf(&sb, "jammer  pos=(%.1f, %.1f) active=%t random_walk=%t\n", j.X, j.Y, j.Active, j.RandomWalk)
	fmt.Fprintf(&sb, "signal  type=%s angle=%.1f length=%.1f rotation=%.1f\n",
		j.Signal, j.SignalAngle, j.SignalLength, j.Rotation)
	fmt.Fprintf(&sb, "range   distance=%.1f bearing=%.1f in_signal=%t continue=%t\n",
		Distance(s.X, s.Y, j.X, j.Y), BearingTo(j.X, j.Y, s.X, s.Y), w.InSignal(), w.Continue)
	sb.WriteString(g.events.Format())
	return sb.String()
}

// copySnapshot writes the snapshot to the system clipboard and logs the
// outcome.
func (g *Game) copySnapshot() {
	if err := g.clipboardSet(g.Snapshot()); err != nil {
		g.events.Add(g.world.Tick, CatSystem, "clipboard", "copy failed: "+err.Error())
		return
	}
	g.events.Add(g.world.Tick, CatSystem, "clipboard", "snapshot copied")
}
