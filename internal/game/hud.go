package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// hudLines builds the readout shown in the top-left corner.
func (g *Game) hudLines() []string {
	w := g.world
	s, j := w.Seeker, w.Jammer

	status := "searching"
	switch {
	case s.Caught && !w.Continue:
		status = "CAUGHT (frozen)"
	case s.Caught:
		status = "CAUGHT"
	case j.Active && w.InSignal():
		status = "tracking"
	}

	walk := "off"
	if j.RandomWalk {
		walk = "on"
	}

	return []string{
		fmt.Sprintf("T=%d  %s", w.Tick, status),
		fmt.Sprintf("dist %.0fpx  bearing %.0f", Distance(s.X, s.Y, j.X, j.Y), BearingTo(j.X, j.Y, s.X, s.Y)),
		fmt.Sprintf("%s  angle %.0f  rot %.0f", j.Signal, j.SignalAngle, j.Rotation),
		fmt.Sprintf("input: %s  walk: %s", g.controller.Drag(), walk),
		"[W] walk [R] reset [C] copy [H] hud",
	}
}

// drawHUD renders the readout panel.
func (g *Game) drawHUD(screen *ebiten.Image) {
	const lineH = 12 // debug font line height
	const charW = 6  // debug font char width
	const padX = 5
	const padY = 4

	lines := g.hudLines()
	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	boxW := float32(maxLen*charW + padX*2)
	boxH := float32(len(lines)*lineH + padY*2)
	bx, by := float32(4), float32(4)

	vector.FillRect(screen, bx, by, boxW, boxH, color.RGBA{R: 6, G: 10, B: 6, A: 210}, false)
	vector.StrokeRect(screen, bx, by, boxW, boxH, 1.0, color.RGBA{R: 60, G: 100, B: 60, A: 180}, false)

	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, int(bx)+padX, int(by)+padY+i*lineH)
	}
}
