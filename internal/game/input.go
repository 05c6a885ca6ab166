package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerEvents converts one tick of polled mouse state into the ordered
// event stream the controller consumes: move, then down, then up.
func pointerEvents(prev, cur Point, justPressed, justReleased bool) []PointerEvent {
	var evs []PointerEvent
	if cur != prev {
		evs = append(evs, PointerEvent{Kind: PointerMove, X: cur.X, Y: cur.Y})
	}
	if justPressed {
		evs = append(evs, PointerEvent{Kind: PointerDown, X: cur.X, Y: cur.Y})
	}
	if justReleased {
		evs = append(evs, PointerEvent{Kind: PointerUp, X: cur.X, Y: cur.Y})
	}
	return evs
}

// handleInput drains this tick's pointer and keyboard input.
func (g *Game) handleInput() {
	mx, my := ebiten.CursorPosition()
	cur := Point{X: float64(mx), Y: float64(my)}
	g.Apply(pointerEvents(g.prevPointer, cur,
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft))...)
	g.prevPointer = cur

	// W: toggle jammer random walk.
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.controller.ToggleRandomWalk(&g.world)
	}
	// R: reset, same as the button.
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.controller.Reset(&g.world)
	}
	// H: toggle HUD readout.
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	// C: copy a state snapshot to the clipboard.
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySnapshot()
	}
}
