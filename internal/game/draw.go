package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// labelScale upscales the 7x13 bitmap font for widget labels.
const labelScale = 2

var (
	colBlack  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colRed    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colBlue   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	colGreen  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	colYellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	colGray   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	colWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

var labelFace = text.NewGoXFace(basicfont.Face7x13)

// Draw renders the current state. It never mutates the world.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBlack)

	w := g.world
	vector.FillCircle(screen, float32(w.Seeker.X), float32(w.Seeker.Y), entityRadius, colRed, true)
	vector.FillCircle(screen, float32(w.Jammer.X), float32(w.Jammer.Y), entityRadius, colBlue, true)
	drawSignal(screen, w.Jammer)

	g.drawWidgets(screen)
	g.events.Draw(screen, g.height)
	if g.showHUD {
		g.drawHUD(screen)
	}
}

// drawSignal outlines the jammer's emission: a circle for omni, a wedge for
// cone.
func drawSignal(screen *ebiten.Image, j Jammer) {
	jx, jy := float32(j.X), float32(j.Y)
	if j.Signal == SignalOmni {
		vector.StrokeCircle(screen, jx, jy, float32(j.SignalLength), 1.0, colGreen, true)
		return
	}
	ax, ay, bx, by := coneEdges(j)
	vector.StrokeLine(screen, jx, jy, float32(ax), float32(ay), 1.0, colGreen, true)
	vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), 1.0, colGreen, true)
	vector.StrokeLine(screen, float32(bx), float32(by), jx, jy, 1.0, colGreen, true)
}

// coneEdges returns the far endpoints of the cone's two bounding rays.
func coneEdges(j Jammer) (ax, ay, bx, by float64) {
	start := (j.Rotation - j.SignalAngle/2) * math.Pi / 180
	end := (j.Rotation + j.SignalAngle/2) * math.Pi / 180
	ax = j.X + j.SignalLength*math.Cos(start)
	ay = j.Y + j.SignalLength*math.Sin(start)
	bx = j.X + j.SignalLength*math.Cos(end)
	by = j.Y + j.SignalLength*math.Sin(end)
	return ax, ay, bx, by
}

// drawWidgets renders the control column with state-dependent colours.
func (g *Game) drawWidgets(screen *ebiten.Image) {
	l := g.controller.layout
	j := g.world.Jammer

	jamCol, jamLabel := colBlue, "Jam"
	if j.Active {
		jamCol, jamLabel = colGreen, "Jamming"
	}
	fillRect(screen, l.jam, jamCol)
	drawLabel(screen, jamLabel, l.jam.x+4, l.jam.y+12, colBlack)

	sigCol, sigLabel := colBlue, "Cone"
	if j.Signal == SignalOmni {
		sigCol, sigLabel = colGreen, "Omni"
	}
	fillRect(screen, l.signal, sigCol)
	drawLabel(screen, sigLabel, l.signal.x+4, l.signal.y+12, colBlack)

	drawSlider(screen, l.angle, angleFill(j), "Angle")
	drawSlider(screen, l.length, lengthFill(j, g.world.Diagonal()), "Size")

	fillRect(screen, l.reset, colWhite)
	drawLabel(screen, "Reset", l.reset.x+4, l.reset.y+12, colBlack)

	cb := l.checkbox
	x0, y0 := float32(cb.x), float32(cb.y)
	x1, y1 := float32(cb.x+cb.w), float32(cb.y+cb.h)
	vector.StrokeRect(screen, x0, y0, float32(cb.w), float32(cb.h), 2.0, colWhite, false)
	if g.world.Continue {
		vector.StrokeLine(screen, x0, y0, x1, y1, 2.0, colWhite, true)
		vector.StrokeLine(screen, x0, y1, x1, y0, 2.0, colWhite, true)
	}
	drawLabel(screen, "Cont.", cb.x+cb.w+10, cb.y-2, colWhite)
}

func drawSlider(screen *ebiten.Image, r rect, fill float32, label string) {
	fillRect(screen, r, colGray)
	vector.FillRect(screen, float32(r.x), float32(r.y), fill, float32(r.h), colYellow, false)
	drawLabel(screen, label, r.x, r.y-4, colBlack)
}

func fillRect(screen *ebiten.Image, r rect, c color.Color) {
	vector.FillRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), c, false)
}

func drawLabel(screen *ebiten.Image, s string, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(labelScale, labelScale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, labelFace, op)
}
