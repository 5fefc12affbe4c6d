package asteroids

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/vector"
)

// Debris fades from bright to dim along this gradient.
var (
	debrisBright = colorful.Color{R: 1, G: 1, B: 1}
	debrisDim    = colorful.Color{R: 0.12, G: 0.12, B: 0.18}
)

var kindColors = map[Kind]core.Color{
	KindShip:         core.ColorBrightWhite,
	KindRock:         core.ColorWhite,
	KindSaucer:       core.ColorBrightMagenta,
	KindShipBullet:   core.ColorBrightYellow,
	KindSaucerBullet: core.ColorBrightRed,
	KindShipDebris:   core.ColorBrightWhite,
}

// debrisHex returns the colour of debris at brightness f in [0, 1].
func debrisHex(f float64) string {
	return debrisDim.BlendLab(debrisBright, f).Clamped().Hex()
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", minScreenW, minScreenH, g.runtime.ScreenW, g.runtime.ScreenH))
		return
	}

	for _, e := range g.arena.Each() {
		if e.Kind == KindShip {
			continue
		}
		g.renderEntity(dst, e)
	}
	g.renderShip(dst)
	g.renderHUD(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d - press R to restart", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderShip(dst *core.Screen) {
	ship, ok := g.shipEntity()
	if !ok || g.hyperTTL > 0 {
		return
	}
	g.renderEntity(dst, ship)
	if g.thrusting {
		jet := ship.Body.Outline(thrustJetShape)
		g.drawOutline(dst, jet, false, core.Cell{Color: core.ColorOrange})
	}
}

func (g *Game) renderEntity(dst *core.Screen, e *Entity) {
	switch e.Kind {
	case KindShipBullet, KindSaucerBullet:
		p := g.toCell(e.Position)
		dst.SetWithColor(p.X, p.Y, '•', kindColors[e.Kind])
	case KindDebris:
		p := g.toCell(e.Position)
		dst.SetWithHex(p.X, p.Y, '.', debrisHex(e.Fade))
	case KindShipDebris:
		g.drawOutline(dst, e.Outline(), false, core.Cell{Color: kindColors[e.Kind]})
	default:
		g.drawOutline(dst, e.Outline(), true, core.Cell{Color: kindColors[e.Kind]})
	}
}

// toCell maps a world position to a screen cell below the HUD.
func (g *Game) toCell(p vector.Vec2) core.Point {
	wc := g.cfg.World
	return core.Point{
		X: int(math.Floor(p.X / wc.CellWidth)),
		Y: int(math.Floor(p.Y/wc.CellHeight)) + hudRows,
	}
}

// drawOutline draws each edge of an outline with a glyph matching its slope.
// The template cell supplies the colour.
func (g *Game) drawOutline(dst *core.Screen, o vector.Outline, closed bool, tmpl core.Cell) {
	if len(o) == 0 {
		return
	}
	points := make([]core.Point, len(o))
	for i, p := range o {
		points[i] = g.toCell(p)
	}
	if len(points) == 1 {
		tmpl.Rune = '*'
		dst.SetCell(points[0].X, points[0].Y, tmpl)
		return
	}

	last := len(points)
	if !closed {
		last--
	}
	for i := 0; i < last; i++ {
		from, to := points[i], points[(i+1)%len(points)]
		c := tmpl
		c.Rune = edgeGlyph(from, to)
		dst.DrawLine(from, to, c)
	}
}

// edgeGlyph picks a line character for an edge between two cells. Cells are
// about twice as tall as they are wide, so a 45 degree edge in world space
// spans two columns per row.
func edgeGlyph(from, to core.Point) rune {
	dx := core.Abs(to.X - from.X)
	dy := core.Abs(to.Y - from.Y)
	switch {
	case dx == 0 && dy == 0:
		return '*'
	case dx >= 4*dy:
		return '-'
	case dy > dx:
		return '|'
	case (to.X > from.X) == (to.Y > from.Y):
		return '\\'
	default:
		return '/'
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	lives := strings.Repeat("A", core.Max(g.lives, 0))
	hud := fmt.Sprintf(" %s  Score: %06d  Lives: %-5s Wave: %d", g.Title(), g.score, lives, g.wave)
	if g.hyperTTL > 0 {
		hud += "  [hyperspace]"
	}
	dst.DrawTextColor(0, 0, hud, core.ColorBrightCyan)
}

func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	w := core.Max(len(title), len(subtitle)) + 6
	box := core.CenteredRect(dst.Width(), dst.Height(), w, 5)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	inner := box.Inset(1)
	dst.DrawTextColor(inner.X+(inner.W-len(title))/2, inner.Y, title, core.ColorBrightYellow)
	dst.DrawText(inner.X+(inner.W-len(subtitle))/2, inner.Y+2, subtitle)
}
