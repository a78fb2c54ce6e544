package shmup

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/games/shmup/sim"
)

// Minimum screen size that still shows a usable playfield.
const (
	MinScreenW = 24
	MinScreenH = 12
)

// Visual characters for rendering
const (
	ShipChar   = '█'
	NoseChar   = '▲'
	BulletChar = '┃'
	LifeChar   = '♥'
)

// Mob glyphs from the largest to the smallest shape.
var mobGlyphs = []rune{'▓', '▓', '▒', '▒', '▒', '░', '░'}

// Spinner marks a mob's rotation in eight 45 degree steps.
var spinner = []rune{'|', '/', '-', '\\', '|', '/', '-', '\\'}

// Explosion glyphs by animation frame.
var explosionGlyphs = []rune{'.', '+', '*', '*', '#', '#', '*', '+', '.'}

var explosionColors = map[sim.ExplosionClass]core.Color{
	sim.ExplosionLarge:  core.ColorBrightYellow,
	sim.ExplosionSmall:  core.ColorYellow,
	sim.ExplosionPlayer: core.ColorBrightRed,
}

// viewport maps logical playfield units onto screen cells.
type viewport struct {
	x, y       int // Top-left cell of the playfield interior
	cols, rows int
	fieldW     int
	fieldH     int
}

// newViewport fits the playfield below the HUD row, inside a border, keeping
// its aspect ratio for cells roughly twice as tall as they are wide.
func newViewport(screenW, screenH, fieldW, fieldH int) viewport {
	innerW := screenW - 2
	innerH := screenH - 3 // HUD row and two border rows

	rows := innerH
	cols := rows * 2 * fieldW / fieldH
	if cols > innerW {
		cols = innerW
		rows = cols * fieldH / (2 * fieldW)
	}
	cols = max(cols, 1)
	rows = max(rows, 1)

	return viewport{
		x:      (screenW - cols) / 2,
		y:      2 + (innerH-rows)/2,
		cols:   cols,
		rows:   rows,
		fieldW: fieldW,
		fieldH: fieldH,
	}
}

// bounds returns the interior in screen cells.
func (v viewport) bounds() core.Rect {
	return core.NewRect(v.x, v.y, v.cols, v.rows)
}

// project maps a playfield rectangle to the cells it covers, clipped to the
// interior. Anything visible covers at least one cell.
func (v viewport) project(r core.Rect) (core.Rect, bool) {
	x0 := floorDiv(r.X*v.cols, v.fieldW)
	x1 := ceilDiv(r.Right()*v.cols, v.fieldW)
	y0 := floorDiv(r.Y*v.rows, v.fieldH)
	y1 := ceilDiv(r.Bottom()*v.rows, v.fieldH)

	x0, x1 = max(x0, 0), min(x1, v.cols)
	y0, y1 = max(y0, 0), min(y1, v.rows)
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}, false
	}
	return core.NewRect(v.x+x0, v.y+y0, x1-x0, y1-y0), true
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

// Render draws the current frame to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	v := newViewport(dst.Width(), dst.Height(), g.cfg.Field.Width, g.cfg.Field.Height)

	g.renderHUD(dst)
	b := v.bounds()
	dst.DrawBox(core.NewRect(b.X-1, b.Y-1, b.W+2, b.H+2))

	for _, d := range g.frame.Draws {
		cells, ok := v.project(d.Dest)
		if !ok {
			continue
		}
		drawSprite(dst, d.Sprite, cells)
	}

	g.renderOverlay(dst)
}

// drawSprite fills the covered cells with the sprite's glyph.
func drawSprite(dst *core.Screen, s sim.Sprite, cells core.Rect) {
	switch s.Kind {
	case sim.KindPlayer:
		dst.FillRect(cells, ShipChar, core.ColorBrightGreen)
		cx, _ := cells.Center()
		dst.SetColored(cx, cells.Y, NoseChar, core.ColorBrightCyan)

	case sim.KindMob:
		glyph := mobGlyphs[len(mobGlyphs)-1]
		if s.Variant >= 0 && s.Variant < len(mobGlyphs) {
			glyph = mobGlyphs[s.Variant]
		}
		dst.FillRect(cells, glyph, core.ColorOrange)
		cx, cy := cells.Center()
		dst.SetColored(cx, cy, spinner[(s.Angle/45)%len(spinner)], core.ColorGray)

	case sim.KindBullet:
		dst.FillRect(cells, BulletChar, core.ColorBrightYellow)

	case sim.KindExplosion:
		glyph := explosionGlyphs[min(s.Frame, len(explosionGlyphs)-1)]
		color, ok := explosionColors[sim.ExplosionClass(s.Variant)]
		if !ok {
			color = core.ColorYellow
		}
		dst.FillRect(cells, glyph, color)
	}
}

// renderHUD draws score and lives on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := g.frame.HUD

	scoreText := fmt.Sprintf("Score: %d", hud.Score)
	dst.DrawText(1, 0, scoreText)

	shieldText := fmt.Sprintf("Shield: %d", hud.Shield)
	dst.DrawTextCentered(0, shieldText)

	lives := strings.Repeat(string(LifeChar), max(hud.Lives, 0))
	livesText := "Lives: " + lives
	dst.DrawTextColored(dst.Width()-len([]rune(livesText))-1, 0, livesText, core.ColorBrightRed)
}

// renderOverlay draws pause and game over messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.frame.State == sim.GameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.frame.HUD.Score)
		drawCenteredBox(dst, "GAME OVER", subtitle)
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := min(max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightWhite)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
