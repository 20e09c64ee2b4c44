package fruitmerge

import (
	"fmt"
	"math"

	"github.com/vovakirdan/merge-arcade/internal/core"
)

// Render characters
const (
	FruitChar   = '█'
	GuideChar   = '┊'
	WallChar    = '│'
	FloorChar   = '─'
	CornerLeft  = '└'
	CornerRight = '┘'
)

const (
	wallColor  = core.ColorWhite
	guideColor = core.ColorGray
)

// hudRows is the number of rows reserved above and below the playfield.
const hudRows = 2

// layout maps world coordinates onto terminal cells. Cells are about twice
// as tall as they are wide, so a column covers half the world units of a row.
type layout struct {
	originX float64 // world X at column offX
	originY float64 // world Y at row offY
	unitX   float64 // world units per column
	unitY   float64 // world units per row
	offX    int
	offY    int
	valid   bool
}

// newLayout fits the container and the spawn area above it into a w x h
// screen, leaving the first and last rows for the HUD.
func newLayout(s *Session, spawnY float64, w, h int) layout {
	rows := h - hudRows
	if w < 2 || rows < 2 {
		return layout{}
	}

	c := s.Container()
	maxR := s.Table().MaxRadius()
	top := math.Min(spawnY-maxR, c.Top)
	worldW := c.Width() + 2 // wall columns
	worldH := c.Bottom - top

	// One row and column of slack keep the floor and right wall on screen.
	unitY := math.Max(worldH/float64(rows-1), 2*worldW/float64(w-1))
	unitX := unitY / 2

	usedCols := int(math.Ceil(worldW / unitX))
	return layout{
		originX: c.Left - 1,
		originY: top,
		unitX:   unitX,
		unitY:   unitY,
		offX:    max(0, (w-usedCols)/2),
		offY:    1,
		valid:   true,
	}
}

// col returns the column containing world x.
func (l layout) col(x float64) int {
	return l.offX + int(math.Floor((x-l.originX)/l.unitX))
}

// row returns the row containing world y.
func (l layout) row(y float64) int {
	return l.offY + int(math.Floor((y-l.originY)/l.unitY))
}

// worldX returns the world X at the center of column c.
func (l layout) worldX(c int) float64 {
	return l.originX + (float64(c-l.offX)+0.5)*l.unitX
}

// worldY returns the world Y at the center of row r.
func (l layout) worldY(r int) float64 {
	return l.originY + (float64(r-l.offY)+0.5)*l.unitY
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || g.session == nil || !g.layout.valid {
		g.drawTooSmall(dst)
		return
	}

	f := g.session.Frame()
	l := g.layout

	g.drawGuide(dst, f)
	for _, fv := range f.Fruits {
		drawDisc(dst, l, fv.Pos, fv.Radius, fv.Color, fv.Tier.Glyph())
	}
	drawContainer(dst, l, f.Container)
	drawDisc(dst, l, f.Spawner.Pos, f.Spawner.Radius, f.Spawner.Color, f.Spawner.Tier.Glyph())

	g.drawHUD(dst, f)
}

// drawDisc fills every cell whose center lies inside the disc and marks the
// center cell with the tier glyph.
func drawDisc(dst *core.Screen, l layout, pos core.Vec2, radius float64, color core.Color, glyph rune) {
	c0, c1 := l.col(pos.X-radius), l.col(pos.X+radius)
	r0, r1 := l.row(pos.Y-radius), l.row(pos.Y+radius)

	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			if core.V(l.worldX(c), l.worldY(r)).Dist(pos) <= radius {
				dst.SetColored(c, r, FruitChar, color)
			}
		}
	}
	dst.SetColored(l.col(pos.X), l.row(pos.Y), glyph, core.ColorDefault)
}

// drawContainer draws both side walls and the floor.
func drawContainer(dst *core.Screen, l layout, c Container) {
	left, right := l.col(c.Left), l.col(c.Right)
	top, bottom := l.row(c.Top), l.row(c.Bottom)

	dst.DrawVLine(left, top, bottom-top, WallChar, wallColor)
	dst.DrawVLine(right, top, bottom-top, WallChar, wallColor)
	dst.DrawHLine(left+1, bottom, right-left-1, FloorChar, wallColor)
	dst.SetColored(left, bottom, CornerLeft, wallColor)
	dst.SetColored(right, bottom, CornerRight, wallColor)
}

// drawGuide draws a dotted line below the cursor down to the floor.
func (g *Game) drawGuide(dst *core.Screen, f Frame) {
	l := g.layout
	x := l.col(f.Spawner.Pos.X)
	from := l.row(f.Spawner.Pos.Y+f.Spawner.Radius) + 1
	to := l.row(f.Container.Bottom)
	for y := from; y < to; y++ {
		dst.SetColored(x, y, GuideChar, guideColor)
	}
}

// drawHUD draws the score line and the control hints.
func (g *Game) drawHUD(dst *core.Screen, f Frame) {
	text := fmt.Sprintf(" Score: %d  Drops: %d  Merges: %d  Next: ", f.Score, f.Rounds, f.Merges)
	dst.DrawText(1, 0, text)
	x := 1 + len([]rune(text))
	dst.DrawTextColored(x, 0, f.Next.String(), f.NextColor)
	x += len(f.Next.String())
	dst.DrawText(x, 0, fmt.Sprintf("  Best: %s", f.Best))

	dst.DrawTextCentered(dst.Height()-1, g.Controls())
}

// drawTooSmall tells the player to enlarge the terminal.
func (g *Game) drawTooSmall(dst *core.Screen) {
	h := dst.Height()
	dst.DrawTextCentered(h/2-1, "Terminal too small")
	dst.DrawTextCentered(h/2, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}
