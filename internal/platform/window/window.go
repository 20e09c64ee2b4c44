// Package window runs fruit merge in a desktop window with Ebitengine.
// It draws the session in world units, so the pointer maps straight onto
// the drop cursor without the terminal's cell grid.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/merge-arcade/internal/core"
	"github.com/vovakirdan/merge-arcade/internal/games/fruitmerge"
	"github.com/vovakirdan/merge-arcade/internal/storage"
)

// Logical screen size in world units.
const (
	ScreenWidth  = 1200
	ScreenHeight = 1200
)

// Window layout
const (
	wallWidth  = 6
	hudX       = 16
	hudY       = 24
	lineHeight = 18
)

var (
	backgroundColor = color.RGBA{R: 250, G: 240, B: 215, A: 255}
	wallColor       = color.RGBA{R: 90, G: 60, B: 40, A: 255}
	guideColor      = color.RGBA{R: 0, G: 0, B: 0, A: 60}
	textColor       = color.RGBA{R: 40, G: 30, B: 20, A: 255}
)

// palette maps terminal colors onto RGB.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 200, G: 200, B: 200, A: 255},
	core.ColorRed:           {R: 180, G: 20, B: 40, A: 255},
	core.ColorGreen:         {R: 90, G: 170, B: 60, A: 255},
	core.ColorYellow:        {R: 230, G: 190, B: 40, A: 255},
	core.ColorBlue:          {R: 40, G: 90, B: 200, A: 255},
	core.ColorMagenta:       {R: 200, G: 60, B: 160, A: 255},
	core.ColorCyan:          {R: 60, G: 180, B: 200, A: 255},
	core.ColorWhite:         {R: 240, G: 240, B: 240, A: 255},
	core.ColorBrightRed:     {R: 240, G: 60, B: 70, A: 255},
	core.ColorBrightGreen:   {R: 160, G: 220, B: 80, A: 255},
	core.ColorBrightYellow:  {R: 250, G: 230, B: 80, A: 255},
	core.ColorBrightBlue:    {R: 90, G: 150, B: 250, A: 255},
	core.ColorBrightMagenta: {R: 250, G: 170, B: 190, A: 255},
	core.ColorBrightCyan:    {R: 120, G: 230, B: 230, A: 255},
	core.ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	core.ColorOrange:        {R: 250, G: 150, B: 30, A: 255},
	core.ColorGray:          {R: 150, G: 150, B: 150, A: 255},
	core.ColorBrown:         {R: 130, G: 90, B: 50, A: 255},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// App is the ebiten.Game driving one fruit merge session.
type App struct {
	game   *fruitmerge.Game
	store  *storage.Store
	logger *log.Logger
	face   font.Face
	record int
}

// NewApp wraps a game that has already been Reset.
// A nil store skips persistence and a nil logger discards output.
func NewApp(game *fruitmerge.Game, store *storage.Store, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	a := &App{
		game:   game,
		store:  store,
		logger: logger,
		face:   basicfont.Face7x13,
	}
	if store != nil {
		if high, err := store.HighScore(game.ID()); err == nil {
			a.record = high
		} else {
			logger.Warn("cannot read high score", "error", err)
		}
	}
	return a
}

// Update reads input and advances the session by one fixed step.
func (a *App) Update() error {
	s := a.game.Session()

	if inpututil.IsKeyJustReleased(ebiten.KeyEscape) || inpututil.IsKeyJustReleased(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustReleased(ebiten.KeyR) {
		a.saveRun(s.Summary())
		s.Reset()
	}

	x, _ := ebiten.CursorPosition()
	s.UpdateCursor(float64(x))

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) || inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		s.Drop()
	}

	s.Tick(a.game.FixedStep())
	return nil
}

// saveRun records a finished run. Empty runs are skipped.
func (a *App) saveRun(run core.RunSummary) {
	if run.Score <= 0 {
		return
	}
	a.logger.Info("run finished", "game", a.game.ID(), "score", run.Score, "rounds", run.Rounds, "best", run.BestTier)
	a.record = max(a.record, run.Score)
	if a.store == nil {
		return
	}
	if _, err := a.store.SaveRun(a.game.ID(), run); err != nil {
		a.logger.Error("cannot save run", "error", err)
	}
}

// Draw renders the container, fruits, cursor and HUD.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	f := a.game.Session().Frame()
	c := f.Container
	sp := f.Spawner

	vector.StrokeLine(screen, float32(sp.Pos.X), float32(sp.Pos.Y+sp.Radius),
		float32(sp.Pos.X), float32(c.Bottom), 2, guideColor, true)

	for _, fv := range f.Fruits {
		drawFruit(screen, fv.Pos, fv.Radius, rgba(fv.Color))
	}
	drawFruit(screen, sp.Pos, sp.Radius, rgba(sp.Color))

	drawContainer(screen, c)

	lines := []string{
		fmt.Sprintf("Score: %d  Record: %d", f.Score, max(a.record, f.Score)),
		fmt.Sprintf("Drops: %d  Merges: %d", f.Rounds, f.Merges),
		fmt.Sprintf("Next: %s  Best: %s", f.Next, f.Best),
		"Click/Space: drop  R: restart  Esc: quit",
	}
	for i, line := range lines {
		text.Draw(screen, line, a.face, hudX, hudY+i*lineHeight, textColor)
	}
}

func drawFruit(dst *ebiten.Image, pos core.Vec2, radius float64, clr color.RGBA) {
	vector.DrawFilledCircle(dst, float32(pos.X), float32(pos.Y), float32(radius), clr, true)
	vector.StrokeCircle(dst, float32(pos.X), float32(pos.Y), float32(radius), 1.5, wallColor, true)
}

func drawContainer(dst *ebiten.Image, c fruitmerge.Container) {
	for _, seg := range c.Segments() {
		vector.StrokeLine(dst, float32(seg.A.X), float32(seg.A.Y),
			float32(seg.B.X), float32(seg.B.Y), wallWidth, wallColor, true)
	}
}

// Layout keeps the logical screen in world units; Ebitengine scales it.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Run opens a window and plays until it is closed.
func Run(game *fruitmerge.Game, store *storage.Store, logger *log.Logger, size int) error {
	app := NewApp(game, store, logger)

	ebiten.SetWindowSize(size, size)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.DefaultTPS)

	err := ebiten.RunGame(app)

	// Quitting by key and closing the window both end up here.
	app.saveRun(game.Summary())

	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
