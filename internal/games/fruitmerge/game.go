// Package fruitmerge implements a falling-fruit merge game.
// The player drops fruits into a container; two touching fruits of the same
// tier merge into the next tier until the watermelon is reached.
//
// Session holds the rules. Rigid-body motion is delegated to a physics.World,
// and Game adapts a Session to the arcade registry.
package fruitmerge

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/merge-arcade/internal/config"
	"github.com/vovakirdan/merge-arcade/internal/core"
	"github.com/vovakirdan/merge-arcade/internal/physics"
	"github.com/vovakirdan/merge-arcade/internal/registry"
)

// Mode selects how the next tier is chosen.
type Mode string

const (
	ModeProgressive Mode = "fruitmerge"
	ModeClassic     Mode = "fruitmerge_classic"
)

// Package-level variables for config
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	gameLogger       = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// SetLogger sets the logger handed to new sessions.
func SetLogger(l *log.Logger) {
	if l != nil {
		gameLogger = l
	}
}

func init() {
	registry.Register(string(ModeProgressive), func() registry.Game {
		return New(ModeProgressive)
	})
	registry.Register(string(ModeClassic), func() registry.Game {
		return New(ModeClassic)
	})
}

// Game adapts a Session to the arcade platform.
type Game struct {
	mode    Mode
	cfg     config.FruitMergeConfig
	session *Session
	layout  layout

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game in the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Fruit Merge (Classic)"
	}
	return "Fruit Merge"
}

// Description returns a one-line blurb for the mode picker.
func (g *Game) Description() string {
	if g.mode == ModeClassic {
		return "Any of the six small fruits can come from the first drop"
	}
	return "Start with cherries, bigger fruits unlock as you drop"
}

// loadConfig resolves config from disk or defaults and applies mode and preset.
func (g *Game) loadConfig() config.FruitMergeConfig {
	cfg, err := config.LoadFruitMerge(configPath)
	if err != nil {
		gameLogger.Warn("using default config", "path", configPath, "error", err)
		cfg = config.DefaultFruitMergeConfig()
	}

	if difficultyPreset != "" {
		config.ApplyFruitMergePreset(&cfg, difficultyPreset)
	}
	if g.mode == ModeClassic {
		cfg.Progression.Enabled = true
		cfg.Progression.Pool = config.PoolClassic
	}
	return cfg
}

// Reset starts a fresh session with a new physics world.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.cfg = g.loadConfig()

	world := physics.NewChipmunkWorld(physicsParams(g.cfg))
	rng := rand.New(rand.NewSource(rc.Seed))

	session, err := NewSession(g.cfg, world, rng, WithLogger(gameLogger))
	if err != nil {
		// Loaded configs are validated; this only trips on a broken embed.
		gameLogger.Error("invalid config, falling back to defaults", "error", err)
		g.cfg = config.DefaultFruitMergeConfig()
		world = physics.NewChipmunkWorld(physicsParams(g.cfg))
		session, err = NewSession(g.cfg, world, rng, WithLogger(gameLogger))
		if err != nil {
			panic(err)
		}
	}
	g.session = session

	g.Resize(rc.ScreenW, rc.ScreenH)
}

// physicsParams maps game config onto the physics world.
func physicsParams(cfg config.FruitMergeConfig) physics.Params {
	return physics.Params{
		Gravity:      cfg.Physics.Gravity,
		Iterations:   cfg.Physics.Iterations,
		Mass:         cfg.Fruit.Mass,
		Moment:       cfg.Fruit.Moment,
		Friction:     cfg.Fruit.Friction,
		Elasticity:   cfg.Fruit.Elasticity,
		WallFriction: cfg.Container.WallFriction,
	}
}

// Resize recomputes the screen layout without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
	if g.session != nil {
		g.layout = newLayout(g.session, g.cfg.Container.SpawnY, w, h)
	}
}

// Minimum screen size for a playable layout.
const (
	minScreenW = 32
	minScreenH = 16
)

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step applies input and advances the session by one fixed physics step.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var result core.StepResult

	if in.Has(core.ActionRestart) {
		summary := g.session.Summary()
		g.session.Reset()
		if summary.Score > 0 {
			result.Finished = &summary
		}
	}

	if g.tooSmall {
		result.State = g.State()
		return result
	}

	if in.HasPointer {
		g.session.UpdateCursor(g.layout.worldX(in.Pointer))
	}
	if in.Has(core.ActionLeft) {
		g.session.NudgeCursor(-g.cfg.Cursor.Nudge)
	}
	if in.Has(core.ActionRight) {
		g.session.NudgeCursor(g.cfg.Cursor.Nudge)
	}
	if in.Has(core.ActionDrop) {
		g.session.Drop()
	}

	g.session.Tick(g.FixedStep())

	result.State = g.State()
	return result
}

// FixedStep returns the physics step, independent of the host frame rate.
func (g *Game) FixedStep() float64 {
	return g.cfg.Physics.Step
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:  g.session.Score(),
		Rounds: g.session.Rounds(),
	}
}

// Summary returns the current session summary for score persistence.
func (g *Game) Summary() core.RunSummary {
	if g.session == nil {
		return core.RunSummary{}
	}
	return g.session.Summary()
}

// Session exposes the rules engine to hosts that render in world units.
func (g *Game) Session() *Session {
	return g.session
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Mouse/Left/Right: Aim | Click/Space: Drop | R: Restart | Q: Quit"
}
