package fruitmerge

import (
	"strings"
	"testing"

	"github.com/vovakirdan/merge-arcade/internal/core"
	"github.com/vovakirdan/merge-arcade/internal/registry"
)

func testRuntimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func newTestGame(t *testing.T, mode Mode) *Game {
	t.Helper()
	g := New(mode)
	g.Reset(testRuntimeConfig())
	return g
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{"fruitmerge", "fruitmerge_classic"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("registry.Create(%q) error = %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}

	for _, info := range registry.List() {
		if strings.HasPrefix(info.ID, "fruitmerge") && info.Description == "" {
			t.Errorf("%s should carry a description", info.ID)
		}
	}
}

func TestGameDropAndTick(t *testing.T) {
	g := newTestGame(t, ModeProgressive)

	in := core.NewInputFrame()
	in.Set(core.ActionDrop)
	result := g.Step(in)

	if result.State.Score != 1 || result.State.Rounds != 1 {
		t.Errorf("State = %+v, expected score 1 rounds 1", result.State)
	}
	if result.Finished != nil {
		t.Error("Finished should be nil without a restart")
	}

	y0 := g.Session().Fruits()[0].Pos.Y
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if y1 := g.Session().Fruits()[0].Pos.Y; y1 <= y0 {
		t.Errorf("fruit y = %v after 30 steps, expected it to fall below %v", y1, y0)
	}
}

func TestGamePointerMovesCursor(t *testing.T) {
	g := newTestGame(t, ModeProgressive)

	col := g.layout.col(300)
	in := core.NewInputFrame()
	in.SetPointer(col)
	g.Step(in)

	x := g.Session().Spawner().Position().X
	if x != g.layout.worldX(col) {
		t.Errorf("cursor x = %v, expected %v", x, g.layout.worldX(col))
	}
	if g.layout.col(x) != col {
		t.Errorf("col(worldX(%d)) = %d", col, g.layout.col(x))
	}
}

func TestGamePointerOutsideContainerIgnored(t *testing.T) {
	g := newTestGame(t, ModeProgressive)
	before := g.Session().Spawner().Position()

	in := core.NewInputFrame()
	in.SetPointer(0)
	g.Step(in)

	if got := g.Session().Spawner().Position(); got != before {
		t.Errorf("cursor moved to %v for a pointer left of the container", got)
	}
}

func TestGameNudge(t *testing.T) {
	g := newTestGame(t, ModeProgressive)
	x0 := g.Session().Spawner().Position().X

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)

	if got := g.Session().Spawner().Position().X; got != x0-25 {
		t.Errorf("cursor x = %v after nudging left, expected %v", got, x0-25)
	}
}

func TestGameRestartReportsFinished(t *testing.T) {
	g := newTestGame(t, ModeProgressive)

	drop := core.NewInputFrame()
	drop.Set(core.ActionDrop)
	g.Step(drop)

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	result := g.Step(restart)

	if result.Finished == nil {
		t.Fatal("Finished should be set after restarting a scored session")
	}
	if result.Finished.Score != 1 || result.Finished.Rounds != 1 {
		t.Errorf("Finished = %+v, expected score 1 rounds 1", *result.Finished)
	}
	if result.State.Score != 0 || result.State.Rounds != 0 {
		t.Errorf("State after restart = %+v, expected zeros", result.State)
	}

	// Restarting an empty session records nothing.
	if again := g.Step(restart); again.Finished != nil {
		t.Error("Finished should be nil when restarting an empty session")
	}
}

func TestGameClassicMode(t *testing.T) {
	g := newTestGame(t, ModeClassic)

	in := core.NewInputFrame()
	in.Set(core.ActionDrop)
	g.Step(in)

	want := NewTierSet(Cherry, Strawberry, Orange, Lemon, Peach, Apple)
	if got := g.Session().Unlocked(); got != want {
		t.Errorf("Unlocked() = %v, expected %v", got.Tiers(), want.Tiers())
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, ModeProgressive)
		for i := 0; i < 400; i++ {
			in := core.NewInputFrame()
			in.SetPointer(30 + i%20)
			if i%25 == 0 {
				in.Set(core.ActionDrop)
			}
			g.Step(in)
		}
		return g.Session().Snapshot()
	}

	first, second := run(), run()
	if first.Score != second.Score || first.Rounds != second.Rounds || len(first.Fruits) != len(second.Fruits) {
		t.Errorf("Determinism failed: %+v vs %+v", first, second)
	}
	for i := range first.Fruits {
		if first.Fruits[i] != second.Fruits[i] {
			t.Errorf("fruit %d differs: %+v vs %+v", i, first.Fruits[i], second.Fruits[i])
		}
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, ModeProgressive)

	in := core.NewInputFrame()
	in.Set(core.ActionDrop)
	g.Step(in)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Score: 1", "Next: cherry", "└", "┘", "c"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() output missing %q:\n%s", want, out)
		}
	}

	sp := g.Session().Spawner().Position()
	cell := screen.GetCell(g.layout.col(sp.X), g.layout.row(sp.Y))
	if cell.Rune != Cherry.Glyph() {
		t.Errorf("spawner cell = %q, expected %q", cell.Rune, Cherry.Glyph())
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := New(ModeProgressive)
	cfg := testRuntimeConfig()
	cfg.ScreenW, cfg.ScreenH = 20, 10
	g.Reset(cfg)

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("Render() should ask for a larger terminal:\n%s", screen.String())
	}

	// Resizing keeps the session.
	in := core.NewInputFrame()
	in.Set(core.ActionDrop)
	g.Resize(80, 24)
	g.Step(in)
	g.Resize(100, 40)
	if g.State().Rounds != 1 {
		t.Errorf("Rounds = %d after resize, expected 1", g.State().Rounds)
	}
}
