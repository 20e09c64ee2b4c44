package fruitmerge

import "github.com/vovakirdan/merge-arcade/internal/core"

// FruitView is what a renderer needs to draw one fruit.
type FruitView struct {
	ID     FruitID
	Tier   Tier
	Pos    core.Vec2
	Radius float64
	Color  core.Color
}

// SpawnerView is what a renderer needs to draw the drop cursor.
type SpawnerView struct {
	Tier   Tier
	Pos    core.Vec2
	Radius float64
	Color  core.Color
}

// Frame is the read-only per-frame view handed to renderers.
type Frame struct {
	Fruits    []FruitView
	Container Container
	Spawner   SpawnerView
	Score     int
	Rounds    int
	Merges    int
	Next      Tier
	NextColor core.Color
	Best      Tier
}

// Frame builds the renderer view of the current state.
func (s *Session) Frame() Frame {
	fruits := make([]FruitView, len(s.fruits))
	for i, f := range s.fruits {
		fruits[i] = FruitView{
			ID:     f.ID,
			Tier:   f.Tier,
			Pos:    f.Pos,
			Radius: f.Radius,
			Color:  s.table.Spec(f.Tier).Color,
		}
	}

	return Frame{
		Fruits:    fruits,
		Container: s.container,
		Spawner: SpawnerView{
			Tier:   s.spawner.Tier(),
			Pos:    s.spawner.Position(),
			Radius: s.spawner.Radius(),
			Color:  s.spawner.Color(),
		},
		Score:     s.score,
		Rounds:    s.rounds,
		Merges:    s.merges,
		Next:      s.next,
		NextColor: s.table.Spec(s.next).Color,
		Best:      s.best,
	}
}

// Snapshot captures the complete session state for determinism testing.
type Snapshot struct {
	Score    int
	Rounds   int
	Merges   int
	Pending  Tier
	Next     Tier
	Unlocked []Tier
	Cursor   core.Vec2
	Fruits   []SnapshotFruit
}

// SnapshotFruit is one live fruit in a Snapshot.
type SnapshotFruit struct {
	ID   FruitID
	Tier Tier
	Pos  core.Vec2
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	fruits := make([]SnapshotFruit, len(s.fruits))
	for i, f := range s.fruits {
		fruits[i] = SnapshotFruit{ID: f.ID, Tier: f.Tier, Pos: f.Pos}
	}
	return Snapshot{
		Score:    s.score,
		Rounds:   s.rounds,
		Merges:   s.merges,
		Pending:  s.spawner.Tier(),
		Next:     s.next,
		Unlocked: s.unlocked.Tiers(),
		Cursor:   s.spawner.Position(),
		Fruits:   fruits,
	}
}
