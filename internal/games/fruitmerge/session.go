package fruitmerge

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/merge-arcade/internal/config"
	"github.com/vovakirdan/merge-arcade/internal/core"
	"github.com/vovakirdan/merge-arcade/internal/physics"
)

// ErrDoubleDestruction means a merge referenced a fruit that was already gone.
// It indicates an engine bug; the session panics rather than corrupt its score.
var ErrDoubleDestruction = errors.New("fruitmerge: fruit destroyed twice")

// Session owns one game's state: score, rounds, unlocked tiers, the pending
// and next tiers, and every live fruit. It is not safe for concurrent use;
// the host must call Drop, Tick and Reset from a single loop.
type Session struct {
	table     *TierTable
	policy    *ProgressionPolicy
	engine    MergeEngine
	container Container
	world     physics.World
	rng       RandomSource
	logger    *log.Logger

	bonusWeight int

	spawner  *Spawner
	score    int
	rounds   int
	unlocked TierSet
	next     Tier
	fruits   []*Fruit
	nextID   FruitID

	merges int
	best   Tier
}

// Option customizes a Session.
type Option func(*Session)

// WithLogger sets the logger used for merge and reset events.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPolicy overrides the progression policy built from config.
func WithPolicy(p *ProgressionPolicy) Option {
	return func(s *Session) {
		if p != nil {
			s.policy = p
		}
	}
}

// NewSession builds a session from config and installs the container walls
// into world. rng drives the next-tier draw.
func NewSession(cfg config.FruitMergeConfig, world physics.World, rng RandomSource, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("fruitmerge: %w", err)
	}
	table, err := NewTierTable(cfg.Tiers)
	if err != nil {
		return nil, err
	}
	policy, err := NewProgressionPolicy(cfg.Progression, table)
	if err != nil {
		return nil, err
	}

	container := NewContainer(cfg.Container)
	s := &Session{
		table:       table,
		policy:      policy,
		engine:      NewMergeEngine(table),
		container:   container,
		world:       world,
		rng:         rng,
		logger:      log.New(io.Discard),
		bonusWeight: cfg.Scoring.TerminalBonusWeight,
		spawner:     NewSpawner(container, cfg.Container.SpawnY),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.policy.checkLadder(table); err != nil {
		return nil, err
	}

	s.Reset()
	return s, nil
}

// Reset destroys every fruit, reinstalls the container and zeroes the
// counters. It is idempotent and must not be called during Tick.
func (s *Session) Reset() {
	for _, f := range s.fruits {
		s.world.RemoveBody(f.body)
	}
	s.fruits = nil
	s.container.Install(s.world)

	s.score = 0
	s.rounds = 0
	s.merges = 0
	s.unlocked = NewTierSet(Cherry)
	s.next = Cherry
	s.best = Cherry
	s.spawner.SetPendingTier(Cherry, s.table.Spec(Cherry))

	s.logger.Debug("session reset")
}

// Drop releases the pending fruit at the cursor and prepares the next one.
func (s *Session) Drop() FruitID {
	s.rounds++

	tier := s.spawner.Tier()
	f := s.spawn(tier, s.spawner.Position())
	s.score += s.table.Spec(tier).Score

	s.unlocked = s.policy.Unlocked(s.rounds, s.unlocked)
	// A wider pending disc is clamped inside the walls, so the next drop
	// can land right of where the player last aimed.
	s.spawner.SetPendingTier(s.next, s.table.Spec(s.next))
	s.next = s.policy.PickNext(s.unlocked, s.rng)

	return f.ID
}

// Tick steps physics by dt, refreshes fruit positions, then resolves and
// applies merges. dt should be a constant step, not the measured frame time.
func (s *Session) Tick(dt float64) []MergeAction {
	s.world.Step(dt)
	for _, f := range s.fruits {
		f.Pos = s.world.Position(f.body)
	}

	actions := s.engine.Resolve(s.fruits)
	for _, a := range actions {
		s.apply(a)
	}
	return actions
}

// apply destroys both parents and either creates the successor or awards
// the terminal bonus.
func (s *Session) apply(a MergeAction) {
	s.destroy(a.A)
	s.destroy(a.B)
	s.merges++

	if !a.Promotes {
		bonus := s.table.Spec(a.Tier).Score * s.bonusWeight
		s.score += bonus
		s.logger.Debug("terminal merge", "tier", a.Tier, "bonus", bonus)
		return
	}

	f := s.spawn(a.Result, a.At)
	s.score += s.table.Spec(a.Result).Score
	s.logger.Debug("merge", "tier", a.Tier, "result", a.Result, "id", f.ID)
}

// spawn creates a fruit and registers its body.
func (s *Session) spawn(t Tier, pos core.Vec2) *Fruit {
	s.nextID++
	spec := s.table.Spec(t)
	f := &Fruit{
		ID:     s.nextID,
		Tier:   t,
		Pos:    pos,
		Radius: spec.Radius,
	}
	f.body = s.world.AddBody(physics.Body{ID: uint64(f.ID), Radius: spec.Radius, Position: pos})
	s.fruits = append(s.fruits, f)

	if t > s.best {
		s.best = t
	}
	return f
}

// destroy releases a fruit's body and removes it from the live set.
func (s *Session) destroy(id FruitID) {
	for i, f := range s.fruits {
		if f.ID != id {
			continue
		}
		s.world.RemoveBody(f.body)
		s.fruits = append(s.fruits[:i], s.fruits[i+1:]...)
		return
	}
	panic(fmt.Errorf("%w: fruit %d", ErrDoubleDestruction, id))
}

// UpdateCursor moves the drop cursor to world x when the disc fits there.
func (s *Session) UpdateCursor(x float64) bool {
	return s.spawner.UpdateCursor(x)
}

// NudgeCursor moves the drop cursor by dx world units.
func (s *Session) NudgeCursor(dx float64) bool {
	return s.spawner.Nudge(dx)
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Rounds returns the number of drops so far.
func (s *Session) Rounds() int { return s.rounds }

// Merges returns the number of merges applied so far.
func (s *Session) Merges() int { return s.merges }

// Unlocked returns the tiers eligible for spawning.
func (s *Session) Unlocked() TierSet { return s.unlocked }

// NextTier returns the tier that will become pending after the next drop.
func (s *Session) NextTier() Tier { return s.next }

// PendingTier returns the tier the next drop will release.
func (s *Session) PendingTier() Tier { return s.spawner.Tier() }

// BestTier returns the highest tier that existed during this session.
func (s *Session) BestTier() Tier { return s.best }

// Container returns the container geometry.
func (s *Session) Container() Container { return s.container }

// Table returns the tier ladder.
func (s *Session) Table() *TierTable { return s.table }

// Spawner returns the drop cursor.
func (s *Session) Spawner() *Spawner { return s.spawner }

// FruitCount returns the number of live fruits.
func (s *Session) FruitCount() int { return len(s.fruits) }

// Fruits returns a copy of the live fruits in creation order.
func (s *Session) Fruits() []Fruit {
	out := make([]Fruit, len(s.fruits))
	for i, f := range s.fruits {
		out[i] = *f
	}
	return out
}

// Summary describes the session so far for score persistence.
func (s *Session) Summary() core.RunSummary {
	return core.RunSummary{
		Score:    s.score,
		Rounds:   s.rounds,
		Merges:   s.merges,
		BestTier: s.best.String(),
	}
}
