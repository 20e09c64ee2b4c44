package core

// RuntimeConfig is what a host tells a game when it starts a session.
type RuntimeConfig struct {
	ScreenW  int   // columns available to Render
	ScreenH  int   // rows available to Render
	TickRate int   // host frames per second; physics still steps at a fixed dt
	Seed     int64 // RNG seed; hosts replace 0 with the current time
}

// DefaultConfig is an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is the running tally a host may show or poll.
type GameState struct {
	Score  int
	Rounds int // drops in the current session
}

// RunSummary is what gets saved when a session ends.
type RunSummary struct {
	Score    int
	Rounds   int
	Merges   int
	BestTier string // name of the largest fruit reached, empty if none
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState

	// Finished is set when this tick ended a session worth recording.
	Finished *RunSummary
}
