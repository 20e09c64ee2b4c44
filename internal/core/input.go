package core

// Action is a player intent, independent of the key or button behind it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // nudge the cursor left
	ActionRight          // nudge the cursor right
	ActionDrop           // drop the pending fruit
	ActionBack           // leave to the menu
	ActionRestart        // start a new session
	ActionQuit           // exit the program
	actionCount
)

var actionNames = [actionCount]string{"None", "Left", "Right", "Drop", "Back", "Restart", "Quit"}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame collects what happened during one tick: the discrete actions
// and the latest pointer column, if the host has a pointer. The zero value
// is an empty frame.
type InputFrame struct {
	actions uint16

	// Pointer is the pointer column in screen cells. Only meaningful when
	// HasPointer is set.
	Pointer    int
	HasPointer bool
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as triggered this tick.
func (f *InputFrame) Set(a Action) {
	f.actions |= 1 << a
}

// Has reports whether a was triggered this tick.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.actions&(1<<a) != 0
}

// Actions lists the triggered actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// SetPointer records the pointer column for this frame.
func (f *InputFrame) SetPointer(col int) {
	f.Pointer = col
	f.HasPointer = true
}

// Clear forgets the actions. The pointer is kept: it is a position, not an event.
func (f *InputFrame) Clear() {
	f.actions = 0
}

// Clone returns a copy of the frame.
func (f InputFrame) Clone() InputFrame {
	return f
}
