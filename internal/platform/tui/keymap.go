package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/merge-arcade/internal/core"
)

type gameBinding struct {
	key.Binding
	action core.Action
}

// gameBindings are checked in order. Quit comes first so q never aims.
var gameBindings = []gameBinding{
	{key.NewBinding(key.WithKeys("ctrl+c", "q")), core.ActionQuit},
	{key.NewBinding(key.WithKeys(" ", "enter", "down", "s")), core.ActionDrop},
	{key.NewBinding(key.WithKeys("left", "a", "h")), core.ActionLeft},
	{key.NewBinding(key.WithKeys("right", "d", "l")), core.ActionRight},
	{key.NewBinding(key.WithKeys("r")), core.ActionRestart},
	{key.NewBinding(key.WithKeys("esc", "b")), core.ActionBack},
}

// MenuAction is what a key means on the mode picker.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

type menuBinding struct {
	key.Binding
	action MenuAction
}

var menuBindings = []menuBinding{
	{key.NewBinding(key.WithKeys("ctrl+c", "q")), MenuActionQuit},
	{key.NewBinding(key.WithKeys("up", "k", "w")), MenuActionUp},
	{key.NewBinding(key.WithKeys("down", "j", "s")), MenuActionDown},
	{key.NewBinding(key.WithKeys("enter", " ")), MenuActionSelect},
	{key.NewBinding(key.WithKeys("esc", "b")), MenuActionBack},
	{key.NewBinding(key.WithKeys("tab")), MenuActionScoreboard},
}

// KeyMapper turns Bubble Tea key and mouse messages into game input.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey returns the action bound to msg, ActionNone if unbound, and
// whether it asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range gameBindings {
		if key.Matches(msg, b.Binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame records msg in frame and reports a quit request.
// Keyboard aiming takes over from the mouse until the mouse moves again.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone:
		return isQuit
	case core.ActionLeft, core.ActionRight:
		frame.HasPointer = false
	}
	frame.Set(action)
	return isQuit
}

// MapMouseToFrame records the pointer column. Releasing the left button drops.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	frame.SetPointer(msg.X)
	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
		frame.Set(core.ActionDrop)
	}
}

// MapKeyToMenuAction returns the menu action bound to msg.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	for _, b := range menuBindings {
		if key.Matches(msg, b.Binding) {
			return b.action
		}
	}
	return MenuActionNone
}
