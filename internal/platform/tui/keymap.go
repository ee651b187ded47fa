package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/npc-quest/internal/core"
)

// KeyMapper translates Bubble Tea key messages to simulation actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionAttack, false
	case "enter":
		return core.ActionConfirm, false
	case "ctrl+d":
		return core.ActionDebug, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// SessionKeyMap defines the key bindings shown in the in-game help line.
type SessionKeyMap struct {
	Move   key.Binding
	Attack key.Binding
	Debug  key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SessionKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Attack, k.Debug, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SessionKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Attack},
		{k.Debug, k.Quit},
	}
}

// DefaultSessionKeyMap returns default key bindings.
func DefaultSessionKeyMap() SessionKeyMap {
	return SessionKeyMap{
		Move: key.NewBinding(
			key.WithKeys("w", "a", "s", "d", "up", "down", "left", "right"),
			key.WithHelp("wasd/arrows", "move"),
		),
		Attack: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "attack"),
		),
		Debug: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "debug"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
