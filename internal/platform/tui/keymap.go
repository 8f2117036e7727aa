package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
//
// Terminals report no key releases, only presses and auto-repeat. A key
// that arrives again within the repeat window of its previous press is
// treated as held and dropped. The terminal's first repeat comes after its
// initial delay, which is longer than the window, so holding a key fires
// twice: on the press and when auto-repeat begins. The fast repeats after
// that are dropped. Taps slower than the window fire every time.
type KeyMapper struct {
	window  time.Duration
	lastKey string
	lastAt  time.Time
	now     func() time.Time
}

// NewKeyMapper creates a key mapper with the given repeat window.
// A zero window disables the debounce.
func NewKeyMapper(window time.Duration) *KeyMapper {
	return &KeyMapper{
		window: window,
		now:    time.Now,
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case "down", "s", "j":
		return core.ActionDown, false
	case "up", "w", "k", "x":
		return core.ActionRotate, false
	case " ":
		return core.ActionDrop, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame adds the key's action to the frame unless it is a held
// repeat. Returns true if the key was a quit request; quits are never
// debounced.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if isQuit {
		return true
	}
	if action == core.ActionNone {
		return false
	}
	if km.held(msg.String()) {
		return false
	}
	frame.Set(action)
	return false
}

// held records the press and reports whether it repeats the previous key
// within the window. Every repeat extends the hold.
func (km *KeyMapper) held(key string) bool {
	now := km.now()
	repeat := km.window > 0 && key == km.lastKey && now.Sub(km.lastAt) < km.window
	km.lastKey = key
	km.lastAt = now
	return repeat
}

// MenuAction represents a menu-specific action derived from input.
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

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
