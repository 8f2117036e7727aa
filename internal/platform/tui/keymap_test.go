package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// fakeClock is advanced manually by tests.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestMapper(window time.Duration) (*KeyMapper, *fakeClock) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	km := NewKeyMapper(window)
	km.now = clk.now
	return km, clk
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(0)
	tests := []struct {
		key    string
		want   core.Action
		isQuit bool
	}{
		{"left", core.ActionLeft, false},
		{"a", core.ActionLeft, false},
		{"right", core.ActionRight, false},
		{"l", core.ActionRight, false},
		{"down", core.ActionDown, false},
		{"up", core.ActionRotate, false},
		{"x", core.ActionRotate, false},
		{" ", core.ActionDrop, false},
		{"enter", core.ActionConfirm, false},
		{"esc", core.ActionBack, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"z", core.ActionNone, false},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			got, quit := km.MapKey(keyMsg(tc.key))
			if got != tc.want || quit != tc.isQuit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.key, got, quit, tc.want, tc.isQuit)
			}
		})
	}
}

func TestMapKeyToFrameDropsHeldRepeats(t *testing.T) {
	km, clk := newTestMapper(60 * time.Millisecond)
	frame := core.NewInputFrame()

	km.MapKeyToFrame(keyMsg("left"), &frame)
	clk.advance(30 * time.Millisecond)
	km.MapKeyToFrame(keyMsg("left"), &frame) // auto-repeat
	clk.advance(30 * time.Millisecond)
	km.MapKeyToFrame(keyMsg("left"), &frame) // still held

	if frame.Len() != 1 {
		t.Fatalf("held key produced %d actions, expected 1", frame.Len())
	}

	clk.advance(200 * time.Millisecond)
	km.MapKeyToFrame(keyMsg("left"), &frame) // released and pressed again
	if frame.Len() != 2 {
		t.Errorf("second tap produced %d actions total, expected 2", frame.Len())
	}
}

func TestMapKeyToFrameHoldAfterInitialDelay(t *testing.T) {
	km, clk := newTestMapper(60 * time.Millisecond)
	frame := core.NewInputFrame()

	km.MapKeyToFrame(keyMsg("left"), &frame) // press
	clk.advance(500 * time.Millisecond)
	km.MapKeyToFrame(keyMsg("left"), &frame) // first auto-repeat after the delay
	for range 10 {
		clk.advance(33 * time.Millisecond)
		km.MapKeyToFrame(keyMsg("left"), &frame)
	}

	if frame.Len() != 2 {
		t.Errorf("holding left produced %d actions, expected 2", frame.Len())
	}
}

func TestMapKeyToFrameDifferentKeysPassThrough(t *testing.T) {
	km, clk := newTestMapper(60 * time.Millisecond)
	frame := core.NewInputFrame()

	km.MapKeyToFrame(keyMsg("left"), &frame)
	clk.advance(5 * time.Millisecond)
	km.MapKeyToFrame(keyMsg("up"), &frame)
	clk.advance(5 * time.Millisecond)
	km.MapKeyToFrame(keyMsg("left"), &frame)

	want := []core.Action{core.ActionLeft, core.ActionRotate, core.ActionLeft}
	if frame.Len() != len(want) {
		t.Fatalf("frame has %d actions, expected %d", frame.Len(), len(want))
	}
	for i, a := range want {
		if frame.Actions[i] != a {
			t.Errorf("Actions[%d] = %v, expected %v", i, frame.Actions[i], a)
		}
	}
}

func TestMapKeyToFrameQuitNeverDebounced(t *testing.T) {
	km, _ := newTestMapper(time.Hour)
	frame := core.NewInputFrame()

	if !km.MapKeyToFrame(keyMsg("q"), &frame) {
		t.Error("first q should quit")
	}
	if !km.MapKeyToFrame(keyMsg("q"), &frame) {
		t.Error("repeated q should still quit")
	}
	if frame.Len() != 0 {
		t.Errorf("quit should not add actions, got %d", frame.Len())
	}
}

func TestMapKeyToFrameZeroWindow(t *testing.T) {
	km, _ := newTestMapper(0)
	frame := core.NewInputFrame()
	for range 3 {
		km.MapKeyToFrame(keyMsg("down"), &frame)
	}
	if frame.Len() != 3 {
		t.Errorf("zero window produced %d actions, expected 3", frame.Len())
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper(0)
	tests := []struct {
		key  string
		want MenuAction
	}{
		{"up", MenuActionUp},
		{"k", MenuActionUp},
		{"down", MenuActionDown},
		{"enter", MenuActionSelect},
		{" ", MenuActionSelect},
		{"esc", MenuActionBack},
		{"tab", MenuActionScoreboard},
		{"q", MenuActionQuit},
		{"z", MenuActionNone},
	}
	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tc.key)); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.key, got, tc.want)
		}
	}
}
