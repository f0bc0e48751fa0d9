package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey("w"), core.ActionUp, false},
		{"j", runeKey("j"), core.ActionDown, false},
		{"h", runeKey("h"), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", runeKey(" "), core.ActionReveal, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionReveal, false},
		{"f", runeKey("f"), core.ActionFlag, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("action = %v, want %v", action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("quit = %v, want %v", quit, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey("f"), &frame) {
		t.Fatal("f should not quit")
	}
	if !frame.Has(core.ActionFlag) {
		t.Error("frame should contain flag action")
	}

	if km.MapKeyToFrame(runeKey("z"), &frame) {
		t.Fatal("unbound key should not quit")
	}
	if frame.Has(core.ActionNone) {
		t.Error("unbound key should not be recorded")
	}

	if !km.MapKeyToFrame(runeKey("q"), &frame) {
		t.Error("q should quit")
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.MouseMsg
		recorded bool
		button   core.PointerButton
	}{
		{
			name:     "left press",
			msg:      tea.MouseMsg{X: 4, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			recorded: true,
			button:   core.PointerPrimary,
		},
		{
			name:     "right press",
			msg:      tea.MouseMsg{X: 4, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
			recorded: true,
			button:   core.PointerSecondary,
		},
		{
			name: "release",
			msg:  tea.MouseMsg{X: 4, Y: 7, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		},
		{
			name: "motion",
			msg:  tea.MouseMsg{X: 4, Y: 7, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone},
		},
		{
			name: "wheel",
			msg:  tea.MouseMsg{X: 4, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			got := km.MapMouse(tt.msg, &frame)
			if got != tt.recorded {
				t.Fatalf("MapMouse = %v, want %v", got, tt.recorded)
			}
			if !tt.recorded {
				if frame.Pointer != nil {
					t.Error("pointer should stay nil")
				}
				return
			}
			if frame.Pointer == nil {
				t.Fatal("pointer should be set")
			}
			if frame.Pointer.X != 4 || frame.Pointer.Y != 7 {
				t.Errorf("pointer at (%d,%d), want (4,7)", frame.Pointer.X, frame.Pointer.Y)
			}
			if frame.Pointer.Button != tt.button {
				t.Errorf("button = %v, want %v", frame.Pointer.Button, tt.button)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want MenuAction
	}{
		{"q", runeKey("q"), MenuActionQuit},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{"j", runeKey("j"), MenuActionDown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{"unbound", runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
				t.Errorf("MapKeyToMenuAction = %v, want %v", got, tt.want)
			}
		})
	}
}
