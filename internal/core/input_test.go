package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionReveal)

	if !f.Has(ActionReveal) {
		t.Error("expected ActionReveal to be set")
	}
	if f.Has(ActionFlag) {
		t.Error("ActionFlag should not be set")
	}

	f.Clear()
	if f.Has(ActionReveal) {
		t.Error("Clear should reset actions")
	}
}

func TestInputFramePointer(t *testing.T) {
	f := NewInputFrame()
	f.SetPointer(3, 4, PointerPrimary)
	f.SetPointer(7, 8, PointerSecondary)

	if f.Pointer == nil {
		t.Fatal("expected pointer to be set")
	}
	if f.Pointer.X != 7 || f.Pointer.Y != 8 || f.Pointer.Button != PointerSecondary {
		t.Errorf("later click should win, got %+v", *f.Pointer)
	}

	clone := f.Clone()
	f.Clear()
	if f.Pointer != nil {
		t.Error("Clear should drop the pointer")
	}
	if clone.Pointer == nil || clone.Pointer.X != 7 {
		t.Error("Clone should keep its own pointer copy")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set should allocate on a zero frame")
	}
}

func TestActionString(t *testing.T) {
	if ActionFlag.String() != "Flag" {
		t.Errorf("ActionFlag.String() = %q", ActionFlag.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}

func TestEveryActionNamed(t *testing.T) {
	want := []string{"None", "Up", "Down", "Left", "Right", "Reveal", "Flag", "Back", "Restart", "Quit", "Pause"}
	for a := ActionNone; a <= ActionPause; a++ {
		if int(a) >= len(want) {
			t.Fatalf("unexpected action %d", a)
		}
		if got := a.String(); got != want[a] {
			t.Errorf("Action(%d).String() = %q, want %q", a, got, want[a])
		}
	}
}
