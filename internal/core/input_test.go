package core

import (
	"slices"
	"testing"
)

func TestInputFrameKeepsArrivalOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionUp)
	f.Set(ActionLeft)
	f.Set(ActionNone)

	want := []Action{ActionLeft, ActionUp}
	if got := f.Actions(); !slices.Equal(got, want) {
		t.Errorf("Actions() = %v, expected %v", got, want)
	}
	if !f.Has(ActionUp) || f.Has(ActionDown) {
		t.Error("Has() reports wrong membership")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRestart)

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("Clear() should empty the frame")
	}
	if !clone.Has(ActionRestart) {
		t.Error("Clone() should not share storage with the original")
	}

	f.Set(ActionDown)
	if clone.Has(ActionDown) {
		t.Error("writes after Clear() leaked into the clone")
	}
}

func TestActionString(t *testing.T) {
	if ActionRight.String() != "Right" {
		t.Errorf("ActionRight.String() = %q", ActionRight.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
