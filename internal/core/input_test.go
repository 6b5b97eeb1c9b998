package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionNone)
	f.Set(ActionLeft)
	f.Set(ActionPause)

	got := f.Actions()
	expected := []Action{ActionUp, ActionLeft, ActionPause}
	if len(got) != len(expected) {
		t.Fatalf("Actions() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}

	if !f.Has(ActionLeft) {
		t.Error("Has(ActionLeft) should be true")
	}
	if f.Has(ActionRestart) {
		t.Error("Has(ActionRestart) should be false")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDown)

	actions := f.Actions()
	f.Clear()

	if f.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", f.Len())
	}
	if len(actions) != 1 || actions[0] != ActionDown {
		t.Errorf("Actions() copy changed after Clear: %v", actions)
	}
}

func TestActionIsDirection(t *testing.T) {
	tests := []struct {
		action   Action
		expected bool
	}{
		{ActionUp, true},
		{ActionDown, true},
		{ActionLeft, true},
		{ActionRight, true},
		{ActionPause, false},
		{ActionRestart, false},
		{ActionQuit, false},
		{ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			if got := tc.action.IsDirection(); got != tc.expected {
				t.Errorf("IsDirection() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestStepResultHasEvent(t *testing.T) {
	r := StepResult{Events: []Event{"reset"}}
	if !r.HasEvent("reset") {
		t.Error("HasEvent(reset) should be true")
	}
	if r.HasEvent("apple_eaten") {
		t.Error("HasEvent(apple_eaten) should be false")
	}
}
