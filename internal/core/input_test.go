package core

import "testing"

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionUp, "Up"},
		{ActionRight, "Right"},
		{ActionDown, "Down"},
		{ActionLeft, "Left"},
		{ActionTurn, "Turn"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}

func TestActionIsDirection(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionRight, ActionDown, ActionLeft} {
		if !a.IsDirection() {
			t.Errorf("%s should be a direction", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionTurn, ActionRestart, ActionQuit} {
		if a.IsDirection() {
			t.Errorf("%s should not be a direction", a)
		}
	}
}
