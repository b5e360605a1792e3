package session

import "testing"

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Idle, "Idle"},
		{CheckingConnectivity, "CheckingConnectivity"},
		{Preparing, "Preparing"},
		{Ready, "Ready"},
		{Playing, "Playing"},
		{Paused, "Paused"},
		{Stopped, "Stopped"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestState_CanToggle(t *testing.T) {
	for _, s := range []State{Idle, CheckingConnectivity, Preparing, Stopped} {
		if s.CanToggle() {
			t.Errorf("%s.CanToggle() = true, want false", s)
		}
	}
	for _, s := range []State{Ready, Playing, Paused} {
		if !s.CanToggle() {
			t.Errorf("%s.CanToggle() = false, want true", s)
		}
	}
}
