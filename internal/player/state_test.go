package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState(t *testing.T) {
	tests := []struct {
		state State
		name  string
	}{
		{Stopped, "stopped"},
		{Playing, "playing"},
		{Paused, "paused"},
		{State(7), "state(7)"},
		{State(-1), "state(-1)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.state.String())
		})
	}
}
