package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseOf(t *testing.T) {
	tests := []struct {
		name    string
		loading bool
		msg     *StatusMessage
		want    Phase
	}{
		{"nothing happened yet", false, nil, PhaseIdle},
		{"loading wins over message", true, Failure("x"), PhaseLoading},
		{"loading without message", true, nil, PhaseLoading},
		{"success message", false, Success("Sync complete!"), PhaseSuccess},
		{"error message", false, Failure("No auth key provided"), PhaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PhaseOf(tt.loading, tt.msg))
		})
	}
}

func TestStateCanSync(t *testing.T) {
	ready := State{HasCredential: true, Count: 2, CountKnown: true}
	assert.True(t, ready.CanSync())

	s := ready
	s.HasCredential = false
	assert.False(t, s.CanSync(), "no credential")

	s = ready
	s.Count = 0
	assert.False(t, s.CanSync(), "empty collection")

	s = ready
	s.CountKnown = false
	assert.False(t, s.CanSync(), "non-list collection")

	s = ready
	s.Loading = true
	assert.False(t, s.CanSync(), "sync in flight")
}
