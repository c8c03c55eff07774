package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCanTransitionTo(t *testing.T) {
	allStatuses := []Status{StatusPending, StatusConfirmed, StatusReady, StatusDelivered}

	allowed := map[Status]Status{
		StatusPending:   StatusConfirmed,
		StatusConfirmed: StatusReady,
		StatusReady:     StatusDelivered,
	}

	// Every (from, to) pair outside the linear chain must be
	// rejected, including same-state and backward moves.
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := allowed[from] == to
			assert.Equal(t, want, from.CanTransitionTo(to), "transition %s -> %s", from, to)
		}
	}
}

func TestStatusDeliveredIsTerminal(t *testing.T) {
	for _, to := range []Status{StatusPending, StatusConfirmed, StatusReady, StatusDelivered} {
		assert.False(t, StatusDelivered.CanTransitionTo(to))
	}
}

func TestStatusIsValid(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusReady, true},
		{StatusDelivered, true},
		{Status("cancelled"), false},
		{Status(""), false},
		{Status("PENDING"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.IsValid(), "status %q", tt.status)
	}
}
