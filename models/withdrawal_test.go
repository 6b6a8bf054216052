package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    WithdrawalStatus
		to      WithdrawalStatus
		allowed bool
	}{
		{WithdrawalPending, WithdrawalProcessing, true},
		{WithdrawalPending, WithdrawalDeclined, true},
		{WithdrawalProcessing, WithdrawalSuccess, true},
		{WithdrawalProcessing, WithdrawalDeclined, true},

		{WithdrawalPending, WithdrawalSuccess, false},
		{WithdrawalPending, WithdrawalPending, false},
		{WithdrawalProcessing, WithdrawalPending, false},
		{WithdrawalProcessing, WithdrawalProcessing, false},
		{WithdrawalSuccess, WithdrawalPending, false},
		{WithdrawalSuccess, WithdrawalProcessing, false},
		{WithdrawalSuccess, WithdrawalDeclined, false},
		{WithdrawalDeclined, WithdrawalPending, false},
		{WithdrawalDeclined, WithdrawalProcessing, false},
		{WithdrawalDeclined, WithdrawalSuccess, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_ke_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestWithdrawalStatusValid(t *testing.T) {
	assert.True(t, WithdrawalPending.Valid())
	assert.True(t, WithdrawalProcessing.Valid())
	assert.True(t, WithdrawalSuccess.Valid())
	assert.True(t, WithdrawalDeclined.Valid())
	assert.False(t, WithdrawalStatus("CANCELLED").Valid())
	assert.False(t, WithdrawalStatus("").Valid())
}

func TestInvalidTransitionError(t *testing.T) {
	err := &InvalidTransitionError{From: WithdrawalSuccess, To: WithdrawalPending}
	assert.Contains(t, err.Error(), "SUCCESS")
	assert.Contains(t, err.Error(), "PENDING")
}
