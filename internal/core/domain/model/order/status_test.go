package order_test

import (
	"testing"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	for _, s := range order.Statuses() {
		assert.NoError(t, s.Validate(), s.String())
	}

	for _, s := range []order.Status{-1, 6, 42} {
		require.ErrorIs(t, s.Validate(), errs.ErrValueIsOutOfRange)
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Intake", order.Intake.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Status(9)", order.Status(9).String())
}

func TestStatus_Predicates(t *testing.T) {
	tests := []struct {
		status         order.Status
		terminal       bool
		outForDelivery bool
	}{
		{order.Intake, false, false},
		{order.Triaged, false, false},
		{order.ProviderAssigned, false, true},
		{order.SelfAssigned, false, false},
		{order.DriverAssigned, false, true},
		{order.Delivered, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
			assert.Equal(t, tt.outForDelivery, tt.status.IsOutForDelivery())
		})
	}
}

func TestUnsupportedTransitionError(t *testing.T) {
	err := order.UnsupportedTransitionError(order.Delivered)

	require.ErrorIs(t, err, order.ErrUnsupportedTransition)
	assert.Contains(t, err.Error(), "status 5")
}
