package services_test

import (
	"testing"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugFlowTable_ForSlug(t *testing.T) {
	table := services.DefaultSlugFlowTable()

	tests := []struct {
		slug    string
		current order.Status
		want    order.Status
		wantErr error
	}{
		{"1", order.Intake, order.Triaged, nil},
		{"1", order.ProviderAssigned, order.SelfAssigned, nil},
		{"1", order.DriverAssigned, order.Delivered, nil},
		{"1", order.Delivered, 0, order.ErrUnsupportedTransition},
		{"2", order.ProviderAssigned, order.Delivered, nil},
		{"2", order.Triaged, 0, order.ErrUnsupportedTransition},
		{"3", order.Triaged, order.Triaged, nil},
		{" 4 ", order.DriverAssigned, order.Delivered, nil},
		{"4", order.Intake, 0, order.ErrUnsupportedTransition},
	}

	for _, tt := range tests {
		t.Run(tt.slug+"/"+tt.current.String(), func(t *testing.T) {
			flow, err := table.ForSlug(tt.slug)
			require.NoError(t, err)

			got, err := flow.Next(tt.current)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlugFlowTable_UnknownSlug(t *testing.T) {
	_, err := services.DefaultSlugFlowTable().ForSlug("9")

	require.ErrorIs(t, err, services.ErrUnconfiguredFlow)
	assert.Contains(t, err.Error(), `"9"`)
}

func TestSlugFlowTable_ForSlugReturnsCopy(t *testing.T) {
	table := services.DefaultSlugFlowTable()

	flow, err := table.ForSlug("4")
	require.NoError(t, err)
	flow.(services.StatusFlow)[order.Intake] = order.Delivered

	_, err = table["4"].Next(order.Intake)
	require.ErrorIs(t, err, order.ErrUnsupportedTransition)
}
