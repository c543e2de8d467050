package order_test

import (
	"testing"

	"deliverytime/internal/core/domain/model/order"
	"deliverytime/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(order.Unknown))
	assert.Equal(t, 1, int(order.Created))
	assert.Equal(t, 2, int(order.Scheduled))
}

func TestStatus_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  order.Status
		wantErr bool
	}{
		{"created", order.Created, false},
		{"scheduled", order.Scheduled, false},
		{"unknown", order.Unknown, true},
		{"out of range", order.Status(99), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Created", order.Created.String())
	assert.Equal(t, "Scheduled", order.Scheduled.String())
	assert.Equal(t, "Unknown", order.Status(-1).String())
}

func TestStatus_Schedule(t *testing.T) {
	next, err := order.Created.Schedule()
	require.NoError(t, err)
	assert.Equal(t, order.Scheduled, next)

	for _, s := range []order.Status{order.Unknown, order.Scheduled} {
		t.Run(s.String(), func(t *testing.T) {
			_, err := s.Schedule()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "is not a valid status to schedule")
		})
	}
}

func TestStatus_ValidateCanHaveDeliveryTime(t *testing.T) {
	require.NoError(t, order.Created.ValidateCanHaveDeliveryTime(false))
	require.NoError(t, order.Scheduled.ValidateCanHaveDeliveryTime(true))
	require.Error(t, order.Created.ValidateCanHaveDeliveryTime(true))
	require.Error(t, order.Scheduled.ValidateCanHaveDeliveryTime(false))
}
