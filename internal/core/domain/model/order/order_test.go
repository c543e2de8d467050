package order_test

import (
	"testing"
	"time"

	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/core/domain/model/order"
	"deliverytime/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func TestNewOrder(t *testing.T) {
	t.Run("should create order in Created status", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, placedAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, placedAt, o.PlacedAt())
		assert.Equal(t, order.Created, o.Status())
		assert.Nil(t, o.DeliveryTime())
		assert.Nil(t, o.Rule())
		assert.False(t, o.IsOverridden())
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "placedAt")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	assert.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
	assert.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_ScheduleByRule(t *testing.T) {
	ruleID := kernel.NewUUID()
	deliveryTime := time.Date(2024, 3, 15, 15, 0, 0, 0, time.UTC)

	t.Run("should stamp a created order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), placedAt)

		require.NoError(t, o.ScheduleByRule(ruleID, deliveryTime))

		assert.Equal(t, order.Scheduled, o.Status())
		require.NotNil(t, o.DeliveryTime())
		assert.Equal(t, deliveryTime, *o.DeliveryTime())
		require.NotNil(t, o.Rule())
		assert.True(t, o.Rule().IsEqual(ruleID))
		assert.False(t, o.IsOverridden())
	})

	t.Run("should not recompute a scheduled order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), placedAt)
		require.NoError(t, o.ScheduleByRule(ruleID, deliveryTime))

		err := o.ScheduleByRule(kernel.NewUUID(), deliveryTime.Add(time.Hour))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, deliveryTime, *o.DeliveryTime())
		assert.True(t, o.Rule().IsEqual(ruleID))
	})

	t.Run("should not replace an override", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), placedAt)
		require.NoError(t, o.OverrideDeliveryTime(deliveryTime))

		require.Error(t, o.ScheduleByRule(ruleID, deliveryTime.Add(time.Hour)))
		assert.True(t, o.IsOverridden())
	})

	t.Run("should reject invalid arguments", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), placedAt)

		require.Error(t, o.ScheduleByRule(kernel.UUID{}, deliveryTime))
		require.ErrorIs(t, o.ScheduleByRule(ruleID, time.Time{}), errs.ErrValueIsRequired)
		assert.Equal(t, order.Created, o.Status())
	})
}

func TestOrder_OverrideDeliveryTime(t *testing.T) {
	first := time.Date(2024, 3, 15, 15, 0, 0, 0, time.UTC)
	second := time.Date(2024, 3, 20, 14, 0, 0, 0, time.UTC)

	t.Run("should override a created order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), placedAt)

		require.NoError(t, o.OverrideDeliveryTime(second))

		assert.Equal(t, order.Scheduled, o.Status())
		assert.Equal(t, second, *o.DeliveryTime())
		assert.True(t, o.IsOverridden())
		assert.Nil(t, o.Rule())
	})

	t.Run("should override a rule estimate and drop the rule", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), placedAt)
		require.NoError(t, o.ScheduleByRule(kernel.NewUUID(), first))

		require.NoError(t, o.OverrideDeliveryTime(second))

		assert.Equal(t, second, *o.DeliveryTime())
		assert.Nil(t, o.Rule())
	})

	t.Run("should allow overriding twice", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), placedAt)
		require.NoError(t, o.OverrideDeliveryTime(first))

		require.NoError(t, o.OverrideDeliveryTime(second))
		assert.Equal(t, second, *o.DeliveryTime())
	})

	t.Run("should reject a zero timestamp", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), placedAt)

		require.ErrorIs(t, o.OverrideDeliveryTime(time.Time{}), errs.ErrValueIsRequired)
		assert.Nil(t, o.DeliveryTime())
	})
}

func TestRestoreOrder(t *testing.T) {
	deliveryTime := time.Date(2024, 3, 15, 15, 0, 0, 0, time.UTC)
	ruleID := kernel.NewUUID()

	t.Run("should restore a scheduled order", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), placedAt, order.Scheduled, &deliveryTime, &ruleID, false)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Scheduled, o.Status())
		assert.True(t, o.Rule().IsEqual(ruleID))
	})

	t.Run("should reject inconsistent status and delivery time", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), placedAt, order.Created, &deliveryTime, nil, false)
		require.Error(t, err)

		_, err = order.RestoreOrder(kernel.NewUUID(), placedAt, order.Scheduled, nil, nil, false)
		require.Error(t, err)
	})

	t.Run("should reject an overridden order with a rule", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), placedAt, order.Scheduled, &deliveryTime, &ruleID, true)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), placedAt, order.Unknown, nil, nil, false)
		require.Error(t, err)
	})
}
