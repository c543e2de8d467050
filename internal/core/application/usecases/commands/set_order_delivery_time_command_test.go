package commands_test

import (
	"context"
	"testing"
	"time"

	"deliverytime/internal/core/application/usecases/commands"
	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/core/domain/model/order"
	"deliverytime/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSetOrderDeliveryTimeCommand(t *testing.T) {
	id := kernel.NewUUID()

	tests := []struct {
		name     string
		date     string
		clock    string
		wantErr  error
		wantDate string
	}{
		{name: "date only", date: "2024-03-20", clock: "14:00", wantDate: "2024-03-20"},
		{name: "iso date-time keeps the date", date: "2024-03-20T23:30:00Z", clock: "9:15", wantDate: "2024-03-20"},
		{name: "missing date", date: "", clock: "14:00", wantErr: errs.ErrValueIsRequired},
		{name: "missing time", date: "2024-03-20", clock: "", wantErr: errs.ErrValueIsRequired},
		{name: "bad date", date: "20/03/2024", clock: "14:00", wantErr: errs.ErrValueIsInvalid},
		{name: "bad time", date: "2024-03-20", clock: "24:00", wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewSetOrderDeliveryTimeCommand(id, tt.date, tt.clock)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDate, cmd.DeliveryDate().String())
		})
	}
}

func TestSetOrderDeliveryTimeCommandHandler_Handle(t *testing.T) {
	zone := time.FixedZone("UTC+3", 3*60*60)

	t.Run("overrides a rule estimate", func(t *testing.T) {
		ctx := context.Background()
		id := kernel.NewUUID()
		stored, _ := order.NewOrder(id, now)
		require.NoError(t, stored.ScheduleByRule(kernel.NewUUID(), now.Add(5*time.Hour)))

		cmd, _ := commands.NewSetOrderDeliveryTimeCommand(id, "2024-03-20", "14:00")

		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("Get", ctx, id).Return(stored, nil).Once(),
			repo.On("Update", ctx, stored).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewSetOrderDeliveryTimeCommandHandler(orderUoWFactory{uow}, zone)
		ts, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		want := time.Date(2024, 3, 20, 14, 0, 0, 0, zone)
		assert.True(t, want.Equal(ts))
		assert.True(t, want.Equal(*stored.DeliveryTime()))
		assert.True(t, stored.IsOverridden())
		assert.Nil(t, stored.Rule())
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("reports an unknown order", func(t *testing.T) {
		ctx := context.Background()
		id := kernel.NewUUID()
		cmd, _ := commands.NewSetOrderDeliveryTimeCommand(id, "2024-03-20", "14:00")

		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil)
		uow.On("OrderRepository").Return(repo)
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String()))
		uow.On("Rollback", ctx).Return(nil)

		h := commands.NewSetOrderDeliveryTimeCommandHandler(orderUoWFactory{uow}, zone)
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("rejects an unconstructed command", func(t *testing.T) {
		h := commands.NewSetOrderDeliveryTimeCommandHandler(orderUoWFactory{new(MockUoW)}, nil)

		_, err := h.Handle(context.Background(), commands.SetOrderDeliveryTimeCommand{})

		require.ErrorIs(t, err, commands.ErrSetOrderDeliveryTimeCommandIsNotConstructed)
	})
}
