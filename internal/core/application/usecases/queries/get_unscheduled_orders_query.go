package queries

import (
	"errors"
	"time"

	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/pkg/guard"
)

var (
	ErrGetUnscheduledOrdersQueryIsNotConstructed = errors.New(
		"GetUnscheduledOrdersQuery must be created via NewGetUnscheduledOrdersQuery constructor",
	)
)

// GetUnscheduledOrdersQuery lists orders that are still waiting for a delivery timestamp.
//
// Example:
//
//	orders, err := handler.Handle(ctx, NewGetUnscheduledOrdersQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders are waiting for an estimate\n", len(orders))
type GetUnscheduledOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetUnscheduledOrdersQuery() GetUnscheduledOrdersQuery {
	return GetUnscheduledOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnscheduledOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnscheduledOrdersQueryIsNotConstructed)
}

type GetUnscheduledOrdersQueryResponse struct {
	ID       kernel.UUID
	PlacedAt time.Time
}
