package commands

import (
	"context"
	"errors"
	"time"

	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/core/domain/services"
)

var (
	ErrNoOrderFound = errors.New("no order waiting for a delivery time")
)

// ScheduleOrderDeliveriesCommandHandler stamps Created orders with the rule estimate for
// their own placement: the order time is the clock time of placedAt and the evaluation
// instant is placedAt itself, both in the service time zone. Orders no rule covers stay
// Created and are retried on the next run.
//
// Example:
//
//	handler := NewScheduleOrderDeliveriesCommandHandler(uowFactory, loc)
//	scheduled, err := handler.Handle(ctx, NewScheduleOrderDeliveriesCommand())
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    // Nothing to do
//	case errors.Is(err, services.ErrNoRulesConfigured):
//	    // Orders wait until a rule is added
//	}
type ScheduleOrderDeliveriesCommandHandler struct {
	uowFactory UoWFactory
	location   *time.Location
	matcher    services.RuleMatcher
	resolver   services.DeliveryDateResolver
}

// NewScheduleOrderDeliveriesCommandHandler creates the handler. A nil location means time.Local.
func NewScheduleOrderDeliveriesCommandHandler(
	uowFactory UoWFactory,
	location *time.Location,
) ScheduleOrderDeliveriesCommandHandler {
	if location == nil {
		location = time.Local
	}

	return ScheduleOrderDeliveriesCommandHandler{
		uowFactory: uowFactory,
		location:   location,
		matcher:    services.NewRuleMatcher(),
		resolver:   services.NewDeliveryDateResolver(),
	}
}

// Handle schedules every order it can and returns how many were stamped.
//
// Returns:
//   - ErrNoOrderFound if no order is in Created status
//   - services.ErrNoRulesConfigured if there is no active rule
func (h ScheduleOrderDeliveriesCommandHandler) Handle(
	ctx context.Context,
	cmd ScheduleOrderDeliveriesCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	orders, err := orderRepo.GetAllInCreatedStatus(ctx)
	if err != nil {
		return 0, err
	}
	if len(orders) == 0 {
		return 0, ErrNoOrderFound
	}

	rules, err := uow.RuleRepository().ListActiveByPriority(ctx)
	if err != nil {
		return 0, err
	}
	if len(rules) == 0 {
		return 0, services.ErrNoRulesConfigured
	}
	rules = h.matcher.SortByPriority(rules)

	scheduled := 0
	for _, o := range orders {
		placedAt := o.PlacedAt().In(h.location)

		matched, matchErr := h.matcher.Match(rules, kernel.TimeOfDayOf(placedAt))
		if errors.Is(matchErr, services.ErrNoMatchingRule) {
			continue
		}
		if matchErr != nil {
			return 0, matchErr
		}

		deliveryTime, resolveErr := h.resolver.Resolve(matched, placedAt)
		if resolveErr != nil {
			return 0, resolveErr
		}

		if err = o.ScheduleByRule(matched.ID(), deliveryTime); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
		scheduled++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return scheduled, nil
}
