package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"deliverytime/internal/core/application/usecases/commands"
	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/core/domain/model/rule"
	"deliverytime/internal/pkg/errs"
)

type createRuleHandler interface {
	Handle(ctx context.Context, cmd commands.CreateRuleCommand) error
}

// Result counts what a seed run did.
type Result struct {
	Created int
	Skipped int
}

// Seeder creates seed rules, leaving rules whose name is already taken untouched.
type Seeder struct {
	create createRuleHandler
	now    func() time.Time
	logger *slog.Logger
}

func NewSeeder(create createRuleHandler, now func() time.Time, logger *slog.Logger) *Seeder {
	if now == nil {
		now = time.Now
	}
	return &Seeder{
		create: create,
		now:    now,
		logger: logger.With("component", "rule_seeder"),
	}
}

// Seed creates every definition in order. An invalid definition stops the run; the
// rules created before it stay in place.
func (s *Seeder) Seed(ctx context.Context, definitions []rule.RawDefinition) (Result, error) {
	var result Result

	for i, raw := range definitions {
		cmd, err := commands.NewCreateRuleCommand(kernel.NewUUID(), raw, s.now())
		if err != nil {
			return result, fmt.Errorf("seed rule #%d %q: %w", i+1, raw.Name, err)
		}

		err = s.create.Handle(ctx, cmd)
		switch {
		case errors.Is(err, errs.ErrObjectAlreadyExists):
			result.Skipped++
			s.logger.DebugContext(ctx, "Seed rule already exists", "name", raw.Name)
		case err != nil:
			return result, fmt.Errorf("seed rule #%d %q: %w", i+1, raw.Name, err)
		default:
			result.Created++
			s.logger.InfoContext(ctx, "Seed rule created", "name", raw.Name, "rule_id", cmd.RuleID().String())
		}
	}

	return result, nil
}

// SeedFile loads path and seeds its rules.
func (s *Seeder) SeedFile(ctx context.Context, path string) (Result, error) {
	definitions, err := LoadRules(path)
	if err != nil {
		return Result{}, err
	}
	return s.Seed(ctx, definitions)
}
