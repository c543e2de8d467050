package rulerepo

import (
	"context"
	"errors"
	"fmt"

	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/core/domain/model/rule"
	"deliverytime/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRuleRepository implements ports.RuleRepository using GORM.
// The connection must be opened with TranslateError so unique violations surface as
// gorm.ErrDuplicatedKey.
type GormRuleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRuleRepository creates a new GORM rule repository.
func NewGormRuleRepository(db *gorm.DB, tracker aggregateTracker) *GormRuleRepository {
	return &GormRuleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rule.
func (r *GormRuleRepository) Add(ctx context.Context, aggregate *rule.Rule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateWriteError(err, dto.Name)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update overwrites every column of an existing rule.
func (r *GormRuleRepository) Update(ctx context.Context, aggregate *rule.Rule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RuleDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return translateWriteError(result.Error, dto.Name)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("rule", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a rule permanently.
func (r *GormRuleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RuleDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("rule", id.String())
	}

	return nil
}

// Get retrieves a rule by ID.
func (r *GormRuleRepository) Get(ctx context.Context, id kernel.UUID) (*rule.Rule, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RuleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rule", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByName retrieves a rule by its unique name.
func (r *GormRuleRepository) GetByName(ctx context.Context, name string) (*rule.Rule, error) {
	var dto RuleDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rule", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListActiveByPriority retrieves active rules by priority desc, then newest first, then id.
// A stored row that no longer validates fails the whole read.
func (r *GormRuleRepository) ListActiveByPriority(ctx context.Context) ([]*rule.Rule, error) {
	var dtos []RuleDTO
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("priority DESC").
		Order("created_at DESC").
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	rules := make([]*rule.Rule, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, fmt.Errorf("stored rule %s (%q) is invalid: %w", dto.ID, dto.Name, err)
		}
		rules = append(rules, aggregate)
	}

	return rules, nil
}

func translateWriteError(err error, name string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewObjectAlreadyExistsErrorWithCause("rule", name, err)
	}
	return err
}
