package rule_test

import (
	"testing"
	"time"

	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/core/domain/model/rule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDefinition(t *testing.T, raw rule.RawDefinition) rule.Definition {
	t.Helper()
	def, err := rule.ParseDefinition(raw)
	require.NoError(t, err)
	return def
}

func TestNewRule(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("should create a rule from a valid definition", func(t *testing.T) {
		id := kernel.NewUUID()

		r, err := rule.NewRule(id, mustDefinition(t, validRaw()), createdAt)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.ID().IsEqual(id))
		assert.Equal(t, "Morning", r.Name())
		assert.Equal(t, rule.Today, r.DateMode())
		assert.True(t, r.IsActive())
		assert.Equal(t, createdAt, r.CreatedAt())
		assert.Equal(t, createdAt, r.UpdatedAt())
	})

	t.Run("should fail on zero values", func(t *testing.T) {
		r, err := rule.NewRule(kernel.UUID{}, rule.Definition{}, time.Time{})

		require.Error(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "createdAt")
	})

	t.Run("should reject an inverted window built without parsing", func(t *testing.T) {
		def := mustDefinition(t, validRaw())
		def.StartTime, def.EndTime = def.EndTime, def.StartTime

		_, err := rule.NewRule(kernel.NewUUID(), def, createdAt)

		require.ErrorIs(t, err, rule.ErrTimeWindowIsInvalid)
	})

	t.Run("should reject a zero value rule", func(t *testing.T) {
		var r *rule.Rule
		require.ErrorIs(t, r.Validate(), rule.ErrRuleIsNotConstructed)
		require.ErrorIs(t, (&rule.Rule{}).Validate(), rule.ErrRuleIsNotConstructed)
	})
}

func TestRule_Covers(t *testing.T) {
	r, err := rule.NewRule(kernel.NewUUID(), mustDefinition(t, validRaw()), time.Now())
	require.NoError(t, err)

	assert.True(t, r.Covers(kernel.MustParseTimeOfDay("08:00")))
	assert.True(t, r.Covers(kernel.MustParseTimeOfDay("11:59")))
	assert.False(t, r.Covers(kernel.MustParseTimeOfDay("12:00")))

	r.Deactivate(time.Now())
	assert.True(t, r.Covers(kernel.MustParseTimeOfDay("09:00")), "activity is not part of the window")
}

func TestRule_Replace(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	editedAt := createdAt.Add(time.Hour)
	id := kernel.NewUUID()

	r, err := rule.NewRule(id, mustDefinition(t, validRaw()), createdAt)
	require.NoError(t, err)

	t.Run("should replace every field and keep identity", func(t *testing.T) {
		raw := rule.RawDefinition{
			Name:               "Christmas",
			StartTime:          "00:00",
			EndTime:            "23:59",
			DeliveryDateMode:   "custom",
			CustomDeliveryDate: "2024-12-25",
			DeliveryTime:       "10:00",
			Priority:           intPtr(100),
		}

		require.NoError(t, r.Replace(mustDefinition(t, raw), editedAt))

		assert.True(t, r.ID().IsEqual(id))
		assert.Equal(t, "Christmas", r.Name())
		assert.Equal(t, rule.Custom, r.DateMode())
		require.NotNil(t, r.CustomDeliveryDate())
		assert.Equal(t, "2024-12-25", r.CustomDeliveryDate().String())
		assert.Equal(t, 100, r.Priority())
		assert.Empty(t, r.Description())
		assert.Equal(t, createdAt, r.CreatedAt())
		assert.Equal(t, editedAt, r.UpdatedAt())
	})

	t.Run("should keep the rule untouched on an invalid definition", func(t *testing.T) {
		err := r.Replace(rule.Definition{}, editedAt.Add(time.Hour))

		require.Error(t, err)
		assert.Equal(t, "Christmas", r.Name())
		assert.Equal(t, editedAt, r.UpdatedAt())
	})

	t.Run("should return copies of the custom date", func(t *testing.T) {
		date := r.CustomDeliveryDate()
		*date = kernel.MustParseDate("2030-01-01")

		assert.Equal(t, "2024-12-25", r.CustomDeliveryDate().String())
	})
}

func TestRule_ActivateDeactivate(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	r, err := rule.NewRule(kernel.NewUUID(), mustDefinition(t, validRaw()), createdAt)
	require.NoError(t, err)

	r.Deactivate(createdAt.Add(time.Minute))
	assert.False(t, r.IsActive())
	assert.Equal(t, createdAt.Add(time.Minute), r.UpdatedAt())

	r.Deactivate(createdAt.Add(2 * time.Minute))
	assert.Equal(t, createdAt.Add(time.Minute), r.UpdatedAt(), "no-op leaves updatedAt")

	r.Activate(createdAt.Add(3 * time.Minute))
	assert.True(t, r.IsActive())
	assert.Equal(t, createdAt.Add(3*time.Minute), r.UpdatedAt())
}

func TestRestoreRule(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	updatedAt := createdAt.Add(24 * time.Hour)

	r, err := rule.RestoreRule(kernel.NewUUID(), mustDefinition(t, validRaw()), createdAt, updatedAt)

	require.NoError(t, err)
	assert.Equal(t, createdAt, r.CreatedAt())
	assert.Equal(t, updatedAt, r.UpdatedAt())
}
