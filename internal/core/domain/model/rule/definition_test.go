package rule_test

import (
	"testing"

	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/core/domain/model/rule"
	"deliverytime/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRaw() rule.RawDefinition {
	return rule.RawDefinition{
		Name:             "Morning",
		StartTime:        "08:00",
		EndTime:          "11:59",
		DeliveryDateMode: "today",
		DeliveryTime:     "15:00",
	}
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestParseDefinition(t *testing.T) {
	t.Run("should apply defaults for priority and active", func(t *testing.T) {
		def, err := rule.ParseDefinition(validRaw())

		require.NoError(t, err)
		assert.Equal(t, "Morning", def.Name)
		assert.Equal(t, "08:00", def.StartTime.String())
		assert.Equal(t, "11:59", def.EndTime.String())
		assert.Equal(t, rule.Today, def.DateMode)
		assert.Equal(t, "15:00", def.DeliveryTime.String())
		assert.Equal(t, 0, def.Priority)
		assert.True(t, def.Active)
		assert.Nil(t, def.CustomDeliveryDate)
	})

	t.Run("should keep explicit priority, active and description", func(t *testing.T) {
		raw := validRaw()
		raw.Priority = intPtr(10)
		raw.Active = boolPtr(false)
		raw.Description = "before noon"

		def, err := rule.ParseDefinition(raw)

		require.NoError(t, err)
		assert.Equal(t, 10, def.Priority)
		assert.False(t, def.Active)
		assert.Equal(t, "before noon", def.Description)
	})

	t.Run("should accept single digit hours", func(t *testing.T) {
		raw := validRaw()
		raw.StartTime = "7:05"

		def, err := rule.ParseDefinition(raw)

		require.NoError(t, err)
		assert.Equal(t, "07:05", def.StartTime.String())
	})

	t.Run("should report every missing field", func(t *testing.T) {
		_, err := rule.ParseDefinition(rule.RawDefinition{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		for _, field := range []string{"name", "startTime", "endTime", "deliveryDateMode", "deliveryTime"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("should treat a blank name as missing", func(t *testing.T) {
		raw := validRaw()
		raw.Name = "   "

		_, err := rule.ParseDefinition(raw)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should reject malformed times", func(t *testing.T) {
		raw := validRaw()
		raw.StartTime = "25:61"

		_, err := rule.ParseDefinition(raw)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.NotErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "startTime")
		assert.Contains(t, err.Error(), "25:61")
	})

	t.Run("should reject an unknown date mode", func(t *testing.T) {
		raw := validRaw()
		raw.DeliveryDateMode = "yesterday"

		_, err := rule.ParseDefinition(raw)

		require.ErrorIs(t, err, errs.ErrValueIsNotAllowed)
		assert.Contains(t, err.Error(), "today, tomorrow, custom")
	})

	t.Run("should require the custom date for custom mode", func(t *testing.T) {
		raw := validRaw()
		raw.DeliveryDateMode = "custom"

		_, err := rule.ParseDefinition(raw)

		require.ErrorIs(t, err, rule.ErrCustomDeliveryDateIsRequired)
	})

	t.Run("should reject a malformed custom date", func(t *testing.T) {
		raw := validRaw()
		raw.DeliveryDateMode = "custom"
		raw.CustomDeliveryDate = "2024-13-40"

		_, err := rule.ParseDefinition(raw)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "customDeliveryDate")
	})

	t.Run("should parse the custom date", func(t *testing.T) {
		raw := validRaw()
		raw.DeliveryDateMode = "custom"
		raw.CustomDeliveryDate = "2024-12-25"

		def, err := rule.ParseDefinition(raw)

		require.NoError(t, err)
		require.NotNil(t, def.CustomDeliveryDate)
		assert.Equal(t, "2024-12-25", def.CustomDeliveryDate.String())
	})

	t.Run("should ignore a custom date for other modes", func(t *testing.T) {
		raw := validRaw()
		raw.DeliveryDateMode = "tomorrow"
		raw.CustomDeliveryDate = "not a date"

		def, err := rule.ParseDefinition(raw)

		require.NoError(t, err)
		assert.Equal(t, rule.Tomorrow, def.DateMode)
		assert.Nil(t, def.CustomDeliveryDate)
	})

	t.Run("should reject a window whose start is after its end", func(t *testing.T) {
		raw := validRaw()
		raw.StartTime = "22:00"
		raw.EndTime = "02:00"

		_, err := rule.ParseDefinition(raw)

		require.ErrorIs(t, err, rule.ErrTimeWindowIsInvalid)
		assert.Contains(t, err.Error(), "22:00 is after 02:00")
	})

	t.Run("should accept a one minute window", func(t *testing.T) {
		raw := validRaw()
		raw.StartTime = "12:00"
		raw.EndTime = "12:00"

		def, err := rule.ParseDefinition(raw)

		require.NoError(t, err)
		assert.True(t, def.Covers(kernel.MustParseTimeOfDay("12:00")))
		assert.False(t, def.Covers(kernel.MustParseTimeOfDay("12:01")))
	})
}

func TestDefinition_Covers(t *testing.T) {
	def, err := rule.ParseDefinition(validRaw())
	require.NoError(t, err)

	tests := []struct {
		orderTime string
		want      bool
	}{
		{"07:59", false},
		{"08:00", true},
		{"10:30", true},
		{"11:59", true},
		{"12:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.orderTime, func(t *testing.T) {
			assert.Equal(t, tt.want, def.Covers(kernel.MustParseTimeOfDay(tt.orderTime)))
		})
	}
}

func TestParseDateMode(t *testing.T) {
	tests := []struct {
		text    string
		want    rule.DateMode
		wantErr bool
	}{
		{"today", rule.Today, false},
		{"tomorrow", rule.Tomorrow, false},
		{"custom", rule.Custom, false},
		{"Today", rule.UnknownDateMode, true},
		{"", rule.UnknownDateMode, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := rule.ParseDateMode(tt.text)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsNotAllowed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.text, got.String())
		})
	}

	assert.Error(t, rule.UnknownDateMode.Validate())
	assert.Equal(t, "unknown", rule.DateMode(42).String())
}
