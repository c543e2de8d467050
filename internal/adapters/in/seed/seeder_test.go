package seed_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"deliverytime/internal/adapters/in/seed"
	"deliverytime/internal/core/application/usecases/commands"
	"deliverytime/internal/core/domain/model/rule"
	"deliverytime/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
rules:
  - name: Morning
    startTime: "08:00"
    endTime: "11:59"
    deliveryDateMode: today
    deliveryTime: "15:00"
    priority: 10
    description: Same-day afternoon
  - name: Evening
    startTime: "18:00"
    endTime: "23:59"
    deliveryDateMode: tomorrow
    deliveryTime: "12:00"
    active: false
  - name: Holiday
    startTime: "00:00"
    endTime: "23:59"
    deliveryDateMode: custom
    customDeliveryDate: "2024-12-27"
    deliveryTime: "10:00"
    priority: 100
`

type MockCreateRuleHandler struct{ mock.Mock }

func (m *MockCreateRuleHandler) Handle(ctx context.Context, cmd commands.CreateRuleCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

var seededAt = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newSeeder(handler *MockCreateRuleHandler) *seed.Seeder {
	return seed.NewSeeder(handler, func() time.Time { return seededAt }, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func byName(name string) any {
	return mock.MatchedBy(func(cmd commands.CreateRuleCommand) bool {
		return cmd.Definition().Name == name
	})
}

func TestLoadRules(t *testing.T) {
	definitions, err := seed.LoadRules(writeSeed(t, seedYAML))

	require.NoError(t, err)
	require.Len(t, definitions, 3)
	assert.Equal(t, "Morning", definitions[0].Name)
	require.NotNil(t, definitions[0].Priority)
	assert.Equal(t, 10, *definitions[0].Priority)
	require.NotNil(t, definitions[1].Active)
	assert.False(t, *definitions[1].Active)
	assert.Nil(t, definitions[1].Priority)
	assert.Equal(t, "2024-12-27", definitions[2].CustomDeliveryDate)
}

func TestLoadRules_Errors(t *testing.T) {
	_, err := seed.LoadRules(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = seed.LoadRules(writeSeed(t, "rules: [unclosed"))
	require.Error(t, err)
}

func TestSeeder_SeedFile_CreatesAndSkipsExisting(t *testing.T) {
	handler := new(MockCreateRuleHandler)
	handler.On("Handle", mock.Anything, byName("Morning")).Return(nil)
	handler.On("Handle", mock.Anything, byName("Evening")).
		Return(errs.NewObjectAlreadyExistsError("rule name", "Evening"))
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateRuleCommand) bool {
		def := cmd.Definition()
		return def.Name == "Holiday" && def.DateMode == rule.Custom &&
			def.CustomDeliveryDate != nil && def.CustomDeliveryDate.String() == "2024-12-27" &&
			cmd.CreatedAt().Equal(seededAt)
	})).Return(nil)

	result, err := newSeeder(handler).SeedFile(context.Background(), writeSeed(t, seedYAML))

	require.NoError(t, err)
	assert.Equal(t, seed.Result{Created: 2, Skipped: 1}, result)
	handler.AssertExpectations(t)
}

func TestSeeder_Seed_InvalidDefinitionStops(t *testing.T) {
	handler := new(MockCreateRuleHandler)
	handler.On("Handle", mock.Anything, byName("Good")).Return(nil)

	result, err := newSeeder(handler).Seed(context.Background(), []rule.RawDefinition{
		{Name: "Good", StartTime: "08:00", EndTime: "09:00", DeliveryDateMode: "today", DeliveryTime: "12:00"},
		{Name: "Bad", StartTime: "8 o'clock", EndTime: "09:00", DeliveryDateMode: "today", DeliveryTime: "12:00"},
		{Name: "Never", StartTime: "10:00", EndTime: "11:00", DeliveryDateMode: "today", DeliveryTime: "12:00"},
	})

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), `"Bad"`)
	assert.Equal(t, seed.Result{Created: 1}, result)
	handler.AssertNumberOfCalls(t, "Handle", 1)
}

func TestSeeder_Seed_StoreFailure(t *testing.T) {
	handler := new(MockCreateRuleHandler)
	handler.On("Handle", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	_, err := newSeeder(handler).Seed(context.Background(), []rule.RawDefinition{
		{Name: "Good", StartTime: "08:00", EndTime: "09:00", DeliveryDateMode: "today", DeliveryTime: "12:00"},
	})

	require.EqualError(t, err, `seed rule #1 "Good": connection reset`)
}
