package servers_test

import (
	"context"
	"testing"

	"deliverytime/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger_EmbeddedDocumentIsValid(t *testing.T) {
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)

	require.NoError(t, swagger.Validate(context.Background()))
	assert.Equal(t, "Delivery time rules", swagger.Info.Title)

	for _, path := range []string{
		"/api/v1/delivery-time-rules",
		"/api/v1/delivery-time-rules/estimate",
		"/api/v1/delivery-time-rules/{ruleId}",
		"/api/v1/orders",
		"/api/v1/orders/unscheduled",
		"/api/v1/orders/{orderId}/delivery-time",
	} {
		assert.NotNil(t, swagger.Paths.Find(path), path)
	}
}
