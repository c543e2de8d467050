package docs_test

import (
	"encoding/json"
	"testing"

	_ "deliverytime/internal/generated/docs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestReadDoc_ServesOpenAPIJSON(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	assert.Equal(t, "3.0.3", parsed["openapi"])
	assert.NotContains(t, parsed, "servers")
	assert.Contains(t, parsed["paths"], "/api/v1/delivery-time-rules/estimate")
}
