package collection

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"figurine-manager/core/telemetry"
	"figurine-manager/feature/collection/models"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) (*fiber.App, *telemetry.Metrics) {
	t.Helper()
	metrics := telemetry.NewMetrics()
	feature := NewFeature(setupSQLite(t), zap.NewNop(), metrics)
	require.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app, metrics
}

func TestHandler_ImportJSONThenList(t *testing.T) {
	app, metrics := setupApp(t)

	body := `{"items": [{"name": "Warrior", "amount": 2, "criteria": [{"name": "Warrior"}]}, {"name": "Archer"}]}`
	req := httptest.NewRequest("POST", "/collection/import", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "imported", result["status"])
	assert.Equal(t, float64(2), result["imported"])
	assert.Equal(t, float64(2), result["total"])
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.ImportedItemsTotal))

	resp, err = app.Test(httptest.NewRequest("GET", "/collection", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var items []models.Item
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 2)
	assert.Equal(t, "Warrior", items[0].Name)
	assert.Equal(t, 2, items[0].Amount)
	require.Len(t, items[0].Criteria, 1)
	assert.Equal(t, "Archer", items[1].Name)
	assert.Equal(t, 1, items[1].Amount)
}

func TestHandler_ImportYAMLReplace(t *testing.T) {
	app, _ := setupApp(t)

	first := httptest.NewRequest("POST", "/collection/import", strings.NewReader(`[{"name": "Old"}]`))
	first.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(first)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	yamlBody := "items:\n  - name: New\n    amount: 4\n    painted: true\n"
	req := httptest.NewRequest("POST", "/collection/import?replace=true", strings.NewReader(yamlBody))
	req.Header.Set("Content-Type", "application/x-yaml")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, true, result["replace"])
	assert.Equal(t, float64(1), result["total"])

	resp, err = app.Test(httptest.NewRequest("GET", "/collection", nil))
	require.NoError(t, err)
	var items []models.Item
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "New", items[0].Name)
	assert.Equal(t, 4, items[0].Amount)
}

func TestHandler_ImportInvalidAmount(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest("POST", "/collection/import", strings.NewReader(`[{"name": "Half", "amount": 1.5}]`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "amount")
}

func TestHandler_ImportInvalidDocument(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest("POST", "/collection/import", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestFeature_DisabledWithoutDatabase(t *testing.T) {
	feature := NewFeature(nil, zap.NewNop(), nil)
	assert.Equal(t, "collection", feature.Name())
	assert.False(t, feature.IsEnabled())
}
