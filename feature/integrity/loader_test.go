package integrity

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeature(t *testing.T) {
	feature := NewFeature(Options{})

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())
	require.NotNil(t, feature.Service())

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	// Without storage the structure check answers, but as a failure.
	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/structure", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
