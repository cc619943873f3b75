package rayid_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"park-sync/core/middleware/rayid"
)

func TestNew(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(rayid.LocalKey).(string))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	id := resp.Header.Get(rayid.Header)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.Header, "client-ray")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "client-ray", resp.Header.Get(rayid.Header))
}
