package middleware_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chynybekuuludastan/creator_toolkit/internal/api/middleware"
	"github.com/chynybekuuludastan/creator_toolkit/internal/metrics"
)

func readBody(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"request_id": middleware.GetRequestID(c)})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)

	requestID := resp.Header.Get(middleware.RequestIDHeader)
	assert.Len(t, requestID, 36)
	assert.Equal(t, requestID, readBody(t, resp.Body)["request_id"])
}

func TestRequestID_UsesClientProvidedID(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Get("/test", func(c *fiber.Ctx) error { return c.SendString(middleware.GetRequestID(c)) })

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(middleware.RequestIDHeader, "client-id-123")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "client-id-123", resp.Header.Get(middleware.RequestIDHeader))
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "client-id-123", string(body))
}

func TestSession(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.Session())
	app.Get("/test", func(c *fiber.Ctx) error { return c.SendString(middleware.GetSessionID(c)) })

	t.Run("uses header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(middleware.SessionIDHeader, "tab-1")
		resp, err := app.Test(req)
		require.NoError(t, err)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "tab-1", string(body))
		assert.Equal(t, "tab-1", resp.Header.Get(middleware.SessionIDHeader))
	})

	t.Run("falls back to client IP", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
		require.NoError(t, err)

		body, _ := io.ReadAll(resp.Body)
		assert.NotEmpty(t, string(body))
	})

	t.Run("rejects oversized IDs", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(middleware.SessionIDHeader, strings.Repeat("s", middleware.MaxSessionIDLength+1))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, false, readBody(t, resp.Body)["success"])
	})
}

func TestRateLimiter_Handler(t *testing.T) {
	limiter := middleware.NewRateLimiter(0.001, 2)

	app := fiber.New()
	app.Use(middleware.Session(), limiter.Handler())
	app.Get("/test", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	do := func(session string) int {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(middleware.SessionIDHeader, session)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, do("a"))
	assert.Equal(t, fiber.StatusOK, do("a"))
	assert.Equal(t, fiber.StatusTooManyRequests, do("a"))
	assert.Equal(t, fiber.StatusOK, do("b"), "buckets are per session")
}

func TestRateLimiter_DisabledAndCleanup(t *testing.T) {
	disabled := middleware.NewRateLimiter(0, 0)
	for i := 0; i < 100; i++ {
		assert.True(t, disabled.Allow("x"))
	}

	limiter := middleware.NewRateLimiter(1, 1)
	limiter.Allow("old")
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 1, limiter.Cleanup(time.Millisecond))
	assert.Equal(t, 0, limiter.Cleanup(time.Millisecond))
}

func TestMetrics(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.Metrics())
	app.Get("/items/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "teapot") })

	okBefore := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/items/:id", "200"))
	boomBefore := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/boom", "418"))

	_, err := app.Test(httptest.NewRequest("GET", "/items/1", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/items/2", nil))
	require.NoError(t, err)
	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	assert.Equal(t, okBefore+2, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/items/:id", "200")))
	assert.Equal(t, boomBefore+1, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/boom", "418")))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.HTTPRequestsInFlight))
}

func TestSession_IDSurvivesLaterRequests(t *testing.T) {
	// default config: header strings alias pooled request buffers
	app := fiber.New()
	app.Use(middleware.Session())

	var seen []string
	app.Get("/test", func(c *fiber.Ctx) error {
		seen = append(seen, middleware.GetSessionID(c))
		return c.SendStatus(fiber.StatusOK)
	})

	do := func(session string) {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(middleware.SessionIDHeader, session)
		_, err := app.Test(req)
		require.NoError(t, err)
	}

	do("session-AAAA")
	for i := 0; i < 5; i++ {
		do("session-BBBB")
	}

	require.Len(t, seen, 6)
	assert.Equal(t, "session-AAAA", seen[0])
}

func TestMetrics_MethodLabelSurvivesLaterRequests(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.Metrics())
	app.All("/labels", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	postBefore := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("POST", "/labels", "200"))

	_, err := app.Test(httptest.NewRequest("POST", "/labels", nil))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err = app.Test(httptest.NewRequest("GET", "/labels", nil))
		require.NoError(t, err)
	}

	assert.Equal(t, postBefore+1, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("POST", "/labels", "200")))
}
