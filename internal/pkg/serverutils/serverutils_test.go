package serverutils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type saveRequestStub struct {
	Messages []messageStub `validate:"required,min=2,dive"`
}

type messageStub struct {
	Sender string `validate:"required,oneof=bot user"`
	Text   string `validate:"required"`
}

func TestValidateRequest(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		err := ValidateRequest(&saveRequestStub{
			Messages: []messageStub{
				{Sender: "bot", Text: "hi"},
				{Sender: "user", Text: "hello"},
			},
		})
		assert.NoError(t, err)
	})

	t.Run("too few messages", func(t *testing.T) {
		err := ValidateRequest(&saveRequestStub{
			Messages: []messageStub{{Sender: "bot", Text: "hi"}},
		})
		require.Error(t, err)

		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, fiber.StatusBadRequest, appErr.Status)
		assert.Contains(t, appErr.Message, "at least 2")
	})

	t.Run("bad sender value", func(t *testing.T) {
		err := ValidateRequest(&saveRequestStub{
			Messages: []messageStub{
				{Sender: "robot", Text: "hi"},
				{Sender: "user", Text: "hello"},
			},
		})
		require.Error(t, err)

		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Message, "must be one of")
	})
}

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/not-found", func(ctx *fiber.Ctx) error {
		return NewNotFoundError("chat not found")
	})
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return assert.AnError
	})

	t.Run("app error keeps its status and message", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/not-found", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		var parsed map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &parsed))
		assert.Equal(t, false, parsed["success"])
		assert.Equal(t, "chat not found", parsed["message"])
	})

	t.Run("unknown error becomes a generic 500", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		var parsed map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &parsed))
		assert.Equal(t, "internal server error", parsed["message"])
	})
}

func TestParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := jwt.MapClaims{
		"admin_id": "42",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}

	t.Run("hs256 token parses", func(t *testing.T) {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		parsed, err := ParseToken(signed)
		require.NoError(t, err)
		assert.Equal(t, "42", parsed["admin_id"])
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
		require.NoError(t, err)

		_, err = ParseToken(signed)
		assert.Error(t, err)
	})

	t.Run("none algorithm rejected", func(t *testing.T) {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = ParseToken(signed)
		assert.Error(t, err)
	})

	t.Run("hs512 rejected even with the right secret", func(t *testing.T) {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = ParseToken(signed)
		assert.Error(t, err)
	})
}

func TestExtractClientMeta(t *testing.T) {
	app := fiber.New()
	var got ClientMeta
	app.Get("/", func(ctx *fiber.Ctx) error {
		got = ExtractClientMeta(ctx)
		return ctx.SendStatus(fiber.StatusOK)
	})

	t.Run("forwarded chain takes the first hop", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
		req.Header.Set("User-Agent", "widget/1.0")
		_, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "203.0.113.5", got.IpAddress)
		assert.Equal(t, "widget/1.0", got.UserAgent)
	})

	t.Run("real ip header as fallback", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Real-IP", "198.51.100.7")
		_, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "198.51.100.7", got.IpAddress)
	})

	t.Run("connection address when no headers", func(t *testing.T) {
		_, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.NotEmpty(t, got.IpAddress)
	})
}
