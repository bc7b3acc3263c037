package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cargo-tracking/models/user"
	"cargo-tracking/types"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("s3cret-passw0rd")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-passw0rd", hashed)

	require.True(t, CheckPassword(hashed, "s3cret-passw0rd"))
	require.False(t, CheckPassword(hashed, "wrong-password"))
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	u := &user.User{
		Uuid:        "abc-123",
		Username:    "operator1",
		Permissions: user.StringSlice{"cargo-tracking.operator.full-permit"},
	}

	token, err := GenerateToken(u)
	require.NoError(t, err)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	require.Equal(t, "abc-123", claims["uuid"])
	require.Equal(t, "operator1", claims["username"])
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	u := &user.User{Uuid: "abc-123", Username: "operator1"}
	token, err := GenerateToken(u)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = VerifyToken(token)
	require.Error(t, err)

	_, err = VerifyToken("not-a-token")
	require.Error(t, err)
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := GenerateToken(&user.User{Uuid: "abc-123"})
	require.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	app := fiber.New()
	var token string
	var extractErr error
	app.Get("/probe", func(c *fiber.Ctx) error {
		token, extractErr = ExtractBearerToken(c)
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run("from header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/probe", nil)
		req.Header.Set("Authorization", "Bearer header-token")
		_, err := app.Test(req)
		require.NoError(t, err)
		require.NoError(t, extractErr)
		require.Equal(t, "header-token", token)
	})

	t.Run("from cookie", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/probe", nil)
		req.AddCookie(&http.Cookie{Name: "access", Value: "cookie-token"})
		_, err := app.Test(req)
		require.NoError(t, err)
		require.NoError(t, extractErr)
		require.Equal(t, "cookie-token", token)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/probe", nil)
		req.Header.Set("Authorization", "header-token")
		_, err := app.Test(req)
		require.NoError(t, err)
		require.Error(t, extractErr)
	})

	t.Run("missing", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/probe", nil)
		_, err := app.Test(req)
		require.NoError(t, err)
		require.Error(t, extractErr)
	})
}

func TestCreateLogEntryRedactsAuthorization(t *testing.T) {
	app := fiber.New()
	var entry types.LogEntry
	app.Post("/probe", func(c *fiber.Ctx) error {
		if err := c.SendString("pong"); err != nil {
			return err
		}
		entry = CreateLogEntry(c)
		return nil
	})

	req := httptest.NewRequest("POST", "/probe?verbose=1", strings.NewReader("ping"))
	req.Header.Set("Authorization", "Bearer super-secret-token")
	_, err := app.Test(req)
	require.NoError(t, err)

	require.Equal(t, "POST", entry.Method)
	require.Equal(t, "/probe?verbose=1", entry.URL)
	require.Equal(t, "ping", entry.RequestBody)
	require.Equal(t, "pong", entry.ResponseBody)
	require.Equal(t, fiber.StatusOK, entry.StatusCode)
	require.NotContains(t, entry.RequestHeaders, "super-secret-token")
	require.Contains(t, entry.RequestHeaders, "[REDACTED]")
}
