package auth

import (
	"net/http/httptest"
	"strings"
	"testing"

	"cargo-tracking/logger"
	userModel "cargo-tracking/models/user"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAuthApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userModel.User{}))

	controller := NewAuthController(db, logger.NewAsyncLogger(db))
	app := fiber.New()
	app.Post("/api/register", controller.Register)
	return app, db
}

func TestRegisterDuplicateReturnsConflict(t *testing.T) {
	app, db := setupAuthApp(t)

	body := `{"username":"operator1","legal_name":"Operator One","email":"op1@example.com","password":"longenough1"}`

	req := httptest.NewRequest("POST", "/api/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Same username again: conflict, not a server error.
	req = httptest.NewRequest("POST", "/api/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&userModel.User{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestRegisterValidation(t *testing.T) {
	app, _ := setupAuthApp(t)

	// Password below the minimum length.
	body := `{"username":"operator1","legal_name":"Operator One","email":"op1@example.com","password":"short"}`
	req := httptest.NewRequest("POST", "/api/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
