package logger

import (
	"testing"
	"time"

	log_model "cargo-tracking/models/log"
	"cargo-tracking/types"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLogRedactsAuthorizationHeader(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&log_model.Log{}))

	asyncLogger := NewAsyncLogger(db)
	asyncLogger.Log(types.LogEntry{
		Method:         "GET",
		URL:            "/api/shipments",
		RequestHeaders: "Host: example.com\r\nAuthorization: Bearer secret-token\r\n",
		StatusCode:     200,
		CreatedAt:      time.Now(),
	})
	asyncLogger.Close()

	// With the channel closed ProcessLog drains and returns.
	asyncLogger.ProcessLog()

	var stored log_model.Log
	require.NoError(t, db.First(&stored).Error)
	require.Contains(t, stored.RequestHeaders, "Authorization: [REDACTED]")
	require.NotContains(t, stored.RequestHeaders, "secret-token")
	require.Contains(t, stored.RequestHeaders, "Host: example.com")
}

func TestRedactAuthorizationIsCaseInsensitive(t *testing.T) {
	headers := "authorization: Basic dXNlcjpwYXNz\r\nAccept: */*\r\n"
	redacted := RedactAuthorization(headers)
	require.NotContains(t, redacted, "dXNlcjpwYXNz")
	require.Contains(t, redacted, "Accept: */*")
}
