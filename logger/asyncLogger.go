package logger

import (
	"log"
	"regexp"

	log_model "cargo-tracking/models/log"
	"cargo-tracking/types"

	"gorm.io/gorm"
)

var authorizationHeaderPattern = regexp.MustCompile(`(?i)(authorization:)[^\r\n]*`)

// RedactAuthorization masks credential-bearing header lines so raw
// tokens never reach the log table.
func RedactAuthorization(headers string) string {
	return authorizationHeaderPattern.ReplaceAllString(headers, "$1 [REDACTED]")
}

// AsyncLogger persists request logs to the database off the request path.
type AsyncLogger struct {
	db      *gorm.DB
	channel chan types.LogEntry
}

func NewAsyncLogger(db *gorm.DB) *AsyncLogger {
	return &AsyncLogger{
		db:      db,
		channel: make(chan types.LogEntry, 100), // Buffered channel to hold log entries
	}
}

// ProcessLog drains the channel; run it in its own goroutine.
func (logger *AsyncLogger) ProcessLog() {
	log.Println("Starting asynchronous logger...")

	for logEntry := range logger.channel {
		dbLog := log_model.Log{
			Method:          logEntry.Method,
			URL:             logEntry.URL,
			RequestBody:     logEntry.RequestBody,
			ResponseBody:    logEntry.ResponseBody,
			RequestHeaders:  logEntry.RequestHeaders,
			ResponseHeaders: logEntry.ResponseHeaders,
			StatusCode:      logEntry.StatusCode,
			CreatedAt:       logEntry.CreatedAt,
		}

		if err := logger.db.Create(&dbLog).Error; err != nil {
			log.Printf("Failed to insert new log entry: %v", err)
		}
	}
}

// Log pushes a log entry into the channel. Headers are redacted here so
// every producer gets the same treatment.
func (logger *AsyncLogger) Log(entry types.LogEntry) {
	entry.RequestHeaders = RedactAuthorization(entry.RequestHeaders)
	logger.channel <- entry
}

// Close stops accepting entries; ProcessLog returns once the remaining
// entries are drained.
func (logger *AsyncLogger) Close() {
	close(logger.channel)
}
