package logger

import (
	"log"

	log_model "joyful-cargo/models/log"
	"joyful-cargo/types"

	"gorm.io/gorm"
)

// AsyncLogger persists request traces to the logs table without blocking
// the request goroutine.
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

func (logger *AsyncLogger) ProcessLog() {
	log.Println("Starting asynchronous logger...")

	for logEntry := range logger.channel {
		dbLog := log_model.Log{
			Method:       logEntry.Method,
			URL:          logEntry.URL,
			ClientIP:     logEntry.ClientIP,
			RequestBody:  logEntry.RequestBody,
			ResponseBody: logEntry.ResponseBody,
			StatusCode:   logEntry.StatusCode,
			DurationMs:   logEntry.DurationMs,
			CreatedAt:    logEntry.CreatedAt,
		}

		if err := logger.db.Create(&dbLog).Error; err != nil {
			log.Printf("Failed to insert new log entry: %v", err)
		}
	}
}

// Log pushes a log entry into the channel. Entries are dropped when the
// buffer is full so a slow database never stalls request handling.
func (logger *AsyncLogger) Log(entry types.LogEntry) {
	select {
	case logger.channel <- entry:
	default:
	}
}
