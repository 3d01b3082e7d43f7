package types

import "time"

// LogEntry carries one HTTP request trace from the middleware to the async logger.
type LogEntry struct {
	Method       string
	URL          string
	ClientIP     string
	RequestBody  string
	ResponseBody string
	StatusCode   int
	DurationMs   int64
	CreatedAt    time.Time
}
