package domain

// ErrorStatusThreshold is the lowest status code counted as an error request
const ErrorStatusThreshold = 400

// LogEntry is one API request record decoded from a JSONL line
type LogEntry struct {
	Line       int // 1-indexed source line, used for diagnostics only
	Timestamp  string
	Endpoint   string
	StatusCode int64
}

// IsError reports whether the request ended with a client or server error
func (e LogEntry) IsError() bool {
	return e.StatusCode >= ErrorStatusThreshold
}
