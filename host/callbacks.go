package host

import "time"

// Load phases reported through Progress.Phase.
const (
	PhaseWriting   = "writing"
	PhaseVerifying = "verifying"
	PhaseComplete  = "complete"
)

// Progress describes an image load in flight. Passed to ProgressCallback
// after every chunk.
type Progress struct {
	// Phase is one of the Phase* constants
	Phase string

	// BytesWritten is the number of image bytes written so far
	BytesWritten int

	// TotalBytes is the image size
	TotalBytes int

	// Percentage is the completion percentage (0.0 to 100.0)
	Percentage float64

	// ElapsedTime is the time since the load started
	ElapsedTime time.Duration
}

// ProgressCallback is called during LoadImage to report progress.
// Implementations should return quickly; the load blocks on them.
type ProgressCallback func(Progress)

// Logger is an optional logging interface allowing integration with any
// logging framework.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
