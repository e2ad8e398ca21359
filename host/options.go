package host

import "github.com/riskysoc/go-riskyboot/protocol"

// Config holds the client configuration.
type Config struct {
	// ProgressCallback reports LoadImage progress (optional)
	ProgressCallback ProgressCallback

	// Logger receives operation logs (optional)
	Logger Logger

	// ChunkSize is the number of image bytes written per patch line
	ChunkSize int

	// Verify enables a read-back compare after LoadImage
	Verify bool
}

func defaultConfig() Config {
	return Config{
		// 32 bytes per line keeps patch lines far below the monitor's
		// 1023-character limit while amortizing the per-line status
		// round trip
		ChunkSize: 32,
		Verify:    true,
	}
}

// maxPatchChunk is the largest chunk that fits a patch line within the
// monitor's line limit: "p " + 8-digit address + " xx" per byte.
const maxPatchChunk = (protocol.MaxLineLen - 10) / 3

// Option is a functional option for configuring the client.
type Option func(*Config)

// WithProgressCallback sets a callback to track LoadImage progress.
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for client operations.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithChunkSize sets the number of bytes written per patch line during
// LoadImage. Values are clamped to what fits on one protocol line.
func WithChunkSize(size int) Option {
	return func(c *Config) {
		if size > 0 && size <= maxPatchChunk {
			c.ChunkSize = size
		}
	}
}

// WithVerify enables or disables the read-back compare after LoadImage.
// Default is true.
func WithVerify(verify bool) Option {
	return func(c *Config) {
		c.Verify = verify
	}
}
