package monitor

import "github.com/riskysoc/go-riskyboot/protocol"

// Config holds the monitor configuration.
type Config struct {
	// Banner is the identification line sent at startup and by the info
	// command
	Banner string

	// BootAddr is the default boot address used on timeout and by a boot
	// command with no argument
	BootAddr uint32

	// BaudDivisor is written to the UART at startup
	BaudDivisor uint32

	// GraceCycles is the startup window, in clock cycles, during which an
	// operator can interrupt auto-boot
	GraceCycles uint64

	// Logger receives diagnostic events (optional)
	Logger Logger
}

func defaultConfig(clock Clock) Config {
	hz := clock.Hz()
	return Config{
		Banner:      protocol.Banner,
		BootAddr:    protocol.DefaultBootAddr,
		BaudDivisor: protocol.BaudDivisor(hz, protocol.DefaultBaudRate),
		// roughly 250ms
		GraceCycles: uint64(hz) >> 2,
	}
}

// Option is a functional option for configuring the monitor.
type Option func(*Config)

// WithBanner overrides the identification banner.
func WithBanner(banner string) Option {
	return func(c *Config) {
		c.Banner = banner
	}
}

// WithBootAddr sets the default boot address.
func WithBootAddr(addr uint32) Option {
	return func(c *Config) {
		c.BootAddr = addr
	}
}

// WithBaudDivisor overrides the UART divisor written at startup.
func WithBaudDivisor(div uint32) Option {
	return func(c *Config) {
		c.BaudDivisor = div
	}
}

// WithGraceCycles sets the auto-boot grace period in clock cycles. The
// default is a quarter of the clock frequency, roughly 250ms.
func WithGraceCycles(cycles uint64) Option {
	return func(c *Config) {
		c.GraceCycles = cycles
	}
}

// WithLogger sets a logger for monitor events.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// Logger is an optional logging interface, allowing integration with any
// logging framework. The monitor itself never logs to the UART; log output
// is strictly a host-simulation convenience.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
