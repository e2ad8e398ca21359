package monitor

import (
	"context"
	"errors"

	"github.com/riskysoc/go-riskyboot/protocol"
)

// Monitor is the boot monitor state machine: one command buffer, the echo
// flag, the last-accessed dump address, and the injected hardware
// capabilities. It is single-threaded by design; all methods must be called
// from one goroutine.
type Monitor struct {
	port  Port
	mem   Memory
	clock Clock
	boot  BootFunc
	cfg   Config

	reader   *LineReader
	echo     bool
	lastAddr uint32

	booted   bool
	bootAddr uint32

	scratch []byte
}

// New creates a monitor over the given hardware capabilities. boot may be
// nil, in which case a boot request simply ends Run.
func New(port Port, mem Memory, clock Clock, boot BootFunc, opts ...Option) *Monitor {
	if port == nil {
		panic("port cannot be nil")
	}
	if mem == nil {
		panic("memory cannot be nil")
	}
	if clock == nil {
		panic("clock cannot be nil")
	}

	cfg := defaultConfig(clock)
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Monitor{
		port:  port,
		mem:   mem,
		clock: clock,
		boot:  boot,
		cfg:   cfg,
	}
	m.reader = NewLineReader(0, portWriter{m})
	return m
}

// Run executes the bring-up policy loop: configure the UART, emit the
// banner, then poll for input until either an operator has issued a command
// (which permanently disables the auto-boot timeout) or the grace period
// elapses, in which case the default address is booted.
//
// Run returns the address control was transferred to. On real hardware the
// injected BootFunc never returns and neither does Run; with a simulated
// target Run returns once the boot function has.
func (m *Monitor) Run(ctx context.Context) (uint32, error) {
	deadline := ReadCycles(m.clock) + m.cfg.GraceCycles

	m.port.SetBaudDivisor(m.cfg.BaudDivisor)
	m.sendLine(m.cfg.Banner)

	timeoutActive := true
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		if timeoutActive && ReadCycles(m.clock) >= deadline {
			break
		}

		if !m.port.RxReady() {
			continue
		}

		ready, err := m.reader.Feed(m.port.RxRead())
		if errors.Is(err, ErrOverrun) {
			m.logDebug("input overrun, line discarded")
			m.sendLine(protocol.OverrunLine)
			continue
		}
		if !ready {
			continue
		}

		if m.Handle(m.reader.Line()) {
			// one successful command means no auto-boot
			timeoutActive = false
		}
		if m.booted {
			return m.bootAddr, nil
		}
	}

	// nobody talked to us: boot the default image
	m.logInfo("grace period elapsed, booting default image", "addr", m.cfg.BootAddr)
	m.transfer(m.cfg.BootAddr)
	return m.bootAddr, nil
}

// transfer hands control to the entry point at addr.
func (m *Monitor) transfer(addr uint32) {
	m.booted = true
	m.bootAddr = addr
	if m.boot != nil {
		m.boot(addr)
	}
}

// Booted reports whether a boot has been requested, and to which address.
func (m *Monitor) Booted() (uint32, bool) { return m.bootAddr, m.booted }

// sendByte transmits one byte, busy-waiting on transmitter readiness as the
// hardware requires.
func (m *Monitor) sendByte(c byte) {
	for !m.port.TxReady() {
	}
	m.port.TxWrite(c)
}

func (m *Monitor) sendBytes(p []byte) {
	for _, c := range p {
		m.sendByte(c)
	}
}

// sendLine transmits s followed by the line terminator.
func (m *Monitor) sendLine(s string) {
	m.scratch = append(m.scratch[:0], s...)
	m.scratch = append(m.scratch, protocol.Terminator...)
	m.sendBytes(m.scratch)
}

// portWriter adapts the monitor's transmit path to io.Writer for the line
// reader's echo sink.
type portWriter struct{ m *Monitor }

func (w portWriter) Write(p []byte) (int, error) {
	w.m.sendBytes(p)
	return len(p), nil
}

func (m *Monitor) logDebug(msg string, keysAndValues ...interface{}) {
	if m.cfg.Logger != nil {
		m.cfg.Logger.Debug(msg, keysAndValues...)
	}
}

func (m *Monitor) logInfo(msg string, keysAndValues ...interface{}) {
	if m.cfg.Logger != nil {
		m.cfg.Logger.Info(msg, keysAndValues...)
	}
}
