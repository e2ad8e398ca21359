package monitor

// Port is the byte-level UART contract consumed by the monitor.
//
// Transmit is busy-waited: the monitor polls TxReady before every TxWrite.
// Receive is polled non-blockingly: RxRead is only called after RxReady has
// returned true, so implementations never need to block in RxRead.
type Port interface {
	// TxReady reports whether the transmitter can accept a byte
	TxReady() bool

	// TxWrite hands one byte to the transmitter
	TxWrite(c byte)

	// RxReady reports whether a received byte is waiting
	RxReady() bool

	// RxRead consumes one received byte
	RxRead() byte

	// SetBaudDivisor configures the line-rate divisor
	SetBaudDivisor(div uint32)
}

// Memory is byte-addressed access to the target's address space. Addresses
// are opaque 32-bit values; no bounds checking is performed at any layer, so
// implementations decide what out-of-range access means (real hardware wraps
// or faults, the simulated target is sparse and boundless).
type Memory interface {
	ReadByte(addr uint32) byte
	WriteByte(addr uint32, val byte)
}

// Clock exposes the target's 64-bit cycle counter as the hardware does: two
// independently-updating 32-bit halves plus the clock frequency. Use
// ReadCycles to assemble a consistent 64-bit value.
type Clock interface {
	// High reads the upper 32 bits of the cycle counter
	High() uint32

	// Low reads the lower 32 bits of the cycle counter
	Low() uint32

	// Hz returns the clock frequency
	Hz() uint32
}

// BootFunc transfers control to the entry point at addr, a zero-argument
// routine. On real hardware it never returns; simulated targets may return,
// in which case Run finishes normally.
type BootFunc func(addr uint32)

// ReadCycles assembles the 64-bit cycle count from the clock's two halves.
// The halves update independently, so a read is valid only if the high half
// is unchanged across the low-half read; otherwise a low-half rollover raced
// the read and it is retried. This is the lock-free guard the hardware
// expects of its software.
func ReadCycles(c Clock) uint64 {
	for {
		hi := c.High()
		lo := c.Low()
		if c.High() == hi {
			return uint64(hi)<<32 | uint64(lo)
		}
	}
}
