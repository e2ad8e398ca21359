package protocol

// Version is the monitor protocol version reported as the status value of
// the info command.
const Version = 1

// Banner is the identification line emitted at startup and by the info
// command. The trailing digit tracks Version.
const Banner = "risky-b1"

// Terminator ends every response line. Incoming lines may end with CR, LF,
// or CRLF.
const Terminator = "\r\n"

// Command characters understood by the monitor.
const (
	// CmdInfo reports the banner, buffer capacity and boot address
	CmdInfo = 'i'

	// CmdEcho toggles echo of received bytes
	CmdEcho = 'e'

	// CmdBoot transfers control to a loaded program
	CmdBoot = 'b'

	// CmdRead dumps a memory range as a hex table
	CmdRead = 'm'

	// CmdCopy copies a memory range to a destination address
	CmdCopy = 'c'

	// CmdPatch writes individual bytes starting at an address
	CmdPatch = 'p'
)

// Report characters used for the extra status lines of the info command.
// They share the status-line format with command acknowledgments.
const (
	// ReportCapacity precedes the command buffer capacity
	ReportCapacity = 'k'

	// ReportBootAddr precedes the default boot address
	ReportBootAddr = 'b'
)

// Line framing limits.
const (
	// BufferSize is the command buffer capacity in bytes
	BufferSize = 1024

	// MaxLineLen is the longest accepted command line; one buffer slot is
	// reserved for the terminator
	MaxLineLen = BufferSize - 1

	// MaxArgs is the number of hex arguments captured by the parser
	MaxArgs = 3
)

// OverrunLine is the fixed diagnostic emitted when an input line reaches the
// buffer capacity before a terminator is seen. It is the only response the
// monitor ever produces for bad input.
const OverrunLine = "e: overrun"

// Memory dump layout.
const (
	// DumpRowBytes is the number of byte values per hex-table row
	DumpRowBytes = 16

	// DefaultDumpSpan is the number of bytes dumped when the read command
	// is given no end address
	DefaultDumpSpan = 128
)

// Memory map of the risky SoC. Regions are spaced on 256 MiB boundaries.
const (
	// ROMBase is the start of the 32 KiB boot ROM holding the monitor
	ROMBase = 0x00000000

	// RAMBase is the start of the 8 KiB RAM where images are loaded
	RAMBase = 0x10000000

	// DefaultBootAddr is the address booted on timeout or a bare boot
	// command
	DefaultBootAddr = RAMBase
)

// Line rate defaults.
const (
	// DefaultClockHz is the reference system clock frequency
	DefaultClockHz = 1_000_000

	// DefaultBaudRate is the known-good line rate configured at startup
	DefaultBaudRate = 115200
)

// BaudDivisor returns the UART divisor for the given clock frequency and
// line rate, matching the hardware's clk/baud derivation.
func BaudDivisor(clockHz, baudRate uint32) uint32 {
	return clockHz / baudRate
}
