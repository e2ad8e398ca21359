// Package protocol defines the wire format of the risky boot monitor.
//
// # Protocol Overview
//
// The monitor speaks a line-oriented, human-typable ASCII protocol over a
// UART. Each request is a single line of at most 1023 characters plus a
// terminator (CR, LF, or CRLF all accepted):
//
//	<cmd-char>[ <hex>[ <hex>[ <hex>]]]
//
// Arguments are unsigned 32-bit hexadecimal integers with no prefix and no
// sign. Each accepted command produces one or more response lines of the
// form:
//
//	<report-char> <hex-value>
//
// terminated with CRLF. The memory-read command additionally produces a
// multi-line hex dump preceding its own status line. Malformed or
// unrecognized commands produce no response at all; the single exception is
// the buffer-overrun condition, which produces the fixed diagnostic line
// "e: overrun".
//
// # Commands
//
//	i              report banner, buffer capacity, boot address, version
//	e              toggle input echo
//	b [addr]       transfer control to addr (default boot address if omitted)
//	m [start [end]]  dump memory as a hex table
//	c start end dest copy [start,end) to dest
//	p addr [b0 b1 ...] write bytes starting at addr
//
// # Formatting Helpers
//
// AppendHex renders values with the monitor's minimum-width rule, AppendStatus
// and AppendDumpRow build response lines, and ParseStatus and ParseDumpRow are
// their host-side inverses:
//
//	line := protocol.AppendStatus(nil, protocol.CmdRead, 0x10)
//	// "m 10\r\n"
//
//	ch, val, err := protocol.ParseStatus("m 10")
//
// This package contains no I/O and no device state; it is shared by the
// device-side monitor package and the host-side client package.
package protocol
