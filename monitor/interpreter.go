package monitor

import "github.com/riskysoc/go-riskyboot/protocol"

// Handle parses and executes one completed command line, reporting status
// over the port. It returns true when the line matched a command and its
// argument preconditions; malformed and unrecognized lines are silently
// ignored and return false.
//
// Note the precondition asymmetry inherited from the protocol: i, e, b and m
// reject trailing garbage, c and p accept it.
func (m *Monitor) Handle(line []byte) bool {
	cmd := ParseCommand(line)

	switch {
	case cmd.Char == protocol.CmdInfo && cmd.Argc == 1 && cmd.End:
		m.sendLine(m.cfg.Banner)
		m.sendStatus(protocol.ReportCapacity, protocol.BufferSize)
		m.sendStatus(protocol.ReportBootAddr, m.cfg.BootAddr)
		m.sendStatus(cmd.Char, protocol.Version)

	case cmd.Char == protocol.CmdEcho && cmd.Argc == 1 && cmd.End:
		m.echo = !m.echo
		m.reader.SetEcho(m.echo)

		var status uint32
		if m.echo {
			status = 1
		}
		m.sendStatus(cmd.Char, status)

	case cmd.Char == protocol.CmdBoot && cmd.Argc >= 1 && cmd.Argc <= 2 && cmd.End:
		addr := m.cfg.BootAddr
		if cmd.Argc >= 2 {
			addr = cmd.Arg1
		}

		m.sendStatus(cmd.Char, addr)
		m.logInfo("boot requested", "addr", addr)
		m.transfer(addr)

	case cmd.Char == protocol.CmdRead && cmd.Argc >= 1 && cmd.Argc <= 3 && cmd.End:
		start := m.lastAddr
		if cmd.Argc >= 2 {
			start = cmd.Arg1
		}
		end := start + protocol.DefaultDumpSpan
		if cmd.Argc >= 3 {
			end = cmd.Arg2
		}

		m.sendStatus(cmd.Char, m.dumpMemory(start, end))
		m.lastAddr = end

	case cmd.Char == protocol.CmdCopy && cmd.Argc == 4:
		m.sendStatus(cmd.Char, m.copyMemory(cmd.Arg1, cmd.Arg2, cmd.Arg3))

	case cmd.Char == protocol.CmdPatch && cmd.Argc >= 2:
		m.sendStatus(cmd.Char, m.patchMemory(cmd))

	default:
		return false
	}

	return true
}

// dumpMemory sends the hex table for [start, end) and returns the byte
// count. The scan stops exactly at the exclusive end address, so the final
// row may be short. end below start dumps nothing; the returned count wraps
// like the address arithmetic it reflects.
func (m *Monitor) dumpMemory(start, end uint32) uint32 {
	var row [protocol.DumpRowBytes]byte

	cur := start
	for cur < end {
		rowAddr := cur
		n := 0
		for cur < end && n < protocol.DumpRowBytes {
			row[n] = m.mem.ReadByte(cur)
			cur++
			n++
		}

		m.scratch = protocol.AppendDumpRow(m.scratch[:0], rowAddr, row[:n])
		m.sendBytes(m.scratch)
	}

	return end - start
}

// copyMemory copies [start, end) to dest and returns the byte count. Ranges
// may overlap; bytes are moved in ascending address order as the protocol
// promises, so a forward overlap smears.
func (m *Monitor) copyMemory(start, end, dest uint32) uint32 {
	for cur := start; cur < end; cur++ {
		m.mem.WriteByte(dest, m.mem.ReadByte(cur))
		dest++
	}
	return end - start
}

// patchMemory writes the pre-parsed argument bytes (second and third
// arguments, truncated to their low byte) starting at the patch address,
// then continues scanning the line for further hex bytes and writes them
// sequentially. Returns the number of bytes written.
func (m *Monitor) patchMemory(cmd Command) uint32 {
	cur := cmd.Arg1

	preparsed := cmd.Argc - 2
	if preparsed > 0 {
		m.mem.WriteByte(cur, byte(cmd.Arg2))
		cur++
	}
	if preparsed > 1 {
		m.mem.WriteByte(cur, byte(cmd.Arg3))
		cur++
	}

	pos := 0
	for {
		val, next, found := parseHex(cmd.tail, pos)
		if !found {
			break
		}
		m.mem.WriteByte(cur, byte(val))
		cur++
		pos = next
	}

	return cur - cmd.Arg1
}

func (m *Monitor) sendStatus(report byte, val uint32) {
	m.scratch = protocol.AppendStatus(m.scratch[:0], report, val)
	m.sendBytes(m.scratch)
}
