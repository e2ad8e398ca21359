package protocol

import "strconv"

// AppendStatus appends a status line to dst: the report character, a space,
// the value in minimum-width hex, and the line terminator.
//
//	protocol.AppendStatus(nil, 'm', 0x10) // "m 10\r\n"
func AppendStatus(dst []byte, report byte, val uint32) []byte {
	dst = append(dst, report, ' ')
	dst = AppendHex(dst, val, 1)
	return append(dst, Terminator...)
}

// ParseStatus parses a status line (terminator already stripped) into its
// report character and hex value.
func ParseStatus(line string) (report byte, val uint32, err error) {
	if len(line) < 3 || line[1] != ' ' {
		return 0, 0, &ParseError{Line: line, Reason: "not a status line"}
	}

	v, perr := strconv.ParseUint(line[2:], 16, 32)
	if perr != nil {
		return 0, 0, &ParseError{Line: line, Reason: "bad hex value"}
	}

	return line[0], uint32(v), nil
}
