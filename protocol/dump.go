package protocol

import (
	"strconv"
	"strings"
)

// AppendDumpRow appends one hex-table row to dst: the 8-digit row address, a
// colon, then each byte as 2-digit hex. Every byte is preceded by a space,
// with an extra space before each 4-byte group and a further extra space
// before each 8-byte group:
//
//	00001000:   41 42 43 44  45 46 47 48   49 4a 4b 4c  4d 4e 4f 50
//
// data holds at most DumpRowBytes values; the final row of a dump may be
// short.
func AppendDumpRow(dst []byte, addr uint32, data []byte) []byte {
	dst = AppendHex(dst, addr, 8)
	dst = append(dst, ':')

	for col, b := range data {
		dst = append(dst, ' ')
		if col&0x3 == 0 {
			dst = append(dst, ' ')
			if col&0x7 == 0 {
				dst = append(dst, ' ')
			}
		}
		dst = AppendHex(dst, uint32(b), 2)
	}

	return append(dst, Terminator...)
}

// ParseDumpRow parses one hex-table row (terminator already stripped) into
// its row address and byte values. Grouping whitespace is ignored.
func ParseDumpRow(line string) (addr uint32, data []byte, err error) {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return 0, nil, &ParseError{Line: line, Reason: "no address separator"}
	}

	a, perr := strconv.ParseUint(line[:colon], 16, 32)
	if perr != nil {
		return 0, nil, &ParseError{Line: line, Reason: "bad row address"}
	}

	fields := strings.Fields(line[colon+1:])
	data = make([]byte, 0, len(fields))
	for _, f := range fields {
		b, perr := strconv.ParseUint(f, 16, 8)
		if perr != nil {
			return 0, nil, &ParseError{Line: line, Reason: "bad byte value " + strconv.Quote(f)}
		}
		data = append(data, byte(b))
	}

	if len(data) > DumpRowBytes {
		return 0, nil, &ParseError{Line: line, Reason: "row longer than " + strconv.Itoa(DumpRowBytes) + " bytes"}
	}

	return uint32(a), data, nil
}
