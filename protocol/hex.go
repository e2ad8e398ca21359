package protocol

// AppendHex appends val in lowercase hexadecimal to dst and returns the
// extended slice. Leading zero digits are suppressed until either a nonzero
// digit has been emitted or fewer than width digits remain, so width is the
// minimum number of digits produced: width 1 renders the shortest form,
// width 8 renders the full zero-padded word.
func AppendHex(dst []byte, val uint32, width int) []byte {
	started := false
	for digit := 7; digit >= 0; digit-- {
		part := byte(val >> 28)
		val <<= 4

		if started || part != 0 || digit < width {
			dst = append(dst, hexDigit(part))
			started = true
		}
	}
	return dst
}

func hexDigit(v byte) byte {
	if v < 10 {
		return '0' + v
	}
	return 'a' + v - 10
}

// DigitValue returns the value of a hexadecimal digit character. Both cases
// are accepted. ok is false for non-digit characters.
func DigitValue(c byte) (v byte, ok bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return 10 + c - 'a', true
	case c >= 'A' && c <= 'F':
		return 10 + c - 'A', true
	}
	return 0, false
}

// IsSpace reports whether c is protocol whitespace: space, tab, CR or LF.
func IsSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
