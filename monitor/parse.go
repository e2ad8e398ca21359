package monitor

import "github.com/riskysoc/go-riskyboot/protocol"

// Command is one tokenized command line. It is produced fresh for each
// completed line and consumed immediately; nothing retains it.
type Command struct {
	// Char is the command character, 0 for an empty line
	Char byte

	// Argc counts the command character plus parsed hex arguments (1-4);
	// 0 for an empty line
	Argc int

	// Arg1, Arg2, Arg3 are the parsed arguments; unparsed slots are 0
	Arg1 uint32
	Arg2 uint32
	Arg3 uint32

	// End is true when parsing consumed the whole line: no trailing
	// garbage after the arguments
	End bool

	// tail is the unconsumed input after the parsed arguments; the patch
	// command continues scanning hex bytes from here
	tail []byte
}

// ParseCommand tokenizes a completed line. The first character is the
// command character; parsing then skips whitespace and reads up to three
// hexadecimal arguments. Parsing stops at the first non-hex token, which
// remains in the tail and clears End.
func ParseCommand(line []byte) Command {
	if len(line) == 0 {
		return Command{}
	}

	cmd := Command{Char: line[0], Argc: 1}
	pos := skipSpace(line, 1)

	args := [protocol.MaxArgs]*uint32{&cmd.Arg1, &cmd.Arg2, &cmd.Arg3}
	for _, arg := range args {
		val, next, found := parseHex(line, pos)
		if !found {
			break
		}
		*arg = val
		cmd.Argc++
		pos = next
	}

	cmd.End = pos >= len(line)
	cmd.tail = line[pos:]
	return cmd
}

// parseHex reads one hexadecimal integer at pos, then skips trailing
// whitespace. Digits accumulate by shift-and-or, so values wider than 32
// bits silently wrap. found is false (and val 0) when pos is not on a hex
// digit; pos is then unchanged except for the whitespace skip.
func parseHex(line []byte, pos int) (val uint32, next int, found bool) {
	next = pos
	for next < len(line) {
		d, ok := protocol.DigitValue(line[next])
		if !ok {
			break
		}
		val = val<<4 | uint32(d)
		found = true
		next++
	}

	next = skipSpace(line, next)
	return val, next, found
}

func skipSpace(line []byte, pos int) int {
	for pos < len(line) && protocol.IsSpace(line[pos]) {
		pos++
	}
	return pos
}
