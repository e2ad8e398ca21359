package host

import "fmt"

// StatusMismatchError indicates the device acknowledged an operation with an
// unexpected status value.
type StatusMismatchError struct {
	Op   string
	Want uint32
	Got  uint32
}

func (e *StatusMismatchError) Error() string {
	return fmt.Sprintf("%s: device reported status %#x, expected %#x", e.Op, e.Got, e.Want)
}

// UnexpectedResponseError indicates a response line that does not belong to
// the operation in flight.
type UnexpectedResponseError struct {
	Op   string
	Line string
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("%s: unexpected response line %q", e.Op, e.Line)
}

// VerifyError indicates a read-back after an image load did not match the
// written data.
type VerifyError struct {
	Addr uint32
	Want byte
	Got  byte
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("verify failed at %#08x: wrote 0x%02x, read back 0x%02x", e.Addr, e.Want, e.Got)
}
