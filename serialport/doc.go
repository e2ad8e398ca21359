// Package serialport opens and enumerates real UARTs for talking to (or
// standing in for) a risky device.
//
// # Host Side
//
// Open a port and hand it to the host client:
//
//	port, err := serialport.Open("/dev/ttyUSB0", 115200)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	client := host.New(port)
//
// Detect scans for a plausible USB serial device when no port name is
// given.
//
// # Device Side
//
// Wrap adapts any io.ReadWriter to the monitor's polled Port contract, so
// the monitor core can run over a real serial line, a pty, or an in-memory
// pipe:
//
//	mon := monitor.New(serialport.Wrap(port), mem, clk, boot)
package serialport
