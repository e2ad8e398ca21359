// Package host provides a programmatic client for the risky boot monitor.
//
// # Overview
//
// The client speaks the monitor's line protocol from the host end of the
// UART: query device information, inspect and modify target memory, load an
// image into RAM and transfer control to it.
//
// # Basic Usage
//
//	port, err := serialport.Open("/dev/ttyUSB0", 115200)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	client := host.New(port)
//
//	info, err := client.Info(ctx)
//	// info.Banner, info.BufferSize, info.BootAddr, info.Version
//
//	err = client.LoadImage(ctx, protocol.RAMBase, image)
//	addr, err := client.Boot(ctx, protocol.RAMBase)
//
// # Progress Tracking
//
// Image loads report progress through a callback:
//
//	client := host.New(port,
//	    host.WithProgressCallback(func(p host.Progress) {
//	        fmt.Printf("[%s] %.1f%%\n", p.Phase, p.Percentage)
//	    }),
//	)
//
// # Silence Is the Error Path
//
// The monitor never answers malformed or unrecognized commands; it simply
// says nothing. The client does not try to out-guess that policy: a missing
// response surfaces as the transport's read error or timeout. Configure a
// read timeout on the underlying device (serial ports support this
// natively) when talking to hardware that may reject input.
//
// # Hardware Independence
//
// The device is any io.ReadWriter: a serial port, the host side of a
// simulated target.UART, or a test double. The client owns no transport.
package host
