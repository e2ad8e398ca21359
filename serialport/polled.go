package serialport

import (
	"io"
	"sync"
	"time"
)

// PolledPort adapts a blocking io.ReadWriter to the monitor's polled Port
// contract. A reader goroutine drains the underlying stream into a buffered
// channel so RxReady never blocks.
//
// The goroutine exits when the underlying reader returns an error (EOF
// included); Err reports it.
type PolledPort struct {
	rw io.ReadWriter
	rx chan byte

	// PollInterval is slept in RxReady when no byte is waiting, so the
	// monitor's polling loop does not spin a host CPU flat out.
	PollInterval time.Duration

	pending *byte

	mu  sync.Mutex
	err error
}

// Wrap starts the reader goroutine and returns the adapted port.
func Wrap(rw io.ReadWriter) *PolledPort {
	p := &PolledPort{
		rw:           rw,
		rx:           make(chan byte, 4096),
		PollInterval: 500 * time.Microsecond,
	}

	go func() {
		buf := make([]byte, 256)
		for {
			n, err := rw.Read(buf)
			for _, c := range buf[:n] {
				p.rx <- c
			}
			if err != nil {
				p.setErr(err)
				close(p.rx)
				return
			}
		}
	}()

	return p
}

func (p *PolledPort) TxReady() bool { return true }

func (p *PolledPort) TxWrite(c byte) {
	if _, err := p.rw.Write([]byte{c}); err != nil {
		p.setErr(err)
	}
}

func (p *PolledPort) RxReady() bool {
	if p.pending != nil {
		return true
	}

	select {
	case c, ok := <-p.rx:
		if !ok {
			return false
		}
		p.pending = &c
		return true
	default:
	}

	if p.PollInterval > 0 {
		time.Sleep(p.PollInterval)
	}
	return false
}

func (p *PolledPort) RxRead() byte {
	c := *p.pending
	p.pending = nil
	return c
}

// SetBaudDivisor is a no-op: the divisor is a device-side register, and the
// host-side line rate was fixed when the port was opened.
func (p *PolledPort) SetBaudDivisor(div uint32) {}

// Err returns the first I/O error seen by the adapter, if any.
func (p *PolledPort) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *PolledPort) setErr(err error) {
	p.mu.Lock()
	if p.err == nil {
		p.err = err
	}
	p.mu.Unlock()
}
