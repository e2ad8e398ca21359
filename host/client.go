package host

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/riskysoc/go-riskyboot/protocol"
)

// Client drives a risky boot monitor over any io.ReadWriter.
//
// Client is not safe for concurrent use; the protocol itself is strictly
// request/response over a single line.
type Client struct {
	device io.ReadWriter
	br     *bufio.Reader
	config Config

	// echoOn mirrors the device's echo flag so echoed command lines can
	// be discarded from the response stream
	echoOn bool
}

// Info is the device identification reported by the info command.
type Info struct {
	// Banner is the monitor's identification line
	Banner string

	// BufferSize is the device's command buffer capacity
	BufferSize uint32

	// BootAddr is the device's default boot address
	BootAddr uint32

	// Version is the monitor protocol version
	Version uint32
}

// New creates a client over the given device.
func New(device io.ReadWriter, opts ...Option) *Client {
	if device == nil {
		panic("device cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Client{
		device: device,
		br:     bufio.NewReader(device),
		config: cfg,
	}
}

// Info queries the device banner, buffer capacity, default boot address and
// protocol version.
func (c *Client) Info(ctx context.Context) (*Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("cancelled: %w", err)
	}

	if err := c.sendLine("i"); err != nil {
		return nil, err
	}

	banner, err := c.readLine()
	if err != nil {
		return nil, fmt.Errorf("read banner: %w", err)
	}

	capacity, err := c.expectStatus("info", protocol.ReportCapacity)
	if err != nil {
		return nil, err
	}
	bootAddr, err := c.expectStatus("info", protocol.ReportBootAddr)
	if err != nil {
		return nil, err
	}
	version, err := c.expectStatus("info", protocol.CmdInfo)
	if err != nil {
		return nil, err
	}

	c.logDebug("device info",
		"banner", banner,
		"buffer_size", capacity,
		"boot_addr", fmt.Sprintf("%#08x", bootAddr),
		"version", version,
	)

	return &Info{
		Banner:     banner,
		BufferSize: capacity,
		BootAddr:   bootAddr,
		Version:    version,
	}, nil
}

// ToggleEcho flips the device's keystroke echo and returns the new state.
// The client tracks the state so echoed command lines are stripped from
// subsequent responses.
func (c *Client) ToggleEcho(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("cancelled: %w", err)
	}

	if err := c.sendLine("e"); err != nil {
		return false, err
	}

	val, err := c.expectStatus("toggle echo", protocol.CmdEcho)
	if err != nil {
		return false, err
	}

	c.echoOn = val != 0
	return c.echoOn, nil
}

// Dump reads target memory [start, end) via the memory-read command and
// returns the bytes parsed from the hex table.
func (c *Client) Dump(ctx context.Context, start, end uint32) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("cancelled: %w", err)
	}
	if end < start {
		return nil, fmt.Errorf("dump: end %#x below start %#x", end, start)
	}

	if err := c.sendLine(fmt.Sprintf("m %x %x", start, end)); err != nil {
		return nil, err
	}

	data := make([]byte, 0, end-start)
	for {
		line, err := c.readLine()
		if err != nil {
			return nil, fmt.Errorf("read dump: %w", err)
		}

		// rows carry an address separator, the closing status line
		// does not
		if !strings.ContainsRune(line, ':') {
			report, val, perr := protocol.ParseStatus(line)
			if perr != nil || report != protocol.CmdRead {
				return nil, &UnexpectedResponseError{Op: "dump", Line: line}
			}
			if val != uint32(len(data)) {
				return nil, &StatusMismatchError{Op: "dump", Want: uint32(len(data)), Got: val}
			}
			return data, nil
		}

		addr, row, perr := protocol.ParseDumpRow(line)
		if perr != nil {
			return nil, perr
		}
		if addr != start+uint32(len(data)) {
			return nil, &UnexpectedResponseError{Op: "dump", Line: line}
		}
		data = append(data, row...)
	}
}

// Copy copies target memory [start, end) to dest and returns the number of
// bytes the device reports moved.
func (c *Client) Copy(ctx context.Context, start, end, dest uint32) (uint32, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("cancelled: %w", err)
	}

	if err := c.sendLine(fmt.Sprintf("c %x %x %x", start, end, dest)); err != nil {
		return 0, err
	}

	return c.expectStatus("copy", protocol.CmdCopy)
}

// Patch writes data to target memory starting at addr using a single patch
// line. The data must fit on one protocol line; LoadImage chunks larger
// images.
func (c *Client) Patch(ctx context.Context, addr uint32, data []byte) (uint32, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("cancelled: %w", err)
	}
	if len(data) > maxPatchChunk {
		return 0, fmt.Errorf("patch: %d bytes does not fit one line (max %d)", len(data), maxPatchChunk)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "p %x", addr)
	for _, b := range data {
		fmt.Fprintf(&sb, " %02x", b)
	}

	if err := c.sendLine(sb.String()); err != nil {
		return 0, err
	}

	n, err := c.expectStatus("patch", protocol.CmdPatch)
	if err != nil {
		return 0, err
	}
	if n != uint32(len(data)) {
		return n, &StatusMismatchError{Op: "patch", Want: uint32(len(data)), Got: n}
	}
	return n, nil
}

// LoadImage writes an image to target memory at addr in chunked patch
// lines, optionally verifying by read-back, with progress reporting.
func (c *Client) LoadImage(ctx context.Context, addr uint32, data []byte) error {
	startTime := time.Now()

	written := 0
	for written < len(data) {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("cancelled: %w", err)
		}

		chunk := data[written:]
		if len(chunk) > c.config.ChunkSize {
			chunk = chunk[:c.config.ChunkSize]
		}

		if _, err := c.Patch(ctx, addr+uint32(written), chunk); err != nil {
			return fmt.Errorf("write chunk at %#08x: %w", addr+uint32(written), err)
		}
		written += len(chunk)

		c.reportProgress(Progress{
			Phase:        PhaseWriting,
			BytesWritten: written,
			TotalBytes:   len(data),
			Percentage:   float64(written) / float64(len(data)) * 90,
			ElapsedTime:  time.Since(startTime),
		})
	}

	if c.config.Verify {
		c.reportProgress(Progress{
			Phase:        PhaseVerifying,
			BytesWritten: written,
			TotalBytes:   len(data),
			Percentage:   90,
			ElapsedTime:  time.Since(startTime),
		})

		readBack, err := c.Dump(ctx, addr, addr+uint32(len(data)))
		if err != nil {
			return fmt.Errorf("verify read-back: %w", err)
		}
		for i := range data {
			if readBack[i] != data[i] {
				return &VerifyError{Addr: addr + uint32(i), Want: data[i], Got: readBack[i]}
			}
		}
	}

	c.reportProgress(Progress{
		Phase:        PhaseComplete,
		BytesWritten: written,
		TotalBytes:   len(data),
		Percentage:   100,
		ElapsedTime:  time.Since(startTime),
	})

	c.logInfo("image loaded",
		"addr", fmt.Sprintf("%#08x", addr),
		"bytes", len(data),
		"elapsed", time.Since(startTime).String(),
	)

	return nil
}

// Boot transfers control to addr. The device acknowledges with the address
// before jumping; nothing useful can be sent after a successful boot.
func (c *Client) Boot(ctx context.Context, addr uint32) (uint32, error) {
	return c.boot(ctx, fmt.Sprintf("b %x", addr))
}

// BootDefault transfers control to the device's default boot address and
// returns the address the device reports jumping to.
func (c *Client) BootDefault(ctx context.Context) (uint32, error) {
	return c.boot(ctx, "b")
}

func (c *Client) boot(ctx context.Context, line string) (uint32, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("cancelled: %w", err)
	}

	if err := c.sendLine(line); err != nil {
		return 0, err
	}

	return c.expectStatus("boot", protocol.CmdBoot)
}

// sendLine transmits one command line, then discards the device's echo of
// it when echo is enabled.
func (c *Client) sendLine(line string) error {
	buf := []byte(line + protocol.Terminator)
	for len(buf) > 0 {
		n, err := c.device.Write(buf)
		if err != nil {
			return fmt.Errorf("write command: %w", err)
		}
		buf = buf[n:]
	}

	if c.echoOn {
		if _, err := c.readLine(); err != nil {
			return fmt.Errorf("read echo: %w", err)
		}
	}

	return nil
}

// readLine reads one terminated response line, terminator stripped.
func (c *Client) readLine() (string, error) {
	line, err := c.br.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Client) expectStatus(op string, report byte) (uint32, error) {
	line, err := c.readLine()
	if err != nil {
		return 0, fmt.Errorf("%s: read status: %w", op, err)
	}

	got, val, perr := protocol.ParseStatus(line)
	if perr != nil || got != report {
		return 0, &UnexpectedResponseError{Op: op, Line: line}
	}
	return val, nil
}

func (c *Client) reportProgress(progress Progress) {
	if c.config.ProgressCallback != nil {
		c.config.ProgressCallback(progress)
	}
}

func (c *Client) logDebug(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Debug(msg, keysAndValues...)
	}
}

func (c *Client) logInfo(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Info(msg, keysAndValues...)
	}
}
