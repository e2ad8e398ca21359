package host

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/riskysoc/go-riskyboot/monitor"
	"github.com/riskysoc/go-riskyboot/protocol"
	"github.com/riskysoc/go-riskyboot/target"
)

// startDevice runs a real monitor over a simulated UART and returns a client
// connected to its host side. The device clock is frozen so the auto-boot
// grace period never elapses; the monitor goroutine is shut down by the test
// cleanup.
func startDevice(t *testing.T, opts ...Option) (*Client, *target.Memory) {
	t.Helper()

	uart := target.NewUART()
	uart.IdleWait = 50 * time.Microsecond
	mem := target.NewMemory()
	mon := monitor.New(uart, mem, target.NewManualClock(0), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		mon.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	client := New(uart.HostIO(), opts...)

	// the monitor announces itself on startup; consume the banner so it is
	// not mistaken for a response
	banner, err := client.readLine()
	if err != nil {
		t.Fatalf("read startup banner: %v", err)
	}
	if banner != protocol.Banner {
		t.Fatalf("startup banner = %q, want %q", banner, protocol.Banner)
	}

	return client, mem
}

func TestClientInfo(t *testing.T) {
	client, _ := startDevice(t)

	info, err := client.Info(context.Background())
	if err != nil {
		t.Fatalf("Info: %v", err)
	}

	if info.Banner != "risky-b1" {
		t.Errorf("Banner = %q, want %q", info.Banner, "risky-b1")
	}
	if info.BufferSize != 0x400 {
		t.Errorf("BufferSize = %#x, want 0x400", info.BufferSize)
	}
	if info.BootAddr != 0x10000000 {
		t.Errorf("BootAddr = %#x, want 0x10000000", info.BootAddr)
	}
	if info.Version != 1 {
		t.Errorf("Version = %d, want 1", info.Version)
	}
}

func TestClientToggleEcho(t *testing.T) {
	client, _ := startDevice(t)
	ctx := context.Background()

	on, err := client.ToggleEcho(ctx)
	if err != nil {
		t.Fatalf("ToggleEcho: %v", err)
	}
	if !on {
		t.Fatal("first toggle reported echo off")
	}

	// with echo on, the device repeats every command line; Info still
	// works because the client strips the echoes
	if _, err := client.Info(ctx); err != nil {
		t.Fatalf("Info with echo on: %v", err)
	}

	on, err = client.ToggleEcho(ctx)
	if err != nil {
		t.Fatalf("ToggleEcho: %v", err)
	}
	if on {
		t.Fatal("second toggle reported echo on")
	}
}

func TestClientDump(t *testing.T) {
	client, mem := startDevice(t)

	want := make([]byte, 40)
	for i := range want {
		want[i] = byte(i * 3)
	}
	mem.LoadBytes(0x1000, want)

	got, err := client.Dump(context.Background(), 0x1000, 0x1000+uint32(len(want)))
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Dump = %x, want %x", got, want)
	}
}

func TestClientDumpEmptyRange(t *testing.T) {
	client, _ := startDevice(t)

	if _, err := client.Dump(context.Background(), 0x1000, 0xfff); err == nil {
		t.Error("reversed range accepted")
	}
}

func TestClientCopy(t *testing.T) {
	client, mem := startDevice(t)
	ctx := context.Background()

	src := []byte("hello, risky")
	mem.LoadBytes(0x1000, src)

	n, err := client.Copy(ctx, 0x1000, 0x1000+uint32(len(src)), 0x2000)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if n != uint32(len(src)) {
		t.Errorf("Copy moved %d bytes, want %d", n, len(src))
	}
	if got := mem.Bytes(0x2000, len(src)); !bytes.Equal(got, src) {
		t.Errorf("dest = %q, want %q", got, src)
	}
}

func TestClientPatch(t *testing.T) {
	client, mem := startDevice(t)

	data := []byte{0x41, 0x42, 0x43}
	n, err := client.Patch(context.Background(), 0x4000, data)
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if n != 3 {
		t.Errorf("Patch wrote %d bytes, want 3", n)
	}
	if got := mem.Bytes(0x4000, 3); !bytes.Equal(got, data) {
		t.Errorf("mem = %x, want %x", got, data)
	}
}

func TestClientPatchTooLarge(t *testing.T) {
	client, _ := startDevice(t)

	if _, err := client.Patch(context.Background(), 0, make([]byte, maxPatchChunk+1)); err == nil {
		t.Error("oversized patch accepted")
	}
}

func TestClientLoadImage(t *testing.T) {
	var phases []string
	var lastPct float64
	client, mem := startDevice(t,
		WithChunkSize(16),
		WithProgressCallback(func(p Progress) {
			if len(phases) == 0 || phases[len(phases)-1] != p.Phase {
				phases = append(phases, p.Phase)
			}
			lastPct = p.Percentage
		}),
	)

	image := make([]byte, 100)
	for i := range image {
		image[i] = byte(i ^ 0x5a)
	}

	if err := client.LoadImage(context.Background(), 0x10000000, image); err != nil {
		t.Fatalf("LoadImage: %v", err)
	}

	if got := mem.Bytes(0x10000000, len(image)); !bytes.Equal(got, image) {
		t.Error("image not written to target memory")
	}

	wantPhases := []string{PhaseWriting, PhaseVerifying, PhaseComplete}
	if len(phases) != len(wantPhases) {
		t.Fatalf("phases = %v, want %v", phases, wantPhases)
	}
	for i := range phases {
		if phases[i] != wantPhases[i] {
			t.Fatalf("phases = %v, want %v", phases, wantPhases)
		}
	}
	if lastPct != 100 {
		t.Errorf("final percentage = %v, want 100", lastPct)
	}
}

func TestClientLoadImageNoVerify(t *testing.T) {
	var phases []string
	client, mem := startDevice(t,
		WithVerify(false),
		WithProgressCallback(func(p Progress) {
			if len(phases) == 0 || phases[len(phases)-1] != p.Phase {
				phases = append(phases, p.Phase)
			}
		}),
	)

	image := []byte("no read-back")
	if err := client.LoadImage(context.Background(), 0x3000, image); err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if got := mem.Bytes(0x3000, len(image)); !bytes.Equal(got, image) {
		t.Error("image not written to target memory")
	}

	for _, phase := range phases {
		if phase == PhaseVerifying {
			t.Error("verify phase reported with verification disabled")
		}
	}
}

func TestClientBoot(t *testing.T) {
	uart := target.NewUART()
	uart.IdleWait = 50 * time.Microsecond

	var bootedTo []uint32
	mon := monitor.New(uart, target.NewMemory(), target.NewManualClock(0), func(addr uint32) {
		bootedTo = append(bootedTo, addr)
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		mon.Run(context.Background())
	}()

	client := New(uart.HostIO())
	if _, err := client.readLine(); err != nil {
		t.Fatalf("read startup banner: %v", err)
	}

	addr, err := client.Boot(context.Background(), 0x10000000)
	if err != nil {
		t.Fatalf("Boot: %v", err)
	}
	if addr != 0x10000000 {
		t.Errorf("Boot acknowledged %#x, want 0x10000000", addr)
	}

	// the device acknowledges before jumping, then Run finishes
	<-done
	if len(bootedTo) != 1 || bootedTo[0] != 0x10000000 {
		t.Errorf("boot calls = %#x, want one call to 0x10000000", bootedTo)
	}
}

func TestClientBootDefault(t *testing.T) {
	client, _ := startDevice(t)

	addr, err := client.BootDefault(context.Background())
	if err != nil {
		t.Fatalf("BootDefault: %v", err)
	}
	if addr != protocol.DefaultBootAddr {
		t.Errorf("BootDefault acknowledged %#x, want %#x", addr, protocol.DefaultBootAddr)
	}
}

func TestClientCancelledContext(t *testing.T) {
	client, _ := startDevice(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Info(ctx); err == nil {
		t.Error("Info on cancelled context succeeded")
	}
	if _, err := client.Dump(ctx, 0, 0x10); err == nil {
		t.Error("Dump on cancelled context succeeded")
	}
	if err := client.LoadImage(ctx, 0, []byte{1}); err == nil {
		t.Error("LoadImage on cancelled context succeeded")
	}
}

func TestNewPanicsOnNilDevice(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	New(nil)
}
