// Package monitor implements the device-side boot monitor of the risky SoC.
//
// # Overview
//
// The monitor is the program a freshly reset device runs: it owns the UART,
// accepts line-framed commands that inspect and modify memory, and transfers
// control to a loaded program either on request or after a startup grace
// period with no operator interaction.
//
// The processing pipeline is:
//   - LineReader accumulates received bytes into a command buffer, handling
//     echo, leading-whitespace skip and overrun
//   - ParseCommand tokenizes a completed line into a command character and
//     up to three hex arguments
//   - the interpreter dispatches on the command character, checks argument
//     preconditions, executes the memory or control operation and reports a
//     status line
//   - Run drives the whole loop with the auto-boot timeout policy
//
// # Hardware Independence
//
// The monitor does NOT talk to hardware directly. Callers inject the four
// capabilities it needs:
//   - Port: byte-level UART with readiness polling
//   - Memory: raw byte-addressed access to the target address space
//   - Clock: the split 64-bit cycle counter
//   - BootFunc: transfer of control to an entry address
//
// This allows the same core to run against real memory-mapped hardware, a
// simulated target (package target), or test doubles.
//
// # Basic Usage
//
//	mem := target.NewMemory()
//	clk := target.NewWallClock(protocol.DefaultClockHz)
//	uart := target.NewUART()
//
//	mon := monitor.New(uart, mem, clk, nil,
//	    monitor.WithBootAddr(protocol.RAMBase),
//	)
//
//	addr, err := mon.Run(context.Background())
//
// Run returns when control has been transferred (the boot address is
// returned) or the context is cancelled.
//
// # Trust Model
//
// The protocol grants full, unchecked access to the target address space:
// any command may read or write ROM, RAM or memory-mapped I/O, including the
// monitor's own buffer. There is no address validation and no authentication.
// This is the intended bring-up model, not an oversight.
package monitor
