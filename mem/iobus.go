package mem

import (
	"log"

	"isa16/term"
)

// IOBus routes memory-mapped I/O port accesses to the console sink and the
// remote terminal. Port numbers are taken modulo 256 (only the low byte of
// an INP/OUT immediate is meaningful).
type IOBus struct {
	console  *term.Console
	terminal *term.Terminal
}

// NewIOBus wires an IOBus to the given console and terminal and starts
// their background goroutines: the console drain loop, and, if terminal is
// non-nil, the terminal worker. Either may be nil in tests that never touch
// the corresponding ports.
func NewIOBus(console *term.Console, terminal *term.Terminal) *IOBus {
	if console != nil {
		go console.Run()
	}
	if terminal != nil {
		go func() {
			if err := terminal.Run(); err != nil {
				log.Printf("term: %s", err)
			}
		}()
	}
	return &IOBus{console: console, terminal: terminal}
}

// Read services port 0xFE (single terminal byte) and 0xFF (packed 2-byte
// terminal read). All other ports read as 0.
func (b *IOBus) Read(port uint16) uint16 {
	switch port & 0xFF {
	case 0xFE:
		return b.terminal.In.Dequeue() & 0xFF
	case 0xFF:
		hi := b.terminal.In.Dequeue() & 0xFF
		lo := b.terminal.In.Dequeue() & 0xFF
		return (hi << 8) | lo
	default:
		return 0
	}
}

// Write services port 0x00 (console numeric sink), 0xFE (single terminal
// byte), and 0xFF (packed 2-byte terminal write, second byte elided when
// zero). All other ports are no-ops.
func (b *IOBus) Write(port uint16, val uint16) {
	switch port & 0xFF {
	case 0x00:
		b.console.Write(val)
	case 0xFE:
		b.terminal.Out.Enqueue(val & 0xFF)
	case 0xFF:
		hi := (val >> 8) & 0xFF
		lo := val & 0xFF
		b.terminal.Out.Enqueue(hi)
		if lo != 0 {
			b.terminal.Out.Enqueue(lo)
		}
	}
}
