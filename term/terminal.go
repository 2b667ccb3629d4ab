package term

import (
	"log"
	"net"
)

// telnetPreamble sends IAC DO suppress-go-ahead and IAC DON'T echo so that a
// plain telnet client drops into raw character mode instead of line mode.
var telnetPreamble = []byte{0xFF, 0xFD, 0x03, 0xFF, 0xFE, 0x01}

// Terminal is the memory-mapped serial endpoint reachable at ports 0xFE and
// 0xFF. Its single worker goroutine blocks on conn.Read indefinitely
// between bytes; there is no deadline or cancellation.
type Terminal struct {
	Addr string
	In   *BlockingQueue[uint16]
	Out  *BlockingQueue[uint16]

	ready chan net.Addr
}

// NewTerminal returns a Terminal that will listen on addr once Run starts.
// addr may be ":0" to bind an ephemeral port; the bound address is then
// available from Ready once Run has called net.Listen.
func NewTerminal(addr string) *Terminal {
	return &Terminal{
		Addr:  addr,
		In:    NewBlockingQueue[uint16](),
		Out:   NewBlockingQueue[uint16](),
		ready: make(chan net.Addr, 1),
	}
}

// Ready yields the bound listen address once Run has started listening.
func (t *Terminal) Ready() <-chan net.Addr {
	return t.ready
}

// Run listens on t.Addr, accepts a single controlling connection, writes
// the telnet preamble, and then relays bytes between the connection and the
// In/Out queues until the connection is closed. It is meant to run on its
// own goroutine for the lifetime of the program.
func (t *Terminal) Run() error {
	nl, err := net.Listen("tcp", t.Addr)
	if err != nil {
		return err
	}
	t.ready <- nl.Addr()
	log.Printf("term: waiting for terminal to attach on %s/tcp...", nl.Addr())
	conn, err := nl.Accept()
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.Write(telnetPreamble); err != nil {
		return err
	}

	buf := make([]byte, 1)
	for {
		for t.Out.Len() > 0 {
			v := t.Out.Dequeue()
			buf[0] = byte(v)
			if _, err := conn.Write(buf); err != nil {
				return err
			}
		}
		n, err := conn.Read(buf)
		if err != nil {
			return err
		}
		if n > 0 {
			t.In.Enqueue(uint16(buf[0]))
		}
	}
}
