package mem_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"isa16/mem"
	"isa16/term"
)

var _ = Describe("IOBus", func() {
	var (
		console  *term.Console
		terminal *term.Terminal
		bus      *mem.IOBus
	)

	BeforeEach(func() {
		console = term.NewConsole()
		terminal = term.NewTerminal("127.0.0.1:0")
		bus = mem.NewIOBus(console, terminal)
	})

	It("should read 0 from an unrouted port", func() {
		Expect(bus.Read(0x42)).To(Equal(uint16(0)))
	})

	It("should enqueue console writes without blocking", func() {
		done := make(chan struct{})
		go func() {
			bus.Write(0x00, 123)
			close(done)
		}()
		Eventually(done, time.Second).Should(BeClosed())
	})

	It("should enqueue a single byte written to port 0xFE", func() {
		bus.Write(0xFE, 0xAB)
		Expect(terminal.Out.Dequeue()).To(Equal(uint16(0xAB)))
	})

	It("should round-trip a byte through port 0xFE", func() {
		terminal.In.Enqueue(0x37)
		Expect(bus.Read(0xFE)).To(Equal(uint16(0x37)))
	})

	It("should enqueue both bytes written to port 0xFF", func() {
		bus.Write(0xFF, 0x1234)
		Expect(terminal.Out.Dequeue()).To(Equal(uint16(0x12)))
		Expect(terminal.Out.Dequeue()).To(Equal(uint16(0x34)))
	})

	It("should elide the low byte written to port 0xFF when it is zero", func() {
		bus.Write(0xFF, 0x1200)
		Expect(terminal.Out.Dequeue()).To(Equal(uint16(0x12)))
		Expect(terminal.Out.Len()).To(Equal(0))
	})

	It("should pack two bytes read from port 0xFF", func() {
		terminal.In.Enqueue(0x12)
		terminal.In.Enqueue(0x34)
		Expect(bus.Read(0xFF)).To(Equal(uint16(0x1234)))
	})
})
