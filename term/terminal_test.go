package term_test

import (
	"net"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"isa16/term"
)

var _ = Describe("Terminal", func() {
	var tm *term.Terminal

	BeforeEach(func() {
		tm = term.NewTerminal("127.0.0.1:0")
		go tm.Run()
	})

	dial := func() net.Conn {
		var addr net.Addr
		Eventually(tm.Ready(), time.Second).Should(Receive(&addr))
		conn, err := net.Dial("tcp", addr.String())
		Expect(err).NotTo(HaveOccurred())
		return conn
	}

	It("should send the telnet preamble on connect", func() {
		conn := dial()
		defer conn.Close()

		buf := make([]byte, 6)
		_, err := conn.Read(buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(buf).To(Equal([]byte{0xFF, 0xFD, 0x03, 0xFF, 0xFE, 0x01}))
	})

	It("should relay a byte written to Out to the socket", func() {
		conn := dial()
		defer conn.Close()

		preamble := make([]byte, 6)
		_, err := conn.Read(preamble)
		Expect(err).NotTo(HaveOccurred())

		tm.Out.Enqueue(0x42)

		buf := make([]byte, 1)
		_, err = conn.Read(buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(buf[0]).To(Equal(byte(0x42)))
	})

	It("should enqueue a byte read from the socket onto In", func() {
		conn := dial()
		defer conn.Close()

		preamble := make([]byte, 6)
		_, err := conn.Read(preamble)
		Expect(err).NotTo(HaveOccurred())

		_, err = conn.Write([]byte{0x7A})
		Expect(err).NotTo(HaveOccurred())

		Eventually(func() uint16 { return tm.In.Dequeue() }, time.Second).Should(Equal(uint16(0x7A)))
	})
})
