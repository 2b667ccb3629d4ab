package mem_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"isa16/mem"
)

var _ = Describe("LoadImageReader", func() {
	var m *mem.Memory

	BeforeEach(func() {
		m = mem.NewMemory()
	})

	It("should reject a file missing the v2.0 raw header", func() {
		_, err := mem.LoadImageReader(strings.NewReader("1234\n5678\n"), m)
		Expect(err).To(MatchError(mem.ErrImageFormat))
	})

	It("should tolerate blank lines before the header", func() {
		r := strings.NewReader("\n\nv2.0 raw\n1234\n")
		top, err := mem.LoadImageReader(r, m)
		Expect(err).NotTo(HaveOccurred())
		Expect(top).To(Equal(0))
		Expect(m.Read(0)).To(Equal(uint16(0x1234)))
	})

	It("should load whitespace-separated hex words from address 0", func() {
		r := strings.NewReader("v2.0 raw\n0001 0002 0003\nabcd\n")
		top, err := mem.LoadImageReader(r, m)
		Expect(err).NotTo(HaveOccurred())
		Expect(top).To(Equal(3))
		Expect(m.Read(0)).To(Equal(uint16(1)))
		Expect(m.Read(1)).To(Equal(uint16(2)))
		Expect(m.Read(2)).To(Equal(uint16(3)))
		Expect(m.Read(3)).To(Equal(uint16(0xABCD)))
	})

	It("should substitute 0 for an invalid hex token", func() {
		r := strings.NewReader("v2.0 raw\nzzzz\n")
		_, err := mem.LoadImageReader(r, m)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Read(0)).To(Equal(uint16(0)))
	})

	It("should truncate a token wider than 16 bits", func() {
		r := strings.NewReader("v2.0 raw\n1FFFF\n")
		_, err := mem.LoadImageReader(r, m)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Read(0)).To(Equal(uint16(0xFFFF)))
	})
})
