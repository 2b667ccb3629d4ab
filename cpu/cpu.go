// Package cpu implements the interpreter for the 16-bit instruction set
// architecture: the two register files, the four special registers, the
// skip latch, and the fetch/decode/execute loop itself.
package cpu

import (
	"fmt"

	"isa16/mem"
)

// Bit positions of the flags packed into ST.
const (
	stHalt = 0
	stZ    = 12
	stC    = 13
	stV    = 14
	stN    = 15
)

// CPUState holds all architectural state reachable by a running program:
// the primary (X) and secondary (Y) register files, the four special
// registers (IP, JP, RF, ST), and the skip latch. Memory and I/O are owned
// by the driver and referenced here so opcode handlers can dereference and
// mutate them directly.
type CPUState struct {
	X [16]uint16 // primary register file; X[0] always reads as 0 between instructions
	Y [16]uint16 // secondary register file

	IP uint16 // instruction pointer
	JP uint16 // jump-target register
	RF uint16 // predicate/result register
	ST uint16 // status register: bit0 halt, bits12-15 Z/C/V/N

	skip bool

	Mem *mem.Memory
	IO  *mem.IOBus
}

// NewCPUState returns a CPUState with all registers zeroed, wired to the
// given memory and I/O bus.
func NewCPUState(m *mem.Memory, io *mem.IOBus) *CPUState {
	return &CPUState{Mem: m, IO: io}
}

// Halted reports whether the halt bit (bit 0) of ST is set.
func (c *CPUState) Halted() bool {
	return c.ST&(1<<stHalt) != 0
}

// fetch reads the word at IP and advances IP by one.
func (c *CPUState) fetch() uint16 {
	w := c.Mem.Read(int(c.IP))
	c.IP++
	return w
}

// FetchImm reads the extended immediate word at IP and advances IP by one.
// Double-word opcode handlers call this exactly once, after decoding the
// instruction word itself.
func (c *CPUState) FetchImm() uint16 {
	return c.fetch()
}

// Step executes exactly one architectural step. If the skip latch is set,
// the fetched instruction (and its extended immediate, if the opcode is
// double-word) is discarded and the latch is cleared. Otherwise the opcode
// is dispatched and, on return, X[0] is forced back to zero.
func (c *CPUState) Step() error {
	iw := c.fetch()
	opcode := uint8(iw >> 8)

	if c.skip {
		if IsDoubleWord(opcode) {
			c.IP++
		}
		c.skip = false
		return nil
	}

	op, ok := opcodeTable[opcode]
	if !ok {
		return fmt.Errorf("%w: opcode %d (instruction word %#04x)", ErrUnknownOpcode, opcode, iw)
	}
	op.Exec(c, iw)
	c.X[0] = 0
	return nil
}

// String renders a compact dump of the CPU's architectural state.
func (c *CPUState) String() string {
	return fmt.Sprintf(
		"{IP:%#04x JP:%#04x RF:%#04x ST:%#04x skip:%v X:%v Y:%v}",
		c.IP, c.JP, c.RF, c.ST, c.skip, c.X, c.Y,
	)
}
