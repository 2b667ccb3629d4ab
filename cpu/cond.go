package cpu

// evalCond evaluates the 3-bit condition code packed in the low bits of an
// opcode against the current ST flags.
func (c *CPUState) evalCond(opcode uint8) bool {
	z := c.ST&(1<<stZ) != 0
	cf := c.ST&(1<<stC) != 0
	v := c.ST&(1<<stV) != 0
	n := c.ST&(1<<stN) != 0
	switch opcode & 7 {
	case 0:
		return cf
	case 1:
		return v
	case 2:
		return z
	case 3:
		return !z
	case 4:
		return !cf
	case 5:
		return !cf || z
	case 6:
		return (n != v) || z
	default: // 7
		return false
	}
}

// evalProp evaluates the 3-bit proposition code packed in the low bits of
// an opcode against a tested register value v and RF.
func (c *CPUState) evalProp(opcode uint8, v uint16) bool {
	switch opcode & 7 {
	case 0:
		return v == 0
	case 1:
		return v == c.RF
	case 2:
		return v&0x8000 != 0
	case 3:
		return v&1 != 0
	case 4:
		return v != 0
	case 5:
		return v != c.RF
	case 6:
		return v&0x8000 == 0
	default: // 7
		return v&1 == 0
	}
}
