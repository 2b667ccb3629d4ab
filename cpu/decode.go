package cpu

// decode splits an instruction word into its opcode byte and the two 4-bit
// register-index fields, plus the overlapping immediate views used by the
// immediate-family opcodes: ims is the 4-bit immediate sharing the src
// nibble; imh is an 8-bit immediate formed from the opcode's own low nibble
// (the part that selects among LSI/LUI/INP/OUT's 16 variants) over src,
// used by those four opcodes; iml is the full low byte (src<<4|dst) read as
// an 8-bit immediate, used by JMPO and its conditional variants.
func decode(iw uint16) (opcode, src, dst, ims, imh, iml uint8) {
	opcode = uint8(iw >> 8)
	src = uint8((iw >> 4) & 0xF)
	dst = uint8(iw & 0xF)
	ims = src
	imh = uint8((iw >> 4) & 0xFF)
	iml = uint8(iw & 0xFF)
	return
}

// doubleWord is the canonical bitmap of which opcodes (0-255) consume an
// extended immediate word in addition to the instruction word itself. Bit
// k of group g corresponds to opcode 32*g+k.
var doubleWord = [8]uint32{
	0x00004000,
	0x00000000,
	0xAAAAC00C,
	0xA0000000,
	0x00000000,
	0x00000000,
	0xFFFF0000,
	0x0000F0F0,
}

// IsDoubleWord reports whether opcode consumes an extended immediate word.
func IsDoubleWord(opcode uint8) bool {
	group := opcode / 32
	bit := opcode % 32
	return doubleWord[group]&(1<<bit) != 0
}
