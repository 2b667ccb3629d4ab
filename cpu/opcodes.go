package cpu

import "fmt"

// An Opcode associates a mnemonic with its execution handler. Exec
// receives the full instruction word; handlers that need an extended
// immediate call c.FetchImm() themselves, exactly once.
type Opcode struct {
	Name string
	Exec func(c *CPUState, iw uint16)
}

// opcodeTable maps each defined opcode byte (0-255) to its Opcode. Holes
// are opcodes with no defined behavior; Step reports ErrUnknownOpcode for
// them when fetched live, but they are harmless to skip.
var opcodeTable = map[uint8]Opcode{}

func register(op uint8, name string, exec func(c *CPUState, iw uint16)) {
	if _, exists := opcodeTable[op]; exists {
		panic(fmt.Sprintf("cpu: opcode %d registered twice", op))
	}
	opcodeTable[op] = Opcode{Name: name, Exec: exec}
}

// registerRange registers the same handler and mnemonic for every opcode
// in [lo,hi], used for the condition/proposition families whose 8 or 16
// variants differ only in bits folded into the opcode byte itself, which
// the handler recovers by re-decoding iw.
func registerRange(lo, hi uint8, name string, exec func(c *CPUState, iw uint16)) {
	for op := int(lo); op <= int(hi); op++ {
		register(uint8(op), name, exec)
	}
}

func init() {
	register(0, "SIG", (*CPUState).sig)
	register(1, "MOVXX", (*CPUState).movxx)
	register(2, "MOVYX", (*CPUState).movyx)
	register(3, "MOVXY", (*CPUState).movxy)
	register(4, "MOVYY", (*CPUState).movyy)
	register(5, "LST", (*CPUState).lst)
	register(6, "SST", (*CPUState).sst)
	register(7, "LRF", (*CPUState).lrf)
	register(8, "SRF", (*CPUState).srf)
	register(9, "LJP", (*CPUState).ljp)
	register(10, "SJP", (*CPUState).sjp)
	register(11, "LIP", (*CPUState).lip)
	register(12, "SIP", (*CPUState).sip)
	register(13, "JMPO", (*CPUState).jmpo)
	register(14, "JNL", (*CPUState).jnl)

	register(15, "PRDR", (*CPUState).prdr)
	registerRange(16, 23, "PRDC", (*CPUState).prdc)
	registerRange(24, 31, "PRDP", (*CPUState).prdp)
	registerRange(32, 39, "RBCC", (*CPUState).rbcc)
	registerRange(40, 47, "RBCP", (*CPUState).rbcp)
	registerRange(48, 55, "RBDC", (*CPUState).rbdc)
	registerRange(56, 63, "RBDP", (*CPUState).rbdp)

	register(64, "ADDRX", (*CPUState).addrx)
	register(65, "ADDRY", (*CPUState).addry)
	register(66, "ADDIX", (*CPUState).addix)
	register(67, "ADDIY", (*CPUState).addiy)
	register(68, "ADDSX", (*CPUState).addsx)
	register(69, "ADDSY", (*CPUState).addsy)
	register(70, "ADDC", (*CPUState).addc)
	register(71, "SUBRX", (*CPUState).subrx)
	register(72, "SUBRY", (*CPUState).subry)
	register(73, "SUBSX", (*CPUState).subsx)
	register(74, "SUBSY", (*CPUState).subsy)
	register(75, "SUBC", (*CPUState).subc)
	register(76, "CMPX", (*CPUState).cmpx)
	register(77, "CMPY", (*CPUState).cmpy)

	register(78, "PEN", (*CPUState).pen)
	register(79, "PEB", (*CPUState).peb)

	register(80, "MULR", (*CPUState).mulr)
	register(81, "MULI", (*CPUState).muli)
	register(82, "UMLR", (*CPUState).umlr)
	register(83, "UMLI", (*CPUState).umli)
	register(84, "SMLR", (*CPUState).smlr)
	register(85, "SMLI", (*CPUState).smli)

	register(86, "ANDR", (*CPUState).andr)
	register(87, "ANDI", (*CPUState).andi)
	register(88, "NNDR", (*CPUState).nndr)
	register(89, "NNDI", (*CPUState).nndi)
	register(90, "IORR", (*CPUState).iorr)
	register(91, "IORI", (*CPUState).iori)
	register(92, "NORR", (*CPUState).norr)
	register(93, "NORI", (*CPUState).nori)
	register(94, "XORR", (*CPUState).xorr)
	register(95, "XORI", (*CPUState).xori)

	register(96, "BXTR", (*CPUState).bxtr)
	register(97, "BXTS", (*CPUState).bxts)
	register(98, "BDPR", (*CPUState).bdpr)
	register(99, "BDPS", (*CPUState).bdps)
	register(100, "BNGR", (*CPUState).bngr)
	register(101, "BNGS", (*CPUState).bngs)
	register(102, "RXTR", (*CPUState).rxtr)
	register(103, "RXTS", (*CPUState).rxts)
	register(104, "RDPR", (*CPUState).rdpr)
	register(105, "RDPS", (*CPUState).rdps)
	register(106, "RBRR", (*CPUState).rbrr)
	register(107, "RBRS", (*CPUState).rbrs)

	register(108, "ASR", (*CPUState).asr)
	register(110, "ABRR", (*CPUState).abrr)
	register(111, "ABRS", (*CPUState).abrs)
	register(112, "LSR", (*CPUState).lsr)
	register(113, "LCR", (*CPUState).lcr)
	register(114, "LBRR", (*CPUState).lbrr)
	register(115, "LBRS", (*CPUState).lbrs)
	register(116, "LSL", (*CPUState).lsl)
	register(117, "LCL", (*CPUState).lcl)
	register(118, "LBLR", (*CPUState).lblr)
	register(119, "LBLS", (*CPUState).lbls)

	register(120, "RBM", (*CPUState).rbm)
	register(121, "RBN", (*CPUState).rbn)
	register(122, "RBC", (*CPUState).rbc)
	register(123, "RBD", (*CPUState).rbd)

	register(124, "LDRX", (*CPUState).ldrx)
	register(125, "LDIX", (*CPUState).ldix)
	register(126, "STRX", (*CPUState).strx)
	register(127, "STIX", (*CPUState).stix)

	registerRange(128, 143, "LSI", (*CPUState).lsi)
	registerRange(144, 159, "LUI", (*CPUState).lui)
	registerRange(160, 175, "INP", (*CPUState).inp)
	registerRange(176, 191, "OUT", (*CPUState).out)

	registerRange(192, 199, "BRCR", (*CPUState).brcr)
	registerRange(200, 207, "BRPR", (*CPUState).brpr)
	registerRange(208, 215, "BRCI", (*CPUState).brci)
	registerRange(216, 223, "BRPI", (*CPUState).brpi)

	registerRange(224, 239, "YMEM", (*CPUState).yIndexedLoadStore)

	registerRange(240, 247, "JMPOC", (*CPUState).condJmpo)
}
