package cpu

// ops is the 256-entry decode table. Every slot not explicitly assigned one
// of the 56 legal mnemonics below defaults to NOP: an unassigned opcode is
// not an error, it simply does nothing and consumes no operand.
var ops = buildOps()

func buildOps() [256]func(c *CPU) {
	var t [256]func(c *CPU)
	for i := range t {
		t[i] = NOP
	}

	t[0x00] = BRK
	t[0x69], t[0x65], t[0x75], t[0x6D], t[0x7D], t[0x79], t[0x61], t[0x71] =
		ADCimm, ADCzp, ADCzpx, ADCabs, ADCabx, ADCaby, ADCizx, ADCizy
	t[0x29], t[0x25], t[0x35], t[0x2D], t[0x3D], t[0x39], t[0x21], t[0x31] =
		ANDimm, ANDzp, ANDzpx, ANDabs, ANDabx, ANDaby, ANDizx, ANDizy
	t[0x0A], t[0x06], t[0x16], t[0x0E], t[0x1E] = ASLacc, ASLzp, ASLzpx, ASLabs, ASLabx
	t[0x90], t[0xB0], t[0xF0], t[0x30], t[0xD0], t[0x10], t[0x50], t[0x70] =
		BCC, BCS, BEQ, BMI, BNE, BPL, BVC, BVS
	t[0x24], t[0x2C] = BITzp, BITabs
	t[0x18], t[0xD8], t[0x58], t[0xB8], t[0x38], t[0xF8], t[0x78] =
		CLC, CLD, CLI, CLV, SEC, SED, SEI
	t[0xC9], t[0xC5], t[0xD5], t[0xCD], t[0xDD], t[0xD9], t[0xC1], t[0xD1] =
		CMPimm, CMPzp, CMPzpx, CMPabs, CMPabx, CMPaby, CMPizx, CMPizy
	t[0xE0], t[0xE4], t[0xEC] = CPXimm, CPXzp, CPXabs
	t[0xC0], t[0xC4], t[0xCC] = CPYimm, CPYzp, CPYabs
	t[0xC6], t[0xD6], t[0xCE], t[0xDE] = DECzp, DECzpx, DECabs, DECabx
	t[0xCA], t[0x88] = DEX, DEY
	t[0x49], t[0x45], t[0x55], t[0x4D], t[0x5D], t[0x59], t[0x41], t[0x51] =
		EORimm, EORzp, EORzpx, EORabs, EORabx, EORaby, EORizx, EORizy
	t[0xE6], t[0xF6], t[0xEE], t[0xFE] = INCzp, INCzpx, INCabs, INCabx
	t[0xE8], t[0xC8] = INX, INY
	t[0x4C], t[0x6C] = JMPabs, JMPind
	t[0x20] = JSR
	t[0xA9], t[0xA5], t[0xB5], t[0xAD], t[0xBD], t[0xB9], t[0xA1], t[0xB1] =
		LDAimm, LDAzp, LDAzpx, LDAabs, LDAabx, LDAaby, LDAizx, LDAizy
	t[0xA2], t[0xA6], t[0xB6], t[0xAE], t[0xBE] = LDXimm, LDXzp, LDXzpy, LDXabs, LDXaby
	t[0xA0], t[0xA4], t[0xB4], t[0xAC], t[0xBC] = LDYimm, LDYzp, LDYzpx, LDYabs, LDYabx
	t[0x4A], t[0x46], t[0x56], t[0x4E], t[0x5E] = LSRacc, LSRzp, LSRzpx, LSRabs, LSRabx
	t[0xEA] = NOP
	t[0x09], t[0x05], t[0x15], t[0x0D], t[0x1D], t[0x19], t[0x01], t[0x11] =
		ORAimm, ORAzp, ORAzpx, ORAabs, ORAabx, ORAaby, ORAizx, ORAizy
	t[0x48], t[0x08], t[0x68], t[0x28] = PHA, PHP, PLA, PLP
	t[0x2A], t[0x26], t[0x36], t[0x2E], t[0x3E] = ROLacc, ROLzp, ROLzpx, ROLabs, ROLabx
	t[0x6A], t[0x66], t[0x76], t[0x6E], t[0x7E] = RORacc, RORzp, RORzpx, RORabs, RORabx
	t[0x40], t[0x60] = RTI, RTS
	t[0xE9], t[0xE5], t[0xF5], t[0xED], t[0xFD], t[0xF9], t[0xE1], t[0xF1] =
		SBCimm, SBCzp, SBCzpx, SBCabs, SBCabx, SBCaby, SBCizx, SBCizy
	t[0x85], t[0x95], t[0x8D], t[0x9D], t[0x99], t[0x81], t[0x91] =
		STAzp, STAzpx, STAabs, STAabx, STAaby, STAizx, STAizy
	t[0x86], t[0x96], t[0x8E] = STXzp, STXzpy, STXabs
	t[0x84], t[0x94], t[0x8C] = STYzp, STYzpx, STYabs
	t[0xAA], t[0xA8], t[0xBA], t[0x8A], t[0x9A], t[0x98] = TAX, TAY, TSX, TXA, TXS, TYA

	return t
}

// legalOpcodes marks the 56 documented mnemonics' assigned bytes, including
// $EA (the official NOP). Every other slot in ops also resolves to NOP, but
// only as the unassigned-opcode fallback spec'd in buildOps, not a real
// instruction — conformance tests must not hold those slots to TomHarte's
// illegal-opcode vectors.
var legalOpcodes = buildLegalOpcodes()

func buildLegalOpcodes() [256]bool {
	var t [256]bool
	for _, op := range []byte{
		0x00,
		0x69, 0x65, 0x75, 0x6D, 0x7D, 0x79, 0x61, 0x71,
		0x29, 0x25, 0x35, 0x2D, 0x3D, 0x39, 0x21, 0x31,
		0x0A, 0x06, 0x16, 0x0E, 0x1E,
		0x90, 0xB0, 0xF0, 0x30, 0xD0, 0x10, 0x50, 0x70,
		0x24, 0x2C,
		0x18, 0xD8, 0x58, 0xB8, 0x38, 0xF8, 0x78,
		0xC9, 0xC5, 0xD5, 0xCD, 0xDD, 0xD9, 0xC1, 0xD1,
		0xE0, 0xE4, 0xEC,
		0xC0, 0xC4, 0xCC,
		0xC6, 0xD6, 0xCE, 0xDE,
		0xCA, 0x88,
		0x49, 0x45, 0x55, 0x4D, 0x5D, 0x59, 0x41, 0x51,
		0xE6, 0xF6, 0xEE, 0xFE,
		0xE8, 0xC8,
		0x4C, 0x6C,
		0x20,
		0xA9, 0xA5, 0xB5, 0xAD, 0xBD, 0xB9, 0xA1, 0xB1,
		0xA2, 0xA6, 0xB6, 0xAE, 0xBE,
		0xA0, 0xA4, 0xB4, 0xAC, 0xBC,
		0x4A, 0x46, 0x56, 0x4E, 0x5E,
		0xEA,
		0x09, 0x05, 0x15, 0x0D, 0x1D, 0x19, 0x01, 0x11,
		0x48, 0x08, 0x68, 0x28,
		0x2A, 0x26, 0x36, 0x2E, 0x3E,
		0x6A, 0x66, 0x76, 0x6E, 0x7E,
		0x40, 0x60,
		0xE9, 0xE5, 0xF5, 0xED, 0xFD, 0xF9, 0xE1, 0xF1,
		0x85, 0x95, 0x8D, 0x9D, 0x99, 0x81, 0x91,
		0x86, 0x96, 0x8E,
		0x84, 0x94, 0x8C,
		0xAA, 0xA8, 0xBA, 0x8A, 0x9A, 0x98,
	} {
		t[op] = true
	}
	return t
}

// NOP covers both the official $EA opcode and every unassigned slot.
func NOP(c *CPU) {
	_ = c.Read8(c.PC + 1)
	c.PC++
}

// BRK sets the break flag and returns, ending Run. The real instruction
// pushes PC and P and loads PC from the IRQ vector; none of that applies
// here since there is no interrupt vector to return through.
func BRK(c *CPU) {
	c.P.setBit(pbitB)
	for i := 0; i < 6; i++ {
		c.tick()
	}
}

func ADCimm(c *CPU) { adc(c, c.imm()); c.PC += 2 }
func ADCzp(c *CPU)  { adc(c, c.Read8(uint16(c.zp()))); c.PC += 2 }
func ADCzpx(c *CPU) { adc(c, c.Read8(uint16(c.zpx()))); c.PC += 2 }
func ADCabs(c *CPU) { adc(c, c.Read8(c.abs())); c.PC += 3 }
func ADCabx(c *CPU) { addr, _ := c.abx(); adc(c, c.Read8(addr)); c.PC += 3 }
func ADCaby(c *CPU) { addr, _ := c.aby(); adc(c, c.Read8(addr)); c.PC += 3 }
func ADCizx(c *CPU) { adc(c, c.Read8(c.izx())); c.PC += 2 }
func ADCizy(c *CPU) {
	addr, crossed := c.izy()
	adc(c, c.Read8(addr))
	if crossed {
		c.tick()
	}
	c.PC += 2
}

func ANDimm(c *CPU) { and(c, c.imm()); c.PC += 2 }
func ANDzp(c *CPU)  { and(c, c.Read8(uint16(c.zp()))); c.PC += 2 }
func ANDzpx(c *CPU) { and(c, c.Read8(uint16(c.zpx()))); c.PC += 2 }
func ANDabs(c *CPU) { and(c, c.Read8(c.abs())); c.PC += 3 }
func ANDabx(c *CPU) { addr, _ := c.abx(); and(c, c.Read8(addr)); c.PC += 3 }
func ANDaby(c *CPU) { addr, _ := c.aby(); and(c, c.Read8(addr)); c.PC += 3 }
func ANDizx(c *CPU) { and(c, c.Read8(c.izx())); c.PC += 2 }
func ANDizy(c *CPU) {
	addr, crossed := c.izy()
	and(c, c.Read8(addr))
	if crossed {
		c.tick()
	}
	c.PC += 2
}

func ASLacc(c *CPU) { asl(c, &c.A); c.PC++ }
func ASLzp(c *CPU) {
	oper := c.zp()
	val := c.Read8(uint16(oper))
	asl(c, &val)
	c.Write8(uint16(oper), val)
	c.PC += 2
}
func ASLzpx(c *CPU) {
	oper := c.zpx()
	val := c.Read8(uint16(oper))
	asl(c, &val)
	c.Write8(uint16(oper), val)
	c.PC += 2
}
func ASLabs(c *CPU) {
	oper := c.abs()
	val := c.Read8(oper)
	asl(c, &val)
	c.Write8(oper, val)
	c.PC += 3
}
func ASLabx(c *CPU) {
	addr, crossed := c.abx()
	if !crossed {
		c.tick()
	}
	val := c.Read8(addr)
	asl(c, &val)
	c.Write8(addr, val)
	c.PC += 3
}

func BCC(c *CPU) { branch(c, !c.P.C()) }
func BCS(c *CPU) { branch(c, c.P.C()) }
func BEQ(c *CPU) { branch(c, c.P.Z()) }
func BMI(c *CPU) { branch(c, c.P.N()) }
func BNE(c *CPU) { branch(c, !c.P.Z()) }
func BPL(c *CPU) { branch(c, !c.P.N()) }
func BVC(c *CPU) { branch(c, !c.P.V()) }
func BVS(c *CPU) { branch(c, c.P.V()) }

func BITzp(c *CPU)  { bit(c, c.Read8(uint16(c.zp()))); c.PC += 2 }
func BITabs(c *CPU) { bit(c, c.Read8(c.abs())); c.PC += 3 }

func CLC(c *CPU) { c.P.clearBit(pbitC); c.tick(); c.PC++ }
func CLD(c *CPU) { c.P.clearBit(pbitD); c.tick(); c.PC++ }
func CLI(c *CPU) { c.P.clearBit(pbitI); c.tick(); c.PC++ }
func CLV(c *CPU) { c.P.clearBit(pbitV); c.tick(); c.PC++ }
func SEC(c *CPU) { c.P.setBit(pbitC); c.tick(); c.PC++ }
func SED(c *CPU) { c.P.setBit(pbitD); c.tick(); c.PC++ }
func SEI(c *CPU) { c.P.setBit(pbitI); c.tick(); c.PC++ }

func CMPimm(c *CPU) { cmp_(c, c.imm()); c.PC += 2 }
func CMPzp(c *CPU)  { cmp_(c, c.Read8(uint16(c.zp()))); c.PC += 2 }
func CMPzpx(c *CPU) { cmp_(c, c.Read8(uint16(c.zpx()))); c.PC += 2 }
func CMPabs(c *CPU) { cmp_(c, c.Read8(c.abs())); c.PC += 3 }
func CMPabx(c *CPU) { addr, _ := c.abx(); cmp_(c, c.Read8(addr)); c.PC += 3 }
func CMPaby(c *CPU) { addr, _ := c.aby(); cmp_(c, c.Read8(addr)); c.PC += 3 }
func CMPizx(c *CPU) { cmp_(c, c.Read8(c.izx())); c.PC += 2 }
func CMPizy(c *CPU) {
	addr, crossed := c.izy()
	cmp_(c, c.Read8(addr))
	if crossed {
		c.tick()
	}
	c.PC += 2
}

func CPXimm(c *CPU) { cpx(c, c.imm()); c.PC += 2 }
func CPXzp(c *CPU)  { cpx(c, c.Read8(uint16(c.zp()))); c.PC += 2 }
func CPXabs(c *CPU) { cpx(c, c.Read8(c.abs())); c.PC += 3 }

func CPYimm(c *CPU) { cpy(c, c.imm()); c.PC += 2 }
func CPYzp(c *CPU)  { cpy(c, c.Read8(uint16(c.zp()))); c.PC += 2 }
func CPYabs(c *CPU) { cpy(c, c.Read8(c.abs())); c.PC += 3 }

func DECzp(c *CPU) {
	oper := c.zp()
	val := c.Read8(uint16(oper))
	dec(c, &val)
	c.Write8(uint16(oper), val)
	c.PC += 2
}
func DECzpx(c *CPU) {
	oper := c.zpx()
	val := c.Read8(uint16(oper))
	dec(c, &val)
	c.Write8(uint16(oper), val)
	c.PC += 2
}
func DECabs(c *CPU) {
	oper := c.abs()
	val := c.Read8(oper)
	dec(c, &val)
	c.Write8(oper, val)
	c.PC += 3
}
func DECabx(c *CPU) {
	addr, crossed := c.abx()
	if !crossed {
		c.tick()
	}
	val := c.Read8(addr)
	dec(c, &val)
	c.Write8(addr, val)
	c.PC += 3
}

func DEX(c *CPU) { dec(c, &c.X); c.PC++ }
func DEY(c *CPU) { dec(c, &c.Y); c.PC++ }

func EORimm(c *CPU) { eor(c, c.imm()); c.PC += 2 }
func EORzp(c *CPU)  { eor(c, c.Read8(uint16(c.zp()))); c.PC += 2 }
func EORzpx(c *CPU) { eor(c, c.Read8(uint16(c.zpx()))); c.PC += 2 }
func EORabs(c *CPU) { eor(c, c.Read8(c.abs())); c.PC += 3 }
func EORabx(c *CPU) { addr, _ := c.abx(); eor(c, c.Read8(addr)); c.PC += 3 }
func EORaby(c *CPU) { addr, _ := c.aby(); eor(c, c.Read8(addr)); c.PC += 3 }
func EORizx(c *CPU) { eor(c, c.Read8(c.izx())); c.PC += 2 }
func EORizy(c *CPU) {
	addr, crossed := c.izy()
	eor(c, c.Read8(addr))
	if crossed {
		c.tick()
	}
	c.PC += 2
}

func INCzp(c *CPU) {
	oper := c.zp()
	val := c.Read8(uint16(oper))
	inc(c, &val)
	c.Write8(uint16(oper), val)
	c.PC += 2
}
func INCzpx(c *CPU) {
	oper := c.zpx()
	val := c.Read8(uint16(oper))
	inc(c, &val)
	c.Write8(uint16(oper), val)
	c.PC += 2
}
func INCabs(c *CPU) {
	oper := c.abs()
	val := c.Read8(oper)
	inc(c, &val)
	c.Write8(oper, val)
	c.PC += 3
}
func INCabx(c *CPU) {
	addr, crossed := c.abx()
	if !crossed {
		c.tick()
	}
	val := c.Read8(addr)
	inc(c, &val)
	c.Write8(addr, val)
	c.PC += 3
}

func INX(c *CPU) { inc(c, &c.X); c.PC++ }
func INY(c *CPU) { inc(c, &c.Y); c.PC++ }

func JMPabs(c *CPU) { c.PC = c.abs() }
func JMPind(c *CPU) { c.PC = c.ind() }

func JSR(c *CPU) {
	oper := c.Read16(c.PC + 1)
	c.tick()
	push16(c, c.PC+2)
	c.PC = oper
}

func LDAimm(c *CPU) { lda(c, c.imm()); c.PC += 2 }
func LDAzp(c *CPU)  { lda(c, c.Read8(uint16(c.zp()))); c.PC += 2 }
func LDAzpx(c *CPU) { lda(c, c.Read8(uint16(c.zpx()))); c.PC += 2 }
func LDAabs(c *CPU) { lda(c, c.Read8(c.abs())); c.PC += 3 }
func LDAabx(c *CPU) { addr, _ := c.abx(); lda(c, c.Read8(addr)); c.PC += 3 }
func LDAaby(c *CPU) { addr, _ := c.aby(); lda(c, c.Read8(addr)); c.PC += 3 }
func LDAizx(c *CPU) { lda(c, c.Read8(c.izx())); c.PC += 2 }
func LDAizy(c *CPU) {
	addr, crossed := c.izy()
	lda(c, c.Read8(addr))
	if crossed {
		c.tick()
	}
	c.PC += 2
}

func LDXimm(c *CPU) { ldx(c, c.imm()); c.PC += 2 }
func LDXzp(c *CPU)  { ldx(c, c.Read8(uint16(c.zp()))); c.PC += 2 }
func LDXzpy(c *CPU) { ldx(c, c.Read8(uint16(c.zpy()))); c.PC += 2 }
func LDXabs(c *CPU) { ldx(c, c.Read8(c.abs())); c.PC += 3 }
func LDXaby(c *CPU) { addr, _ := c.aby(); ldx(c, c.Read8(addr)); c.PC += 3 }

func LDYimm(c *CPU) { ldy(c, c.imm()); c.PC += 2 }
func LDYzp(c *CPU)  { ldy(c, c.Read8(uint16(c.zp()))); c.PC += 2 }
func LDYzpx(c *CPU) { ldy(c, c.Read8(uint16(c.zpx()))); c.PC += 2 }
func LDYabs(c *CPU) { ldy(c, c.Read8(c.abs())); c.PC += 3 }
func LDYabx(c *CPU) { addr, _ := c.abx(); ldy(c, c.Read8(addr)); c.PC += 3 }

func LSRacc(c *CPU) { lsracc(c); c.PC++ }
func LSRzp(c *CPU) {
	oper := c.zp()
	val := c.Read8(uint16(oper))
	lsrmem(c, &val)
	c.Write8(uint16(oper), val)
	c.PC += 2
}
func LSRzpx(c *CPU) {
	oper := c.zpx()
	val := c.Read8(uint16(oper))
	lsrmem(c, &val)
	c.Write8(uint16(oper), val)
	c.PC += 2
}
func LSRabs(c *CPU) {
	oper := c.abs()
	val := c.Read8(oper)
	lsrmem(c, &val)
	c.Write8(oper, val)
	c.PC += 3
}
func LSRabx(c *CPU) {
	addr, crossed := c.abx()
	if !crossed {
		c.tick()
	}
	val := c.Read8(addr)
	lsrmem(c, &val)
	c.Write8(addr, val)
	c.PC += 3
}

func ORAimm(c *CPU) { ora(c, c.imm()); c.PC += 2 }
func ORAzp(c *CPU)  { ora(c, c.Read8(uint16(c.zp()))); c.PC += 2 }
func ORAzpx(c *CPU) { ora(c, c.Read8(uint16(c.zpx()))); c.PC += 2 }
func ORAabs(c *CPU) { ora(c, c.Read8(c.abs())); c.PC += 3 }
func ORAabx(c *CPU) { addr, _ := c.abx(); ora(c, c.Read8(addr)); c.PC += 3 }
func ORAaby(c *CPU) { addr, _ := c.aby(); ora(c, c.Read8(addr)); c.PC += 3 }
func ORAizx(c *CPU) { ora(c, c.Read8(c.izx())); c.PC += 2 }
func ORAizy(c *CPU) {
	addr, crossed := c.izy()
	ora(c, c.Read8(addr))
	if crossed {
		c.tick()
	}
	c.PC += 2
}

func PHA(c *CPU) { c.tick(); push8(c, c.A); c.PC++ }
func PHP(c *CPU) {
	c.tick()
	p := c.P | (1 << pbitB) | (1 << pbitU)
	push8(c, uint8(p))
	c.PC++
}
func PLA(c *CPU) {
	c.tick()
	c.tick()
	c.A = pull8(c)
	c.P.checkNZ(c.A)
	c.PC++
}
func PLP(c *CPU) {
	c.tick()
	c.tick()
	p := pull8(c)
	const mask = 0b11001111 // ignore B and the unused bit
	c.P = P(copybits(uint8(c.P), p, mask))
	c.PC++
}

func ROLacc(c *CPU) { rol(c, &c.A); c.PC++ }
func ROLzp(c *CPU) {
	oper := c.zp()
	val := c.Read8(uint16(oper))
	rol(c, &val)
	c.Write8(uint16(oper), val)
	c.PC += 2
}
func ROLzpx(c *CPU) {
	oper := c.zpx()
	val := c.Read8(uint16(oper))
	rol(c, &val)
	c.Write8(uint16(oper), val)
	c.PC += 2
}
func ROLabs(c *CPU) {
	oper := c.abs()
	val := c.Read8(oper)
	rol(c, &val)
	c.Write8(oper, val)
	c.PC += 3
}
func ROLabx(c *CPU) {
	addr, crossed := c.abx()
	if !crossed {
		c.tick()
	}
	val := c.Read8(addr)
	rol(c, &val)
	c.Write8(addr, val)
	c.PC += 3
}

func RORacc(c *CPU) { ror(c, &c.A); c.PC++ }
func RORzp(c *CPU) {
	oper := c.zp()
	val := c.Read8(uint16(oper))
	ror(c, &val)
	c.Write8(uint16(oper), val)
	c.PC += 2
}
func RORzpx(c *CPU) {
	oper := c.zpx()
	val := c.Read8(uint16(oper))
	ror(c, &val)
	c.Write8(uint16(oper), val)
	c.PC += 2
}
func RORabs(c *CPU) {
	oper := c.abs()
	val := c.Read8(oper)
	ror(c, &val)
	c.Write8(oper, val)
	c.PC += 3
}
func RORabx(c *CPU) {
	addr, crossed := c.abx()
	if !crossed {
		c.tick()
	}
	val := c.Read8(addr)
	ror(c, &val)
	c.Write8(addr, val)
	c.PC += 3
}

func RTI(c *CPU) {
	c.tick()
	c.tick()
	p := pull8(c)
	const mask = 0b11001111
	c.P = P(copybits(uint8(c.P), p, mask))
	c.PC = pull16(c)
}

func RTS(c *CPU) {
	c.tick()
	c.tick()
	c.PC = pull16(c)
	c.PC++
	c.tick()
}

func SBCimm(c *CPU) { sbc(c, c.imm()); c.PC += 2 }
func SBCzp(c *CPU)  { sbc(c, c.Read8(uint16(c.zp()))); c.PC += 2 }
func SBCzpx(c *CPU) { sbc(c, c.Read8(uint16(c.zpx()))); c.PC += 2 }
func SBCabs(c *CPU) { sbc(c, c.Read8(c.abs())); c.PC += 3 }
func SBCabx(c *CPU) { addr, _ := c.abx(); sbc(c, c.Read8(addr)); c.PC += 3 }
func SBCaby(c *CPU) { addr, _ := c.aby(); sbc(c, c.Read8(addr)); c.PC += 3 }
func SBCizx(c *CPU) { sbc(c, c.Read8(c.izx())); c.PC += 2 }
func SBCizy(c *CPU) {
	addr, crossed := c.izy()
	sbc(c, c.Read8(addr))
	if crossed {
		c.tick()
	}
	c.PC += 2
}

func STAzp(c *CPU)  { c.Write8(uint16(c.zp()), c.A); c.PC += 2 }
func STAzpx(c *CPU) { c.Write8(uint16(c.zpx()), c.A); c.PC += 2 }
func STAabs(c *CPU) { c.Write8(c.abs(), c.A); c.PC += 3 }
func STAabx(c *CPU) {
	addr, crossed := c.abx()
	if !crossed {
		c.tick()
	}
	c.Write8(addr, c.A)
	c.PC += 3
}
func STAaby(c *CPU) {
	addr, crossed := c.aby()
	if !crossed {
		c.tick()
	}
	c.Write8(addr, c.A)
	c.PC += 3
}
func STAizx(c *CPU) { c.Write8(c.izx(), c.A); c.PC += 2 }
func STAizy(c *CPU) {
	addr, _ := c.izy()
	c.tick()
	c.Write8(addr, c.A)
	c.PC += 2
}

func STXzp(c *CPU)  { c.Write8(uint16(c.zp()), c.X); c.PC += 2 }
func STXzpy(c *CPU) { c.Write8(uint16(c.zpy()), c.X); c.PC += 2 }
func STXabs(c *CPU) { c.Write8(c.abs(), c.X); c.PC += 3 }

func STYzp(c *CPU)  { c.Write8(uint16(c.zp()), c.Y); c.PC += 2 }
func STYzpx(c *CPU) { c.Write8(uint16(c.zpx()), c.Y); c.PC += 2 }
func STYabs(c *CPU) { c.Write8(c.abs(), c.Y); c.PC += 3 }

func TAX(c *CPU) { c.X = c.A; c.P.checkNZ(c.X); c.tick(); c.PC++ }
func TAY(c *CPU) { c.Y = c.A; c.P.checkNZ(c.Y); c.tick(); c.PC++ }
func TSX(c *CPU) { c.X = c.SP; c.P.checkNZ(c.X); c.tick(); c.PC++ }
func TXA(c *CPU) { c.A = c.X; c.P.checkNZ(c.A); c.tick(); c.PC++ }
func TXS(c *CPU) { c.SP = c.X; c.tick(); c.PC++ }
func TYA(c *CPU) { c.A = c.Y; c.P.checkNZ(c.A); c.tick(); c.PC++ }
