package cpu

import (
	"bytes"
	"fmt"
	"io"
)

// opsDisasm mirrors ops: one entry per opcode, producing a mnemonic string
// and the instruction's encoded length in bytes. Unassigned opcodes disas-
// semble the same way they execute, as a bare NOP.
var opsDisasm = buildOpsDisasm()

type disasmFunc func(d *tracer, pc uint16) (string, int)

func buildOpsDisasm() [256]disasmFunc {
	var t [256]disasmFunc
	for i := range t {
		t[i] = disasmImp("NOP")
	}

	t[0x00] = disasmImp("BRK")
	t[0x69], t[0x65], t[0x75], t[0x6D], t[0x7D], t[0x79], t[0x61], t[0x71] =
		disasmImm("ADC"), disasmZp("ADC"), disasmZpx("ADC"), disasmAbs("ADC"), disasmAbx("ADC"), disasmAby("ADC"), disasmIzx("ADC"), disasmIzy("ADC")
	t[0x29], t[0x25], t[0x35], t[0x2D], t[0x3D], t[0x39], t[0x21], t[0x31] =
		disasmImm("AND"), disasmZp("AND"), disasmZpx("AND"), disasmAbs("AND"), disasmAbx("AND"), disasmAby("AND"), disasmIzx("AND"), disasmIzy("AND")
	t[0x0A], t[0x06], t[0x16], t[0x0E], t[0x1E] =
		disasmAcc("ASL"), disasmZp("ASL"), disasmZpx("ASL"), disasmAbs("ASL"), disasmAbx("ASL")
	t[0x90], t[0xB0], t[0xF0], t[0x30], t[0xD0], t[0x10], t[0x50], t[0x70] =
		disasmRel("BCC"), disasmRel("BCS"), disasmRel("BEQ"), disasmRel("BMI"), disasmRel("BNE"), disasmRel("BPL"), disasmRel("BVC"), disasmRel("BVS")
	t[0x24], t[0x2C] = disasmZp("BIT"), disasmAbs("BIT")
	t[0x18], t[0xD8], t[0x58], t[0xB8], t[0x38], t[0xF8], t[0x78] =
		disasmImp("CLC"), disasmImp("CLD"), disasmImp("CLI"), disasmImp("CLV"), disasmImp("SEC"), disasmImp("SED"), disasmImp("SEI")
	t[0xC9], t[0xC5], t[0xD5], t[0xCD], t[0xDD], t[0xD9], t[0xC1], t[0xD1] =
		disasmImm("CMP"), disasmZp("CMP"), disasmZpx("CMP"), disasmAbs("CMP"), disasmAbx("CMP"), disasmAby("CMP"), disasmIzx("CMP"), disasmIzy("CMP")
	t[0xE0], t[0xE4], t[0xEC] = disasmImm("CPX"), disasmZp("CPX"), disasmAbs("CPX")
	t[0xC0], t[0xC4], t[0xCC] = disasmImm("CPY"), disasmZp("CPY"), disasmAbs("CPY")
	t[0xC6], t[0xD6], t[0xCE], t[0xDE] = disasmZp("DEC"), disasmZpx("DEC"), disasmAbs("DEC"), disasmAbx("DEC")
	t[0xCA], t[0x88] = disasmImp("DEX"), disasmImp("DEY")
	t[0x49], t[0x45], t[0x55], t[0x4D], t[0x5D], t[0x59], t[0x41], t[0x51] =
		disasmImm("EOR"), disasmZp("EOR"), disasmZpx("EOR"), disasmAbs("EOR"), disasmAbx("EOR"), disasmAby("EOR"), disasmIzx("EOR"), disasmIzy("EOR")
	t[0xE6], t[0xF6], t[0xEE], t[0xFE] = disasmZp("INC"), disasmZpx("INC"), disasmAbs("INC"), disasmAbx("INC")
	t[0xE8], t[0xC8] = disasmImp("INX"), disasmImp("INY")
	t[0x4C] = disasmAbs("JMP")
	t[0x6C] = disasmInd("JMP")
	t[0x20] = disasmAbs("JSR")
	t[0xA9], t[0xA5], t[0xB5], t[0xAD], t[0xBD], t[0xB9], t[0xA1], t[0xB1] =
		disasmImm("LDA"), disasmZp("LDA"), disasmZpx("LDA"), disasmAbs("LDA"), disasmAbx("LDA"), disasmAby("LDA"), disasmIzx("LDA"), disasmIzy("LDA")
	t[0xA2], t[0xA6], t[0xB6], t[0xAE], t[0xBE] =
		disasmImm("LDX"), disasmZp("LDX"), disasmZpy("LDX"), disasmAbs("LDX"), disasmAby("LDX")
	t[0xA0], t[0xA4], t[0xB4], t[0xAC], t[0xBC] =
		disasmImm("LDY"), disasmZp("LDY"), disasmZpx("LDY"), disasmAbs("LDY"), disasmAbx("LDY")
	t[0x4A], t[0x46], t[0x56], t[0x4E], t[0x5E] =
		disasmAcc("LSR"), disasmZp("LSR"), disasmZpx("LSR"), disasmAbs("LSR"), disasmAbx("LSR")
	t[0x09], t[0x05], t[0x15], t[0x0D], t[0x1D], t[0x19], t[0x01], t[0x11] =
		disasmImm("ORA"), disasmZp("ORA"), disasmZpx("ORA"), disasmAbs("ORA"), disasmAbx("ORA"), disasmAby("ORA"), disasmIzx("ORA"), disasmIzy("ORA")
	t[0x48], t[0x08], t[0x68], t[0x28] = disasmImp("PHA"), disasmImp("PHP"), disasmImp("PLA"), disasmImp("PLP")
	t[0x2A], t[0x26], t[0x36], t[0x2E], t[0x3E] =
		disasmAcc("ROL"), disasmZp("ROL"), disasmZpx("ROL"), disasmAbs("ROL"), disasmAbx("ROL")
	t[0x6A], t[0x66], t[0x76], t[0x6E], t[0x7E] =
		disasmAcc("ROR"), disasmZp("ROR"), disasmZpx("ROR"), disasmAbs("ROR"), disasmAbx("ROR")
	t[0x40], t[0x60] = disasmImp("RTI"), disasmImp("RTS")
	t[0xE9], t[0xE5], t[0xF5], t[0xED], t[0xFD], t[0xF9], t[0xE1], t[0xF1] =
		disasmImm("SBC"), disasmZp("SBC"), disasmZpx("SBC"), disasmAbs("SBC"), disasmAbx("SBC"), disasmAby("SBC"), disasmIzx("SBC"), disasmIzy("SBC")
	t[0x85], t[0x95], t[0x8D], t[0x9D], t[0x99], t[0x81], t[0x91] =
		disasmZp("STA"), disasmZpx("STA"), disasmAbs("STA"), disasmAbx("STA"), disasmAby("STA"), disasmIzx("STA"), disasmIzy("STA")
	t[0x86], t[0x96], t[0x8E] = disasmZp("STX"), disasmZpy("STX"), disasmAbs("STX")
	t[0x84], t[0x94], t[0x8C] = disasmZp("STY"), disasmZpx("STY"), disasmAbs("STY")
	t[0xAA], t[0xA8], t[0xBA], t[0x8A], t[0x9A], t[0x98] =
		disasmImp("TAX"), disasmImp("TAY"), disasmImp("TSX"), disasmImp("TXA"), disasmImp("TXS"), disasmImp("TYA")

	return t
}

// tracer writes a nestest-style execution log: one line per instruction,
// printed before it runs, showing the address, raw bytes, mnemonic and
// register state. Addressing-mode peeks here read the bus directly and
// never call tick, so tracing never perturbs the cycle count.
type tracer struct {
	cpu *CPU
	w   io.Writer
	bb  bytes.Buffer
}

// NewTracer returns a tracer writing to w. Attach it with (*CPU).SetTrace.
func NewTracer(w io.Writer) *tracer {
	return &tracer{w: w}
}

func (t *tracer) before(c *CPU) {
	t.cpu = c
	pc := c.PC
	opcode := c.bus.Read8(pc)
	opstr, nbytes := opsDisasm[opcode](t, pc)

	t.bb.Reset()
	var raw []byte
	for i := uint16(0); i < uint16(nbytes); i++ {
		raw = append(raw, fmt.Sprintf("%02X ", c.bus.Read8(pc+i))...)
	}

	fmt.Fprintf(&t.bb, "%04X  %-9s%-24sA:%02X X:%02X Y:%02X P:%s SP:%02X CYC:%d\n",
		pc, raw, opstr, c.A, c.X, c.Y, c.P, c.SP, c.Cycles)
	t.w.Write(t.bb.Bytes())
}

func (t *tracer) after(c *CPU) {}

func read16(c *CPU, addr uint16) uint16 {
	lo := c.bus.Read8(addr)
	hi := c.bus.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (t *tracer) imm(pc uint16) uint8  { return t.cpu.bus.Read8(pc + 1) }
func (t *tracer) abs(pc uint16) uint16 { return read16(t.cpu, pc+1) }
func (t *tracer) zp(pc uint16) uint8   { return t.cpu.bus.Read8(pc + 1) }
func (t *tracer) zpx(pc uint16) uint8  { return t.zp(pc) + t.cpu.X }
func (t *tracer) zpy(pc uint16) uint8  { return t.zp(pc) + t.cpu.Y }

func (t *tracer) zpr16(addr uint16) uint16 {
	lo := t.cpu.bus.Read8(addr)
	hi := t.cpu.bus.Read8(uint16(uint8(addr) + 1))
	return uint16(hi)<<8 | uint16(lo)
}

func disasmImp(op string) disasmFunc {
	return func(*tracer, uint16) (string, int) { return op, 1 }
}

func disasmAcc(op string) disasmFunc {
	return func(*tracer, uint16) (string, int) { return fmt.Sprintf("%s A", op), 1 }
}

func disasmImm(op string) disasmFunc {
	return func(t *tracer, pc uint16) (string, int) {
		return fmt.Sprintf("%s #$%02X", op, t.imm(pc)), 2
	}
}

func disasmAbs(op string) disasmFunc {
	return func(t *tracer, pc uint16) (string, int) {
		addr := t.abs(pc)
		if op == "JMP" || op == "JSR" {
			return fmt.Sprintf("%s $%04X", op, addr), 3
		}
		return fmt.Sprintf("%s $%04X = %02X", op, addr, t.cpu.bus.Read8(addr)), 3
	}
}

func disasmAbx(op string) disasmFunc {
	return func(t *tracer, pc uint16) (string, int) {
		oper := t.abs(pc)
		addr := oper + uint16(t.cpu.X)
		return fmt.Sprintf("%s $%04X,X @ %04X = %02X", op, oper, addr, t.cpu.bus.Read8(addr)), 3
	}
}

func disasmAby(op string) disasmFunc {
	return func(t *tracer, pc uint16) (string, int) {
		oper := t.abs(pc)
		addr := oper + uint16(t.cpu.Y)
		return fmt.Sprintf("%s $%04X,Y @ %04X = %02X", op, oper, addr, t.cpu.bus.Read8(addr)), 3
	}
}

func disasmZp(op string) disasmFunc {
	return func(t *tracer, pc uint16) (string, int) {
		addr := t.zp(pc)
		return fmt.Sprintf("%s $%02X = %02X", op, addr, t.cpu.bus.Read8(uint16(addr))), 2
	}
}

func disasmZpx(op string) disasmFunc {
	return func(t *tracer, pc uint16) (string, int) {
		addr := t.zp(pc)
		addr2 := t.zpx(pc)
		return fmt.Sprintf("%s $%02X,X @ %02X = %02X", op, addr, addr2, t.cpu.bus.Read8(uint16(addr2))), 2
	}
}

func disasmZpy(op string) disasmFunc {
	return func(t *tracer, pc uint16) (string, int) {
		addr := t.zp(pc)
		addr2 := t.zpy(pc)
		return fmt.Sprintf("%s $%02X,Y @ %02X = %02X", op, addr, addr2, t.cpu.bus.Read8(uint16(addr2))), 2
	}
}

func disasmRel(op string) disasmFunc {
	return func(t *tracer, pc uint16) (string, int) {
		off := int16(int8(t.cpu.bus.Read8(pc + 1)))
		dst := uint16(int16(pc+2) + off)
		return fmt.Sprintf("%s $%04X", op, dst), 2
	}
}

func disasmInd(op string) disasmFunc {
	return func(t *tracer, pc uint16) (string, int) {
		oper := read16(t.cpu, pc+1)
		lo := t.cpu.bus.Read8(oper)
		hi := t.cpu.bus.Read8((0xFF00 & oper) | (0x00FF & (oper + 1)))
		dst := uint16(hi)<<8 | uint16(lo)
		return fmt.Sprintf("%s ($%04X) = %04X", op, oper, dst), 3
	}
}

func disasmIzx(op string) disasmFunc {
	return func(t *tracer, pc uint16) (string, int) {
		zp := t.zp(pc)
		indexed := zp + t.cpu.X
		addr := t.zpr16(uint16(indexed))
		return fmt.Sprintf("%s ($%02X,X) @ %02X = %04X = %02X", op, zp, indexed, addr, t.cpu.bus.Read8(addr)), 2
	}
}

func disasmIzy(op string) disasmFunc {
	return func(t *tracer, pc uint16) (string, int) {
		zp := t.zp(pc)
		addr := t.zpr16(uint16(zp))
		dst := addr + uint16(t.cpu.Y)
		return fmt.Sprintf("%s ($%02X),Y = %04X @ %04X = %02X", op, zp, addr, dst, t.cpu.bus.Read8(dst)), 2
	}
}
