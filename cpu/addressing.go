package cpu

// pagecrossed reports whether a and b fall on different 256-byte pages.
func pagecrossed(a, b uint16) bool {
	return 0xFF00&a != 0xFF00&b
}

// zpr16 reads a little-endian 16-bit pointer out of the zero page, wrapping
// within the page rather than crossing into page one.
func (c *CPU) zpr16(addr uint16) uint16 {
	lo := c.Read8(addr)
	hi := c.Read8(uint16(uint8(addr) + 1))
	return uint16(hi)<<8 | uint16(lo)
}

// imm returns the one-byte immediate operand following the opcode.
func (c *CPU) imm() uint8 { return c.Read8(c.PC + 1) }

// abs returns the two-byte absolute address following the opcode.
func (c *CPU) abs() uint16 { return c.Read16(c.PC + 1) }

// zp returns the one-byte zero-page address following the opcode.
func (c *CPU) zp() uint8 { return c.Read8(c.PC + 1) }

func (c *CPU) zpx() uint8 {
	c.tick()
	return c.zp() + c.X
}

func (c *CPU) zpy() uint8 {
	c.tick()
	return c.zp() + c.Y
}

// abx resolves absolute,X and reports whether the indexing crossed a page
// boundary, which costs an extra cycle on most instructions.
func (c *CPU) abx() (uint16, bool) {
	addr := c.abs()
	dst := addr + uint16(c.X)
	crossed := pagecrossed(addr, dst)
	if crossed {
		c.tick()
	}
	return dst, crossed
}

// aby resolves absolute,Y the same way abx resolves absolute,X.
func (c *CPU) aby() (uint16, bool) {
	addr := c.abs()
	dst := addr + uint16(c.Y)
	crossed := pagecrossed(addr, dst)
	if crossed {
		c.tick()
	}
	return dst, crossed
}

// izx resolves (zp,X): add X to the zero-page operand first, then read the
// resulting 16-bit pointer.
func (c *CPU) izx() uint16 {
	c.tick()
	oper := c.zp() + c.X
	return c.zpr16(uint16(oper))
}

// izy resolves (zp),Y: read the 16-bit pointer out of the zero page first,
// then add Y to the effective address. Earlier 6502 implementations often
// add Y to the raw zero-page byte instead of to the dereferenced pointer;
// that bug is not reproduced here.
func (c *CPU) izy() (uint16, bool) {
	oper := c.zp()
	addr := c.zpr16(uint16(oper))
	dst := addr + uint16(c.Y)
	return dst, pagecrossed(addr, dst)
}

// ind resolves indirect addressing for JMP, including the hardware quirk
// where the pointer read wraps within its own page instead of crossing into
// the next one.
func (c *CPU) ind() uint16 {
	oper := c.Read16(c.PC + 1)
	lo := c.Read8(oper)
	hi := c.Read8((0xFF00 & oper) | (0x00FF & (oper + 1)))
	return uint16(hi)<<8 | uint16(lo)
}

// reladdr computes the branch target for a relative-mode instruction: the
// operand is a signed 8-bit offset from the address of the instruction
// following the branch.
func reladdr(c *CPU) uint16 {
	off := int8(c.Read8(c.PC + 1))
	return uint16(int16(c.PC+2) + int16(off))
}

// branch implements the shared control flow for all eight conditional
// branches: untaken branches cost 2 cycles, taken branches cost 3, and a
// taken branch that also crosses a page boundary costs 4.
func branch(c *CPU, cond bool) {
	addr := reladdr(c)
	if !cond {
		c.PC += 2
		return
	}
	if pagecrossed(c.PC+2, addr) {
		c.tick()
	}
	c.tick()
	c.PC = addr
}
