package cpu

// adc adds val and the carry flag into the accumulator.
func adc(c *CPU, val uint8) {
	carry := c.P.ibit(pbitC)
	sum := uint16(c.A) + uint16(val) + uint16(carry)

	c.P.checkCV(c.A, val, sum)
	c.A = uint8(sum)
	c.P.checkNZ(c.A)
}

// sbc subtracts val and the borrow (inverse of carry) from the accumulator.
// It is implemented as adc of val's one's complement, which is how real
// 6502 hardware computes it.
func sbc(c *CPU, val uint8) {
	adc(c, val^0xFF)
}

func and(c *CPU, val uint8) {
	c.A &= val
	c.P.checkNZ(c.A)
}

func ora(c *CPU, val uint8) {
	c.A |= val
	c.P.checkNZ(c.A)
}

func eor(c *CPU, val uint8) {
	c.A ^= val
	c.P.checkNZ(c.A)
}

// rol rotates val left one bit, shifting the carry flag into bit 0.
func rol(c *CPU, val *uint8) {
	carry := *val & 0x80
	*val <<= 1
	if c.P.C() {
		*val |= 1
	}
	c.tick()
	c.P.checkNZ(*val)
	c.P.writeBit(pbitC, carry != 0)
}

// ror rotates val right one bit, shifting the carry flag into bit 7.
func ror(c *CPU, val *uint8) {
	carry := *val & 0x01
	*val >>= 1
	if c.P.C() {
		*val |= 1 << 7
	}
	c.tick()
	c.P.checkNZ(*val)
	c.P.writeBit(pbitC, carry != 0)
}

// asl shifts val left one bit in memory or the accumulator.
func asl(c *CPU, val *uint8) {
	carry := *val & 0x80
	*val <<= 1
	c.tick()
	c.P.checkNZ(*val)
	c.P.writeBit(pbitC, carry != 0)
}

// lsrmem shifts val right one bit for the memory forms; lsracc is the
// accumulator form. Each charges one internal cycle.
func lsrmem(c *CPU, val *uint8) {
	carry := *val & 0x01
	*val >>= 1
	c.tick()
	c.P.checkNZ(*val)
	c.P.writeBit(pbitC, carry != 0)
}

func lsracc(c *CPU) {
	carry := c.A & 0x01
	c.A >>= 1
	c.P.checkNZ(c.A)
	c.P.writeBit(pbitC, carry != 0)
	c.tick()
}

// bit copies bits 7 and 6 of val into N and V, and sets Z from A&val.
func bit(c *CPU, val uint8) {
	c.P &= 0b00111111
	c.P |= P(val & 0b11000000)
	c.P.checkZ(c.A & val)
}

func cmp_(c *CPU, val uint8) {
	c.P.checkNZ(c.A - val)
	c.P.writeBit(pbitC, val <= c.A)
}

func cpx(c *CPU, val uint8) {
	c.P.checkNZ(c.X - val)
	c.P.writeBit(pbitC, val <= c.X)
}

func cpy(c *CPU, val uint8) {
	c.P.checkNZ(c.Y - val)
	c.P.writeBit(pbitC, val <= c.Y)
}

// inc/dec operate through a pointer so the same helper serves both the
// register forms (INX, DEY, ...) and the memory read-modify-write forms.
func inc(c *CPU, val *uint8) {
	c.tick()
	*val++
	c.P.checkNZ(*val)
}

func dec(c *CPU, val *uint8) {
	c.tick()
	*val--
	c.P.checkNZ(*val)
}

func lda(c *CPU, val uint8) {
	c.A = val
	c.P.checkNZ(c.A)
}

func ldx(c *CPU, val uint8) {
	c.X = val
	c.P.checkNZ(c.X)
}

func ldy(c *CPU, val uint8) {
	c.Y = val
	c.P.checkNZ(c.Y)
}
