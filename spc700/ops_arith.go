package spc700

func registerArith() {
	registerAluFamily("ADC", 0x80, (*CPU).aluADC)
	registerAluFamily("SBC", 0xA0, (*CPU).aluSBC)
	registerCompareFamily(0x60)

	def(0xC8, "CMP", Immediate, func(c *CPU, m AddressingMode) { c.aluCMP(c.reg.X, c.operand8(m)) })
	def(0x3E, "CMP", DirectPage, func(c *CPU, m AddressingMode) { c.aluCMP(c.reg.X, c.operand8(m)) })
	def(0x1E, "CMP", Absolute, func(c *CPU, m AddressingMode) { c.aluCMP(c.reg.X, c.operand8(m)) })
	def(0xAD, "CMP", Immediate, func(c *CPU, m AddressingMode) { c.aluCMP(c.reg.Y, c.operand8(m)) })
	def(0x7E, "CMP", DirectPage, func(c *CPU, m AddressingMode) { c.aluCMP(c.reg.Y, c.operand8(m)) })
	def(0x5E, "CMP", Absolute, func(c *CPU, m AddressingMode) { c.aluCMP(c.reg.Y, c.operand8(m)) })

	def(0x3D, "INC", RegX, opIncX)
	def(0x1D, "DEC", RegX, opDecX)
	def(0xFC, "INC", RegY, opIncY)
	def(0xDC, "DEC", RegY, opDecY)
	def(0xBC, "INC", Accumulator, opIncA)
	def(0x9C, "DEC", Accumulator, opDecA)

	def(0xAB, "INC", DirectPage, opINC)
	def(0xAC, "INC", Absolute, opINC)
	def(0xBB, "INC", DirectX, opINC)
	def(0x8B, "DEC", DirectPage, opDEC)
	def(0x8C, "DEC", Absolute, opDEC)
	def(0x9B, "DEC", DirectX, opDEC)

	def(0x3A, "INCW", DirectPage, opINCW)
	def(0x1A, "DECW", DirectPage, opDECW)
	def(0x7A, "ADDW", DirectPage, opADDW)
	def(0x9A, "SUBW", DirectPage, opSUBW)
	def(0x5A, "CMPW", DirectPage, opCMPW)
	def(0xBA, "MOVW", DirectPage, opMOVWLoad)
	def(0xDA, "MOVW", DirectPage, opMOVWStore)

	def(0xCF, "MUL", Implied, opMUL)
	def(0x9E, "DIV", Implied, opDIV)
	def(0xDF, "DAA", Accumulator, opDAA)
	def(0xBE, "DAS", Accumulator, opDAS)
	def(0x9F, "XCN", Accumulator, opXCN)
}

// registerCompareFamily wires the twelve CMP addressing-mode slots. Unlike
// ADC/SBC, CMP never writes its result back; the dp,dp and (X),(Y) forms
// read both operands and discard the combined value after setting flags.
func registerCompareFamily(base uint8) {
	reg := func(code uint8, mode AddressingMode) {
		def(code, "CMP", mode, func(c *CPU, m AddressingMode) {
			c.aluCMP(c.reg.A, c.operand8(m))
		})
	}
	reg(base+0x04, DirectPage)
	reg(base+0x05, Absolute)
	reg(base+0x06, IndirectX)
	reg(base+0x07, XIndirect)
	reg(base+0x08, Immediate)
	def(base+0x09, "CMP", Implied, func(c *CPU, _ AddressingMode) {
		src := c.fetch8()
		dstOff := c.fetch8()
		v := c.read8(c.directAddr(dstOff))
		s := c.read8(c.directAddr(src))
		c.aluCMP(v, s)
	})

	reg(base+0x14, DirectX)
	reg(base+0x15, AbsoluteX)
	reg(base+0x16, AbsoluteY)
	reg(base+0x17, DirectPageIndirectY)
	def(base+0x18, "CMP", Implied, func(c *CPU, _ AddressingMode) {
		off := c.fetch8()
		imm := c.fetch8()
		v := c.read8(c.directAddr(off))
		c.aluCMP(v, imm)
	})
	def(base+0x19, "CMP", Implied, func(c *CPU, _ AddressingMode) {
		v := c.read8(c.directAddr(c.reg.X))
		s := c.read8(c.directAddr(c.reg.Y))
		c.aluCMP(v, s)
	})
}

func (c *CPU) aluADC(a, b uint8) uint8 {
	var carry uint16
	if c.reg.PSW.Carry() {
		carry = 1
	}
	sum := uint16(a) + uint16(b) + carry
	half := (a&0xF)+(b&0xF)+uint8(carry) > 0xF
	result := uint8(sum)
	c.reg.PSW.SetCarry(sum > 0xFF)
	c.reg.PSW.SetHalfCarry(half)
	c.reg.PSW.SetOverflow((a^result)&(b^result)&0x80 != 0)
	c.reg.PSW.setNZ(result)
	return result
}

func (c *CPU) aluSBC(a, b uint8) uint8 { return c.aluADC(a, ^b) }

func (c *CPU) aluCMP(a, b uint8) {
	c.reg.PSW.SetCarry(a >= b)
	c.reg.PSW.setNZ(a - b)
}

func opIncX(c *CPU, _ AddressingMode) { c.reg.X++; c.reg.PSW.setNZ(c.reg.X) }
func opDecX(c *CPU, _ AddressingMode) { c.reg.X--; c.reg.PSW.setNZ(c.reg.X) }
func opIncY(c *CPU, _ AddressingMode) { c.reg.Y++; c.reg.PSW.setNZ(c.reg.Y) }
func opDecY(c *CPU, _ AddressingMode) { c.reg.Y--; c.reg.PSW.setNZ(c.reg.Y) }
func opIncA(c *CPU, _ AddressingMode) { c.reg.A++; c.reg.PSW.setNZ(c.reg.A) }
func opDecA(c *CPU, _ AddressingMode) { c.reg.A--; c.reg.PSW.setNZ(c.reg.A) }

func opINC(c *CPU, mode AddressingMode) {
	c.rmw8(mode, func(v uint8) uint8 { r := v + 1; c.reg.PSW.setNZ(r); return r })
}

func opDEC(c *CPU, mode AddressingMode) {
	c.rmw8(mode, func(v uint8) uint8 { r := v - 1; c.reg.PSW.setNZ(r); return r })
}

func (c *CPU) ya() uint16        { return uint16(c.reg.Y)<<8 | uint16(c.reg.A) }
func (c *CPU) setYA(v uint16)    { c.reg.Y = uint8(v >> 8); c.reg.A = uint8(v) }
func (c *CPU) setNZ16(v uint16) { c.reg.PSW.SetZero(v == 0); c.reg.PSW.SetNegative(v&0x8000 != 0) }

func opINCW(c *CPU, _ AddressingMode) {
	off := c.fetch8()
	addr := c.directAddr(off)
	v := c.read16(addr) + 1
	c.write16(addr, v)
	c.setNZ16(v)
}

func opDECW(c *CPU, _ AddressingMode) {
	off := c.fetch8()
	addr := c.directAddr(off)
	v := c.read16(addr) - 1
	c.write16(addr, v)
	c.setNZ16(v)
}

func opADDW(c *CPU, _ AddressingMode) {
	off := c.fetch8()
	word := c.read16(c.directAddr(off))
	ya := c.ya()
	sum := uint32(ya) + uint32(word)
	c.reg.PSW.SetCarry(sum > 0xFFFF)
	c.reg.PSW.SetHalfCarry((ya&0xFFF)+(word&0xFFF) > 0xFFF)
	c.reg.PSW.SetOverflow((ya^uint16(sum))&(word^uint16(sum))&0x8000 != 0)
	c.setYA(uint16(sum))
	c.setNZ16(uint16(sum))
}

func opSUBW(c *CPU, _ AddressingMode) {
	off := c.fetch8()
	word := c.read16(c.directAddr(off))
	ya := c.ya()
	diff := int32(ya) - int32(word)
	c.reg.PSW.SetCarry(diff >= 0)
	c.reg.PSW.SetHalfCarry(int32(ya&0xFFF)-int32(word&0xFFF) >= 0)
	c.reg.PSW.SetOverflow((ya^word)&(ya^uint16(diff))&0x8000 != 0)
	c.setYA(uint16(diff))
	c.setNZ16(uint16(diff))
}

func opCMPW(c *CPU, _ AddressingMode) {
	off := c.fetch8()
	word := c.read16(c.directAddr(off))
	ya := c.ya()
	c.reg.PSW.SetCarry(ya >= word)
	c.setNZ16(ya - word)
}

func opMOVWLoad(c *CPU, _ AddressingMode) {
	off := c.fetch8()
	word := c.read16(c.directAddr(off))
	c.setYA(word)
	c.setNZ16(word)
}

func opMOVWStore(c *CPU, _ AddressingMode) {
	off := c.fetch8()
	c.write16(c.directAddr(off), c.ya())
}

// MUL sets N/Z from the high byte (Y), matching the documented quirk that
// the low byte's value is not reflected in the flags.
func opMUL(c *CPU, _ AddressingMode) {
	product := uint16(c.reg.Y) * uint16(c.reg.A)
	c.reg.A = uint8(product)
	c.reg.Y = uint8(product >> 8)
	c.reg.PSW.setNZ(c.reg.Y)
}

// DIV divides YA by X, quotient to A, remainder to Y. X==0 reproduces the
// documented saturate-and-flag-overflow behavior rather than dividing by
// zero.
func opDIV(c *CPU, _ AddressingMode) {
	ya := c.ya()
	x := c.reg.X
	c.reg.PSW.SetHalfCarry((c.reg.Y & 0xF) >= (x & 0xF))
	if x == 0 {
		c.reg.PSW.SetOverflow(true)
		c.reg.A = 0xFF
		c.reg.Y = uint8(ya)
	} else {
		q := ya / uint16(x)
		r := ya % uint16(x)
		c.reg.PSW.SetOverflow(q > 0xFF)
		c.reg.A = uint8(q)
		c.reg.Y = uint8(r)
	}
	c.reg.PSW.setNZ(c.reg.A)
}

func opDAA(c *CPU, _ AddressingMode) {
	a := c.reg.A
	if c.reg.PSW.Carry() || a > 0x99 {
		a += 0x60
		c.reg.PSW.SetCarry(true)
	}
	if c.reg.PSW.HalfCarry() || a&0x0F > 0x09 {
		a += 0x06
	}
	c.reg.A = a
	c.reg.PSW.setNZ(a)
}

func opDAS(c *CPU, _ AddressingMode) {
	a := c.reg.A
	if !c.reg.PSW.Carry() || a > 0x99 {
		a -= 0x60
		c.reg.PSW.SetCarry(false)
	}
	if !c.reg.PSW.HalfCarry() || a&0x0F > 0x09 {
		a -= 0x06
	}
	c.reg.A = a
	c.reg.PSW.setNZ(a)
}

func opXCN(c *CPU, _ AddressingMode) {
	c.reg.A = c.reg.A<<4 | c.reg.A>>4
	c.reg.PSW.setNZ(c.reg.A)
}
