package spc700

func registerLogic() {
	registerAluFamily("OR", 0x00, (*CPU).aluOR)
	registerAluFamily("AND", 0x20, (*CPU).aluAND)
	registerAluFamily("EOR", 0x40, (*CPU).aluEOR)

	def(0x0B, "ASL", DirectPage, opASL)
	def(0x0C, "ASL", Absolute, opASL)
	def(0x1B, "ASL", DirectX, opASL)
	def(0x1C, "ASL", Accumulator, opASL)

	def(0x4B, "LSR", DirectPage, opLSR)
	def(0x4C, "LSR", Absolute, opLSR)
	def(0x5B, "LSR", DirectX, opLSR)
	def(0x5C, "LSR", Accumulator, opLSR)

	def(0x2B, "ROL", DirectPage, opROL)
	def(0x2C, "ROL", Absolute, opROL)
	def(0x3B, "ROL", DirectX, opROL)
	def(0x3C, "ROL", Accumulator, opROL)

	def(0x6B, "ROR", DirectPage, opROR)
	def(0x6C, "ROR", Absolute, opROR)
	def(0x7B, "ROR", DirectX, opROR)
	def(0x7C, "ROR", Accumulator, opROR)

	def(0x0E, "TSET1", Absolute, opTSET1)
	def(0x4E, "TCLR1", Absolute, opTCLR1)
}

// registerAluFamily wires the six addressing-mode slots every OR/AND/EOR
// row shares: A,d / A,!a / A,(X) / A,[d+X] / A,#i / dd,ds, plus the indexed
// row's A,d+X / A,!a+X / A,!a+Y / A,[d]+Y / d,#i / (X),(Y). base is the row0
// opcode (0x00 for OR, 0x20 for AND, 0x40 for EOR); the indexed row is
// base+0x10.
func registerAluFamily(name string, base uint8, op func(*CPU, uint8, uint8) uint8) {
	reg := func(code uint8, mode AddressingMode) {
		def(code, name, mode, func(c *CPU, m AddressingMode) {
			c.reg.A = op(c, c.reg.A, c.operand8(m))
		})
	}
	reg(base+0x04, DirectPage)
	reg(base+0x05, Absolute)
	reg(base+0x06, IndirectX)
	reg(base+0x07, XIndirect)
	reg(base+0x08, Immediate)
	def(base+0x09, name, Implied, func(c *CPU, _ AddressingMode) {
		src := c.fetch8()
		dstOff := c.fetch8()
		addr := c.directAddr(dstOff)
		v := c.read8(addr)
		s := c.read8(c.directAddr(src))
		c.bus.AddIOCycles(1)
		c.write8(addr, op(c, v, s))
	})

	reg(base+0x14, DirectX)
	reg(base+0x15, AbsoluteX)
	reg(base+0x16, AbsoluteY)
	reg(base+0x17, DirectPageIndirectY)
	def(base+0x18, name, Implied, func(c *CPU, _ AddressingMode) {
		off := c.fetch8()
		imm := c.fetch8()
		addr := c.directAddr(off)
		v := c.read8(addr)
		c.bus.AddIOCycles(1)
		c.write8(addr, op(c, v, imm))
	})
	def(base+0x19, name, Implied, func(c *CPU, _ AddressingMode) {
		dst := c.directAddr(c.reg.X)
		src := c.directAddr(c.reg.Y)
		v := c.read8(dst)
		s := c.read8(src)
		c.bus.AddIOCycles(1)
		c.write8(dst, op(c, v, s))
	})
}

func (c *CPU) aluOR(a, b uint8) uint8  { r := a | b; c.reg.PSW.setNZ(r); return r }
func (c *CPU) aluAND(a, b uint8) uint8 { r := a & b; c.reg.PSW.setNZ(r); return r }
func (c *CPU) aluEOR(a, b uint8) uint8 { r := a ^ b; c.reg.PSW.setNZ(r); return r }

func opASL(c *CPU, mode AddressingMode) {
	c.rmw8(mode, func(v uint8) uint8 {
		c.reg.PSW.SetCarry(v&0x80 != 0)
		r := v << 1
		c.reg.PSW.setNZ(r)
		return r
	})
}

func opLSR(c *CPU, mode AddressingMode) {
	c.rmw8(mode, func(v uint8) uint8 {
		c.reg.PSW.SetCarry(v&0x01 != 0)
		r := v >> 1
		c.reg.PSW.setNZ(r)
		return r
	})
}

func opROL(c *CPU, mode AddressingMode) {
	c.rmw8(mode, func(v uint8) uint8 {
		var carryIn uint8
		if c.reg.PSW.Carry() {
			carryIn = 1
		}
		c.reg.PSW.SetCarry(v&0x80 != 0)
		r := v<<1 | carryIn
		c.reg.PSW.setNZ(r)
		return r
	})
}

func opROR(c *CPU, mode AddressingMode) {
	c.rmw8(mode, func(v uint8) uint8 {
		var carryIn uint8
		if c.reg.PSW.Carry() {
			carryIn = 0x80
		}
		c.reg.PSW.SetCarry(v&0x01 != 0)
		r := v>>1 | carryIn
		c.reg.PSW.setNZ(r)
		return r
	})
}

// opTSET1 tests A against memory (Z from mem&A, N from bit 7 of the memory
// byte) then ORs A's bits into memory. opTCLR1 tests the same way then clears A's bits from memory.
func opTSET1(c *CPU, mode AddressingMode) {
	addr := c.decodeAddress(mode)
	v := c.read8(addr)
	test := v & c.reg.A
	c.reg.PSW.SetZero(test == 0)
	c.reg.PSW.SetNegative(v&0x80 != 0)
	c.bus.AddIOCycles(1)
	c.write8(addr, v|c.reg.A)
}

func opTCLR1(c *CPU, mode AddressingMode) {
	addr := c.decodeAddress(mode)
	v := c.read8(addr)
	test := v & c.reg.A
	c.reg.PSW.SetZero(test == 0)
	c.reg.PSW.SetNegative(v&0x80 != 0)
	c.bus.AddIOCycles(1)
	c.write8(addr, v&^c.reg.A)
}
