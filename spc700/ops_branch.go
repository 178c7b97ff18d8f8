package spc700

func registerBranch() {
	def(0x10, "BPL", Relative, func(c *CPU, _ AddressingMode) { branch(c, !c.reg.PSW.Negative()) })
	def(0x30, "BMI", Relative, func(c *CPU, _ AddressingMode) { branch(c, c.reg.PSW.Negative()) })
	def(0x50, "BVC", Relative, func(c *CPU, _ AddressingMode) { branch(c, !c.reg.PSW.Overflow()) })
	def(0x70, "BVS", Relative, func(c *CPU, _ AddressingMode) { branch(c, c.reg.PSW.Overflow()) })
	def(0x90, "BCC", Relative, func(c *CPU, _ AddressingMode) { branch(c, !c.reg.PSW.Carry()) })
	def(0xB0, "BCS", Relative, func(c *CPU, _ AddressingMode) { branch(c, c.reg.PSW.Carry()) })
	def(0xD0, "BNE", Relative, func(c *CPU, _ AddressingMode) { branch(c, !c.reg.PSW.Zero()) })
	def(0xF0, "BEQ", Relative, func(c *CPU, _ AddressingMode) { branch(c, c.reg.PSW.Zero()) })
	def(0x2F, "BRA", Relative, func(c *CPU, _ AddressingMode) { branch(c, true) })

	def(0x2E, "CBNE", DirectPage, opCBNE)
	def(0xDE, "CBNE", DirectX, opCBNE)
	def(0x6E, "DBNZ", DirectPage, opDBNZDirect)
	def(0xFE, "DBNZ", RegY, func(c *CPU, _ AddressingMode) { c.reg.Y--; branch(c, c.reg.Y != 0) })

	def(0x3F, "CALL", Absolute, opCALL)
	def(0x4F, "PCALL", Immediate, opPCALL)
	def(0x5F, "JMP", Absolute, func(c *CPU, _ AddressingMode) { c.reg.PC = c.fetch16() })
	def(0x1F, "JMP", AbsoluteIndirectX, func(c *CPU, m AddressingMode) { c.reg.PC = c.decodeAddress(m) })

	def(0x6F, "RET", Implied, func(c *CPU, _ AddressingMode) { c.reg.PC = c.pop16() })
	def(0x7F, "RET1", Implied, opRET1)
	def(0x0F, "BRK", Implied, opBRK)
}

// branch consumes the signed 8-bit relative operand and, if cond holds,
// adds it to PC, charging the two extra internal cycles a taken branch
// spends recomputing the target.
func branch(c *CPU, cond bool) {
	offset := int8(c.fetch8())
	if !cond {
		return
	}
	c.bus.AddIOCycles(2)
	c.reg.PC = uint16(int32(c.reg.PC) + int32(offset))
}

func opCBNE(c *CPU, mode AddressingMode) {
	v := c.operand8(mode)
	branch(c, v != c.reg.A)
}

func opDBNZDirect(c *CPU, mode AddressingMode) {
	addr := c.decodeAddress(mode)
	v := c.read8(addr) - 1
	c.bus.AddIOCycles(1)
	c.write8(addr, v)
	branch(c, v != 0)
}

func opCALL(c *CPU, _ AddressingMode) {
	target := c.fetch16()
	c.push16(c.reg.PC)
	c.reg.PC = target
}

func opPCALL(c *CPU, _ AddressingMode) {
	off := c.fetch8()
	c.push16(c.reg.PC)
	c.reg.PC = 0xFF00 | uint16(off)
}

func opRET1(c *CPU, _ AddressingMode) {
	c.reg.PSW = Status(c.pop8())
	c.reg.PC = c.pop16()
}

// opBRK pushes PC and PSW, disables further interrupts, and vectors through
// 0xFFDE — the same slot TCALL0 uses, per the documented BRK/TCALL0 vector
// sharing.
func opBRK(c *CPU, _ AddressingMode) {
	c.push16(c.reg.PC)
	c.push8(uint8(c.reg.PSW))
	c.reg.PSW.SetBreak(true)
	c.reg.PSW.SetIRQEnabled(false)
	c.reg.PC = c.read16(0xFFDE)
}
