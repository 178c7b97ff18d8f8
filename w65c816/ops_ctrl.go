package w65c816

func registerCtrl() {
	def(0x18, "CLC", Implied, func(c *CPU, _ AddressingMode) { c.reg.P.SetCarry(false) })
	def(0x38, "SEC", Implied, func(c *CPU, _ AddressingMode) { c.reg.P.SetCarry(true) })
	def(0x58, "CLI", Implied, func(c *CPU, _ AddressingMode) { c.reg.P.SetIRQDisable(false) })
	def(0x78, "SEI", Implied, func(c *CPU, _ AddressingMode) { c.reg.P.SetIRQDisable(true) })
	def(0xB8, "CLV", Implied, func(c *CPU, _ AddressingMode) { c.reg.P.SetOverflow(false) })
	def(0xD8, "CLD", Implied, func(c *CPU, _ AddressingMode) { c.reg.P.SetDecimal(false) })
	def(0xF8, "SED", Implied, func(c *CPU, _ AddressingMode) { c.reg.P.SetDecimal(true) })

	def(0xC2, "REP", Immediate, opREP)
	def(0xE2, "SEP", Immediate, opSEP)

	def(0xFB, "XCE", Implied, opXCE)
	def(0xDB, "STP", Implied, func(c *CPU, _ AddressingMode) { c.reg.Stopped = true })
	def(0xCB, "WAI", Implied, func(c *CPU, _ AddressingMode) { c.reg.Waiting = true })
	def(0xEA, "NOP", Implied, func(c *CPU, _ AddressingMode) {})
	def(0x42, "WDM", Immediate, func(c *CPU, _ AddressingMode) { c.fetch8() })
}

// REP clears the status bits set in the operand; SEP sets them. Emulation
// mode hardwires the accumulator/index width flags to 8-bit regardless of
// what the operand requests.
func opREP(c *CPU, _ AddressingMode) {
	mask := c.fetch8()
	c.reg.P &= ^Status(mask)
	if c.reg.Emulation {
		c.reg.P.SetAccumSize8(true)
		c.reg.P.SetIndexSize8(true)
	}
}

func opSEP(c *CPU, _ AddressingMode) {
	mask := c.fetch8()
	c.reg.P |= Status(mask)
}

// opXCE swaps the carry flag and the emulation-mode flag. Entering
// emulation mode re-establishes its register-width invariants immediately.
func opXCE(c *CPU, _ AddressingMode) {
	oldCarry := c.reg.P.Carry()
	oldEmulation := c.reg.Emulation
	c.reg.P.SetCarry(oldEmulation)
	c.reg.Emulation = oldCarry
	if c.reg.Emulation {
		c.reg.P.SetAccumSize8(true)
		c.reg.P.SetIndexSize8(true)
		c.reg.S = 0x0100 | (c.reg.S & 0xFF)
		c.reg.X &= 0xFF
		c.reg.Y &= 0xFF
	}
}
