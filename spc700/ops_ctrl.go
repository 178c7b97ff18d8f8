package spc700

func registerCtrl() {
	def(0x60, "CLRC", Implied, func(c *CPU, _ AddressingMode) { c.reg.PSW.SetCarry(false) })
	def(0x80, "SETC", Implied, func(c *CPU, _ AddressingMode) { c.reg.PSW.SetCarry(true) })
	def(0xED, "NOTC", Implied, func(c *CPU, _ AddressingMode) { c.reg.PSW.SetCarry(!c.reg.PSW.Carry()) })
	def(0xE0, "CLRV", Implied, func(c *CPU, _ AddressingMode) {
		c.reg.PSW.SetOverflow(false)
		c.reg.PSW.SetHalfCarry(false)
	})
	def(0x20, "CLRP", Implied, func(c *CPU, _ AddressingMode) { c.reg.PSW.SetDirectPage(false) })
	def(0x40, "SETP", Implied, func(c *CPU, _ AddressingMode) { c.reg.PSW.SetDirectPage(true) })
	def(0xA0, "EI", Implied, func(c *CPU, _ AddressingMode) { c.reg.PSW.SetIRQEnabled(true) })
	def(0xC0, "DI", Implied, func(c *CPU, _ AddressingMode) { c.reg.PSW.SetIRQEnabled(false) })
	def(0x00, "NOP", Implied, func(c *CPU, _ AddressingMode) {})

	// SLEEP and STOP both halt fetch/dispatch; this bus never wakes either
	// one with an interrupt, so the two are indistinguishable here.
	def(0xEF, "SLEEP", Implied, func(c *CPU, _ AddressingMode) { c.reg.Stopped = true })
	def(0xFF, "STOP", Implied, func(c *CPU, _ AddressingMode) { c.reg.Stopped = true })
}
