package spc700

// registerBit wires the bit-indexed instruction families (SET1/CLR1,
// BBS/BBC, TCALL) as single handlers parameterized by a runtime bit or
// table index, plus the carry-bit boolean ops (OR1/AND1/EOR1/MOV1/NOT1).
func registerBit() {
	for bit := uint8(0); bit < 8; bit++ {
		bit := bit
		setOp := 0x02 + bit<<5
		clrOp := 0x12 + bit<<5
		bbsOp := 0x03 + bit<<5
		bbcOp := 0x13 + bit<<5

		def(setOp, "SET1", DirectPage, func(c *CPU, _ AddressingMode) {
			off := c.fetch8()
			c.setMemBit(c.directAddr(off), bit, true)
		})
		def(clrOp, "CLR1", DirectPage, func(c *CPU, _ AddressingMode) {
			off := c.fetch8()
			c.setMemBit(c.directAddr(off), bit, false)
		})
		def(bbsOp, "BBS", DirectPage, func(c *CPU, _ AddressingMode) {
			off := c.fetch8()
			set := c.memBit(c.directAddr(off), bit)
			branch(c, set)
		})
		def(bbcOp, "BBC", DirectPage, func(c *CPU, _ AddressingMode) {
			off := c.fetch8()
			clear := !c.memBit(c.directAddr(off), bit)
			branch(c, clear)
		})
	}

	for n := uint8(0); n < 16; n++ {
		n := n
		def(0x01+n<<4, "TCALL", Implied, func(c *CPU, _ AddressingMode) {
			vec := uint16(0xFFDE) - 2*uint16(n)
			target := c.read16(vec)
			c.push16(c.reg.PC)
			c.reg.PC = target
		})
	}

	def(0x0A, "OR1", AbsoluteBooleanBit, func(c *CPU, _ AddressingMode) {
		addr, bit := decodeBooleanBit(c.fetch16())
		c.reg.PSW.SetCarry(c.reg.PSW.Carry() || c.memBit(addr, bit))
	})
	def(0x2A, "OR1", AbsoluteBooleanBit, func(c *CPU, _ AddressingMode) {
		addr, bit := decodeBooleanBit(c.fetch16())
		c.reg.PSW.SetCarry(c.reg.PSW.Carry() || !c.memBit(addr, bit))
	})
	def(0x4A, "AND1", AbsoluteBooleanBit, func(c *CPU, _ AddressingMode) {
		addr, bit := decodeBooleanBit(c.fetch16())
		c.reg.PSW.SetCarry(c.reg.PSW.Carry() && c.memBit(addr, bit))
	})
	def(0x6A, "AND1", AbsoluteBooleanBit, func(c *CPU, _ AddressingMode) {
		addr, bit := decodeBooleanBit(c.fetch16())
		c.reg.PSW.SetCarry(c.reg.PSW.Carry() && !c.memBit(addr, bit))
	})
	def(0x8A, "EOR1", AbsoluteBooleanBit, func(c *CPU, _ AddressingMode) {
		addr, bit := decodeBooleanBit(c.fetch16())
		c.reg.PSW.SetCarry(c.reg.PSW.Carry() != c.memBit(addr, bit))
	})
	def(0xAA, "MOV1", AbsoluteBooleanBit, func(c *CPU, _ AddressingMode) {
		addr, bit := decodeBooleanBit(c.fetch16())
		c.reg.PSW.SetCarry(c.memBit(addr, bit))
	})
	def(0xCA, "MOV1", AbsoluteBooleanBit, func(c *CPU, _ AddressingMode) {
		addr, bit := decodeBooleanBit(c.fetch16())
		c.setMemBit(addr, bit, c.reg.PSW.Carry())
	})
	def(0xEA, "NOT1", AbsoluteBooleanBit, func(c *CPU, _ AddressingMode) {
		addr, bit := decodeBooleanBit(c.fetch16())
		c.setMemBit(addr, bit, !c.memBit(addr, bit))
	})
}
