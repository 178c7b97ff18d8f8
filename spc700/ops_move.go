package spc700

func registerMove() {
	load := func(code uint8, mode AddressingMode, set func(*CPU, uint8)) {
		def(code, "MOV", mode, func(c *CPU, m AddressingMode) {
			v := c.operand8(m)
			set(c, v)
			c.reg.PSW.setNZ(v)
		})
	}
	store := func(code uint8, mode AddressingMode, get func(*CPU) uint8) {
		def(code, "MOV", mode, func(c *CPU, m AddressingMode) {
			c.writeOperand8(m, get(c))
		})
	}
	setA := func(c *CPU, v uint8) { c.reg.A = v }
	setX := func(c *CPU, v uint8) { c.reg.X = v }
	setY := func(c *CPU, v uint8) { c.reg.Y = v }
	getA := func(c *CPU) uint8 { return c.reg.A }
	getX := func(c *CPU) uint8 { return c.reg.X }
	getY := func(c *CPU) uint8 { return c.reg.Y }

	load(0xE8, Immediate, setA)
	load(0xE4, DirectPage, setA)
	load(0xF4, DirectX, setA)
	load(0xE5, Absolute, setA)
	load(0xF5, AbsoluteX, setA)
	load(0xF6, AbsoluteY, setA)
	load(0xE6, IndirectX, setA)
	load(0xBF, DirectXPostIncrement, setA)
	load(0xE7, XIndirect, setA)
	load(0xF7, DirectPageIndirectY, setA)

	load(0xCD, Immediate, setX)
	load(0xF8, DirectPage, setX)
	load(0xF9, DirectY, setX)
	load(0xE9, Absolute, setX)

	load(0x8D, Immediate, setY)
	load(0xEB, DirectPage, setY)
	load(0xFB, DirectX, setY)
	load(0xEC, Absolute, setY)

	def(0x7D, "MOV", Implied, func(c *CPU, _ AddressingMode) { c.reg.A = c.reg.X; c.reg.PSW.setNZ(c.reg.A) })
	def(0x5D, "MOV", Implied, func(c *CPU, _ AddressingMode) { c.reg.X = c.reg.A; c.reg.PSW.setNZ(c.reg.X) })
	def(0xDD, "MOV", Implied, func(c *CPU, _ AddressingMode) { c.reg.A = c.reg.Y; c.reg.PSW.setNZ(c.reg.A) })
	def(0xFD, "MOV", Implied, func(c *CPU, _ AddressingMode) { c.reg.Y = c.reg.A; c.reg.PSW.setNZ(c.reg.Y) })
	def(0x9D, "MOV", Implied, func(c *CPU, _ AddressingMode) { c.reg.X = c.reg.SP; c.reg.PSW.setNZ(c.reg.X) })
	def(0xBD, "MOV", Implied, func(c *CPU, _ AddressingMode) { c.reg.SP = c.reg.X }) // no flags: dest is SP

	store(0xC4, DirectPage, getA)
	store(0xD4, DirectX, getA)
	store(0xC5, Absolute, getA)
	store(0xD5, AbsoluteX, getA)
	store(0xD6, AbsoluteY, getA)
	store(0xC6, IndirectX, getA)
	store(0xAF, DirectXPostIncrement, getA)
	store(0xC7, XIndirect, getA)
	store(0xD7, DirectPageIndirectY, getA)

	store(0xD8, DirectPage, getX)
	store(0xD9, DirectY, getX)
	store(0xC9, Absolute, getX)

	store(0xCB, DirectPage, getY)
	store(0xDB, DirectX, getY)
	store(0xCC, Absolute, getY)

	def(0x8F, "MOV", Implied, func(c *CPU, _ AddressingMode) {
		imm := c.fetch8()
		off := c.fetch8()
		c.write8(c.directAddr(off), imm)
	})
	def(0xFA, "MOV", Implied, func(c *CPU, _ AddressingMode) {
		src := c.fetch8()
		dst := c.fetch8()
		v := c.read8(c.directAddr(src))
		c.bus.AddIOCycles(1)
		c.write8(c.directAddr(dst), v)
	})

	def(0x0D, "PUSH", RegPSW, opPush)
	def(0x2D, "PUSH", Accumulator, opPush)
	def(0x4D, "PUSH", RegX, opPush)
	def(0x6D, "PUSH", RegY, opPush)
	def(0x8E, "POP", RegPSW, opPop)
	def(0xAE, "POP", Accumulator, opPop)
	def(0xCE, "POP", RegX, opPop)
	def(0xEE, "POP", RegY, opPop)
}

func opPush(c *CPU, mode AddressingMode) {
	c.bus.AddIOCycles(1)
	c.push8(c.operand8(mode))
}

func opPop(c *CPU, mode AddressingMode) {
	c.bus.AddIOCycles(1)
	c.writeOperand8(mode, c.pop8())
}
