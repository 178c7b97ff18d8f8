package w65c816

func registerLogic() {
	registerAND()
	registerORA()
	registerEOR()
	registerBIT()
	registerShifts()
	registerTRBTSB()
}

func registerAND() {
	def(0x29, "AND", Immediate, opAND)
	def(0x25, "AND", Direct, opAND)
	def(0x35, "AND", DirectX, opAND)
	def(0x2D, "AND", Absolute, opAND)
	def(0x3D, "AND", AbsoluteX, opAND)
	def(0x39, "AND", AbsoluteY, opAND)
	def(0x2F, "AND", AbsoluteLong, opAND)
	def(0x3F, "AND", AbsoluteLongX, opAND)
	def(0x21, "AND", IndirectX, opAND)
	def(0x31, "AND", IndirectY, opAND)
	def(0x32, "AND", Indirect, opAND)
	def(0x27, "AND", IndirectLong, opAND)
	def(0x37, "AND", IndirectLongY, opAND)
	def(0x23, "AND", StackRelative, opAND)
	def(0x33, "AND", StackRelativeIndirectY, opAND)
}

func opAND(c *CPU, mode AddressingMode) {
	if c.reg.P.AccumWide() {
		v := c.reg.A & c.getOperand16(mode)
		c.reg.A = v
		c.reg.P.setNZ16(v)
	} else {
		v := uint8(c.reg.A) & c.getOperand8(mode)
		c.reg.A = c.reg.A&0xFF00 | uint16(v)
		c.reg.P.setNZ8(v)
	}
}

func registerORA() {
	def(0x09, "ORA", Immediate, opORA)
	def(0x05, "ORA", Direct, opORA)
	def(0x15, "ORA", DirectX, opORA)
	def(0x0D, "ORA", Absolute, opORA)
	def(0x1D, "ORA", AbsoluteX, opORA)
	def(0x19, "ORA", AbsoluteY, opORA)
	def(0x0F, "ORA", AbsoluteLong, opORA)
	def(0x1F, "ORA", AbsoluteLongX, opORA)
	def(0x01, "ORA", IndirectX, opORA)
	def(0x11, "ORA", IndirectY, opORA)
	def(0x12, "ORA", Indirect, opORA)
	def(0x07, "ORA", IndirectLong, opORA)
	def(0x17, "ORA", IndirectLongY, opORA)
	def(0x03, "ORA", StackRelative, opORA)
	def(0x13, "ORA", StackRelativeIndirectY, opORA)
}

func opORA(c *CPU, mode AddressingMode) {
	if c.reg.P.AccumWide() {
		v := c.reg.A | c.getOperand16(mode)
		c.reg.A = v
		c.reg.P.setNZ16(v)
	} else {
		v := uint8(c.reg.A) | c.getOperand8(mode)
		c.reg.A = c.reg.A&0xFF00 | uint16(v)
		c.reg.P.setNZ8(v)
	}
}

func registerEOR() {
	def(0x49, "EOR", Immediate, opEOR)
	def(0x45, "EOR", Direct, opEOR)
	def(0x55, "EOR", DirectX, opEOR)
	def(0x4D, "EOR", Absolute, opEOR)
	def(0x5D, "EOR", AbsoluteX, opEOR)
	def(0x59, "EOR", AbsoluteY, opEOR)
	def(0x4F, "EOR", AbsoluteLong, opEOR)
	def(0x5F, "EOR", AbsoluteLongX, opEOR)
	def(0x41, "EOR", IndirectX, opEOR)
	def(0x51, "EOR", IndirectY, opEOR)
	def(0x52, "EOR", Indirect, opEOR)
	def(0x47, "EOR", IndirectLong, opEOR)
	def(0x57, "EOR", IndirectLongY, opEOR)
	def(0x43, "EOR", StackRelative, opEOR)
	def(0x53, "EOR", StackRelativeIndirectY, opEOR)
}

func opEOR(c *CPU, mode AddressingMode) {
	if c.reg.P.AccumWide() {
		v := c.reg.A ^ c.getOperand16(mode)
		c.reg.A = v
		c.reg.P.setNZ16(v)
	} else {
		v := uint8(c.reg.A) ^ c.getOperand8(mode)
		c.reg.A = c.reg.A&0xFF00 | uint16(v)
		c.reg.P.setNZ8(v)
	}
}

// --- BIT ---

func registerBIT() {
	def(0x89, "BIT", Immediate, opBIT)
	def(0x24, "BIT", Direct, opBIT)
	def(0x34, "BIT", DirectX, opBIT)
	def(0x2C, "BIT", Absolute, opBIT)
	def(0x3C, "BIT", AbsoluteX, opBIT)
}

// opBIT sets N and V from the operand and Z from A&operand, except in
// immediate mode where only Z is affected (spec §4.3).
func opBIT(c *CPU, mode AddressingMode) {
	if c.reg.P.AccumWide() {
		operand := c.getOperand16(mode)
		result := c.reg.A & operand
		if mode != Immediate {
			c.reg.P.SetNegative(operand&0x8000 != 0)
			c.reg.P.SetOverflow(operand&0x4000 != 0)
		}
		c.reg.P.SetZero(result == 0)
	} else {
		operand := c.getOperand8(mode)
		result := uint8(c.reg.A) & operand
		if mode != Immediate {
			c.reg.P.SetNegative(operand&0x80 != 0)
			c.reg.P.SetOverflow(operand&0x40 != 0)
		}
		c.reg.P.SetZero(result == 0)
	}
}

// --- ASL / LSR / ROL / ROR ---

func registerShifts() {
	def(0x0A, "ASL", Accumulator, opASL)
	def(0x06, "ASL", Direct, opASL)
	def(0x16, "ASL", DirectX, opASL)
	def(0x0E, "ASL", Absolute, opASL)
	def(0x1E, "ASL", AbsoluteX, opASL)

	def(0x4A, "LSR", Accumulator, opLSR)
	def(0x46, "LSR", Direct, opLSR)
	def(0x56, "LSR", DirectX, opLSR)
	def(0x4E, "LSR", Absolute, opLSR)
	def(0x5E, "LSR", AbsoluteX, opLSR)

	def(0x2A, "ROL", Accumulator, opROL)
	def(0x26, "ROL", Direct, opROL)
	def(0x36, "ROL", DirectX, opROL)
	def(0x2E, "ROL", Absolute, opROL)
	def(0x3E, "ROL", AbsoluteX, opROL)

	def(0x6A, "ROR", Accumulator, opROR)
	def(0x66, "ROR", Direct, opROR)
	def(0x76, "ROR", DirectX, opROR)
	def(0x6E, "ROR", Absolute, opROR)
	def(0x7E, "ROR", AbsoluteX, opROR)
}

func opASL(c *CPU, mode AddressingMode) {
	if c.reg.P.AccumWide() {
		rmw16(c, mode, func(v uint16) uint16 {
			c.reg.P.SetCarry(v&0x8000 != 0)
			result := v << 1
			c.reg.P.setNZ16(result)
			return result
		})
	} else {
		rmw8(c, mode, func(v uint8) uint8 {
			c.reg.P.SetCarry(v&0x80 != 0)
			result := v << 1
			c.reg.P.setNZ8(result)
			return result
		})
	}
}

func opLSR(c *CPU, mode AddressingMode) {
	if c.reg.P.AccumWide() {
		rmw16(c, mode, func(v uint16) uint16 {
			c.reg.P.SetCarry(v&1 != 0)
			result := v >> 1
			c.reg.P.setNZ16(result)
			return result
		})
	} else {
		rmw8(c, mode, func(v uint8) uint8 {
			c.reg.P.SetCarry(v&1 != 0)
			result := v >> 1
			c.reg.P.setNZ8(result)
			return result
		})
	}
}

func opROL(c *CPU, mode AddressingMode) {
	var carryIn8 uint8
	var carryIn16 uint16
	if c.reg.P.Carry() {
		carryIn8 = 1
		carryIn16 = 1
	}
	if c.reg.P.AccumWide() {
		rmw16(c, mode, func(v uint16) uint16 {
			newCarry := v&0x8000 != 0
			result := v<<1 | carryIn16
			c.reg.P.SetCarry(newCarry)
			c.reg.P.setNZ16(result)
			return result
		})
	} else {
		rmw8(c, mode, func(v uint8) uint8 {
			newCarry := v&0x80 != 0
			result := v<<1 | carryIn8
			c.reg.P.SetCarry(newCarry)
			c.reg.P.setNZ8(result)
			return result
		})
	}
}

func opROR(c *CPU, mode AddressingMode) {
	var carryIn8 uint8
	var carryIn16 uint16
	if c.reg.P.Carry() {
		carryIn8 = 1 << 7
		carryIn16 = 1 << 15
	}
	if c.reg.P.AccumWide() {
		rmw16(c, mode, func(v uint16) uint16 {
			newCarry := v&1 != 0
			result := v>>1 | carryIn16
			c.reg.P.SetCarry(newCarry)
			c.reg.P.setNZ16(result)
			return result
		})
	} else {
		rmw8(c, mode, func(v uint8) uint8 {
			newCarry := v&1 != 0
			result := v>>1 | carryIn8
			c.reg.P.SetCarry(newCarry)
			c.reg.P.setNZ8(result)
			return result
		})
	}
}

// rmw8/rmw16 decode the effective address once (or read the accumulator),
// run f over the current value, and write the result back to wherever it
// came from, charging the modify-phase I/O cycle per spec §4.3.
func rmw8(c *CPU, mode AddressingMode, f func(uint8) uint8) {
	if mode == Accumulator {
		c.bus.AddIOCycles(1)
		result := f(uint8(c.reg.A))
		c.reg.A = c.reg.A&0xFF00 | uint16(result)
		return
	}
	addr := c.decodeAddress(mode, true)
	v := c.read8(addr)
	c.bus.AddIOCycles(1)
	c.write8(addr, f(v))
}

func rmw16(c *CPU, mode AddressingMode, f func(uint16) uint16) {
	if mode == Accumulator {
		c.bus.AddIOCycles(1)
		c.reg.A = f(c.reg.A)
		return
	}
	addr := c.decodeAddress(mode, true)
	v := c.read16(addr)
	c.bus.AddIOCycles(1)
	c.write16(addr, f(v))
}

// --- TRB / TSB ---

func registerTRBTSB() {
	def(0x14, "TRB", Direct, opTRB)
	def(0x1C, "TRB", Absolute, opTRB)
	def(0x04, "TSB", Direct, opTSB)
	def(0x0C, "TSB", Absolute, opTSB)
}

func opTRB(c *CPU, mode AddressingMode) {
	addr := c.decodeAddress(mode, true)
	c.bus.AddIOCycles(1)
	if c.reg.P.AccumWide() {
		v := c.read16(addr)
		c.reg.P.SetZero(v&c.reg.A == 0)
		c.write16(addr, v&^c.reg.A)
	} else {
		v := c.read8(addr)
		a := uint8(c.reg.A)
		c.reg.P.SetZero(v&a == 0)
		c.write8(addr, v&^a)
	}
}

func opTSB(c *CPU, mode AddressingMode) {
	addr := c.decodeAddress(mode, true)
	c.bus.AddIOCycles(1)
	if c.reg.P.AccumWide() {
		v := c.read16(addr)
		c.reg.P.SetZero(v&c.reg.A == 0)
		c.write16(addr, v|c.reg.A)
	} else {
		v := c.read8(addr)
		a := uint8(c.reg.A)
		c.reg.P.SetZero(v&a == 0)
		c.write8(addr, v|a)
	}
}
