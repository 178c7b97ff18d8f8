package w65c816

func registerArith() {
	registerADC()
	registerSBC()
	registerINCDEC()
	registerCompares()
}

// --- ADC ---

func registerADC() {
	def(0x69, "ADC", Immediate, opADC)
	def(0x65, "ADC", Direct, opADC)
	def(0x75, "ADC", DirectX, opADC)
	def(0x6D, "ADC", Absolute, opADC)
	def(0x7D, "ADC", AbsoluteX, opADC)
	def(0x79, "ADC", AbsoluteY, opADC)
	def(0x6F, "ADC", AbsoluteLong, opADC)
	def(0x7F, "ADC", AbsoluteLongX, opADC)
	def(0x61, "ADC", IndirectX, opADC)
	def(0x71, "ADC", IndirectY, opADC)
	def(0x72, "ADC", Indirect, opADC)
	def(0x67, "ADC", IndirectLong, opADC)
	def(0x77, "ADC", IndirectLongY, opADC)
	def(0x63, "ADC", StackRelative, opADC)
	def(0x73, "ADC", StackRelativeIndirectY, opADC)
}

func opADC(c *CPU, mode AddressingMode) {
	if c.reg.P.AccumWide() {
		operand := c.getOperand16(mode)
		if c.reg.P.Decimal() {
			c.decAdc16(operand)
		} else {
			c.binAdc16(operand)
		}
	} else {
		operand := c.getOperand8(mode)
		if c.reg.P.Decimal() {
			c.decAdc8(operand)
		} else {
			c.binAdc8(operand)
		}
	}
}

func (c *CPU) binAdc16(operand uint16) {
	src := uint32(c.reg.A)
	op := uint32(operand)
	var carry uint32
	if c.reg.P.Carry() {
		carry = 1
	}
	result := src + op + carry
	isOverflow := ^(src^op)&(src^result)&(1<<15) != 0
	c.reg.P.SetCarry(result>>16 != 0)
	c.reg.P.SetOverflow(isOverflow)
	c.reg.A = uint16(result)
	c.reg.P.setNZ16(c.reg.A)
}

func (c *CPU) binAdc8(operand uint8) {
	src := uint32(c.reg.A & 0xFF)
	op := uint32(operand)
	var carry uint32
	if c.reg.P.Carry() {
		carry = 1
	}
	result := src + op + carry
	isOverflow := ^(src^op)&(src^result)&(1<<7) != 0
	c.reg.P.SetCarry(result>>8 != 0)
	c.reg.P.SetOverflow(isOverflow)
	lo := uint8(result)
	c.reg.A = c.reg.A&0xFF00 | uint16(lo)
	c.reg.P.setNZ8(lo)
}

// decAdc16/decAdc8 perform packed-BCD addition nibble by nibble, sampling
// overflow on the uncorrected result before the final top-nibble decimal
// adjust (spec §4.3).
func (c *CPU) decAdc16(operand uint16) {
	src := uint32(c.reg.A)
	op := uint32(operand)
	var carry uint32
	if c.reg.P.Carry() {
		carry = 1
	}
	result := (src & 0xF) + (op & 0xF) + carry
	if result > 9 {
		result += 6
	}
	result = (src & 0xF0) + (op & 0xF0) + (result & 0xF) + boolU32(result>0xF)<<4
	if result > 0x9F {
		result += 0x60
	}
	result = (src & 0xF00) + (op & 0xF00) + (result & 0xFF) + boolU32(result>0xFF)<<8
	if result > 0x9FF {
		result += 0x600
	}
	result = (src & 0xF000) + (op & 0xF000) + (result & 0xFFF) + boolU32(result>0xFFF)<<12
	isOverflow := ^(src^op)&(src^result)&(1<<15) != 0
	c.reg.P.SetOverflow(isOverflow)
	if result > 0x9FFF {
		result += 0x6000
	}
	c.reg.P.SetCarry(result>>16 != 0)
	c.reg.A = uint16(result)
	c.reg.P.setNZ16(c.reg.A)
}

func (c *CPU) decAdc8(operand uint8) {
	src := uint32(c.reg.A & 0xFF)
	op := uint32(operand)
	var carry uint32
	if c.reg.P.Carry() {
		carry = 1
	}
	result := (src & 0xF) + (op & 0xF) + carry
	if result > 9 {
		result += 6
	}
	result = (src & 0xF0) + (op & 0xF0) + (result & 0xF) + boolU32(result>0xF)<<4
	isOverflow := ^(src^op)&(src^result)&(1<<7) != 0
	c.reg.P.SetOverflow(isOverflow)
	if result > 0x9F {
		result += 0x60
	}
	c.reg.P.SetCarry(result>>8 != 0)
	lo := uint8(result)
	c.reg.A = c.reg.A&0xFF00 | uint16(lo)
	c.reg.P.setNZ8(lo)
}

func boolU32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func boolI32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// --- SBC ---

func registerSBC() {
	def(0xE9, "SBC", Immediate, opSBC)
	def(0xE5, "SBC", Direct, opSBC)
	def(0xF5, "SBC", DirectX, opSBC)
	def(0xED, "SBC", Absolute, opSBC)
	def(0xFD, "SBC", AbsoluteX, opSBC)
	def(0xF9, "SBC", AbsoluteY, opSBC)
	def(0xEF, "SBC", AbsoluteLong, opSBC)
	def(0xFF, "SBC", AbsoluteLongX, opSBC)
	def(0xE1, "SBC", IndirectX, opSBC)
	def(0xF1, "SBC", IndirectY, opSBC)
	def(0xF2, "SBC", Indirect, opSBC)
	def(0xE7, "SBC", IndirectLong, opSBC)
	def(0xF7, "SBC", IndirectLongY, opSBC)
	def(0xE3, "SBC", StackRelative, opSBC)
	def(0xF3, "SBC", StackRelativeIndirectY, opSBC)
}

func opSBC(c *CPU, mode AddressingMode) {
	if c.reg.P.AccumWide() {
		operand := c.getOperand16(mode)
		if c.reg.P.Decimal() {
			c.decSbc16(operand)
		} else {
			c.binAdc16(^operand)
		}
	} else {
		operand := c.getOperand8(mode)
		if c.reg.P.Decimal() {
			c.decSbc8(operand)
		} else {
			c.binAdc8(^operand)
		}
	}
}

// decSbc16/decSbc8 operate on the one's complement of the operand, applying
// -6 corrections instead of +6 (spec §4.3).
func (c *CPU) decSbc16(operand uint16) {
	src := int32(c.reg.A)
	op := int32(^operand)
	carry := boolI32(c.reg.P.Carry())
	result := (src & 0xF) + (op & 0xF) + carry
	if result <= 0xF {
		result -= 6
	}
	result = (src & 0xF0) + (op & 0xF0) + (result & 0xF) + boolI32(result>0xF)<<4
	if result <= 0xFF {
		result -= 0x60
	}
	result = (src & 0xF00) + (op & 0xF00) + (result & 0xFF) + boolI32(result>0xFF)<<8
	if result <= 0xFFF {
		result -= 0x600
	}
	result = (src & 0xF000) + (op & 0xF000) + (result & 0xFFF) + boolI32(result>0xFFF)<<12
	isOverflow := ^(src^op)&(src^result)&(1<<15) != 0
	c.reg.P.SetOverflow(isOverflow)
	if result <= 0xFFFF {
		result -= 0x6000
	}
	c.reg.P.SetCarry(result > 0xFFFF)
	c.reg.A = uint16(result)
	c.reg.P.setNZ16(c.reg.A)
}

func (c *CPU) decSbc8(operand uint8) {
	src := int32(c.reg.A & 0xFF)
	op := int32(^operand) & 0xFF
	carry := boolI32(c.reg.P.Carry())
	result := (src & 0xF) + (op & 0xF) + carry
	if result <= 0xF {
		result -= 6
	}
	result = (src & 0xF0) + (op & 0xF0) + (result & 0xF) + boolI32(result>0xF)<<4
	isOverflow := ^(src^op)&(src^result)&(1<<7) != 0
	c.reg.P.SetOverflow(isOverflow)
	if result <= 0xFF {
		result -= 0x60
	}
	c.reg.P.SetCarry(result > 0xFF)
	lo := uint8(result)
	c.reg.A = c.reg.A&0xFF00 | uint16(lo)
	c.reg.P.setNZ8(lo)
}

// --- INC / DEC ---

func registerINCDEC() {
	def(0x1A, "INC", Accumulator, opINCA)
	def(0xE6, "INC", Direct, opINCMem)
	def(0xF6, "INC", DirectX, opINCMem)
	def(0xEE, "INC", Absolute, opINCMem)
	def(0xFE, "INC", AbsoluteX, opINCMem)

	def(0x3A, "DEC", Accumulator, opDECA)
	def(0xC6, "DEC", Direct, opDECMem)
	def(0xD6, "DEC", DirectX, opDECMem)
	def(0xCE, "DEC", Absolute, opDECMem)
	def(0xDE, "DEC", AbsoluteX, opDECMem)

	def(0xE8, "INX", Implied, opINX)
	def(0xC8, "INY", Implied, opINY)
	def(0xCA, "DEX", Implied, opDEX)
	def(0x88, "DEY", Implied, opDEY)
}

func opINCA(c *CPU, _ AddressingMode) {
	c.bus.AddIOCycles(1)
	if c.reg.P.AccumWide() {
		c.reg.A++
		c.reg.P.setNZ16(c.reg.A)
	} else {
		v := uint8(c.reg.A) + 1
		c.reg.A = c.reg.A&0xFF00 | uint16(v)
		c.reg.P.setNZ8(v)
	}
}

func opINCMem(c *CPU, mode AddressingMode) {
	addr := c.decodeAddress(mode, true)
	c.bus.AddIOCycles(1)
	if c.reg.P.AccumWide() {
		v := c.read16(addr) + 1
		c.write16(addr, v)
		c.reg.P.setNZ16(v)
	} else {
		v := c.read8(addr) + 1
		c.write8(addr, v)
		c.reg.P.setNZ8(v)
	}
}

func opDECA(c *CPU, _ AddressingMode) {
	c.bus.AddIOCycles(1)
	if c.reg.P.AccumWide() {
		c.reg.A--
		c.reg.P.setNZ16(c.reg.A)
	} else {
		v := uint8(c.reg.A) - 1
		c.reg.A = c.reg.A&0xFF00 | uint16(v)
		c.reg.P.setNZ8(v)
	}
}

func opDECMem(c *CPU, mode AddressingMode) {
	addr := c.decodeAddress(mode, true)
	c.bus.AddIOCycles(1)
	if c.reg.P.AccumWide() {
		v := c.read16(addr) - 1
		c.write16(addr, v)
		c.reg.P.setNZ16(v)
	} else {
		v := c.read8(addr) - 1
		c.write8(addr, v)
		c.reg.P.setNZ8(v)
	}
}

func opINX(c *CPU, _ AddressingMode) {
	if c.reg.P.IndexWide() {
		c.reg.X++
		c.reg.P.setNZ16(c.reg.X)
	} else {
		v := uint8(c.reg.X) + 1
		c.reg.X = uint16(v)
		c.reg.P.setNZ8(v)
	}
}

func opINY(c *CPU, _ AddressingMode) {
	if c.reg.P.IndexWide() {
		c.reg.Y++
		c.reg.P.setNZ16(c.reg.Y)
	} else {
		v := uint8(c.reg.Y) + 1
		c.reg.Y = uint16(v)
		c.reg.P.setNZ8(v)
	}
}

func opDEX(c *CPU, _ AddressingMode) {
	if c.reg.P.IndexWide() {
		c.reg.X--
		c.reg.P.setNZ16(c.reg.X)
	} else {
		v := uint8(c.reg.X) - 1
		c.reg.X = uint16(v)
		c.reg.P.setNZ8(v)
	}
}

func opDEY(c *CPU, _ AddressingMode) {
	if c.reg.P.IndexWide() {
		c.reg.Y--
		c.reg.P.setNZ16(c.reg.Y)
	} else {
		v := uint8(c.reg.Y) - 1
		c.reg.Y = uint16(v)
		c.reg.P.setNZ8(v)
	}
}

// --- CMP / CPX / CPY ---

func registerCompares() {
	def(0xC9, "CMP", Immediate, opCMP)
	def(0xC5, "CMP", Direct, opCMP)
	def(0xD5, "CMP", DirectX, opCMP)
	def(0xCD, "CMP", Absolute, opCMP)
	def(0xDD, "CMP", AbsoluteX, opCMP)
	def(0xD9, "CMP", AbsoluteY, opCMP)
	def(0xCF, "CMP", AbsoluteLong, opCMP)
	def(0xDF, "CMP", AbsoluteLongX, opCMP)
	def(0xC1, "CMP", IndirectX, opCMP)
	def(0xD1, "CMP", IndirectY, opCMP)
	def(0xD2, "CMP", Indirect, opCMP)
	def(0xC7, "CMP", IndirectLong, opCMP)
	def(0xD7, "CMP", IndirectLongY, opCMP)
	def(0xC3, "CMP", StackRelative, opCMP)
	def(0xD3, "CMP", StackRelativeIndirectY, opCMP)

	def(0xE0, "CPX", Immediate, opCPX)
	def(0xE4, "CPX", Direct, opCPX)
	def(0xEC, "CPX", Absolute, opCPX)

	def(0xC0, "CPY", Immediate, opCPY)
	def(0xC4, "CPY", Direct, opCPY)
	def(0xCC, "CPY", Absolute, opCPY)
}

func opCMP(c *CPU, mode AddressingMode) {
	if c.reg.P.AccumWide() {
		operand := c.getOperand16(mode)
		result := c.reg.A - operand
		c.reg.P.SetCarry(c.reg.A >= operand)
		c.reg.P.setNZ16(result)
	} else {
		operand := c.getOperand8(mode)
		src := uint8(c.reg.A)
		result := src - operand
		c.reg.P.SetCarry(src >= operand)
		c.reg.P.setNZ8(result)
	}
}

func opCPX(c *CPU, mode AddressingMode) {
	if c.reg.P.IndexWide() {
		operand := c.getOperand16(mode)
		result := c.reg.X - operand
		c.reg.P.SetCarry(c.reg.X >= operand)
		c.reg.P.setNZ16(result)
	} else {
		operand := c.getOperand8(mode)
		src := uint8(c.reg.X)
		result := src - operand
		c.reg.P.SetCarry(src >= operand)
		c.reg.P.setNZ8(result)
	}
}

func opCPY(c *CPU, mode AddressingMode) {
	if c.reg.P.IndexWide() {
		operand := c.getOperand16(mode)
		result := c.reg.Y - operand
		c.reg.P.SetCarry(c.reg.Y >= operand)
		c.reg.P.setNZ16(result)
	} else {
		operand := c.getOperand8(mode)
		src := uint8(c.reg.Y)
		result := src - operand
		c.reg.P.SetCarry(src >= operand)
		c.reg.P.setNZ8(result)
	}
}
