package w65c816

import "github.com/user-none/go-chip-snes/bus"

func registerMove() {
	registerLDA()
	registerLDXY()
	registerSTA()
	registerSTXY()
	registerSTZ()
	registerTransfers()
	def(0xEB, "XBA", Implied, opXBA)
	registerStack()
	registerBlockMove()
}

// --- LDA ---

func registerLDA() {
	def(0xA9, "LDA", Immediate, opLDA)
	def(0xA5, "LDA", Direct, opLDA)
	def(0xB5, "LDA", DirectX, opLDA)
	def(0xAD, "LDA", Absolute, opLDA)
	def(0xBD, "LDA", AbsoluteX, opLDA)
	def(0xB9, "LDA", AbsoluteY, opLDA)
	def(0xAF, "LDA", AbsoluteLong, opLDA)
	def(0xBF, "LDA", AbsoluteLongX, opLDA)
	def(0xA1, "LDA", IndirectX, opLDA)
	def(0xB1, "LDA", IndirectY, opLDA)
	def(0xB2, "LDA", Indirect, opLDA)
	def(0xA7, "LDA", IndirectLong, opLDA)
	def(0xB7, "LDA", IndirectLongY, opLDA)
	def(0xA3, "LDA", StackRelative, opLDA)
	def(0xB3, "LDA", StackRelativeIndirectY, opLDA)
}

func opLDA(c *CPU, mode AddressingMode) {
	if c.reg.P.AccumWide() {
		v := c.getOperand16(mode)
		c.reg.A = v
		c.reg.P.setNZ16(v)
	} else {
		v := c.getOperand8(mode)
		c.reg.A = c.reg.A&0xFF00 | uint16(v)
		c.reg.P.setNZ8(v)
	}
}

// --- LDX / LDY ---

func registerLDXY() {
	def(0xA2, "LDX", Immediate, opLDX)
	def(0xA6, "LDX", Direct, opLDX)
	def(0xB6, "LDX", DirectY, opLDX)
	def(0xAE, "LDX", Absolute, opLDX)
	def(0xBE, "LDX", AbsoluteY, opLDX)

	def(0xA0, "LDY", Immediate, opLDY)
	def(0xA4, "LDY", Direct, opLDY)
	def(0xB4, "LDY", DirectX, opLDY)
	def(0xAC, "LDY", Absolute, opLDY)
	def(0xBC, "LDY", AbsoluteX, opLDY)
}

func opLDX(c *CPU, mode AddressingMode) {
	if c.reg.P.IndexWide() {
		v := c.getOperand16(mode)
		c.reg.X = v
		c.reg.P.setNZ16(v)
	} else {
		v := c.getOperand8(mode)
		c.reg.X = uint16(v)
		c.reg.P.setNZ8(v)
	}
}

func opLDY(c *CPU, mode AddressingMode) {
	if c.reg.P.IndexWide() {
		v := c.getOperand16(mode)
		c.reg.Y = v
		c.reg.P.setNZ16(v)
	} else {
		v := c.getOperand8(mode)
		c.reg.Y = uint16(v)
		c.reg.P.setNZ8(v)
	}
}

// --- STA ---

func registerSTA() {
	def(0x85, "STA", Direct, opSTA)
	def(0x95, "STA", DirectX, opSTA)
	def(0x8D, "STA", Absolute, opSTA)
	def(0x9D, "STA", AbsoluteX, opSTA)
	def(0x99, "STA", AbsoluteY, opSTA)
	def(0x8F, "STA", AbsoluteLong, opSTA)
	def(0x9F, "STA", AbsoluteLongX, opSTA)
	def(0x81, "STA", IndirectX, opSTA)
	def(0x91, "STA", IndirectY, opSTA)
	def(0x92, "STA", Indirect, opSTA)
	def(0x87, "STA", IndirectLong, opSTA)
	def(0x97, "STA", IndirectLongY, opSTA)
	def(0x83, "STA", StackRelative, opSTA)
	def(0x93, "STA", StackRelativeIndirectY, opSTA)
}

func opSTA(c *CPU, mode AddressingMode) {
	addr := c.decodeAddress(mode, true)
	if c.reg.P.AccumWide() {
		c.write16(addr, c.reg.A)
	} else {
		c.write8(addr, uint8(c.reg.A))
	}
}

// --- STX / STY ---

func registerSTXY() {
	def(0x86, "STX", Direct, opSTX)
	def(0x96, "STX", DirectY, opSTX)
	def(0x8E, "STX", Absolute, opSTX)

	def(0x84, "STY", Direct, opSTY)
	def(0x94, "STY", DirectX, opSTY)
	def(0x8C, "STY", Absolute, opSTY)
}

func opSTX(c *CPU, mode AddressingMode) {
	addr := c.decodeAddress(mode, true)
	if c.reg.P.IndexWide() {
		c.write16(addr, c.reg.X)
	} else {
		c.write8(addr, uint8(c.reg.X))
	}
}

func opSTY(c *CPU, mode AddressingMode) {
	addr := c.decodeAddress(mode, true)
	if c.reg.P.IndexWide() {
		c.write16(addr, c.reg.Y)
	} else {
		c.write8(addr, uint8(c.reg.Y))
	}
}

// --- STZ ---

func registerSTZ() {
	def(0x64, "STZ", Direct, opSTZ)
	def(0x74, "STZ", DirectX, opSTZ)
	def(0x9C, "STZ", Absolute, opSTZ)
	def(0x9E, "STZ", AbsoluteX, opSTZ)
}

func opSTZ(c *CPU, mode AddressingMode) {
	addr := c.decodeAddress(mode, true)
	if c.reg.P.AccumWide() {
		c.write16(addr, 0)
	} else {
		c.write8(addr, 0)
	}
}

// --- Register transfers ---

func registerTransfers() {
	def(0xAA, "TAX", Implied, opTAX)
	def(0xA8, "TAY", Implied, opTAY)
	def(0x8A, "TXA", Implied, opTXA)
	def(0x98, "TYA", Implied, opTYA)
	def(0x9B, "TXY", Implied, opTXY)
	def(0xBB, "TYX", Implied, opTYX)
	def(0xBA, "TSX", Implied, opTSX)
	def(0x9A, "TXS", Implied, opTXS)
	def(0x5B, "TCD", Implied, opTCD)
	def(0x7B, "TDC", Implied, opTDC)
	def(0x1B, "TCS", Implied, opTCS)
	def(0x3B, "TSC", Implied, opTSC)
}

func opTAX(c *CPU, _ AddressingMode) {
	if c.reg.P.IndexWide() {
		c.reg.X = c.reg.A
		c.reg.P.setNZ16(c.reg.X)
	} else {
		c.reg.X = c.reg.A & 0xFF
		c.reg.P.setNZ8(uint8(c.reg.X))
	}
}

func opTAY(c *CPU, _ AddressingMode) {
	if c.reg.P.IndexWide() {
		c.reg.Y = c.reg.A
		c.reg.P.setNZ16(c.reg.Y)
	} else {
		c.reg.Y = c.reg.A & 0xFF
		c.reg.P.setNZ8(uint8(c.reg.Y))
	}
}

func opTXA(c *CPU, _ AddressingMode) {
	if c.reg.P.AccumWide() {
		c.reg.A = c.indexX()
		c.reg.P.setNZ16(c.reg.A)
	} else {
		v := uint8(c.indexX())
		c.reg.A = c.reg.A&0xFF00 | uint16(v)
		c.reg.P.setNZ8(v)
	}
}

func opTYA(c *CPU, _ AddressingMode) {
	if c.reg.P.AccumWide() {
		c.reg.A = c.indexY()
		c.reg.P.setNZ16(c.reg.A)
	} else {
		v := uint8(c.indexY())
		c.reg.A = c.reg.A&0xFF00 | uint16(v)
		c.reg.P.setNZ8(v)
	}
}

func opTXY(c *CPU, _ AddressingMode) {
	c.reg.Y = c.indexX()
	if c.reg.P.IndexWide() {
		c.reg.P.setNZ16(c.reg.Y)
	} else {
		c.reg.P.setNZ8(uint8(c.reg.Y))
	}
}

func opTYX(c *CPU, _ AddressingMode) {
	c.reg.X = c.indexY()
	if c.reg.P.IndexWide() {
		c.reg.P.setNZ16(c.reg.X)
	} else {
		c.reg.P.setNZ8(uint8(c.reg.X))
	}
}

func opTSX(c *CPU, _ AddressingMode) {
	if c.reg.P.IndexWide() {
		c.reg.X = c.reg.S
		c.reg.P.setNZ16(c.reg.X)
	} else {
		c.reg.X = c.reg.S & 0xFF
		c.reg.P.setNZ8(uint8(c.reg.X))
	}
}

// opTXS: in emulation mode the high byte of S stays forced to 0x01, so only
// the low byte transfers; in native mode the full 16-bit X moves across.
func opTXS(c *CPU, _ AddressingMode) {
	if c.reg.Emulation {
		c.reg.S = 0x0100 | c.indexX()&0xFF
	} else {
		c.reg.S = c.indexX()
	}
}

func opTCD(c *CPU, _ AddressingMode) {
	c.reg.D = c.reg.A
	c.reg.P.setNZ16(c.reg.D)
}

func opTDC(c *CPU, _ AddressingMode) {
	c.reg.A = c.reg.D
	c.reg.P.setNZ16(c.reg.A)
}

func opTCS(c *CPU, _ AddressingMode) {
	if c.reg.Emulation {
		c.reg.S = 0x0100 | c.reg.A&0xFF
	} else {
		c.reg.S = c.reg.A
	}
}

func opTSC(c *CPU, _ AddressingMode) {
	c.reg.A = c.reg.S
	c.reg.P.setNZ16(c.reg.A)
}

// --- XBA ---

func opXBA(c *CPU, _ AddressingMode) {
	lo := uint8(c.reg.A)
	hi := uint8(c.reg.A >> 8)
	c.reg.A = uint16(lo)<<8 | uint16(hi)
	c.reg.P.setNZ8(hi)
	c.bus.AddIOCycles(1)
}

// --- Stack pushes/pulls, PEA/PEI/PER ---

func registerStack() {
	def(0x48, "PHA", Implied, opPHA)
	def(0x68, "PLA", Implied, opPLA)
	def(0x8B, "PHB", Implied, opPHB)
	def(0xAB, "PLB", Implied, opPLB)
	def(0x0B, "PHD", Implied, opPHD)
	def(0x2B, "PLD", Implied, opPLD)
	def(0x4B, "PHK", Implied, opPHK)
	def(0x08, "PHP", Implied, opPHP)
	def(0x28, "PLP", Implied, opPLP)
	def(0xDA, "PHX", Implied, opPHX)
	def(0xFA, "PLX", Implied, opPLX)
	def(0x5A, "PHY", Implied, opPHY)
	def(0x7A, "PLY", Implied, opPLY)
	def(0xF4, "PEA", Absolute, opPEA)
	def(0xD4, "PEI", StackPEI, opPEI)
	def(0x62, "PER", RelativeLong, opPER)
}

func opPHA(c *CPU, _ AddressingMode) {
	if c.reg.P.AccumWide() {
		c.push16(c.reg.A)
	} else {
		c.push8(uint8(c.reg.A))
	}
}

func opPLA(c *CPU, _ AddressingMode) {
	if c.reg.P.AccumWide() {
		c.reg.A = c.pop16()
		c.reg.P.setNZ16(c.reg.A)
	} else {
		v := c.pop8()
		c.reg.A = c.reg.A&0xFF00 | uint16(v)
		c.reg.P.setNZ8(v)
	}
}

func opPHB(c *CPU, _ AddressingMode) { c.push8(c.reg.DBR) }
func opPLB(c *CPU, _ AddressingMode) {
	c.reg.DBR = c.pop8()
	c.reg.P.setNZ8(c.reg.DBR)
}
func opPHD(c *CPU, _ AddressingMode) { c.push16(c.reg.D) }
func opPLD(c *CPU, _ AddressingMode) {
	c.reg.D = c.pop16()
	c.reg.P.setNZ16(c.reg.D)
}
func opPHK(c *CPU, _ AddressingMode) { c.push8(c.reg.PBR) }

func opPHP(c *CPU, _ AddressingMode) { c.push8(uint8(c.reg.P)) }
func opPLP(c *CPU, _ AddressingMode) {
	c.reg.P = Status(c.pop8())
	if c.reg.Emulation {
		c.reg.P.SetAccumSize8(true)
		c.reg.P.SetIndexSize8(true)
	}
	if !c.reg.P.IndexWide() {
		c.reg.X &= 0xFF
		c.reg.Y &= 0xFF
	}
}

func opPHX(c *CPU, _ AddressingMode) {
	if c.reg.P.IndexWide() {
		c.push16(c.reg.X)
	} else {
		c.push8(uint8(c.reg.X))
	}
}
func opPLX(c *CPU, _ AddressingMode) {
	if c.reg.P.IndexWide() {
		c.reg.X = c.pop16()
		c.reg.P.setNZ16(c.reg.X)
	} else {
		v := c.pop8()
		c.reg.X = uint16(v)
		c.reg.P.setNZ8(v)
	}
}
func opPHY(c *CPU, _ AddressingMode) {
	if c.reg.P.IndexWide() {
		c.push16(c.reg.Y)
	} else {
		c.push8(uint8(c.reg.Y))
	}
}
func opPLY(c *CPU, _ AddressingMode) {
	if c.reg.P.IndexWide() {
		c.reg.Y = c.pop16()
		c.reg.P.setNZ16(c.reg.Y)
	} else {
		v := c.pop8()
		c.reg.Y = uint16(v)
		c.reg.P.setNZ8(v)
	}
}

func opPEA(c *CPU, _ AddressingMode) {
	c.push16(c.fetch16())
}

func opPEI(c *CPU, mode AddressingMode) {
	addr := c.decodeAddress(mode, false)
	c.push16(c.read16(addr))
}

func opPER(c *CPU, _ AddressingMode) {
	c.push16(c.relativeLongTarget())
}

// --- Block move ---

func registerBlockMove() {
	def(0x54, "MVN", BlockMove, opMVN)
	def(0x44, "MVP", BlockMove, opMVP)
}

// opMVN copies ascending bytes from (srcBank:X) to (dstBank:Y), decrementing
// A until it wraps from 0x0000 to 0xFFFF (n+1 copies for initial A=n).
func opMVN(c *CPU, _ AddressingMode) {
	dstBank := c.fetch8()
	srcBank := c.fetch8()
	c.reg.DBR = dstBank
	for {
		v := c.read8(bus.New(srcBank, c.reg.X))
		c.write8(bus.New(dstBank, c.reg.Y), v)
		c.reg.X++
		c.reg.Y++
		c.reg.A--
		c.bus.AddIOCycles(2)
		if c.reg.A == 0xFFFF {
			break
		}
	}
}

// opMVP copies descending bytes; same termination rule, opposite direction.
func opMVP(c *CPU, _ AddressingMode) {
	dstBank := c.fetch8()
	srcBank := c.fetch8()
	c.reg.DBR = dstBank
	for {
		v := c.read8(bus.New(srcBank, c.reg.X))
		c.write8(bus.New(dstBank, c.reg.Y), v)
		c.reg.X--
		c.reg.Y--
		c.reg.A--
		c.bus.AddIOCycles(2)
		if c.reg.A == 0xFFFF {
			break
		}
	}
}
