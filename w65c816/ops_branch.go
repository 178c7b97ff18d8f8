package w65c816

import "github.com/user-none/go-chip-snes/bus"

func registerBranch() {
	def(0x10, "BPL", Relative, func(c *CPU, _ AddressingMode) { branch(c, !c.reg.P.Negative()) })
	def(0x30, "BMI", Relative, func(c *CPU, _ AddressingMode) { branch(c, c.reg.P.Negative()) })
	def(0x50, "BVC", Relative, func(c *CPU, _ AddressingMode) { branch(c, !c.reg.P.Overflow()) })
	def(0x70, "BVS", Relative, func(c *CPU, _ AddressingMode) { branch(c, c.reg.P.Overflow()) })
	def(0x90, "BCC", Relative, func(c *CPU, _ AddressingMode) { branch(c, !c.reg.P.Carry()) })
	def(0xB0, "BCS", Relative, func(c *CPU, _ AddressingMode) { branch(c, c.reg.P.Carry()) })
	def(0xD0, "BNE", Relative, func(c *CPU, _ AddressingMode) { branch(c, !c.reg.P.Zero()) })
	def(0xF0, "BEQ", Relative, func(c *CPU, _ AddressingMode) { branch(c, c.reg.P.Zero()) })
	def(0x80, "BRA", Relative, func(c *CPU, _ AddressingMode) { branch(c, true) })
	def(0x82, "BRL", RelativeLong, opBRL)

	def(0x4C, "JMP", Absolute, opJMPAbsolute)
	def(0x5C, "JML", AbsoluteLong, opJMPAbsoluteLong)
	def(0x6C, "JMP", AbsoluteIndirect, opJMPIndirect)
	def(0x7C, "JMP", AbsoluteIndirectX, opJMPIndirectX)
	def(0xDC, "JML", AbsoluteIndirectLong, opJMPIndirectLong)

	def(0x20, "JSR", Absolute, opJSR)
	def(0x22, "JSL", AbsoluteLong, opJSL)
	def(0xFC, "JSR", AbsoluteIndirectX, opJSRIndirectX)

	def(0x60, "RTS", Implied, opRTS)
	def(0x6B, "RTL", Implied, opRTL)
	def(0x40, "RTI", Implied, opRTI)

	def(0x00, "BRK", Immediate, opBRK)
	def(0x02, "COP", Immediate, opCOP)
}

// branch fetches the signed 8-bit displacement from the instruction stream
// and applies it when cond holds, charging the taken-branch cycle and,
// in emulation mode, an extra cycle when the branch crosses a page.
func branch(c *CPU, cond bool) {
	base := c.reg.PC
	target := c.relativeTarget()
	if !cond {
		return
	}
	c.bus.AddIOCycles(1)
	if c.reg.Emulation && base&0xFF00 != target&0xFF00 {
		c.bus.AddIOCycles(1)
	}
	c.reg.PC = target
}

func opBRL(c *CPU, _ AddressingMode) {
	c.reg.PC = c.relativeLongTarget()
}

func opJMPAbsolute(c *CPU, _ AddressingMode) {
	c.reg.PC = c.fetch16()
}

func opJMPAbsoluteLong(c *CPU, _ AddressingMode) {
	v := c.fetch24()
	c.reg.PBR = uint8(v >> 16)
	c.reg.PC = uint16(v)
}

func opJMPIndirect(c *CPU, _ AddressingMode) {
	off := c.fetch16()
	c.reg.PC = c.read16(bus.New(0, off))
}

func opJMPIndirectX(c *CPU, _ AddressingMode) {
	off := c.fetch16()
	idx := off + c.indexX()
	c.reg.PC = c.read16(bus.New(c.reg.PBR, idx))
}

func opJMPIndirectLong(c *CPU, _ AddressingMode) {
	off := c.fetch16()
	lo := c.read8(bus.New(0, off))
	mid := c.read8(bus.New(0, off+1))
	hi := c.read8(bus.New(0, off+2))
	c.reg.PBR = hi
	c.reg.PC = uint16(lo) | uint16(mid)<<8
}

func opJSR(c *CPU, _ AddressingMode) {
	addr := c.fetch16()
	c.bus.AddIOCycles(1)
	c.push16(c.reg.PC - 1)
	c.reg.PC = addr
}

func opJSL(c *CPU, _ AddressingMode) {
	v := c.fetch24()
	c.push8(c.reg.PBR)
	c.bus.AddIOCycles(1)
	c.push16(c.reg.PC - 1)
	c.reg.PBR = uint8(v >> 16)
	c.reg.PC = uint16(v)
}

// opJSRIndirectX fetches the low offset byte, pushes the return address
// (the current PC, already pointing at the high offset byte, matching the
// non-indirect form's PC-1 push), then fetches the high byte before forming
// the indexed indirect address. No extra internal cycle is spent here.
func opJSRIndirectX(c *CPU, _ AddressingMode) {
	low := c.fetch8()
	c.push16(c.reg.PC)
	high := c.fetch8()
	idx := (uint16(low) | uint16(high)<<8) + c.indexX()
	c.reg.PC = c.read16(bus.New(c.reg.PBR, idx))
}

func opRTS(c *CPU, _ AddressingMode) {
	c.reg.PC = c.pop16() + 1
	c.bus.AddIOCycles(1)
}

func opRTL(c *CPU, _ AddressingMode) {
	c.reg.PC = c.pop16() + 1
	c.reg.PBR = c.pop8()
}

func opRTI(c *CPU, _ AddressingMode) {
	c.reg.P = Status(c.pop8())
	if c.reg.Emulation {
		c.reg.P.SetAccumSize8(true)
		c.reg.P.SetIndexSize8(true)
	}
	c.reg.PC = c.pop16()
	if !c.reg.Emulation {
		c.reg.PBR = c.pop8()
	}
}

// opBRK and opCOP consume the one-byte signature/signal operand and trap
// into the matching vector. NOP and WDM take no vector (see ops_ctrl.go).
func opBRK(c *CPU, _ AddressingMode) {
	c.fetch8()
	c.handleInterrupt(VecBRK)
}

func opCOP(c *CPU, _ AddressingMode) {
	c.fetch8()
	c.handleInterrupt(VecCOP)
}
