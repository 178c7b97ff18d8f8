package w65c816

import "github.com/user-none/go-chip-snes/bus"

// AddressingMode enumerates the 25 main-CPU addressing modes from spec §4.2,
// named to match the specification's own vocabulary.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative
	RelativeLong
	Direct
	DirectX
	DirectY
	Indirect
	IndirectX
	IndirectY
	IndirectLong
	IndirectLongY
	Absolute
	AbsoluteX
	AbsoluteY
	AbsoluteLong
	AbsoluteLongX
	AbsoluteIndirect
	AbsoluteIndirectX
	AbsoluteIndirectLong
	StackRelative
	StackRelativeIndirectY
	StackPEI
	BlockMove
)

func (c *CPU) indexX() uint16 {
	if c.reg.P.IndexWide() {
		return c.reg.X
	}
	return c.reg.X & 0xFF
}

func (c *CPU) indexY() uint16 {
	if c.reg.P.IndexWide() {
		return c.reg.Y
	}
	return c.reg.Y & 0xFF
}

// directBase returns the bank-0 address of direct-page offset off, adding
// one I/O cycle whenever D's low byte is non-zero (spec §4.2).
func (c *CPU) directBase(off uint8) bus.Address {
	if c.reg.D&0xFF != 0 {
		c.bus.AddIOCycles(1)
	}
	return bus.New(0, c.reg.D+uint16(off))
}

// detectPenaltyCycle implements the exact page-crossing rule from spec §4.2:
// extra cycle iff write, or the index register is 16-bit, or the high byte
// of the effective offset changed after indexing.
func (c *CPU) detectPenaltyCycle(write bool, unindexed, indexed bus.Address) {
	if write || c.reg.P.IndexWide() || unindexed.Offset&0xFF00 != indexed.Offset&0xFF00 {
		c.bus.AddIOCycles(1)
	}
}

// decodeAddress resolves a memory-referencing mode to an effective address,
// including any page-crossing/direct-page I/O-cycle penalties. Immediate,
// Accumulator, Implied, Relative*, and BlockMove are handled by their
// callers instead since they do not yield a plain memory address read the
// same way.
func (c *CPU) decodeAddress(mode AddressingMode, write bool) bus.Address {
	switch mode {
	case Direct:
		off := c.fetch8()
		return c.directBase(off)
	case DirectX:
		off := c.fetch8()
		c.bus.AddIOCycles(1)
		base := c.directBase(off)
		return base.WrappingOffsetAdd(c.indexX())
	case DirectY:
		off := c.fetch8()
		c.bus.AddIOCycles(1)
		base := c.directBase(off)
		return base.WrappingOffsetAdd(c.indexY())
	case Indirect:
		off := c.fetch8()
		ptrAddr := c.directBase(off)
		ptr := c.read16(ptrAddr)
		return bus.New(c.reg.DBR, ptr)
	case IndirectX:
		off := c.fetch8()
		c.bus.AddIOCycles(1)
		base := c.directBase(off)
		ptrAddr := base.WrappingOffsetAdd(c.indexX())
		ptr := c.read16(bus.New(0, ptrAddr.Offset))
		return bus.New(c.reg.DBR, ptr)
	case IndirectY:
		off := c.fetch8()
		ptrAddr := c.directBase(off)
		ptr := c.read16(ptrAddr)
		unindexed := bus.New(c.reg.DBR, ptr)
		indexed := unindexed.WrappingOffsetAdd(c.indexY())
		c.detectPenaltyCycle(write, unindexed, indexed)
		return indexed
	case IndirectLong:
		off := c.fetch8()
		ptrAddr := c.directBase(off)
		lo := c.read8(ptrAddr)
		mid := c.read8(ptrAddr.WrappingOffsetAdd(1))
		hi := c.read8(ptrAddr.WrappingOffsetAdd(2))
		return bus.New(hi, uint16(lo)|uint16(mid)<<8)
	case IndirectLongY:
		off := c.fetch8()
		ptrAddr := c.directBase(off)
		lo := c.read8(ptrAddr)
		mid := c.read8(ptrAddr.WrappingOffsetAdd(1))
		hi := c.read8(ptrAddr.WrappingOffsetAdd(2))
		base := bus.New(hi, uint16(lo)|uint16(mid)<<8)
		return base.WrappingAdd(uint32(c.indexY()))
	case Absolute:
		off := c.fetch16()
		return bus.New(c.reg.DBR, off)
	case AbsoluteX:
		off := c.fetch16()
		unindexed := bus.New(c.reg.DBR, off)
		indexed := unindexed.WrappingOffsetAdd(c.indexX())
		c.detectPenaltyCycle(write, unindexed, indexed)
		return indexed
	case AbsoluteY:
		off := c.fetch16()
		unindexed := bus.New(c.reg.DBR, off)
		indexed := unindexed.WrappingOffsetAdd(c.indexY())
		c.detectPenaltyCycle(write, unindexed, indexed)
		return indexed
	case AbsoluteLong:
		v := c.fetch24()
		return bus.New(uint8(v>>16), uint16(v))
	case AbsoluteLongX:
		v := c.fetch24()
		base := bus.New(uint8(v>>16), uint16(v))
		return base.WrappingAdd(uint32(c.indexX()))
	case AbsoluteIndirect:
		off := c.fetch16()
		ptr := c.read16(bus.New(0, off))
		return bus.New(c.reg.PBR, ptr)
	case AbsoluteIndirectX:
		off := c.fetch16()
		idx := off + c.indexX()
		ptr := c.read16(bus.New(c.reg.PBR, idx))
		return bus.New(c.reg.PBR, ptr)
	case AbsoluteIndirectLong:
		off := c.fetch16()
		lo := c.read8(bus.New(0, off))
		mid := c.read8(bus.New(0, off+1))
		hi := c.read8(bus.New(0, off+2))
		return bus.New(hi, uint16(lo)|uint16(mid)<<8)
	case StackRelative:
		off := c.fetch8()
		c.bus.AddIOCycles(1)
		return bus.New(0, c.reg.S+uint16(off))
	case StackRelativeIndirectY:
		off := c.fetch8()
		c.bus.AddIOCycles(1)
		ptrAddr := bus.New(0, c.reg.S+uint16(off))
		ptr := c.read16(ptrAddr)
		c.bus.AddIOCycles(1)
		base := bus.New(c.reg.DBR, ptr)
		return base.WrappingOffsetAdd(c.indexY())
	case StackPEI:
		off := c.fetch8()
		return c.directBase(off)
	default:
		panic("w65c816: decodeAddress: unreachable mode")
	}
}

// relativeTarget reads a signed 8-bit branch displacement and returns the
// target PC; the caller (branch) decides whether to apply it.
func (c *CPU) relativeTarget() uint16 {
	off := int8(c.fetch8())
	return uint16(int32(c.reg.PC) + int32(off))
}

// relativeLongTarget reads a signed 16-bit displacement (BRL, PER).
func (c *CPU) relativeLongTarget() uint16 {
	off := int16(c.fetch16())
	return uint16(int32(c.reg.PC) + int32(off))
}

// getOperand8/16 fetch a read-only operand value for ALU-style instructions,
// special-casing Immediate (read straight from the instruction stream) and
// Accumulator (read the register) so callers never need to branch on mode
// themselves.
func (c *CPU) getOperand8(mode AddressingMode) uint8 {
	if mode == Immediate {
		return c.fetch8()
	}
	if mode == Accumulator {
		return uint8(c.reg.A)
	}
	return c.read8(c.decodeAddress(mode, false))
}

func (c *CPU) getOperand16(mode AddressingMode) uint16 {
	if mode == Immediate {
		return c.fetch16()
	}
	if mode == Accumulator {
		return c.reg.A
	}
	return c.read16(c.decodeAddress(mode, false))
}
