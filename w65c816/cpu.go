// Package w65c816 implements the 16-bit main CPU core: register file,
// 25-mode addressing decoder, 256-entry instruction table, interrupts, and
// the emulation-mode/native-mode semantics that drive a Super Nintendo-style
// host.
package w65c816

import "github.com/user-none/go-chip-snes/bus"

// Vector identifies one of the six fixed interrupt/reset vectors. Addresses
// come from original_source/aliusnes/src/w65c816/vectors.rs.
type Vector int

const (
	VecCOP Vector = iota
	VecBRK
	VecAbort
	VecNMI
	VecIRQ
	VecReset
)

func vectorAddress(v Vector, emulation bool) uint16 {
	if emulation {
		switch v {
		case VecCOP:
			return 0xFFF4
		case VecAbort:
			return 0xFFF8
		case VecNMI:
			return 0xFFFA
		case VecReset:
			return 0xFFFC
		case VecBRK, VecIRQ:
			return 0xFFFE
		}
	}
	switch v {
	case VecCOP:
		return 0xFFE4
	case VecBRK:
		return 0xFFE6
	case VecAbort:
		return 0xFFE8
	case VecNMI:
		return 0xFFEA
	case VecIRQ:
		return 0xFFEE
	case VecReset:
		return 0xFFFC
	}
	panic("w65c816: unreachable vector")
}

// Registers is the main CPU's externally visible register file.
type Registers struct {
	A, X, Y    uint16
	S          uint16
	PC         uint16
	PBR, DBR   uint8
	D          uint16
	P          Status
	Emulation  bool
	Stopped    bool
	Waiting    bool
}

// CPU is the W65C816 main processor core.
type CPU struct {
	reg Registers
	bus bus.Bus
}

// New constructs a CPU in an undefined register state; call Reset before
// stepping, per spec's lifecycle contract.
func New(b bus.Bus) *CPU {
	return &CPU{bus: b}
}

// Registers returns a copy of the current register file.
func (c *CPU) Registers() Registers { return c.reg }

// SetState overwrites the entire register file, used by test harnesses to
// seed per-opcode state-determinism tests.
func (c *CPU) SetState(r Registers) { c.reg = r }

// Halted reports whether STP has stopped the processor.
func (c *CPU) Halted() bool { return c.reg.Stopped }

// Reset loads PC from the reset vector and establishes emulation-mode
// invariants: both size flags set, S high byte forced to 0x01, irq-disable
// set, decimal cleared.
func (c *CPU) Reset() {
	c.reg.Emulation = true
	c.reg.P.SetAccumSize8(true)
	c.reg.P.SetIndexSize8(true)
	c.reg.P.SetIRQDisable(true)
	c.reg.P.SetDecimal(false)
	c.reg.D = 0
	c.reg.DBR = 0
	c.reg.PBR = 0
	c.reg.S = 0x0100 | (c.reg.S & 0xFF)
	c.reg.X &= 0xFF
	c.reg.Y &= 0xFF
	c.reg.Stopped = false
	c.reg.Waiting = false

	lo := c.bus.ReadAndTick(bus.New(0, vectorAddress(VecReset, true)))
	hi := c.bus.ReadAndTick(bus.New(0, vectorAddress(VecReset, true)+1))
	c.reg.PC = uint16(lo) | uint16(hi)<<8
	c.reg.S = 0x01FF
}

// Step runs the five-stage control flow from spec §4.3: stopped check, NMI,
// IRQ, WAI resolution, then opcode fetch/dispatch.
func (c *CPU) Step() {
	if c.reg.Stopped {
		return
	}

	if c.bus.FiredNMI() {
		c.reg.Waiting = false
		c.handleInterrupt(VecNMI)
		return
	}
	if !c.reg.P.IRQDisable() && c.bus.FiredIRQ() {
		c.reg.Waiting = false
		c.handleInterrupt(VecIRQ)
		return
	}
	if c.reg.Waiting {
		if c.reg.P.IRQDisable() {
			c.reg.Waiting = false
		} else {
			return
		}
	}

	op := c.fetch8()
	entry := &opcodeTable[op]
	if entry.fn == nil {
		panic("w65c816: empty opcode slot")
	}
	entry.fn(c, entry.mode)
}

// handleInterrupt pushes PBR (native mode only), PC, and P; clears decimal;
// sets irq-disable; zeros PBR; loads PC from the vector.
func (c *CPU) handleInterrupt(v Vector) {
	if !c.reg.Emulation {
		c.push8(c.reg.PBR)
	}
	c.push16(c.reg.PC)
	c.push8(uint8(c.reg.P))

	c.reg.P.SetDecimal(false)
	c.reg.P.SetIRQDisable(true)
	c.reg.PBR = 0

	addr := vectorAddress(v, c.reg.Emulation)
	lo := c.bus.ReadAndTick(bus.New(0, addr))
	hi := c.bus.ReadAndTick(bus.New(0, addr+1))
	c.reg.PC = uint16(lo) | uint16(hi)<<8
	c.bus.AddIOCycles(1)
}

// fetch8 reads the byte at (PBR,PC) and advances PC.
func (c *CPU) fetch8() uint8 {
	v := c.bus.ReadAndTick(bus.New(c.reg.PBR, c.reg.PC))
	c.reg.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(lo) | uint16(hi)<<8
}

func (c *CPU) fetch24() uint32 {
	lo := c.fetch8()
	mid := c.fetch8()
	hi := c.fetch8()
	return uint32(lo) | uint32(mid)<<8 | uint32(hi)<<16
}

func (c *CPU) read8(addr bus.Address) uint8  { return c.bus.ReadAndTick(addr) }
func (c *CPU) write8(addr bus.Address, v uint8) { c.bus.WriteAndTick(addr, v) }

func (c *CPU) read16(addr bus.Address) uint16 {
	lo := c.bus.ReadAndTick(addr)
	hi := c.bus.ReadAndTick(addr.WrappingOffsetAdd(1))
	return uint16(lo) | uint16(hi)<<8
}

func (c *CPU) write16(addr bus.Address, v uint16) {
	c.bus.WriteAndTick(addr, uint8(v))
	c.bus.WriteAndTick(addr.WrappingOffsetAdd(1), uint8(v>>8))
}

// push8/push16 write to the stack page and decrement S. In emulation mode
// push8 (like pop8) forces S's high byte back to 0x01 after each step, so S
// stays in page 1.
func (c *CPU) push8(v uint8) {
	c.write8(bus.New(0, c.reg.S), v)
	c.reg.S--
	if c.reg.Emulation {
		c.reg.S = 0x0100 | (c.reg.S & 0xFF)
	}
}

func (c *CPU) push16(v uint16) {
	c.push8(uint8(v >> 8))
	c.push8(uint8(v))
}

func (c *CPU) pop8() uint8 {
	c.reg.S++
	if c.reg.Emulation {
		c.reg.S = 0x0100 | (c.reg.S & 0xFF)
	}
	return c.read8(bus.New(0, c.reg.S))
}

func (c *CPU) pop16() uint16 {
	lo := c.pop8()
	hi := c.pop8()
	return uint16(lo) | uint16(hi)<<8
}
