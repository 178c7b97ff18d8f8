// Package spc700 implements the 8-bit audio CPU core: register file,
// direct-page-relative addressing, 256-entry instruction table, and the
// single-stack-page, no-decimal-mode arithmetic the sound processor runs on.
package spc700

import "github.com/user-none/go-chip-snes/bus"

// Registers is the audio CPU's externally visible register file.
type Registers struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16
	PSW     Status
	Stopped bool
}

// CPU is the SPC700 audio processor core.
type CPU struct {
	reg Registers
	bus bus.Bus
}

// New constructs a CPU in an undefined register state; call Reset before
// stepping.
func New(b bus.Bus) *CPU {
	return &CPU{bus: b}
}

// Registers returns a copy of the current register file.
func (c *CPU) Registers() Registers { return c.reg }

// SetState overwrites the entire register file, used by test harnesses to
// seed per-opcode state-determinism tests.
func (c *CPU) SetState(r Registers) { c.reg = r }

// Halted reports whether STOP or SLEEP has halted the processor.
func (c *CPU) Halted() bool { return c.reg.Stopped }

// Reset reads the 16-bit vector at 0xFFFE and loads it into PC. The audio
// CPU has no interrupt lines modeled on this bus; besides reset, only the
// BRK and TCALL instructions load PC from a vector.
func (c *CPU) Reset() {
	c.reg.A, c.reg.X, c.reg.Y = 0, 0, 0
	c.reg.SP = 0xFF
	c.reg.PSW = 0
	c.reg.Stopped = false

	lo := c.bus.ReadAndTick(bus.New(0, 0xFFFE))
	hi := c.bus.ReadAndTick(bus.New(0, 0xFFFF))
	c.reg.PC = uint16(lo) | uint16(hi)<<8
}

// Step fetches and dispatches one instruction. Unlike the main CPU, the
// audio CPU checks no interrupt line here: this bus never asserts one.
func (c *CPU) Step() {
	if c.reg.Stopped {
		return
	}

	op := c.fetch8()
	entry := &opcodeTable[op]
	if entry.fn == nil {
		panic("spc700: empty opcode slot")
	}
	entry.fn(c, entry.mode)
}

func (c *CPU) fetch8() uint8 {
	v := c.bus.ReadAndTick(bus.New(0, c.reg.PC))
	c.reg.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(lo) | uint16(hi)<<8
}

func (c *CPU) read8(addr uint16) uint8     { return c.bus.ReadAndTick(bus.New(0, addr)) }
func (c *CPU) write8(addr uint16, v uint8) { c.bus.WriteAndTick(bus.New(0, addr), v) }

// read16dp reads a little-endian word from the direct page, wrapping the
// low-byte offset within the page rather than crossing into the next one.
func (c *CPU) read16dp(page uint16, off uint8) uint16 {
	lo := c.read8(page | uint16(off))
	hi := c.read8(page | uint16(off+1))
	return uint16(lo) | uint16(hi)<<8
}

func (c *CPU) read16(addr uint16) uint16 {
	lo := c.read8(addr)
	hi := c.read8(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

func (c *CPU) write16(addr uint16, v uint16) {
	c.write8(addr, uint8(v))
	c.write8(addr+1, uint8(v>>8))
}

// directPage returns the bank-0 page selected by PSW.P: 0x0000 or 0x0100.
func (c *CPU) directPage() uint16 {
	if c.reg.PSW.DirectPage() {
		return 0x0100
	}
	return 0x0000
}

func (c *CPU) directAddr(off uint8) uint16 { return c.directPage() | uint16(off) }

// push/pop always address page 1 regardless of the direct-page flag: the
// stack is hardwired to 0x01xx.
func (c *CPU) push8(v uint8) {
	c.write8(0x0100|uint16(c.reg.SP), v)
	c.reg.SP--
}

func (c *CPU) push16(v uint16) {
	c.push8(uint8(v >> 8))
	c.push8(uint8(v))
}

func (c *CPU) pop8() uint8 {
	c.reg.SP++
	return c.read8(0x0100 | uint16(c.reg.SP))
}

func (c *CPU) pop16() uint16 {
	lo := c.pop8()
	hi := c.pop8()
	return uint16(lo) | uint16(hi)<<8
}
