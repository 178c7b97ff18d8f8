package apu

import "github.com/user-none/go-chip-snes/bus"

// iplROM is the 64-byte boot vector overlay mapped at 0xFFC0-0xFFFF while
// the boot-ROM enable bit is set. A real console ships a mask ROM here; this
// core has no copyrighted dump to embed, so the overlay is zeroed and the
// reset vector it exposes (0xFFFE/0xFFFF, the last two bytes) simply points
// back at 0x0000. Any cartridge or test harness that cares about boot-ROM
// behavior should write its own bytes into RAM and disable the overlay via
// the control register before reset.
var iplROM [0x40]byte

// apuBus is the audio CPU's private 64KiB address space: RAM, the DSP
// address/data port pair, three timers, the four shared I/O latches the
// main CPU sees mirrored at 0x2140-0x2143, and the boot-ROM overlay.
type apuBus struct {
	ram [0x10000]byte

	// apuio is written by the main CPU and read by the audio CPU; cpuio is
	// the reverse direction. Both are exposed to the main side through Apu's
	// Read/Write.
	apuio [4]byte
	cpuio [4]byte

	bootROMEnabled bool
	dsp            *dsp
	timers         [3]timer

	cycles uint64
}

func newAPUBus() *apuBus {
	b := &apuBus{
		dsp:            newDSP(),
		bootROMEnabled: true,
	}
	b.timers[0] = newTimer(8)
	b.timers[1] = newTimer(8)
	b.timers[2] = newTimer(1)
	return b
}

// writeControl decodes the 0x00F1 control register: timer enable bits 0-2,
// I/O port-pair clear bits 4/5, and the boot-ROM overlay enable at bit 7.
func (b *apuBus) writeControl(data uint8) {
	for i := 0; i < 3; i++ {
		b.timers[i].setEnabled(data&(1<<uint(i)) != 0)
	}
	if data&0x10 != 0 {
		b.apuio[0], b.apuio[1] = 0, 0
	}
	if data&0x20 != 0 {
		b.apuio[2], b.apuio[3] = 0, 0
	}
	b.bootROMEnabled = data&0x80 != 0
}

func (b *apuBus) read(addr uint16) uint8 {
	switch {
	case addr == 0x00F0:
		return 0
	case addr == 0x00F1:
		return 0
	case addr == 0x00F2:
		return b.dsp.readAddr()
	case addr == 0x00F3:
		return b.dsp.read()
	case addr >= 0x00F4 && addr <= 0x00F7:
		return b.apuio[addr-0x00F4]
	case addr >= 0x00FA && addr <= 0x00FC:
		return 0
	case addr >= 0x00FD && addr <= 0x00FF:
		return b.timers[addr-0x00FD].readOutput()
	case b.bootROMEnabled && addr >= 0xFFC0:
		return iplROM[addr-0xFFC0]
	default:
		return b.ram[addr]
	}
}

func (b *apuBus) write(addr uint16, data uint8) {
	switch {
	case addr == 0x00F0:
	case addr == 0x00F1:
		b.writeControl(data)
	case addr == 0x00F2:
		b.dsp.setAddr(data)
	case addr == 0x00F3:
		b.dsp.write(data)
	case addr >= 0x00F4 && addr <= 0x00F7:
		b.cpuio[addr-0x00F4] = data
	case addr >= 0x00FA && addr <= 0x00FC:
		b.timers[addr-0x00FA].setTarget(data)
	case addr >= 0x00FD && addr <= 0x00FF:
		// Output latches are read-only.
	default:
		b.ram[addr] = data
	}
}

func (b *apuBus) tick(n int) {
	b.cycles += uint64(n)
	for i := range b.timers {
		b.timers[i].tick(n)
	}
}

// Peek reads without side effects, skipping the clear-on-read timer outputs
// and the DSP data port (which has none worth emulating safely); both read
// back as 0 instead of performing their side-effecting access. Every other
// address reads back exactly as read returns it.
func (b *apuBus) Peek(addr bus.Address) (byte, bool) {
	off := addr.Offset
	switch {
	case off == 0x00F3, off >= 0x00FD && off <= 0x00FF:
		return 0, true
	default:
		return b.read(off), true
	}
}

func (b *apuBus) ReadAndTick(addr bus.Address) byte {
	v := b.read(addr.Offset)
	b.tick(1)
	return v
}

func (b *apuBus) WriteAndTick(addr bus.Address, value byte) {
	b.write(addr.Offset, value)
	b.tick(1)
}

func (b *apuBus) AddIOCycles(n int) { b.tick(n) }

// FiredNMI and FiredIRQ are always false: nothing on this bus ever asserts
// an interrupt line into the audio CPU core.
func (b *apuBus) FiredNMI() bool { return false }
func (b *apuBus) FiredIRQ() bool { return false }
