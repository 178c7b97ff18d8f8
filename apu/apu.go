// Package apu implements the audio subsystem: the SPC700 core, its private
// memory map, the three hardware timers, and the DSP register file, kept in
// lockstep with the main CPU's master clock through the scheduler package.
package apu

import (
	"github.com/user-none/go-chip-snes/bus"
	"github.com/user-none/go-chip-snes/scheduler"
	"github.com/user-none/go-chip-snes/spc700"
)

// Region selects the master clock rate the audio domain is kept in lockstep
// with. This is a video-timing concept distinct from cartridge.Region's
// header locale byte, so it is kept local to this package.
type Region int

const (
	NTSC Region = iota
	PAL
)

const (
	ntscMasterClock = 21_477_270
	palMasterClock  = 21_281_370
	spc700Clock     = 1_024_000

	// eventPeriodNTSC/PAL are the master-clock intervals between successive
	// re-arms of the catch-up event, derived the same way the reference
	// core computes them: 32 SPC700 cycles' worth of master-clock ticks.
	eventPeriodNTSC = (32 * ntscMasterClock) / spc700Clock
	eventPeriodPAL  = (32 * palMasterClock) / spc700Clock
)

// Apu owns the audio CPU core and its bus, and exposes the four shared I/O
// bytes the main CPU sees mirrored at 0x2140-0x2143.
type Apu struct {
	cpu    *spc700.CPU
	bus    *apuBus
	region Region
}

// New constructs an Apu for the given video timing and resets the audio
// core from its (zeroed, see bus.go) boot-ROM vector.
func New(region Region) *Apu {
	b := newAPUBus()
	a := &Apu{
		cpu:    spc700.New(b),
		bus:    b,
		region: region,
	}
	a.cpu.Reset()
	return a
}

func (a *Apu) masterClock() uint64 {
	if a.region == PAL {
		return palMasterClock
	}
	return ntscMasterClock
}

func (a *Apu) eventPeriod() uint64 {
	if a.region == PAL {
		return eventPeriodPAL
	}
	return eventPeriodNTSC
}

// catchUpToMaster steps the audio core until its local clock has caught up
// to the given master-clock time, converting between the two domains by
// their fixed clock ratio.
func (a *Apu) catchUpToMaster(time uint64) {
	target := time * spc700Clock / a.masterClock()
	for a.bus.cycles < target {
		a.cpu.Step()
	}
}

// HandleEvent is the scheduler callback for scheduler.Audio: it catches the
// audio core up to the current master time and reschedules itself one
// period later, keeping the audio domain perpetually moving forward.
func (a *Apu) HandleEvent(s *scheduler.Scheduler, time uint64) {
	a.catchUpToMaster(time)
	s.AddEvent(scheduler.Audio, time+a.eventPeriod())
}

// Read returns the shared I/O byte the main CPU sees at 0x2140+n, catching
// the audio core up to time first so the value reflects everything the
// audio side has written up to this point in master-clock time.
func (a *Apu) Read(port uint8, time uint64) uint8 {
	a.catchUpToMaster(time)
	return a.bus.cpuio[port&3]
}

// Write stores a byte the main CPU wrote at 0x2140+n into the port the
// audio core reads as apuio, after catching the audio core up to time.
func (a *Apu) Write(port uint8, data uint8, time uint64) {
	a.catchUpToMaster(time)
	a.bus.apuio[port&3] = data
}

// Registers exposes the audio CPU's register file, for disassembler and
// debugger front ends.
func (a *Apu) Registers() spc700.Registers { return a.cpu.Registers() }

// Peek reads a byte from the audio address space without side effects.
func (a *Apu) Peek(addr uint16) (byte, bool) {
	return a.bus.Peek(bus.New(0, addr))
}
