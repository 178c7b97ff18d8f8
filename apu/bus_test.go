package apu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAPUBusRAMReadWrite(t *testing.T) {
	b := newAPUBus()
	b.write(0x0200, 0x42)
	require.Equal(t, uint8(0x42), b.read(0x0200))
}

func TestAPUBusIOPortsMirrorMainCPU(t *testing.T) {
	b := newAPUBus()
	// Main CPU side writes apuio; audio core reads it back at 0x00F4.
	b.apuio[0] = 0x11
	require.Equal(t, uint8(0x11), b.read(0x00F4))

	// Audio core writes cpuio; main CPU side reads it back.
	b.write(0x00F5, 0x22)
	require.Equal(t, uint8(0x22), b.cpuio[1])
}

func TestAPUBusControlEnablesTimersAndClearsPorts(t *testing.T) {
	b := newAPUBus()
	b.apuio[0], b.apuio[1] = 0xAA, 0xBB
	b.apuio[2], b.apuio[3] = 0xCC, 0xDD

	b.write(0x00F1, 0x01|0x10) // enable timer 0, clear port pair 0/1
	require.True(t, b.timers[0].enabled)
	require.False(t, b.timers[1].enabled)
	require.Equal(t, uint8(0), b.apuio[0])
	require.Equal(t, uint8(0), b.apuio[1])
	require.Equal(t, uint8(0xCC), b.apuio[2])
}

func TestAPUBusTimerOutputClearsOnRead(t *testing.T) {
	b := newAPUBus()
	b.write(0x00F1, 0x04) // enable timer 2, period 1
	b.write(0x00FC, 1)    // target

	b.tick(1)

	require.Equal(t, uint8(1), b.read(0x00FF))
	require.Equal(t, uint8(0), b.read(0x00FF))
}

func TestAPUBusBootROMOverlay(t *testing.T) {
	b := newAPUBus()
	require.True(t, b.bootROMEnabled)

	b.ram[0xFFC0] = 0x55
	require.Equal(t, uint8(0), b.read(0xFFC0)) // overlay shadows RAM

	b.writeControl(0x00) // clear boot-ROM enable bit
	require.Equal(t, uint8(0x55), b.read(0xFFC0))
}

func TestAPUBusDSPPortRoundTrip(t *testing.T) {
	b := newAPUBus()
	b.write(0x00F2, 0x0C)
	require.Equal(t, uint8(0x0C), b.read(0x00F2))

	b.write(0x00F3, 0x7F)
	require.Equal(t, uint8(0x7F), b.read(0x00F3))
}
