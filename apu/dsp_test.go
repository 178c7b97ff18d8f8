package apu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDSPVoiceRegisterRoundTrip(t *testing.T) {
	d := newDSP()

	d.setAddr(0x00) // voice 0, left volume
	d.write(0x40)
	d.setAddr(0x00)
	require.Equal(t, uint8(0x40), d.read())

	d.setAddr(0x02) // voice 0, pitch low
	d.write(0xCD)
	d.setAddr(0x03) // voice 0, pitch high
	d.write(0xAB)
	require.Equal(t, uint16(0xABCD), d.voice[0].pitch)
}

func TestDSPWritesIgnoredWhenAddressHighBitSet(t *testing.T) {
	d := newDSP()
	d.setAddr(0x00)
	d.write(0x11)

	d.setAddr(0x80) // write-protect bit set
	d.write(0x99)

	d.setAddr(0x00)
	require.Equal(t, uint8(0x11), d.read())
}

func TestDSPVoiceOutputRegistersNotWritable(t *testing.T) {
	d := newDSP()
	d.voice[0].currentEnvelope = 0x7F

	d.setAddr(0x08) // voice 0, current envelope (output only)
	d.write(0x00)

	require.Equal(t, uint8(0x7F), d.voice[0].currentEnvelope)
}

func TestDSPGlobalRegisters(t *testing.T) {
	d := newDSP()

	d.setAddr(0x0C) // main volume left
	d.write(0x30)
	d.setAddr(0x0C)
	require.Equal(t, uint8(0x30), d.read())

	d.setAddr(0x4D) // echo enabled mask
	d.write(0xFF)
	d.setAddr(0x4D)
	require.Equal(t, uint8(0xFF), d.read())

	d.setAddr(0x0F) // voice 0 echo filter coefficient
	d.write(0x7F)
	d.setAddr(0x0F)
	require.Equal(t, uint8(0x7F), d.read())
}
