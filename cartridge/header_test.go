package cartridge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildHeader lays out a minimal 0x2C-byte header block with the given
// fields at their documented offsets, relative to the block's own start.
func buildHeader(title string, mapperNibble byte, fastROM bool, romExp, ramExp, region, devID, version byte) []byte {
	h := make([]byte, 0x2C)
	copy(h[0x10:0x25], title)
	for i := len(title); i < 0x15; i++ {
		h[0x10+i] = ' '
	}
	nibble := mapperNibble
	if fastROM {
		nibble |= 0x10
	}
	h[0x25] = nibble
	h[0x27] = romExp
	h[0x28] = ramExp
	h[0x29] = region
	h[0x2A] = devID
	h[0x2B] = version
	return h
}

func TestParse(t *testing.T) {
	cases := []struct {
		name         string
		mapperNibble byte
		expected     Mapper
		wantMapper   Mapper
		wantOK       bool
	}{
		{"LoROM", 0x0, LoROM, LoROM, true},
		{"HiROM", 0x1, HiROM, HiROM, true},
		{"SDD1ROM collapses to LoROM family", 0x2, LoROM, SDD1ROM, true},
		{"SA1ROM collapses to LoROM family", 0x3, LoROM, SA1ROM, true},
		{"ExHiROM", 0x5, ExHiROM, ExHiROM, true},
		{"unknown nibble", 0x4, LoROM, 0, false},
		{"mapper family mismatch", 0x1, LoROM, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			raw := buildHeader("TEST GAME", c.mapperNibble, true, 0x0B, 0x03, 0x01, 0x00, 0x01)
			h, ok := Parse(raw, c.expected)
			require.Equal(t, c.wantOK, ok)
			if !c.wantOK {
				return
			}
			require.Equal(t, c.wantMapper, h.Mapper)
			require.Equal(t, "TEST GAME", h.Title)
			require.True(t, h.FastROM)
			require.Equal(t, uint32(0x400)<<0x0B, h.ROMSize)
			require.Equal(t, uint32(0x400)<<0x03, h.RAMSize)
			require.Equal(t, NorthAmerica, h.Region)
		})
	}
}

func TestParseRejectsShortBuffer(t *testing.T) {
	_, ok := Parse(make([]byte, 0x10), LoROM)
	require.False(t, ok)
}

func TestParseUnknownRegionFallsBack(t *testing.T) {
	raw := buildHeader("UNKNOWN REGION", 0x0, false, 0x0A, 0x00, 0xFF, 0x00, 0x00)
	h, ok := Parse(raw, LoROM)
	require.True(t, ok)
	require.Equal(t, RegionUnknown, h.Region)
}

func TestParseTrimsTrailingPadding(t *testing.T) {
	raw := buildHeader("SHORT\x00\x00\x00", 0x0, false, 0x0A, 0x00, 0x00, 0x00, 0x00)
	h, ok := Parse(raw, LoROM)
	require.True(t, ok)
	require.Equal(t, "SHORT", h.Title)
}

func TestGuessFromROM(t *testing.T) {
	cases := []struct {
		name       string
		offset     int
		nibble     byte
		wantMapper Mapper
	}{
		{"ExHiROM offset wins first", 0x40FFB0, 0x5, ExHiROM},
		{"HiROM offset", 0xFFB0, 0x1, HiROM},
		{"LoROM offset", 0x7FB0, 0x0, LoROM},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rom := make([]byte, c.offset+0x2C)
			copy(rom[c.offset:], buildHeader("GUESS TEST", c.nibble, false, 0x08, 0x00, 0x01, 0x00, 0x00))

			h, ok := GuessFromROM(rom)
			require.True(t, ok)
			require.Equal(t, c.wantMapper, h.Mapper)
		})
	}
}

func TestGuessFromROMTooSmall(t *testing.T) {
	_, ok := GuessFromROM(make([]byte, 0x100))
	require.False(t, ok)
}
