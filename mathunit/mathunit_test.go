package mathunit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMultiply(t *testing.T) {
	cases := []struct {
		name          string
		a, b          uint8
		wantRemainder uint16
	}{
		{"zero times zero", 0x00, 0x00, 0x0000},
		{"identity", 0x01, 0x2A, 0x002A},
		{"max operands", 0xFF, 0xFF, 0xFE01},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			u := New()
			u.WriteFactorA(c.a)
			u.WriteFactorB(c.b)
			require.Equal(t, c.wantRemainder, u.Remainder)
			require.Equal(t, byte(c.wantRemainder), u.ReadRemainderLow())
			require.Equal(t, byte(c.wantRemainder>>8), u.ReadRemainderHigh())
		})
	}
}

func TestDivide(t *testing.T) {
	cases := []struct {
		name          string
		dividend      uint16
		divisor       uint8
		wantQuotient  uint16
		wantRemainder uint16
	}{
		{"even division", 0x0064, 0x0A, 0x000A, 0x0000},
		{"with remainder", 0x0067, 0x0A, 0x000A, 0x0003},
		{"divisor larger than dividend", 0x0005, 0xFF, 0x0000, 0x0005},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			u := New()
			u.WriteDividendLow(byte(c.dividend))
			u.WriteDividendHigh(byte(c.dividend >> 8))
			u.WriteDivisor(c.divisor)

			require.Equal(t, c.wantQuotient, u.Quotient)
			require.Equal(t, c.wantRemainder, u.Remainder)
			require.Equal(t, byte(c.wantQuotient), u.ReadQuotientLow())
			require.Equal(t, byte(c.wantQuotient>>8), u.ReadQuotientHigh())
		})
	}
}

// TestDivideByZeroFault is the one behavior the core specification calls out
// by name as an emulated-guest fault: quotient saturates to 0xFFFF and the
// remainder becomes the dividend, unchanged, rather than trapping.
func TestDivideByZeroFault(t *testing.T) {
	u := New()
	u.WriteDividendLow(0x34)
	u.WriteDividendHigh(0x12)

	u.WriteDivisor(0x00)

	require.Equal(t, uint16(0xFFFF), u.Quotient)
	require.Equal(t, uint16(0x1234), u.Remainder)
}

func TestPowerOnState(t *testing.T) {
	u := New()
	require.Equal(t, uint8(0xFF), u.FactorA)
	require.Equal(t, uint16(0xFFFF), u.Dividend)
}
