package spc700

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/user-none/go-chip-snes/bus"
)

func newTestCPU() (*CPU, *bus.SparseBus) {
	b := bus.NewSparseBus()
	b.Mem[0xFFFE] = 0x00
	b.Mem[0xFFFF] = 0x02
	c := New(b)
	c.Reset()
	return c, b
}

func TestResetLoadsVectorAndClearsState(t *testing.T) {
	c, _ := newTestCPU()
	reg := c.Registers()
	require.Equal(t, uint16(0x0200), reg.PC)
	require.Equal(t, uint8(0xFF), reg.SP)
	require.False(t, reg.Stopped)
}

func TestMOVImmediateSetsFlags(t *testing.T) {
	c, b := newTestCPU()
	b.Mem[0x0200] = 0xE8 // MOV A,#imm
	b.Mem[0x0201] = 0x00

	c.Step()

	reg := c.Registers()
	require.Equal(t, uint8(0x00), reg.A)
	require.True(t, reg.PSW.Zero())
	require.False(t, reg.PSW.Negative())
}

func TestMOVIndirectXReadsDirectPage(t *testing.T) {
	c, b := newTestCPU()
	reg := c.Registers()
	reg.X = 0x10
	c.SetState(reg)

	b.Mem[0x0010] = 0x7F
	b.Mem[0x0200] = 0xE6 // MOV A,(X)

	c.Step()

	require.Equal(t, uint8(0x7F), c.Registers().A)
}

func TestADCSetsCarryAndHalfCarry(t *testing.T) {
	c, b := newTestCPU()
	reg := c.Registers()
	reg.A = 0xFF
	c.SetState(reg)

	b.Mem[0x0200] = 0x88 // ADC A,#imm
	b.Mem[0x0201] = 0x01

	c.Step()

	reg = c.Registers()
	require.Equal(t, uint8(0x00), reg.A)
	require.True(t, reg.PSW.Carry())
	require.True(t, reg.PSW.Zero())
	require.True(t, reg.PSW.HalfCarry())
}

func TestBranchTakenAndNotTaken(t *testing.T) {
	c, b := newTestCPU()
	b.Mem[0x0200] = 0xF0 // BEQ, Z=0 after reset so not taken
	b.Mem[0x0201] = 0x10
	b.Mem[0x0202] = 0xD0 // BNE, Z=0 so taken: 0x0204 + 0x10
	b.Mem[0x0203] = 0x10

	c.Step()
	require.Equal(t, uint16(0x0202), c.Registers().PC)

	c.Step()
	require.Equal(t, uint16(0x0214), c.Registers().PC)
}

func TestSET1AndBBSBranch(t *testing.T) {
	c, b := newTestCPU()
	b.Mem[0x0020] = 0x00 // mapped, so SET1 does not read an open-bus value
	b.Mem[0x0200] = 0x22 // SET1 d.1
	b.Mem[0x0201] = 0x20
	b.Mem[0x0202] = 0x23 // BBS d.1, r
	b.Mem[0x0203] = 0x20
	b.Mem[0x0204] = 0x05

	c.Step()
	require.Equal(t, uint8(0x02), b.Mem[0x0020])

	c.Step()
	require.Equal(t, uint16(0x020A), c.Registers().PC)
}

func TestPushPopRoundTrip(t *testing.T) {
	c, b := newTestCPU()
	reg := c.Registers()
	reg.A = 0x42
	c.SetState(reg)

	b.Mem[0x0200] = 0x2D // PUSH A
	b.Mem[0x0201] = 0xE8 // MOV A,#imm (clobber)
	b.Mem[0x0202] = 0x00
	b.Mem[0x0203] = 0xAE // POP A

	c.Step()
	c.Step()
	c.Step()

	require.Equal(t, uint8(0x42), c.Registers().A)
}

func TestCALLAndRET(t *testing.T) {
	c, b := newTestCPU()
	b.Mem[0x0200] = 0x3F // CALL !a
	b.Mem[0x0201] = 0x00
	b.Mem[0x0202] = 0x03
	b.Mem[0x0300] = 0x6F // RET

	c.Step()
	require.Equal(t, uint16(0x0300), c.Registers().PC)

	c.Step()
	require.Equal(t, uint16(0x0203), c.Registers().PC)
}

func TestMULSetsFlagsFromHighByte(t *testing.T) {
	c, b := newTestCPU()
	reg := c.Registers()
	reg.Y = 0x01 // 0x01*0x10 = 0x0010: high byte zero, low byte not
	reg.A = 0x10
	c.SetState(reg)

	b.Mem[0x0200] = 0xCF // MUL YA

	c.Step()

	reg = c.Registers()
	require.True(t, reg.PSW.Zero())
}

func TestSTOPHaltsFetch(t *testing.T) {
	c, b := newTestCPU()
	b.Mem[0x0200] = 0xFF // STOP
	b.Mem[0x0201] = 0xE8 // MOV A,#imm, should never execute
	b.Mem[0x0202] = 0x99

	c.Step()
	require.True(t, c.Halted())

	c.Step()
	reg := c.Registers()
	require.NotEqual(t, uint8(0x99), reg.A)
}

func TestEmptyOpcodeSlotPanics(t *testing.T) {
	c, _ := newTestCPU()
	saved := opcodeTable[0x01]
	opcodeTable[0x01] = opEntry{}
	defer func() { opcodeTable[0x01] = saved }()

	require.Panics(t, func() {
		c.bus.(*bus.SparseBus).Mem[0x0200] = 0x01
		c.Step()
	})
}

func TestSerializeRoundTrip(t *testing.T) {
	c, _ := newTestCPU()
	reg := c.Registers()
	reg.A = 0xAB
	reg.X = 0xCD
	c.SetState(reg)

	buf := make([]byte, c.SerializeSize())
	require.NoError(t, c.Serialize(buf))

	c2, _ := newTestCPU()
	require.NoError(t, c2.Deserialize(buf))
	require.Equal(t, c.Registers(), c2.Registers())
}
