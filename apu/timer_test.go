package apu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimerTicksAndClearsOnRead(t *testing.T) {
	tm := newTimer(1)
	tm.setEnabled(true)
	tm.setTarget(4)

	tm.tick(4)
	require.Equal(t, uint8(1), tm.readOutput())
	require.Equal(t, uint8(0), tm.readOutput())
}

func TestTimerDisabledDoesNotTick(t *testing.T) {
	tm := newTimer(1)
	tm.setTarget(1)
	tm.tick(10)
	require.Equal(t, uint8(0), tm.readOutput())
}

func TestTimerDividedPeriod(t *testing.T) {
	tm := newTimer(8)
	tm.setEnabled(true)
	tm.setTarget(1)

	tm.tick(7)
	require.Equal(t, uint8(0), tm.readOutput())

	tm.tick(1)
	require.Equal(t, uint8(1), tm.readOutput())
}

func TestTimerReenableResetsPhase(t *testing.T) {
	tm := newTimer(1)
	tm.setEnabled(true)
	tm.setTarget(4)
	tm.tick(2)

	tm.setEnabled(false)
	tm.setEnabled(true)
	tm.tick(2)

	require.Equal(t, uint8(0), tm.readOutput())
}
