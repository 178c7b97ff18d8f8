package scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddEventReschedulesInPlace(t *testing.T) {
	s := New()
	s.AddEvent(Audio, 100)
	s.AddEvent(Audio, 50) // same kind: moves the existing slot, doesn't duplicate it

	s.Tick(60)
	event, ok := s.PopEvent()
	require.True(t, ok)
	require.Equal(t, Audio, event)

	_, ok = s.PopEvent()
	require.False(t, ok, "rescheduling must not leave a stale second slot behind")
}

func TestPopEventNotYetRipe(t *testing.T) {
	s := New()
	s.AddEvent(Audio, 100)

	s.Tick(50)
	_, ok := s.PopEvent()
	require.False(t, ok)

	s.Tick(50)
	event, ok := s.PopEvent()
	require.True(t, ok)
	require.Equal(t, Audio, event)
}

func TestPopEventEmpty(t *testing.T) {
	s := New()
	_, ok := s.PopEvent()
	require.False(t, ok)
}

// TestScenarioE6 reproduces the documented scenario: add_event(Audio,100),
// add_event(Audio,50), cycles=60 -> pop_event returns Audio while the clock
// still reads 60 (PopEvent reports the event kind, not its scheduled time).
func TestScenarioE6(t *testing.T) {
	s := New()
	s.AddEvent(Audio, 100)
	s.AddEvent(Audio, 50)
	s.Tick(60)

	event, ok := s.PopEvent()
	require.True(t, ok)
	require.Equal(t, Audio, event)
	require.Equal(t, uint64(60), s.Cycles())
}

// TestPoppedEventTimesAreNonDecreasing covers property 7 by checking that
// the scheduler clock read at each of two successive pops never decreases.
func TestPoppedEventTimesAreNonDecreasing(t *testing.T) {
	s := New()
	s.AddEvent(Audio, 10)
	s.Tick(10)
	_, ok := s.PopEvent()
	require.True(t, ok)
	firstTime := s.Cycles()

	s.AddEvent(Audio, 30)
	s.Tick(20)
	_, ok = s.PopEvent()
	require.True(t, ok)
	secondTime := s.Cycles()

	require.LessOrEqual(t, firstTime, secondTime)
}
