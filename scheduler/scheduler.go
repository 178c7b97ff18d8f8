// Package scheduler implements the fixed-slot event queue that keeps the
// audio CPU's clock domain synchronized to the main CPU's master clock.
package scheduler

import "math"

// Event identifies what a pending slot represents. Only Audio is populated
// today; the slot array is kept at its original three-slot size (see
// DESIGN.md) so a future PPU or controller-latch event has a home without
// changing the scan logic.
type Event int

const (
	Audio Event = iota
	reserved1
	reserved2
)

const slotCount = 3

type pendingEvent struct {
	event Event
	time  uint64
	used  bool
}

// Scheduler is an O(n) min-scan over a tiny, fixed slot array. A binary heap
// would be strictly more code for no measurable benefit at this slot count.
type Scheduler struct {
	cycles uint64
	slots  [slotCount]pendingEvent
}

// New returns an empty Scheduler at cycle 0.
func New() *Scheduler {
	s := &Scheduler{}
	for i := range s.slots {
		s.slots[i] = pendingEvent{time: math.MaxUint64}
	}
	return s
}

// Cycles returns the current master-cycle count.
func (s *Scheduler) Cycles() uint64 { return s.cycles }

// Tick advances the master-cycle count monotonically.
func (s *Scheduler) Tick(n uint64) { s.cycles += n }

// AddEvent inserts or reschedules the given event to fire at time. If an
// event of the same kind is already pending it is rescheduled in place
// rather than duplicated.
func (s *Scheduler) AddEvent(event Event, time uint64) {
	for i := range s.slots {
		if s.slots[i].used && s.slots[i].event == event {
			s.slots[i].time = time
			return
		}
	}
	for i := range s.slots {
		if !s.slots[i].used {
			s.slots[i] = pendingEvent{event: event, time: time, used: true}
			return
		}
	}
	// All slots occupied by distinct event kinds: per spec §4.8 this is a
	// programmer error (the slot set is meant to stay tiny and bounded).
	panic("scheduler: no free event slot")
}

// findNextEvent returns the index of the earliest pending slot, or -1 if
// none are used.
func (s *Scheduler) findNextEvent() int {
	best := -1
	bestTime := uint64(math.MaxUint64)
	for i := range s.slots {
		if s.slots[i].used && s.slots[i].time < bestTime {
			best = i
			bestTime = s.slots[i].time
		}
	}
	return best
}

// PopEvent returns the earliest pending event if it is ripe (its fire time
// has been reached), clearing its slot. It returns ok=false if no event is
// pending or the earliest one has not yet fired.
func (s *Scheduler) PopEvent() (event Event, ok bool) {
	i := s.findNextEvent()
	if i < 0 || s.slots[i].time > s.cycles {
		return 0, false
	}
	event = s.slots[i].event
	s.slots[i] = pendingEvent{time: math.MaxUint64}
	return event, true
}
