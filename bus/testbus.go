package bus

// Cycle records one bus access for the per-opcode cycle-trace comparisons
// required by the testable properties: a sequence of read/write/internal
// events must match the documented trace for every opcode.
type Cycle struct {
	Kind  CycleKind
	Addr  uint32
	Value byte
}

// CycleKind discriminates the three trace event shapes.
type CycleKind int

const (
	CycleRead CycleKind = iota
	CycleWrite
	CycleInternal
)

// SparseBus is a minimal Bus implementation over a sparse memory map, used
// by per-opcode state-determinism tests for both processors. It records
// every access into Trace and reports open-bus reads (the last value seen)
// for unmapped addresses, matching the emulated-guest-fault behavior in
// spec §7.
type SparseBus struct {
	Mem      map[uint32]byte
	Trace    []Cycle
	NMI      bool
	IRQ      bool
	openBus  byte
	Cycles   uint64
	ReadLat  int
	WriteLat int
}

// NewSparseBus builds a SparseBus with 1-cycle read/write latency, the
// common case for unit tests; set ReadLat/WriteLat to model a real system
// bus's region-dependent timing.
func NewSparseBus() *SparseBus {
	return &SparseBus{Mem: make(map[uint32]byte), ReadLat: 1, WriteLat: 1}
}

func (b *SparseBus) Peek(addr Address) (byte, bool) {
	v, ok := b.Mem[addr.Uint32()]
	return v, ok
}

func (b *SparseBus) ReadAndTick(addr Address) byte {
	v, ok := b.Mem[addr.Uint32()]
	if !ok {
		v = b.openBus
	}
	b.openBus = v
	b.Cycles += uint64(b.ReadLat)
	b.Trace = append(b.Trace, Cycle{Kind: CycleRead, Addr: addr.Uint32(), Value: v})
	return v
}

func (b *SparseBus) WriteAndTick(addr Address, value byte) {
	b.Mem[addr.Uint32()] = value
	b.openBus = value
	b.Cycles += uint64(b.WriteLat)
	b.Trace = append(b.Trace, Cycle{Kind: CycleWrite, Addr: addr.Uint32(), Value: value})
}

func (b *SparseBus) AddIOCycles(n int) {
	b.Cycles += uint64(n)
	for i := 0; i < n; i++ {
		b.Trace = append(b.Trace, Cycle{Kind: CycleInternal})
	}
}

func (b *SparseBus) FiredNMI() bool {
	v := b.NMI
	b.NMI = false
	return v
}

func (b *SparseBus) FiredIRQ() bool {
	v := b.IRQ
	b.IRQ = false
	return v
}
