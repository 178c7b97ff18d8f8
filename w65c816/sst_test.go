package w65c816

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/user-none/go-chip-snes/bus"
)

// sstPath/sstStrict generalize the teacher's single-step-test runner (one
// JSON file per opcode, from the public 65816 SingleStepTests project) to
// this core's register shape.
var sstPath = flag.String("sstpath", "", "directory containing SST JSON test files")
var sstStrict = flag.Bool("sststrict", false, "run all SST tests including known failures")

// sstSkip lists JSON files that fail due to documented design choices.
var sstSkip = map[string]string{
	"cop.json": "COP exception entry is not distinguished from BRK in this core",
}

type sstJSONState struct {
	PC  uint16     `json:"pc"`
	S   uint16     `json:"s"`
	P   uint8      `json:"p"`
	A   uint16     `json:"a"`
	X   uint16     `json:"x"`
	Y   uint16     `json:"y"`
	DBR uint8      `json:"dbr"`
	PBR uint8      `json:"pbr"`
	D   uint16     `json:"d"`
	E   uint8      `json:"e"`
	RAM [][]uint32 `json:"ram"`
}

func (s *sstJSONState) toRegisters() Registers {
	return Registers{
		A: s.A, X: s.X, Y: s.Y, S: s.S,
		PC: s.PC, PBR: s.PBR, DBR: s.DBR, D: s.D,
		P:         Status(s.P),
		Emulation: s.E != 0,
	}
}

type sstJSONTest struct {
	Name    string       `json:"name"`
	Initial sstJSONState `json:"initial"`
	Final   sstJSONState `json:"final"`
	// Cycles is the ordered [address|null, value|null, "read"|"write"|
	// "internal"] trace spec.md §8 property 1 requires matching exactly,
	// block-move opcodes excepted.
	Cycles [][]any `json:"cycles"`
}

// isBlockMove reports whether a test name names MVN/MVP, whose cycle traces
// spec.md §8 property 1 explicitly excludes from comparison since they
// iterate until complete.
func isBlockMove(name string) bool {
	return strings.Contains(name, "MVN") || strings.Contains(name, "MVP")
}

func parseExpectedCycles(raw [][]any) []bus.Cycle {
	out := make([]bus.Cycle, 0, len(raw))
	for _, entry := range raw {
		kind := bus.CycleInternal
		if len(entry) >= 3 {
			switch entry[2] {
			case "read":
				kind = bus.CycleRead
			case "write":
				kind = bus.CycleWrite
			}
		}
		var addr uint32
		var value byte
		if len(entry) >= 1 {
			if v, ok := entry[0].(float64); ok {
				addr = uint32(v)
			}
		}
		if len(entry) >= 2 {
			if v, ok := entry[1].(float64); ok {
				value = byte(v)
			}
		}
		out = append(out, bus.Cycle{Kind: kind, Addr: addr, Value: value})
	}
	return out
}

// checkTrace compares the bus's recorded cycle trace against the expected
// ordered sequence of read/write/internal events, per spec.md §8 property 1.
func checkTrace(t *testing.T, b *bus.SparseBus, expected []bus.Cycle) {
	t.Helper()

	if len(b.Trace) != len(expected) {
		t.Errorf("cycle trace length = %d, want %d (got %v, want %v)", len(b.Trace), len(expected), b.Trace, expected)
		return
	}
	for i, want := range expected {
		got := b.Trace[i]
		if got.Kind != want.Kind {
			t.Errorf("cycle %d kind = %v, want %v", i, got.Kind, want.Kind)
			continue
		}
		if want.Kind == bus.CycleInternal {
			continue
		}
		if got.Addr != want.Addr {
			t.Errorf("cycle %d addr = 0x%06X, want 0x%06X", i, got.Addr, want.Addr)
		}
		if got.Value != want.Value {
			t.Errorf("cycle %d value = 0x%02X, want 0x%02X", i, got.Value, want.Value)
		}
	}
	if b.Cycles != uint64(len(expected)) {
		t.Errorf("cycle count = %d, want %d", b.Cycles, len(expected))
	}
}

func runSSTTest(t *testing.T, jt *sstJSONTest) {
	t.Helper()

	init, want := jt.Initial, jt.Final

	b := bus.NewSparseBus()
	for _, entry := range init.RAM {
		b.Mem[entry[0]&0xFFFFFF] = byte(entry[1])
	}

	c := New(b)
	c.SetState(init.toRegisters())
	c.Step()

	if !isBlockMove(jt.Name) {
		checkTrace(t, b, parseExpectedCycles(jt.Cycles))
	}

	reg := c.Registers()
	if reg.A != want.A {
		t.Errorf("A = 0x%04X, want 0x%04X", reg.A, want.A)
	}
	if reg.X != want.X {
		t.Errorf("X = 0x%04X, want 0x%04X", reg.X, want.X)
	}
	if reg.Y != want.Y {
		t.Errorf("Y = 0x%04X, want 0x%04X", reg.Y, want.Y)
	}
	if reg.S != want.S {
		t.Errorf("S = 0x%04X, want 0x%04X", reg.S, want.S)
	}
	if reg.PC != want.PC {
		t.Errorf("PC = 0x%04X, want 0x%04X", reg.PC, want.PC)
	}
	if reg.PBR != want.PBR {
		t.Errorf("PBR = 0x%02X, want 0x%02X", reg.PBR, want.PBR)
	}
	if reg.DBR != want.DBR {
		t.Errorf("DBR = 0x%02X, want 0x%02X", reg.DBR, want.DBR)
	}
	if reg.D != want.D {
		t.Errorf("D = 0x%04X, want 0x%04X", reg.D, want.D)
	}
	if uint8(reg.P) != want.P {
		t.Errorf("P = 0x%02X, want 0x%02X", uint8(reg.P), want.P)
	}

	for _, entry := range want.RAM {
		addr := entry[0] & 0xFFFFFF
		wantVal := byte(entry[1])
		if gotVal := b.Mem[addr]; gotVal != wantVal {
			t.Errorf("RAM[0x%06X] = 0x%02X, want 0x%02X", addr, gotVal, wantVal)
		}
	}
}

// TestSSTRunner drives one JSON file per opcode, skipped entirely unless
// -sstpath points at a directory of SingleStepTests-format files.
func TestSSTRunner(t *testing.T) {
	if *sstPath == "" {
		t.Skip("no -sstpath provided")
	}

	entries, err := os.ReadDir(*sstPath)
	if err != nil {
		t.Fatalf("reading sstpath: %v", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		fname := entry.Name()
		if reason, ok := sstSkip[fname]; ok && !*sstStrict {
			t.Run(fname, func(t *testing.T) {
				t.Skipf("known failure: %s (use -sststrict to run)", reason)
			})
			continue
		}
		t.Run(fname, func(t *testing.T) {
			t.Parallel()
			data, err := os.ReadFile(filepath.Join(*sstPath, fname))
			if err != nil {
				t.Fatalf("reading %s: %v", fname, err)
			}

			var tests []sstJSONTest
			if err := json.Unmarshal(data, &tests); err != nil {
				t.Fatalf("parsing %s: %v", fname, err)
			}

			for i := range tests {
				jt := &tests[i]
				t.Run(jt.Name, func(t *testing.T) {
					runSSTTest(t, jt)
				})
			}
		})
	}
}
