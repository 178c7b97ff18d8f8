// Command snesdbg is a small step/disassemble harness for the main and
// audio CPU cores, demonstrating the core packages the way a host
// application would drive them.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/user-none/go-chip-snes/bus"
	"github.com/user-none/go-chip-snes/spc700"
	"github.com/user-none/go-chip-snes/w65c816"
)

func main() {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "snesdbg",
		Short: "Step and disassemble the W65C816 and SPC700 cores",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
				lvl = slog.LevelInfo
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	rootCmd.AddCommand(newStepCmd(), newDisasmCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newStepCmd() *cobra.Command {
	var romPath string
	var loadAddr uint16
	var steps int
	var cpuKind string

	cmd := &cobra.Command{
		Use:   "step",
		Short: "Load a raw binary and single-step a core, printing register state",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(romPath)
			if err != nil {
				return fmt.Errorf("reading %s: %w", romPath, err)
			}

			b := bus.NewSparseBus()
			for i, v := range data {
				b.Mem[uint32(loadAddr)+uint32(i)] = v
			}
			b.Mem[0xFFFC] = byte(loadAddr)
			b.Mem[0xFFFD] = byte(loadAddr >> 8)
			b.Mem[0xFFFE] = byte(loadAddr)
			b.Mem[0xFFFF] = byte(loadAddr >> 8)

			switch cpuKind {
			case "main":
				c := w65c816.New(b)
				c.Reset()
				for i := 0; i < steps; i++ {
					reg := c.Registers()
					slog.Info("step", "n", i, "pc", fmt.Sprintf("%02X:%04X", reg.PBR, reg.PC), "a", reg.A)
					c.Step()
				}
			case "audio":
				c := spc700.New(b)
				c.Reset()
				for i := 0; i < steps; i++ {
					reg := c.Registers()
					slog.Info("step", "n", i, "pc", fmt.Sprintf("%04X", reg.PC), "a", reg.A)
					c.Step()
				}
			default:
				return fmt.Errorf("unknown --cpu %q: want main or audio", cpuKind)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&romPath, "rom", "", "path to a raw binary to load")
	cmd.Flags().Uint16Var(&loadAddr, "addr", 0x0200, "address to load the binary at and reset into")
	cmd.Flags().IntVar(&steps, "steps", 1, "number of instructions to execute")
	cmd.Flags().StringVar(&cpuKind, "cpu", "main", "core to drive: main or audio")
	cmd.MarkFlagRequired("rom")
	return cmd
}

func newDisasmCmd() *cobra.Command {
	var cpuKind string

	cmd := &cobra.Command{
		Use:   "disasm [opcode-byte-hex]...",
		Short: "Print the mnemonic and addressing mode for one or more opcode bytes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range args {
				var op uint8
				if _, err := fmt.Sscanf(a, "%x", &op); err != nil {
					return fmt.Errorf("invalid opcode byte %q: %w", a, err)
				}
				switch cpuKind {
				case "main":
					mnemonic, mode, ok := w65c816.Disassemble(op)
					printDisasm(op, mnemonic, int(mode), ok)
				case "audio":
					mnemonic, mode, ok := spc700.Disassemble(op)
					printDisasm(op, mnemonic, int(mode), ok)
				default:
					return fmt.Errorf("unknown --cpu %q: want main or audio", cpuKind)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cpuKind, "cpu", "main", "core to disassemble against: main or audio")
	return cmd
}

func printDisasm(op uint8, mnemonic string, mode int, ok bool) {
	if !ok {
		fmt.Printf("%02X: (unimplemented)\n", op)
		return
	}
	fmt.Printf("%02X: %-6s mode=%d\n", op, mnemonic, mode)
}
