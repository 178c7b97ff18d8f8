package w65c816

import (
	"encoding/binary"
	"errors"
)

// registersSerializeVersion is incremented whenever the binary layout changes.
const registersSerializeVersion = 1

// registersSerializeSize is the number of bytes produced by Serialize.
const registersSerializeSize = 19

// SerializeSize returns the number of bytes needed for Serialize.
func (c *CPU) SerializeSize() int { return registersSerializeSize }

// Serialize writes the full register file into buf, which must be at least
// SerializeSize() bytes. The bus is not included.
func (c *CPU) Serialize(buf []byte) error {
	if len(buf) < registersSerializeSize {
		return errors.New("w65c816: serialize buffer too small")
	}

	buf[0] = registersSerializeVersion
	be := binary.BigEndian
	off := 1

	be.PutUint16(buf[off:], c.reg.A)
	off += 2
	be.PutUint16(buf[off:], c.reg.X)
	off += 2
	be.PutUint16(buf[off:], c.reg.Y)
	off += 2
	be.PutUint16(buf[off:], c.reg.S)
	off += 2
	be.PutUint16(buf[off:], c.reg.PC)
	off += 2
	buf[off] = c.reg.PBR
	off++
	buf[off] = c.reg.DBR
	off++
	be.PutUint16(buf[off:], c.reg.D)
	off += 2
	buf[off] = uint8(c.reg.P)
	off++
	buf[off] = boolByte(c.reg.Emulation)
	off++
	buf[off] = boolByte(c.reg.Stopped)
	off++
	buf[off] = boolByte(c.reg.Waiting)

	return nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Deserialize restores register state from buf, which must be at least
// SerializeSize() bytes. The bus is left unchanged.
func (c *CPU) Deserialize(buf []byte) error {
	if len(buf) < registersSerializeSize {
		return errors.New("w65c816: deserialize buffer too small")
	}
	if buf[0] != registersSerializeVersion {
		return errors.New("w65c816: unsupported serialize version")
	}

	be := binary.BigEndian
	off := 1

	c.reg.A = be.Uint16(buf[off:])
	off += 2
	c.reg.X = be.Uint16(buf[off:])
	off += 2
	c.reg.Y = be.Uint16(buf[off:])
	off += 2
	c.reg.S = be.Uint16(buf[off:])
	off += 2
	c.reg.PC = be.Uint16(buf[off:])
	off += 2
	c.reg.PBR = buf[off]
	off++
	c.reg.DBR = buf[off]
	off++
	c.reg.D = be.Uint16(buf[off:])
	off += 2
	c.reg.P = Status(buf[off])
	off++
	c.reg.Emulation = buf[off] != 0
	off++
	c.reg.Stopped = buf[off] != 0
	off++
	c.reg.Waiting = buf[off] != 0

	return nil
}
