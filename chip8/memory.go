// Package chip8 implements the CHIP-8 interpreter core.
package chip8

import "github.com/pkg/errors"

const (
	// MemorySize is the total addressable memory in bytes.
	MemorySize = 0x1000

	// ProgramStart is the address programs are loaded at and execute from.
	ProgramStart = 0x200

	// FontStart is the base address of the built-in hexadecimal font.
	FontStart = 0x000

	// GlyphSize is the height in bytes of one font glyph.
	GlyphSize = 5

	// MaxProgramSize is the largest ROM image that fits in program space.
	MaxProgramSize = MemorySize - ProgramStart
)

// fontSet holds the sprites for the hexadecimal digits 0 through F.
var fontSet = [...]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory defines the machine's 4 KiB memory bank. The font occupies
// FontStart through FontStart+0x4F and is written once at construction;
// program memory starts zeroed.
type Memory struct {
	data [MemorySize]byte
}

// NewMemory creates a memory bank with the font installed.
func NewMemory() *Memory {
	var m Memory
	copy(m.data[FontStart:], fontSet[:])
	return &m
}

// Load copies rom into memory starting at ProgramStart.
func (m *Memory) Load(rom []byte) error {
	if len(rom) > MaxProgramSize {
		return errors.Wrapf(ErrOutOfSpace, "rom is %d bytes, program space is %d", len(rom), MaxProgramSize)
	}
	copy(m.data[ProgramStart:], rom)
	return nil
}

// Read8 returns the byte at addr.
func (m *Memory) Read8(addr uint16) (byte, error) {
	if int(addr) >= MemorySize {
		return 0, errors.Wrapf(ErrOutOfBounds, "read at %04X", addr)
	}
	return m.data[addr], nil
}

// Read16 returns the big-endian 16-bit value at addr.
func (m *Memory) Read16(addr uint16) (uint16, error) {
	if int(addr)+1 >= MemorySize {
		return 0, errors.Wrapf(ErrOutOfBounds, "read at %04X", addr)
	}
	return uint16(m.data[addr])<<8 | uint16(m.data[addr+1]), nil
}

// Write8 stores v at addr.
func (m *Memory) Write8(addr uint16, v byte) error {
	if int(addr) >= MemorySize {
		return errors.Wrapf(ErrOutOfBounds, "write at %04X", addr)
	}
	m.data[addr] = v
	return nil
}

// GlyphAddress returns the address of the font glyph for the low nibble
// of digit.
func GlyphAddress(digit byte) uint16 {
	return FontStart + uint16(digit&0x0F)*GlyphSize
}
