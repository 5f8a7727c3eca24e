package chip8

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/assert"
)

func TestMemoryFont(t *testing.T) {
	m := NewMemory()

	b, err := m.Read8(FontStart)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xF0), b)

	// Last byte of the F glyph.
	b, err = m.Read8(FontStart + 16*GlyphSize - 1)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x80), b)
}

func TestGlyphAddress(t *testing.T) {
	assert.Equal(t, uint16(FontStart), GlyphAddress(0x0))
	assert.Equal(t, uint16(FontStart+5), GlyphAddress(0x1))
	assert.Equal(t, uint16(FontStart+75), GlyphAddress(0xF))

	// Only the low nibble selects the glyph.
	assert.Equal(t, GlyphAddress(0x3), GlyphAddress(0xF3))
}

func TestMemoryLoad(t *testing.T) {
	m := NewMemory()
	assert.NoError(t, m.Load([]byte{0x12, 0x34}))

	b, err := m.Read8(ProgramStart)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x12), b)

	b, err = m.Read8(ProgramStart + 1)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x34), b)
}

func TestMemoryLoadTooLarge(t *testing.T) {
	m := NewMemory()
	assert.NoError(t, m.Load(make([]byte, MaxProgramSize)))

	err := m.Load(make([]byte, MaxProgramSize+1))
	assert.True(t, errors.Is(err, ErrOutOfSpace))
}

func TestMemoryRead16(t *testing.T) {
	m := NewMemory()
	assert.NoError(t, m.Write8(ProgramStart, 0x12))
	assert.NoError(t, m.Write8(ProgramStart+1, 0x34))

	// Opcodes are fetched big-endian.
	w, err := m.Read16(ProgramStart)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1234), w)
}

func TestMemoryBounds(t *testing.T) {
	m := NewMemory()

	_, err := m.Read8(MemorySize)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	_, err = m.Read16(MemorySize - 1)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	err = m.Write8(MemorySize, 0xFF)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}
