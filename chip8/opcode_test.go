package chip8

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/assert"
)

func TestOpcodeOperands(t *testing.T) {
	op := Opcode(0xD123)

	assert.Equal(t, byte(0xD), op.kind())
	assert.Equal(t, byte(0x1), op.x())
	assert.Equal(t, byte(0x2), op.y())
	assert.Equal(t, byte(0x3), op.n())
	assert.Equal(t, byte(0x23), op.nn())
	assert.Equal(t, uint16(0x123), op.nnn())
}

func TestDecode(t *testing.T) {
	tests := []struct {
		word uint16
		want Op
	}{
		{0x0123, Sys},
		{0x00E0, Cls},
		{0x00EE, Ret},
		{0x1234, Jp},
		{0x2345, Call},
		{0x3A42, SeByte},
		{0x4A42, SneByte},
		{0x5AB0, SeReg},
		{0x6A42, LdByte},
		{0x7A42, AddByte},
		{0x8AB0, LdReg},
		{0x8AB1, Or},
		{0x8AB2, And},
		{0x8AB3, Xor},
		{0x8AB4, AddReg},
		{0x8AB5, Sub},
		{0x8AB6, Shr},
		{0x8AB7, Subn},
		{0x8ABE, Shl},
		{0x9AB0, SneReg},
		{0xA123, LdI},
		{0xB123, JpOffset},
		{0xCA42, Rnd},
		{0xDAB5, Drw},
		{0xEA9E, Skp},
		{0xEAA1, Sknp},
		{0xFA07, LdFromDelay},
		{0xFA0A, LdKey},
		{0xFA15, LdToDelay},
		{0xFA18, LdToSound},
		{0xFA1E, AddI},
		{0xFA29, LdGlyph},
		{0xFA33, Bcd},
		{0xFA55, SaveRegs},
		{0xFA65, LoadRegs},
	}

	for _, tt := range tests {
		op, err := Decode(Opcode(tt.word))
		assert.NoError(t, err)
		assert.Equal(t, tt.want, op)
	}
}

func TestDecodeUnknown(t *testing.T) {
	words := []uint16{
		0x5AB1, // 5xyn with n != 0
		0x8AB8,
		0x8ABF,
		0x9ABF,
		0xEA00,
		0xEAFF,
		0xFA00,
		0xFAFF,
	}

	for _, word := range words {
		_, err := Decode(Opcode(word))
		assert.True(t, errors.Is(err, ErrUnknownOpcode))
	}
}

func TestInstructionString(t *testing.T) {
	tests := []struct {
		word uint16
		want string
	}{
		{0x00E0, "CLS"},
		{0x00EE, "RET"},
		{0x1234, "JP $0234"},
		{0x2345, "CALL $0345"},
		{0x3A42, "SE VA, 42"},
		{0x6A42, "LD VA, 42"},
		{0x8AB4, "ADD VA, VB"},
		{0xA123, "LD I, $0123"},
		{0xDAB5, "DRW VA, VB, 5"},
		{0xEA9E, "SKP VA"},
		{0xFA0A, "LD VA, K"},
		{0xFA29, "LD F, VA"},
		{0xFA33, "LD B, VA"},
		{0xFA55, "LD [I], VA"},
		{0xFA65, "LD VA, [I]"},
	}

	for _, tt := range tests {
		opcode := Opcode(tt.word)
		op, err := Decode(opcode)
		assert.NoError(t, err)

		i := Instruction{Op: op, Opcode: opcode, PC: 0x200}
		assert.Equal(t, tt.want, i.String())
	}
}
