package chip8

import (
	"fmt"

	"github.com/pkg/errors"
)

// Opcode is one 16-bit CHIP-8 instruction word, fetched big-endian from
// two consecutive memory bytes.
type Opcode uint16

// kind returns the high nibble selecting the operation class.
func (op Opcode) kind() byte { return byte(op >> 12) }

// x returns the second nibble, the Vx register operand.
func (op Opcode) x() byte { return byte(op>>8) & 0x0F }

// y returns the third nibble, the Vy register operand.
func (op Opcode) y() byte { return byte(op>>4) & 0x0F }

// n returns the low nibble.
func (op Opcode) n() byte { return byte(op) & 0x0F }

// nn returns the low byte.
func (op Opcode) nn() byte { return byte(op) }

// nnn returns the low 12 bits, an absolute address.
func (op Opcode) nnn() uint16 { return uint16(op) & 0x0FFF }

func (op Opcode) String() string {
	return fmt.Sprintf("%04X", uint16(op))
}

// Op identifies a decoded operation.
type Op uint8

// The CHIP-8 instruction set.
const (
	Sys         Op = iota // 0nnn, ignored by modern interpreters
	Cls                   // 00E0
	Ret                   // 00EE
	Jp                    // 1nnn
	Call                  // 2nnn
	SeByte                // 3xnn
	SneByte               // 4xnn
	SeReg                 // 5xy0
	LdByte                // 6xnn
	AddByte               // 7xnn
	LdReg                 // 8xy0
	Or                    // 8xy1
	And                   // 8xy2
	Xor                   // 8xy3
	AddReg                // 8xy4
	Sub                   // 8xy5
	Shr                   // 8xy6
	Subn                  // 8xy7
	Shl                   // 8xyE
	SneReg                // 9xy0
	LdI                   // Annn
	JpOffset              // Bnnn
	Rnd                   // Cxnn
	Drw                   // Dxyn
	Skp                   // Ex9E
	Sknp                  // ExA1
	LdFromDelay           // Fx07
	LdKey                 // Fx0A
	LdToDelay             // Fx15
	LdToSound             // Fx18
	AddI                  // Fx1E
	LdGlyph               // Fx29
	Bcd                   // Fx33
	SaveRegs              // Fx55
	LoadRegs              // Fx65
)

// Decode classifies op into one of the known operations. Bit patterns
// that match no operation yield ErrUnknownOpcode carrying the raw word.
func Decode(op Opcode) (Op, error) {
	switch op.kind() {
	case 0x0:
		switch uint16(op) {
		case 0x00E0:
			return Cls, nil
		case 0x00EE:
			return Ret, nil
		default:
			return Sys, nil
		}
	case 0x1:
		return Jp, nil
	case 0x2:
		return Call, nil
	case 0x3:
		return SeByte, nil
	case 0x4:
		return SneByte, nil
	case 0x5:
		if op.n() == 0x0 {
			return SeReg, nil
		}
	case 0x6:
		return LdByte, nil
	case 0x7:
		return AddByte, nil
	case 0x8:
		switch op.n() {
		case 0x0:
			return LdReg, nil
		case 0x1:
			return Or, nil
		case 0x2:
			return And, nil
		case 0x3:
			return Xor, nil
		case 0x4:
			return AddReg, nil
		case 0x5:
			return Sub, nil
		case 0x6:
			return Shr, nil
		case 0x7:
			return Subn, nil
		case 0xE:
			return Shl, nil
		}
	case 0x9:
		if op.n() == 0x0 {
			return SneReg, nil
		}
	case 0xA:
		return LdI, nil
	case 0xB:
		return JpOffset, nil
	case 0xC:
		return Rnd, nil
	case 0xD:
		return Drw, nil
	case 0xE:
		switch op.nn() {
		case 0x9E:
			return Skp, nil
		case 0xA1:
			return Sknp, nil
		}
	case 0xF:
		switch op.nn() {
		case 0x07:
			return LdFromDelay, nil
		case 0x0A:
			return LdKey, nil
		case 0x15:
			return LdToDelay, nil
		case 0x18:
			return LdToSound, nil
		case 0x1E:
			return AddI, nil
		case 0x29:
			return LdGlyph, nil
		case 0x33:
			return Bcd, nil
		case 0x55:
			return SaveRegs, nil
		case 0x65:
			return LoadRegs, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownOpcode, "%s", op)
}

// Instruction pairs a decoded operation with its raw opcode word and
// the address it was fetched from.
type Instruction struct {
	Op     Op
	Opcode Opcode
	PC     uint16
}

// String returns the instruction's disassembled mnemonic.
func (i Instruction) String() string {
	op := i.Opcode
	switch i.Op {
	case Sys:
		return fmt.Sprintf("SYS $%04X", op.nnn())
	case Cls:
		return "CLS"
	case Ret:
		return "RET"
	case Jp:
		return fmt.Sprintf("JP $%04X", op.nnn())
	case Call:
		return fmt.Sprintf("CALL $%04X", op.nnn())
	case SeByte:
		return fmt.Sprintf("SE V%X, %02X", op.x(), op.nn())
	case SneByte:
		return fmt.Sprintf("SNE V%X, %02X", op.x(), op.nn())
	case SeReg:
		return fmt.Sprintf("SE V%X, V%X", op.x(), op.y())
	case LdByte:
		return fmt.Sprintf("LD V%X, %02X", op.x(), op.nn())
	case AddByte:
		return fmt.Sprintf("ADD V%X, %02X", op.x(), op.nn())
	case LdReg:
		return fmt.Sprintf("LD V%X, V%X", op.x(), op.y())
	case Or:
		return fmt.Sprintf("OR V%X, V%X", op.x(), op.y())
	case And:
		return fmt.Sprintf("AND V%X, V%X", op.x(), op.y())
	case Xor:
		return fmt.Sprintf("XOR V%X, V%X", op.x(), op.y())
	case AddReg:
		return fmt.Sprintf("ADD V%X, V%X", op.x(), op.y())
	case Sub:
		return fmt.Sprintf("SUB V%X, V%X", op.x(), op.y())
	case Shr:
		return fmt.Sprintf("SHR V%X", op.x())
	case Subn:
		return fmt.Sprintf("SUBN V%X, V%X", op.x(), op.y())
	case Shl:
		return fmt.Sprintf("SHL V%X", op.x())
	case SneReg:
		return fmt.Sprintf("SNE V%X, V%X", op.x(), op.y())
	case LdI:
		return fmt.Sprintf("LD I, $%04X", op.nnn())
	case JpOffset:
		return fmt.Sprintf("JP V0, $%04X", op.nnn())
	case Rnd:
		return fmt.Sprintf("RND V%X, %02X", op.x(), op.nn())
	case Drw:
		return fmt.Sprintf("DRW V%X, V%X, %d", op.x(), op.y(), op.n())
	case Skp:
		return fmt.Sprintf("SKP V%X", op.x())
	case Sknp:
		return fmt.Sprintf("SKNP V%X", op.x())
	case LdFromDelay:
		return fmt.Sprintf("LD V%X, DT", op.x())
	case LdKey:
		return fmt.Sprintf("LD V%X, K", op.x())
	case LdToDelay:
		return fmt.Sprintf("LD DT, V%X", op.x())
	case LdToSound:
		return fmt.Sprintf("LD ST, V%X", op.x())
	case AddI:
		return fmt.Sprintf("ADD I, V%X", op.x())
	case LdGlyph:
		return fmt.Sprintf("LD F, V%X", op.x())
	case Bcd:
		return fmt.Sprintf("LD B, V%X", op.x())
	case SaveRegs:
		return fmt.Sprintf("LD [I], V%X", op.x())
	case LoadRegs:
		return fmt.Sprintf("LD V%X, [I]", op.x())
	}
	return fmt.Sprintf("DW $%04X", uint16(op))
}
