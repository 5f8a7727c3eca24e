package chip8

import (
	"fmt"
	"strings"
)

// StackSize is the call stack capacity in return addresses.
const StackSize = 16

// Registers defines the machine's register file. VF doubles as the
// carry, borrow and collision flag; the arithmetic and draw opcodes
// overwrite it.
type Registers struct {
	V     [16]byte
	I     uint16
	PC    uint16
	Stack [StackSize]uint16
	SP    uint8
	Delay uint8
	Sound uint8
}

// NewRegisters creates a register file with PC at ProgramStart.
func NewRegisters() *Registers {
	return &Registers{PC: ProgramStart}
}

// Push saves addr on the call stack.
func (r *Registers) Push(addr uint16) error {
	if r.SP >= StackSize {
		return ErrStackOverflow
	}
	r.Stack[r.SP] = addr
	r.SP++
	return nil
}

// Pop removes and returns the top of the call stack.
func (r *Registers) Pop() (uint16, error) {
	if r.SP == 0 {
		return 0, ErrStackUnderflow
	}
	r.SP--
	return r.Stack[r.SP], nil
}

// TickTimers performs one 60 Hz timer tick: each timer, if nonzero,
// decrements by one. An expired timer stays at zero.
func (r *Registers) TickTimers() {
	if r.Delay > 0 {
		r.Delay--
	}
	if r.Sound > 0 {
		r.Sound--
	}
}

// Dump returns a readable snapshot of the register file.
func (r *Registers) Dump() string {
	var sb strings.Builder
	for i, v := range r.V {
		fmt.Fprintf(&sb, "[V%X: %02X] ", i, v)
		if i == 7 {
			sb.WriteByte('\n')
		}
	}
	fmt.Fprintf(&sb, "\n[PC: %04X] [SP: %02X] [I: %04X] [DT: %02X] [ST: %02X]",
		r.PC, r.SP, r.I, r.Delay, r.Sound)
	return sb.String()
}
