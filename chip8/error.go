package chip8

import (
	"fmt"

	"github.com/pkg/errors"
)

// Fault conditions the core can raise. All of them except ErrInvalidKey
// are fatal to the current run.
var (
	ErrOutOfBounds    = errors.New("memory access out of bounds")
	ErrOutOfSpace     = errors.New("program does not fit in memory")
	ErrStackOverflow  = errors.New("call stack overflow")
	ErrStackUnderflow = errors.New("call stack underflow")
	ErrInvalidKey     = errors.New("invalid key identifier")
	ErrUnknownOpcode  = errors.New("unknown opcode")
)

// Fault is a fatal runtime error. It carries the faulting address and
// opcode plus a register snapshot so a malformed ROM can be diagnosed.
type Fault struct {
	PC        uint16
	Opcode    Opcode
	Registers Registers
	Err       error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%04X: opcode %s: %v", f.PC, f.Opcode, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
