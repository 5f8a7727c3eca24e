package chip8

import (
	"math/rand"
	"time"
)

// TraceFunc represents a callback handler for debug trace output.
type TraceFunc func(Instruction)

// Quirks selects between the behaviors historical interpreters disagree
// on. The zero value matches the interpreter this core derives from.
type Quirks struct {
	// ShiftVY makes 8xy6/8xyE load Vy into Vx before shifting instead
	// of shifting Vx in place.
	ShiftVY bool

	// JumpVX makes Bnnn jump to xnn + Vx instead of nnn + V0.
	JumpVX bool

	// IncrementI makes Fx55/Fx65 advance I past the copied registers.
	IncrementI bool

	// IndexOverflowVF makes Fx1E set VF when I leaves the 12-bit range.
	IndexOverflowVF bool
}

// Config carries construction options for a Machine.
type Config struct {
	Quirks Quirks

	// Seed for the Cxnn random generator. Zero selects a time-based seed.
	Seed int64

	// Trace, when set, is invoked with every instruction before it executes.
	Trace TraceFunc
}

// Machine is the complete CHIP-8 machine state: memory, register file,
// keypad, display and timers. A single execution timeline owns it;
// hosts that render or read input on another thread must synchronize
// access themselves.
type Machine struct {
	mem     *Memory
	reg     *Registers
	keys    Keypad
	display Display
	quirks  Quirks
	rng     *rand.Rand
	trace   TraceFunc

	// Fx0A suspension: no instruction progress until a fresh key press.
	waiting bool
	waitReg byte
}

// New creates a machine with the font installed and PC at ProgramStart.
func New(cfg Config) *Machine {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	trace := cfg.Trace
	if trace == nil {
		trace = func(Instruction) { /* nop */ }
	}

	return &Machine{
		mem:    NewMemory(),
		reg:    NewRegisters(),
		quirks: cfg.Quirks,
		rng:    rand.New(rand.NewSource(seed)),
		trace:  trace,
	}
}

// Load copies rom into program memory.
func (m *Machine) Load(rom []byte) error {
	return m.mem.Load(rom)
}

// Display returns the framebuffer for the rendering layer.
func (m *Machine) Display() *Display {
	return &m.display
}

// Registers returns the register file for diagnostics.
func (m *Machine) Registers() *Registers {
	return m.reg
}

// SetKey records a key transition from the host input layer.
func (m *Machine) SetKey(key byte, pressed bool) error {
	return m.keys.Set(key, pressed)
}

// ToneActive reports whether the sound timer is driving a tone.
func (m *Machine) ToneActive() bool {
	return m.reg.Sound > 0
}

// Waiting reports whether the machine is suspended on wait-for-key.
func (m *Machine) Waiting() bool {
	return m.waiting
}

// TickTimers performs one 60 Hz timer tick. The scheduler keeps calling
// this while the machine waits for a key.
func (m *Machine) TickTimers() {
	m.reg.TickTimers()
}

// Step executes a single instruction cycle. While the machine is
// suspended on wait-for-key it only polls the keypad and makes no
// instruction progress. A returned error is always a *Fault and halts
// the run; the machine state it describes is the state at the fault.
func (m *Machine) Step() error {
	if m.waiting {
		if key, ok := m.keys.takeEdge(); ok {
			m.reg.V[m.waitReg] = key
			m.waiting = false
		}
		return nil
	}

	pc := m.reg.PC
	word, err := m.mem.Read16(pc)
	if err != nil {
		return m.fault(pc, 0, err)
	}

	opcode := Opcode(word)
	op, err := Decode(opcode)
	if err != nil {
		return m.fault(pc, opcode, err)
	}

	m.reg.PC += 2
	m.trace(Instruction{Op: op, Opcode: opcode, PC: pc})

	if err := m.execute(op, opcode); err != nil {
		return m.fault(pc, opcode, err)
	}
	return nil
}

func (m *Machine) fault(pc uint16, opcode Opcode, err error) error {
	return &Fault{PC: pc, Opcode: opcode, Registers: *m.reg, Err: err}
}
