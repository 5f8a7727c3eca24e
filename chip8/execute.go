package chip8

// execute applies a single decoded operation to the machine state.
// PC has already been advanced past the opcode; control flow operations
// overwrite it.
func (m *Machine) execute(op Op, opcode Opcode) error {
	reg := m.reg
	x, y := opcode.x(), opcode.y()

	switch op {
	case Sys:
		// 0nnn ran native code on the original hardware. Modern
		// interpreters treat it as a no-op.

	case Cls:
		m.display.Clear()

	case Ret:
		addr, err := reg.Pop()
		if err != nil {
			return err
		}
		reg.PC = addr

	case Jp:
		reg.PC = opcode.nnn()

	case Call:
		if err := reg.Push(reg.PC); err != nil {
			return err
		}
		reg.PC = opcode.nnn()

	case SeByte:
		if reg.V[x] == opcode.nn() {
			reg.PC += 2
		}

	case SneByte:
		if reg.V[x] != opcode.nn() {
			reg.PC += 2
		}

	case SeReg:
		if reg.V[x] == reg.V[y] {
			reg.PC += 2
		}

	case LdByte:
		reg.V[x] = opcode.nn()

	case AddByte:
		reg.V[x] += opcode.nn()

	case LdReg:
		reg.V[x] = reg.V[y]

	case Or:
		reg.V[x] |= reg.V[y]

	case And:
		reg.V[x] &= reg.V[y]

	case Xor:
		reg.V[x] ^= reg.V[y]

	case AddReg:
		sum := uint16(reg.V[x]) + uint16(reg.V[y])
		reg.V[x] = byte(sum)
		reg.V[0xF] = byte(sum >> 8)

	case Sub:
		flag := byte(0)
		if reg.V[x] >= reg.V[y] {
			flag = 1
		}
		reg.V[x] -= reg.V[y]
		reg.V[0xF] = flag

	case Shr:
		if m.quirks.ShiftVY {
			reg.V[x] = reg.V[y]
		}
		flag := reg.V[x] & 0x01
		reg.V[x] >>= 1
		reg.V[0xF] = flag

	case Subn:
		flag := byte(0)
		if reg.V[y] >= reg.V[x] {
			flag = 1
		}
		reg.V[x] = reg.V[y] - reg.V[x]
		reg.V[0xF] = flag

	case Shl:
		if m.quirks.ShiftVY {
			reg.V[x] = reg.V[y]
		}
		flag := reg.V[x] >> 7
		reg.V[x] <<= 1
		reg.V[0xF] = flag

	case SneReg:
		if reg.V[x] != reg.V[y] {
			reg.PC += 2
		}

	case LdI:
		reg.I = opcode.nnn()

	case JpOffset:
		if m.quirks.JumpVX {
			reg.PC = opcode.nnn() + uint16(reg.V[x])
		} else {
			reg.PC = opcode.nnn() + uint16(reg.V[0])
		}

	case Rnd:
		reg.V[x] = byte(m.rng.Intn(256)) & opcode.nn()

	case Drw:
		return m.drawSprite(x, y, opcode.n())

	case Skp:
		if m.keys.Pressed(reg.V[x] & 0x0F) {
			reg.PC += 2
		}

	case Sknp:
		if !m.keys.Pressed(reg.V[x] & 0x0F) {
			reg.PC += 2
		}

	case LdFromDelay:
		reg.V[x] = reg.Delay

	case LdKey:
		// Suspend until a key press arrives. Presses recorded before
		// this point do not count.
		m.keys.resetEdges()
		m.waiting = true
		m.waitReg = x

	case LdToDelay:
		reg.Delay = reg.V[x]

	case LdToSound:
		reg.Sound = reg.V[x]

	case AddI:
		sum := reg.I + uint16(reg.V[x])
		if m.quirks.IndexOverflowVF {
			if sum > 0x0FFF {
				reg.V[0xF] = 1
			} else {
				reg.V[0xF] = 0
			}
		}
		reg.I = sum

	case LdGlyph:
		reg.I = GlyphAddress(reg.V[x])

	case Bcd:
		v := reg.V[x]
		if err := m.mem.Write8(reg.I, v/100); err != nil {
			return err
		}
		if err := m.mem.Write8(reg.I+1, v/10%10); err != nil {
			return err
		}
		if err := m.mem.Write8(reg.I+2, v%10); err != nil {
			return err
		}

	case SaveRegs:
		for i := byte(0); i <= x; i++ {
			if err := m.mem.Write8(reg.I+uint16(i), reg.V[i]); err != nil {
				return err
			}
		}
		if m.quirks.IncrementI {
			reg.I += uint16(x) + 1
		}

	case LoadRegs:
		for i := byte(0); i <= x; i++ {
			v, err := m.mem.Read8(reg.I + uint16(i))
			if err != nil {
				return err
			}
			reg.V[i] = v
		}
		if m.quirks.IncrementI {
			reg.I += uint16(x) + 1
		}
	}

	return nil
}

// drawSprite XORs the n-row sprite at I onto the display at (Vx, Vy),
// wrapping coordinates, and sets VF when any set pixel is turned off.
func (m *Machine) drawSprite(x, y, n byte) error {
	reg := m.reg
	px := int(reg.V[x])
	py := int(reg.V[y])
	reg.V[0xF] = 0

	for row := 0; row < int(n); row++ {
		bits, err := m.mem.Read8(reg.I + uint16(row))
		if err != nil {
			return err
		}
		for col := 0; col < 8; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}
			if m.display.xor(px+col, py+row) {
				reg.V[0xF] = 1
			}
		}
	}
	return nil
}
