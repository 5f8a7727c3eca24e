package chip8

import "github.com/pkg/errors"

// KeyCount is the number of keys on the CHIP-8 keypad.
const KeyCount = 16

// Keypad holds the pressed state of the 16-key keypad. The host input
// layer writes it through Set; the key opcodes read it. Transitions to
// pressed are tracked separately so the wait-for-key operation reacts
// only to presses that happen while it is waiting, not to keys that
// were already held.
type Keypad struct {
	pressed [KeyCount]bool
	edge    [KeyCount]bool
}

// Set records a key transition reported by the host.
func (k *Keypad) Set(key byte, pressed bool) error {
	if key >= KeyCount {
		return errors.Wrapf(ErrInvalidKey, "key %#02x", key)
	}
	if pressed && !k.pressed[key] {
		k.edge[key] = true
	}
	k.pressed[key] = pressed
	return nil
}

// Pressed reports whether key is currently held. Out-of-range keys read
// as released.
func (k *Keypad) Pressed(key byte) bool {
	return key < KeyCount && k.pressed[key]
}

// takeEdge returns the lowest key that transitioned to pressed since
// the last resetEdges, consuming all recorded transitions.
func (k *Keypad) takeEdge() (byte, bool) {
	for key := byte(0); key < KeyCount; key++ {
		if k.edge[key] {
			k.resetEdges()
			return key, true
		}
	}
	return 0, false
}

func (k *Keypad) resetEdges() {
	for i := range k.edge {
		k.edge[i] = false
	}
}
