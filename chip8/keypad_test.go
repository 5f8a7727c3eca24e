package chip8

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/assert"
)

func TestKeypadSet(t *testing.T) {
	var k Keypad

	assert.NoError(t, k.Set(0x5, true))
	assert.True(t, k.Pressed(0x5))
	assert.False(t, k.Pressed(0x6))

	assert.NoError(t, k.Set(0x5, false))
	assert.False(t, k.Pressed(0x5))
}

func TestKeypadSetInvalid(t *testing.T) {
	var k Keypad

	err := k.Set(KeyCount, true)
	assert.True(t, errors.Is(err, ErrInvalidKey))
	assert.False(t, k.Pressed(KeyCount))
}

func TestKeypadEdge(t *testing.T) {
	var k Keypad

	_, ok := k.takeEdge()
	assert.False(t, ok)

	assert.NoError(t, k.Set(0x7, true))

	key, ok := k.takeEdge()
	assert.True(t, ok)
	assert.Equal(t, byte(0x7), key)

	// The transition is consumed.
	_, ok = k.takeEdge()
	assert.False(t, ok)
}

func TestKeypadEdgeHeldKey(t *testing.T) {
	var k Keypad

	assert.NoError(t, k.Set(0x3, true))
	_, ok := k.takeEdge()
	assert.True(t, ok)

	// Repeating the press while the key is held records no new transition.
	assert.NoError(t, k.Set(0x3, true))
	_, ok = k.takeEdge()
	assert.False(t, ok)

	// Releasing and pressing again does.
	assert.NoError(t, k.Set(0x3, false))
	assert.NoError(t, k.Set(0x3, true))
	key, ok := k.takeEdge()
	assert.True(t, ok)
	assert.Equal(t, byte(0x3), key)
}

func TestKeypadEdgeLowestFirst(t *testing.T) {
	var k Keypad

	assert.NoError(t, k.Set(0xC, true))
	assert.NoError(t, k.Set(0x2, true))

	key, ok := k.takeEdge()
	assert.True(t, ok)
	assert.Equal(t, byte(0x2), key)
}

func TestKeypadResetEdges(t *testing.T) {
	var k Keypad

	assert.NoError(t, k.Set(0x9, true))
	k.resetEdges()

	_, ok := k.takeEdge()
	assert.False(t, ok)
	assert.True(t, k.Pressed(0x9))
}
