package rhll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlipBitXORsStoredValue(t *testing.T) {
	s, err := New(4)
	require.NoError(t, err)

	s.registers[0] = 5
	s.FlipBit(0, 7)
	assert.Equal(t, uint8(5^(1<<7)), s.Register(0))

	// flipping the same bit again restores the original value
	s.FlipBit(0, 7)
	assert.Equal(t, uint8(5), s.Register(0))
}

func TestFlipBitCanLowerRegister(t *testing.T) {
	s, err := New(4)
	require.NoError(t, err)

	s.registers[3] = 0b00000100
	s.FlipBit(3, 2)
	assert.Zero(t, s.Register(3))
}

func TestRegisterReadsRawValue(t *testing.T) {
	s, err := New(4)
	require.NoError(t, err)

	s.registers[9] = 13
	assert.Equal(t, uint8(13), s.Register(9))
}
