package bitmask_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/flagset/bitmask"
	"github.com/iotaledger/flagset/marshalutil"
)

func TestBitmask(t *testing.T) {
	b := bitmask.New[uint8]()

	require.False(t, b.HasBit(0), "flag at pos 0 should not be set")
	require.False(t, b.HasBit(1), "flag at pos 1 should not be set")

	b.SetBit(0)
	require.True(t, b.HasBit(0), "flag at pos 0 should be set")
	b.SetBit(1)
	require.True(t, b.HasBit(1), "flag at pos 1 should be set")
	require.Equal(t, uint8(0b11), b.Value())

	b.ClearBit(0)
	require.False(t, b.HasBit(0), "flag at pos 0 should not be set")
	b.ClearBit(1)
	require.False(t, b.HasBit(1), "flag at pos 1 should not be set")
	require.Equal(t, uint8(0), b.Value())
}

func TestBitmask_ModifyBit(t *testing.T) {
	b := bitmask.New[uint16]()

	b.ModifyBit(15, true)
	require.True(t, b.HasBit(15))
	require.Equal(t, uint16(1<<15), b.Value())

	b.ModifyBit(15, false)
	require.False(t, b.HasBit(15))
	require.Equal(t, uint16(0), b.Value())
}

func TestBitmask_Bits(t *testing.T) {
	b := bitmask.From[uint32](0b0101)

	require.True(t, b.HasBits(0b0011), "any bit of the group is set")
	require.False(t, b.HasBits(0b1010))

	b.ToggleBits(0b0011)
	require.Equal(t, uint32(0b0100), b.Value(), "group with a set bit is cleared as a whole")

	b.ToggleBits(0b0011)
	require.Equal(t, uint32(0b0111), b.Value(), "clear group is set as a whole")

	b.SetBits(0b1000)
	b.ClearBits(0b0110)
	require.Equal(t, uint32(0b1001), b.Value())
}

func TestBitmask_Bytes(t *testing.T) {
	tests := []struct {
		name     string
		bytes    func() ([]byte, error)
		expected []byte
	}{
		{
			name:     "uint8",
			bytes:    bitmask.From[uint8](0xA5).Bytes,
			expected: []byte{0xA5},
		},
		{
			name:     "uint16",
			bytes:    bitmask.From[uint16](0x0102).Bytes,
			expected: []byte{0x02, 0x01},
		},
		{
			name:     "uint32",
			bytes:    bitmask.From[uint32](0x01020304).Bytes,
			expected: []byte{0x04, 0x03, 0x02, 0x01},
		},
		{
			name:     "uint64",
			bytes:    bitmask.From[uint64](1).Bytes,
			expected: []byte{1, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name:     "int8",
			bytes:    bitmask.From[int8](-1).Bytes,
			expected: []byte{0xFF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bytes, err := tt.bytes()
			require.NoError(t, err)
			require.Equal(t, tt.expected, bytes)
		})
	}
}

func TestBitmask_FromBytes(t *testing.T) {
	source := bitmask.From[uint16](0b1000_0000_0000_0001)

	bytes, err := source.Bytes()
	require.NoError(t, err)

	restored := bitmask.New[uint16]()
	consumed, err := restored.FromBytes(append(bytes, 0xFF))
	require.NoError(t, err)
	require.Equal(t, 2, consumed)
	require.Equal(t, source.Value(), restored.Value())

	signed := bitmask.New[int8]()
	_, err = signed.FromBytes([]byte{0x80})
	require.NoError(t, err)
	require.Equal(t, int8(-128), signed.Value())

	_, err = bitmask.New[uint32]().FromBytes([]byte{1, 2})
	require.ErrorIs(t, err, marshalutil.ErrShortBuffer)
}

func TestBitmask_String(t *testing.T) {
	require.Equal(t, "BitMask {\n    value: 0b00000101\n}", bitmask.From[uint8](5).String())
	require.Equal(t, "BitMask {\n    value: 0b11111111\n}", bitmask.From[int8](-1).String())
	require.Equal(t, "BitMask {\n    value: 0b0000000000000000\n}", bitmask.New[uint16]().String())
}

func TestBitmask_Width(t *testing.T) {
	require.Equal(t, 8, bitmask.New[uint8]().Width())
	require.Equal(t, 16, bitmask.New[int16]().Width())
	require.Equal(t, 32, bitmask.New[uint32]().Width())
	require.Equal(t, 64, bitmask.New[uint64]().Width())
}
