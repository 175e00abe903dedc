package bitmask

import (
	"unsafe"

	"github.com/iotaledger/flagset"
	"github.com/iotaledger/flagset/constraints"
	"github.com/iotaledger/flagset/ierrors"
	"github.com/iotaledger/flagset/marshalutil"
	"github.com/iotaledger/flagset/stringify"
)

// BitMask is a flag holder that stores its flags in a single value of type T.
type BitMask[T constraints.Bitwise] struct {
	value T
}

// New returns an empty BitMask.
func New[T constraints.Bitwise]() *BitMask[T] {
	return flagset.New[BitMask[T], T]()
}

// From returns a BitMask that holds the given value.
func From[T constraints.Bitwise](value T) *BitMask[T] {
	return flagset.From[BitMask[T], T](value)
}

// Value returns the raw bitmask.
func (b *BitMask[T]) Value() T {
	return b.value
}

// Set replaces the raw bitmask.
func (b *BitMask[T]) Set(value T) {
	b.value = value
}

// SetBit sets the bit at the given position.
func (b *BitMask[T]) SetBit(pos uint) {
	b.SetBits(T(1) << pos)
}

// SetBits sets the bits in the given bitmask.
func (b *BitMask[T]) SetBits(bits T) {
	flagset.Enable[T](b, bits)
}

// ClearBit clears the bit at the given position.
func (b *BitMask[T]) ClearBit(pos uint) {
	b.ClearBits(T(1) << pos)
}

// ClearBits clears the bits in the given bitmask.
func (b *BitMask[T]) ClearBits(bits T) {
	flagset.Disable[T](b, bits)
}

// ToggleBits flips the bits in the given bitmask as a group.
func (b *BitMask[T]) ToggleBits(bits T) {
	flagset.Toggle[T](b, bits)
}

// HasBit checks whether the bit at the given position is set.
func (b *BitMask[T]) HasBit(pos uint) bool {
	return b.HasBits(T(1) << pos)
}

// HasBits checks whether any of the bits in the given bitmask is set.
func (b *BitMask[T]) HasBits(bits T) bool {
	return flagset.IsEnabled[T](b, bits)
}

// ModifyBit sets or clears the bit at the given position, given the supplied state bool.
func (b *BitMask[T]) ModifyBit(pos uint, state bool) {
	if state {
		b.SetBit(pos)

		return
	}

	b.ClearBit(pos)
}

// Size returns the number of bytes of the encoded BitMask.
func (b *BitMask[T]) Size() int {
	return int(unsafe.Sizeof(b.value))
}

// Width returns the number of bits that the BitMask can hold.
func (b *BitMask[T]) Width() int {
	return b.Size() * 8
}

// Bytes returns the little-endian encoding of the BitMask.
func (b *BitMask[T]) Bytes() ([]byte, error) {
	util := marshalutil.New(b.Size())
	if err := util.WriteUint(b.bits(), b.Size()); err != nil {
		return nil, ierrors.Wrap(err, "failed to serialize BitMask")
	}

	return util.Bytes(), nil
}

// FromBytes decodes the BitMask from the given bytes and returns the number of bytes that were read.
func (b *BitMask[T]) FromBytes(bytes []byte) (int, error) {
	util := marshalutil.NewFromBytes(bytes)

	value, err := util.ReadUint(b.Size())
	if err != nil {
		return 0, ierrors.Wrap(err, "failed to parse BitMask")
	}
	b.Set(T(value))

	return util.ReadOffset(), nil
}

func (b *BitMask[T]) String() string {
	return stringify.Struct("BitMask",
		stringify.NewStructField("value", stringify.Binary(b.bits(), b.Width())),
	)
}

// bits returns the value as an unsigned integer without the sign extension of negative signed values.
func (b *BitMask[T]) bits() uint64 {
	if b.Width() >= 64 {
		return uint64(b.value)
	}

	return uint64(b.value) & (uint64(1)<<b.Width() - 1)
}

var (
	_ flagset.Storage[uint8]     = (*BitMask[uint8])(nil)
	_ constraints.Serializable   = (*BitMask[uint8])(nil)
	_ constraints.Deserializable = (*BitMask[uint8])(nil)
)
