package flagset

import (
	"github.com/iotaledger/flagset/constraints"
	"github.com/iotaledger/flagset/lo"
)

// Storage is the contract a flag holder has to fulfill. It owns exactly one bitmask of type T.
type Storage[T constraints.Bitwise] interface {
	// Value returns the currently stored bitmask.
	Value() T

	// Set replaces the stored bitmask with the given value.
	Set(value T)
}

// StoragePtr is a constraint for pointers to flag holders, which allows New and From to allocate the zero value of S
// and to use it as a Storage.
type StoragePtr[S any, T constraints.Bitwise] interface {
	*S

	Storage[T]
}

// New returns the default instance of the flag holder S, which has all bits cleared.
func New[S any, T constraints.Bitwise, P StoragePtr[S, T]]() *S {
	return new(S)
}

// From returns a new instance of the flag holder S that stores the given bitmask.
func From[S any, T constraints.Bitwise, P StoragePtr[S, T]](value T) *S {
	storage := New[S, T, P]()
	P(storage).Set(value)

	return storage
}

// Enable sets all bits of the given mask. Bits that are not part of the mask are left untouched.
func Enable[T constraints.Bitwise](storage Storage[T], mask T) {
	storage.Set(storage.Value() | mask)
}

// Disable clears all bits of the given mask. Bits that are not part of the mask are left untouched.
func Disable[T constraints.Bitwise](storage Storage[T], mask T) {
	storage.Set(storage.Value() &^ mask)
}

// Toggle flips the given mask as a single group: if any of its bits is currently set, all of them are cleared,
// otherwise all of them are set.
//
// This is intentionally not a per-bit XOR. Toggling a group where only some of the bits are set clears the whole group.
func Toggle[T constraints.Bitwise](storage Storage[T], mask T) {
	value := storage.Value()

	storage.Set(lo.Cond(value&mask != 0, value&^mask, value|mask))
}

// IsEnabled returns true if at least one bit of the given mask is set.
func IsEnabled[T constraints.Bitwise](storage Storage[T], mask T) bool {
	return storage.Value()&mask != 0
}

// Combine returns the union of the given masks, which can be used as a flag group.
func Combine[T constraints.Bitwise](masks ...T) T {
	return lo.Reduce(masks, func(group T, mask T) T {
		return group | mask
	}, T(0))
}
