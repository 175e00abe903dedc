package flagset

import (
	"github.com/iotaledger/flagset/constraints"
)

// FlagSet decorates a Storage with the derived flag operations, so they can be called as methods.
type FlagSet[T constraints.Bitwise] struct {
	Storage[T]
}

// Wrap returns a FlagSet that operates on the given Storage.
func Wrap[T constraints.Bitwise](storage Storage[T]) *FlagSet[T] {
	return &FlagSet[T]{
		Storage: storage,
	}
}

// Enable sets all bits of the given mask.
func (f *FlagSet[T]) Enable(mask T) {
	Enable(f.Storage, mask)
}

// Disable clears all bits of the given mask.
func (f *FlagSet[T]) Disable(mask T) {
	Disable(f.Storage, mask)
}

// Toggle flips the given mask as a single group (see Toggle).
func (f *FlagSet[T]) Toggle(mask T) {
	Toggle(f.Storage, mask)
}

// IsEnabled returns true if at least one bit of the given mask is set.
func (f *FlagSet[T]) IsEnabled(mask T) bool {
	return IsEnabled(f.Storage, mask)
}
