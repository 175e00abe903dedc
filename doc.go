// Package flagset provides a generic contract for types that store a set of flags in a single integer bitmask.
//
// A concrete flag holder only has to implement the two primitives of Storage: Value, which returns the current
// bitmask, and Set, which replaces it wholesale. Every higher level operation (Enable, Disable, Toggle and IsEnabled)
// as well as the constructors New and From is derived from these two primitives, so implementers never write bitwise
// logic themselves. The FlagSet decorator exposes the same operations as methods on top of any Storage.
//
// The meaning of the individual bits is defined by the caller through its own constants:
//
//	const (
//		FlagVisible uint8 = 1 << iota
//		FlagLocked
//	)
//
//	type Flags struct{ value uint8 }
//
//	func (f *Flags) Value() uint8     { return f.value }
//	func (f *Flags) Set(value uint8)  { f.value = value }
//
//	flags := flagset.New[Flags, uint8]()
//	flagset.Enable(flags, FlagVisible|FlagLocked)
//
// Every operation accepts a mask, which is either a single flag or the union of several flags (a flag group). Two
// operations treat a group as one unit instead of looking at each bit on its own:
//
//   - IsEnabled reports whether ANY bit of the mask is set. Callers that need "all bits set" have to check each flag
//     separately.
//   - Toggle clears the whole group if ANY bit of it is set and sets the whole group otherwise. It is not a per-bit
//     XOR: toggling a group where only some bits are set clears all of them.
//
// The operations are total and never fail. Instances are not safe for concurrent use; callers that share a flag
// holder between goroutines have to guard the Value/Set pair themselves.
package flagset
