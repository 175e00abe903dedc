package constraints

// Signed is a constraint that permits any signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Bitwise is a constraint that permits any type that can be combined with the bitwise operators &, |, ^ and &^
// and that has a distinguished zero value (the all-bits-clear mask).
//
// Every Go integer type qualifies, so Bitwise is an alias of Integer that names the capability a flag set relies on
// rather than the arithmetic one.
type Bitwise interface {
	Integer
}

// Serializable is a type constraint that ensures that the type can be serialized to bytes.
type Serializable interface {
	Bytes() ([]byte, error)
}

// Deserializable is a type constraint that ensures that the type can be deserialized from bytes.
type Deserializable interface {
	FromBytes([]byte) (int, error)
}

// MarshalablePtr is a type constraint for pointers to types that can be serialized to and deserialized from bytes.
type MarshalablePtr[V any] interface {
	*V
	Serializable
	Deserializable
}
