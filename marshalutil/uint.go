package marshalutil

import (
	"encoding/binary"

	"github.com/iotaledger/flagset/ierrors"
)

const (
	// Uint8Size contains the amount of bytes of a marshaled uint8 value.
	Uint8Size = 1
	// Uint16Size contains the amount of bytes of a marshaled uint16 value.
	Uint16Size = 2
	// Uint32Size contains the amount of bytes of a marshaled uint32 value.
	Uint32Size = 4
	// Uint64Size contains the amount of bytes of a marshaled uint64 value.
	Uint64Size = 8
)

// ErrUnsupportedSize is returned if an unsigned integer of an unknown byte size is marshaled.
var ErrUnsupportedSize = ierrors.New("unsupported integer size")

// WriteUint8 writes a marshaled uint8 value to the internal buffer.
func (util *MarshalUtil) WriteUint8(value uint8) *MarshalUtil {
	writeEndOffset := util.expandWriteCapacity(Uint8Size)
	util.bytes[util.writeOffset] = value
	util.WriteSeek(writeEndOffset)

	return util
}

// WriteUint16 writes a little-endian uint16 value to the internal buffer.
func (util *MarshalUtil) WriteUint16(value uint16) *MarshalUtil {
	writeEndOffset := util.expandWriteCapacity(Uint16Size)
	binary.LittleEndian.PutUint16(util.bytes[util.writeOffset:writeEndOffset], value)
	util.WriteSeek(writeEndOffset)

	return util
}

// WriteUint32 writes a little-endian uint32 value to the internal buffer.
func (util *MarshalUtil) WriteUint32(value uint32) *MarshalUtil {
	writeEndOffset := util.expandWriteCapacity(Uint32Size)
	binary.LittleEndian.PutUint32(util.bytes[util.writeOffset:writeEndOffset], value)
	util.WriteSeek(writeEndOffset)

	return util
}

// WriteUint64 writes a little-endian uint64 value to the internal buffer.
func (util *MarshalUtil) WriteUint64(value uint64) *MarshalUtil {
	writeEndOffset := util.expandWriteCapacity(Uint64Size)
	binary.LittleEndian.PutUint64(util.bytes[util.writeOffset:writeEndOffset], value)
	util.WriteSeek(writeEndOffset)

	return util
}

// WriteUint writes the lowest size bytes of value, where size is one of 1, 2, 4 or 8.
func (util *MarshalUtil) WriteUint(value uint64, size int) error {
	switch size {
	case Uint8Size:
		util.WriteUint8(uint8(value))
	case Uint16Size:
		util.WriteUint16(uint16(value))
	case Uint32Size:
		util.WriteUint32(uint32(value))
	case Uint64Size:
		util.WriteUint64(value)
	default:
		return ierrors.Wrapf(ErrUnsupportedSize, "%d bytes", size)
	}

	return nil
}

// ReadUint8 reads an uint8 value from the internal buffer.
func (util *MarshalUtil) ReadUint8() (uint8, error) {
	readEndOffset, err := util.checkReadCapacity(Uint8Size)
	if err != nil {
		return 0, err
	}
	defer util.ReadSeek(readEndOffset)

	return util.bytes[util.readOffset], nil
}

// ReadUint16 reads a little-endian uint16 value from the internal buffer.
func (util *MarshalUtil) ReadUint16() (uint16, error) {
	readEndOffset, err := util.checkReadCapacity(Uint16Size)
	if err != nil {
		return 0, err
	}
	defer util.ReadSeek(readEndOffset)

	return binary.LittleEndian.Uint16(util.bytes[util.readOffset:readEndOffset]), nil
}

// ReadUint32 reads a little-endian uint32 value from the internal buffer.
func (util *MarshalUtil) ReadUint32() (uint32, error) {
	readEndOffset, err := util.checkReadCapacity(Uint32Size)
	if err != nil {
		return 0, err
	}
	defer util.ReadSeek(readEndOffset)

	return binary.LittleEndian.Uint32(util.bytes[util.readOffset:readEndOffset]), nil
}

// ReadUint64 reads a little-endian uint64 value from the internal buffer.
func (util *MarshalUtil) ReadUint64() (uint64, error) {
	readEndOffset, err := util.checkReadCapacity(Uint64Size)
	if err != nil {
		return 0, err
	}
	defer util.ReadSeek(readEndOffset)

	return binary.LittleEndian.Uint64(util.bytes[util.readOffset:readEndOffset]), nil
}

// ReadUint reads an unsigned integer of the given size, where size is one of 1, 2, 4 or 8.
func (util *MarshalUtil) ReadUint(size int) (uint64, error) {
	switch size {
	case Uint8Size:
		value, err := util.ReadUint8()
		return uint64(value), err
	case Uint16Size:
		value, err := util.ReadUint16()
		return uint64(value), err
	case Uint32Size:
		value, err := util.ReadUint32()
		return uint64(value), err
	case Uint64Size:
		return util.ReadUint64()
	default:
		return 0, ierrors.Wrapf(ErrUnsupportedSize, "%d bytes", size)
	}
}
