package marshalutil

import (
	"github.com/iotaledger/flagset/ierrors"
)

// ErrShortBuffer is returned if a read exceeds the remaining bytes of the buffer.
var ErrShortBuffer = ierrors.New("short buffer")

// MarshalUtil is a byte buffer with independent read and write offsets that grows on write.
type MarshalUtil struct {
	bytes       []byte
	readOffset  int
	writeOffset int
	size        int
}

// New creates an empty MarshalUtil with the given initial capacity.
func New(capacity int) *MarshalUtil {
	return &MarshalUtil{
		bytes: make([]byte, 0, capacity),
	}
}

// NewFromBytes creates a MarshalUtil that reads from the given bytes.
func NewFromBytes(bytes []byte) *MarshalUtil {
	return &MarshalUtil{
		bytes: bytes,
		size:  len(bytes),
	}
}

func (util *MarshalUtil) ReadOffset() int {
	return util.readOffset
}

func (util *MarshalUtil) WriteOffset() int {
	return util.writeOffset
}

func (util *MarshalUtil) WriteSeek(offset int) {
	if offset < 0 {
		util.writeOffset += offset
	} else {
		util.writeOffset = offset
	}
}

func (util *MarshalUtil) ReadSeek(offset int) {
	if offset < 0 {
		util.readOffset += offset
	} else {
		util.readOffset = offset
	}
}

// Bytes returns the written bytes. If clone is set, the returned slice does not share memory with the buffer.
func (util *MarshalUtil) Bytes(clone ...bool) []byte {
	if len(clone) >= 1 && clone[0] {
		clone := make([]byte, util.size)
		copy(clone, util.bytes)

		return clone
	}

	return util.bytes[:util.size]
}

func (util *MarshalUtil) checkReadCapacity(length int) (readEndOffset int, err error) {
	readEndOffset = util.readOffset + length

	if readEndOffset > util.size {
		err = ierrors.Wrapf(ErrShortBuffer, "tried to read %d bytes from %d bytes input", readEndOffset, util.size)
	}

	return
}

func (util *MarshalUtil) expandWriteCapacity(length int) (writeEndOffset int) {
	writeEndOffset = util.writeOffset + length

	if writeEndOffset > util.size {
		util.bytes = append(util.bytes[:util.size], make([]byte, writeEndOffset-util.size)...)
		util.size = writeEndOffset
	}

	return
}
