package cursor

import (
	"encoding/binary"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Decode reads a single-byte value from the Reader. Unsigned targets take
// the byte as-is, signed targets reinterpret the same bit pattern as
// two's complement.
func Decode[T ~uint8 | ~int8](r *Reader) (T, error) {
	b, err := r.ReadByte()

	return T(b), err
}

// DecodeLE reads a T in little-endian byte order.
func DecodeLE[T constraints.Integer](r *Reader) (T, error) {
	return decodeOrder[T](r, binary.LittleEndian)
}

// DecodeBE reads a T in big-endian byte order.
func DecodeBE[T constraints.Integer](r *Reader) (T, error) {
	return decodeOrder[T](r, binary.BigEndian)
}

// DecodeNE reads a T in the byte order of the executing platform.
func DecodeNE[T constraints.Integer](r *Reader) (T, error) {
	return decodeOrder[T](r, binary.NativeEndian)
}

// decodeOrder reads exactly unsafe.Sizeof(T) bytes and reassembles them in
// the given byte order. The width is derived from the type parameter, so
// the read is atomic: either the full width is consumed or the Reader is
// left untouched.
func decodeOrder[T constraints.Integer](r *Reader, order binary.ByteOrder) (T, error) {
	var zero T

	switch unsafe.Sizeof(zero) {
	case 1:
		b, err := r.ReadByte()
		return T(b), err

	case 2:
		var buf [2]byte
		if err := r.ReadFull(buf[:]); err != nil {
			return zero, err
		}
		return T(order.Uint16(buf[:])), nil

	case 4:
		var buf [4]byte
		if err := r.ReadFull(buf[:]); err != nil {
			return zero, err
		}
		return T(order.Uint32(buf[:])), nil

	case 8:
		var buf [8]byte
		if err := r.ReadFull(buf[:]); err != nil {
			return zero, err
		}
		return T(order.Uint64(buf[:])), nil

	default:
		// INVARIANT: constraints.Integer types are 1, 2, 4 or 8 bytes wide
		panic("integer of unexpected size")
	}
}
