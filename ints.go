package cursor

// Named integer readers for direct use at call sites that know their wire
// format. All multi-byte readers are in big-endian byte order and behave
// exactly like [DecodeBE] for the same width; use the decode functions for
// little- or native-endian data.

// ReadUint8 reads a uint8. Identical to [Reader.ReadByte].
func (r *Reader) ReadUint8() (uint8, error) {
	return r.ReadByte()
}

// ReadInt8 reads an int8.
func (r *Reader) ReadInt8() (int8, error) {
	b, err := r.ReadByte()

	return int8(b), err
}

// ReadUint16 reads a big-endian uint16.
func (r *Reader) ReadUint16() (uint16, error) {
	return DecodeBE[uint16](r)
}

// ReadInt16 reads a big-endian int16.
func (r *Reader) ReadInt16() (int16, error) {
	return DecodeBE[int16](r)
}

// ReadUint32 reads a big-endian uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	return DecodeBE[uint32](r)
}

// ReadInt32 reads a big-endian int32.
func (r *Reader) ReadInt32() (int32, error) {
	return DecodeBE[int32](r)
}

// ReadUint64 reads a big-endian uint64.
func (r *Reader) ReadUint64() (uint64, error) {
	return DecodeBE[uint64](r)
}

// ReadInt64 reads a big-endian int64.
func (r *Reader) ReadInt64() (int64, error) {
	return DecodeBE[int64](r)
}
