package cursor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadInts(t *testing.T) {
	data := []byte{
		0x2a,       // uint8
		0xff,       // int8
		0x01, 0x02, // uint16
		0xff, 0xfe, // int16
		0x01, 0x02, 0x03, 0x04, // uint32
		0xff, 0xff, 0xff, 0xfc, // int32
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, // uint64
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xf8, // int64
	}

	r := New(data)

	u8, err := r.ReadUint8()
	require.Equal(t, err, nil)
	require.Equal(t, u8, uint8(42))

	i8, err := r.ReadInt8()
	require.Equal(t, err, nil)
	require.Equal(t, i8, int8(-1))

	u16, err := r.ReadUint16()
	require.Equal(t, err, nil)
	require.Equal(t, u16, uint16(0x0102))

	i16, err := r.ReadInt16()
	require.Equal(t, err, nil)
	require.Equal(t, i16, int16(-2))

	u32, err := r.ReadUint32()
	require.Equal(t, err, nil)
	require.Equal(t, u32, uint32(0x01020304))

	i32, err := r.ReadInt32()
	require.Equal(t, err, nil)
	require.Equal(t, i32, int32(-4))

	u64, err := r.ReadUint64()
	require.Equal(t, err, nil)
	require.Equal(t, u64, uint64(0x0102030405060708))

	i64, err := r.ReadInt64()
	require.Equal(t, err, nil)
	require.Equal(t, i64, int64(-8))

	require.Equal(t, r.Remaining(), 0)
}

func TestReadIntsMatchDecodeBE(t *testing.T) {
	data := []byte{0x80, 0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47}

	u32, err := New(data).ReadUint32()
	require.Equal(t, err, nil)

	decoded, err := DecodeBE[uint32](New(data))
	require.Equal(t, err, nil)
	require.Equal(t, u32, decoded)

	i64, err := New(data).ReadInt64()
	require.Equal(t, err, nil)

	decoded64, err := DecodeBE[int64](New(data))
	require.Equal(t, err, nil)
	require.Equal(t, i64, decoded64)
}

func TestReadIntsTruncated(t *testing.T) {
	r := New([]byte{0x01})

	_, err := r.ReadUint32()
	require.ErrorIs(t, err, ErrEndOfInput)
	require.Equal(t, r.Consumed(), 0)
}
