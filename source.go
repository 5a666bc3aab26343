package cursor

import (
	"encoding/binary"
	"iter"
	"math"

	"github.com/go-gum/unravel"
)

// Source adapts a [Reader] to unravel's binary source capability, so whole
// structs can be pulled out of a cursor:
//
//	type Header struct {
//		Magic   uint32
//		Version uint16
//	}
//
//	source := cursor.NewSource(cursor.New(buf), binary.BigEndian)
//	header, err := unravel.UnmarshalNew[Header](source)
//
// Fields are read sequentially in declaration order. Nested structs,
// arrays and fixed-width integer and float fields are supported; anything
// that would need keyed or string access is not and fails with
// [unravel.ErrNotSupported]. A truncated buffer surfaces [ErrEndOfInput]
// through unravel's error wrapping.
type Source struct {
	unravel.EmptySource

	r     *Reader
	order binary.ByteOrder
}

var _ unravel.Source = Source{}

// NewSource creates a Source reading from r in the given byte order.
func NewSource(r *Reader, order binary.ByteOrder) Source {
	return Source{r: r, order: order}
}

// Get positions struct fields: every field continues at the current read
// position, so the key is ignored.
func (s Source) Get(string) (unravel.Source, error) {
	return s, nil
}

// Iter yields this Source forever; slice and array elements are read
// sequentially until the target is full.
func (s Source) Iter() (iter.Seq[unravel.Source], error) {
	it := func(yield func(unravel.Source) bool) {
		for yield(s) {
		}
	}

	return it, nil
}

// Bool reads a single byte, any non-zero value is true.
func (s Source) Bool() (bool, error) {
	b, err := s.r.ReadByte()

	return b != 0, err
}

func (s Source) Int8() (int8, error) {
	return Decode[int8](s.r)
}

func (s Source) Int16() (int16, error) {
	return decodeOrder[int16](s.r, s.order)
}

func (s Source) Int32() (int32, error) {
	return decodeOrder[int32](s.r, s.order)
}

func (s Source) Int64() (int64, error) {
	return decodeOrder[int64](s.r, s.order)
}

func (s Source) Uint8() (uint8, error) {
	return s.r.ReadByte()
}

func (s Source) Uint16() (uint16, error) {
	return decodeOrder[uint16](s.r, s.order)
}

func (s Source) Uint32() (uint32, error) {
	return decodeOrder[uint32](s.r, s.order)
}

func (s Source) Uint64() (uint64, error) {
	return decodeOrder[uint64](s.r, s.order)
}

func (s Source) Float32() (float32, error) {
	bits, err := decodeOrder[uint32](s.r, s.order)

	return math.Float32frombits(bits), err
}

func (s Source) Float64() (float64, error) {
	bits, err := decodeOrder[uint64](s.r, s.order)

	return math.Float64frombits(bits), err
}
