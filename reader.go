package cursor

import (
	"errors"
	"io"
	"unsafe"
)

// ErrEndOfInput is returned when a read can not be satisfied because fewer
// bytes remain than requested. Every bounds-checked method fails with this
// exact value, so callers can match it with [errors.Is].
var ErrEndOfInput = errors.New("end of input")

// emptyBytes is the canonical zero-length source. [Reader.ReadToEnd] hands
// out (and resets to) this value so an exhausted Reader does not keep the
// original storage alive.
var emptyBytes = make([]byte, 0)

// Reader is a panic-free, forward-only cursor over an in-memory byte
// buffer.
//
// A Reader tracks a single read position. Every read either fully succeeds,
// advancing the position by exactly the requested amount, or fully fails
// with [ErrEndOfInput], leaving the position untouched. There are no
// partial reads and no way to move backwards.
//
// Slices returned by [Reader.ReadBytes], [Reader.Subreader] and
// [Reader.ReadToEnd] are zero-copy views into the Reader's storage. They
// stay valid after the Reader is gone, but they alias the original bytes:
// callers must treat them as read-only.
//
// A Reader must not be used from multiple goroutines concurrently. Several
// independent Readers over the same storage are fine, since reads never
// mutate the underlying bytes.
type Reader struct {
	src []byte
	pos int
}

// interface conformance
var _ io.Reader = (*Reader)(nil)
var _ io.ByteReader = (*Reader)(nil)

// New creates a Reader over the given bytes without copying them.
// The Reader assumes the bytes are not modified while it is in use.
func New(b []byte) *Reader {
	return &Reader{src: b}
}

// NewString creates a Reader over the bytes of s without copying them.
// This aliases the string's storage, which is safe because a Reader
// never writes to its source.
func NewString(s string) *Reader {
	if len(s) == 0 {
		return New(nil)
	}

	return New(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// increment moves the position forward by n, clamped to the end of the
// source. n <= 0 is a no-op, the position never moves backwards.
func (r *Reader) increment(n int) {
	if n <= 0 {
		return
	}

	r.pos = min(r.pos+n, len(r.src))
}

// Remaining returns how many bytes have not been read yet.
func (r *Reader) Remaining() int {
	return max(len(r.src)-r.pos, 0)
}

// HasRemaining returns true if at least n bytes are unread.
func (r *Reader) HasRemaining(n int) bool {
	return r.Remaining() >= n
}

// Consumed returns how many bytes have been read so far.
func (r *Reader) Consumed() int {
	return r.pos
}

// Skip advances the position by n bytes. Skipping past the end stops at
// the end of the source; Skip can not fail.
func (r *Reader) Skip(n int) {
	r.increment(n)
}

// Peek returns true if there is another byte to read and it is equal to b.
// Peek does not advance the position.
func (r *Reader) Peek(b byte) bool {
	if !r.HasRemaining(1) {
		return false
	}

	return r.src[r.pos] == b
}

// ReadByte reads a single byte. It implements [io.ByteReader].
func (r *Reader) ReadByte() (byte, error) {
	if !r.HasRemaining(1) {
		return 0, ErrEndOfInput
	}

	b := r.src[r.pos]
	r.increment(1)

	return b, nil
}

// ReadBytes returns the next n bytes as a zero-copy view into the Reader's
// storage, advancing the position by n. The returned slice is always
// exactly n bytes long and may outlive the Reader; callers must not
// modify it.
//
// If fewer than n bytes remain, ReadBytes returns [ErrEndOfInput] and the
// position is unchanged. A negative n fails the same way.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || !r.HasRemaining(n) {
		return nil, ErrEndOfInput
	}

	start := r.pos
	r.increment(n)

	// capacity is capped at n so an append on the view reallocates
	// instead of clobbering the bytes behind it
	return r.src[start : start+n : start+n], nil
}

// ReadFull reads exactly len(p) bytes into p. Either p is filled completely
// and the position advances by len(p), or ReadFull returns [ErrEndOfInput]
// and the position is unchanged.
//
// Passing the slice of a stack-allocated array makes this the
// zero-allocation path for fixed-width values:
//
//	var buf [4]byte
//	if err := r.ReadFull(buf[:]); err != nil { ... }
func (r *Reader) ReadFull(p []byte) error {
	s, err := r.ReadBytes(len(p))
	if err != nil {
		return err
	}

	copy(p, s)

	return nil
}

// Subreader splits off a new Reader over the next n bytes, advancing this
// Reader by the same amount. The sub-Reader has its own independent
// position and shares storage with its parent, no bytes are copied.
//
// A Subreader of length zero is not a valid empty cursor but a truncation:
// n == 0 fails with [ErrEndOfInput] even if bytes remain.
func (r *Reader) Subreader(n int) (*Reader, error) {
	if n == 0 {
		return nil, ErrEndOfInput
	}

	s, err := r.ReadBytes(n)
	if err != nil {
		return nil, err
	}

	return New(s), nil
}

// ReadToEnd returns all unread bytes and drains the Reader, leaving it in
// a canonical empty state that no longer references the original storage.
//
// If the Reader is already exhausted the result is a canonical zero-length
// slice, so a drained Reader never keeps a large buffer alive by itself.
func (r *Reader) ReadToEnd() []byte {
	rest := emptyBytes
	if r.pos < len(r.src) {
		rest = r.src[r.pos:len(r.src):len(r.src)]
	}

	*r = Reader{src: emptyBytes}

	return rest
}

// Read implements [io.Reader]. It copies min(Remaining(), len(p)) bytes
// into p and returns the count actually copied. An exhausted Reader
// returns (0, [io.EOF]).
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	n := min(r.Remaining(), len(p))
	if n == 0 {
		return 0, io.EOF
	}

	// n is never larger than Remaining, this can not fail
	s, _ := r.ReadBytes(n)
	copy(p, s)

	return n, nil
}
