package cursor

// Buf is the consume-bytes capability exposed by [ReaderMayPanic]. It is
// the shape expected by decoding code that is generic over buffer types:
// inspect the unread chunk, advance past it, or slice bytes out of it.
//
// Implementations of Buf are allowed to panic on underflow; this is the
// one deliberate relaxation of the package's no-panic contract.
type Buf interface {
	Remaining() int
	Chunk() []byte
	Advance(n int)
	CopyToBytes(n int) []byte
}

var _ Buf = (*ReaderMayPanic)(nil)

// MayPanic returns a [ReaderMayPanic] borrowing this Reader. The package's
// no-panic guarantee is forfeited for operations done through it.
func (r *Reader) MayPanic() *ReaderMayPanic {
	return &ReaderMayPanic{Reader: r}
}

// ReaderMayPanic wraps a [Reader] to satisfy [Buf]. All Reader methods
// remain available through it and keep their error-returning contract;
// only [ReaderMayPanic.CopyToBytes] can panic.
//
// The wrapper holds the Reader it was created from: the two share one read
// position and must not be used concurrently.
type ReaderMayPanic struct {
	*Reader
}

// Chunk returns the unread remainder of the buffer without advancing.
// The slice aliases the Reader's storage and must not be modified.
func (m *ReaderMayPanic) Chunk() []byte {
	return m.src[m.pos:]
}

// Advance moves the position forward by n bytes, clamped to the end of
// the buffer like [Reader.Skip].
func (m *ReaderMayPanic) Advance(n int) {
	m.increment(n)
}

// CopyToBytes returns the next n bytes as a zero-copy view, advancing the
// position.
//
// Unlike [Reader.ReadBytes] this panics with [ErrEndOfInput] if fewer than
// n bytes remain. Callers that need the no-panic guarantee must check
// [Reader.HasRemaining] first, or stay on the Reader's own methods.
func (m *ReaderMayPanic) CopyToBytes(n int) []byte {
	s, err := m.ReadBytes(n)
	if err != nil {
		panic(err)
	}

	return s
}
