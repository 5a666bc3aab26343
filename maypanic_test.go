package cursor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMayPanicSharesPosition(t *testing.T) {
	r := New([]byte{1, 2, 3, 4, 5, 6})

	buf := r.MayPanic()
	require.Equal(t, buf.Remaining(), 6)
	require.Equal(t, buf.Chunk(), []byte{1, 2, 3, 4, 5, 6})

	buf.Advance(2)
	require.Equal(t, buf.Chunk(), []byte{3, 4, 5, 6})

	// advances through the wrapper are visible on the reader
	require.Equal(t, r.Consumed(), 2)

	// reader methods stay available on the wrapper
	b, err := buf.ReadByte()
	require.Equal(t, err, nil)
	require.Equal(t, b, byte(3))
}

func TestMayPanicAdvanceClamps(t *testing.T) {
	r := New([]byte{1, 2, 3})

	buf := r.MayPanic()
	buf.Advance(100)
	require.Equal(t, r.Consumed(), 3)
	require.Equal(t, buf.Chunk(), []byte{})
}

func TestCopyToBytes(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}

	buf := New(data).MayPanic()

	s := buf.CopyToBytes(3)
	require.Equal(t, s, []byte{1, 2, 3})
	require.True(t, &s[0] == &data[0])
	require.Equal(t, buf.Remaining(), 2)
}

func TestCopyToBytesPanicsOnUnderflow(t *testing.T) {
	buf := New([]byte{1, 2}).MayPanic()

	require.PanicsWithError(t, ErrEndOfInput.Error(), func() {
		buf.CopyToBytes(3)
	})

	// a pre-check keeps the caller on the safe path
	require.False(t, buf.HasRemaining(3))
}
