package bitio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/replicore/netdecode/internal/bitio"
	"github.com/replicore/netdecode/internal/protoerr"
)

func TestTakeLittleEndian(t *testing.T) {
	// 0b10110000 -> first bit read (LSB position) is 0, so Take(3) == 0b000 = 0
	c := bitio.NewCursor([]byte{0b10110000})
	v, err := c.Take(3)
	require.NoError(t, err)
	require.Equal(t, uint64(0), v)

	v, err = c.Take(5)
	require.NoError(t, err)
	require.Equal(t, uint64(0b10110), v)
}

func TestTakeAcrossByteBoundary(t *testing.T) {
	c := bitio.NewCursor([]byte{0xFF, 0x01})
	v, err := c.Take(9)
	require.NoError(t, err)
	require.Equal(t, uint64(0x1FF), v)
}

func TestPeekDoesNotAdvance(t *testing.T) {
	c := bitio.NewCursor([]byte{0x42})
	v1, err := c.Peek(8)
	require.NoError(t, err)
	v2, err := c.Take(8)
	require.NoError(t, err)
	require.Equal(t, v1, v2)
}

func TestUnreadRestoresBits(t *testing.T) {
	c := bitio.NewCursor([]byte{0xAB})
	_, err := c.Take(5)
	require.NoError(t, err)
	c.Unread(5)
	v, err := c.Take(8)
	require.NoError(t, err)
	require.Equal(t, uint64(0xAB), v)
}

func TestShortRead(t *testing.T) {
	c := bitio.NewCursor([]byte{0x01})
	_, err := c.Take(9)
	require.Error(t, err)
	var sr *protoerr.ShortRead
	require.ErrorAs(t, err, &sr)
	require.Equal(t, 9, sr.Needed)
	require.Equal(t, 8, sr.Available)
}

func TestWriterPutRoundTrip(t *testing.T) {
	w := bitio.NewWriter()
	w.Put(0b101, 3)
	w.Put(0x7F, 8)
	got := w.Bytes()

	c := bitio.NewCursor(got)
	v1, err := c.Take(3)
	require.NoError(t, err)
	require.Equal(t, uint64(0b101), v1)
	v2, err := c.Take(8)
	require.NoError(t, err)
	require.Equal(t, uint64(0x7F), v2)
}

func TestFloat32RoundTrip(t *testing.T) {
	w := bitio.NewWriter()
	w.PutFloat32(3.5)
	c := bitio.NewCursor(w.Bytes())
	v, err := c.TakeFloat32()
	require.NoError(t, err)
	require.Equal(t, float32(3.5), v)
}

func TestStringRoundTrip(t *testing.T) {
	w := bitio.NewWriter()
	w.PutString("hello")
	c := bitio.NewCursor(w.Bytes())
	s, size, err := c.TakeString()
	require.NoError(t, err)
	require.Equal(t, "hello", s)
	require.Equal(t, uint32(6), size)
}

func TestEmptyStringRoundTrip(t *testing.T) {
	w := bitio.NewWriter()
	w.PutString("")
	c := bitio.NewCursor(w.Bytes())
	s, size, err := c.TakeString()
	require.NoError(t, err)
	require.Equal(t, "", s)
	require.Equal(t, uint32(0), size)
}

func TestStringLengthMismatch(t *testing.T) {
	// Declare size 5 but body has no NUL terminator within it.
	w := bitio.NewWriter()
	w.Put(5, 32)
	w.PutBytes([]byte{'a', 'b', 'c', 'd', 'e'})
	c := bitio.NewCursor(w.Bytes())
	_, _, err := c.TakeString()
	require.Error(t, err)
	var mismatch *protoerr.StringLengthMismatch
	require.ErrorAs(t, err, &mismatch)
}

func TestTakeAllRealignsToBitZero(t *testing.T) {
	c := bitio.NewCursor([]byte{0xDE, 0xAD})
	_, err := c.Take(4)
	require.NoError(t, err)

	raw, n := c.TakeAll()
	require.Equal(t, 12, n)
	require.Equal(t, 0, c.Remaining())

	w := bitio.NewWriter()
	w.PutBits(raw, n)

	// Re-decoding the captured bits from bit 0 reproduces the original tail.
	orig := bitio.NewCursor([]byte{0xDE, 0xAD})
	_, _ = orig.Take(4)
	want, _ := orig.Take(12)

	got := bitio.NewCursor(w.Bytes())
	gotVal, err := got.Take(12)
	require.NoError(t, err)
	require.Equal(t, want, gotVal)
}

func TestPutCursorEchoesRemainder(t *testing.T) {
	src := bitio.NewCursor([]byte{0xDE, 0xAD})
	_, err := src.Take(4)
	require.NoError(t, err)

	w := bitio.NewWriter()
	w.PutCursor(src)
	require.Equal(t, 12, w.Len())
}
