// Package bitio implements the bit-level primitive codecs the rest of the
// decoder is built on: a read cursor over a byte slice and a write builder,
// both using the little-endian bit order the wire format requires (the
// first bit taken off the wire is bit 0 — the least significant bit — of
// the value being assembled).
package bitio

import (
	"math"

	"github.com/replicore/netdecode/internal/protoerr"
)

// Cursor reads bits from an in-memory byte slice. It never performs I/O and
// never blocks; taking more bits than remain returns a *protoerr.ShortRead
// carrying the residual bits for diagnostics.
type Cursor struct {
	data   []byte
	bitPos int
	nbits  int
}

// NewCursor wraps data for bit-level reading.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data, nbits: len(data) * 8}
}

// Remaining reports how many unread bits are left.
func (c *Cursor) Remaining() int {
	return c.nbits - c.bitPos
}

// BitsRead reports how many bits have been consumed so far — used by the
// packet codec to compute the expected byte-alignment padding width.
func (c *Cursor) BitsRead() int {
	return c.bitPos
}

func (c *Cursor) bitAt(pos int) uint64 {
	byteIdx := pos / 8
	bitIdx := uint(pos % 8)
	return uint64((c.data[byteIdx] >> bitIdx) & 1)
}

// Take consumes n bits and returns them assembled as a little-endian
// unsigned integer (the first bit read is the least significant).
func (c *Cursor) Take(n int) (uint64, error) {
	if n < 0 || n > 64 {
		panic("bitio: Take width out of range")
	}
	if n > c.Remaining() {
		return 0, &protoerr.ShortRead{Needed: n, Available: c.Remaining(), Residual: c.residualBytes()}
	}
	var v uint64
	for i := 0; i < n; i++ {
		v |= c.bitAt(c.bitPos+i) << uint(i)
	}
	c.bitPos += n
	return v, nil
}

// Peek behaves like Take but does not advance the cursor.
func (c *Cursor) Peek(n int) (uint64, error) {
	saved := c.bitPos
	v, err := c.Take(n)
	c.bitPos = saved
	return v, err
}

// Unread rewinds the cursor by n bits, re-exposing them to the next Take.
// Used by the payload codec's 14-bit size escape (spec §4.6): the last bit
// of the raw 14-bit field is not part of the size and is "pushed back"
// onto the stream, which here is simply not consuming it.
func (c *Cursor) Unread(n int) {
	c.bitPos -= n
	if c.bitPos < 0 {
		panic("bitio: Unread past start of cursor")
	}
}

// TakeFloat32 reads 32 bits and reinterprets them as IEEE-754 binary32.
func (c *Cursor) TakeFloat32() (float32, error) {
	bits, err := c.Take(32)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(bits)), nil
}

// TakeBytes reads n bytes as consecutive 8-bit groups starting at the
// current bit position; no byte alignment is required.
func (c *Cursor) TakeBytes(n int) ([]byte, error) {
	out := make([]byte, n)
	for i := range out {
		v, err := c.Take(8)
		if err != nil {
			return nil, err
		}
		out[i] = byte(v)
	}
	return out, nil
}

// TakeString reads a length-prefixed, null-terminated string per spec §4.1:
// a 32-bit size S, then S bytes, asserting the last byte is NUL and the
// non-null length equals S-1. Size 0 encodes the empty string with no body.
func (c *Cursor) TakeString() (string, uint32, error) {
	sizeBits, err := c.Take(32)
	if err != nil {
		return "", 0, err
	}
	size := uint32(sizeBits)
	if size == 0 {
		return "", 0, nil
	}

	raw, err := c.TakeBytes(int(size))
	if err != nil {
		return "", 0, err
	}

	n := 0
	for n < len(raw) && raw[n] != 0 {
		n++
	}
	if n == len(raw) || uint32(n+1) != size {
		return "", 0, &protoerr.StringLengthMismatch{Declared: int(size), Actual: n + 1}
	}
	return string(raw[:n]), size, nil
}

// TakeAll consumes every remaining bit and returns it as a self-contained
// byte slice realigned to start at bit 0, plus the bit count — the shape
// Writer.PutBits expects. Used to capture a bitsleft region verbatim when a
// recoverable error (UnknownProperty, TrailingBits, a value codec error)
// aborts decoding partway through a payload body.
func (c *Cursor) TakeAll() ([]byte, int) {
	n := c.Remaining()
	w := NewWriter()
	remaining := n
	for remaining > 0 {
		take := remaining
		if take > 32 {
			take = 32
		}
		v, err := c.Take(take)
		if err != nil {
			panic(err) // bounded by Remaining(), cannot fail
		}
		w.Put(v, take)
		remaining -= take
	}
	return w.Bytes(), n
}

// TakeSub consumes n bits and returns them as an independent, bit-realigned
// sub-cursor — used to bound a nested decode (a payload body) so an error
// partway through it can be captured locally instead of corrupting the
// surrounding stream's position.
func (c *Cursor) TakeSub(n int) (*Cursor, error) {
	if n > c.Remaining() {
		return nil, &protoerr.ShortRead{Needed: n, Available: c.Remaining(), Residual: c.residualBytes()}
	}
	w := NewWriter()
	remaining := n
	for remaining > 0 {
		take := remaining
		if take > 32 {
			take = 32
		}
		v, err := c.Take(take)
		if err != nil {
			panic(err) // bounded by the check above, cannot fail
		}
		w.Put(v, take)
		remaining -= take
	}
	return NewCursor(w.Bytes()), nil
}

// BitsSince repacks the bits consumed between startBit (a BitsRead()
// snapshot taken before a nested decode) and the cursor's current position,
// realigned to start at bit 0 — the shape Writer.Bytes() produces. Used by
// debug-mode per-value round-trip checks to recover exactly what a nested
// decode call consumed, without disturbing the cursor's position.
func (c *Cursor) BitsSince(startBit int) ([]byte, int) {
	n := c.bitPos - startBit
	if n < 0 {
		panic("bitio: BitsSince start after current position")
	}
	w := NewWriter()
	remaining := n
	pos := startBit
	for remaining > 0 {
		take := remaining
		if take > 32 {
			take = 32
		}
		var v uint64
		for i := 0; i < take; i++ {
			v |= c.bitAt(pos+i) << uint(i)
		}
		w.Put(v, take)
		pos += take
		remaining -= take
	}
	return w.Bytes(), n
}

// CheckSelf reports whether re-encoding the value decoded since startBit via
// encode reproduces exactly the bits the cursor consumed for it. This is the
// per-value counterpart to a whole-packet round-trip check: it lets debug
// mode assert "what I decoded is exactly what I'd re-emit" at each nested
// decode call, not only at the outermost packet.
func (c *Cursor) CheckSelf(startBit int, encode func(*Writer)) bool {
	original, n := c.BitsSince(startBit)
	w := NewWriter()
	encode(w)
	got := w.Bytes()
	if w.Len() != n || len(got) != len(original) {
		return false
	}
	for i := range original {
		if got[i] != original[i] {
			return false
		}
	}
	return true
}

// residualBytes renders the unread tail for ShortRead diagnostics.
func (c *Cursor) residualBytes() []byte {
	start := c.bitPos / 8
	if start >= len(c.data) {
		return nil
	}
	return c.data[start:]
}
