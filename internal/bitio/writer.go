package bitio

import "math"

// Writer builds a bitstream in the same little-endian bit order Cursor
// reads in. It grows a byte buffer lazily, one bit at a time.
type Writer struct {
	buf   []byte
	nbits int
}

// NewWriter returns an empty bit builder.
func NewWriter() *Writer {
	return &Writer{}
}

// Put appends the low n bits of value, least significant bit first.
func (w *Writer) Put(value uint64, n int) {
	if n < 0 || n > 64 {
		panic("bitio: Put width out of range")
	}
	for i := 0; i < n; i++ {
		bitIdx := w.nbits % 8
		if bitIdx == 0 {
			w.buf = append(w.buf, 0)
		}
		if (value>>uint(i))&1 == 1 {
			w.buf[len(w.buf)-1] |= 1 << uint(bitIdx)
		}
		w.nbits++
	}
}

// PutFloat32 appends the IEEE-754 binary32 representation of v.
func (w *Writer) PutFloat32(v float32) {
	w.Put(uint64(math.Float32bits(v)), 32)
}

// PutBytes appends whole bytes, LSB-first within each byte (so it composes
// with Put the same way Cursor.TakeBytes does).
func (w *Writer) PutBytes(b []byte) {
	for _, by := range b {
		w.Put(uint64(by), 8)
	}
}

// PutString appends the length-prefixed, null-terminated string encoding
// described in spec §4.1. An empty string is encoded as a bare size-0
// field with no body.
func (w *Writer) PutString(s string) {
	if s == "" {
		w.Put(0, 32)
		return
	}
	size := uint64(len(s) + 1)
	w.Put(size, 32)
	w.PutBytes([]byte(s))
	w.Put(0, 8)
}

// PutCursor appends every remaining bit of c verbatim — used to re-emit
// captured bitsleft regions unchanged.
func (w *Writer) PutCursor(c *Cursor) {
	for c.Remaining() > 0 {
		n := c.Remaining()
		if n > 32 {
			n = 32
		}
		v, err := c.Take(n)
		if err != nil {
			// Remaining() already bounds n, so this cannot happen.
			panic(err)
		}
		w.Put(v, n)
	}
}

// PutBits appends n bits taken verbatim from a raw byte slice produced by
// Writer.Bytes() or Cursor.TakeAll() elsewhere (used to re-emit previously captured bitsleft
// slices without re-threading a Cursor through every call site).
func (w *Writer) PutBits(raw []byte, n int) {
	c := NewCursor(raw)
	for n > 0 {
		take := n
		if take > 32 {
			take = 32
		}
		v, err := c.Take(take)
		if err != nil {
			panic(err)
		}
		w.Put(v, take)
		n -= take
	}
}

// Len reports the number of bits written so far.
func (w *Writer) Len() int {
	return w.nbits
}

// Bytes returns the written bits packed into bytes, zero-padding the final
// partial byte. Callers that must preserve exact trailing padding bits
// (e.g. the packet codec) should instead write those bits explicitly with
// Put before calling Bytes.
func (w *Writer) Bytes() []byte {
	return w.buf
}
