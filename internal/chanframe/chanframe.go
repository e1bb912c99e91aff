// Package chanframe implements the channel codec: a 10-bit channel number,
// plus a 5-bit counter and 8 opaque bits when the enclosing packet part is
// reliable, followed by the channel's payload (spec.md §4.7).
package chanframe

import (
	"github.com/replicore/netdecode/internal/bitio"
	"github.com/replicore/netdecode/internal/metrics"
	"github.com/replicore/netdecode/internal/payload"
	"github.com/replicore/netdecode/internal/protoerr"
	"github.com/replicore/netdecode/internal/session"
)

// Frame is one decoded channel frame. Counter and Unknown are only
// meaningful when Reliable is true.
type Frame struct {
	Channel  int
	Reliable bool
	Counter  uint8
	Unknown  uint8

	Payload *payload.Payload
}

// Decode reads a channel frame from c. reliable comes from the enclosing
// packet part's flag1a (spec.md §4.8); the channel codec itself has no
// notion of reliability beyond whether to read the counter/unknown fields.
// When debug is true, the whole frame is re-encoded and compared against
// the bits it was just parsed from.
func Decode(c *bitio.Cursor, reliable bool, state *session.ParserState, rec *metrics.Recorder, debug bool) (*Frame, error) {
	start := c.BitsRead()
	channelBits, err := c.Take(10)
	if err != nil {
		return nil, err
	}

	f := &Frame{Channel: int(channelBits), Reliable: reliable}

	if reliable {
		counter, err := c.Take(5)
		if err != nil {
			return nil, err
		}
		unknown, err := c.Take(8)
		if err != nil {
			return nil, err
		}
		f.Counter = uint8(counter)
		f.Unknown = uint8(unknown)
	}

	p, err := payload.Decode(c, f.Channel, state, rec, debug)
	if err != nil {
		return nil, err
	}
	f.Payload = p

	if debug && !c.CheckSelf(start, func(w *bitio.Writer) { Encode(f, w) }) {
		return f, &protoerr.ValueMismatch{Context: "channel frame", Bits: c.BitsRead() - start}
	}
	return f, nil
}

// Encode re-serializes a channel frame bit-for-bit.
func Encode(f *Frame, w *bitio.Writer) {
	w.Put(uint64(f.Channel), 10)
	if f.Reliable {
		w.Put(uint64(f.Counter), 5)
		w.Put(uint64(f.Unknown), 8)
	}
	payload.Encode(f.Payload, w)
}
