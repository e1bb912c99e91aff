// Package payload implements the payload codec: a 14-bit size prefix (with
// one escape case), an optional 32-bit class introduction on first use of a
// channel, and the object body itself (spec.md §4.6).
package payload

import (
	"github.com/replicore/netdecode/internal/bitio"
	"github.com/replicore/netdecode/internal/metrics"
	"github.com/replicore/netdecode/internal/object"
	"github.com/replicore/netdecode/internal/protoerr"
	"github.com/replicore/netdecode/internal/session"
)

// Payload is one decoded channel payload. BitsLeft/BitsLeftReason are set
// when a recoverable error (spec.md §5 tier 1) stopped the body decode
// partway through; the payload is still considered successfully framed.
type Payload struct {
	Size      uint32
	SizeWidth int

	ClassIntro bool
	ClassID    uint32

	InstanceName string
	IDSize       int
	Instance     *object.Instance

	Closed bool

	BitsLeftReason string
	BitsLeft       []byte
	BitsLeftWidth  int
}

// Decode reads one payload from c for the given channel, mutating state
// (binding new channels, destroying zero-size ones) as it goes. rec may be
// nil; it records a recovered-payload count when a recoverable error (§4.10
// tier 1) is captured as bitsleft. When debug is true, the whole payload
// (size prefix, optional class intro, and object body) is re-encoded and
// compared against the bits it was just parsed from.
func Decode(c *bitio.Cursor, channel int, state *session.ParserState, rec *metrics.Recorder, debug bool) (*Payload, error) {
	start := c.BitsRead()
	raw14, err := c.Take(14)
	if err != nil {
		return nil, err
	}

	size := raw14
	sizeWidth := 14
	if raw14&(1<<10) != 0 && raw14&(1<<13) != 0 {
		size = raw14 &^ (1 << 13)
		sizeWidth = 13
		c.Unread(1)
	}

	body, err := c.TakeSub(int(size))
	if err != nil {
		return nil, err
	}

	p := &Payload{Size: uint32(size), SizeWidth: sizeWidth}

	if size == 0 {
		if _, ok := state.Channel(channel); ok {
			state.CloseChannel(channel)
			p.Closed = true
		}
		return p, nil
	}

	if err := p.decodeBody(body, channel, state, debug); err != nil {
		if _, fatal := err.(*protoerr.ValueMismatch); fatal {
			return p, err
		}
		raw, n := bitsLeft(body, err)
		p.BitsLeftReason = err.Error()
		p.BitsLeft = raw
		p.BitsLeftWidth = n
		rec.RecordRecovered(protoerr.Reason(err))
		return p, nil
	}

	if debug && !c.CheckSelf(start, func(w *bitio.Writer) { Encode(p, w) }) {
		return p, &protoerr.ValueMismatch{Context: "payload on channel " + p.InstanceName, Bits: c.BitsRead() - start}
	}
	return p, nil
}

// bitsLeft extracts the undecoded tail of a failed body decode. UnknownProperty
// and TrailingBits already drain the body cursor and carry their own copy of
// the tail; on any other error (e.g. a value codec's ShortRead) the object
// codec rewinds the cursor to the failing property's key, so the tail is
// captured from there instead.
func bitsLeft(body *bitio.Cursor, err error) ([]byte, int) {
	switch e := err.(type) {
	case *protoerr.UnknownProperty:
		return e.Bitsleft, e.BitsWidth
	case *protoerr.TrailingBits:
		return e.Bitsleft, e.BitsWidth
	default:
		return body.TakeAll()
	}
}

func (p *Payload) decodeBody(body *bitio.Cursor, channel int, state *session.ParserState, debug bool) error {
	binding, ok := state.Channel(channel)
	if !ok {
		classID, err := body.Take(32)
		if err != nil {
			return err
		}
		p.ClassIntro = true
		p.ClassID = uint32(classID)

		class := state.ClassForKey(uint32(classID))
		binding = state.BindChannel(channel, class)
	}

	p.InstanceName = binding.InstanceName
	p.IDSize = binding.Class.IDSize

	inst, err := object.Decode(body, binding.Class, debug)
	p.Instance = inst
	return err
}

// Encode re-serializes a decoded payload bit-for-bit, including any
// captured bitsleft region.
func Encode(p *Payload, w *bitio.Writer) {
	w.Put(uint64(p.Size), p.SizeWidth)

	if p.ClassIntro {
		w.Put(uint64(p.ClassID), 32)
	}
	if p.Instance != nil {
		object.Encode(p.Instance, p.IDSize, w)
	}
	if p.BitsLeft != nil {
		w.PutBits(p.BitsLeft, p.BitsLeftWidth)
	}
}
