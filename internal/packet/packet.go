// Package packet implements the outermost codec: a 14-bit sequence number,
// a stream of parts (channel data or acks) terminated by a lone "1" tag bit,
// and trailing byte-alignment padding (spec.md §4.8).
package packet

import (
	"github.com/replicore/netdecode/internal/bitio"
	"github.com/replicore/netdecode/internal/chanframe"
	"github.com/replicore/netdecode/internal/metrics"
	"github.com/replicore/netdecode/internal/protoerr"
	"github.com/replicore/netdecode/internal/session"
)

const (
	flag1aUnreliable  = 0b00
	flag1aReliable    = 0b01
	flag1aReliableExt = 0b10
	flag1aEscape      = 0b11
)

// Part is one decoded packet part: either channel data or an ack.
type Part struct {
	Kind string // "data" or "ack"

	// EscapeCount is how many leading 0b11 escape markers preceded the real
	// flag1a value; Flag is that real value (0, 1, or 2).
	EscapeCount int
	Flag        uint8
	Frame       *chanframe.Frame

	AckNumber uint16
}

// Packet is one decoded packet.
type Packet struct {
	SeqNr int
	Parts []Part

	PaddingWidth int
	Padding      []byte
}

// Decode reads one packet from c against state. A non-nil error is always
// packet-fatal (spec.md §4.10 tier 2); the partial Packet is still returned
// so callers can inspect what was parsed before the failure, except when
// the sequence number itself cannot be read (then it is nil). rec may be
// nil. When debug is true, every nested decode call (each data part's
// channel frame, payload and property) re-encodes itself and asserts the
// result matches the bits it was just parsed from, pinpointing exactly
// which nested call broke round-trip rather than only the packet as a
// whole (spec.md §9).
func Decode(c *bitio.Cursor, state *session.ParserState, rec *metrics.Recorder, debug bool) (*Packet, error) {
	seq, err := c.Take(14)
	if err != nil {
		rec.RecordDropped(protoerr.Reason(err))
		return nil, err
	}
	p := &Packet{SeqNr: int(seq)}

	for {
		tag, err := c.Take(1)
		if err != nil {
			rec.RecordDropped(protoerr.Reason(err))
			return p, err
		}
		if tag == 0 {
			part, err := decodeDataPart(c, state, rec, debug)
			if err != nil {
				rec.RecordDropped(protoerr.Reason(err))
				return p, err
			}
			p.Parts = append(p.Parts, *part)
			continue
		}

		if c.Remaining() < 14 {
			break // the "1" just read is the terminator
		}
		ack, err := c.Take(14)
		if err != nil {
			rec.RecordDropped(protoerr.Reason(err))
			return p, err
		}
		p.Parts = append(p.Parts, Part{Kind: "ack", AckNumber: uint16(ack)})
	}

	expectedPad := (8 - c.BitsRead()%8) % 8
	raw, n := c.TakeAll()
	p.Padding = raw
	p.PaddingWidth = n
	if n != expectedPad {
		err := &protoerr.AlignmentError{Bitsleft: n}
		rec.RecordDropped(protoerr.Reason(err))
		return p, err
	}
	rec.RecordDecoded()
	return p, nil
}

func decodeDataPart(c *bitio.Cursor, state *session.ParserState, rec *metrics.Recorder, debug bool) (*Part, error) {
	start := c.BitsRead()
	escapeCount := 0
	flag, err := c.Take(2)
	if err != nil {
		return nil, err
	}
	if flag == flag1aEscape {
		escapeCount = 1
		flag, err = c.Take(2)
		if err != nil {
			return nil, err
		}
		if flag == flag1aEscape {
			return nil, &protoerr.MalformedFlag{Context: "flag1a escape", Bits: flag}
		}
	}

	if flag == flag1aReliableExt {
		extra, err := c.Take(2)
		if err != nil {
			return nil, err
		}
		if extra != 0b11 {
			return nil, &protoerr.MalformedFlag{Context: "flag1a==10 extra field", Bits: extra}
		}
	}

	reliable := flag != flag1aUnreliable
	frame, err := chanframe.Decode(c, reliable, state, rec, debug)
	if err != nil {
		return nil, err
	}

	part := &Part{Kind: "data", EscapeCount: escapeCount, Flag: uint8(flag), Frame: frame}

	if debug && !c.CheckSelf(start, func(w *bitio.Writer) { encodeDataPart(*part, w) }) {
		return part, &protoerr.ValueMismatch{Context: "packet data part", Bits: c.BitsRead() - start}
	}
	return part, nil
}

func encodeDataPart(part Part, w *bitio.Writer) {
	for i := 0; i < part.EscapeCount; i++ {
		w.Put(flag1aEscape, 2)
	}
	w.Put(uint64(part.Flag), 2)
	if part.Flag == flag1aReliableExt {
		w.Put(0b11, 2)
	}
	chanframe.Encode(part.Frame, w)
}

// Encode re-serializes a decoded packet bit-for-bit.
func Encode(p *Packet, w *bitio.Writer) {
	w.Put(uint64(p.SeqNr), 14)

	for _, part := range p.Parts {
		switch part.Kind {
		case "data":
			w.Put(0, 1)
			encodeDataPart(part, w)
		case "ack":
			w.Put(1, 1)
			w.Put(uint64(part.AckNumber), 14)
		}
	}

	w.Put(1, 1) // terminator
	w.PutBits(p.Padding, p.PaddingWidth)
}
