// Package object decodes a property stream — the body of a payload — into
// a sequence of (property key, value) pairs against a class descriptor
// (spec.md §4.4).
package object

import (
	"fmt"

	"github.com/replicore/netdecode/internal/bitio"
	"github.com/replicore/netdecode/internal/protoerr"
	"github.com/replicore/netdecode/internal/propval"
	"github.com/replicore/netdecode/internal/schema"
)

// Property is one decoded (key, value) pair.
type Property struct {
	Key        uint32
	Descriptor schema.PropertyDescriptor
	Value      propval.Value
}

// Instance is a fully or partially decoded object body. BitsLeft is nil
// unless decoding stopped early on a recoverable error (spec.md §5,
// "Recoverable within a payload").
type Instance struct {
	Properties    []Property
	BitsLeft      []byte
	BitsLeftWidth int
}

// Decode consumes every bit of c, which must already be bounded to exactly
// the payload's declared size, producing one Property per entry until the
// cursor is exhausted. An unknown property key, a trailing slice too narrow
// to hold another key, or an error from a value codec all stop decoding and
// capture the remainder as BitsLeft rather than failing the whole payload —
// the caller (the payload codec) records it and moves on. When debug is
// true, each (key, value) pair is re-encoded and compared against the bits
// it was just parsed from before moving on to the next property.
func Decode(c *bitio.Cursor, class *schema.ClassDescriptor, debug bool) (*Instance, error) {
	inst := &Instance{}

	for {
		if c.Remaining() == 0 {
			return inst, nil
		}
		if c.Remaining() < class.IDSize {
			raw, n := c.TakeAll()
			return inst, &protoerr.TrailingBits{Bitsleft: raw, BitsWidth: n}
		}

		start := c.BitsRead()
		keyBits, err := c.Take(class.IDSize)
		if err != nil {
			return inst, err
		}
		key := uint32(keyBits)

		desc, ok := class.Lookup(key)
		if !ok {
			// Push the key back so Bitsleft covers it too — the key was never
			// added to Properties, so it must survive in Bitsleft or Encode
			// would silently drop it from the re-serialized stream.
			c.Unread(class.IDSize)
			raw, n := c.TakeAll()
			return inst, &protoerr.UnknownProperty{Class: class.Name, Key: key, Bitsleft: raw, BitsWidth: n}
		}

		val := propval.New(desc.Kind, desc.Params)
		if err := val.Decode(c); err != nil {
			// Rewind to the property's key so the caller's captured remainder
			// covers the key and any partially consumed value bits.
			c.Unread(c.BitsRead() - start)
			return inst, err
		}

		if debug && !c.CheckSelf(start, func(w *bitio.Writer) {
			w.Put(uint64(key), class.IDSize)
			val.Encode(w)
		}) {
			return inst, &protoerr.ValueMismatch{Context: fmt.Sprintf("property %s", desc.Name), Bits: c.BitsRead() - start}
		}

		inst.Properties = append(inst.Properties, Property{Key: key, Descriptor: desc, Value: val})
	}
}

// Encode re-serializes every decoded property followed by any captured
// trailing bits, in the order Decode consumed them — reproducing the
// payload body bit-for-bit.
func Encode(inst *Instance, idSize int, w *bitio.Writer) {
	for _, p := range inst.Properties {
		w.Put(uint64(p.Key), idSize)
		p.Value.Encode(w)
	}
	if inst.BitsLeft != nil {
		w.PutBits(inst.BitsLeft, inst.BitsLeftWidth)
	}
}
