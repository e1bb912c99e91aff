package propval

import (
	"fmt"
	"strings"

	"github.com/replicore/netdecode/internal/bitio"
)

// SizedBits is an opaque n-bit slice whose meaning the decoder does not
// interpret (spec §4.2) — most replicated properties (object references,
// rotations, locations) are carried this way.
type SizedBits struct {
	size  int
	Value uint64
	set   bool
}

func (v *SizedBits) Kind() Kind { return KindSizedBits }

func (v *SizedBits) Decode(c *bitio.Cursor) error {
	bits, err := c.Take(v.size)
	if err != nil {
		return err
	}
	v.Value = bits
	v.set = true
	return nil
}

func (v *SizedBits) Encode(w *bitio.Writer) {
	if !v.set {
		return
	}
	w.Put(v.Value, v.size)
}

func (v *SizedBits) Describe(indent int) string {
	if !v.set {
		return strings.Repeat(" ", indent) + "empty\n"
	}
	return fmt.Sprintf("%s%0*b (value)\n", strings.Repeat(" ", indent), v.size, v.Value)
}
