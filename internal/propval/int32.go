package propval

import (
	"fmt"
	"strings"

	"github.com/replicore/netdecode/internal/bitio"
)

// Int32 is a plain little-endian unsigned 32-bit value (spec §4.2).
type Int32 struct {
	Value uint32
	set   bool
}

func (v *Int32) Kind() Kind { return KindInt32 }

func (v *Int32) Decode(c *bitio.Cursor) error {
	bits, err := c.Take(32)
	if err != nil {
		return err
	}
	v.Value = uint32(bits)
	v.set = true
	return nil
}

func (v *Int32) Encode(w *bitio.Writer) {
	if !v.set {
		return
	}
	w.Put(uint64(v.Value), 32)
}

func (v *Int32) Describe(indent int) string {
	if !v.set {
		return strings.Repeat(" ", indent) + "empty\n"
	}
	return fmt.Sprintf("%s%032b (value = %d)\n", strings.Repeat(" ", indent), v.Value, v.Value)
}
