package propval

import (
	"fmt"
	"strings"

	"github.com/replicore/netdecode/internal/bitio"
)

// Bool is a single bit, truthy iff 1 (spec §4.2).
type Bool struct {
	Value bool
	set   bool
}

func (v *Bool) Kind() Kind { return KindBool }

func (v *Bool) Decode(c *bitio.Cursor) error {
	bits, err := c.Take(1)
	if err != nil {
		return err
	}
	v.Value = bits == 1
	v.set = true
	return nil
}

func (v *Bool) Encode(w *bitio.Writer) {
	if !v.set {
		return
	}
	if v.Value {
		w.Put(1, 1)
	} else {
		w.Put(0, 1)
	}
}

func (v *Bool) Describe(indent int) string {
	if !v.set {
		return strings.Repeat(" ", indent) + "empty\n"
	}
	return fmt.Sprintf("%s%s (value = %t)\n", strings.Repeat(" ", indent), boolBit(v.Value), v.Value)
}

func boolBit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
