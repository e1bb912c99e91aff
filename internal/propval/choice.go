package propval

import (
	"fmt"
	"strings"

	"github.com/replicore/netdecode/internal/bitio"
)

// MultipleChoice decodes a fixed-width bit slice and maps it to a label via
// a per-property enum table; unmapped values decode to "Unknown" rather
// than failing, since the wire value itself is still faithfully captured
// for re-encoding (spec §4.2).
type MultipleChoice struct {
	size    int
	choices map[uint32]string
	Value   uint32
	Label   string
	set     bool
}

func (v *MultipleChoice) Kind() Kind { return KindMultipleChoice }

func (v *MultipleChoice) Decode(c *bitio.Cursor) error {
	bits, err := c.Take(v.size)
	if err != nil {
		return err
	}
	v.Value = uint32(bits)
	if label, ok := v.choices[v.Value]; ok {
		v.Label = label
	} else {
		v.Label = "Unknown"
	}
	v.set = true
	return nil
}

func (v *MultipleChoice) Encode(w *bitio.Writer) {
	if !v.set {
		return
	}
	w.Put(uint64(v.Value), v.size)
}

func (v *MultipleChoice) Describe(indent int) string {
	if !v.set {
		return strings.Repeat(" ", indent) + "empty\n"
	}
	return fmt.Sprintf("%s%0*b (value = %s)\n", strings.Repeat(" ", indent), v.size, v.Value, v.Label)
}
