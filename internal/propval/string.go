package propval

import (
	"fmt"
	"strings"

	"github.com/replicore/netdecode/internal/bitio"
)

// String is a size-prefixed, null-terminated string (spec §4.1/§4.2).
type String struct {
	Value string
	set   bool
}

func (v *String) Kind() Kind { return KindString }

func (v *String) Decode(c *bitio.Cursor) error {
	s, _, err := c.TakeString()
	if err != nil {
		return err
	}
	v.Value = s
	v.set = true
	return nil
}

func (v *String) Encode(w *bitio.Writer) {
	if !v.set {
		return
	}
	w.PutString(v.Value)
}

func (v *String) Describe(indent int) string {
	if !v.set {
		return strings.Repeat(" ", indent) + "empty\n"
	}
	return fmt.Sprintf("%s(value = %q)\n", strings.Repeat(" ", indent), v.Value)
}
