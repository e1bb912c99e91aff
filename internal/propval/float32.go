package propval

import (
	"fmt"
	"strings"

	"github.com/replicore/netdecode/internal/bitio"
)

// Float32 is a raw IEEE-754 binary32 value (spec §4.2).
type Float32 struct {
	Value float32
	set   bool
}

func (v *Float32) Kind() Kind { return KindFloat32 }

func (v *Float32) Decode(c *bitio.Cursor) error {
	f, err := c.TakeFloat32()
	if err != nil {
		return err
	}
	v.Value = f
	v.set = true
	return nil
}

func (v *Float32) Encode(w *bitio.Writer) {
	if !v.set {
		return
	}
	w.PutFloat32(v.Value)
}

func (v *Float32) Describe(indent int) string {
	if !v.set {
		return strings.Repeat(" ", indent) + "empty\n"
	}
	return fmt.Sprintf("%s(value = %f)\n", strings.Repeat(" ", indent), v.Value)
}
