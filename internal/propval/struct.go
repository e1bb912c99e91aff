package propval

import (
	"strings"

	"github.com/replicore/netdecode/internal/bitio"
)

// Struct decodes each member in order with no presence bits (spec §4.2,
// "tuple-shaped" members) — used for fixed-width members that are always
// fully present, such as FirstServerObject's mysteryproperty5 (an
// int32/string pair).
type Struct struct {
	members []Member
	values  []Value
}

func (v *Struct) Kind() Kind { return KindStruct }

func (v *Struct) Decode(c *bitio.Cursor) error {
	v.values = make([]Value, len(v.members))
	for i, m := range v.members {
		val := New(m.Kind, m.Params)
		if err := val.Decode(c); err != nil {
			return err
		}
		v.values[i] = val
	}
	return nil
}

func (v *Struct) Encode(w *bitio.Writer) {
	for _, val := range v.values {
		val.Encode(w)
	}
}

func (v *Struct) Describe(indent int) string {
	var b strings.Builder
	for i, val := range v.values {
		name := "?"
		if i < len(v.members) {
			name = v.members[i].Name
		}
		line := val.Describe(indent)
		b.WriteString(strings.TrimSuffix(line, "\n"))
		b.WriteString(" (")
		b.WriteString(name)
		b.WriteString(")\n")
	}
	return b.String()
}
