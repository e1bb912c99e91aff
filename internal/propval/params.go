package propval

import (
	"fmt"
	"strings"

	"github.com/replicore/netdecode/internal/bitio"
)

// ParamsValue decodes a presence bit ahead of every member (spec §4.2,
// "list-shaped" members) — used for optional RPC parameter lists such as
// ClientMatchOver's Winner/WinnerName.
type ParamsValue struct {
	members  []Member
	presence []bool
	values   []Value // nil entry where presence[i] is false
}

func (v *ParamsValue) Kind() Kind { return KindParams }

func (v *ParamsValue) Decode(c *bitio.Cursor) error {
	v.presence = make([]bool, len(v.members))
	v.values = make([]Value, len(v.members))
	for i, m := range v.members {
		present, err := c.Take(1)
		if err != nil {
			return err
		}
		v.presence[i] = present == 1
		if v.presence[i] {
			val := New(m.Kind, m.Params)
			if err := val.Decode(c); err != nil {
				return err
			}
			v.values[i] = val
		}
	}
	return nil
}

// Encode tolerates fewer decoded values than members: any member beyond
// len(values) is encoded as absent (a single 0 bit), per spec §4.2.
func (v *ParamsValue) Encode(w *bitio.Writer) {
	for i := range v.members {
		present := i < len(v.presence) && v.presence[i]
		if present {
			w.Put(1, 1)
			if i < len(v.values) && v.values[i] != nil {
				v.values[i].Encode(w)
			}
		} else {
			w.Put(0, 1)
		}
	}
}

func (v *ParamsValue) Describe(indent int) string {
	var b strings.Builder
	prefix := strings.Repeat(" ", indent)
	for i, m := range v.members {
		present := i < len(v.presence) && v.presence[i]
		if present {
			fmt.Fprintf(&b, "%s1 (%s param present)\n", prefix, m.Name)
			if i < len(v.values) && v.values[i] != nil {
				line := v.values[i].Describe(indent)
				b.WriteString(strings.TrimSuffix(line, "\n"))
				b.WriteString(" (")
				b.WriteString(m.Name)
				b.WriteString(")\n")
			}
		} else {
			fmt.Fprintf(&b, "%s0 (%s param absent)\n", prefix, m.Name)
		}
	}
	return b.String()
}
