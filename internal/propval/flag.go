package propval

import (
	"strings"

	"github.com/replicore/netdecode/internal/bitio"
)

// Flag is a zero-width value: its presence in the property stream (i.e.
// its key being decoded at all) is the entire payload (spec §4.2).
type Flag struct{}

func (v *Flag) Kind() Kind { return KindFlag }

func (v *Flag) Decode(c *bitio.Cursor) error { return nil }

func (v *Flag) Encode(w *bitio.Writer) {}

func (v *Flag) Describe(indent int) string {
	return strings.Repeat(" ", indent) + "(flag is set)\n"
}
