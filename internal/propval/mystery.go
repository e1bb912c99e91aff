package propval

import (
	"strings"

	"github.com/replicore/netdecode/internal/bitio"
)

// Mystery1/2/3 are fixed composite shapes the protocol's reverse engineers
// never named — they are kept as positional tuples of their member kinds
// and are not interpreted further (spec §4.2, §9), ported directly from
// udk.py's PropertyValueMystery1/2/3.

// Mystery1 is FirstServerObject's "mysteryproperty1": four Int32s, two
// Strings, two more Int32s and a final String — nine positional members.
type Mystery1 struct {
	Int1, Int2, Int3, Int4 Int32
	Str1, Str2             String
	Int5, Int6             Int32
	Str3                   String
}

func (v *Mystery1) Kind() Kind { return KindMystery1 }

func (v *Mystery1) Decode(c *bitio.Cursor) error {
	for _, d := range []interface{ Decode(*bitio.Cursor) error }{
		&v.Int1, &v.Int2, &v.Int3, &v.Int4, &v.Str1, &v.Str2, &v.Int5, &v.Int6, &v.Str3,
	} {
		if err := d.Decode(c); err != nil {
			return err
		}
	}
	return nil
}

func (v *Mystery1) Encode(w *bitio.Writer) {
	v.Int1.Encode(w)
	v.Int2.Encode(w)
	v.Int3.Encode(w)
	v.Int4.Encode(w)
	v.Str1.Encode(w)
	v.Str2.Encode(w)
	v.Int5.Encode(w)
	v.Int6.Encode(w)
	v.Str3.Encode(w)
}

func (v *Mystery1) Describe(indent int) string {
	var b strings.Builder
	for _, part := range []Value{&v.Int1, &v.Int2, &v.Int3, &v.Int4, &v.Str1, &v.Str2, &v.Int5, &v.Int6, &v.Str3} {
		b.WriteString(part.Describe(indent))
	}
	return b.String()
}

// Mystery2 is "mysteryproperty2-shaped" data: three Strings.
type Mystery2 struct {
	Str1, Str2, Str3 String
}

func (v *Mystery2) Kind() Kind { return KindMystery2 }

func (v *Mystery2) Decode(c *bitio.Cursor) error {
	if err := v.Str1.Decode(c); err != nil {
		return err
	}
	if err := v.Str2.Decode(c); err != nil {
		return err
	}
	return v.Str3.Decode(c)
}

func (v *Mystery2) Encode(w *bitio.Writer) {
	v.Str1.Encode(w)
	v.Str2.Encode(w)
	v.Str3.Encode(w)
}

func (v *Mystery2) Describe(indent int) string {
	return v.Str1.Describe(indent) + v.Str2.Describe(indent) + v.Str3.Describe(indent)
}

// Mystery3 is "mysteryproperty3-shaped" data: two Strings.
type Mystery3 struct {
	Str1, Str2 String
}

func (v *Mystery3) Kind() Kind { return KindMystery3 }

func (v *Mystery3) Decode(c *bitio.Cursor) error {
	if err := v.Str1.Decode(c); err != nil {
		return err
	}
	return v.Str2.Decode(c)
}

func (v *Mystery3) Encode(w *bitio.Writer) {
	v.Str1.Encode(w)
	v.Str2.Encode(w)
}

func (v *Mystery3) Describe(indent int) string {
	return v.Str1.Describe(indent) + v.Str2.Describe(indent)
}
