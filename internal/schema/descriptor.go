// Package schema holds the compile-time class/property tables that bind a
// replicated object's 32-bit class identifier to its property layout. The
// tables mirror the class dictionary udk.py builds once per parser state;
// here they are built once at process start and shared read-only across
// sessions (spec.md §3/§4.3).
package schema

import "github.com/replicore/netdecode/internal/propval"

// PropertyDescriptor binds one property key of a class to its decoded shape.
type PropertyDescriptor struct {
	Name   string
	Kind   propval.Kind
	Params propval.Params
}

// ClassDescriptor is a class's full property table plus the property-ID
// width every property key in the table shares.
type ClassDescriptor struct {
	Name       string
	Properties map[uint32]PropertyDescriptor
	IDSize     int
}

// Lookup returns the property descriptor for a given key, or (zero, false)
// if the class carries no property by that key — callers surface this as an
// UnknownProperty, not a hard failure (spec.md §4.5).
func (c *ClassDescriptor) Lookup(key uint32) (PropertyDescriptor, bool) {
	d, ok := c.Properties[key]
	return d, ok
}

// BitsToKey converts a wire bitstring, written as udk.py spells it (index 0
// is the first bit read off the wire, i.e. the least-significant bit of the
// assembled integer), into the uint32 key our cursor/table lookups use.
func BitsToKey(bits string) uint32 {
	var v uint32
	for i, c := range bits {
		if c == '1' {
			v |= 1 << uint(i)
		}
	}
	return v
}

// NormalizeClassKey applies the 5-bit masking rule: a class key whose low 5
// bits equal 0b10001 is folded down to just those 5 bits before lookup
// (spec.md §3, "class_id_bits" normalization rule).
func NormalizeClassKey(key uint32) uint32 {
	const magic = 0b10001
	if key&0x1F == magic {
		return key & 0x1F
	}
	return key
}
