// Package propval implements the tagged union of typed property payloads
// spec.md §4.2 describes: Int32, Float32, Bool, Flag, SizedBits, String,
// MultipleChoice, Struct, Params and the three fixed Mystery composites.
//
// Each variant has a matching PropertyValue* type in the original Python
// implementation (udk.py); the shapes here are a direct, one-type-per-kind
// port rather than a reflective encoder, matching spec.md §9's guidance
// that "no runtime type reflection is needed."
package propval

import "github.com/replicore/netdecode/internal/bitio"

// Kind identifies which wire shape a Value implements.
type Kind int

const (
	KindInt32 Kind = iota
	KindFloat32
	KindBool
	KindFlag
	KindSizedBits
	KindString
	KindMultipleChoice
	KindStruct
	KindParams
	KindMystery1
	KindMystery2
	KindMystery3
)

var kindNames = map[Kind]string{
	KindInt32:          "Int32",
	KindFloat32:        "Float32",
	KindBool:           "Bool",
	KindFlag:           "Flag",
	KindSizedBits:      "SizedBits",
	KindString:         "String",
	KindMultipleChoice: "MultipleChoice",
	KindStruct:         "Struct",
	KindParams:         "Params",
	KindMystery1:       "Mystery1",
	KindMystery2:       "Mystery2",
	KindMystery3:       "Mystery3",
}

// String names the kind for diagnostics and CLI listing.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Value is the common interface every property payload implements.
type Value interface {
	Kind() Kind
	Decode(c *bitio.Cursor) error
	Encode(w *bitio.Writer)
	Describe(indent int) string
}

// Params describes how a scalar or composite value should be constructed:
// the bit width for SizedBits/MultipleChoice, the enum map for
// MultipleChoice, and the member list for Struct/Params.
type Params struct {
	Size    int
	Choices map[uint32]string
	Members []Member
}

// Member is a positional member of a Struct or Params value — the same
// shape as a schema property descriptor minus the wire key, since it is
// decoded by position rather than by an ID prefix.
type Member struct {
	Name   string
	Kind   Kind
	Params Params
}

// New constructs a fresh, undecoded Value for the given kind and params.
func New(kind Kind, p Params) Value {
	switch kind {
	case KindInt32:
		return &Int32{}
	case KindFloat32:
		return &Float32{}
	case KindBool:
		return &Bool{}
	case KindFlag:
		return &Flag{}
	case KindSizedBits:
		return &SizedBits{size: p.Size}
	case KindString:
		return &String{}
	case KindMultipleChoice:
		return &MultipleChoice{size: p.Size, choices: p.Choices}
	case KindStruct:
		return &Struct{members: p.Members}
	case KindParams:
		return &ParamsValue{members: p.Members}
	case KindMystery1:
		return &Mystery1{}
	case KindMystery2:
		return &Mystery2{}
	case KindMystery3:
		return &Mystery3{}
	default:
		panic("propval: unknown kind")
	}
}
