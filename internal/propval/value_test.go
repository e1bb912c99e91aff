package propval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/replicore/netdecode/internal/bitio"
	"github.com/replicore/netdecode/internal/propval"
)

// decodeThenReencode builds a Value of the given kind from raw wire bits,
// decodes it, re-encodes it, and returns the decoded value plus the
// re-encoded bytes so callers can assert byte-exact round-tripping.
func decodeThenReencode(t *testing.T, kind propval.Kind, params propval.Params, wire []byte) (propval.Value, []byte) {
	t.Helper()
	v := propval.New(kind, params)
	require.NoError(t, v.Decode(bitio.NewCursor(wire)))

	w := bitio.NewWriter()
	v.Encode(w)
	return v, w.Bytes()
}

func TestInt32RoundTrip(t *testing.T) {
	in := bitio.NewWriter()
	in.Put(12345, 32)

	v, out := decodeThenReencode(t, propval.KindInt32, propval.Params{}, in.Bytes())
	require.Equal(t, uint32(12345), v.(*propval.Int32).Value)
	require.Equal(t, in.Bytes(), out)
}

func TestFloat32RoundTrip(t *testing.T) {
	in := bitio.NewWriter()
	in.Put(uint64(math.Float32bits(2.5)), 32)

	v, out := decodeThenReencode(t, propval.KindFloat32, propval.Params{}, in.Bytes())
	require.Equal(t, float32(2.5), v.(*propval.Float32).Value)
	require.Equal(t, in.Bytes(), out)
}

func TestBoolRoundTrip(t *testing.T) {
	in := bitio.NewWriter()
	in.Put(1, 1)

	v, out := decodeThenReencode(t, propval.KindBool, propval.Params{}, in.Bytes())
	require.True(t, v.(*propval.Bool).Value)
	require.Equal(t, in.Bytes(), out)
}

func TestFlagIsZeroWidth(t *testing.T) {
	v := propval.New(propval.KindFlag, propval.Params{})
	c := bitio.NewCursor([]byte{0xFF})
	require.NoError(t, v.Decode(c))
	require.Equal(t, 8, c.Remaining())

	w := bitio.NewWriter()
	v.Encode(w)
	require.Equal(t, 0, w.Len())
}

func TestSizedBitsRoundTrip(t *testing.T) {
	in := bitio.NewWriter()
	in.Put(0b10110101010, 11)

	v, out := decodeThenReencode(t, propval.KindSizedBits, propval.Params{Size: 11}, in.Bytes())
	require.Equal(t, uint64(0b10110101010), v.(*propval.SizedBits).Value)
	require.Equal(t, in.Bytes(), out)
}

func TestStringRoundTrip(t *testing.T) {
	in := bitio.NewWriter()
	in.PutString("DiamondSword")

	v, out := decodeThenReencode(t, propval.KindString, propval.Params{}, in.Bytes())
	require.Equal(t, "DiamondSword", v.(*propval.String).Value)
	require.Equal(t, in.Bytes(), out)
}

func TestEmptyStringRoundTrip(t *testing.T) {
	in := bitio.NewWriter()
	in.PutString("")

	v, out := decodeThenReencode(t, propval.KindString, propval.Params{}, in.Bytes())
	require.Equal(t, "", v.(*propval.String).Value)
	require.Equal(t, in.Bytes(), out)
}

func TestMultipleChoiceKnownAndUnknown(t *testing.T) {
	choices := map[uint32]string{0b11: "Taken", 0b00: "OnStand"}

	in := bitio.NewWriter()
	in.Put(0b11, 2)
	v, out := decodeThenReencode(t, propval.KindMultipleChoice, propval.Params{Size: 2, Choices: choices}, in.Bytes())
	require.Equal(t, "Taken", v.(*propval.MultipleChoice).Label)
	require.Equal(t, in.Bytes(), out)

	// A value absent from the map decodes to "Unknown", not an error, and
	// still round-trips the raw bits faithfully.
	unknownIn := bitio.NewWriter()
	unknownIn.Put(0b01, 2)
	uv, uout := decodeThenReencode(t, propval.KindMultipleChoice, propval.Params{Size: 2, Choices: choices}, unknownIn.Bytes())
	require.Equal(t, "Unknown", uv.(*propval.MultipleChoice).Label)
	require.Equal(t, unknownIn.Bytes(), uout)
}

func TestStructPositionalMembers(t *testing.T) {
	members := []propval.Member{
		{Name: "NewState", Kind: propval.KindSizedBits, Params: propval.Params{Size: 11}},
		{Name: "NewLabel", Kind: propval.KindSizedBits, Params: propval.Params{Size: 11}},
	}

	in := bitio.NewWriter()
	in.Put(0b10101010101, 11)
	in.Put(0b11001100110, 11)

	v, out := decodeThenReencode(t, propval.KindStruct, propval.Params{Members: members}, in.Bytes())
	s := v.(*propval.Struct)
	require.Equal(t, in.Bytes(), out)

	w := bitio.NewWriter()
	s.Encode(w)
	require.Equal(t, 22, w.Len())
}

func TestParamsPresenceBits(t *testing.T) {
	members := []propval.Member{
		{Name: "unknown", Kind: propval.KindFlag},
		{Name: "Winner", Kind: propval.KindInt32},
		{Name: "WinnerName", Kind: propval.KindString},
	}

	in := bitio.NewWriter()
	in.Put(1, 1) // unknown flag present (zero-width payload)
	in.Put(0, 1) // Winner absent
	in.Put(0, 1) // WinnerName absent

	v, out := decodeThenReencode(t, propval.KindParams, propval.Params{Members: members}, in.Bytes())
	require.Equal(t, in.Bytes(), out)

	w := bitio.NewWriter()
	v.Encode(w)
	require.Equal(t, 3, w.Len())
}

func TestParamsWithPresentValue(t *testing.T) {
	members := []propval.Member{
		{Name: "Winner", Kind: propval.KindInt32},
		{Name: "WinnerName", Kind: propval.KindString},
	}

	in := bitio.NewWriter()
	in.Put(1, 1)
	in.Put(7, 32)
	in.Put(1, 1)
	in.PutString("Steve")

	v, out := decodeThenReencode(t, propval.KindParams, propval.Params{Members: members}, in.Bytes())
	require.Equal(t, in.Bytes(), out)
	_ = v
}

func TestMystery1RoundTrip(t *testing.T) {
	in := bitio.NewWriter()
	in.Put(1, 32)
	in.Put(2, 32)
	in.Put(3, 32)
	in.Put(4, 32)
	in.PutString("a")
	in.PutString("bb")
	in.Put(5, 32)
	in.Put(6, 32)
	in.PutString("ccc")

	v, out := decodeThenReencode(t, propval.KindMystery1, propval.Params{}, in.Bytes())
	m := v.(*propval.Mystery1)
	require.Equal(t, uint32(1), m.Int1.Value)
	require.Equal(t, "bb", m.Str2.Value)
	require.Equal(t, "ccc", m.Str3.Value)
	require.Equal(t, in.Bytes(), out)
}

func TestKindStringNamesEveryVariant(t *testing.T) {
	require.Equal(t, "Int32", propval.KindInt32.String())
	require.Equal(t, "Params", propval.KindParams.String())
	require.Equal(t, "Unknown", propval.Kind(999).String())
}

func TestMystery2And3RoundTrip(t *testing.T) {
	in2 := bitio.NewWriter()
	in2.PutString("x")
	in2.PutString("y")
	in2.PutString("z")

	v2, out2 := decodeThenReencode(t, propval.KindMystery2, propval.Params{}, in2.Bytes())
	require.Equal(t, "y", v2.(*propval.Mystery2).Str2.Value)
	require.Equal(t, in2.Bytes(), out2)

	in3 := bitio.NewWriter()
	in3.PutString("p")
	in3.PutString("q")

	v3, out3 := decodeThenReencode(t, propval.KindMystery3, propval.Params{}, in3.Bytes())
	require.Equal(t, "p", v3.(*propval.Mystery3).Str1.Value)
	require.Equal(t, in3.Bytes(), out3)
}
