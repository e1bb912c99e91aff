package schema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/replicore/netdecode/internal/propval"
	"github.com/replicore/netdecode/internal/schema"
)

func TestRootClassIsFirstServerObject(t *testing.T) {
	r := schema.Shared()
	require.Equal(t, "FirstServerObject", r.Root().Name)
}

func TestLookupAppliesFiveBitNormalization(t *testing.T) {
	r := schema.Shared()

	full, ok := r.Lookup(schema.BitsToKey("10001000000000000000000000000000"))
	require.True(t, ok)
	require.Equal(t, "FirstServerObject", full.Name)

	// Any 32-bit key whose low 5 bits are 0b10001 normalizes to the same
	// 5-bit key and must resolve to the same class.
	masked, ok := r.Lookup(0b10001)
	require.True(t, ok)
	require.Equal(t, full.Name, masked.Name)
}

func TestLookupUnknownKeyMisses(t *testing.T) {
	r := schema.Shared()
	_, ok := r.Lookup(0xDEADBEEF)
	require.False(t, ok)
}

func TestTrPlayerPawnPropertyWidthsAgreeWithIDSize(t *testing.T) {
	r := schema.Shared()
	pawn, ok := r.Lookup(schema.BitsToKey("00111010100001100100000000000000"))
	require.True(t, ok)
	require.Equal(t, 7, pawn.IDSize)

	prop, ok := pawn.Lookup(schema.BitsToKey("1010000"))
	require.True(t, ok)
	require.Equal(t, "bNetOwner", prop.Name)
	require.Equal(t, propval.KindBool, prop.Kind)
}

func TestMultipleChoicePropertyCarriesChoiceTable(t *testing.T) {
	r := schema.Shared()
	gri, ok := r.Lookup(schema.BitsToKey("01110001101110110100000000000000"))
	require.True(t, ok)

	flagState, ok := gri.Lookup(schema.BitsToKey("001001"))
	require.True(t, ok)
	require.Equal(t, propval.KindMultipleChoice, flagState.Kind)
	require.Equal(t, "Enemy flag on stand", flagState.Params.Choices[schema.BitsToKey("0000000000")])
}

func TestNoCommentedOutVariableSizePropertiesLeakIntoTable(t *testing.T) {
	r := schema.Shared()
	collision, ok := r.Lookup(schema.BitsToKey("01001011110100001100000000000000"))
	require.True(t, ok)
	require.Empty(t, collision.Properties)
}

func TestDeviceVariantsShareOneTableButHaveDistinctNames(t *testing.T) {
	r := schema.Shared()
	blink, ok := r.Lookup(schema.BitsToKey("01111000100110010100000000000000"))
	require.True(t, ok)
	twinfusor, ok := r.Lookup(schema.BitsToKey("00111001001110010100000000000000"))
	require.True(t, ok)

	require.NotEqual(t, blink.Name, twinfusor.Name)
	require.Equal(t, len(blink.Properties), len(twinfusor.Properties))
}

func TestClassesListsEveryClassOnce(t *testing.T) {
	r := schema.Shared()
	classes := r.Classes()
	require.NotEmpty(t, classes)

	seen := make(map[string]bool, len(classes))
	for _, c := range classes {
		require.False(t, seen[c.Name], "class %s listed more than once", c.Name)
		seen[c.Name] = true
	}

	names := make(map[string]bool)
	for _, c := range classes {
		names[c.Name] = true
	}
	require.True(t, names["FirstServerObject"])
}
