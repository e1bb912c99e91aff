package session_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/replicore/netdecode/internal/schema"
	"github.com/replicore/netdecode/internal/session"
)

func TestChannelZeroPreboundToRootClass(t *testing.T) {
	p := session.New(schema.Shared())
	b, ok := p.Channel(0)
	require.True(t, ok)
	require.Equal(t, "FirstServerObject", b.Class.Name)
	require.Equal(t, "FirstServerObject_0", b.InstanceName)
}

func TestInstanceNamingIsPerClassAndZeroIndexed(t *testing.T) {
	p := session.New(schema.Shared())
	pawn := p.ClassForKey(schema.BitsToKey("00111010100001100100000000000000"))

	first := p.BindChannel(1, pawn)
	second := p.BindChannel(2, pawn)
	require.Equal(t, "TrPlayerPawn_0", first.InstanceName)
	require.Equal(t, "TrPlayerPawn_1", second.InstanceName)
}

func TestUnknownClassGetsSyntheticDescriptorOnFirstSight(t *testing.T) {
	p := session.New(schema.Shared())
	c1 := p.ClassForKey(0xFEEDFACE)
	c2 := p.ClassForKey(0xFEEDFACE)
	require.Same(t, c1, c2)
	require.Empty(t, c1.Properties)
}

func TestChannelCloseThenRebindRequiresFreshBinding(t *testing.T) {
	p := session.New(schema.Shared())
	pawn := p.ClassForKey(schema.BitsToKey("00111010100001100100000000000000"))
	p.BindChannel(5, pawn)

	p.CloseChannel(5)
	_, ok := p.Channel(5)
	require.False(t, ok)

	rebound := p.BindChannel(5, pawn)
	require.Equal(t, "TrPlayerPawn_1", rebound.InstanceName)
}

func TestSharedRegistryIsNeverMutated(t *testing.T) {
	before := schema.Shared().Size()
	p := session.New(schema.Shared())
	p.ClassForKey(0x12345678)
	require.Equal(t, before, schema.Shared().Size())
}
