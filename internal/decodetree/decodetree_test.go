package decodetree_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/replicore/netdecode/internal/bitio"
	"github.com/replicore/netdecode/internal/decodetree"
	"github.com/replicore/netdecode/internal/packet"
	"github.com/replicore/netdecode/internal/schema"
	"github.com/replicore/netdecode/internal/session"
)

func TestRenderIncludesSeqnrChannelAndInstance(t *testing.T) {
	state := session.New(schema.Shared())

	w := bitio.NewWriter()
	w.Put(7, 14) // seqnr
	w.Put(0, 1)  // data part tag
	w.Put(0b00, 2) // flag1a unreliable
	w.Put(0, 10) // channel 0 (root class, no prefix)
	w.Put(8, 14) // payload body size: 8 bits, just the property key
	w.Put(schema.BitsToKey("10000000"), 8) // mysteryproperty3 key on FirstServerObject
	w.Put(1, 1) // terminator
	pad := (8 - w.Len()%8) % 8
	w.Put(0, pad)

	p, err := packet.Decode(bitio.NewCursor(w.Bytes()), state, nil, false)
	require.NoError(t, err)

	out := decodetree.Render(p)
	require.True(t, strings.Contains(out, "seqnr=7"))
	require.True(t, strings.Contains(out, "channel=0"))
	require.True(t, strings.Contains(out, "FirstServerObject"))
}
