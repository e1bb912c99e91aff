package roundtrip_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/replicore/netdecode/internal/bitio"
	"github.com/replicore/netdecode/internal/packet"
	"github.com/replicore/netdecode/internal/roundtrip"
	"github.com/replicore/netdecode/internal/schema"
	"github.com/replicore/netdecode/internal/session"
)

func TestCheckPassesOnExactRoundTrip(t *testing.T) {
	state := session.New(schema.Shared())

	w := bitio.NewWriter()
	w.Put(0, 14) // seqnr
	w.Put(1, 1)  // terminator
	pad := (8 - w.Len()%8) % 8
	w.Put(0, pad)

	p, err := packet.Decode(bitio.NewCursor(w.Bytes()), state, nil, false)
	require.NoError(t, err)

	require.NoError(t, roundtrip.Check(p, w.Bytes()))
}

func TestCheckFailsOnTamperedOriginal(t *testing.T) {
	state := session.New(schema.Shared())

	w := bitio.NewWriter()
	w.Put(0, 14)
	w.Put(1, 1)
	pad := (8 - w.Len()%8) % 8
	w.Put(0, pad)

	p, err := packet.Decode(bitio.NewCursor(w.Bytes()), state, nil, false)
	require.NoError(t, err)

	tampered := append([]byte{}, w.Bytes()...)
	tampered[0] ^= 0xFF

	err = roundtrip.Check(p, tampered)
	require.Error(t, err)
	var mismatch *roundtrip.Mismatch
	require.ErrorAs(t, err, &mismatch)
}
