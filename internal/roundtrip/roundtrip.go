// Package roundtrip implements the debug round-trip assertion: re-encode a
// decoded packet and compare it against the original bytes (spec.md §7, §9).
// This is an opt-in mode, not something the core pays for by default.
package roundtrip

import (
	"fmt"

	"github.com/replicore/netdecode/internal/bitio"
	"github.com/replicore/netdecode/internal/packet"
)

// Mismatch is a programming-fatal error (spec.md §4.10 tier 3): the decoder
// produced a packet whose re-encoding does not match the bytes it was
// decoded from. This must never happen against a correct implementation; it
// exists to catch regressions during development, not to be handled by
// production callers.
type Mismatch struct {
	Original  []byte
	ReEncoded []byte
}

func (e *Mismatch) Error() string {
	return fmt.Sprintf("round-trip mismatch: %d original bytes, %d re-encoded bytes", len(e.Original), len(e.ReEncoded))
}

// Check re-encodes p and compares the result against original. Callers
// typically run this only when DebugRoundtrip is enabled (spec.md §10.2's
// DecoderConfig), since it duplicates the encode work on every decode.
func Check(p *packet.Packet, original []byte) error {
	w := bitio.NewWriter()
	packet.Encode(p, w)
	got := w.Bytes()

	if len(got) != len(original) {
		return &Mismatch{Original: original, ReEncoded: got}
	}
	for i := range original {
		if got[i] != original[i] {
			return &Mismatch{Original: original, ReEncoded: got}
		}
	}
	return nil
}
