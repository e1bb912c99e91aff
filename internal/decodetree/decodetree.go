// Package decodetree renders a decoded packet as an indented text tree, the
// Go equivalent of udk.py's tostring() methods that every wire object
// carries for debugging (spec.md §9's "human-readable dump" note).
package decodetree

import (
	"fmt"
	"strings"

	"github.com/replicore/netdecode/internal/chanframe"
	"github.com/replicore/netdecode/internal/packet"
	"github.com/replicore/netdecode/internal/payload"
)

const step = 2

func indent(n int) string { return strings.Repeat(" ", n) }

// Render writes a full indented dump of a decoded packet: sequence number,
// one block per part (ack or channel data), and for data parts the bound
// instance name, class, and every decoded property.
func Render(p *packet.Packet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Packet seqnr=%d parts=%d\n", p.SeqNr, len(p.Parts))

	for i, part := range p.Parts {
		renderPart(&b, i, part)
	}

	if p.PaddingWidth > 0 {
		fmt.Fprintf(&b, "%spadding: %d bits\n", indent(step), p.PaddingWidth)
	}
	return b.String()
}

func renderPart(b *strings.Builder, i int, part packet.Part) {
	pad := indent(step)
	switch part.Kind {
	case "ack":
		fmt.Fprintf(b, "%s[%d] ack seqnr=%d\n", pad, i, part.AckNumber)
	case "data":
		reliability := "unreliable"
		if part.Flag != 0 {
			reliability = "reliable"
		}
		fmt.Fprintf(b, "%s[%d] data (%s, escapes=%d)\n", pad, i, reliability, part.EscapeCount)
		if part.Frame != nil {
			renderFrame(b, part.Frame)
		}
	}
}

func renderFrame(b *strings.Builder, f *chanframe.Frame) {
	pad := indent(step * 2)
	fmt.Fprintf(b, "%schannel=%d", pad, f.Channel)
	if f.Reliable {
		fmt.Fprintf(b, " counter=%d unknown=%d", f.Counter, f.Unknown)
	}
	b.WriteString("\n")
	if f.Payload != nil {
		renderPayload(b, f.Payload)
	}
}

func renderPayload(b *strings.Builder, p *payload.Payload) {
	pad := indent(step * 3)
	if p.Closed {
		fmt.Fprintf(b, "%schannel closed (zero-size payload)\n", pad)
		return
	}
	if p.ClassIntro {
		fmt.Fprintf(b, "%sclass intro: 0x%08X\n", pad, p.ClassID)
	}
	fmt.Fprintf(b, "%sinstance: %s (id width %d bits)\n", pad, p.InstanceName, p.IDSize)

	if p.Instance != nil {
		for _, prop := range p.Instance.Properties {
			fmt.Fprintf(b, "%s%s (key=%d, kind=%s):\n", indent(step*4), prop.Descriptor.Name, prop.Key, prop.Descriptor.Kind)
			b.WriteString(prop.Value.Describe(step * 5))
		}
	}

	if p.BitsLeftReason != "" {
		fmt.Fprintf(b, "%sbitsleft (%d bits): %s\n", indent(step*4), p.BitsLeftWidth, p.BitsLeftReason)
	}
}
