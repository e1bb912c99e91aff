// Package session holds the per-peer mutable state a packet stream is
// decoded against: the shared class registry, a synthetic overlay for
// classes never seen in the static table, per-class instance counters, and
// the open-channel table (spec.md §3, "Parser state").
package session

import (
	"fmt"

	"github.com/replicore/netdecode/internal/schema"
)

// ChannelBinding records which class instance a channel currently carries.
type ChannelBinding struct {
	Channel      int
	Class        *schema.ClassDescriptor
	InstanceName string
}

// ParserState is constructed once per peer session and mutated only by
// successful payload decoding (spec.md §3, "Lifecycle"). The shared
// registry it wraps is never written to; unknown classes are instead
// recorded in a private overlay so concurrent sessions never contend on the
// same map.
type ParserState struct {
	registry       *schema.Registry
	unknown        map[uint32]*schema.ClassDescriptor
	instanceCounts map[string]int
	channels       map[int]*ChannelBinding
}

// New constructs a ParserState bound to the given registry, with channel 0
// pre-bound to the registry's implicit root class.
func New(registry *schema.Registry) *ParserState {
	p := &ParserState{
		registry:       registry,
		unknown:        make(map[uint32]*schema.ClassDescriptor),
		instanceCounts: make(map[string]int),
		channels:       make(map[int]*ChannelBinding),
	}
	root := registry.Root()
	p.channels[0] = &ChannelBinding{
		Channel:      0,
		Class:        root,
		InstanceName: p.nextInstanceName(root.Name),
	}
	return p
}

// ClassForKey resolves a normalized class key against the shared registry,
// falling back to this session's unknown-class overlay and synthesizing a
// new "unknownN" descriptor on first sight of a key neither knows about.
func (p *ParserState) ClassForKey(key uint32) *schema.ClassDescriptor {
	key = schema.NormalizeClassKey(key)
	if d, ok := p.registry.Lookup(key); ok {
		return d
	}
	if d, ok := p.unknown[key]; ok {
		return d
	}
	d := &schema.ClassDescriptor{
		Name:       fmt.Sprintf("unknown%d", p.registry.Size()+len(p.unknown)),
		Properties: map[uint32]schema.PropertyDescriptor{},
		IDSize:     6,
	}
	p.unknown[key] = d
	return d
}

func (p *ParserState) nextInstanceName(className string) string {
	n := p.instanceCounts[className]
	p.instanceCounts[className] = n + 1
	return fmt.Sprintf("%s_%d", className, n)
}

// Channel returns the current binding for a channel number, if open.
func (p *ParserState) Channel(channel int) (*ChannelBinding, bool) {
	b, ok := p.channels[channel]
	return b, ok
}

// BindChannel opens channel with a freshly named instance of class, per
// spec.md §3's "<class name>_<sequence number>" naming rule. Binding a
// channel that's already open replaces its binding; the payload codec only
// binds channels that are not open (never seen, or closed since).
func (p *ParserState) BindChannel(channel int, class *schema.ClassDescriptor) *ChannelBinding {
	b := &ChannelBinding{
		Channel:      channel,
		Class:        class,
		InstanceName: p.nextInstanceName(class.Name),
	}
	p.channels[channel] = b
	return b
}

// CloseChannel destroys a channel binding; the next payload on this channel
// must carry a fresh class prefix (spec.md §3, "A channel is closed iff a
// payload arrives with declared size 0").
func (p *ParserState) CloseChannel(channel int) {
	delete(p.channels, channel)
}
