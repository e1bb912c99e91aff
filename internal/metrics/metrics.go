// Package metrics exposes Prometheus instrumentation for the decoder. A nil
// *Recorder is a valid, inert value — every method is nil-safe, so the core
// decode path has no hard dependency on Prometheus being wired up anywhere.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder tracks packet/payload-level decode outcomes (spec.md §4.10's
// three error tiers). Methods handle a nil receiver gracefully.
type Recorder struct {
	PacketsDecoded    prometheus.Counter
	PacketsDropped    *prometheus.CounterVec
	PayloadsRecovered *prometheus.CounterVec
}

var (
	once     sync.Once
	instance *Recorder
)

// New creates and registers the decoder's Prometheus metrics. If registerer
// is nil, prometheus.DefaultRegisterer is used. Idempotent: repeated calls
// return the same instance.
func New(registerer prometheus.Registerer) *Recorder {
	once.Do(func() {
		if registerer == nil {
			registerer = prometheus.DefaultRegisterer
		}

		m := &Recorder{
			PacketsDecoded: prometheus.NewCounter(
				prometheus.CounterOpts{
					Name: "netdecode_packets_decoded_total",
					Help: "Total packets successfully decoded (including those with recovered payloads).",
				},
			),
			PacketsDropped: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "netdecode_packets_dropped_total",
					Help: "Total packets dropped at the packet-fatal tier, by error type.",
				},
				[]string{"reason"},
			),
			PayloadsRecovered: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "netdecode_payloads_recovered_total",
					Help: "Total payloads that hit a recoverable (tier 1) error and captured bitsleft.",
				},
				[]string{"reason"},
			),
		}

		registerer.MustRegister(m.PacketsDecoded, m.PacketsDropped, m.PayloadsRecovered)
		instance = m
	})
	return instance
}

// RecordDecoded records one successfully decoded packet.
func (m *Recorder) RecordDecoded() {
	if m == nil {
		return
	}
	m.PacketsDecoded.Inc()
}

// RecordDropped records one packet-fatal failure (spec.md §4.10 tier 2).
// reason should name the concrete error type (e.g. "ShortRead",
// "MalformedFlag", "AlignmentError").
func (m *Recorder) RecordDropped(reason string) {
	if m == nil {
		return
	}
	m.PacketsDropped.WithLabelValues(reason).Inc()
}

// RecordRecovered records one payload that stopped decoding early but was
// still framed successfully (spec.md §4.10 tier 1). reason should name the
// concrete error type (e.g. "UnknownProperty", "TrailingBits").
func (m *Recorder) RecordRecovered(reason string) {
	if m == nil {
		return
	}
	m.PayloadsRecovered.WithLabelValues(reason).Inc()
}
