// Package metrics defines the instrumentation hooks the media layer
// reports through. The interface is deliberately small so any metrics
// system can back it; a Prometheus implementation ships in the
// prometheus subpackage.
package metrics

import "time"

// Collector receives one observation per decode or encode attempt.
// Implementations must be safe for concurrent use; observations are
// reported from request goroutines.
type Collector interface {
	// ObserveDecode records a request body decode attempt handled by
	// the given codec. result is "ok" on success or the failure kind
	// otherwise.
	ObserveDecode(codec, result string, d time.Duration)

	// ObserveEncode records a response body encode attempt handled by
	// the given codec. result is "ok" on success or the failure kind
	// otherwise.
	ObserveEncode(codec, result string, d time.Duration)
}

// NoopCollector discards all observations.
type NoopCollector struct{}

// ObserveDecode implements Collector.
func (NoopCollector) ObserveDecode(string, string, time.Duration) {}

// ObserveEncode implements Collector.
func (NoopCollector) ObserveEncode(string, string, time.Duration) {}

// Noop is the collector used when none is configured.
var Noop Collector = NoopCollector{}
