// Package prometheus adapts the metrics.Collector interface to
// Prometheus counters and histograms.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector implements metrics.Collector on top of a Prometheus
// registry. Decode and encode attempts are counted by codec and result,
// and their latencies observed in per-codec histograms.
type Collector struct {
	decodes    *prometheus.CounterVec
	encodes    *prometheus.CounterVec
	decodeTime *prometheus.HistogramVec
	encodeTime *prometheus.HistogramVec
}

// NewCollector builds the collector's metrics and registers them with
// reg under the given namespace. Metrics that are already registered,
// which happens when several collectors share one registry, are reused
// rather than duplicated.
func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	if reg == nil {
		panic("prometheus registry cannot be nil")
	}
	return &Collector{
		decodes: counterVec(reg, prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "media",
			Name:      "decodes_total",
			Help:      "Request body decode attempts by codec and result.",
		}, "codec", "result"),
		encodes: counterVec(reg, prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "media",
			Name:      "encodes_total",
			Help:      "Response body encode attempts by codec and result.",
		}, "codec", "result"),
		decodeTime: histogramVec(reg, prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "media",
			Name:      "decode_duration_seconds",
			Help:      "Request body decode latency by codec.",
			Buckets:   prometheus.DefBuckets,
		}, "codec"),
		encodeTime: histogramVec(reg, prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "media",
			Name:      "encode_duration_seconds",
			Help:      "Response body encode latency by codec.",
			Buckets:   prometheus.DefBuckets,
		}, "codec"),
	}
}

// ObserveDecode implements metrics.Collector.
func (c *Collector) ObserveDecode(codec, result string, d time.Duration) {
	c.decodes.WithLabelValues(codec, result).Inc()
	c.decodeTime.WithLabelValues(codec).Observe(d.Seconds())
}

// ObserveEncode implements metrics.Collector.
func (c *Collector) ObserveEncode(codec, result string, d time.Duration) {
	c.encodes.WithLabelValues(codec, result).Inc()
	c.encodeTime.WithLabelValues(codec).Observe(d.Seconds())
}

func counterVec(reg prometheus.Registerer, opts prometheus.CounterOpts, labels ...string) *prometheus.CounterVec {
	vec := prometheus.NewCounterVec(opts, labels)
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.CounterVec)
		}
		panic(err)
	}
	return vec
}

func histogramVec(reg prometheus.Registerer, opts prometheus.HistogramOpts, labels ...string) *prometheus.HistogramVec {
	vec := prometheus.NewHistogramVec(opts, labels)
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.HistogramVec)
		}
		panic(err)
	}
	return vec
}
