package media

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Suhaibinator/SMedia/pkg/codec"
	"github.com/Suhaibinator/SMedia/pkg/metrics"
)

// Config carries the ambient collaborators the package uses while
// processing bodies.
type Config struct {
	// Logger receives decode and encode failures. Nil means the
	// process-global zap logger, which discards everything unless the
	// host application replaced it.
	Logger *zap.Logger

	// Metrics receives one observation per decode or encode attempt.
	// Nil disables instrumentation.
	Metrics metrics.Collector
}

var config atomic.Pointer[Config]

// Configure installs cfg for all subsequent decode and encode calls.
// It is meant to be called once during startup; the zero value is a
// working default.
func Configure(cfg Config) {
	config.Store(&cfg)
}

func configuredLogger() *zap.Logger {
	if c := config.Load(); c != nil && c.Logger != nil {
		return c.Logger
	}
	return zap.L()
}

func configuredCollector() metrics.Collector {
	if c := config.Load(); c != nil && c.Metrics != nil {
		return c.Metrics
	}
	return metrics.Noop
}

func observeDecode(id codec.ID, result string, start time.Time) {
	configuredCollector().ObserveDecode(string(id), result, time.Since(start))
}

func observeEncode(id codec.ID, result string, start time.Time) {
	configuredCollector().ObserveEncode(string(id), result, time.Since(start))
}
