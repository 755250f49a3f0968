package middleware

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator provides efficient generation of trace IDs by
// precomputing them. A background goroutine keeps a buffered channel of
// UUIDs filled so the request path never waits on UUID generation.
type IDGenerator struct {
	idChan   chan string
	quit     chan struct{}
	stopOnce sync.Once
}

// generatorRegistry keeps track of IDGenerator instances by buffer size
// to prevent duplication: two middlewares asking for the same size
// share one generator and one filler goroutine.
var generatorRegistry = struct {
	sync.RWMutex
	generators map[int]*IDGenerator
}{
	generators: make(map[int]*IDGenerator),
}

// NewIDGenerator creates a new IDGenerator with the specified buffer
// size and starts its background filler.
func NewIDGenerator(bufferSize int) *IDGenerator {
	g := &IDGenerator{
		idChan: make(chan string, bufferSize),
		quit:   make(chan struct{}),
	}
	go g.fill()
	return g
}

// getOrCreateGenerator retrieves an existing generator with the
// specified buffer size or creates a new one if none exists.
func getOrCreateGenerator(bufferSize int) *IDGenerator {
	generatorRegistry.RLock()
	gen, exists := generatorRegistry.generators[bufferSize]
	generatorRegistry.RUnlock()
	if exists {
		return gen
	}

	generatorRegistry.Lock()
	defer generatorRegistry.Unlock()

	// Another goroutine may have created it while we waited for the lock.
	if gen, exists = generatorRegistry.generators[bufferSize]; exists {
		return gen
	}
	gen = NewIDGenerator(bufferSize)
	generatorRegistry.generators[bufferSize] = gen
	return gen
}

// fill keeps the channel of precomputed IDs topped up until Stop.
func (g *IDGenerator) fill() {
	for {
		select {
		case g.idChan <- uuid.New().String():
		case <-g.quit:
			return
		}
	}
}

// GetID returns a precomputed UUID from the channel, blocking until one
// is available.
func (g *IDGenerator) GetID() string {
	return <-g.idChan
}

// GetIDNonBlocking attempts to get a precomputed UUID without blocking.
// If the buffer is momentarily empty it generates one on the spot, so
// requests are never delayed by bursts that outpace the filler.
func (g *IDGenerator) GetIDNonBlocking() string {
	select {
	case id := <-g.idChan:
		return id
	default:
		return uuid.New().String()
	}
}

// Stop terminates the background filler. It is safe to call more than
// once. IDs already buffered remain available.
func (g *IDGenerator) Stop() {
	g.stopOnce.Do(func() { close(g.quit) })
}

type traceIDKey struct{}

// WithTraceID returns a context carrying the given trace ID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID stored in ctx, or the empty
// string when none was set.
func TraceIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}

// TraceID returns the trace ID attached to the request, or the empty
// string when none was set.
func TraceID(r *http.Request) string {
	return TraceIDFromContext(r.Context())
}

// Trace assigns every request a trace ID drawn from a shared buffered
// generator and exposes it through the request context and the
// X-Trace-ID response header. Decode and encode failure logs pick the
// ID up automatically.
func Trace(bufferSize int) Middleware {
	gen := getOrCreateGenerator(bufferSize)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := gen.GetIDNonBlocking()
			w.Header().Set("X-Trace-ID", traceID)
			next.ServeHTTP(w, r.WithContext(WithTraceID(r.Context(), traceID)))
		})
	}
}
