package fractal

// EngineOption configures an Engine during creation.
//
// Example:
//
//	// One worker per CPU, default span sizing
//	e := fractal.NewEngine()
//
//	// Four workers, 4096-pixel spans
//	e := fractal.NewEngine(fractal.WithWorkers(4), fractal.WithSpanSize(4096))
type EngineOption func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	workers  int
	spanSize int
}

// Span sizing when WithSpanSize is not given: about spansPerWorker spans
// per worker, never shorter than minSpanSize pixels.
const (
	spansPerWorker = 8
	minSpanSize    = 256
)

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		workers:  0, // GOMAXPROCS
		spanSize: 0, // derived per frame
	}
}

// WithWorkers sets the number of render goroutines.
// Zero or a negative value selects GOMAXPROCS.
func WithWorkers(n int) EngineOption {
	return func(o *engineOptions) {
		o.workers = n
	}
}

// WithSpanSize fixes the number of consecutive pixels handled by one task.
// Zero or a negative value derives the size from the frame and worker count.
func WithSpanSize(n int) EngineOption {
	return func(o *engineOptions) {
		o.spanSize = n
	}
}
