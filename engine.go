package fractal

import (
	"fmt"
	"time"

	"github.com/gogpu/fractal/internal/parallel"
)

// Engine renders escape-time fractals into a Buffer.
//
// An Engine keeps no view state: Render is a function of the fractal and
// the view it is given. The pixel range is split into contiguous spans and
// each span is computed by one pool task writing only its own slots, so a
// frame needs no locking and the output does not depend on scheduling.
//
// Render calls must not overlap on the same destination buffer.
type Engine struct {
	pool     *parallel.WorkerPool
	spanSize int
}

// NewEngine creates an engine and starts its worker pool.
// Call Close to stop the workers.
func NewEngine(opts ...EngineOption) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{
		pool:     parallel.NewWorkerPool(o.workers),
		spanSize: o.spanSize,
	}
}

// Workers returns the number of render goroutines.
func (e *Engine) Workers() int {
	return e.pool.Workers()
}

// Close waits for renders already running and stops the worker pool. A
// closed engine still renders, on the calling goroutine.
func (e *Engine) Close() {
	e.pool.Close()
}

// Render computes f over view into dst and returns it. A nil dst allocates
// a new buffer; otherwise dst is resized to the view (discarding its
// contents when the size changed) and overwritten in place.
//
// Every pixel i holds Gray(escaped, maxIter) for the point view.Point(i),
// except the centre pixel, which is CenterMarker.
//
// Render does not touch the view's dirty flag.
func (e *Engine) Render(f Fractal, view *ViewState, dst *Buffer) (*Buffer, error) {
	if err := validate(f); err != nil {
		return nil, err
	}
	kernel, maxIter := kernelFor(f)
	if kernel == nil {
		return nil, fmt.Errorf("%w: %T", ErrUnknownFractal, f)
	}
	if view == nil {
		return nil, fmt.Errorf("%w: nil view", ErrInvalidDimensions)
	}
	if err := checkDimensions(view.width, view.height); err != nil {
		return nil, err
	}
	if !validScale(view.scale) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidScale, view.scale)
	}

	// Tasks read this copy, never the caller's view.
	v := *view

	if dst == nil {
		dst = NewBuffer(v.width, v.height)
	} else {
		dst.Resize(v.width, v.height)
	}

	var start time.Time
	trace := tracing()
	if trace {
		start = time.Now()
	}
	pix := dst.pix
	n := len(pix)

	size := e.spanSize
	if size <= 0 {
		size = parallel.SpanSize(n, e.pool.Workers(), spansPerWorker, minSpanSize)
	}
	spans := e.pool.Range(n, size, func(s parallel.Span) {
		for j := s.Lo; j < s.Hi; j++ {
			re, im := v.Point(j)
			pix[j] = Gray(kernel(re, im, maxIter), maxIter)
		}
	})

	pix[v.CenterIndex()] = CenterMarker

	if trace {
		Logger().Debug("render complete",
			"fractal", f.Kind().String(),
			"iterations", maxIter,
			"width", v.width,
			"height", v.height,
			"spans", spans,
			"elapsed", time.Since(start))
	}

	return dst, nil
}
