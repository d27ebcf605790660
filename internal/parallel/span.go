package parallel

// Span is the half-open index range [Lo, Hi).
type Span struct {
	Lo int
	Hi int
}

// Len returns the number of indices in the span.
func (s Span) Len() int {
	return s.Hi - s.Lo
}

// Split cuts [0, n) into contiguous spans of at most size indices, in
// ascending order. The spans cover every index exactly once. A
// non-positive size yields a single span.
func Split(n, size int) []Span {
	if n <= 0 {
		return nil
	}
	if size <= 0 || size >= n {
		return []Span{{Lo: 0, Hi: n}}
	}
	spans := make([]Span, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		spans = append(spans, Span{Lo: lo, Hi: hi})
	}
	return spans
}

// SpanSize picks a span length for n indices so each of workers gets
// about perWorker spans, never below minSize.
func SpanSize(n, workers, perWorker, minSize int) int {
	if workers <= 0 {
		workers = 1
	}
	if perWorker <= 0 {
		perWorker = 1
	}
	parts := workers * perWorker
	size := (n + parts - 1) / parts
	return max(size, minSize)
}
