package fractal

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultIterations is the iteration bound used when none is given.
const DefaultIterations = 30

// Fractal is an escape-time fractal with its iteration bound.
//
// The set of implementations is closed: Mandelbrot and BurningShip.
// Callers dispatch with a type switch.
type Fractal interface {
	// Kind returns the variant tag.
	Kind() Kind

	// Iterations returns the iteration bound.
	Iterations() int

	isFractal()
}

// Mandelbrot iterates z = z² + c from z₀ = 0.
type Mandelbrot struct {
	MaxIterations int
}

// BurningShip iterates z = (|Re z| + i|Im z|)² + c from z₀ = 0.
type BurningShip struct {
	MaxIterations int
}

// Kind returns KindMandelbrot.
func (Mandelbrot) Kind() Kind { return KindMandelbrot }

// Iterations returns the iteration bound.
func (m Mandelbrot) Iterations() int { return m.MaxIterations }

func (m Mandelbrot) String() string { return fmt.Sprintf("%s(%d)", m.Kind(), m.MaxIterations) }

func (Mandelbrot) isFractal() {}

// Kind returns KindBurningShip.
func (BurningShip) Kind() Kind { return KindBurningShip }

// Iterations returns the iteration bound.
func (b BurningShip) Iterations() int { return b.MaxIterations }

func (b BurningShip) String() string { return fmt.Sprintf("%s(%d)", b.Kind(), b.MaxIterations) }

func (BurningShip) isFractal() {}

// Kind names a fractal variant.
type Kind uint8

const (
	KindMandelbrot Kind = iota
	KindBurningShip
)

// String returns the command-line name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMandelbrot:
		return "mandelbrot"
	case KindBurningShip:
		return "burning-ship"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Kinds lists every supported kind in display order.
func Kinds() []Kind {
	return []Kind{KindMandelbrot, KindBurningShip}
}

// ParseKind maps a command-line name to a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mandelbrot":
		return KindMandelbrot, nil
	case "burning-ship":
		return KindBurningShip, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFractal, name)
}

// New returns the fractal of the given kind bounded by iterations.
func New(kind Kind, iterations int) (Fractal, error) {
	if iterations < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIterations, iterations)
	}
	switch kind {
	case KindMandelbrot:
		return Mandelbrot{MaxIterations: iterations}, nil
	case KindBurningShip:
		return BurningShip{MaxIterations: iterations}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFractal, kind)
}

// Parse builds a fractal from its command-line name and an optional
// iteration count. An empty iterations string selects DefaultIterations.
func Parse(name, iterations string) (Fractal, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	n := DefaultIterations
	if iterations != "" {
		n, err = strconv.Atoi(iterations)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidIterations, iterations)
		}
	}
	return New(kind, n)
}

// validate rejects fractal values that cannot be rendered.
func validate(f Fractal) error {
	if f == nil {
		return fmt.Errorf("%w: nil fractal", ErrUnknownFractal)
	}
	if f.Iterations() < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidIterations, f.Iterations())
	}
	return nil
}
