package fractal

import "testing"

func TestGray(t *testing.T) {
	tests := []struct {
		escaped, maxIter int
		want             uint32
	}{
		{0, 30, 0},
		{30, 30, 0xFFFFFF},
		{9, 10, 0xF1F1F1},  // floor(sqrt(0.9)*255) = 241
		{1, 4, 0x7F7F7F},   // floor(0.5*255) = 127
		{1, 100, 0x191919}, // floor(0.1*255) = 25
	}
	for _, tt := range tests {
		if got := Gray(tt.escaped, tt.maxIter); got != tt.want {
			t.Errorf("Gray(%d, %d) = %#06x, want %#06x", tt.escaped, tt.maxIter, got, tt.want)
		}
	}
}

func TestEscapeCountInsideSet(t *testing.T) {
	for _, f := range []Fractal{Mandelbrot{MaxIterations: 30}, BurningShip{MaxIterations: 30}} {
		for _, c := range [][2]float64{{0, 0}, {-0.01, -0.01}, {-0.1, 0.1}} {
			if got := EscapeCount(f, c[0], c[1]); got != 0 {
				t.Errorf("%v: EscapeCount(%v) = %d, want 0", f, c, got)
			}
		}
	}
}

func TestEscapeCountKeepsCountingAfterEscape(t *testing.T) {
	// c = 2: z = 2, 6, 38, ... |z|² first exceeds 4 on step 2 and stays
	// outside, so every later step counts too.
	f := Mandelbrot{MaxIterations: 10}
	if got := EscapeCount(f, 2, 0); got != 9 {
		t.Errorf("EscapeCount(mandelbrot(10), 2) = %d, want 9", got)
	}
	// Far outside: escapes on the first step.
	f = Mandelbrot{MaxIterations: 5}
	if got := EscapeCount(f, 3, 3); got != 5 {
		t.Errorf("EscapeCount(mandelbrot(5), 3+3i) = %d, want 5", got)
	}
}

func TestEscapeCountRange(t *testing.T) {
	for _, maxIter := range []int{1, 2, 7, 30, 100} {
		for _, f := range []Fractal{Mandelbrot{MaxIterations: maxIter}, BurningShip{MaxIterations: maxIter}} {
			for re := -2.5; re <= 1.5; re += 0.125 {
				for im := -2.0; im <= 2.0; im += 0.125 {
					got := EscapeCount(f, re, im)
					if got < 0 || got > maxIter {
						t.Fatalf("%v: EscapeCount(%g, %g) = %d out of [0, %d]", f, re, im, got, maxIter)
					}
					if g := Gray(got, maxIter); g != (g&0xFF)*0x010101 {
						t.Fatalf("Gray(%d, %d) = %#x is not a gray level", got, maxIter, g)
					}
				}
			}
		}
	}
}

func TestBurningShipDivergesFromMandelbrot(t *testing.T) {
	// -0.5+0.5i lies in the main cardioid, but the absolute-value fold
	// sends the burning ship orbit out on step 4.
	m := EscapeCount(Mandelbrot{MaxIterations: 30}, -0.5, 0.5)
	b := EscapeCount(BurningShip{MaxIterations: 30}, -0.5, 0.5)
	if m != 0 {
		t.Errorf("mandelbrot escapes = %d, want 0", m)
	}
	if b == 0 {
		t.Error("burning ship escapes = 0, want > 0")
	}
}

func TestBurningShipMatchesMandelbrotOnPositiveAxis(t *testing.T) {
	// For real c >= 0 every iterate is non-negative and real, so the fold
	// is the identity.
	for _, re := range []float64{0, 0.1, 0.25, 0.3, 1, 2} {
		m := EscapeCount(Mandelbrot{MaxIterations: 20}, re, 0)
		b := EscapeCount(BurningShip{MaxIterations: 20}, re, 0)
		if m != b {
			t.Errorf("c=%g: mandelbrot %d != burning ship %d", re, m, b)
		}
	}
}

func TestEscapeCountUnknownFractal(t *testing.T) {
	if got := EscapeCount(nil, 5, 5); got != 0 {
		t.Errorf("EscapeCount(nil) = %d, want 0", got)
	}
}

func BenchmarkMandelbrotKernel(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		_ = mandelbrotEscapes(-0.75, 0.1, 1000)
	}
}

func BenchmarkBurningShipKernel(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		_ = burningShipEscapes(-1.75, -0.03, 1000)
	}
}
