package fractal

import "math"

// escapeRadiusSq is |z|² beyond which a point counts as escaped.
const escapeRadiusSq = 4.0

// The kernels always run exactly maxIter steps. They do not stop at the
// first escape: escaped counts every step on which |z|² > 4, so it lies in
// [0, maxIter] and keeps growing for points that stay outside.
//
// The float64 conversions stop the compiler from fusing multiply-adds,
// which keeps output bit-identical across architectures.

// mandelbrotEscapes iterates z = z² + c from z₀ = 0.
func mandelbrotEscapes(re, im float64, maxIter int) int {
	var zr, zi float64
	escaped := 0
	for range maxIter {
		zr, zi = float64(zr*zr)-float64(zi*zi)+re, float64(2*zr*zi)+im
		if float64(zr*zr)+float64(zi*zi) > escapeRadiusSq {
			escaped++
		}
	}
	return escaped
}

// burningShipEscapes iterates z = (|Re z| + i|Im z|)² + c from z₀ = 0.
func burningShipEscapes(re, im float64, maxIter int) int {
	var zr, zi float64
	escaped := 0
	for range maxIter {
		ar, ai := math.Abs(zr), math.Abs(zi)
		zr, zi = float64(ar*ar)-float64(ai*ai)+re, float64(2*ar*ai)+im
		if float64(zr*zr)+float64(zi*zi) > escapeRadiusSq {
			escaped++
		}
	}
	return escaped
}

// Gray packs an escape count into a grayscale pixel:
// floor(sqrt(escaped/maxIter) * 255) in each of R, G and B.
func Gray(escaped, maxIter int) uint32 {
	level := uint32(math.Sqrt(float64(escaped)/float64(maxIter)) * 255)
	return level * 0x010101
}

// EscapeCount runs the kernel of f for the point re + i·im and returns the
// number of iterations on which |z|² exceeded 4.
func EscapeCount(f Fractal, re, im float64) int {
	kernel, maxIter := kernelFor(f)
	if kernel == nil || maxIter < 1 {
		return 0
	}
	return kernel(re, im, maxIter)
}

type kernelFunc func(re, im float64, maxIter int) int

// kernelFor dispatches on the fractal variant.
func kernelFor(f Fractal) (kernelFunc, int) {
	switch f := f.(type) {
	case Mandelbrot:
		return mandelbrotEscapes, f.MaxIterations
	case BurningShip:
		return burningShipEscapes, f.MaxIterations
	}
	return nil, 0
}
