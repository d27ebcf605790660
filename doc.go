// Package fractal renders escape-time fractals into a pixel buffer.
//
// # Overview
//
// A ViewState describes which part of the complex plane is visible: the
// viewport size in pixels, a pan offset in plane units and a zoom scale in
// pixels per unit. An Engine maps every pixel to a point c of the plane,
// runs the fractal's recurrence a fixed number of times and stores a
// grayscale intensity. Pixels are computed in parallel over disjoint spans
// of the buffer.
//
// # Quick Start
//
//	f, err := fractal.Parse("mandelbrot", "50")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	view, _ := fractal.NewViewState(640, 360)
//	engine := fractal.NewEngine()
//	defer engine.Close()
//
//	buf, err := engine.Render(f, view, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = buf.SavePNG("mandelbrot.png")
//
// # Interactive use
//
// An event loop owns a Session. Each tick it applies input to the view
// (ApplyInput, ViewState.Resize) and calls Session.Update, which renders
// only when the view is dirty. See internal/viewer for the window loop.
//
// # Coordinate System
//
// Pixel (x, y) maps to
//
//	re = (x - width/2) / scale + panX
//	im = (y - height/2) / scale + panY
//
// so the plane origin sits at the viewport centre and the imaginary axis
// grows downward, like screen y.
//
// # Pixel Format
//
// Buffer holds packed 0xRRGGBB values, row-major. Fractal pixels are gray
// (R = G = B). The centre pixel is always CenterMarker (pure red).
package fractal
