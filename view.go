package fractal

import (
	"fmt"
	"math"
)

// View defaults and bounds.
const (
	// DefaultScale is the initial zoom in pixels per complex-plane unit.
	DefaultScale = 100.0

	// ZoomFactor is the scale multiplier applied by one zoom step.
	ZoomFactor = 1.1

	// MinScale and MaxScale bound the zoom. A step that would leave
	// [MinScale, MaxScale] is refused, so scale never reaches zero or
	// overflows to +Inf. Every step inside the bounds changes the scale.
	MinScale = 1e-6
	MaxScale = math.MaxFloat64
)

// ViewState is the viewport onto the complex plane: its size in pixels,
// a pan offset in plane units and a zoom scale in pixels per unit.
//
// Every mutation that changes the view sets the dirty flag. The flag is
// cleared only by ClearDirty, which a caller invokes after a successful
// render; see Session.
//
// ViewState is not safe for concurrent use. Mutations must not overlap a
// render pass that reads the same view.
type ViewState struct {
	width  int
	height int
	panX   float64
	panY   float64
	scale  float64
	dirty  bool
}

// NewViewState creates a view of the given size centred on the origin at
// DefaultScale. The new view is dirty: nothing has been rendered yet.
func NewViewState(width, height int) (*ViewState, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	return &ViewState{
		width:  width,
		height: height,
		scale:  DefaultScale,
		dirty:  true,
	}, nil
}

// checkDimensions rejects non-positive sizes and pixel counts that
// overflow int.
func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 || width > math.MaxInt/height {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return nil
}

// Width returns the viewport width in pixels.
func (v *ViewState) Width() int { return v.width }

// Height returns the viewport height in pixels.
func (v *ViewState) Height() int { return v.height }

// PixelCount returns width × height.
func (v *ViewState) PixelCount() int { return v.width * v.height }

// Pan returns the plane-unit offset added to every mapped coordinate.
func (v *ViewState) Pan() (x, y float64) { return v.panX, v.panY }

// Scale returns the zoom in pixels per plane unit.
func (v *ViewState) Scale() float64 { return v.scale }

// Dirty reports whether the view changed since the last ClearDirty.
func (v *ViewState) Dirty() bool { return v.dirty }

// MarkDirty forces a re-render without changing the view.
func (v *ViewState) MarkDirty() { v.dirty = true }

// ClearDirty records that a buffer now reflects the current view.
func (v *ViewState) ClearDirty() { v.dirty = false }

// Resize changes the viewport size. Resizing to the current size is a no-op.
func (v *ViewState) Resize(width, height int) error {
	if err := checkDimensions(width, height); err != nil {
		return err
	}
	if width == v.width && height == v.height {
		return nil
	}
	v.width, v.height = width, height
	v.dirty = true
	return nil
}

// ZoomIn multiplies the scale by ZoomFactor. It reports false, leaving the
// view unchanged, when the result would overflow past MaxScale.
func (v *ViewState) ZoomIn() bool {
	next := v.scale * ZoomFactor
	if next > MaxScale {
		Logger().Debug("zoom in refused", "scale", v.scale, "max", MaxScale)
		return false
	}
	v.scale = next
	v.dirty = true
	return true
}

// ZoomOut divides the scale by ZoomFactor. It reports false, leaving the
// view unchanged, when the result would fall below MinScale.
func (v *ViewState) ZoomOut() bool {
	next := v.scale / ZoomFactor
	if next < MinScale {
		Logger().Debug("zoom out refused", "scale", v.scale, "min", MinScale)
		return false
	}
	v.scale = next
	v.dirty = true
	return true
}

// SetScale sets the zoom directly.
func (v *ViewState) SetScale(scale float64) error {
	if !validScale(scale) || scale < MinScale || scale > MaxScale {
		return fmt.Errorf("%w: %g", ErrInvalidScale, scale)
	}
	if scale != v.scale {
		v.scale = scale
		v.dirty = true
	}
	return nil
}

// SetPan sets the plane-unit offset directly.
func (v *ViewState) SetPan(x, y float64) {
	if x == v.panX && y == v.panY {
		return
	}
	v.panX, v.panY = x, y
	v.dirty = true
}

// The pan steps move the view by one on-screen pixel, 1/scale plane
// units, whatever the zoom.

// PanUp moves the view toward negative imaginary values (screen up).
func (v *ViewState) PanUp() {
	v.panY -= 1 / v.scale
	v.dirty = true
}

// PanDown moves the view toward positive imaginary values (screen down).
func (v *ViewState) PanDown() {
	v.panY += 1 / v.scale
	v.dirty = true
}

// PanLeft moves the view toward negative real values.
func (v *ViewState) PanLeft() {
	v.panX -= 1 / v.scale
	v.dirty = true
}

// PanRight moves the view toward positive real values.
func (v *ViewState) PanRight() {
	v.panX += 1 / v.scale
	v.dirty = true
}

// Point maps the row-major pixel index i to its point c in the complex
// plane. Screen origin is the viewport centre and y grows downward.
func (v *ViewState) Point(i int) (re, im float64) {
	return v.point(i%v.width, i/v.width)
}

func (v *ViewState) point(px, py int) (re, im float64) {
	x := float64(px) - float64(v.width)/2
	y := float64(py) - float64(v.height)/2
	return x/v.scale + v.panX, y/v.scale + v.panY
}

// CenterIndex returns the index of the centre marker pixel.
func (v *ViewState) CenterIndex() int {
	return v.width/2 + (v.height/2)*v.width
}

// String describes the view for logs and overlays.
func (v *ViewState) String() string {
	return fmt.Sprintf("%dx%d pan=(%g, %g) scale=%g", v.width, v.height, v.panX, v.panY, v.scale)
}

func validScale(s float64) bool {
	return s > 0 && !math.IsInf(s, 0) && !math.IsNaN(s)
}
