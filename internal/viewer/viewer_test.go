package viewer

import (
	"errors"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/fractal"
)

type fakeKeys map[fractal.Action]bool

func (k fakeKeys) Down(a fractal.Action) bool { return k[a] }

func newTestGame(t *testing.T, w, h int) (*Game, fakeKeys, *bool) {
	t.Helper()
	view, err := fractal.NewViewState(w, h)
	if err != nil {
		t.Fatal(err)
	}
	engine := fractal.NewEngine(fractal.WithWorkers(2))
	t.Cleanup(engine.Close)
	session, err := fractal.NewSession(fractal.Mandelbrot{MaxIterations: 10}, view, engine)
	if err != nil {
		t.Fatal(err)
	}

	keys := fakeKeys{}
	toggle := new(bool)
	g := NewGame(session, Config{Title: "test"})
	g.keys = keys
	g.toggleHUD = func() bool {
		v := *toggle
		*toggle = false
		return v
	}
	return g, keys, toggle
}

func TestGameUpdateRendersOnce(t *testing.T) {
	g, _, _ := newTestGame(t, 32, 18)

	if err := g.Update(); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if err := g.Update(); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if n := g.session.Renders(); n != 1 {
		t.Errorf("Renders() = %d, want 1 for an unchanged view", n)
	}

	frame := g.present()
	if frame == nil {
		t.Fatal("present() returned nil after a render")
	}
	if got := frame.RGBAAt(16, 9); got != (color.RGBA{R: 0xFF, A: 0xFF}) {
		t.Errorf("centre = %v, want the red marker", got)
	}
	if again := g.present(); again != frame {
		t.Error("an unchanged frame should be re-presented as is")
	}
}

func TestGameKeysMutateView(t *testing.T) {
	g, keys, _ := newTestGame(t, 32, 18)
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}

	keys[fractal.ActionZoomIn] = true
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if g.session.Renders() != 2 {
		t.Errorf("Renders() = %d, want 2 after zoom", g.session.Renders())
	}
	if g.session.View().Scale() <= fractal.DefaultScale {
		t.Errorf("scale = %g, want > %g", g.session.View().Scale(), fractal.DefaultScale)
	}
}

func TestGameExit(t *testing.T) {
	g, keys, _ := newTestGame(t, 8, 8)
	keys[fractal.ActionExit] = true

	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() error = %v, want ebiten.Termination", err)
	}
}

func TestGameLayoutResizes(t *testing.T) {
	g, _, _ := newTestGame(t, 32, 18)
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}

	w, h := g.Layout(40, 30)
	if w != 40 || h != 30 {
		t.Fatalf("Layout() = %dx%d, want 40x30", w, h)
	}
	if !g.session.View().Dirty() {
		t.Error("resize should mark the view dirty")
	}
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if got := len(g.session.Buffer().Pix()); got != 40*30 {
		t.Errorf("buffer length = %d, want %d", got, 40*30)
	}
	if b := g.present().Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("frame bounds = %v, want 40x30", b)
	}

	// A minimized window reports zero; the view keeps its size.
	if w, h := g.Layout(0, 0); w != 40 || h != 30 {
		t.Errorf("Layout(0, 0) = %dx%d, want 40x30", w, h)
	}
}

func TestGameHUDToggle(t *testing.T) {
	g, _, toggle := newTestGame(t, 200, 100)
	// Far outside the set every pixel is bright, so the backdrop shows.
	g.session.View().SetPan(10, 10)
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	plain := g.present().RGBAAt(8, 8)

	*toggle = true
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if !g.hud {
		t.Fatal("HUD should be enabled after toggle")
	}
	if g.session.Renders() != 1 {
		t.Error("toggling the HUD must not re-render the fractal")
	}
	if got := g.present().RGBAAt(8, 8); got == plain {
		t.Errorf("overlay pixel %v unchanged after enabling the HUD", got)
	}
}
