// Package viewer shows a fractal session in a window.
//
// It is the glue between fractal.Session and ebiten's game loop: each tick
// it applies the window size and held keys to the view, lets the session
// re-render if the view changed and blits the current frame to the screen.
package viewer

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/internal/hud"
)

// Config holds window settings.
type Config struct {
	Title  string
	Width  int
	Height int

	// TPS caps updates and presentation per second.
	TPS int

	// HUD shows the overlay at startup. H toggles it.
	HUD bool
}

// DefaultBindings maps each action to the keys that trigger it.
var DefaultBindings = map[fractal.Action][]ebiten.Key{
	fractal.ActionZoomIn:   {ebiten.KeyI},
	fractal.ActionZoomOut:  {ebiten.KeyO},
	fractal.ActionPanUp:    {ebiten.KeyArrowUp},
	fractal.ActionPanDown:  {ebiten.KeyArrowDown},
	fractal.ActionPanLeft:  {ebiten.KeyArrowLeft},
	fractal.ActionPanRight: {ebiten.KeyArrowRight},
	fractal.ActionExit:     {ebiten.KeyEscape},
}

// hudKey toggles the overlay.
const hudKey = ebiten.KeyH

// Keyboard polls ebiten for the keys bound to each action.
type Keyboard map[fractal.Action][]ebiten.Key

// Down implements fractal.KeyState.
func (k Keyboard) Down(a fractal.Action) bool {
	for _, key := range k[a] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// Game implements ebiten.Game around a fractal.Session.
type Game struct {
	session   *fractal.Session
	keys      fractal.KeyState
	toggleHUD func() bool
	hud       bool

	// frame is the presented copy of the session buffer, with the overlay
	// when enabled. stale is set whenever it must be rebuilt.
	frame *image.RGBA
	stale bool
}

// NewGame creates a game reading the default key bindings.
func NewGame(session *fractal.Session, cfg Config) *Game {
	return &Game{
		session:   session,
		keys:      Keyboard(DefaultBindings),
		toggleHUD: func() bool { return inpututil.IsKeyJustPressed(hudKey) },
		hud:       cfg.HUD,
	}
}

// Update applies input and re-renders when the view is dirty.
func (g *Game) Update() error {
	if g.toggleHUD() {
		g.hud = !g.hud
		g.stale = true
	}
	if fractal.ApplyInput(g.session.View(), g.keys) {
		return ebiten.Termination
	}
	rendered, err := g.session.Update()
	if err != nil {
		return fmt.Errorf("viewer: render: %w", err)
	}
	if rendered {
		g.stale = true
	}
	return nil
}

// Draw presents the current frame. An unchanged frame is re-presented as is.
func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.present()
	if frame == nil || frame.Bounds().Size() != screen.Bounds().Size() {
		// Window resized since the last render; the next Update catches up.
		return
	}
	screen.WritePixels(frame.Pix)
}

// present returns the frame to show, rebuilding it when stale.
func (g *Game) present() *image.RGBA {
	buf := g.session.Buffer()
	if buf == nil {
		return nil
	}
	if !g.stale && g.frame != nil {
		return g.frame
	}
	if g.frame == nil || g.frame.Bounds() != buf.Bounds() {
		g.frame = image.NewRGBA(buf.Bounds())
	}
	buf.CopyRGBA(g.frame.Pix)
	if g.hud {
		hud.Draw(g.frame, hud.Lines(g.session.Fractal(), g.session.View(), g.session.Renders()))
	}
	g.stale = false
	return g.frame
}

// Layout resizes the view to the window. The screen is one device
// independent pixel per fractal pixel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	view := g.session.View()
	if outsideWidth > 0 && outsideHeight > 0 {
		if err := view.Resize(outsideWidth, outsideHeight); err != nil {
			fractal.Logger().Warn("resize ignored", "width", outsideWidth, "height", outsideHeight, "err", err)
		}
	}
	return view.Width(), view.Height()
}

// Run opens a window and drives session until the window closes or the
// exit key is pressed. It fails if no window can be created.
func Run(session *fractal.Session, cfg Config) error {
	view := session.View()
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = view.Width(), view.Height()
	}
	if cfg.TPS <= 0 {
		cfg.TPS = ebiten.DefaultTPS
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	fractal.Logger().Info("window opening", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height, "tps", cfg.TPS)

	if err := ebiten.RunGame(NewGame(session, cfg)); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}
