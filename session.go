package fractal

import (
	"errors"
	"fmt"
)

// Session drives an Engine from a ViewState for one run: it renders only
// when the view is dirty and clears the flag after a successful pass.
//
// Session is what an event loop holds. It is not safe for concurrent use;
// the loop serializes view mutations and Update.
type Session struct {
	fractal Fractal
	view    *ViewState
	engine  *Engine
	buf     *Buffer
	renders uint64
}

// NewSession binds a fractal, a view and an engine.
func NewSession(f Fractal, view *ViewState, engine *Engine) (*Session, error) {
	if err := validate(f); err != nil {
		return nil, err
	}
	if view == nil {
		return nil, fmt.Errorf("%w: nil view", ErrInvalidDimensions)
	}
	if engine == nil {
		return nil, errors.New("fractal: nil engine")
	}
	Logger().Info("session started", "fractal", fmt.Sprint(f), "view", view.String())
	return &Session{fractal: f, view: view, engine: engine}, nil
}

// Update renders the view if it is dirty. It reports whether a new frame
// was produced. On error the view stays dirty and the previous buffer is
// kept.
func (s *Session) Update() (bool, error) {
	if !s.view.Dirty() {
		return false, nil
	}
	buf, err := s.engine.Render(s.fractal, s.view, s.buf)
	if err != nil {
		return false, err
	}
	s.buf = buf
	s.renders++
	s.view.ClearDirty()
	return true, nil
}

// Buffer returns the last rendered frame, or nil before the first Update.
// The buffer is current unless View().Dirty() reports true.
func (s *Session) Buffer() *Buffer {
	return s.buf
}

// View returns the view the session renders.
func (s *Session) View() *ViewState {
	return s.view
}

// Fractal returns the fractal the session renders.
func (s *Session) Fractal() Fractal {
	return s.fractal
}

// Renders returns the number of completed render passes.
func (s *Session) Renders() uint64 {
	return s.renders
}
