package fractal

// Action is a view command bound to a key.
type Action uint8

const (
	ActionZoomIn Action = iota
	ActionZoomOut
	ActionPanUp
	ActionPanDown
	ActionPanLeft
	ActionPanRight
	ActionExit
)

var actionNames = [...]string{
	ActionZoomIn:   "zoom-in",
	ActionZoomOut:  "zoom-out",
	ActionPanUp:    "pan-up",
	ActionPanDown:  "pan-down",
	ActionPanLeft:  "pan-left",
	ActionPanRight: "pan-right",
	ActionExit:     "exit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// KeyState reports which actions are held down in the current tick.
type KeyState interface {
	Down(Action) bool
}

// KeyFunc adapts a function to KeyState.
type KeyFunc func(Action) bool

// Down implements KeyState.
func (f KeyFunc) Down(a Action) bool { return f(a) }

// ApplyInput applies every held action to view once, zoom before pan, and
// reports whether exit is held. When exit is held nothing else is applied.
func ApplyInput(view *ViewState, keys KeyState) (exit bool) {
	if keys.Down(ActionExit) {
		return true
	}
	if keys.Down(ActionZoomIn) {
		view.ZoomIn()
	}
	if keys.Down(ActionZoomOut) {
		view.ZoomOut()
	}
	if keys.Down(ActionPanUp) {
		view.PanUp()
	}
	if keys.Down(ActionPanDown) {
		view.PanDown()
	}
	if keys.Down(ActionPanLeft) {
		view.PanLeft()
	}
	if keys.Down(ActionPanRight) {
		view.PanRight()
	}
	return false
}
