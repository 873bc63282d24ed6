package inputtypes

import "fmt"

// MouseButton enumerates mouse buttons. Values are not contiguous.
type MouseButton int

const (
	MouseLeft      MouseButton = 1
	MouseRight     MouseButton = 2
	MouseMiddle    MouseButton = 3
	MouseForward   MouseButton = 4
	MouseBack      MouseButton = 5
	MouseWheelUp   MouseButton = 10
	MouseWheelDown MouseButton = 11
)

var (
	mouseButtonToString = map[MouseButton]string{
		MouseLeft:      "Left",
		MouseRight:     "Right",
		MouseMiddle:    "Middle",
		MouseForward:   "Forward",
		MouseBack:      "Back",
		MouseWheelUp:   "Wheel Up",
		MouseWheelDown: "Wheel Down",
	}
	mouseButtonToEnum = invert(mouseButtonToString)
)

// MouseButtons returns every mouse button in declaration order.
func MouseButtons() []MouseButton {
	return []MouseButton{
		MouseLeft,
		MouseRight,
		MouseMiddle,
		MouseForward,
		MouseBack,
		MouseWheelUp,
		MouseWheelDown,
	}
}

// MouseButtonString returns the display label of b, e.g. "Wheel Up".
func MouseButtonString(b MouseButton) (string, error) {
	if s, ok := mouseButtonToString[b]; ok {
		return s, nil
	}
	return "", invalidLookup("mouse button", int(b))
}

// ParseMouseButton is the inverse of MouseButtonString.
func ParseMouseButton(s string) (MouseButton, error) {
	if b, ok := mouseButtonToEnum[s]; ok {
		return b, nil
	}
	return 0, invalidLookup("mouse button", s)
}

func (b MouseButton) String() string {
	if s, err := MouseButtonString(b); err == nil {
		return s
	}
	return fmt.Sprintf("MouseButton(%d)", int(b))
}
