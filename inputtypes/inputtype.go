// Package inputtypes is the canonical registry of input element kinds and
// device categories, and of their translations to the tokens used in
// persisted profiles and to display labels.
//
// Every table in this package is immutable after package initialization, so
// all functions are safe for concurrent use.
package inputtypes

import "fmt"

// InputType identifies the category of a physical or virtual input element.
type InputType int

const (
	InputKeyboard InputType = iota + 1
	InputJoystickAxis
	InputJoystickButton
	InputJoystickHat
	InputMouse
	InputVirtualButton
	// InputTypeCount is a sentinel; it is never part of any table.
	InputTypeCount
)

var inputTypeNames = map[InputType]string{
	InputKeyboard:       "Keyboard",
	InputJoystickAxis:   "JoystickAxis",
	InputJoystickButton: "JoystickButton",
	InputJoystickHat:    "JoystickHat",
	InputMouse:          "Mouse",
	InputVirtualButton:  "VirtualButton",
}

// Profile tags as they appear in persisted profiles.
const (
	TagAxis   = "axis"
	TagButton = "button"
	TagHat    = "hat"
	TagKey    = "key"
)

var (
	inputTypeToTag = map[InputType]string{
		InputJoystickAxis:   TagAxis,
		InputJoystickButton: TagButton,
		InputJoystickHat:    TagHat,
		InputKeyboard:       TagKey,
	}
	tagToInputType = invert(inputTypeToTag)

	inputTypeToDisplay = map[InputType]string{
		InputKeyboard:       "Keyboard",
		InputJoystickAxis:   "Axis",
		InputJoystickButton: "Button",
		InputJoystickHat:    "Hat",
	}
)

// String returns the Go-style member name, e.g. "JoystickAxis".
func (t InputType) String() string {
	if s, ok := inputTypeNames[t]; ok {
		return s
	}
	if t == InputTypeCount {
		return "Count"
	}
	return fmt.Sprintf("InputType(%d)", int(t))
}

// InputTypes returns every concrete input type in declaration order.
func InputTypes() []InputType {
	return []InputType{
		InputKeyboard,
		InputJoystickAxis,
		InputJoystickButton,
		InputJoystickHat,
		InputMouse,
		InputVirtualButton,
	}
}

// ProfileInputTypes returns the input types that have a profile tag.
func ProfileInputTypes() []InputType {
	return []InputType{InputKeyboard, InputJoystickAxis, InputJoystickButton, InputJoystickHat}
}

// ProfileTag returns the tag used for t in persisted profiles.
// Mouse, VirtualButton and the Count sentinel have no tag and yield a
// *ProfileError.
func ProfileTag(t InputType) (string, error) {
	if tag, ok := inputTypeToTag[t]; ok {
		return tag, nil
	}
	return "", &ProfileError{Field: "input type", Value: t.String()}
}

// ParseProfileTag returns the InputType for a profile tag. Matching is exact
// and case-sensitive.
func ParseProfileTag(tag string) (InputType, error) {
	if t, ok := tagToInputType[tag]; ok {
		return t, nil
	}
	return 0, &ProfileError{Field: "input type", Value: tag}
}

// DisplayName returns the user-facing label for t.
func DisplayName(t InputType) (string, error) {
	if s, ok := inputTypeToDisplay[t]; ok {
		return s, nil
	}
	return "", invalidLookup("input type display name", t)
}

// MarshalText encodes t as its profile tag.
func (t InputType) MarshalText() ([]byte, error) {
	tag, err := ProfileTag(t)
	if err != nil {
		return nil, err
	}
	return []byte(tag), nil
}

// UnmarshalText decodes a profile tag.
func (t *InputType) UnmarshalText(text []byte) error {
	v, err := ParseProfileTag(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// DeviceType classifies the source device of an input.
type DeviceType int

const (
	DeviceKeyboard DeviceType = iota + 1
	DeviceJoystick
	DeviceVJoy
)

var deviceTypeNames = map[DeviceType]string{
	DeviceKeyboard: "Keyboard",
	DeviceJoystick: "Joystick",
	DeviceVJoy:     "VJoy",
}

func (d DeviceType) String() string {
	if s, ok := deviceTypeNames[d]; ok {
		return s
	}
	return fmt.Sprintf("DeviceType(%d)", int(d))
}

// DeviceTypes returns every device type in declaration order.
func DeviceTypes() []DeviceType {
	return []DeviceType{DeviceKeyboard, DeviceJoystick, DeviceVJoy}
}

func invert[K, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		if _, dup := out[v]; dup {
			panic(fmt.Sprintf("inputtypes: duplicate table value %v", v))
		}
		out[v] = k
	}
	return out
}
