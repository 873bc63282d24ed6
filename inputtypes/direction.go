package inputtypes

// directionNames is indexed by directional index minus one.
var directionNames = [...]string{
	"Up",
	"Up & Right",
	"Right",
	"Down & Right",
	"Down",
	"Down & Left",
	"Left",
	"Up & Left",
}

// vJoy axis names by axis index minus one.
var vjoyAxisNames = [...]string{
	"X",
	"Y",
	"Z",
	"X Rotation",
	"Y Rotation",
	"Z Rotation",
	"Slider",
	"Dial",
}

// DirectionName returns the name of a directional index in [1, 8], counting
// clockwise from 1 = "Up".
func DirectionName(index int) (string, error) {
	if index < 1 || index > len(directionNames) {
		return "", outOfRange("direction index", index)
	}
	return directionNames[index-1], nil
}

// VJoyAxisName returns the name of vJoy axis index in [1, 8].
func VJoyAxisName(index int) (string, error) {
	if index < 1 || index > len(vjoyAxisNames) {
		return "", outOfRange("vjoy axis index", index)
	}
	return vjoyAxisNames[index-1], nil
}

// VJoyAxisNames returns the vJoy axis names ordered by axis index.
func VJoyAxisNames() []string {
	return append([]string(nil), vjoyAxisNames[:]...)
}
