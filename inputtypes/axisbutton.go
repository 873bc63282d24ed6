package inputtypes

import "fmt"

// AxisButtonDirection is the activation condition of a button derived from
// an axis crossing a threshold.
type AxisButtonDirection int

const (
	AxisButtonAnywhere AxisButtonDirection = iota + 1
	AxisButtonBelow
	AxisButtonAbove
)

var (
	axisButtonToString = map[AxisButtonDirection]string{
		AxisButtonAnywhere: "anywhere",
		AxisButtonAbove:    "above",
		AxisButtonBelow:    "below",
	}
	axisButtonToEnum = invert(axisButtonToString)
)

// AxisButtonDirections returns every direction in declaration order.
func AxisButtonDirections() []AxisButtonDirection {
	return []AxisButtonDirection{AxisButtonAnywhere, AxisButtonBelow, AxisButtonAbove}
}

// AxisButtonDirectionString returns the persisted token for d.
func AxisButtonDirectionString(d AxisButtonDirection) (string, error) {
	if s, ok := axisButtonToString[d]; ok {
		return s, nil
	}
	return "", invalidLookup("axis button direction", int(d))
}

// ParseAxisButtonDirection returns the direction for an exact token match.
func ParseAxisButtonDirection(s string) (AxisButtonDirection, error) {
	if d, ok := axisButtonToEnum[s]; ok {
		return d, nil
	}
	return 0, invalidLookup("axis button direction", s)
}

func (d AxisButtonDirection) String() string {
	if s, err := AxisButtonDirectionString(d); err == nil {
		return s
	}
	return fmt.Sprintf("AxisButtonDirection(%d)", int(d))
}

func (d AxisButtonDirection) MarshalText() ([]byte, error) {
	s, err := AxisButtonDirectionString(d)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText decodes a persisted token; unknown tokens are reported as
// *ProfileError.
func (d *AxisButtonDirection) UnmarshalText(text []byte) error {
	v, err := ParseAxisButtonDirection(string(text))
	if err != nil {
		return &ProfileError{Field: "axis button direction", Value: string(text), Err: err}
	}
	*d = v
	return nil
}
