package inputtypes

import (
	"slices"
	"sync"
)

// Vocab is a snapshot of every table in the registry, suitable for export.
type Vocab struct {
	InputTypes           []InputTypeEntry `json:"inputTypes" yaml:"inputTypes" toml:"inputTypes"`
	DeviceTypes          []EnumEntry      `json:"deviceTypes" yaml:"deviceTypes" toml:"deviceTypes"`
	AxisButtonDirections []EnumEntry      `json:"axisButtonDirections" yaml:"axisButtonDirections" toml:"axisButtonDirections"`
	MouseButtons         []EnumEntry      `json:"mouseButtons" yaml:"mouseButtons" toml:"mouseButtons"`
	HatDirections        []HatEntry       `json:"hatDirections" yaml:"hatDirections" toml:"hatDirections"`
	Directions           []IndexEntry     `json:"directions" yaml:"directions" toml:"directions"`
	VJoyAxes             []IndexEntry     `json:"vjoyAxes" yaml:"vjoyAxes" toml:"vjoyAxes"`
}

type InputTypeEntry struct {
	Value   int    `json:"value" yaml:"value" toml:"value"`
	Name    string `json:"name" yaml:"name" toml:"name"`
	Tag     string `json:"tag,omitempty" yaml:"tag,omitempty" toml:"tag,omitempty"`
	Display string `json:"display,omitempty" yaml:"display,omitempty" toml:"display,omitempty"`
}

type EnumEntry struct {
	Value int    `json:"value" yaml:"value" toml:"value"`
	Name  string `json:"name" yaml:"name" toml:"name"`
}

type HatEntry struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	X    int    `json:"x" yaml:"x" toml:"x"`
	Y    int    `json:"y" yaml:"y" toml:"y"`
}

type IndexEntry struct {
	Index int    `json:"index" yaml:"index" toml:"index"`
	Name  string `json:"name" yaml:"name" toml:"name"`
}

// vocabulary is built on first use; sync.OnceValue guarantees a single
// construction even under concurrent first access.
var vocabulary = sync.OnceValue(buildVocab)

// Vocabulary returns a copy of the process-wide registry snapshot.
func Vocabulary() Vocab {
	v := vocabulary()
	return Vocab{
		InputTypes:           slices.Clone(v.InputTypes),
		DeviceTypes:          slices.Clone(v.DeviceTypes),
		AxisButtonDirections: slices.Clone(v.AxisButtonDirections),
		MouseButtons:         slices.Clone(v.MouseButtons),
		HatDirections:        slices.Clone(v.HatDirections),
		Directions:           slices.Clone(v.Directions),
		VJoyAxes:             slices.Clone(v.VJoyAxes),
	}
}

func buildVocab() *Vocab {
	v := &Vocab{}
	for _, t := range InputTypes() {
		e := InputTypeEntry{Value: int(t), Name: t.String()}
		e.Tag, _ = ProfileTag(t)
		e.Display, _ = DisplayName(t)
		v.InputTypes = append(v.InputTypes, e)
	}
	for _, d := range DeviceTypes() {
		v.DeviceTypes = append(v.DeviceTypes, EnumEntry{Value: int(d), Name: d.String()})
	}
	for _, d := range AxisButtonDirections() {
		v.AxisButtonDirections = append(v.AxisButtonDirections, EnumEntry{Value: int(d), Name: axisButtonToString[d]})
	}
	for _, b := range MouseButtons() {
		v.MouseButtons = append(v.MouseButtons, EnumEntry{Value: int(b), Name: mouseButtonToString[b]})
	}
	for _, e := range hatDirections.order {
		v.HatDirections = append(v.HatDirections, HatEntry{Name: e.name, X: e.vec.X, Y: e.vec.Y})
	}
	for i, name := range directionNames {
		v.Directions = append(v.Directions, IndexEntry{Index: i + 1, Name: name})
	}
	for i, name := range vjoyAxisNames {
		v.VJoyAxes = append(v.VJoyAxes, IndexEntry{Index: i + 1, Name: name})
	}
	return v
}
