package inputtypes

import "fmt"

// HatVector is the position of a hat switch. X is east (+1) / west (-1),
// Y is north (+1) / south (-1).
type HatVector struct {
	X, Y int
}

// Hat direction names as persisted in profiles.
const (
	HatCenter    = "Center"
	HatNorth     = "North"
	HatNorthEast = "North East"
	HatEast      = "East"
	HatSouthEast = "South East"
	HatSouth     = "South"
	HatSouthWest = "South West"
	HatWest      = "West"
	HatNorthWest = "North West"
)

type hatEntry struct {
	vec  HatVector
	name string
}

// hatTable answers lookups keyed by either vector or name over the same nine
// states.
type hatTable struct {
	order   []hatEntry
	names   map[HatVector]string
	vectors map[string]HatVector
}

func newHatTable(entries []hatEntry) hatTable {
	t := hatTable{
		order:   entries,
		names:   make(map[HatVector]string, len(entries)),
		vectors: make(map[string]HatVector, len(entries)),
	}
	for _, e := range entries {
		t.names[e.vec] = e.name
		t.vectors[e.name] = e.vec
	}
	if len(t.names) != len(entries) || len(t.vectors) != len(entries) {
		panic("inputtypes: hat table is not a bijection")
	}
	return t
}

var hatDirections = newHatTable([]hatEntry{
	{HatVector{0, 0}, HatCenter},
	{HatVector{0, 1}, HatNorth},
	{HatVector{1, 1}, HatNorthEast},
	{HatVector{1, 0}, HatEast},
	{HatVector{1, -1}, HatSouthEast},
	{HatVector{0, -1}, HatSouth},
	{HatVector{-1, -1}, HatSouthWest},
	{HatVector{-1, 0}, HatWest},
	{HatVector{-1, 1}, HatNorthWest},
})

// HatVectors returns the nine hat states, center first then clockwise from
// north.
func HatVectors() []HatVector {
	out := make([]HatVector, len(hatDirections.order))
	for i, e := range hatDirections.order {
		out[i] = e.vec
	}
	return out
}

// Valid reports whether both components are in {-1, 0, 1}.
func (v HatVector) Valid() bool {
	return unit(v.X) && unit(v.Y)
}

func unit(n int) bool { return n >= -1 && n <= 1 }

// HatVectorName returns the compass name of v, e.g. (1, -1) is "South East".
func HatVectorName(v HatVector) (string, error) {
	if !v.Valid() {
		return "", invalidLookup("hat direction", v)
	}
	if name, ok := hatDirections.names[v]; ok {
		return name, nil
	}
	return "", invalidLookup("hat direction", v)
}

// ParseHatName returns the vector for one of the nine compass names.
func ParseHatName(name string) (HatVector, error) {
	if v, ok := hatDirections.vectors[name]; ok {
		return v, nil
	}
	return HatVector{}, invalidLookup("hat direction", name)
}

// String returns the compass name, or "(x, y)" when v is not a hat state.
func (v HatVector) String() string {
	if name, err := HatVectorName(v); err == nil {
		return name
	}
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

// MarshalText encodes v by its compass name.
func (v HatVector) MarshalText() ([]byte, error) {
	name, err := HatVectorName(v)
	if err != nil {
		return nil, err
	}
	return []byte(name), nil
}

// UnmarshalText decodes a compass name; unknown names are reported as
// *ProfileError.
func (v *HatVector) UnmarshalText(text []byte) error {
	vec, err := ParseHatName(string(text))
	if err != nil {
		return &ProfileError{Field: "hat direction", Value: string(text), Err: err}
	}
	*v = vec
	return nil
}
