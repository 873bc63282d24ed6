package inputtypes

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLookup reports a value outside a closed enumeration's domain.
	ErrInvalidLookup = errors.New("invalid type in lookup")
	// ErrIndexOutOfRange reports an integer index outside its table.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrProfileFormat reports a persisted token that is not part of the
	// expected vocabulary.
	ErrProfileFormat = errors.New("invalid profile value")
)

// LookupError describes a failed table lookup.
type LookupError struct {
	// Table names the lookup table that was queried (e.g. "hat direction")
	Table string
	// Value is the offending key
	Value any
	// Err is ErrInvalidLookup or ErrIndexOutOfRange
	Err error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: %s %v", e.Err, e.Table, e.formatValue())
}

func (e *LookupError) Unwrap() error { return e.Err }

func (e *LookupError) formatValue() string {
	if s, ok := e.Value.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", e.Value)
}

// ProfileError reports a profile-level format problem and carries the raw
// token that could not be interpreted.
type ProfileError struct {
	// Field names the kind of token, e.g. "input type"
	Field string
	Value string
	// Err is an optional underlying cause, usually a *LookupError
	Err error
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("invalid %s specified %q", e.Field, e.Value)
}

func (e *ProfileError) Is(target error) bool { return target == ErrProfileFormat }

func (e *ProfileError) Unwrap() error { return e.Err }

func invalidLookup(table string, value any) error {
	return &LookupError{Table: table, Value: value, Err: ErrInvalidLookup}
}

func outOfRange(table string, index int) error {
	return &LookupError{Table: table, Value: index, Err: ErrIndexOutOfRange}
}
