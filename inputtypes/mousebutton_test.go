package inputtypes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gremlin-remap/gremlin/inputtypes"
)

func TestMouseButtonRoundTrip(t *testing.T) {
	seen := map[string]inputtypes.MouseButton{}
	for _, b := range inputtypes.MouseButtons() {
		s, err := inputtypes.MouseButtonString(b)
		require.NoError(t, err)
		_, dup := seen[s]
		assert.False(t, dup, "duplicate label %q", s)
		seen[s] = b

		got, err := inputtypes.ParseMouseButton(s)
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
	assert.Len(t, seen, 7)
}

func TestMouseButtonValues(t *testing.T) {
	assert.Equal(t, 10, int(inputtypes.MouseWheelUp))
	assert.Equal(t, 11, int(inputtypes.MouseWheelDown))
	assert.Equal(t, "Wheel Up", inputtypes.MouseWheelUp.String())
	assert.Equal(t, "Wheel Down", inputtypes.MouseWheelDown.String())
	assert.Equal(t, "Back", inputtypes.MouseBack.String())
}

func TestMouseButtonInvalid(t *testing.T) {
	for _, b := range []inputtypes.MouseButton{0, 6, 9, 12} {
		_, err := inputtypes.MouseButtonString(b)
		assert.ErrorIs(t, err, inputtypes.ErrInvalidLookup, "button %d", int(b))
	}
	for _, s := range []string{"WheelUp", "wheel up", "left", ""} {
		_, err := inputtypes.ParseMouseButton(s)
		assert.ErrorIs(t, err, inputtypes.ErrInvalidLookup, "label %q", s)
	}
}
