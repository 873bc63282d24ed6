package inputtypes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gremlin-remap/gremlin/inputtypes"
)

func TestDirectionName(t *testing.T) {
	want := []string{
		"Up", "Up & Right", "Right", "Down & Right",
		"Down", "Down & Left", "Left", "Up & Left",
	}
	for i, name := range want {
		got, err := inputtypes.DirectionName(i + 1)
		require.NoError(t, err)
		assert.Equal(t, name, got)
	}
}

func TestDirectionNameOutOfRange(t *testing.T) {
	for _, idx := range []int{0, 9, -1, 100} {
		_, err := inputtypes.DirectionName(idx)
		assert.ErrorIs(t, err, inputtypes.ErrIndexOutOfRange, "index %d", idx)
		assert.NotErrorIs(t, err, inputtypes.ErrInvalidLookup)
	}
}

func TestVJoyAxisName(t *testing.T) {
	name, err := inputtypes.VJoyAxisName(1)
	require.NoError(t, err)
	assert.Equal(t, "X", name)

	name, err = inputtypes.VJoyAxisName(8)
	require.NoError(t, err)
	assert.Equal(t, "Dial", name)

	_, err = inputtypes.VJoyAxisName(0)
	assert.ErrorIs(t, err, inputtypes.ErrIndexOutOfRange)
	_, err = inputtypes.VJoyAxisName(9)
	assert.ErrorIs(t, err, inputtypes.ErrIndexOutOfRange)

	names := inputtypes.VJoyAxisNames()
	require.Len(t, names, 8)
	names[0] = "mutated"
	again, _ := inputtypes.VJoyAxisName(1)
	assert.Equal(t, "X", again)
}
