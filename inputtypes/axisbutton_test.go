package inputtypes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gremlin-remap/gremlin/inputtypes"
)

func TestAxisButtonDirection(t *testing.T) {
	tests := []struct {
		dir  inputtypes.AxisButtonDirection
		want string
	}{
		{inputtypes.AxisButtonAnywhere, "anywhere"},
		{inputtypes.AxisButtonBelow, "below"},
		{inputtypes.AxisButtonAbove, "above"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := inputtypes.AxisButtonDirectionString(tt.dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, tt.dir.String())

			back, err := inputtypes.ParseAxisButtonDirection(got)
			require.NoError(t, err)
			assert.Equal(t, tt.dir, back)
		})
	}
	assert.Len(t, inputtypes.AxisButtonDirections(), len(tests))
}

func TestAxisButtonDirectionInvalid(t *testing.T) {
	_, err := inputtypes.AxisButtonDirectionString(inputtypes.AxisButtonDirection(0))
	assert.ErrorIs(t, err, inputtypes.ErrInvalidLookup)
	_, err = inputtypes.AxisButtonDirectionString(inputtypes.AxisButtonDirection(4))
	assert.ErrorIs(t, err, inputtypes.ErrInvalidLookup)
	assert.Equal(t, "AxisButtonDirection(4)", inputtypes.AxisButtonDirection(4).String())

	for _, s := range []string{"Above", "BELOW", " anywhere", "anywhere\n", "", "up"} {
		_, err := inputtypes.ParseAxisButtonDirection(s)
		assert.ErrorIs(t, err, inputtypes.ErrInvalidLookup, "token %q", s)
	}
}

func TestAxisButtonDirectionUnmarshalText(t *testing.T) {
	var d inputtypes.AxisButtonDirection
	require.NoError(t, d.UnmarshalText([]byte("above")))
	assert.Equal(t, inputtypes.AxisButtonAbove, d)

	err := d.UnmarshalText([]byte("sideways"))
	assert.ErrorIs(t, err, inputtypes.ErrProfileFormat)
	assert.ErrorIs(t, err, inputtypes.ErrInvalidLookup)
	assert.Equal(t, inputtypes.AxisButtonAbove, d, "failed decode must not modify the target")

	_, err = inputtypes.AxisButtonDirection(9).MarshalText()
	assert.ErrorIs(t, err, inputtypes.ErrInvalidLookup)
}
