package icon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownRoundTrip(t *testing.T) {
	for id, name := range names {
		got, err := ID(name)
		require.NoError(t, err)
		assert.Equal(t, id, got)
		assert.Equal(t, name, Name(got))
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "tank", Name(47))
	assert.Equal(t, "donut", Name(17))
	assert.Equal(t, "unknown_999", Name(999))
}

func TestID(t *testing.T) {
	id, err := ID("tank")
	require.NoError(t, err)
	assert.Equal(t, uint16(47), id)

	id, err = ID("unknown_999")
	require.NoError(t, err)
	assert.Equal(t, uint16(999), id)

	_, err = ID("not_an_icon")
	assert.Error(t, err)

	_, err = ID("unknown_bogus")
	assert.Error(t, err)
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, CategoryUnit, CategoryOf(47))
	assert.Equal(t, CategoryMechanic, CategoryOf(17))
	assert.Equal(t, CategoryField, CategoryOf(4))
	assert.Equal(t, CategoryMarker, CategoryOf(79))
	assert.Equal(t, CategoryShape, CategoryOf(90))
	assert.Equal(t, CategoryGroup, CategoryOf(105))
	assert.Equal(t, CategoryUnknown, CategoryOf(999))
}

func TestEveryIconHasCategory(t *testing.T) {
	for id, name := range names {
		assert.NotEqual(t, CategoryUnknown, CategoryOf(id), "icon %s", name)
	}
}

// The per-object background sections and the board background footer number
// the same seven patterns from different bases.
func TestBackgroundBases(t *testing.T) {
	assert.Equal(t, "none", ObjectBackgroundName(0))
	assert.Equal(t, "grey_square", ObjectBackgroundName(6))
	assert.Equal(t, "none", BoardBackgroundName(1))
	assert.Equal(t, "grey_square", BoardBackgroundName(7))

	for v := uint16(0); v < 7; v++ {
		name := ObjectBackgroundName(v)
		got, err := ObjectBackgroundID(name)
		require.NoError(t, err)
		assert.Equal(t, v, got)

		name = BoardBackgroundName(v + 1)
		gotBoard, err := BoardBackgroundID(name)
		require.NoError(t, err)
		assert.Equal(t, v+1, gotBoard)
	}
}

func TestBackgroundUnknown(t *testing.T) {
	assert.Equal(t, "unknown_42", ObjectBackgroundName(42))
	v, err := ObjectBackgroundID("unknown_42")
	require.NoError(t, err)
	assert.Equal(t, uint16(42), v)

	assert.Equal(t, "unknown_0", BoardBackgroundName(0))
	assert.Equal(t, "unknown_42", BoardBackgroundName(42))
	b, err := BoardBackgroundID("unknown_42")
	require.NoError(t, err)
	assert.Equal(t, uint16(42), b)

	_, err = BoardBackgroundID("plaid")
	assert.Error(t, err)
}
