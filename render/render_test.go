package render

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodgit/stgy"
)

func document() *stgy.Document {
	return &stgy.Document{
		Name:            "test",
		BoardBackground: "checkered",
		Objects: []stgy.Object{
			{Type: "tank", X: -2, Y: 0, Size: 100, Color: "#3399ff"},
			{Type: "donut", X: 3, Y: 1, Size: 120, Color: "#ff8800", ArcAngle: 320, DonutRadius: 80},
			{Type: "shape_square", X: 0, Y: -4, Size: 80, Color: "#ffffff", Transparency: 128},
		},
	}
}

func TestEncode(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, document()))

	m, err := png.Decode(bytes.NewReader(b.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, m.Bounds().Dx())
	assert.Equal(t, DefaultSize, m.Bounds().Dy())

	pm, ok := m.(*image.Paletted)
	require.True(t, ok)
	assert.LessOrEqual(t, len(pm.Palette), maxColors)
}

func TestEncodeSize(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, EncodeSize(b, document(), 128))

	m, err := png.Decode(bytes.NewReader(b.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 128, m.Bounds().Dx())
}

func TestEncodeSizeTooSmall(t *testing.T) {
	assert.Error(t, EncodeSize(new(bytes.Buffer), document(), 8))
}

func TestEncodeEmptyBoard(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, &stgy.Document{Name: "empty", BoardBackground: "none"}))

	_, err := png.Decode(bytes.NewReader(b.Bytes()))
	require.NoError(t, err)
}
