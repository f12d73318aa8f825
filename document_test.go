package stgy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentFileJSON(t *testing.T) {
	file := filepath.Join(t.TempDir(), "board.json")

	document := Document{Name: "test", BoardBackground: "none", Objects: []Object{tank()}}
	require.NoError(t, WriteDocumentFile(file, &document))

	d, err := ReadDocumentFile(file)
	require.NoError(t, err)
	assert.Equal(t, &document, d)
}

func TestDocumentFileYAML(t *testing.T) {
	for _, ext := range []string{".yaml", ".yml"} {
		file := filepath.Join(t.TempDir(), "board"+ext)

		document := Document{Name: "test", BoardBackground: "grey", Objects: []Object{tank()}}
		require.NoError(t, WriteDocumentFile(file, &document))

		d, err := ReadDocumentFile(file)
		require.NoError(t, err)
		assert.Equal(t, &document, d)
	}
}

func TestReadDocumentFileErrors(t *testing.T) {
	_, err := ReadDocumentFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(file, []byte("{"), 0o644))

	_, err = ReadDocumentFile(file)
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	r, g, b, err := parseColor("#3399ff")
	require.NoError(t, err)
	assert.Equal(t, [3]uint8{0x33, 0x99, 0xff}, [3]uint8{r, g, b})

	// Empty means the default white
	r, g, b, err = parseColor("")
	require.NoError(t, err)
	assert.Equal(t, [3]uint8{0xff, 0xff, 0xff}, [3]uint8{r, g, b})

	for _, bad := range []string{"red", "#ff", "#gggggg", "3399ff"} {
		if _, _, _, err := parseColor(bad); err == nil {
			t.Errorf("parseColor(%q) should fail", bad)
		}
	}
}
