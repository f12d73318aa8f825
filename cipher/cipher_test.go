package cipher

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Captured from the client: a board named "test" holding a single tank icon
// at the origin, enciphered with key 59.
const sampleCode = "[stgy:aV6va-fqTem+7Jrx3lj55Yz0hsqPZQq5jbkqPazMEFQleuXfDlyx90VJ07yd+MNvWVehCSfGO1BUiBuddJgItSWfdq0xH3OHJMZOGr1dJ]"

const sampleContainerHex = "3b4951077400789c6362606048614006116092918183a124b5b804c46662d06760018a80202b033390040136309f81811dac3a05a89e0948ffffff9f810b2ac30da579a03433d40c007f410672"

func TestDecode(t *testing.T) {
	b, err := Decode(sampleCode)
	require.NoError(t, err)
	assert.Equal(t, sampleContainerHex, hex.EncodeToString(b))
}

func TestEncode(t *testing.T) {
	b, err := hex.DecodeString(sampleContainerHex)
	require.NoError(t, err)

	code, err := Encode(b, 59)
	require.NoError(t, err)
	assert.Equal(t, sampleCode, code)
}

func TestRoundTrip(t *testing.T) {
	buffers := [][]byte{
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0xff, 0xfe, 0xfd, 0xfc, 0xfb, 0xfa, 0xf9},
		[]byte("the quick brown fox jumps over the lazy dog"),
	}

	for _, b := range buffers {
		for key := 0; key < 64; key++ {
			code, err := Encode(b, key)
			require.NoError(t, err)

			got, err := Decode(code)
			require.NoError(t, err)
			assert.Equal(t, b, got, "key %d", key)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tables := []struct {
		name string
		code string
	}{
		{"empty", ""},
		{"no prefix", "stgy:aV6va]"},
		{"no suffix", "[stgy:aV6va"},
		{"wrong prefix", "[abcd:aV6va]"},
		{"too short", "[stgy:aV]"},
		{"bad key character", "[stgy:a@V6va2]"},
		{"bad base64 length", "[stgy:aVV6vab]"},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			_, err := Decode(table.code)
			require.Error(t, err)
			assert.IsType(t, FormatError(""), err)
		})
	}
}

func TestEncodeKeyRange(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5, 6}

	_, err := Encode(b, -1)
	assert.Error(t, err)

	_, err = Encode(b, 64)
	assert.Error(t, err)
}
