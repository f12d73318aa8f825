/*
Package cipher implements the character substitution cipher wrapped around
strategy board share codes.

A share code has the shape "[stgy:a<key><payload>]". The first character
after the prefix selects a cipher key in the range 0-63; every payload
character is then a substituted, position-rotated URL-safe base64 character.
Undoing the substitution and the rotation recovers a base64 string which
decodes to the container bytes.
*/
package cipher

import (
	"encoding/base64"
	"errors"
	"strings"
)

const (
	prefix = "[stgy:a"
	suffix = "]"
)

// FormatError describes a share code that does not have the expected
// wrapper or whose payload does not decipher to valid base64.
type FormatError string

func (e FormatError) Error() string {
	return "cipher: " + string(e)
}

// toStandard maps the 64-symbol share code alphabet onto the URL-safe
// base64 alphabet. The table was recovered from the client binary; it
// doubles as the key character table. Unmapped bytes stay zero.
var toStandard = [256]byte{
	'+': 'N', '-': 'P',
	'0': 'x', '1': 'g', '2': '0', '3': 'K', '4': '8', '5': 'S', '6': 'J',
	'7': '2', '8': 's', '9': 'Z',
	'A': 'D', 'B': 'F', 'C': 't', 'D': 'T', 'E': '6', 'F': 'E', 'G': 'a',
	'H': 'V', 'I': 'c', 'J': 'p', 'K': 'L', 'L': 'M', 'M': 'm', 'N': 'e',
	'O': 'j', 'P': '9', 'Q': 'X', 'R': 'B', 'S': '4', 'T': 'R', 'U': 'Y',
	'V': '7', 'W': '_', 'X': 'n', 'Y': 'O', 'Z': 'b',
	'a': 'i', 'b': '-', 'c': 'v', 'd': 'H', 'e': 'C', 'f': 'A', 'g': 'r',
	'h': 'W', 'i': 'o', 'j': 'd', 'k': 'I', 'l': 'q', 'm': 'h', 'n': 'U',
	'o': 'l', 'p': 'k', 'q': '3', 'r': 'f', 's': 'y', 't': '5', 'u': 'G',
	'v': 'w', 'w': '1', 'x': 'u', 'y': 'z', 'z': 'Q',
}

var fromStandard [256]byte

func init() {
	for c, s := range toStandard {
		if s != 0 {
			fromStandard[s] = byte(c)
		}
	}
}

// sixBits returns the 6-bit value of a URL-safe base64 character. Anything
// outside the alphabet maps to zero, matching the client behaviour.
func sixBits(c byte) int {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c) - 'A'
	case c >= 'a' && c <= 'z':
		return int(c) - 'a' + 26
	case c >= '0' && c <= '9':
		return int(c) - '0' + 52
	case c == '-':
		return 62
	case c == '_':
		return 63
	}
	return 0
}

// sixChar is the inverse of sixBits.
func sixChar(v int) byte {
	v &= 63
	switch {
	case v < 26:
		return byte(v) + 'A'
	case v < 52:
		return byte(v) - 26 + 'a'
	case v < 62:
		return byte(v) - 52 + '0'
	case v == 62:
		return '-'
	}
	return '_'
}

// Decode strips the share code wrapper, undoes the substitution cipher and
// returns the raw container bytes.
func Decode(code string) ([]byte, error) {
	if !strings.HasPrefix(code, prefix) || !strings.HasSuffix(code, suffix) {
		return nil, FormatError("missing share code wrapper")
	}

	data := code[len(prefix) : len(code)-len(suffix)]
	if len(data) < 2 {
		return nil, FormatError("payload too short")
	}

	ks := toStandard[data[0]]
	if ks == 0 {
		return nil, FormatError("invalid key character")
	}
	key := sixBits(ks)

	buf := make([]byte, len(data)-1)
	for i := range buf {
		v := sixBits(toStandard[data[i+1]])
		buf[i] = sixChar(v - i - key)
	}

	b, err := base64.RawURLEncoding.DecodeString(string(buf))
	if err != nil {
		return nil, FormatError("invalid base64 payload: " + err.Error())
	}

	return b, nil
}

// Encode wraps the container bytes b in a share code using the given cipher
// key. Any key in the range 0-63 produces a valid, decodable share code.
func Encode(b []byte, key int) (string, error) {
	if key < 0 || key > 63 {
		return "", errors.New("cipher: key out of range")
	}

	s := base64.RawURLEncoding.EncodeToString(b)

	buf := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		v := sixBits(s[i])
		buf[i] = fromStandard[sixChar(v+i+key)]
	}

	return prefix + string(fromStandard[sixChar(key)]) + string(buf) + suffix, nil
}
