/*
Package container implements the framing around the compressed board
binary: a 4-byte integrity field, the declared decompressed length and a
zlib stream.

The algorithm generating the integrity field inside the client has not been
confirmed. Encode fills it with an IEEE CRC-32 over the declared length
bytes followed by the compressed stream, which agrees with captured
samples, but agreement with the client's own validator is not guaranteed.
Decode ignores the field entirely.
*/
package container

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"io"

	"github.com/klauspost/compress/zlib"
)

const (
	headerSize = 6

	// maxDecompressed bounds the output of Decode; the format itself
	// carries no safeguard against decompression bombs.
	maxDecompressed = 1 << 20
)

// compressionLevel is fixed so that Encode is deterministic and matches
// the stream parameters observed in client-produced codes.
const compressionLevel = 6

// DecompressionError describes a container that is too short or whose
// compressed stream cannot be fully decompressed.
type DecompressionError struct {
	Err error
}

func (e *DecompressionError) Error() string {
	return "container: " + e.Err.Error()
}

func (e *DecompressionError) Unwrap() error {
	return e.Err
}

// Decode strips the container header and decompresses the remainder. The
// declared decompressed length in the header is advisory and not enforced.
func Decode(b []byte) ([]byte, error) {
	if len(b) < headerSize {
		return nil, &DecompressionError{errors.New("container too short")}
	}

	r, err := zlib.NewReader(bytes.NewReader(b[headerSize:]))
	if err != nil {
		return nil, &DecompressionError{err}
	}
	defer r.Close()

	buf := new(bytes.Buffer)
	n, err := io.CopyN(buf, r, maxDecompressed+1)
	switch {
	case err == nil && n > maxDecompressed:
		return nil, &DecompressionError{errors.New("decompressed data too large")}
	case err != io.EOF:
		return nil, &DecompressionError{err}
	}

	return buf.Bytes(), nil
}

// Encode compresses b and prepends the container header. The declared
// length is the uncompressed size, so b must fit in 16 bits.
func Encode(b []byte) ([]byte, error) {
	if len(b) > 0xffff {
		return nil, errors.New("container: payload too large")
	}

	compressed := new(bytes.Buffer)
	w, err := zlib.NewWriterLevel(compressed, compressionLevel)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(b); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	var length [2]byte
	binary.LittleEndian.PutUint16(length[:], uint16(len(b)))

	h := crc32.NewIEEE()
	h.Write(length[:])
	h.Write(compressed.Bytes())

	out := new(bytes.Buffer)
	if err := binary.Write(out, binary.LittleEndian, h.Sum32()); err != nil {
		return nil, err
	}
	if _, err := out.Write(length[:]); err != nil {
		return nil, err
	}
	if _, err := out.Write(compressed.Bytes()); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
