package layout

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// builder assembles a board binary. Writes carry a sticky error; finalize
// back-patches the header fields that depend on the total length.
type builder struct {
	buf bytes.Buffer
	err error
}

func (b *builder) write(v interface{}) {
	if b.err != nil {
		return
	}
	b.err = binary.Write(&b.buf, binary.LittleEndian, v)
}

func (b *builder) words(vs ...uint16) {
	for _, v := range vs {
		b.write(v)
	}
}

// finalize fills in the payload size at 0x12 and the secondary header
// field at 0x04 now that the total length is known.
func (b *builder) finalize() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	out := b.buf.Bytes()
	binary.LittleEndian.PutUint32(out[0x12:], uint32(len(out)-headerSize))
	binary.LittleEndian.PutUint32(out[0x04:], uint32(len(out)-16))
	return out, nil
}

func descriptorFlags(o Object) uint16 {
	switch {
	case o.Hidden:
		return flagHidden
	case o.Locked:
		return flagLocked
	}
	return flagDefault
}

// MarshalBinary encodes the board into its binary form. The name is
// truncated to eight bytes; the hidden and locked flags are only encoded
// on single-object boards as the format has nowhere to put them otherwise.
func (board *Board) MarshalBinary() ([]byte, error) {
	n := len(board.Objects)
	if n > 0xffff {
		return nil, errors.New("layout: too many objects")
	}

	version := board.Version
	if version == 0 {
		version = FormatVersion
	}

	b := new(builder)
	b.write(&header{
		Version:    version,
		Count:      countHeader(n),
		NameLength: nameLength,
	})

	var name [nameLength]byte
	copy(name[:], board.Name)
	b.write(&name)

	for _, o := range board.Objects {
		b.words(objectMarker, o.Type)
	}

	switch {
	case n == 1:
		b.words(tagDescriptor, 1, 1, descriptorFlags(board.Objects[0]))
	case n > 1:
		b.words(tagDescriptor, 1, uint16(n))
		for range board.Objects {
			b.words(flagDefault)
		}
	}

	if n > 0 {
		b.words(tagPosition, 3, uint16(n))
		for _, o := range board.Objects {
			b.write(o.X)
			b.write(o.Y)
		}

		b.words(tagBackground, 1, uint16(n))
		for _, o := range board.Objects {
			b.words(o.Background)
		}

		b.words(tagSize, 0, uint16(n))
		for _, o := range board.Objects {
			b.write(o.Size)
		}
		if n%2 == 1 {
			b.write(uint8(0))
		}

		b.words(tagColor, 2, uint16(n))
		for _, o := range board.Objects {
			b.write([4]uint8{o.R, o.G, o.B, o.Transparency})
		}

		b.words(tagArcAngle, 1, uint16(n))
		for _, o := range board.Objects {
			b.words(o.ArcAngle)
		}

		b.words(tagDonutRadius, 1, uint16(n))
		for _, o := range board.Objects {
			b.words(o.DonutRadius)
		}

		b.words(tagReserved, 1, uint16(n))
		for range board.Objects {
			b.words(0)
		}
	}

	b.words(tagFooter, 1, 1, board.Background)

	return b.finalize()
}
