/*
Package layout implements the binary board description carried inside the
share code container.

A board binary is a fixed little-endian header followed by one marker/type
pair per object, a run of tag/length/value sections holding per-object
property arrays in a fixed order, and a footer section carrying the board
background. Board implements the encoding.BinaryMarshaler and
encoding.BinaryUnmarshaler interfaces.
*/
package layout

import "fmt"

// FormatVersion is the only format version observed in client binaries.
const FormatVersion = 2

const (
	headerSize = 0x1c
	nameLength = 8
)

const objectMarker uint16 = 2

const (
	tagFooter      uint16 = 3
	tagDescriptor  uint16 = 4
	tagPosition    uint16 = 5
	tagBackground  uint16 = 6
	tagSize        uint16 = 7
	tagColor       uint16 = 8
	tagArcAngle    uint16 = 10
	tagDonutRadius uint16 = 11
	tagReserved    uint16 = 12
)

// Object descriptor flag values. Only meaningful on single-object boards.
const (
	flagHidden  uint16 = 0
	flagDefault uint16 = 1
	flagLocked  uint16 = 9
	lockedBit   uint16 = 0x08
)

// defaultSize is substituted for a stored size of zero.
const defaultSize = 100

// LayoutError describes a board binary that is truncated, has a property
// section whose element count disagrees with the object count, or ends
// without a footer section.
type LayoutError struct {
	Offset int
	Msg    string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("layout: %s at offset %#x", e.Msg, e.Offset)
}

// Object is one placed icon and its property array entries.
type Object struct {
	Type         uint16
	X, Y         int16 // tenths of a grid unit
	Size         uint8
	Background   uint16
	R, G, B      uint8
	Transparency uint8
	ArcAngle     uint16
	DonutRadius  uint16
	Hidden       bool
	Locked       bool
}

// Board is the parsed form of a board binary.
type Board struct {
	Version uint32
	// Extra is the header field at offset 0x04. Its meaning is unresolved;
	// it is preserved verbatim on parse and recomputed as total length
	// minus 16 on build, matching every observed sample.
	Extra      uint32
	Name       string
	Background uint16
	Objects    []Object
}

// header is the fixed part of the binary preceding the board name. Blank
// fields are reserved and always zero in observed samples.
type header struct {
	Version     uint32
	Extra       uint32
	_           [10]byte
	PayloadSize uint32
	_           uint16
	Count       uint16
	NameLength  uint16
}

// countHeader is the value stored in the header object count slot. It only
// matches the object count for boards of zero or one objects; beyond that
// the client stores a constant 1 and the real count lives in the
// descriptor section. This is a quirk of the format, not ours to repair.
func countHeader(n int) uint16 {
	if n <= 1 {
		return uint16(n)
	}
	return 1
}
