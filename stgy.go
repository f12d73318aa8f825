/*
Package stgy converts between strategy board share codes and an editable
document representation.

A share code is an opaque string of the shape "[stgy:a...]" passed around
between players. Underneath it is a substitution cipher over a base64
payload, a compressed container and a small tag/length/value binary
describing the board. Decode peels those layers off in order; Encode is
the exact inverse.
*/
package stgy

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/bodgit/stgy/cipher"
	"github.com/bodgit/stgy/container"
	"github.com/bodgit/stgy/icon"
	"github.com/bodgit/stgy/layout"
)

// Decode converts a share code into a Document. Failures surface as the
// typed error of the stage that rejected the input: cipher.FormatError,
// container.DecompressionError or layout.LayoutError.
func Decode(code string) (*Document, error) {
	c, err := cipher.Decode(code)
	if err != nil {
		return nil, err
	}

	b, err := container.Decode(c)
	if err != nil {
		return nil, err
	}

	var board layout.Board
	if err := board.UnmarshalBinary(b); err != nil {
		return nil, err
	}

	return toDocument(&board), nil
}

// Encode converts a Document into a share code. The cipher key is chosen
// at random, as the client does; use EncodeWithKey for stable output.
func Encode(d *Document) (string, error) {
	return EncodeWithKey(d, rand.Intn(64))
}

// EncodeWithKey converts a Document into a share code using a fixed cipher
// key in the range 0-63. Output is deterministic for a given document and
// key.
func EncodeWithKey(d *Document, key int) (string, error) {
	board, err := toBoard(d)
	if err != nil {
		return "", err
	}

	b, err := board.MarshalBinary()
	if err != nil {
		return "", err
	}

	c, err := container.Encode(b)
	if err != nil {
		return "", err
	}

	return cipher.Encode(c, key)
}

func toDocument(board *layout.Board) *Document {
	d := &Document{
		Name:            board.Name,
		BoardBackground: icon.BoardBackgroundName(board.Background),
		Objects:         make([]Object, 0, len(board.Objects)),
	}

	for _, o := range board.Objects {
		d.Objects = append(d.Objects, Object{
			Type:         icon.Name(o.Type),
			X:            float64(o.X) / 10,
			Y:            float64(o.Y) / 10,
			Size:         int(o.Size),
			Background:   icon.ObjectBackgroundName(o.Background),
			Color:        formatColor(o.R, o.G, o.B),
			Transparency: int(o.Transparency),
			ArcAngle:     int(o.ArcAngle),
			DonutRadius:  int(o.DonutRadius),
			Hidden:       o.Hidden,
			Locked:       o.Locked,
		})
	}

	return d
}

func toBoard(d *Document) (*layout.Board, error) {
	board := &layout.Board{
		Version: layout.FormatVersion,
		Name:    d.Name,
	}

	background := d.BoardBackground
	if background == "" {
		background = "none"
	}
	var err error
	if board.Background, err = icon.BoardBackgroundID(background); err != nil {
		return nil, err
	}

	for i, o := range d.Objects {
		id, err := icon.ID(o.Type)
		if err != nil {
			return nil, err
		}

		background := o.Background
		if background == "" {
			background = "none"
		}
		bg, err := icon.ObjectBackgroundID(background)
		if err != nil {
			return nil, err
		}

		r, g, b, err := parseColor(o.Color)
		if err != nil {
			return nil, err
		}

		size := o.Size
		if size == 0 {
			size = 100
		}
		if size < 0 || size > 0xff {
			return nil, fmt.Errorf("stgy: object %d: size %d out of range", i, o.Size)
		}

		x := math.Round(o.X * 10)
		y := math.Round(o.Y * 10)
		if x < math.MinInt16 || x > math.MaxInt16 || y < math.MinInt16 || y > math.MaxInt16 {
			return nil, fmt.Errorf("stgy: object %d: position out of range", i)
		}

		if o.Transparency < 0 || o.Transparency > 0xff {
			return nil, fmt.Errorf("stgy: object %d: transparency %d out of range", i, o.Transparency)
		}
		if o.ArcAngle < 0 || o.ArcAngle > 0xffff {
			return nil, fmt.Errorf("stgy: object %d: arc angle %d out of range", i, o.ArcAngle)
		}
		if o.DonutRadius < 0 || o.DonutRadius > 0xffff {
			return nil, fmt.Errorf("stgy: object %d: donut radius %d out of range", i, o.DonutRadius)
		}

		board.Objects = append(board.Objects, layout.Object{
			Type:         id,
			X:            int16(x),
			Y:            int16(y),
			Size:         uint8(size),
			Background:   bg,
			R:            r,
			G:            g,
			B:            b,
			Transparency: uint8(o.Transparency),
			ArcAngle:     uint16(o.ArcAngle),
			DonutRadius:  uint16(o.DonutRadius),
			Hidden:       o.Hidden,
			Locked:       o.Locked,
		})
	}

	return board, nil
}
