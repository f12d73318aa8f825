/*
Package render draws an approximate preview of a board document as a
paletted PNG: the board backdrop, a unit grid and each object as a filled
shape in its own colour. It is a convenience for looking at a share code
without the client; the glyphs are geometric stand-ins, not client art.
*/
package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strings"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/bodgit/stgy"
	"github.com/bodgit/stgy/icon"
)

// DefaultSize is the edge length in pixels used by Encode.
const DefaultSize = 512

// extent is the number of grid units shown either side of the origin.
const extent = 20.0

const maxColors = 256

// Encode renders the document to w as a PNG of the default size.
func Encode(w io.Writer, d *stgy.Document) error {
	return EncodeSize(w, d, DefaultSize)
}

// EncodeSize renders the document to w as a square PNG of the given edge
// length.
func EncodeSize(w io.Writer, d *stgy.Document, size int) error {
	if size < 16 {
		return errors.New("render: image size too small")
	}

	m := image.NewRGBA(image.Rect(0, 0, size, size))

	background(m, d.BoardBackground, size)
	grid(m, size)

	for _, o := range d.Objects {
		if o.Hidden {
			continue
		}
		object(m, o, size)
	}

	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(m.Bounds(), q.Quantize(make(color.Palette, 0, maxColors), m))
	draw.Draw(pm, m.Bounds(), m, m.Bounds().Min, draw.Src)

	return png.Encode(w, pm)
}

// unitPixels returns how many pixels one grid unit spans.
func unitPixels(size int) float64 {
	return float64(size) / (2 * extent)
}

func background(m *image.RGBA, name string, size int) {
	light := color.RGBA{0x3a, 0x3a, 0x42, 0xff}
	dark := color.RGBA{0x2e, 0x2e, 0x36, 0xff}
	if strings.HasPrefix(name, "grey") {
		light = color.RGBA{0x55, 0x55, 0x55, 0xff}
		dark = color.RGBA{0x55, 0x55, 0x55, 0xff}
	}

	checkered := strings.HasPrefix(name, "checkered")
	unit := unitPixels(size)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := dark
			if !checkered || (int(float64(x)/unit)+int(float64(y)/unit))%2 == 0 {
				c = light
			}
			m.SetRGBA(x, y, c)
		}
	}
}

func grid(m *image.RGBA, size int) {
	c := color.RGBA{0x4a, 0x4a, 0x52, 0xff}
	unit := unitPixels(size)

	for i := -int(extent); i <= int(extent); i++ {
		p := int(float64(size)/2 + float64(i)*unit)
		if p < 0 || p >= size {
			continue
		}
		for q := 0; q < size; q++ {
			m.SetRGBA(p, q, c)
			m.SetRGBA(q, p, c)
		}
	}
}

func object(m *image.RGBA, o stgy.Object, size int) {
	unit := unitPixels(size)
	cx := float64(size)/2 + o.X*unit
	cy := float64(size)/2 + o.Y*unit

	objectSize := o.Size
	if objectSize == 0 {
		objectSize = 100
	}
	radius := 1.5 * unit * float64(objectSize) / 100

	c := objectColor(o)

	id, err := icon.ID(o.Type)
	if err != nil {
		id = 0
	}

	switch {
	case o.DonutRadius > 0:
		inner := math.Min(float64(o.DonutRadius)/10*unit, radius*0.9)
		ring(m, cx, cy, radius, inner, c)
	case o.ArcAngle > 0 && o.ArcAngle < 360:
		fan(m, cx, cy, radius, float64(o.ArcAngle), c)
	case icon.CategoryOf(id) == icon.CategoryField || strings.Contains(o.Type, "square"):
		square(m, cx, cy, radius, c)
	default:
		disc(m, cx, cy, radius, c)
	}
}

func objectColor(o stgy.Object) color.RGBA {
	r, g, b := uint8(0xff), uint8(0xff), uint8(0xff)
	if len(o.Color) == 7 && o.Color[0] == '#' {
		r = hexByte(o.Color[1:3])
		g = hexByte(o.Color[3:5])
		b = hexByte(o.Color[5:7])
	}
	return color.RGBA{r, g, b, 0xff - uint8(o.Transparency)}
}

func hexByte(s string) uint8 {
	var v uint8
	for i := 0; i < 2; i++ {
		v <<= 4
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			v |= c - '0'
		case c >= 'a' && c <= 'f':
			v |= c - 'a' + 10
		case c >= 'A' && c <= 'F':
			v |= c - 'A' + 10
		}
	}
	return v
}

func blend(m *image.RGBA, x, y int, c color.RGBA) {
	if !(image.Point{x, y}).In(m.Bounds()) {
		return
	}
	if c.A == 0xff {
		m.SetRGBA(x, y, c)
		return
	}

	o := m.RGBAAt(x, y)
	a := uint32(c.A)
	m.SetRGBA(x, y, color.RGBA{
		uint8((uint32(c.R)*a + uint32(o.R)*(255-a)) / 255),
		uint8((uint32(c.G)*a + uint32(o.G)*(255-a)) / 255),
		uint8((uint32(c.B)*a + uint32(o.B)*(255-a)) / 255),
		0xff,
	})
}

func disc(m *image.RGBA, cx, cy, r float64, c color.RGBA) {
	ring(m, cx, cy, r, 0, c)
}

func ring(m *image.RGBA, cx, cy, outer, inner float64, c color.RGBA) {
	for y := int(cy - outer); y <= int(cy+outer); y++ {
		for x := int(cx - outer); x <= int(cx+outer); x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy)
			if d <= outer && d >= inner {
				blend(m, x, y, c)
			}
		}
	}
}

// fan draws a wedge of the given angular width in degrees, opening
// upwards from the centre.
func fan(m *image.RGBA, cx, cy, r, angle float64, c color.RGBA) {
	half := angle * math.Pi / 360
	for y := int(cy - r); y <= int(cy+r); y++ {
		for x := int(cx - r); x <= int(cx+r); x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if math.Hypot(dx, dy) > r {
				continue
			}
			if math.Abs(math.Atan2(dx, -dy)) <= half {
				blend(m, x, y, c)
			}
		}
	}
}

func square(m *image.RGBA, cx, cy, r float64, c color.RGBA) {
	for y := int(cy - r); y <= int(cy+r); y++ {
		for x := int(cx - r); x <= int(cx+r); x++ {
			blend(m, x, y, c)
		}
	}
}
