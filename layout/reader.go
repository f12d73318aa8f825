package layout

import (
	"bytes"
	"encoding/binary"
	"io"
)

type parser struct {
	r     *bytes.Reader
	total int
}

func (p *parser) offset() int {
	return p.total - p.r.Len()
}

func (p *parser) read(v interface{}) error {
	if err := binary.Read(p.r, binary.LittleEndian, v); err != nil {
		return &LayoutError{p.offset(), "unexpected end of data"}
	}
	return nil
}

func (p *parser) word() (uint16, error) {
	var v uint16
	err := p.read(&v)
	return v, err
}

// sectionCount reads the sub-type and element count words that follow a
// section tag and checks the count against the object count.
func (p *parser) sectionCount(n int) (int, error) {
	if _, err := p.word(); err != nil {
		return 0, err
	}
	count, err := p.word()
	if err != nil {
		return 0, err
	}
	if int(count) != n {
		return 0, &LayoutError{p.offset(), "section element count mismatch"}
	}
	return int(count), nil
}

// UnmarshalBinary decodes a board binary.
func (b *Board) UnmarshalBinary(data []byte) error {
	p := &parser{r: bytes.NewReader(data), total: len(data)}

	var h header
	if err := p.read(&h); err != nil {
		return err
	}
	if int(h.NameLength) > p.r.Len() {
		return &LayoutError{0x1a, "implausible name length"}
	}

	name := make([]byte, h.NameLength)
	if _, err := io.ReadFull(p.r, name); err != nil {
		return &LayoutError{p.offset(), "unexpected end of data"}
	}

	b.Version = h.Version
	b.Extra = h.Extra
	b.Name = string(bytes.TrimRight(name, "\x00"))
	b.Background = 0
	b.Objects = nil

	// One marker/type pair per object; the first non-marker word is the
	// first section tag.
	var types []uint16
	tag, err := p.word()
	if err != nil {
		return err
	}
	for tag == objectMarker {
		id, err := p.word()
		if err != nil {
			return err
		}
		types = append(types, id)
		if tag, err = p.word(); err != nil {
			return err
		}
	}

	n := len(types)
	objects := make([]Object, n)
	for i := range objects {
		objects[i] = Object{
			Type: types[i],
			Size: defaultSize,
			R:    0xff, G: 0xff, B: 0xff,
		}
	}

	flags := flagDefault

	for {
		switch tag {
		case tagFooter:
			if _, err := p.word(); err != nil {
				return err
			}
			if _, err := p.word(); err != nil {
				return err
			}
			bg, err := p.word()
			if err != nil {
				return err
			}
			b.Background = bg

			if n == 1 {
				switch {
				case flags == flagHidden:
					objects[0].Hidden = true
				case flags&lockedBit != 0:
					objects[0].Locked = true
				}
			}
			b.Objects = objects
			return nil

		case tagDescriptor:
			if _, err := p.sectionCount(n); err != nil {
				return err
			}
			if n == 1 {
				if flags, err = p.word(); err != nil {
					return err
				}
			} else {
				// The per-object words are not interpreted.
				for i := 0; i < n; i++ {
					if _, err := p.word(); err != nil {
						return err
					}
				}
			}

		case tagPosition:
			if _, err := p.sectionCount(n); err != nil {
				return err
			}
			for i := range objects {
				var pos struct{ X, Y int16 }
				if err := p.read(&pos); err != nil {
					return err
				}
				objects[i].X, objects[i].Y = pos.X, pos.Y
			}

		case tagBackground:
			if _, err := p.sectionCount(n); err != nil {
				return err
			}
			for i := range objects {
				if objects[i].Background, err = p.word(); err != nil {
					return err
				}
			}

		case tagSize:
			if _, err := p.sectionCount(n); err != nil {
				return err
			}
			for i := range objects {
				var size uint8
				if err := p.read(&size); err != nil {
					return err
				}
				if size == 0 {
					size = defaultSize
				}
				objects[i].Size = size
			}
			if n%2 == 1 {
				var pad uint8
				if err := p.read(&pad); err != nil {
					return err
				}
			}

		case tagColor:
			if _, err := p.sectionCount(n); err != nil {
				return err
			}
			for i := range objects {
				var rgba [4]uint8
				if err := p.read(&rgba); err != nil {
					return err
				}
				objects[i].R, objects[i].G, objects[i].B = rgba[0], rgba[1], rgba[2]
				objects[i].Transparency = rgba[3]
			}

		case tagArcAngle:
			if _, err := p.sectionCount(n); err != nil {
				return err
			}
			for i := range objects {
				if objects[i].ArcAngle, err = p.word(); err != nil {
					return err
				}
			}

		case tagDonutRadius:
			if _, err := p.sectionCount(n); err != nil {
				return err
			}
			for i := range objects {
				if objects[i].DonutRadius, err = p.word(); err != nil {
					return err
				}
			}

		case tagReserved:
			if _, err := p.sectionCount(n); err != nil {
				return err
			}
			// Always zero in known samples; read and discard.
			for i := 0; i < n; i++ {
				if _, err := p.word(); err != nil {
					return err
				}
			}

		default:
			// Unknown tag: skip just the tag word and resynchronise.
		}

		if tag, err = p.word(); err != nil {
			return &LayoutError{p.offset(), "missing footer"}
		}
	}
}
