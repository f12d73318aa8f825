package stgy

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Document is the editable form of a board. It is what a share code
// decodes to and what Encode consumes.
type Document struct {
	Name            string   `json:"name" yaml:"name"`
	BoardBackground string   `json:"board_background,omitempty" yaml:"board_background,omitempty"`
	Objects         []Object `json:"objects" yaml:"objects"`
}

// Object is one placed icon. Positions are in grid units with 0.1
// resolution; Color is "#rrggbb". Hidden and Locked are only preserved on
// single-object boards, the binary format has nowhere to store them
// otherwise.
type Object struct {
	Type         string  `json:"type" yaml:"type"`
	X            float64 `json:"x" yaml:"x"`
	Y            float64 `json:"y" yaml:"y"`
	Size         int     `json:"size,omitempty" yaml:"size,omitempty"`
	Background   string  `json:"background,omitempty" yaml:"background,omitempty"`
	Color        string  `json:"color,omitempty" yaml:"color,omitempty"`
	Transparency int     `json:"transparency,omitempty" yaml:"transparency,omitempty"`
	ArcAngle     int     `json:"arc_angle,omitempty" yaml:"arc_angle,omitempty"`
	DonutRadius  int     `json:"donut_radius,omitempty" yaml:"donut_radius,omitempty"`
	Hidden       bool    `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Locked       bool    `json:"locked,omitempty" yaml:"locked,omitempty"`
}

func parseColor(s string) (r, g, b uint8, err error) {
	if s == "" {
		return 0xff, 0xff, 0xff, nil
	}
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, fmt.Errorf("stgy: invalid color %q", s)
	}
	v, err := hex.DecodeString(s[1:])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("stgy: invalid color %q", s)
	}
	return v[0], v[1], v[2], nil
}

func formatColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ReadDocumentFile loads a Document from a JSON or YAML file, chosen by
// file extension.
func ReadDocumentFile(file string) (*Document, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	d := new(Document)
	switch filepath.Ext(file) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, d)
	default:
		err = json.Unmarshal(b, d)
	}
	if err != nil {
		return nil, err
	}

	return d, nil
}

// WriteDocumentFile stores a Document as JSON or YAML, chosen by file
// extension.
func WriteDocumentFile(file string, d *Document) error {
	var (
		b   []byte
		err error
	)
	switch filepath.Ext(file) {
	case ".yaml", ".yml":
		b, err = yaml.Marshal(d)
	default:
		if b, err = json.MarshalIndent(d, "", "  "); err == nil {
			b = append(b, '\n')
		}
	}
	if err != nil {
		return err
	}

	return os.WriteFile(file, b, 0o644)
}
