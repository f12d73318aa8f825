/*
Package icon maps the numeric icon type codes found in board binaries to
semantic names and back.

The catalogue is closed but codes outside it still round-trip: an unknown
code n is named "unknown_n" and that name converts back to n.

Backgrounds appear twice in the binary format with different numeric
bases: the per-object background sections count from 0 while the board
background footer counts from 1. The two tables cover the same seven
patterns but must not be merged.
*/
package icon

import (
	"fmt"
	"strconv"
	"strings"
)

// Category groups icon types the way the client's own data files do.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryField
	CategoryUnit
	CategoryMarker
	CategoryShape
	CategoryGroup
	CategoryMechanic
)

var names = map[uint16]string{
	// Field backgrounds
	4: "checkered_circle", 8: "checkered_square",
	124: "grey_circle", 125: "grey_square",

	// AoE and fight mechanics
	9: "circle_aoe", 10: "fan_aoe", 11: "line_aoe", 12: "line",
	13: "gaze", 14: "stack", 15: "line_stack", 16: "proximity",
	17: "donut", 106: "stack_multi", 107: "proximity_player",
	108: "tankbuster", 109: "radial_knockback", 110: "linear_knockback",
	111: "tower", 112: "targeting", 126: "moving_circle_aoe",
	127: "1person_aoe", 128: "2person_aoe", 129: "3person_aoe",
	130: "4person_aoe",

	// Base classes
	18: "gladiator", 19: "pugilist", 20: "marauder", 21: "lancer",
	22: "archer", 23: "conjurer", 24: "thaumaturge", 25: "arcanist",
	26: "rogue",

	// Jobs
	27: "paladin", 28: "monk", 29: "warrior", 30: "dragoon", 31: "bard",
	32: "white_mage", 33: "black_mage", 34: "summoner", 35: "scholar",
	36: "ninja", 37: "machinist", 38: "dark_knight", 39: "astrologian",
	40: "samurai", 41: "red_mage", 42: "blue_mage", 43: "gunbreaker",
	44: "dancer", 45: "reaper", 46: "sage", 101: "viper",
	102: "pictomancer",

	// Role markers
	47: "tank", 48: "tank_1", 49: "tank_2",
	50: "healer", 51: "healer_1", 52: "healer_2",
	53: "dps", 54: "dps_1", 55: "dps_2", 56: "dps_3", 57: "dps_4",
	118: "melee_dps", 119: "ranged_dps", 120: "physical_ranged_dps",
	121: "magical_ranged_dps", 122: "pure_healer", 123: "barrier_healer",

	// Enemies
	60: "small_enemy", 62: "medium_enemy", 64: "large_enemy",

	// Target markers
	65: "attack_1", 66: "attack_2", 67: "attack_3", 68: "attack_4",
	69: "attack_5", 115: "attack_6", 116: "attack_7", 117: "attack_8",
	70: "bind_1", 71: "bind_2", 72: "bind_3",
	73: "ignore_1", 74: "ignore_2",

	// Chain markers
	75: "square_marker", 76: "circle_marker", 77: "plus_marker",
	78: "triangle_marker",

	// Waymarks
	79: "waymark_a", 80: "waymark_b", 81: "waymark_c", 82: "waymark_d",
	83: "waymark_1", 84: "waymark_2", 85: "waymark_3", 86: "waymark_4",

	// Shapes
	87: "shape_circle", 88: "shape_x", 89: "shape_triangle",
	90: "shape_square", 94: "up_arrow", 100: "text", 103: "rotate",
	135: "highlighted_circle", 136: "highlighted_x",
	137: "highlighted_square", 138: "highlighted_triangle",
	139: "rotate_clockwise", 140: "rotate_counterclockwise",

	// Status effects
	113: "enhancement", 114: "enfeeblement",

	// Lock-on markers
	131: "lockon_red", 132: "lockon_blue", 133: "lockon_purple",
	134: "lockon_green",

	// Groups
	105: "group",
}

var categoryIDs = map[Category][]uint16{
	CategoryField: {4, 8, 124, 125},
	CategoryMechanic: {
		9, 10, 11, 12, 13, 14, 15, 16, 17, 106, 107, 108, 109, 110,
		111, 112, 126, 127, 128, 129, 130,
	},
	CategoryUnit: {
		18, 19, 20, 21, 22, 23, 24, 25, 26,
		27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42,
		43, 44, 45, 46, 101, 102,
		47, 48, 49, 50, 51, 52, 53, 54, 55, 56, 57,
		118, 119, 120, 121, 122, 123,
	},
	CategoryMarker: {
		60, 62, 64,
		65, 66, 67, 68, 69, 115, 116, 117, 70, 71, 72, 73, 74,
		75, 76, 77, 78,
		79, 80, 81, 82, 83, 84, 85, 86,
		113, 114,
		131, 132, 133, 134,
	},
	CategoryShape: {87, 88, 89, 90, 94, 100, 103, 135, 136, 137, 138, 139, 140},
	CategoryGroup: {105},
}

var (
	ids        map[string]uint16
	categories map[uint16]Category
)

func init() {
	ids = make(map[string]uint16, len(names))
	for id, name := range names {
		ids[name] = id
	}

	categories = make(map[uint16]Category, len(names))
	for c, list := range categoryIDs {
		for _, id := range list {
			categories[id] = c
		}
	}
}

const unknownPrefix = "unknown_"

// Name returns the semantic name for an icon type code.
func Name(id uint16) string {
	if name, ok := names[id]; ok {
		return name
	}
	return unknownPrefix + strconv.Itoa(int(id))
}

// ID returns the icon type code for a semantic name, including synthetic
// "unknown_n" names produced by Name.
func ID(name string) (uint16, error) {
	if id, ok := ids[name]; ok {
		return id, nil
	}
	if s := strings.TrimPrefix(name, unknownPrefix); s != name {
		if id, err := strconv.ParseUint(s, 10, 16); err == nil {
			return uint16(id), nil
		}
	}
	return 0, fmt.Errorf("icon: unknown name %q", name)
}

// CategoryOf returns the catalogue category an icon type code belongs to.
func CategoryOf(id uint16) Category {
	return categories[id]
}

// backgrounds lists the seven background patterns. The per-object sections
// index this slice from 0; the board background footer from 1.
var backgrounds = []string{
	"none", "checkered", "checkered_circle", "checkered_square",
	"grey", "grey_circle", "grey_square",
}

func backgroundName(v int) string {
	if v >= 0 && v < len(backgrounds) {
		return backgrounds[v]
	}
	return unknownPrefix + strconv.Itoa(v)
}

func backgroundID(name string) (int, error) {
	for i, b := range backgrounds {
		if b == name {
			return i, nil
		}
	}
	if s := strings.TrimPrefix(name, unknownPrefix); s != name {
		if v, err := strconv.Atoi(s); err == nil {
			return v, nil
		}
	}
	return 0, fmt.Errorf("icon: unknown background %q", name)
}

// ObjectBackgroundName returns the name for a per-object background code.
func ObjectBackgroundName(v uint16) string {
	return backgroundName(int(v))
}

// ObjectBackgroundID returns the per-object background code for a name.
func ObjectBackgroundID(name string) (uint16, error) {
	v, err := backgroundID(name)
	if err != nil || v < 0 || v > 0xffff {
		return 0, fmt.Errorf("icon: unknown background %q", name)
	}
	return uint16(v), nil
}

// BoardBackgroundName returns the name for a board background code from
// the footer section. Unknown codes embed the raw footer value, not the
// rebased one.
func BoardBackgroundName(v uint16) string {
	if v >= 1 && int(v) <= len(backgrounds) {
		return backgrounds[v-1]
	}
	return unknownPrefix + strconv.Itoa(int(v))
}

// BoardBackgroundID returns the board background footer code for a name.
func BoardBackgroundID(name string) (uint16, error) {
	for i, b := range backgrounds {
		if b == name {
			return uint16(i + 1), nil
		}
	}
	if s := strings.TrimPrefix(name, unknownPrefix); s != name {
		if v, err := strconv.ParseUint(s, 10, 16); err == nil {
			return uint16(v), nil
		}
	}
	return 0, fmt.Errorf("icon: unknown background %q", name)
}
