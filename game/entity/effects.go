package entity

import (
	"fmt"
	"strconv"
	"strings"
)

type Color struct {
	R, G, B uint8
}

// Hex formats the colour as #RRGGBB
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex reads #RRGGBB or RRGGBB
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Palette shared by the engine and renderers
var (
	HeadColor  = Color{R: 0x00, G: 0xFF, B: 0xDD}
	TailColor  = Color{R: 0x00, G: 0xCC, B: 0xBB}
	FoodColor  = Color{R: 0xFF, G: 0x33, B: 0x66}
	WrapColor  = Color{R: 0x00, G: 0xFF, B: 0xDD}
	DeathColor = Color{R: 0xFF, G: 0x33, B: 0x66}
)

// Particle is a cosmetic spark. Position, velocity and radius are in cell
// units so renderers can scale them to any cell size.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  Color
	Alpha  float64
	Decay  float64
}

// ScorePopup is the floating "+N" label shown after eating
type ScorePopup struct {
	Active  bool
	Text    string
	X, Y    float64 // cell units
	Offset  float64 // cell units, grows upward
	Opacity float64
}
