package ui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game/entity"
)

var (
	gold       = entity.Color{R: 0xFF, G: 0xD7, B: 0x00}
	shieldBlue = entity.Color{R: 0x00, G: 0x88, B: 0xFF}
)

// toRL converts with an alpha in [0,1]
func toRL(c entity.Color, alpha float64) rl.Color {
	a := min(max(alpha, 0), 1)
	return rl.Color{R: c.R, G: c.G, B: c.B, A: uint8(a * 255)}
}

// hsl converts hue in degrees with saturation and lightness in [0,1]
func hsl(h, s, l float64) entity.Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g = c, x
	case h < 120:
		r, g = x, c
	case h < 180:
		g, b = c, x
	case h < 240:
		g, b = x, c
	case h < 300:
		r, b = x, c
	default:
		r, b = c, x
	}
	conv := func(v float64) uint8 { return uint8(math.Round((v + m) * 255)) }
	return entity.Color{R: conv(r), G: conv(g), B: conv(b)}
}
