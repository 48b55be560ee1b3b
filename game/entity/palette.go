package entity

import "math"

// Lerp blends a towards b; t is clamped to [0,1] and channels truncate
func Lerp(a, b Color, t float64) Color {
	t = min(max(t, 0), 1)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Floor(float64(x) + (float64(y)-float64(x))*t))
	}
	return Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B)}
}

// SegmentColor shades segment i of n from head towards TailColor
func SegmentColor(i, n int, head Color) Color {
	if i == 0 || n <= 0 {
		return head
	}
	return Lerp(head, TailColor, float64(i)/float64(n))
}

// Dim scales c towards black by alpha in [0,1]
func Dim(c Color, alpha float64) Color {
	return Lerp(Color{}, c, alpha)
}
