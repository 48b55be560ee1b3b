package entity

import "testing"

func TestLerp(t *testing.T) {
	a := Color{R: 0, G: 100, B: 200}
	b := Color{R: 100, G: 0, B: 200}

	if got := Lerp(a, b, 0); got != a {
		t.Errorf("t=0: %v", got)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("t=1: %v", got)
	}
	if got := Lerp(a, b, 0.5); got != (Color{R: 50, G: 50, B: 200}) {
		t.Errorf("t=0.5: %v", got)
	}
	if got := Lerp(a, b, 7); got != b {
		t.Errorf("t clamps: %v", got)
	}
}

func TestSegmentColor(t *testing.T) {
	if got := SegmentColor(0, 4, HeadColor); got != HeadColor {
		t.Errorf("head = %v", got.Hex())
	}
	// #00FFDD -> #00CCBB at ratio 2/4
	if got := SegmentColor(2, 4, HeadColor); got.Hex() != "#00E5CC" {
		t.Errorf("middle = %v", got.Hex())
	}

	shield := Shield.Color()
	if got := SegmentColor(0, 4, shield); got != shield {
		t.Errorf("powered head = %v", got.Hex())
	}
	if SegmentColor(3, 4, shield) == SegmentColor(3, 4, HeadColor) {
		t.Error("power-up did not tint the body")
	}
}

func TestDim(t *testing.T) {
	if got := Dim(Color{R: 200, G: 100, B: 50}, 0.5); got != (Color{R: 100, G: 50, B: 25}) {
		t.Errorf("Dim = %v", got)
	}
	if got := Dim(FoodColor, 0); got != (Color{}) {
		t.Errorf("Dim(0) = %v", got)
	}
}
