package ui

import "testing"

func TestHSL(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    string
	}{
		{0, 1, 0.5, "#FF0000"},
		{120, 1, 0.5, "#00FF00"},
		{240, 1, 0.5, "#0000FF"},
		{-120, 1, 0.5, "#0000FF"},
		{0, 0, 1, "#FFFFFF"},
	}
	for _, tt := range tests {
		if got := hsl(tt.h, tt.s, tt.l).Hex(); got != tt.want {
			t.Errorf("hsl(%v,%v,%v) = %s, want %s", tt.h, tt.s, tt.l, got, tt.want)
		}
	}
}
