package manager

import (
	"testing"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

func TestSelfCollision(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 10, Height: 10})
	tests := []struct {
		name string
		body []types.Point
		mods Modifiers
		want bool
	}{
		{"straight", []types.Point{{X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}}, Modifiers{}, false},
		{"closed loop", []types.Point{{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 2}, {X: 2, Y: 2}}, Modifiers{}, true},
		{"head on body", []types.Point{{X: 2, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 1}}, Modifiers{}, true},
		{"shielded", []types.Point{{X: 2, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 1}}, Modifiers{IgnoresSelfCollision: true}, false},
		{"phased only", []types.Point{{X: 2, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 1}}, Modifiers{Phased: true}, true},
		{"single cell", []types.Point{{X: 2, Y: 1}}, Modifiers{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cm.SelfCollision(entity.NewSnake(tt.body...), tt.mods); got != tt.want {
				t.Errorf("SelfCollision = %v, want %v", got, tt.want)
			}
		})
	}
}
