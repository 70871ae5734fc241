package game

import (
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/stick-survivor/internal/sim"
)

func pressing(keys ...ebiten.Key) func(ebiten.Key) bool {
	down := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		down[k] = true
	}
	return func(k ebiten.Key) bool { return down[k] }
}

func TestHeldIntents(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want []sim.Intent
	}{
		{"nothing", nil, nil},
		{"wasd diagonal", []ebiten.Key{ebiten.KeyW, ebiten.KeyD}, []sim.Intent{sim.IntentUp, sim.IntentRight}},
		{"arrows", []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyArrowLeft}, []sim.Intent{sim.IntentLeft, sim.IntentDown}},
		{"both keys report once", []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, []sim.Intent{sim.IntentUp}},
		{"opposites both apply", []ebiten.Key{ebiten.KeyA, ebiten.KeyD}, []sim.Intent{sim.IntentLeft, sim.IntentRight}},
		{"other keys ignored", []ebiten.Key{ebiten.KeyQ, ebiten.KeySpace}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := heldIntents(pressing(tt.keys...))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("heldIntents = %v, want %v", got, tt.want)
			}
		})
	}
}
