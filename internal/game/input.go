package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/stick-survivor/internal/sim"
)

// moveKeys maps each movement intent to the keys that hold it.
var moveKeys = []struct {
	intent sim.Intent
	keys   []ebiten.Key
}{
	{sim.IntentUp, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
	{sim.IntentLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
	{sim.IntentDown, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
	{sim.IntentRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
}

// storeKeys buy the catalog item at the same index while the store is open.
var storeKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// heldIntents resolves the movement intents currently held. Each intent is
// reported once even when both of its keys are down; opposite directions
// both apply and cancel out.
func heldIntents(pressed func(ebiten.Key) bool) []sim.Intent {
	var out []sim.Intent
	for _, m := range moveKeys {
		for _, k := range m.keys {
			if pressed(k) {
				out = append(out, m.intent)
				break
			}
		}
	}
	return out
}
