package game

import (
	"testing"
	"time"

	"github.com/Garsondee/stick-survivor/internal/sim"
)

func TestEffectsLifetimes(t *testing.T) {
	fx := NewEffects()
	fx.Apply(sim.Event{Kind: sim.EventText, Text: "-20", At: 0, Duration: time.Second})
	fx.Apply(sim.Event{Kind: sim.EventImpact, At: 0, Duration: 500 * time.Millisecond})
	fx.Apply(sim.Event{Kind: sim.EventKnockback, Entity: 4, Dir: sim.Vec{X: 15}, At: 0, Duration: 300 * time.Millisecond})
	fx.Apply(sim.Event{Kind: sim.EventKill, Entity: 4})

	fx.Prune(100 * time.Millisecond)
	if fx.Len() != 3 {
		t.Fatalf("expected 3 live visuals, got %d", fx.Len())
	}
	if off := fx.Offset(4); off != (sim.Vec{X: 15}) {
		t.Fatalf("expected knockback offset, got %v", off)
	}
	if !fx.Flashing(4) {
		t.Fatal("a knocked-back entity flashes")
	}

	fx.Prune(300 * time.Millisecond)
	if off := fx.Offset(4); off != (sim.Vec{}) {
		t.Fatalf("knockback ends after its duration, got %v", off)
	}
	fx.Prune(500 * time.Millisecond)
	if fx.Len() != 1 {
		t.Fatalf("only the floating text should remain, got %d", fx.Len())
	}
	fx.Prune(time.Second)
	if fx.Len() != 0 {
		t.Fatalf("everything expires, got %d", fx.Len())
	}
}

func TestEffectsNoticesAndSwings(t *testing.T) {
	fx := NewEffects()
	fx.Apply(sim.Event{Kind: sim.EventNightFell, Text: "Night has fallen!", At: time.Minute, Duration: 3 * time.Second})
	fx.Apply(sim.Event{Kind: sim.EventEnemyAttack, Entity: 9, At: time.Minute, Duration: 300 * time.Millisecond})

	fx.Prune(time.Minute + 100*time.Millisecond)
	if len(fx.texts) != 1 || !fx.texts[0].notice {
		t.Fatalf("expected one notice, got %+v", fx.texts)
	}
	if !fx.Swinging(9) {
		t.Fatal("enemy swing should be playing")
	}
	fx.Prune(time.Minute + 2*time.Second)
	if fx.Swinging(9) {
		t.Fatal("enemy swing should have ended")
	}
	if len(fx.texts) != 1 {
		t.Fatal("notice lasts three seconds")
	}
}

func TestEffectsProgress(t *testing.T) {
	fx := NewEffects()
	fx.Prune(250 * time.Millisecond)
	if p := fx.progress(0, time.Second); p != 0.25 {
		t.Errorf("progress = %v, want 0.25", p)
	}
	if p := fx.progress(time.Second, 2*time.Second); p != 0 {
		t.Errorf("progress before birth = %v, want 0", p)
	}
	if p := fx.progress(0, 0); p != 1 {
		t.Errorf("zero-length effect progress = %v, want 1", p)
	}
}
