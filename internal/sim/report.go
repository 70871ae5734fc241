package sim

import (
	"fmt"
	"strings"
	"time"
)

// Report summarises a session for the HUD, the headless runner and the
// clipboard.
type Report struct {
	Frames  int
	Elapsed time.Duration

	Health int
	Kills  int
	Coins  int

	EnemyKills        int
	PigKills          int
	Pickups           map[CollectibleKind]int
	DamageTaken       int
	EnemyAttacks      int
	Respawns          int
	Nights            int
	PlacementFailures int

	Over bool
}

func (r *Report) observe(e Event) {
	switch e.Kind {
	case EventKill:
		switch e.Actor {
		case ActorEnemy:
			r.EnemyKills++
		case ActorPig:
			r.PigKills++
		}
	case EventCollect:
		if r.Pickups == nil {
			r.Pickups = make(map[CollectibleKind]int)
		}
		r.Pickups[e.Collectible]++
	case EventHit:
		if e.Actor == ActorPlayer {
			r.DamageTaken += e.Amount
		}
	case EventEnemyAttack:
		r.EnemyAttacks++
	case EventRespawn:
		r.Respawns++
	case EventNightFell:
		r.Nights++
	case EventPlacementFailed:
		r.PlacementFailures++
	}
}

// Outcome names how the session stands.
func (r Report) Outcome() string {
	if r.Over {
		return "defeated"
	}
	return "survived"
}

func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "outcome=%s frames=%d elapsed=%s\n", r.Outcome(), r.Frames, r.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(&b, "health=%d kills=%d coins=%d\n", r.Health, r.Kills, r.Coins)
	fmt.Fprintf(&b, "enemy_kills=%d pig_kills=%d damage_taken=%d enemy_attacks=%d\n",
		r.EnemyKills, r.PigKills, r.DamageTaken, r.EnemyAttacks)
	fmt.Fprintf(&b, "pickups coin=%d health=%d bacon=%d\n",
		r.Pickups[Coin], r.Pickups[Health], r.Pickups[Bacon])
	fmt.Fprintf(&b, "respawns=%d nights=%d placement_failures=%d\n",
		r.Respawns, r.Nights, r.PlacementFailures)
	return b.String()
}
