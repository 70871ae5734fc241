package sim

import "time"

// EventKind identifies what happened during a frame.
type EventKind int

const (
	EventAttackStart EventKind = iota // player swing begins
	EventAttackEnd                    // swing animation finished
	EventHit                          // an actor took damage
	EventKnockback                    // visual knockback offset for Duration
	EventImpact                       // impact flash at Pos
	EventText                         // floating text
	EventKill                         // an enemy or pig died
	EventCollect                      // player picked up a collectible
	EventSpawn                        // entity entered the world
	EventDespawn                      // entity left the world for good
	EventRespawn                      // enemy came back
	EventNightFell
	EventDayBroke
	EventEnemyAttack
	EventGameOver
	EventPlacementFailed
)

func (k EventKind) String() string {
	switch k {
	case EventAttackStart:
		return "attack_start"
	case EventAttackEnd:
		return "attack_end"
	case EventHit:
		return "hit"
	case EventKnockback:
		return "knockback"
	case EventImpact:
		return "impact"
	case EventText:
		return "text"
	case EventKill:
		return "kill"
	case EventCollect:
		return "collect"
	case EventSpawn:
		return "spawn"
	case EventDespawn:
		return "despawn"
	case EventRespawn:
		return "respawn"
	case EventNightFell:
		return "night_fell"
	case EventDayBroke:
		return "day_broke"
	case EventEnemyAttack:
		return "enemy_attack"
	case EventGameOver:
		return "game_over"
	case EventPlacementFailed:
		return "placement_failed"
	default:
		return "unknown"
	}
}

// category groups kinds for the SimLog.
func (k EventKind) category() string {
	switch k {
	case EventAttackStart, EventAttackEnd, EventHit, EventKill, EventEnemyAttack:
		return "combat"
	case EventKnockback, EventImpact, EventText:
		return "effect"
	case EventCollect:
		return "pickup"
	case EventSpawn, EventDespawn, EventRespawn, EventPlacementFailed:
		return "population"
	case EventNightFell, EventDayBroke:
		return "cycle"
	case EventGameOver:
		return "session"
	default:
		return "misc"
	}
}

// Tone tells the effect layer how to style floating text.
type Tone int

const (
	ToneDamage Tone = iota
	ToneHeal
	ToneCoin
	ToneBonus
	ToneNotice
)

// Event is one state change the effect layer may want to show. The
// simulation itself never waits on an event.
type Event struct {
	Kind        EventKind
	Entity      EntityID
	Label       string
	Actor       ActorKind
	Pos         Vec
	Dir         Vec // knockback offset
	Amount      int
	Text        string
	Tone        Tone
	Collectible CollectibleKind
	Duration    time.Duration // how long a visual lasts
	At          time.Duration // session time of emission
}
