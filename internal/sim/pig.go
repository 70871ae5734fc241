package sim

import "errors"

// ErrPopulationFull is returned when a spawn would exceed the cap.
var ErrPopulationFull = errors.New("population at cap")

// Pig is a passive animal. It wanders inside the world, flees from a nearby
// player and drops bacon when killed.
type Pig struct {
	Body
	TurnChance float64 // per-frame chance of an early direction change
}

func newPig(id EntityID, pos Vec) *Pig {
	return &Pig{
		Body:       newBody(id, ActorPig, pos, pigSize, pigMaxHealth, pigSpeed),
		TurnChance: pigTurnChance,
	}
}

// Update runs one frame of pig behaviour: wander, then flee if the player
// is close. A blocked wander step reverses direction; a blocked flee step
// just holds position.
func (pg *Pig) Update(s *Session) {
	if !pg.Alive() {
		return
	}
	pg.wander(s.rng, pg.TurnChance)

	world := s.Env.World()
	if !pg.tryMove(s.Env, world, pg.Pos.Add(pg.Dir.Scale(pg.Speed))) {
		pg.Dir = pg.Dir.Neg()
	}

	away := pg.Pos.Sub(s.Player.Pos)
	if dist := away.Len(); dist < pigFleeRadius && dist > 0 {
		pg.Dir = away.Scale(1 / dist)
		pg.tryMove(s.Env, world, pg.Pos.Add(pg.Dir.Scale(pg.Speed*pigFleeMul)))
	}
}

// TakeDamage subtracts amount and reports whether this hit killed the pig.
func (pg *Pig) TakeDamage(s *Session, amount int) bool {
	if !pg.Alive() {
		return false
	}
	pg.Health -= amount
	s.emit(Event{Kind: EventHit, Entity: pg.ID, Label: pg.Label, Actor: ActorPig, Pos: pg.Pos, Amount: amount})
	s.emit(Event{Kind: EventText, Entity: pg.ID, Text: damageText(amount), Tone: ToneDamage,
		Pos: pg.Pos.Add(Vec{20, -10}), Duration: textDuration})
	if pg.Health > 0 {
		return false
	}
	pg.die(s)
	return true
}

// die drops bacon where the pig fell and leaves the corpse visible until the
// removal timer fires. The manager stops updating it on the next frame.
func (pg *Pig) die(s *Session) {
	s.emit(Event{Kind: EventKill, Entity: pg.ID, Label: pg.Label, Actor: ActorPig, Pos: pg.Pos})
	drop := pg.Pos.Add(Vec{pigDropOffset, pigDropOffset})
	if _, err := s.Env.SpawnCollectible(s, Bacon, &drop); err != nil {
		s.log.Warn("bacon drop failed", "pig", pg.Label, "err", err)
	}
	s.Pigs.buryLater(s, pg)
}

// knockback shoves the pig along dir, world-clamped and obstacle-checked.
func (pg *Pig) knockback(s *Session, dir Vec) {
	pg.tryMove(s.Env, s.Env.World(), pg.Pos.Add(dir.Scale(pigKnockback)))
}
