package sim

import "fmt"

// Enemy is a hostile actor that wanders and chases the player when it
// comes within detection range. Chase is re-evaluated every frame, so an
// enemy at the edge of its range can flip between wander and chase.
type Enemy struct {
	Body
	Name           string
	DetectionRange float64
	Facing         float64 // where the stick points
}

func newEnemy(id EntityID, index int, pos Vec) *Enemy {
	e := &Enemy{
		Body:           newBody(id, ActorEnemy, pos, enemySize, enemyMaxHealth, enemySpeedDay),
		Name:           fmt.Sprintf("Player %d", index),
		DetectionRange: enemyDetectDay,
	}
	e.Label = fmt.Sprintf("enemy%d", index)
	return e
}

// Update runs one frame of enemy AI. Dead enemies wait for their respawn.
func (e *Enemy) Update(s *Session) {
	if !e.Alive() {
		return
	}
	e.wander(s.rng, 0)

	p := s.Player
	toPlayer := p.Pos.Sub(e.Pos)
	dist := toPlayer.Len()
	if dist < e.DetectionRange && dist > enemyChaseFloor {
		e.Dir = toPlayer.Scale(1 / dist)
		e.Facing = toPlayer.Heading()
	}

	e.tryMove(s.Env, s.actorBounds(), e.Pos.Add(e.Dir.Scale(e.Speed)))

	// The attack trigger uses the distance measured before the move.
	if dist < enemyAttackRange && s.rng.Float64() < s.odds.enemyAttack {
		s.enemyAttack(e)
	}
}

// TakeDamage subtracts amount and reports whether this hit killed the enemy.
// Hitting a dead enemy does nothing.
func (e *Enemy) TakeDamage(s *Session, amount int) bool {
	if !e.Alive() {
		return false
	}
	e.Health -= amount
	s.emit(Event{Kind: EventHit, Entity: e.ID, Label: e.Label, Actor: ActorEnemy, Pos: e.Pos, Amount: amount})
	if e.Health > 0 {
		return false
	}
	e.die(s)
	return true
}

// die marks the enemy dead and schedules its respawn.
func (e *Enemy) die(s *Session) {
	s.emit(Event{Kind: EventKill, Entity: e.ID, Label: e.Label, Actor: ActorEnemy, Pos: e.Pos})
	s.sched.After(enemyRespawnDelay, e.ID, "respawn", func() { e.respawn(s) })
}

// respawn restores health and moves the enemy to a fresh random position.
// The timer is never cancelled, so it restores the enemy whatever happened
// to it since death.
func (e *Enemy) respawn(s *Session) {
	e.Health = e.MaxHealth
	if pos, err := s.Env.findFree(s.rng, s.actorBounds(), e.Size, nil); err == nil {
		e.Pos = pos
	} else {
		s.log.Warn("enemy respawn kept old position", "enemy", e.Label, "err", err)
	}
	s.emit(Event{Kind: EventRespawn, Entity: e.ID, Label: e.Label, Actor: ActorEnemy, Pos: e.Pos})
	s.log.Debug("enemy respawned", "enemy", e.Label, "x", e.Pos.X, "y", e.Pos.Y)
}
