package sim

import "fmt"

func damageText(n int) string {
	return fmt.Sprintf("-%d", n)
}

// resolvePlayerAttack is the single hit pass of a swing. Every live enemy
// and pig inside the stick's cone takes damage.
func (s *Session) resolvePlayerAttack() {
	p := s.Player
	if !p.Attacking || s.over {
		return
	}
	for _, e := range s.Enemies {
		if !e.Alive() {
			continue
		}
		if InReach(p.Pos, p.Rotation, e.Pos, playerRadius+stickRange, attackTolerance) {
			s.hitEnemy(e)
		}
	}
	for _, pg := range s.Pigs.Live() {
		if !pg.Alive() {
			continue
		}
		reach := playerRadius + stickRange + pg.Size.X/2
		if InReach(p.Pos, p.Rotation, pg.Center(), reach, attackTolerance) {
			s.hitPig(pg)
		}
	}
}

func (s *Session) hitEnemy(e *Enemy) {
	p := s.Player
	killed := e.TakeDamage(s, playerHitDamage)

	s.emit(Event{Kind: EventKnockback, Entity: e.ID, Label: e.Label, Actor: ActorEnemy,
		Dir: FromAngle(p.Rotation).Scale(knockbackOffset), Duration: knockbackDuration})
	s.emit(Event{Kind: EventImpact, Pos: e.Center(), Duration: impactDuration})
	s.emit(Event{Kind: EventText, Entity: e.ID, Text: damageText(playerHitDamage), Tone: ToneDamage,
		Pos: e.Pos.Add(Vec{15, -10}), Duration: textDuration})

	if !killed {
		return
	}
	s.awardKill()
	if s.rng.Float64() < s.odds.drop {
		kind := pickKind(s.rng, s.odds.dropCoin)
		drop := e.Pos
		if _, err := s.Env.SpawnCollectible(s, kind, &drop); err != nil {
			s.log.Warn("enemy drop failed", "enemy", e.Label, "err", err)
		}
	}
}

func (s *Session) hitPig(pg *Pig) {
	p := s.Player
	killed := pg.TakeDamage(s, playerHitDamage)
	s.emit(Event{Kind: EventImpact, Pos: pg.Center(), Duration: impactDuration})
	pg.knockback(s, FromAngle(p.Rotation))
	if killed {
		s.awardKill()
	}
}

func (s *Session) awardKill() {
	p := s.Player
	p.Kills++
	p.Coins += killReward
	s.emit(Event{Kind: EventText, Text: fmt.Sprintf("+%d Coins", killReward), Tone: ToneCoin,
		Pos: p.Pos.Add(Vec{0, -30}), Duration: textDuration})
}

// enemyAttack swings e's stick at the player. The caller has already
// made the range roll; the enemy turns to face the player, so the swing
// always lands.
func (s *Session) enemyAttack(e *Enemy) {
	p := s.Player
	e.Facing = HeadingTo(e.Pos, p.Pos)
	s.emit(Event{Kind: EventEnemyAttack, Entity: e.ID, Label: e.Label, Actor: ActorEnemy,
		Pos: e.Pos, Dir: FromAngle(e.Facing), Duration: attackDuration})
	s.damagePlayer(enemyDamage, FromAngle(e.Facing).Scale(knockbackOffset))
}

// damagePlayer applies damage to the player. Reaching zero health ends the
// session; there is no recovery.
func (s *Session) damagePlayer(amount int, knock Vec) {
	if s.over {
		return
	}
	p := s.Player
	p.Health -= amount
	s.emit(Event{Kind: EventHit, Entity: p.ID, Label: p.Label, Actor: ActorPlayer, Pos: p.Pos, Amount: amount})
	s.emit(Event{Kind: EventImpact, Pos: p.Center(), Duration: impactDuration})
	s.emit(Event{Kind: EventKnockback, Entity: p.ID, Label: p.Label, Actor: ActorPlayer, Dir: knock, Duration: knockbackDuration})
	s.emit(Event{Kind: EventText, Entity: p.ID, Text: damageText(amount), Tone: ToneDamage,
		Pos: p.Pos.Add(Vec{15, -10}), Duration: textDuration})
	if p.Health <= 0 {
		s.endSession()
	}
}
