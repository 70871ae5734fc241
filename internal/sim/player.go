package sim

// Intent is one directional movement request resolved from held input.
type Intent int

const (
	IntentUp Intent = iota
	IntentLeft
	IntentDown
	IntentRight
)

func (i Intent) String() string {
	switch i {
	case IntentUp:
		return "up"
	case IntentLeft:
		return "left"
	case IntentDown:
		return "down"
	case IntentRight:
		return "right"
	default:
		return "unknown"
	}
}

// Cosmetic tiers for inventory slots.
const (
	TierDefault = "default"
	TierPremium = "premium"
)

// Inventory is the cosmetic state the store writes into.
type Inventory struct {
	Skin       string
	Stick      string
	BattlePass bool
}

// Player is the user-controlled actor.
type Player struct {
	Body
	Rotation  float64 // facing, radians
	Attacking bool
	Kills     int
	Coins     int
	Inventory Inventory
}

func newPlayer(id EntityID, pos Vec) *Player {
	p := &Player{
		Body:      newBody(id, ActorPlayer, pos, playerSize, playerMaxHealth, playerSpeed),
		Inventory: Inventory{Skin: TierDefault, Stick: TierDefault},
	}
	p.Label = "player"
	return p
}

// Move applies one intent. The candidate is clamped to the actor bounds and
// dropped if it would overlap an obstacle.
func (p *Player) Move(s *Session, in Intent) bool {
	cand := p.Pos
	switch in {
	case IntentUp:
		cand.Y -= p.Speed
	case IntentLeft:
		cand.X -= p.Speed
	case IntentDown:
		cand.Y += p.Speed
	case IntentRight:
		cand.X += p.Speed
	default:
		return false
	}
	return p.tryMove(s.Env, s.actorBounds(), cand)
}

// Rotate faces the player toward a world-space aim point.
func (p *Player) Rotate(aim Vec) {
	p.Rotation = HeadingTo(p.Pos, aim)
}

// Attack starts a swing. The single hit pass runs when the stick is extended
// at attackHitDelay; the attacking flag clears at attackDuration. A swing
// already in progress makes this a no-op.
func (p *Player) Attack(s *Session) bool {
	if p.Attacking || !p.Alive() {
		return false
	}
	p.Attacking = true
	s.emit(Event{Kind: EventAttackStart, Entity: p.ID, Label: p.Label, Actor: ActorPlayer,
		Pos: p.Pos, Dir: FromAngle(p.Rotation), Duration: attackDuration})

	s.sched.After(attackHitDelay, p.ID, "attack_hit", s.resolvePlayerAttack)
	s.sched.After(attackDuration, p.ID, "attack_end", func() {
		p.Attacking = false
		s.emit(Event{Kind: EventAttackEnd, Entity: p.ID, Label: p.Label, Actor: ActorPlayer, Pos: p.Pos})
	})
	return true
}

// Heal adds health up to the maximum.
func (p *Player) Heal(n int) {
	p.Health += n
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}
