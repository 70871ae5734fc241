package sim

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrPlacementExhausted is returned when no free position was found within
// maxPlacementAttempts candidates.
var ErrPlacementExhausted = errors.New("placement attempts exhausted")

// Obstacle is a static box that blocks movement.
type Obstacle struct {
	ID  EntityID
	Box Rect
}

// CollectibleKind is the closed set of pickups.
type CollectibleKind int

const (
	Coin CollectibleKind = iota
	Health
	Bacon // dropped by pigs: heals and pays
)

func (k CollectibleKind) String() string {
	switch k {
	case Coin:
		return "coin"
	case Health:
		return "health"
	case Bacon:
		return "bacon"
	default:
		return "unknown"
	}
}

// pickKind rolls Coin with probability coinShare, Health otherwise.
func pickKind(rng *rand.Rand, coinShare float64) CollectibleKind {
	if rng.Float64() < coinShare {
		return Coin
	}
	return Health
}

// Collectible is a pickup lying in the world.
type Collectible struct {
	ID        EntityID
	Kind      CollectibleKind
	Box       Rect
	Collected bool
}

// Environment owns the obstacles, the collectibles and the day/night cycle.
type Environment struct {
	DayNight DayNight

	world        Rect
	obstacles    []Obstacle
	collectibles []*Collectible
}

func newEnvironment(world Vec, cycle DayNight) *Environment {
	return &Environment{
		DayNight: cycle,
		world:    RectAt(Vec{}, world),
	}
}

// World returns the world rectangle.
func (env *Environment) World() Rect {
	return env.world
}

// Obstacles returns the placed obstacles.
func (env *Environment) Obstacles() []Obstacle {
	return env.obstacles
}

// Collectibles returns the active collectibles in insertion order.
func (env *Environment) Collectibles() []*Collectible {
	return env.collectibles
}

// Collides reports whether box overlaps any obstacle.
func (env *Environment) Collides(box Rect) bool {
	for i := range env.obstacles {
		if box.Overlaps(env.obstacles[i].Box) {
			return true
		}
	}
	return false
}

// CheckObstacleCollisions reports whether a box of size at (x, y) would
// overlap an obstacle. It never mutates state.
func (env *Environment) CheckObstacleCollisions(size Vec, x, y float64) bool {
	return env.Collides(RectAt(Vec{x, y}, size))
}

// AddObstacle places an obstacle at a random position whose centre is at
// least obstacleClearance from the player. The retry is bounded.
func (env *Environment) AddObstacle(s *Session) (Obstacle, error) {
	span := env.world.W - obstacleSize.X
	spanY := env.world.H - obstacleSize.Y
	for i := 0; i < maxPlacementAttempts; i++ {
		pos := Vec{s.rng.Float64() * span, s.rng.Float64() * spanY}
		if RectAt(pos, obstacleSize).Center().Dist(s.Player.Pos) < obstacleClearance {
			continue
		}
		return env.PlaceObstacle(s, pos), nil
	}
	s.emit(Event{Kind: EventPlacementFailed, Text: "obstacle"})
	return Obstacle{}, fmt.Errorf("obstacle: %w", ErrPlacementExhausted)
}

// PlaceObstacle puts an obstacle at an exact position.
func (env *Environment) PlaceObstacle(s *Session, pos Vec) Obstacle {
	o := Obstacle{ID: s.newID(), Box: RectAt(pos, obstacleSize)}
	env.obstacles = append(env.obstacles, o)
	return o
}

// SpawnCollectible creates a collectible at pos, or at a random position when
// pos is nil. A position inside an obstacle falls back to random candidates.
func (env *Environment) SpawnCollectible(s *Session, kind CollectibleKind, pos *Vec) (*Collectible, error) {
	at, err := env.findFree(s.rng, env.world, collectibleSize, pos)
	if err != nil {
		s.emit(Event{Kind: EventPlacementFailed, Collectible: kind})
		return nil, fmt.Errorf("collectible %s: %w", kind, err)
	}
	c := &Collectible{ID: s.newID(), Kind: kind, Box: RectAt(at, collectibleSize)}
	env.collectibles = append(env.collectibles, c)
	s.emit(Event{Kind: EventSpawn, Entity: c.ID, Collectible: kind, Pos: at})
	return c, nil
}

// CheckCollectibleCollisions collects every collectible overlapping the
// player this frame, in insertion order, and applies each effect. It
// returns how many were collected.
func (env *Environment) CheckCollectibleCollisions(s *Session) int {
	p := s.Player
	box := p.Box()
	kept := env.collectibles[:0]
	collected := 0
	for _, c := range env.collectibles {
		if c.Collected || !box.Overlaps(c.Box) {
			kept = append(kept, c)
			continue
		}
		c.Collected = true
		collected++
		env.applyCollectible(s, c)
	}
	for i := len(kept); i < len(env.collectibles); i++ {
		env.collectibles[i] = nil
	}
	env.collectibles = kept
	return collected
}

func (env *Environment) applyCollectible(s *Session, c *Collectible) {
	p := s.Player
	var text string
	var tone Tone
	switch c.Kind {
	case Health:
		p.Heal(healthPackHeal)
		text, tone = fmt.Sprintf("+%d Health", healthPackHeal), ToneHeal
	case Coin:
		p.Coins += coinValue
		text, tone = fmt.Sprintf("+%d Coins", coinValue), ToneCoin
	case Bacon:
		p.Heal(baconHeal)
		p.Coins += baconCoins
		text, tone = fmt.Sprintf("+%d Health & Coins", baconHeal), ToneBonus
	}
	s.emit(Event{Kind: EventCollect, Entity: c.ID, Collectible: c.Kind, Pos: c.Box.Origin()})
	s.emit(Event{Kind: EventText, Text: text, Tone: tone, Pos: p.Pos.Add(Vec{0, -20}), Duration: textDuration})
}

// Update runs the day/night check, collects pickups, then rolls the small
// per-frame chance of an ambient spawn.
func (env *Environment) Update(s *Session) {
	if env.DayNight.Update(s.now) {
		if env.DayNight.Night {
			env.nightFalls(s)
		} else {
			env.dayBreaks(s)
		}
	}

	env.CheckCollectibleCollisions(s)

	if s.rng.Float64() < s.odds.ambient {
		kind := pickKind(s.rng, s.odds.ambientCoin)
		if _, err := env.SpawnCollectible(s, kind, nil); err != nil {
			s.log.Warn("ambient spawn failed", "err", err)
		}
	}
}

func (env *Environment) nightFalls(s *Session) {
	for _, e := range s.Enemies {
		e.Speed = enemySpeedNight
		e.DetectionRange = enemyDetectNight
	}
	s.emit(Event{Kind: EventNightFell, Text: "Night has fallen! Watch out for enemies!", Tone: ToneNotice, Duration: noticeDuration})
	s.log.Info("night fell", "elapsed", s.now)
}

func (env *Environment) dayBreaks(s *Session) {
	for _, e := range s.Enemies {
		e.Speed = enemySpeedDay
		e.DetectionRange = enemyDetectDay
	}
	s.emit(Event{Kind: EventDayBroke, Text: "Dawn breaks! The jungle stirs...", Tone: ToneNotice, Duration: noticeDuration})
	s.log.Info("day broke", "elapsed", s.now)

	if _, err := env.SpawnCollectible(s, Coin, nil); err != nil {
		s.log.Warn("dawn coin failed", "err", err)
	}
	if s.rng.Float64() < dawnHealthChance {
		if _, err := env.SpawnCollectible(s, Health, nil); err != nil {
			s.log.Warn("dawn health pack failed", "err", err)
		}
	}
}

// findFree returns a position for a box of size inside region that does
// not overlap an obstacle. A preferred position is tried first.
func (env *Environment) findFree(rng *rand.Rand, region Rect, size Vec, preferred *Vec) (Vec, error) {
	if preferred != nil {
		p := region.Clamp(*preferred, size)
		if !env.Collides(RectAt(p, size)) {
			return p, nil
		}
	}
	for i := 0; i < maxPlacementAttempts; i++ {
		p := Vec{
			X: region.X + rng.Float64()*(region.W-size.X),
			Y: region.Y + rng.Float64()*(region.H-size.Y),
		}
		if !env.Collides(RectAt(p, size)) {
			return p, nil
		}
	}
	return Vec{}, ErrPlacementExhausted
}
