package sim

import (
	"fmt"
	"math/rand"
)

// EntityID identifies anything living in a session.
type EntityID int

// ActorKind distinguishes the actor variants.
type ActorKind int

const (
	ActorNone ActorKind = iota
	ActorPlayer
	ActorEnemy
	ActorPig
)

func (k ActorKind) String() string {
	switch k {
	case ActorPlayer:
		return "player"
	case ActorEnemy:
		return "enemy"
	case ActorPig:
		return "pig"
	default:
		return "--"
	}
}

// Body is the state every actor shares: a box that moves, has health and
// collides with obstacles.
type Body struct {
	ID        EntityID
	Label     string
	Kind      ActorKind
	Pos       Vec // top-left of the bounding box
	Size      Vec
	Health    int
	MaxHealth int
	Speed     float64
	Dir       Vec // current wander/chase direction

	wanderTimer int // frames until a new random direction
}

func newBody(id EntityID, kind ActorKind, pos, size Vec, health int, speed float64) Body {
	return Body{
		ID:        id,
		Label:     fmt.Sprintf("%s%d", kind, id),
		Kind:      kind,
		Pos:       pos,
		Size:      size,
		Health:    health,
		MaxHealth: health,
		Speed:     speed,
	}
}

// Alive reports whether health is above zero.
func (b *Body) Alive() bool {
	return b.Health > 0
}

// Box returns the bounding box at the current position.
func (b *Body) Box() Rect {
	return RectAt(b.Pos, b.Size)
}

// Center returns the middle of the bounding box.
func (b *Body) Center() Vec {
	return b.Box().Center()
}

// wander counts down the direction timer and picks a new random direction in
// [-1,1]² when it runs out. turnChance adds a per-frame chance of turning early.
func (b *Body) wander(rng *rand.Rand, turnChance float64) {
	b.wanderTimer--
	if b.wanderTimer <= 0 || (turnChance > 0 && rng.Float64() < turnChance) {
		b.wanderTimer = rng.Intn(wanderSpan) + wanderMin
		b.Dir = Vec{
			X: (rng.Float64() - 0.5) * 2,
			Y: (rng.Float64() - 0.5) * 2,
		}
	}
}

// tryMove clamps cand into bounds and commits it unless the box would overlap
// an obstacle. It reports whether the body moved.
func (b *Body) tryMove(env *Environment, bounds Rect, cand Vec) bool {
	cand = bounds.Clamp(cand, b.Size)
	if env.Collides(RectAt(cand, b.Size)) {
		return false
	}
	b.Pos = cand
	return true
}
