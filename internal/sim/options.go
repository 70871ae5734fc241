package sim

import (
	"log/slog"
	"math/rand"

	"github.com/Garsondee/stick-survivor/internal/pkg/clock"
)

// optionKind controls the pass in which an option is applied.
type optionKind int

const (
	optInfra  optionKind = iota // seed, clock, logging: before anything is built
	optPlayer                   // player placement: before the camera first follows
	optWorld                    // explicit obstacles: before random population
	optActor                    // explicit actors and pickups: last
)

// Option configures a Session during New.
type Option struct {
	kind optionKind
	fn   func(*Session)
}

func (s *Session) apply(opts []Option, kind optionKind) {
	for _, o := range opts {
		if o.kind == kind {
			o.fn(s)
		}
	}
}

// WithSeed fixes the RNG seed for deterministic runs.
func WithSeed(seed int64) Option {
	return Option{optInfra, func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
	}}
}

// WithClock replaces the wall clock.
func WithClock(c clock.Clock) Option {
	return Option{optInfra, func(s *Session) {
		s.clock = c
	}}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return Option{optInfra, func(s *Session) {
		s.log = l
	}}
}

// WithSimLog mirrors every emitted event into sl.
func WithSimLog(sl *SimLog) Option {
	return Option{optInfra, func(s *Session) {
		s.simLog = sl
	}}
}

// WithoutPopulation skips the random obstacles, collectibles, enemies and
// pigs so a test can place exactly what it needs.
func WithoutPopulation() Option {
	return Option{optInfra, func(s *Session) {
		s.populate = false
	}}
}

// WithPlayerAt moves the player's starting position.
func WithPlayerAt(x, y float64) Option {
	return Option{optPlayer, func(s *Session) {
		s.Player.Pos = Vec{x, y}
	}}
}

// WithObstacle places an obstacle at (x, y).
func WithObstacle(x, y float64) Option {
	return Option{optWorld, func(s *Session) {
		s.Env.PlaceObstacle(s, Vec{x, y})
	}}
}

// WithEnemy adds an enemy at (x, y).
func WithEnemy(x, y float64) Option {
	return Option{optActor, func(s *Session) {
		pos := Vec{x, y}
		if _, err := s.AddEnemy(&pos); err != nil {
			s.log.Warn("WithEnemy", "err", err)
		}
	}}
}

// WithPig adds a pig at (x, y).
func WithPig(x, y float64) Option {
	return Option{optActor, func(s *Session) {
		pos := Vec{x, y}
		if _, err := s.Pigs.Spawn(s, &pos); err != nil {
			s.log.Warn("WithPig", "err", err)
		}
	}}
}

// WithCollectible drops a collectible of kind at (x, y).
func WithCollectible(kind CollectibleKind, x, y float64) Option {
	return Option{optActor, func(s *Session) {
		pos := Vec{x, y}
		if _, err := s.Env.SpawnCollectible(s, kind, &pos); err != nil {
			s.log.Warn("WithCollectible", "err", err)
		}
	}}
}

// WithPigSpawnDelay sets the initial pig spawn countdown in frames.
func WithPigSpawnDelay(frames int) Option {
	return Option{optActor, func(s *Session) {
		s.Pigs.spawnTimer = frames
	}}
}
