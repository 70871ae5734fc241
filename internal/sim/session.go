// Package sim is the real-time simulation core of Stick Survivor: camera,
// environment, actors, melee combat and population, advanced one frame at
// a time by a Session. It has no rendering or input dependency; the
// front-end reads state and drains emitted events.
package sim

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/Garsondee/stick-survivor/internal/config"
	"github.com/Garsondee/stick-survivor/internal/pkg/clock"
)

// Session is the explicit context every update runs against. It is not
// safe for concurrent use; all calls come from the single update loop.
type Session struct {
	Config  config.Config
	Camera  *Camera
	Env     *Environment
	Player  *Player
	Enemies []*Enemy
	Pigs    *PigManager

	clock    clock.Clock
	start    time.Time
	now      time.Duration // session time as of the last clock read
	sched    *Scheduler
	rng      *rand.Rand
	odds     odds
	log      *slog.Logger
	simLog   *SimLog
	populate bool

	events []Event
	report Report
	frame  int
	nextID EntityID
	over   bool
}

// New builds a session: the player at the world centre, then obstacles,
// initial collectibles, enemies and pigs per cfg. Options are applied in
// ordered passes (infra, player, world, actors).
func New(cfg config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		Config:   cfg,
		clock:    clock.New(),
		odds:     defaultOdds,
		log:      slog.New(slog.DiscardHandler),
		populate: true,
	}
	s.apply(opts, optInfra)
	if s.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
	}
	s.start = s.clock.Now()
	s.sched = NewScheduler(func() time.Duration { return s.now })

	world := Vec{cfg.WorldWidth, cfg.WorldHeight}
	s.Camera = NewCamera(world, Vec{cfg.ScreenWidth, cfg.ScreenHeight})
	s.Env = newEnvironment(world, NewDayNight(cfg.DayNightCycle))
	s.Pigs = NewPigManager(cfg.PigCap)
	s.Player = newPlayer(s.newID(), world.Scale(0.5))
	s.apply(opts, optPlayer)
	s.Camera.Follow(s.Player.Pos)

	s.apply(opts, optWorld)
	if s.populate {
		s.populateWorld()
	}
	s.apply(opts, optActor)

	s.log.Info("session started",
		"world", world, "obstacles", len(s.Env.obstacles), "enemies", len(s.Enemies),
		"pigs", len(s.Pigs.pigs), "collectibles", len(s.Env.collectibles))
	return s, nil
}

func (s *Session) populateWorld() {
	cfg := s.Config
	for i := 0; i < cfg.ObstacleCount; i++ {
		if _, err := s.Env.AddObstacle(s); err != nil {
			s.log.Warn("obstacle skipped", "index", i, "err", err)
		}
	}
	for i := 0; i < cfg.InitialCollectibles; i++ {
		kind := pickKind(s.rng, s.odds.ambientCoin)
		if _, err := s.Env.SpawnCollectible(s, kind, nil); err != nil {
			s.log.Warn("initial collectible skipped", "index", i, "err", err)
		}
	}
	for i := 0; i < cfg.EnemyCount; i++ {
		if _, err := s.AddEnemy(nil); err != nil {
			s.log.Warn("enemy skipped", "index", i, "err", err)
		}
	}
	for i := 0; i < cfg.PigInitial; i++ {
		if _, err := s.Pigs.Spawn(s, nil); err != nil {
			s.log.Warn("pig skipped", "index", i, "err", err)
		}
	}
}

// AddEnemy creates an enemy at pos, or at a random free spot inside the
// actor bounds when pos is nil.
func (s *Session) AddEnemy(pos *Vec) (*Enemy, error) {
	at, err := s.Env.findFree(s.rng, s.actorBounds(), enemySize, pos)
	if err != nil {
		s.emit(Event{Kind: EventPlacementFailed, Actor: ActorEnemy})
		return nil, err
	}
	e := newEnemy(s.newID(), len(s.Enemies), at)
	if s.Env.DayNight.Night {
		e.Speed = enemySpeedNight
		e.DetectionRange = enemyDetectNight
	}
	s.Enemies = append(s.Enemies, e)
	s.emit(Event{Kind: EventSpawn, Entity: e.ID, Label: e.Label, Actor: ActorEnemy, Pos: e.Pos})
	return e, nil
}

// Tick advances one frame in fixed order: due timers, camera, environment,
// enemies, pigs. It does nothing once the session is over.
func (s *Session) Tick() {
	if s.over {
		return
	}
	s.refreshNow()
	s.sched.RunDue(s.now)
	if s.over {
		return
	}
	s.Camera.Follow(s.Player.Pos)
	s.Env.Update(s)
	for _, e := range s.Enemies {
		e.Update(s)
		if s.over {
			return
		}
	}
	s.Pigs.Update(s)
	s.frame++
	s.report.Frames = s.frame
}

// MovePlayer applies held directional intents, each as its own move.
func (s *Session) MovePlayer(intents ...Intent) {
	if s.over {
		return
	}
	for _, in := range intents {
		s.Player.Move(s, in)
	}
}

// Aim turns the player toward a screen-space pointer position.
func (s *Session) Aim(screen Vec) {
	s.AimWorld(s.Camera.ScreenToWorld(screen))
}

// AimWorld turns the player toward a world-space point.
func (s *Session) AimWorld(world Vec) {
	if s.over {
		return
	}
	s.Player.Rotate(world)
}

// Attack starts a player swing if none is in progress.
func (s *Session) Attack() bool {
	if s.over {
		return false
	}
	s.refreshNow()
	return s.Player.Attack(s)
}

// Events returns the events emitted since the last call and clears them.
func (s *Session) Events() []Event {
	out := s.events
	s.events = nil
	return out
}

// Over reports whether the player has been defeated.
func (s *Session) Over() bool {
	return s.over
}

// Frame returns the number of completed frames.
func (s *Session) Frame() int {
	return s.frame
}

// Elapsed returns session time as of the last tick or attack.
func (s *Session) Elapsed() time.Duration {
	return s.now
}

// Pending lists scheduled timer kinds waiting for an entity.
func (s *Session) Pending(id EntityID) []string {
	return s.sched.Pending(id)
}

// SimLog returns the attached log, or nil.
func (s *Session) SimLog() *SimLog {
	return s.simLog
}

// Report summarises the session so far.
func (s *Session) Report() Report {
	r := s.report
	r.Elapsed = s.now
	r.Health = s.Player.Health
	r.Kills = s.Player.Kills
	r.Coins = s.Player.Coins
	r.Over = s.over
	return r
}

// actorBounds is the clamp rectangle for player and enemy moves. In
// viewport mode it is a screen-sized rectangle pinned at the world origin;
// it does not follow the camera.
func (s *Session) actorBounds() Rect {
	if s.Config.BoundsMode == config.BoundsWorld {
		return s.Env.World()
	}
	return RectAt(Vec{}, s.Camera.Screen())
}

func (s *Session) refreshNow() {
	s.now = s.clock.Now().Sub(s.start)
}

func (s *Session) newID() EntityID {
	s.nextID++
	return s.nextID
}

func (s *Session) emit(e Event) {
	e.At = s.now
	s.events = append(s.events, e)
	s.report.observe(e)
	if s.simLog != nil {
		s.simLog.record(s.frame, e)
	}
}

func (s *Session) endSession() {
	if s.over {
		return
	}
	s.over = true
	s.emit(Event{Kind: EventGameOver, Entity: s.Player.ID, Label: s.Player.Label, Actor: ActorPlayer,
		Text: "Game Over! You were defeated.", Tone: ToneNotice})
	s.log.Info("game over", "frame", s.frame, "kills", s.Player.Kills, "coins", s.Player.Coins)
}
