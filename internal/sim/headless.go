package sim

import (
	"math/rand"
	"time"

	"github.com/Garsondee/stick-survivor/internal/pkg/clock"
)

// FrameDuration is the nominal display refresh used by headless runs.
const FrameDuration = time.Second / 60

// Controls is what an input source resolved for one frame.
type Controls struct {
	Held   []Intent
	Aim    *Vec // world space; nil keeps the current facing
	Attack bool
}

// Driver produces the controls for a frame.
type Driver func(s *Session, frame int) Controls

// Run drives s for up to frames frames against a manual clock, stepping it
// by step each frame and polling movement at the poller rate. It stops
// early when the session ends.
func Run(s *Session, clk *clock.Manual, frames int, step time.Duration, drive Driver) Report {
	poller := NewIntentPoller()
	poller.Due(clk.Now())
	for i := 0; i < frames && !s.Over(); i++ {
		c := Controls{}
		if drive != nil {
			c = drive(s, i)
		}
		if c.Aim != nil {
			s.AimWorld(*c.Aim)
		}
		if c.Attack {
			s.Attack()
		}
		clk.Advance(step)
		for n := poller.Due(clk.Now()); n > 0; n-- {
			s.MovePlayer(c.Held...)
		}
		s.Tick()
		s.Events()
	}
	return s.Report()
}

// Autopilot is a simple hunter: it walks toward the nearest live target,
// swings when one is in reach, and wanders otherwise.
func Autopilot(rng *rand.Rand) Driver {
	var wander []Intent
	return func(s *Session, frame int) Controls {
		p := s.Player
		target, ok := nearestTarget(s, 400)
		if !ok {
			if frame%90 == 0 {
				wander = randomIntents(rng)
			}
			return Controls{Held: wander}
		}
		return Controls{
			Held:   intentsToward(p.Pos, target, 20),
			Aim:    &target,
			Attack: p.Pos.Dist(target) < playerRadius+stickRange,
		}
	}
}

func nearestTarget(s *Session, within float64) (Vec, bool) {
	p := s.Player.Pos
	best, found := within, false
	var at Vec
	for _, e := range s.Enemies {
		if d := p.Dist(e.Pos); e.Alive() && d < best {
			best, at, found = d, e.Pos, true
		}
	}
	for _, pg := range s.Pigs.Live() {
		if d := p.Dist(pg.Center()); pg.Alive() && d < best {
			best, at, found = d, pg.Center(), true
		}
	}
	return at, found
}

func intentsToward(from, to Vec, deadband float64) []Intent {
	var out []Intent
	d := to.Sub(from)
	if d.X > deadband {
		out = append(out, IntentRight)
	} else if d.X < -deadband {
		out = append(out, IntentLeft)
	}
	if d.Y > deadband {
		out = append(out, IntentDown)
	} else if d.Y < -deadband {
		out = append(out, IntentUp)
	}
	return out
}

func randomIntents(rng *rand.Rand) []Intent {
	var out []Intent
	for _, in := range []Intent{IntentUp, IntentLeft, IntentDown, IntentRight} {
		if rng.Float64() < 0.3 {
			out = append(out, in)
		}
	}
	return out
}
