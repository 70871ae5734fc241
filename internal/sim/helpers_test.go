package sim

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/stick-survivor/internal/config"
	"github.com/Garsondee/stick-survivor/internal/pkg/clock"
)

var epoch = time.Unix(1_700_000_000, 0)

// newTestSession builds an empty, deterministic session: no random
// population and no automatic pig spawns unless opts add them.
func newTestSession(t *testing.T, opts ...Option) (*Session, *clock.Manual) {
	t.Helper()
	clk := clock.NewManual(epoch)
	base := []Option{
		WithSeed(1),
		WithClock(clk),
		WithoutPopulation(),
		WithPigSpawnDelay(math.MaxInt32),
	}
	s, err := New(config.Default(), append(base, opts...)...)
	require.NoError(t, err)
	return s, clk
}

// step advances the clock by d and runs one frame.
func step(s *Session, clk *clock.Manual, d time.Duration) {
	clk.Advance(d)
	s.Tick()
}

func countKind(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func cfgCycle(s *Session) time.Duration {
	return s.Config.DayNightCycle
}

// assertNoPenetration checks that no actor overlaps an obstacle or leaves
// the world.
func assertNoPenetration(t *testing.T, s *Session) {
	t.Helper()
	world := s.Env.World()
	check := func(label string, b *Body) {
		assert.False(t, s.Env.Collides(b.Box()), "%s overlaps an obstacle at %v", label, b.Pos)
		assert.Equal(t, b.Pos, world.Clamp(b.Pos, b.Size), "%s left the world at %v", label, b.Pos)
	}
	check(s.Player.Label, &s.Player.Body)
	for _, e := range s.Enemies {
		check(e.Label, &e.Body)
	}
	for _, pg := range s.Pigs.Live() {
		check(pg.Label, &pg.Body)
	}
}
