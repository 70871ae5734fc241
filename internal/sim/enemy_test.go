package sim

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyChasesPlayer(t *testing.T) {
	s, clk := newTestSession(t, WithPlayerAt(500, 500), WithEnemy(600, 500))
	e := s.Enemies[0]

	step(s, clk, FrameDuration)
	assert.Equal(t, Vec{598.5, 500}, e.Pos)
	assert.Equal(t, Vec{-1, 0}, e.Dir)
	assert.InDelta(t, math.Pi, e.Facing, 1e-9)
}

func TestEnemyIgnoresDistantPlayer(t *testing.T) {
	s, clk := newTestSession(t, WithPlayerAt(500, 500), WithEnemy(900, 500))
	e := s.Enemies[0]

	for i := 0; i < 10; i++ {
		step(s, clk, FrameDuration)
	}
	// Wandering moves at most Speed*sqrt(2) a frame in any direction.
	assert.Less(t, e.Pos.Dist(Vec{900, 500}), 10*enemySpeedDay*math.Sqrt2+1e-9)
	assert.Greater(t, e.Pos.Dist(s.Player.Pos), enemyDetectDay)
}

func TestEnemyRespawnsAfterDelay(t *testing.T) {
	s, clk := newTestSession(t, WithPlayerAt(1500, 1500), WithEnemy(1200, 1200))
	e := s.Enemies[0]

	assert.True(t, e.TakeDamage(s, enemyMaxHealth))
	assert.False(t, e.TakeDamage(s, 10))
	dead := e.Pos

	step(s, clk, enemyRespawnDelay-time.Millisecond)
	assert.False(t, e.Alive())
	assert.Equal(t, dead, e.Pos, "dead enemies do not move")

	step(s, clk, time.Millisecond)
	assert.True(t, e.Alive())
	assert.Equal(t, enemyMaxHealth, e.Health)
	assert.Equal(t, 1, countKind(s.Events(), EventRespawn))
	vp := s.actorBounds()
	assert.Equal(t, e.Pos, vp.Clamp(e.Pos, e.Size))
}

func TestStaleRespawnTimerStillFires(t *testing.T) {
	s, clk := newTestSession(t, WithPlayerAt(1500, 1500), WithEnemy(1200, 1200))
	e := s.Enemies[0]

	require.True(t, e.TakeDamage(s, enemyMaxHealth))
	step(s, clk, 2*time.Second)

	// Revived by something else, then killed again: two timers are pending.
	e.Health = enemyMaxHealth
	require.True(t, e.TakeDamage(s, enemyMaxHealth))
	assert.Equal(t, []string{"respawn", "respawn"}, s.Pending(e.ID))

	step(s, clk, 3*time.Second)
	assert.True(t, e.Alive(), "the first timer restores the enemy early")
	assert.Equal(t, []string{"respawn"}, s.Pending(e.ID))
}

func TestEnemyAttackRangeMeasuredBeforeMove(t *testing.T) {
	s, clk := newTestSession(t, WithPlayerAt(500, 500), WithEnemy(561, 500))
	s.odds.enemyAttack = 1
	e := s.Enemies[0]

	step(s, clk, FrameDuration)
	assert.InDelta(t, 561-enemySpeedDay, e.Pos.X, 1e-9, "enemy closes in")
	assert.Less(t, e.Pos.Dist(s.Player.Pos), enemyAttackRange)
	assert.Equal(t, 0, countKind(s.Events(), EventEnemyAttack), "61 px before the move is out of range")

	step(s, clk, FrameDuration)
	assert.Equal(t, 1, countKind(s.Events(), EventEnemyAttack))
}
