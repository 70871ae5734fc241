package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsInDueOrder(t *testing.T) {
	var now time.Duration
	s := NewScheduler(func() time.Duration { return now })

	var fired []string
	s.After(300*time.Millisecond, 1, "c", func() { fired = append(fired, "c") })
	s.After(150*time.Millisecond, 1, "a", func() { fired = append(fired, "a") })
	s.After(150*time.Millisecond, 2, "b", func() { fired = append(fired, "b") })

	assert.Equal(t, 0, s.RunDue(149*time.Millisecond))
	assert.Equal(t, 2, s.RunDue(150*time.Millisecond))
	assert.Equal(t, []string{"a", "b"}, fired, "equal due times fire in scheduling order")
	assert.Equal(t, 1, s.RunDue(time.Second))
	assert.Equal(t, []string{"a", "b", "c"}, fired)
	assert.Equal(t, 0, s.Len())
}

func TestSchedulerCallbackSchedulesAgain(t *testing.T) {
	var now time.Duration
	s := NewScheduler(func() time.Duration { return now })

	count := 0
	var again func()
	again = func() {
		count++
		if count < 3 {
			s.After(time.Second, 7, "again", again)
		}
	}
	s.After(time.Second, 7, "again", again)

	for now = 0; now <= 5*time.Second; now += 500 * time.Millisecond {
		s.RunDue(now)
	}
	// Follow-up timers are relative to the time read at scheduling, which
	// is the tick that fired the parent.
	assert.Equal(t, 3, count)
}

func TestSchedulerPending(t *testing.T) {
	s := NewScheduler(func() time.Duration { return 0 })
	s.After(time.Second, 1, "respawn", func() {})
	s.After(time.Second, 2, "remove", func() {})
	s.After(2*time.Second, 1, "respawn", func() {})

	assert.ElementsMatch(t, []string{"respawn", "respawn"}, s.Pending(1))
	assert.Equal(t, []string{"remove"}, s.Pending(2))
	assert.Empty(t, s.Pending(3))

	s.RunDue(time.Second)
	assert.Equal(t, []string{"respawn"}, s.Pending(1))
}
