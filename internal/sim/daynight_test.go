package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayNightFlipsAtBoundary(t *testing.T) {
	d := NewDayNight(60 * time.Second)
	var got []bool
	for _, ms := range []int{0, 59999, 60001} {
		d.Update(time.Duration(ms) * time.Millisecond)
		got = append(got, d.Night)
	}
	assert.Equal(t, []bool{false, false, true}, got)
	assert.Equal(t, 60001*time.Millisecond, d.PhaseStart)
}

func TestDayNightFlipsOncePerCycle(t *testing.T) {
	d := NewDayNight(10 * time.Second)
	flips := 0
	for ms := 0; ms <= 35_000; ms += 16 {
		if d.Update(time.Duration(ms) * time.Millisecond) {
			flips++
		}
	}
	assert.Equal(t, 3, flips)
	assert.True(t, d.Night)
	assert.Equal(t, "night", d.Phase())
}
