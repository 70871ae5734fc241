package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntentPollerDue(t *testing.T) {
	p := NewIntentPoller()
	now := epoch

	assert.Equal(t, 0, p.Due(now), "first call starts the clock")

	now = now.Add(10 * time.Millisecond)
	assert.Equal(t, 0, p.Due(now))

	now = now.Add(6 * time.Millisecond)
	assert.Equal(t, 1, p.Due(now))

	now = now.Add(40 * time.Millisecond)
	assert.Equal(t, 2, p.Due(now), "remainder carries to the next call")

	now = now.Add(8 * time.Millisecond)
	assert.Equal(t, 1, p.Due(now))

	now = now.Add(time.Second)
	assert.Equal(t, 4, p.Due(now), "catch-up is capped after a stall")
	assert.Equal(t, 0, p.Due(now))
}
