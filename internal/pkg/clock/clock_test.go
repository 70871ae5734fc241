package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualAdvance(t *testing.T) {
	start := time.Unix(1000, 0)
	c := NewManual(start)
	assert.Equal(t, start, c.Now())

	c.Advance(150 * time.Millisecond)
	c.Advance(150 * time.Millisecond)
	assert.Equal(t, 300*time.Millisecond, c.Now().Sub(start))
}

func TestRealMovesForward(t *testing.T) {
	c := New()
	a := c.Now()
	b := c.Now()
	assert.False(t, b.Before(a))
}
