package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntentsToward(t *testing.T) {
	tests := []struct {
		name string
		to   Vec
		want []Intent
	}{
		{"inside deadband", Vec{5, -5}, nil},
		{"right", Vec{100, 0}, []Intent{IntentRight}},
		{"up left", Vec{-50, -50}, []Intent{IntentLeft, IntentUp}},
		{"down", Vec{0, 30}, []Intent{IntentDown}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, intentsToward(Vec{}, tt.to, 20))
		})
	}
}

func TestAutopilotSwingsAtCloseTarget(t *testing.T) {
	s, _ := newTestSession(t, WithPlayerAt(500, 500), WithEnemy(560, 500))
	drive := Autopilot(rand.New(rand.NewSource(1))) // #nosec G404 -- test only

	c := drive(s, 0)
	require.NotNil(t, c.Aim)
	assert.Equal(t, Vec{560, 500}, *c.Aim)
	assert.True(t, c.Attack)
	assert.Equal(t, []Intent{IntentRight}, c.Held)
}

func TestAutopilotWandersWithoutTargets(t *testing.T) {
	s, _ := newTestSession(t)
	drive := Autopilot(rand.New(rand.NewSource(1))) // #nosec G404 -- test only

	c := drive(s, 0)
	assert.Nil(t, c.Aim)
	assert.False(t, c.Attack)
}
