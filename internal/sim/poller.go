package sim

import "time"

// IntentPoller turns wall-clock time into fixed-rate movement polls,
// independent of how often frames are drawn.
type IntentPoller struct {
	Interval   time.Duration
	MaxCatchUp int // polls delivered at most per call after a stall

	last    time.Time
	started bool
}

// NewIntentPoller polls roughly 60 times a second.
func NewIntentPoller() *IntentPoller {
	return &IntentPoller{Interval: movePollInterval, MaxCatchUp: 4}
}

// Due returns how many polls became due since the previous call. The first
// call only starts the clock.
func (p *IntentPoller) Due(now time.Time) int {
	if !p.started {
		p.started = true
		p.last = now
		return 0
	}
	n := int(now.Sub(p.last) / p.Interval)
	if n <= 0 {
		return 0
	}
	p.last = p.last.Add(time.Duration(n) * p.Interval)
	if p.MaxCatchUp > 0 && n > p.MaxCatchUp {
		n = p.MaxCatchUp
	}
	return n
}
