package sim

import "time"

// DayNight flips between day and night once a full cycle has elapsed since
// the last flip. The flip is a discrete event.
type DayNight struct {
	Night      bool
	PhaseStart time.Duration
	Cycle      time.Duration
}

// NewDayNight starts in daytime at session time zero.
func NewDayNight(cycle time.Duration) DayNight {
	return DayNight{Cycle: cycle}
}

// Update flips the phase when elapsed-PhaseStart reaches the cycle length
// and reports whether it did.
func (d *DayNight) Update(elapsed time.Duration) bool {
	if elapsed-d.PhaseStart < d.Cycle {
		return false
	}
	d.Night = !d.Night
	d.PhaseStart = elapsed
	return true
}

// Phase names the current phase.
func (d *DayNight) Phase() string {
	if d.Night {
		return "night"
	}
	return "day"
}
