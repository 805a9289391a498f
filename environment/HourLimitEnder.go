package environment

import "github.com/samuelfneumann/cabdriver/timestep"

// HourLimit implements the Ender interface to end episodes once the
// total number of hours elapsed in the episode reaches a limit
type HourLimit struct {
	episodeHours int
}

// NewHourLimit creates and returns a new hour limit
func NewHourLimit(episodeHours int) HourLimit {
	return HourLimit{episodeHours}
}

// End ends the episode once the argument TimeStep's elapsed hours
// reach the limit. An episode with a non-positive limit never ends
// through this Ender.
func (h HourLimit) End(t *timestep.TimeStep) bool {
	if h.episodeHours > 0 && t.Hours >= h.episodeHours {
		t.StepType = timestep.Last
		t.SetEnd(timestep.HourLimit)
		return true
	}
	return false
}
