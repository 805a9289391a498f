package cabdriver

import (
	"fmt"

	"github.com/samuelfneumann/cabdriver/environment/cabdriver/timematrix"
)

// NextState computes the transition caused by taking action a in
// state s, using tm for all travel times. The transition depends on
// the kind of action:
//
//	Action				Effect
//	Idle				wait 1 hour at the current location
//	pickup == location	drive the passenger to drop
//	pickup != location	drive to pickup, then drive the passenger
//						to drop
//
// When the driver must first drive to the pickup location, the clock
// is advanced by the transit time before the ride time is looked up,
// so the ride departs at the hour and day of arrival. The next state's
// hour and day are obtained by advancing that clock by the ride time
// plus the wait time.
func (c *CabDriver) NextState(s State, a Action,
	tm *timematrix.TimeMatrix) (Transition, error) {
	if err := c.config.validState(s); err != nil {
		return Transition{}, fmt.Errorf("nextState: %w", err)
	}
	if err := c.config.validAction(a); err != nil {
		return Transition{}, fmt.Errorf("nextState: %w", err)
	}
	if err := tm.Validate(c.config.Locations, c.config.HoursPerDay,
		c.config.DaysPerWeek); err != nil {
		return Transition{}, fmt.Errorf("nextState: %w", err)
	}

	var wait, transit, ride int
	location, hour, day := s.Location, s.Hour, s.Day

	switch {
	case a.IsIdle():
		wait = 1

	case a.Pickup == location:
		var err error
		ride, err = tm.Duration(location, a.Drop, hour, day)
		if err != nil {
			return Transition{}, fmt.Errorf("nextState: %w", err)
		}
		location = a.Drop

	default:
		var err error
		transit, err = tm.Duration(location, a.Pickup, hour, day)
		if err != nil {
			return Transition{}, fmt.Errorf("nextState: %w", err)
		}
		hour, day = c.config.AdvanceClock(hour, day, transit)

		ride, err = tm.Duration(a.Pickup, a.Drop, hour, day)
		if err != nil {
			return Transition{}, fmt.Errorf("nextState: %w", err)
		}
		location = a.Drop
	}

	// Transit time has already been added to the clock
	hour, day = c.config.AdvanceClock(hour, day, ride+wait)

	return Transition{
		Next:    State{location, hour, day},
		Wait:    wait,
		Transit: transit,
		Ride:    ride,
	}, nil
}

// Reward returns the reward for taking action a in state s, using tm
// for all travel times. Hours spent with a passenger earn the
// configured revenue, and every hour spent, including waiting and
// driving to the pickup, incurs the configured cost.
func (c *CabDriver) Reward(s State, a Action,
	tm *timematrix.TimeMatrix) (float64, error) {
	t, err := c.NextState(s, a, tm)
	if err != nil {
		return 0, fmt.Errorf("reward: %w", err)
	}
	return c.reward(t), nil
}

// reward returns the reward for a transition
func (c *CabDriver) reward(t Transition) float64 {
	revenueTime := float64(t.Ride)
	idleTime := float64(t.Wait + t.Transit)

	return c.config.Revenue*revenueTime -
		c.config.Cost*(revenueTime+idleTime)
}
