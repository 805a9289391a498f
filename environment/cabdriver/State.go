package cabdriver

import "fmt"

// State is the state of the cab driver: where the driver is and when
type State struct {
	Location int // in (1, 2, ... locations)
	Hour     int // hour of the day, in (0, 1, ... hours-1)
	Day      int // day of the week, in (0, 1, ... days-1)
}

func (s State) String() string {
	return fmt.Sprintf("(location %d, hour %d, day %d)", s.Location, s.Hour,
		s.Day)
}

// Action is a ride request: drive to Pickup, then take a passenger to
// Drop. The zero Action is Idle.
type Action struct {
	Pickup int
	Drop   int
}

// Idle is the action of declining all ride requests for one hour
var Idle = Action{0, 0}

// IsIdle returns whether the action is the idle action
func (a Action) IsIdle() bool {
	return a == Idle
}

func (a Action) String() string {
	if a.IsIdle() {
		return "idle"
	}
	return fmt.Sprintf("%d -> %d", a.Pickup, a.Drop)
}

// Transition breaks one environmental step down into the next state
// and the hours spent waiting, driving to a pickup, and driving a
// passenger
type Transition struct {
	Next    State
	Wait    int
	Transit int
	Ride    int
}

// Hours returns the total number of hours taken by the transition
func (t Transition) Hours() int {
	return t.Wait + t.Transit + t.Ride
}

// validState returns an error if s is not in the state space
func (c Config) validState(s State) error {
	if s.Location < 1 || s.Location > c.Locations {
		return fmt.Errorf("location %d ∉ [1, %d]: %w", s.Location,
			c.Locations, ErrInvalidState)
	}
	if s.Hour < 0 || s.Hour >= c.HoursPerDay {
		return fmt.Errorf("hour %d ∉ [0, %d]: %w", s.Hour, c.HoursPerDay-1,
			ErrInvalidState)
	}
	if s.Day < 0 || s.Day >= c.DaysPerWeek {
		return fmt.Errorf("day %d ∉ [0, %d]: %w", s.Day, c.DaysPerWeek-1,
			ErrInvalidState)
	}
	return nil
}

// validAction returns an error if a is not in the action space
func (c Config) validAction(a Action) error {
	if a.IsIdle() {
		return nil
	}
	if a.Pickup < 1 || a.Pickup > c.Locations || a.Drop < 1 ||
		a.Drop > c.Locations {
		return fmt.Errorf("action %v: locations ∉ [1, %d]: %w", a,
			c.Locations, ErrInvalidAction)
	}
	if a.Pickup == a.Drop {
		return fmt.Errorf("action %v: pickup equals drop: %w", a,
			ErrInvalidAction)
	}
	return nil
}
