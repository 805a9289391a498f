package cabdriver

import "errors"

var (
	// ErrInvalidState is returned when a state lies outside the state
	// space of an environment
	ErrInvalidState = errors.New("cabdriver: invalid state")

	// ErrInvalidAction is returned when an action lies outside the
	// action space of an environment
	ErrInvalidAction = errors.New("cabdriver: invalid action")

	// ErrOversample is returned when more distinct ride requests are
	// drawn than there are distinct trips between locations
	ErrOversample = errors.New("cabdriver: more requests than trips")

	// ErrInvalidConfig is returned when a Config cannot be used to
	// construct an environment
	ErrInvalidConfig = errors.New("cabdriver: invalid config")
)
