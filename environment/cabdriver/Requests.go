package cabdriver

import (
	"fmt"

	"gonum.org/v1/gonum/stat/sampleuv"
)

// Requests samples the ride requests available to a driver in state s.
//
// The number of requests is drawn from a Poisson distribution whose
// mean is the configured request mean of the driver's location, and
// is then capped at the configured maximum. That many distinct trips
// are drawn uniformly without replacement from the action space. The
// idle action, index 0, is always appended last since the driver may
// always decline every request.
//
// Requests returns the action space indices of the sampled actions
// and the actions themselves. If the number of requests drawn exceeds
// the number of distinct trips, an error wrapping ErrOversample is
// returned instead.
func (c *CabDriver) Requests(s State) ([]int, []Action, error) {
	if err := c.config.validState(s); err != nil {
		return nil, nil, fmt.Errorf("requests: %w", err)
	}

	count := int(c.requests[s.Location-1].Rand())
	if count > c.config.MaxRequests {
		count = c.config.MaxRequests
	}

	if trips := c.config.Trips(); count > trips {
		return nil, nil, fmt.Errorf("requests: %d requests drawn at "+
			"location %d but only %d trips exist: %w", count, s.Location,
			trips, ErrOversample)
	}

	// Trips occupy action space indices (1, 2, ... trips). Sampling
	// panics on an empty destination, and a draw of 0 leaves only idle.
	indices := make([]int, count, count+1)
	if count > 0 {
		sampleuv.WithoutReplacement(indices, c.config.Trips(), c.source)
	}
	for i := range indices {
		indices[i]++
	}
	indices = append(indices, 0)

	actions := make([]Action, len(indices))
	for i, index := range indices {
		actions[i] = c.actions[index]
	}

	return indices, actions, nil
}
