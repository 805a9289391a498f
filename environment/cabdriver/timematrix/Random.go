package timematrix

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Random returns a TimeMatrix with travel times drawn uniformly from
// (1, 2, ... maxHours). Travel times from a location to itself are 0.
func Random(locations, hours, days, maxHours int,
	source rand.Source) (*TimeMatrix, error) {
	if maxHours < 1 {
		return nil, fmt.Errorf("random: maxHours = %d must be positive",
			maxHours)
	}
	rng := rand.New(source)

	backing := make([]float64, locations*locations*hours*days)
	idx := 0
	for i := 0; i < locations; i++ {
		for j := 0; j < locations; j++ {
			for h := 0; h < hours; h++ {
				for d := 0; d < days; d++ {
					if i != j {
						backing[idx] = float64(1 + rng.Intn(maxHours))
					}
					idx++
				}
			}
		}
	}

	return New(backing, locations, hours, days)
}

// Constant returns a TimeMatrix in which every trip between distinct
// locations takes the argument number of hours
func Constant(locations, hours, days, duration int) (*TimeMatrix, error) {
	backing := make([]float64, locations*locations*hours*days)
	stride := hours * days
	for i := 0; i < locations; i++ {
		for j := 0; j < locations; j++ {
			if i == j {
				continue
			}
			start := (i*locations + j) * stride
			for k := start; k < start+stride; k++ {
				backing[k] = float64(duration)
			}
		}
	}

	return New(backing, locations, hours, days)
}

// FromFunc returns a TimeMatrix whose travel time from location from
// to location to, departing at hour on day, is f(from, to, hour, day).
// Locations passed to f are numbered from 1.
func FromFunc(locations, hours, days int,
	f func(from, to, hour, day int) float64) (*TimeMatrix, error) {
	backing := make([]float64, locations*locations*hours*days)
	idx := 0
	for i := 0; i < locations; i++ {
		for j := 0; j < locations; j++ {
			for h := 0; h < hours; h++ {
				for d := 0; d < days; d++ {
					backing[idx] = f(i+1, j+1, h, d)
					idx++
				}
			}
		}
	}

	return New(backing, locations, hours, days)
}
