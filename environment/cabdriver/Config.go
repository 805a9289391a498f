package cabdriver

import (
	"fmt"
)

// Default configuration values for the cab driver environment
const (
	DefaultLocations    int     = 5
	DefaultHoursPerDay  int     = 24
	DefaultDaysPerWeek  int     = 7
	DefaultCost         float64 = 5 // fuel and other costs per hour
	DefaultRevenue      float64 = 9 // revenue per hour from a passenger
	DefaultMaxRequests  int     = 15
	DefaultDiscount     float64 = 1.0
	DefaultEpisodeHours int     = 24 * 30
)

// DefaultRequestMeans holds the mean number of requests received at
// each location in one hour. Entry i is the mean for location i+1.
var DefaultRequestMeans = []float64{2, 12, 4, 7, 8}

// Config configures a cab driver environment. A Config is a value and
// is never modified by the environment it configures, so differently
// configured environments may coexist.
type Config struct {
	// Number of locations, numbered 1, 2, ... Locations
	Locations int `yaml:"locations" json:"locations"`

	// Number of hourly time slots in a day, numbered from 0
	HoursPerDay int `yaml:"hours_per_day" json:"hours_per_day"`

	// Number of days in a week, numbered from 0
	DaysPerWeek int `yaml:"days_per_week" json:"days_per_week"`

	// Cost of operating the cab for one hour
	Cost float64 `yaml:"cost" json:"cost"`

	// Revenue earned for one hour of driving a passenger
	Revenue float64 `yaml:"revenue" json:"revenue"`

	// Poisson mean of the number of requests at each location
	RequestMeans []float64 `yaml:"request_means" json:"request_means"`

	// Maximum number of ride requests offered at once
	MaxRequests int `yaml:"max_requests" json:"max_requests"`

	Discount float64 `yaml:"discount" json:"discount"`

	// Number of driving hours after which an episode ends. Episodes
	// never end through elapsed hours if EpisodeHours <= 0.
	EpisodeHours int `yaml:"episode_hours" json:"episode_hours"`

	// Number of decisions after which an episode ends, regardless of
	// the hours elapsed. Ignored if EpisodeSteps <= 0.
	EpisodeSteps int `yaml:"episode_steps" json:"episode_steps"`
}

// DefaultConfig returns the default cab driver configuration: 5
// locations, 24 hours, 7 days, an hourly cost of 5, an hourly revenue
// of 9, and at most 15 requests
func DefaultConfig() Config {
	means := make([]float64, len(DefaultRequestMeans))
	copy(means, DefaultRequestMeans)

	return Config{
		Locations:    DefaultLocations,
		HoursPerDay:  DefaultHoursPerDay,
		DaysPerWeek:  DefaultDaysPerWeek,
		Cost:         DefaultCost,
		Revenue:      DefaultRevenue,
		RequestMeans: means,
		MaxRequests:  DefaultMaxRequests,
		Discount:     DefaultDiscount,
		EpisodeHours: DefaultEpisodeHours,
	}
}

// Validate returns an error wrapping ErrInvalidConfig if the Config
// cannot be used to construct an environment
func (c Config) Validate() error {
	switch {
	case c.Locations < 1:
		return fmt.Errorf("validate: locations = %d < 1: %w", c.Locations,
			ErrInvalidConfig)
	case c.HoursPerDay < 1:
		return fmt.Errorf("validate: hours per day = %d < 1: %w",
			c.HoursPerDay, ErrInvalidConfig)
	case c.DaysPerWeek < 1:
		return fmt.Errorf("validate: days per week = %d < 1: %w",
			c.DaysPerWeek, ErrInvalidConfig)
	case c.Cost < 0:
		return fmt.Errorf("validate: cost = %v < 0: %w", c.Cost,
			ErrInvalidConfig)
	case c.Revenue < 0:
		return fmt.Errorf("validate: revenue = %v < 0: %w", c.Revenue,
			ErrInvalidConfig)
	case c.MaxRequests < 0:
		return fmt.Errorf("validate: max requests = %d < 0: %w",
			c.MaxRequests, ErrInvalidConfig)
	case c.Discount < 0 || c.Discount > 1:
		return fmt.Errorf("validate: discount %v ∉ [0, 1]: %w", c.Discount,
			ErrInvalidConfig)
	case len(c.RequestMeans) != c.Locations:
		return fmt.Errorf("validate: %d request means for %d locations: %w",
			len(c.RequestMeans), c.Locations, ErrInvalidConfig)
	}

	for i, mean := range c.RequestMeans {
		if mean < 0 {
			return fmt.Errorf("validate: request mean %v < 0 at location "+
				"%d: %w", mean, i+1, ErrInvalidConfig)
		}
	}
	return nil
}

// Trips returns the number of distinct non-idle actions, which is the
// number of ordered pairs of distinct locations
func (c Config) Trips() int {
	return c.Locations * (c.Locations - 1)
}

// Features returns the length of an encoded state
func (c Config) Features() int {
	return c.Locations + c.HoursPerDay + c.DaysPerWeek
}

// AdvanceClock returns the hour and day reached after duration hours
// have elapsed from the argument hour and day. Hours wrap into the
// next day and days wrap around the week. Negative durations are
// treated as 0.
func (c Config) AdvanceClock(hour, day, duration int) (int, int) {
	if duration < 0 {
		duration = 0
	}

	total := hour + duration
	if total < c.HoursPerDay {
		return total, day
	}
	return total % c.HoursPerDay, (day + total/c.HoursPerDay) % c.DaysPerWeek
}

// AdvanceClock advances the clock as Config.AdvanceClock does for a
// 24 hour day and a 7 day week
func AdvanceClock(hour, day, duration int) (int, int) {
	return Config{
		HoursPerDay: DefaultHoursPerDay,
		DaysPerWeek: DefaultDaysPerWeek,
	}.AdvanceClock(hour, day, duration)
}
