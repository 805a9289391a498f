// Package envconfig provides configuration structs for configuring
// environments with default parameters. Environment configurations in
// this package are YAML and JSON serializable.
package envconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samuelfneumann/cabdriver/environment/cabdriver"
	"github.com/samuelfneumann/cabdriver/environment/cabdriver/timematrix"
	ts "github.com/samuelfneumann/cabdriver/timestep"
	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	CabDriver EnvName = "CabDriver"
)

// Config implements a specific configuration of a specific environment
type Config struct {
	Environment EnvName          `yaml:"environment" json:"environment"`
	CabDriver   cabdriver.Config `yaml:"cabdriver" json:"cabdriver"`

	// Path to a .npy time matrix. If empty, a random time matrix with
	// travel times in (1, 2, ... MaxTravelHours) is generated.
	TimeMatrix     string `yaml:"time_matrix" json:"time_matrix"`
	MaxTravelHours int    `yaml:"max_travel_hours" json:"max_travel_hours"`
}

// NewConfig returns a new environment Config for the cab driver
// environment with default parameters and a random time matrix
func NewConfig() Config {
	return Config{
		Environment:    CabDriver,
		CabDriver:      cabdriver.DefaultConfig(),
		MaxTravelHours: 11,
	}
}

// Load reads a Config from the file at path. Files ending in .json are
// decoded as JSON, all others as YAML. Fields missing from the file
// keep the values of NewConfig.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load: could not read config: %v", err)
	}

	c := NewConfig()

	// Decoding into a non-empty slice would keep the default means
	// when the file supplies fewer of them
	c.CabDriver.RequestMeans = nil

	if strings.EqualFold(filepath.Ext(path), ".json") {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&c)
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&c)
	}
	if err != nil {
		return Config{}, fmt.Errorf("load %v: %v", path, err)
	}

	if c.CabDriver.RequestMeans == nil {
		c.CabDriver.RequestMeans = NewConfig().CabDriver.RequestMeans
	}

	if err := c.CabDriver.Validate(); err != nil {
		return Config{}, fmt.Errorf("load %v: %w", path, err)
	}
	return c, nil
}

// Save writes the Config to the file at path, as JSON if path ends in
// .json and as YAML otherwise
func (c Config) Save(path string) error {
	var data []byte
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(c, "", "\t")
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("save: could not encode config: %v", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save: could not write config: %v", err)
	}
	return nil
}

// LoadTimeMatrix returns the time matrix described by the Config,
// loading it from disk or generating it from seed
func (c Config) LoadTimeMatrix(seed uint64) (*timematrix.TimeMatrix, error) {
	if c.TimeMatrix != "" {
		return timematrix.Load(c.TimeMatrix)
	}

	cab := c.CabDriver
	return timematrix.Random(cab.Locations, cab.HoursPerDay,
		cab.DaysPerWeek, c.MaxTravelHours, rand.NewSource(seed))
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment.
func (c Config) Create(seed uint64) (*cabdriver.Discrete, ts.TimeStep,
	error) {
	switch c.Environment {
	case CabDriver:
		tm, err := c.LoadTimeMatrix(seed)
		if err != nil {
			return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
		}
		return CreateCabDriver(c.CabDriver, tm, seed)
	}

	return nil, ts.TimeStep{}, fmt.Errorf("create: cannot create "+
		"environment %v, no such environment", c.Environment)
}

// CreateCabDriver is a factory for creating the cab driver environment
// with the argument configuration and time matrix
func CreateCabDriver(c cabdriver.Config, tm *timematrix.TimeMatrix,
	seed uint64) (*cabdriver.Discrete, ts.TimeStep, error) {
	env, step, err := cabdriver.NewDiscrete(c, tm, seed)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("createCabDriver: %w", err)
	}
	return env, step, nil
}
