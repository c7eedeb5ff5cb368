// Package config holds the tuning knobs for the simulation and binaries.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when no path is given.
const EnvPath = "VOIDRUNNER_CONFIG"

// Config is the root configuration.
type Config struct {
	Ship    ShipConfig    `yaml:"ship"`
	Camera  CameraConfig  `yaml:"camera"`
	Doors   DoorConfig    `yaml:"doors"`
	Sim     SimConfig     `yaml:"sim"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type ShipConfig struct {
	Radius        float64 `yaml:"radius"`
	TurnRate      float64 `yaml:"turn_rate"`     // radians per second
	Thrust        float64 `yaml:"thrust"`        // forward acceleration
	Reverse       float64 `yaml:"reverse"`       // braking deceleration
	MaxSpeed      float64 `yaml:"max_speed"`
	Recharge      float64 `yaml:"recharge"`      // energy per second
	BounceSpeed   float64 `yaml:"bounce_speed"`  // normal speed above which walls hurt
	Invincibility float64 `yaml:"invincibility"` // seconds of immunity after a hit
	HeatDamage    float64 `yaml:"heat_damage"`   // shield loss per second in lava
	BoostFactor   float64 `yaml:"boost_factor"`  // thrust multiplier with the utility modifier held
}

type CameraConfig struct {
	// Smoothing is the fraction of the gap left after one second; 0 < s < 1.
	Smoothing float64 `yaml:"smoothing"`
}

type DoorConfig struct {
	OpenRate      float64 `yaml:"open_rate"`      // openness per second
	HoldTime      float64 `yaml:"hold_time"`      // seconds a door stays open
	CloseDistance float64 `yaml:"close_distance"` // ship must be this far away to close
}

type SimConfig struct {
	Seed           int64   `yaml:"seed"`
	TickRate       int     `yaml:"tick_rate"`
	PickupLifetime float64 `yaml:"pickup_lifetime"`
	PickupRadius   float64 `yaml:"pickup_radius"`
	ParticleLife   float64 `yaml:"particle_life"`
	WaterDrag      float64 `yaml:"water_drag"`
	SoundsPerFrame int     `yaml:"sounds_per_frame"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in tuning.
func Default() *Config {
	return &Config{
		Ship: ShipConfig{
			Radius:        12,
			TurnRate:      4,
			Thrust:        420,
			Reverse:       300,
			MaxSpeed:      380,
			Recharge:      20,
			BounceSpeed:   180,
			Invincibility: 0.75,
			HeatDamage:    15,
			BoostFactor:   1.6,
		},
		Camera: CameraConfig{Smoothing: 0.02},
		Doors: DoorConfig{
			OpenRate:      3,
			HoldTime:      4,
			CloseDistance: 160,
		},
		Sim: SimConfig{
			Seed:           1,
			TickRate:       60,
			PickupLifetime: 10,
			PickupRadius:   20,
			ParticleLife:   0.6,
			WaterDrag:      1.5,
			SoundsPerFrame: 8,
		},
		Metrics: MetricsConfig{Addr: ""},
	}
}

// Load reads a YAML file over the defaults. An empty path falls back to
// $VOIDRUNNER_CONFIG; if that is unset too, the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return cfg, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// TickSeconds is the fixed timestep.
func (c *Config) TickSeconds() float64 { return 1 / float64(c.Sim.TickRate) }

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format, args...))
		}
	}
	check(c.Ship.Radius > 0, "ship.radius must be positive, got %g", c.Ship.Radius)
	check(c.Ship.MaxSpeed > 0, "ship.max_speed must be positive, got %g", c.Ship.MaxSpeed)
	check(c.Ship.TurnRate >= 0, "ship.turn_rate must not be negative")
	check(c.Camera.Smoothing > 0 && c.Camera.Smoothing < 1,
		"camera.smoothing must be in (0,1), got %g", c.Camera.Smoothing)
	check(c.Doors.OpenRate > 0, "doors.open_rate must be positive")
	check(c.Sim.TickRate > 0, "sim.tick_rate must be positive, got %d", c.Sim.TickRate)
	check(c.Sim.SoundsPerFrame > 0, "sim.sounds_per_frame must be positive")
	return errors.Join(errs...)
}
