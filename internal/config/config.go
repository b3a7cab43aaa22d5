// Package config loads settings from defaults, an optional config file, a
// .env file and SPACELAB_ environment variables, in rising priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/spacehole-rogue/spacelab/internal/game"
)

// FileName is the config file looked up in the config directory, without
// extension. Any format viper reads is accepted.
const FileName = "spacelab"

// EnvPrefix prefixes every environment override, e.g. SPACELAB_SIM_TPS.
const EnvPrefix = "SPACELAB"

// Config holds all runtime settings.
type Config struct {
	LogLevel  string         `mapstructure:"logLevel"`
	LogPretty bool           `mapstructure:"logPretty"`
	Sim       SimConfig      `mapstructure:"sim"`
	Physics   PhysicsConfig  `mapstructure:"physics"`
	Universe  UniverseConfig `mapstructure:"universe"`
	Galaxy    GalaxyConfig   `mapstructure:"galaxy"`
	Headless  HeadlessConfig `mapstructure:"headless"`
	Metrics   MetricsConfig  `mapstructure:"metrics"`
}

// SimConfig holds tick rate and flight handling.
type SimConfig struct {
	TPS           int     `mapstructure:"tps"`
	CaptureRadius float64 `mapstructure:"captureRadius"`
	Thrust        float64 `mapstructure:"thrust"`
	Strafe        float64 `mapstructure:"strafe"`
	Brake         float64 `mapstructure:"brake"`
	TurnRate      float64 `mapstructure:"turnRate"`
}

// PhysicsConfig tunes the drift integrator.
type PhysicsConfig struct {
	Drag     float64 `mapstructure:"drag"`
	MaxSpeed float64 `mapstructure:"maxSpeed"`
}

// UniverseConfig picks the scene to load. An empty File loads the embedded
// Sol scene.
type UniverseConfig struct {
	File string `mapstructure:"file"`
}

// GalaxyConfig seeds galaxy generation.
type GalaxyConfig struct {
	Seed    string `mapstructure:"seed"`
	Systems int    `mapstructure:"systems"`
}

// HeadlessConfig controls runs without a window.
type HeadlessConfig struct {
	Ticks int `mapstructure:"ticks"`
}

// MetricsConfig turns on the stdout metrics exporter.
type MetricsConfig struct {
	Stdout   bool          `mapstructure:"stdout"`
	Interval time.Duration `mapstructure:"interval"`
}

// New returns a viper instance with every default set and environment
// overrides enabled.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("logLevel", "info")
	v.SetDefault("logPretty", true)

	tuning := game.DefaultTuning()
	v.SetDefault("sim.tps", 60)
	v.SetDefault("sim.captureRadius", tuning.CaptureRadius)
	v.SetDefault("sim.thrust", tuning.Thrust)
	v.SetDefault("sim.strafe", tuning.Strafe)
	v.SetDefault("sim.brake", tuning.Brake)
	v.SetDefault("sim.turnRate", 0.01*math.Pi)

	v.SetDefault("physics.drag", 1.0)
	v.SetDefault("physics.maxSpeed", 0.0)

	v.SetDefault("universe.file", "")

	v.SetDefault("galaxy.seed", "spacelab")
	v.SetDefault("galaxy.systems", 8)

	v.SetDefault("headless.ticks", 600)

	v.SetDefault("metrics.stdout", false)
	v.SetDefault("metrics.interval", 10*time.Second)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configDir/spacelab.* and configDir/.env on top of the defaults.
// Neither file has to exist.
func Load(configDir string) (*Config, error) {
	if err := godotenv.Load(filepath.Join(configDir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env: %w", err)
	}

	v := New()
	v.SetConfigName(FileName)
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return Decode(v)
}

// Decode unmarshals v into a Config and checks it.
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Sim.TPS <= 0:
		return fmt.Errorf("sim.tps must be positive, got %d", c.Sim.TPS)
	case c.Sim.CaptureRadius <= 0:
		return fmt.Errorf("sim.captureRadius must be positive, got %g", c.Sim.CaptureRadius)
	case c.Physics.Drag < 0:
		return fmt.Errorf("physics.drag must not be negative, got %g", c.Physics.Drag)
	case c.Physics.MaxSpeed < 0:
		return fmt.Errorf("physics.maxSpeed must not be negative, got %g", c.Physics.MaxSpeed)
	case c.Galaxy.Systems <= 0:
		return fmt.Errorf("galaxy.systems must be positive, got %d", c.Galaxy.Systems)
	case c.Metrics.Stdout && c.Metrics.Interval <= 0:
		return fmt.Errorf("metrics.interval must be positive, got %s", c.Metrics.Interval)
	}
	return nil
}

// Tuning converts the sim section into game handling constants.
func (c *Config) Tuning() game.Tuning {
	return game.Tuning{
		CaptureRadius: c.Sim.CaptureRadius,
		Thrust:        c.Sim.Thrust,
		Strafe:        c.Sim.Strafe,
		Brake:         c.Sim.Brake,
		TurnRate:      c.Sim.TurnRate,
	}
}

// Integrator builds the drift integrator from the physics section.
func (c *Config) Integrator() game.DriftIntegrator {
	return game.DriftIntegrator{Drag: c.Physics.Drag, MaxSpeed: c.Physics.MaxSpeed}
}
