// Package config holds the session configuration fixed at startup.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// BoundsMode selects the rectangle player and enemy moves are clamped to.
type BoundsMode string

const (
	// BoundsViewport clamps player and enemies to a screen-sized rectangle
	// at the world origin while pigs roam the whole world.
	BoundsViewport BoundsMode = "viewport"
	// BoundsWorld clamps every actor to the world rectangle.
	BoundsWorld BoundsMode = "world"
)

// Config is the set of values fixed for one session.
type Config struct {
	WorldWidth          float64       `yaml:"world_width"`
	WorldHeight         float64       `yaml:"world_height"`
	ScreenWidth         float64       `yaml:"screen_width"`
	ScreenHeight        float64       `yaml:"screen_height"`
	EnemyCount          int           `yaml:"enemy_count"`
	PigCap              int           `yaml:"pig_cap"`
	PigInitial          int           `yaml:"pig_initial"`
	ObstacleCount       int           `yaml:"obstacle_count"`
	InitialCollectibles int           `yaml:"initial_collectibles"`
	DayNightCycle       time.Duration `yaml:"day_night_cycle"`
	BoundsMode          BoundsMode    `yaml:"bounds_mode"`
	Seed                int64         `yaml:"seed"` // 0 = seed from the wall clock
}

// Default returns the stock open-world session.
func Default() Config {
	return Config{
		WorldWidth:          3000,
		WorldHeight:         3000,
		ScreenWidth:         1280,
		ScreenHeight:        720,
		EnemyCount:          15,
		PigCap:              15,
		PigInitial:          10,
		ObstacleCount:       50,
		InitialCollectibles: 20,
		DayNightCycle:       60 * time.Second,
		BoundsMode:          BoundsViewport,
	}
}

// Load reads a YAML file on top of Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every field that cannot produce a playable session.
func (c Config) Validate() error {
	var errs []error
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %vx%v", c.ScreenWidth, c.ScreenHeight))
	}
	if c.WorldWidth < c.ScreenWidth || c.WorldHeight < c.ScreenHeight {
		errs = append(errs, fmt.Errorf("world %vx%v must be at least the screen %vx%v",
			c.WorldWidth, c.WorldHeight, c.ScreenWidth, c.ScreenHeight))
	}
	if c.EnemyCount < 0 || c.ObstacleCount < 0 || c.InitialCollectibles < 0 {
		errs = append(errs, errors.New("population counts must not be negative"))
	}
	if c.PigCap < 0 || c.PigInitial < 0 || c.PigInitial > c.PigCap {
		errs = append(errs, fmt.Errorf("pig_initial %d must be within [0, pig_cap %d]", c.PigInitial, c.PigCap))
	}
	if c.DayNightCycle <= 0 {
		errs = append(errs, fmt.Errorf("day_night_cycle must be positive, got %s", c.DayNightCycle))
	}
	switch c.BoundsMode {
	case BoundsViewport, BoundsWorld:
	default:
		errs = append(errs, fmt.Errorf("bounds_mode %q is not one of %q, %q", c.BoundsMode, BoundsViewport, BoundsWorld))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
