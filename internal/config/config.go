// Package config loads algoviz settings from file, environment, and
// defaults.
package config

import (
	"errors"
	"time"

	"github.com/katalvlaran/algoviz/challenge"
	"github.com/katalvlaran/algoviz/playback"
)

// Defaults applied when neither file nor environment provides a value.
const (
	DefaultTurtleDelayMs    = 800
	DefaultNormalDelayMs    = 300
	DefaultLightningDelayMs = 80

	DefaultThreeStarsAt = 1.0
	DefaultTwoStarsAt   = 1.5
	DefaultOneStarAt    = 2.0
)

// Validation errors.
var (
	ErrBadDelay     = errors.New("config: playback delays must be positive")
	ErrBadStarBands = errors.New("config: star bands must be positive and non-decreasing")
)

// Config is the root settings document.
type Config struct {
	Playback  PlaybackConfig  `mapstructure:"playback"`
	Stars     StarsConfig     `mapstructure:"stars"`
	Challenge ChallengeConfig `mapstructure:"challenge"`
}

// PlaybackConfig holds the per-speed frame delays in milliseconds.
type PlaybackConfig struct {
	TurtleMs    int `mapstructure:"turtle_ms"`
	NormalMs    int `mapstructure:"normal_ms"`
	LightningMs int `mapstructure:"lightning_ms"`
}

// StarsConfig holds the visited/optimal ratio thresholds of the star
// rating, best band first.
type StarsConfig struct {
	ThreeAt float64 `mapstructure:"three_at"`
	TwoAt   float64 `mapstructure:"two_at"`
	OneAt   float64 `mapstructure:"one_at"`
}

// ChallengeConfig points at an optional user challenge pack.
type ChallengeConfig struct {
	File string `mapstructure:"file"`
}

// Validate checks value ranges after unmarshalling.
func (c *Config) Validate() error {
	if c.Playback.TurtleMs <= 0 || c.Playback.NormalMs <= 0 || c.Playback.LightningMs <= 0 {
		return ErrBadDelay
	}
	s := c.Stars
	if s.ThreeAt <= 0 || s.TwoAt < s.ThreeAt || s.OneAt < s.TwoAt {
		return ErrBadStarBands
	}

	return nil
}

// Delays converts the millisecond settings into a playback delay table.
func (c *Config) Delays() playback.DelayTable {
	return playback.DelayTable{
		playback.Turtle:    time.Duration(c.Playback.TurtleMs) * time.Millisecond,
		playback.Normal:    time.Duration(c.Playback.NormalMs) * time.Millisecond,
		playback.Lightning: time.Duration(c.Playback.LightningMs) * time.Millisecond,
	}
}

// StarBands converts the ratio settings into evaluator bands.
func (c *Config) StarBands() challenge.StarBands {
	return challenge.StarBands{
		ThreeAt: c.Stars.ThreeAt,
		TwoAt:   c.Stars.TwoAt,
		OneAt:   c.Stars.OneAt,
	}
}
