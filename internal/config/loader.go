package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".algoviz"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for algoviz settings.
const envPrefix = "ALGOVIZ"

// Load reads configuration from file, environment, and defaults. If
// configPath is non-empty it is used as the explicit config file path;
// otherwise the file is searched in the CWD and $HOME. A missing config
// file is not an error, defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("playback.turtle_ms", DefaultTurtleDelayMs)
	v.SetDefault("playback.normal_ms", DefaultNormalDelayMs)
	v.SetDefault("playback.lightning_ms", DefaultLightningDelayMs)

	v.SetDefault("stars.three_at", DefaultThreeStarsAt)
	v.SetDefault("stars.two_at", DefaultTwoStarsAt)
	v.SetDefault("stars.one_at", DefaultOneStarAt)

	v.SetDefault("challenge.file", "")
}
