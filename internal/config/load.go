package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and, when present,
// a config.yaml file in the working directory. Environment variables use
// the FLASHDECK_ prefix with underscores for nesting (for example
// FLASHDECK_DATABASE_URL, FLASHDECK_SERVER_PORT) and take precedence
// over values from the config file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FLASHDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; env vars and defaults apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers the default value for every configuration key.
// Defaults keep the server bootable with nothing but a database URL.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	// An empty default registers the key with viper so the
	// FLASHDECK_DATABASE_URL environment variable is picked up during
	// Unmarshal; validation still rejects a missing URL.
	v.SetDefault("database.url", "")

	v.SetDefault("scheduler.learning_steps", []int{1, 10})
	v.SetDefault("scheduler.relearning_steps", []int{10})
	v.SetDefault("scheduler.graduating_interval", 1)
	v.SetDefault("scheduler.easy_interval", 4)
	v.SetDefault("scheduler.starting_ease", 2.5)
	v.SetDefault("scheduler.min_ease", 1.3)
	v.SetDefault("scheduler.hard_interval_factor", 1.2)
	v.SetDefault("scheduler.easy_bonus", 1.3)
	v.SetDefault("scheduler.use_fuzz", true)
	v.SetDefault("scheduler.interval_modifier", 1.0)
}
