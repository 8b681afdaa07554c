package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"    validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"  validate:"required"`
	Scheduler SchedulerConfig `mapstructure:"scheduler" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// SchedulerConfig contains the tuning knobs for the review scheduler.
// The defaults match the classic two-step learning configuration; see
// srs.DefaultSettings.
type SchedulerConfig struct {
	LearningSteps      []int   `mapstructure:"learning_steps"      validate:"required,min=1,dive,gt=0"`
	RelearningSteps    []int   `mapstructure:"relearning_steps"    validate:"required,min=1,dive,gt=0"`
	GraduatingInterval int     `mapstructure:"graduating_interval" validate:"required,gt=0"`
	EasyInterval       int     `mapstructure:"easy_interval"       validate:"required,gt=0"`
	StartingEase       float64 `mapstructure:"starting_ease"       validate:"required,gt=1"`
	MinEase            float64 `mapstructure:"min_ease"            validate:"required,gt=1"`
	HardIntervalFactor float64 `mapstructure:"hard_interval_factor" validate:"required,gt=0"`
	EasyBonus          float64 `mapstructure:"easy_bonus"          validate:"required,gt=0"`
	UseFuzz            bool    `mapstructure:"use_fuzz"`
	IntervalModifier   float64 `mapstructure:"interval_modifier"   validate:"required,gt=0"`
}
