package settings

import (
	"sync"

	"github.com/caarlos0/env/v11"
)

type Arguments struct {
	// The directory the game writes save files to
	SaveDir string `env:"COTA_SAVE_DIR"`

	// Directory for log files (empty means stdout only)
	LogDir string `env:"COTA_LOG_DIR"`

	// Strongly verbose logging
	Verbose bool `env:"COTA_VERBOSE"`

	// Enable debug mode
	Debug bool `env:"COTA_DEBUG"`

	// Print log messages to screen as well as the log file
	PrintToScreen bool `env:"COTA_PRINT" envDefault:"true"`
}

// Private instance and mutex for thread safety
var (
	instance *Arguments
	once     sync.Once
)

// GetSettings returns the global settings instance. Values are seeded
// from the environment on first use; command line flags may override
// them afterwards.
func GetSettings() *Arguments {
	once.Do(func() {
		args := &Arguments{}
		if err := env.Parse(args); err != nil {
			args = &Arguments{PrintToScreen: true}
		}
		instance = args
	})
	return instance
}
