// Package config holds the generator's fixed settings. The output directory
// may be overridden from the environment; sizes are fixed.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// IconSizes are the square PWA icon sizes, in pixels.
var IconSizes = []int{72, 144, 192, 512}

// BadgeSize is the pixel size of the notification badge.
const BadgeSize = 72

// Config holds generator configuration.
type Config struct {
	OutputDir string `env:"PWA_ICONS_OUTPUT_DIR" envDefault:"apps/store/static/icons"`
}

// Load reads configuration from the process environment.
func Load() (Config, error) {
	return LoadFrom(nil)
}

// LoadFrom reads configuration from environ. A nil map means the process
// environment.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
