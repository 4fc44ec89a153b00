// Package env reads the process environment the host runs under.
package env

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// Environment is loaded from APP_* variables.
type Environment struct {
	Mode   string `envconfig:"APP_ENV" default:"development"`
	LogDir string `envconfig:"APP_LOG_DIR" default:"log"`

	// Sanitize runs component markup through an HTML sanitizer.
	Sanitize bool `envconfig:"APP_SANITIZE" default:"false"`
}

// Load reads the environment.
func Load() (Environment, error) {
	var e Environment
	if err := envconfig.Process("", &e); err != nil {
		return Environment{}, fmt.Errorf("env: %w", err)
	}
	e.Mode = strings.ToLower(strings.TrimSpace(e.Mode))
	return e, nil
}

// Default is the environment used when nothing is set.
func Default() Environment {
	return Environment{Mode: ModeDevelopment, LogDir: "log"}
}

// LoadOrDefault never fails; a malformed environment yields Default.
func LoadOrDefault() Environment {
	e, err := Load()
	if err != nil {
		return Default()
	}
	return e
}

// Development reports whether verbose development checks are on. Anything
// other than "production" counts as development.
func (e Environment) Development() bool { return e.Mode != ModeProduction }

// IsDevelopment re-reads the environment and reports the development flag.
func IsDevelopment() bool { return LoadOrDefault().Development() }
