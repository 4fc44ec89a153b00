// pkg/host/load.go
package host

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joeydtaylor/steeze-apphost/pkg/manifest"
	toml "github.com/pelletier/go-toml/v2"
)

// LoadConfig reads and validates a TOML host manifest.
func LoadConfig(path string) (manifest.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return manifest.Config{}, err
	}
	var cfg manifest.Config
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return manifest.Config{}, fmt.Errorf("manifest %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return manifest.Config{}, fmt.Errorf("manifest %s: %w", path, err)
	}
	return cfg, nil
}

// LoadShell returns the shell document markup. Relative shell paths resolve
// against the manifest's directory; no shell file yields "".
func LoadShell(manifestPath string, cfg manifest.Config) (string, error) {
	if cfg.Shell.File == "" {
		return "", nil
	}
	p := cfg.Shell.File
	if !filepath.IsAbs(p) {
		p = filepath.Join(filepath.Dir(manifestPath), p)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", fmt.Errorf("shell: %w", err)
	}
	return string(b), nil
}
