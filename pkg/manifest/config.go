package manifest

import (
	"errors"
	"fmt"
	"strings"
)

// Config is the top-level host manifest.
type Config struct {
	Shell Shell  `toml:"shell"`
	Pages []Page `toml:"page"`
}

// Shell is the HTML document pages are rendered into. With no file the host
// uses a blank document holding the page's root element.
type Shell struct {
	File string `toml:"file"`
}

// Validate normalizes pages in place and rejects unusable manifests.
func (c *Config) Validate() error {
	if len(c.Pages) == 0 {
		return errors.New("no pages defined")
	}
	c.Shell.File = strings.TrimSpace(c.Shell.File)

	seen := make(map[string]int, len(c.Pages))
	for i := range c.Pages {
		p := &c.Pages[i]
		if err := p.normalize(); err != nil {
			return fmt.Errorf("page %d: %w", i, err)
		}
		if err := p.validate(); err != nil {
			return fmt.Errorf("page %d (%s): %w", i, p.Path, err)
		}
		if j, dup := seen[p.Path]; dup {
			return fmt.Errorf("page %d: path %q already used by page %d", i, p.Path, j)
		}
		seen[p.Path] = i
	}
	return nil
}

// Apps lists the application keys the manifest refers to, once each.
func (c *Config) Apps() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, p := range c.Pages {
		if _, ok := seen[p.App]; ok {
			continue
		}
		seen[p.App] = struct{}{}
		out = append(out, p.App)
	}
	return out
}
