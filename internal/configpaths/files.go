package configpaths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "gremlin"

// configBases are the file base names probed in every config directory.
var configBases = []string{"config", "gremlin", "lookup", "vocab"}

// DefaultConfigDir returns the platform-specific configuration directory.
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("AppData"); appdata != "" {
			return filepath.Join(appdata, "Gremlin"), nil
		}
		return "", errors.New("AppData not set")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", appName), nil
		}
		return "", errors.New("HOME not set")
	}
}

// Extension returns the canonical file extension for a config format name.
func Extension(format string) string {
	switch format {
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return "json"
	}
}

// EnsureDir creates the parent directory of filePath.
func EnsureDir(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), 0o755)
}

// Candidates holds config file paths grouped by loader, highest priority
// first.
type Candidates struct {
	JSON, YAML, TOML []string
}

func (c *Candidates) add(dir, base string) {
	c.JSON = append(c.JSON, filepath.Join(dir, base+".json"))
	c.YAML = append(c.YAML, filepath.Join(dir, base+".yaml"), filepath.Join(dir, base+".yml"))
	c.TOML = append(c.TOML, filepath.Join(dir, base+".toml"))
}

// ConfigCandidatePaths lists config files to probe. A userPath is tried
// first and routed to a loader by its extension; unknown extensions are
// treated as JSON.
func ConfigCandidatePaths(userPath string) Candidates {
	var c Candidates

	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".yaml", ".yml":
			c.YAML = append(c.YAML, userPath)
		case ".toml":
			c.TOML = append(c.TOML, userPath)
		default:
			c.JSON = append(c.JSON, userPath)
		}
	}

	if wd, err := os.Getwd(); err == nil {
		for _, base := range configBases {
			c.add(wd, base)
		}
	}

	if dir, err := DefaultConfigDir(); err == nil {
		for _, base := range configBases {
			c.add(dir, base)
		}
	}

	if runtime.GOOS != "windows" {
		for _, base := range configBases {
			c.add(filepath.Join("/etc", appName), base)
		}
	}

	return c
}
