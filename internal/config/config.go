package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for metascrub. All
// fields are pointers so the CLI can tell "unset" from zero values when
// applying precedence.
type FileConfig struct {
	Include           *string `yaml:"include"`
	Exclude           *string `yaml:"exclude"`
	RemoveTimestamps  *bool   `yaml:"remove_timestamps"`
	RemoveFilepaths   *bool   `yaml:"remove_filepaths"`
	RemoveServerNames *bool   `yaml:"remove_servernames"`
	CustomPatterns    *string `yaml:"custom_patterns"`
	NoColor           *bool   `yaml:"no_color"`
	AuditLog          *string `yaml:"audit_log"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a config file in the given directory. It supports
// .metascrub.yml/.yaml and metascrub.yml/.yaml, dotfiles first.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".metascrub.yml", ".metascrub.yaml", "metascrub.yml", "metascrub.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from the XDG base directory or
// ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "metascrub", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
