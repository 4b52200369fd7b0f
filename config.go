package filemagic

import (
	"fmt"
	"strings"

	"github.com/gobeaver/beaver-kit/config"
)

// Output formats accepted by Config.Format
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type Config struct {
	// Report settings
	Format   string `env:"FILEMAGIC_FORMAT,default:text"` // text, json, yaml
	Checksum bool   `env:"FILEMAGIC_CHECKSUM,default:false"`

	// Directory walking
	Include string `env:"FILEMAGIC_INCLUDE"` // doublestar glob

	// Detection policy
	AllowedTypes string `env:"FILEMAGIC_ALLOWED_TYPES"` // comma-separated names or extensions
	Strict       bool   `env:"FILEMAGIC_STRICT,default:false"`

	LogLevel string `env:"FILEMAGIC_LOG_LEVEL,default:warn"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetConfigWithPrefix loads config using a custom environment prefix
func GetConfigWithPrefix(prefix string) (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: prefix}); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the config holds usable values
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unsupported format %q", c.Format)
	}
	if _, err := c.Allowed(); err != nil {
		return err
	}
	return nil
}

// Allowed parses AllowedTypes. An empty value yields a nil slice.
func (c *Config) Allowed() ([]FileType, error) {
	if strings.TrimSpace(c.AllowedTypes) == "" {
		return nil, nil
	}

	var types []FileType
	for _, name := range strings.Split(c.AllowedTypes, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		matched, err := ParseFileType(name)
		if err != nil {
			return nil, err
		}
		types = append(types, matched...)
	}
	return types, nil
}
