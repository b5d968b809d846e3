package config

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Generate renders cfg as a TOML document
func Generate(cfg *Config) (string, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return string(out), nil
}
