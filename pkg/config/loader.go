package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/stepkit/pkg/errors"
	"github.com/arthur-debert/stepkit/pkg/logging"
)

// EnvPrefix is the prefix of configuration environment variables
const EnvPrefix = "STEPKIT_"

// LoadDefaults returns the embedded defaults only
func LoadDefaults() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	return unmarshal(k)
}

// Load builds the configuration from defaults, the config file and the
// environment. An empty path looks for the user config file and skips it
// when absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	defer logging.LogOperationStart(logger, "load config")()
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if path == "" {
		if candidate := defaultConfigPath(); candidate != "" {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}
	} else if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfiguration, "config file %s not readable", path)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfiguration, "failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Environment overrides
	overrides := koanf.New(".")
	err := overrides.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}
	if err := k.Load(confmap.Provider(overrides.All(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to merge env vars: %w", err)
	}

	return unmarshal(k)
}

// envKey maps STEPKIT_FILE_COMMANDS__DELIMITER_MODE to file_commands.delimiter_mode
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func defaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	if configHome == "" {
		return ""
	}
	return filepath.Join(configHome, "stepkit", "config.toml")
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	cfg.Output.EOL = strings.ToLower(cfg.Output.EOL)
	cfg.FileCommands.DelimiterMode = strings.ToLower(cfg.FileCommands.DelimiterMode)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
