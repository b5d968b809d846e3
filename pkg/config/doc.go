// Package config handles configuration management for stepkit.
//
// Values are layered, lowest precedence first:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. a TOML file: an explicit path, or $XDG_CONFIG_HOME/stepkit/config.toml
//  3. STEPKIT_ environment variables, with "__" separating the section
//     from the key: STEPKIT_FILE_COMMANDS__DELIMITER_MODE=random
package config
