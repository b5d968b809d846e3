package config

import (
	"github.com/arthur-debert/stepkit/pkg/command"
	"github.com/arthur-debert/stepkit/pkg/errors"
	"github.com/arthur-debert/stepkit/pkg/filecmd"
)

// Config is the effective stepkit configuration
type Config struct {
	FileCommands FileCommands `koanf:"file_commands" toml:"file_commands"`
	Summary      Summary      `koanf:"summary" toml:"summary"`
	Runner       Runner       `koanf:"runner" toml:"runner"`
	Output       Output       `koanf:"output" toml:"output"`
}

// FileCommands configures the file command channel
type FileCommands struct {
	Prefix        string `koanf:"prefix" toml:"prefix"`
	Delimiter     string `koanf:"delimiter" toml:"delimiter"`
	DelimiterMode string `koanf:"delimiter_mode" toml:"delimiter_mode"`
}

// Summary configures the job summary target
type Summary struct {
	Command string `koanf:"command" toml:"command"`
}

// Runner names the variables the runner uses to talk to a step
type Runner struct {
	DebugVariable string `koanf:"debug_variable" toml:"debug_variable"`
	InputPrefix   string `koanf:"input_prefix" toml:"input_prefix"`
	StatePrefix   string `koanf:"state_prefix" toml:"state_prefix"`
}

// Output configures stdout command encoding
type Output struct {
	EOL string `koanf:"eol" toml:"eol"`
}

// EOLSequence returns the configured line ending
func (c *Config) EOLSequence() string {
	return command.ResolveEOL(c.Output.EOL)
}

// FileCommandOptions returns the file command writer options
func (c *Config) FileCommandOptions() filecmd.Options {
	return filecmd.Options{
		Delimiter: c.FileCommands.Delimiter,
		Mode:      filecmd.DelimiterMode(c.FileCommands.DelimiterMode),
		EOL:       c.EOLSequence(),
	}
}

// Validate checks enumerated values and required names
func (c *Config) Validate() error {
	switch filecmd.DelimiterMode(c.FileCommands.DelimiterMode) {
	case filecmd.DelimiterFixed, filecmd.DelimiterRandom:
	default:
		return errors.Newf(errors.ErrValidation,
			"invalid file_commands.delimiter_mode %q: expected fixed or random", c.FileCommands.DelimiterMode)
	}

	switch c.Output.EOL {
	case command.EOLAuto, command.EOLLF, command.EOLCRLF:
	default:
		return errors.Newf(errors.ErrValidation,
			"invalid output.eol %q: expected auto, lf or crlf", c.Output.EOL)
	}

	required := map[string]string{
		"file_commands.prefix":    c.FileCommands.Prefix,
		"file_commands.delimiter": c.FileCommands.Delimiter,
		"summary.command":         c.Summary.Command,
		"runner.debug_variable":   c.Runner.DebugVariable,
		"runner.input_prefix":     c.Runner.InputPrefix,
		"runner.state_prefix":     c.Runner.StatePrefix,
	}
	for key, value := range required {
		if value == "" {
			return errors.Newf(errors.ErrValidation, "%s must not be empty", key)
		}
	}
	return nil
}
