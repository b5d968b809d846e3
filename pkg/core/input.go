package core

import (
	"strings"

	"github.com/arthur-debert/stepkit/pkg/errors"
)

// InputOptions controls how an input is read
type InputOptions struct {
	// Required fails the call when the input is empty
	Required bool
	// KeepWhitespace disables trimming leading and trailing whitespace
	KeepWhitespace bool
}

var (
	trueValues  = []string{"true", "True", "TRUE"}
	falseValues = []string{"false", "False", "FALSE"}
)

func (tk *Toolkit) inputVariable(name string) string {
	return tk.cfg.Runner.InputPrefix + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
}

// GetInput returns the value of the step input name. Input names are
// case-insensitive; spaces map to underscores.
func (tk *Toolkit) GetInput(name string, opts InputOptions) (string, error) {
	val := tk.env.Get(tk.inputVariable(name))
	if opts.Required && val == "" {
		return "", errors.Newf(errors.ErrConfiguration, "Input required and not supplied: %s", name)
	}
	if opts.KeepWhitespace {
		return val, nil
	}
	return strings.TrimSpace(val), nil
}

// GetMultilineInput returns the non-empty lines of the input name
func (tk *Toolkit) GetMultilineInput(name string, opts InputOptions) ([]string, error) {
	val, err := tk.GetInput(name, opts)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(val, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// GetBooleanInput parses the input name following the YAML 1.2 core
// schema boolean spellings.
func (tk *Toolkit) GetBooleanInput(name string, opts InputOptions) (bool, error) {
	val, err := tk.GetInput(name, opts)
	if err != nil {
		return false, err
	}
	for _, t := range trueValues {
		if val == t {
			return true, nil
		}
	}
	for _, f := range falseValues {
		if val == f {
			return false, nil
		}
	}
	return false, errors.Newf(errors.ErrValidation,
		"Input does not meet YAML 1.2 \"Core Schema\" specification: %s\n"+
			"Support boolean input list: `true | True | TRUE | false | False | FALSE`", name)
}
