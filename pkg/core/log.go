package core

import (
	"github.com/arthur-debert/stepkit/pkg/annotation"
	"github.com/arthur-debert/stepkit/pkg/command"
)

// IsDebug reports whether the runner enabled step debug logging
func (tk *Toolkit) IsDebug() bool {
	return tk.env.Get(tk.cfg.Runner.DebugVariable) == "1"
}

// Debug writes a debug message. The runner shows it only in debug mode.
func (tk *Toolkit) Debug(message string) error {
	return tk.encoder.Issue(command.NameDebug, nil, message)
}

// Error writes an error annotation and returns an *errors.Failure:
// the step must stop once an error is reported.
func (tk *Toolkit) Error(message any, props annotation.Properties) error {
	return tk.encoder.Issue(command.NameError, annotation.ToCommandProperties(props), message)
}

// Warning writes a warning annotation
func (tk *Toolkit) Warning(message any, props annotation.Properties) error {
	return tk.encoder.Issue(command.NameWarning, annotation.ToCommandProperties(props), message)
}

// Notice writes a notice annotation
func (tk *Toolkit) Notice(message any, props annotation.Properties) error {
	return tk.encoder.Issue(command.NameNotice, annotation.ToCommandProperties(props), message)
}

// Info writes message to the log as a plain line
func (tk *Toolkit) Info(message string) error {
	return tk.encoder.WriteLine(message)
}

// SetFailed reports message as an error and returns the resulting
// *errors.Failure for the entry point to exit with.
func (tk *Toolkit) SetFailed(message any) error {
	return tk.Error(message, annotation.Properties{})
}

// StartGroup opens a collapsible log group
func (tk *Toolkit) StartGroup(name string) error {
	return tk.encoder.Issue(command.NameGroup, nil, name)
}

// EndGroup closes the current log group
func (tk *Toolkit) EndGroup() error {
	return tk.encoder.Issue(command.NameEndGroup, nil, nil)
}

// Group runs fn inside a log group. The group is closed even when fn fails.
func Group[T any](tk *Toolkit, name string, fn func() (T, error)) (result T, err error) {
	if err = tk.StartGroup(name); err != nil {
		return result, err
	}
	defer func() {
		if endErr := tk.EndGroup(); err == nil {
			err = endErr
		}
	}()
	return fn()
}
