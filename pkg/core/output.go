package core

import (
	"github.com/arthur-debert/stepkit/pkg/command"
	"github.com/arthur-debert/stepkit/pkg/filecmd"
)

// SetOutput sets a step output. On the stdout channel the command is
// preceded by a blank line so older runners parse it on a line of its own.
func (tk *Toolkit) SetOutput(name string, value any) error {
	if tk.files.Configured(filecmd.CommandOutput) {
		return tk.files.IssueKeyValue(filecmd.CommandOutput, name, value)
	}
	if err := tk.encoder.WriteLine(""); err != nil {
		return err
	}
	return tk.encoder.Issue(command.NameSetOutput, command.Properties{{Key: "name", Value: name}}, value)
}

// SaveState stores a value for the post step of the same action
func (tk *Toolkit) SaveState(name string, value any) error {
	if tk.files.Configured(filecmd.CommandState) {
		return tk.files.IssueKeyValue(filecmd.CommandState, name, value)
	}
	return tk.encoder.Issue(command.NameSaveState, command.Properties{{Key: "name", Value: name}}, value)
}

// GetState returns a value saved by SaveState in an earlier step
func (tk *Toolkit) GetState(name string) string {
	return tk.env.Get(tk.cfg.Runner.StatePrefix + name)
}

// SetCommandEcho turns echoing of workflow commands in the log on or off
func (tk *Toolkit) SetCommandEcho(enabled bool) error {
	state := "off"
	if enabled {
		state = "on"
	}
	return tk.encoder.Issue(command.NameEcho, nil, state)
}
