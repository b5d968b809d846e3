package core

import (
	"os"

	"github.com/arthur-debert/stepkit/pkg/coerce"
	"github.com/arthur-debert/stepkit/pkg/command"
	"github.com/arthur-debert/stepkit/pkg/errors"
	"github.com/arthur-debert/stepkit/pkg/filecmd"
	"github.com/arthur-debert/stepkit/pkg/logging"
)

// ExportVariable sets an environment variable for this step and every
// following step of the job.
func (tk *Toolkit) ExportVariable(name string, value any) error {
	converted := coerce.ToCommandValue(value)
	if err := tk.env.Set(name, converted); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to set %s", name)
	}

	if tk.files.Configured(filecmd.CommandEnv) {
		return tk.files.IssueKeyValue(filecmd.CommandEnv, name, value)
	}
	return tk.encoder.Issue(command.NameSetEnv, command.Properties{{Key: "name", Value: name}}, converted)
}

// SetSecret registers secret so the runner masks it in logs
func (tk *Toolkit) SetSecret(secret string) error {
	return tk.encoder.Issue(command.NameAddMask, nil, secret)
}

// AddPath prepends dir to PATH for this step and every following step.
func (tk *Toolkit) AddPath(dir string) error {
	logger := logging.GetLogger("core")

	var err error
	if tk.files.Configured(filecmd.CommandPath) {
		err = tk.files.Issue(filecmd.CommandPath, dir)
	} else {
		err = tk.encoder.Issue(command.NameAddPath, nil, dir)
	}
	if err != nil {
		return err
	}

	path := dir
	if current := tk.env.Get("PATH"); current != "" {
		path = dir + string(os.PathListSeparator) + current
	}
	if err := tk.env.Set("PATH", path); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to update PATH")
	}

	logger.Debug().Str("dir", dir).Msg("added path")
	return nil
}
