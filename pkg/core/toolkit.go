package core

import (
	"io"
	"os"

	"github.com/arthur-debert/stepkit/pkg/command"
	"github.com/arthur-debert/stepkit/pkg/config"
	"github.com/arthur-debert/stepkit/pkg/environ"
	"github.com/arthur-debert/stepkit/pkg/filecmd"
	"github.com/arthur-debert/stepkit/pkg/filesystem"
	"github.com/arthur-debert/stepkit/pkg/summary"
	"github.com/arthur-debert/stepkit/pkg/types"
)

// Toolkit connects a step to its runner. It is not safe for concurrent use.
type Toolkit struct {
	out io.Writer
	env types.Env
	fs  types.FS
	cfg *config.Config

	encoder  *command.Encoder
	files    *filecmd.Writer
	resolver *environ.EnvResolver
	summary  *summary.Summary
}

// Option configures a Toolkit
type Option func(*Toolkit)

// WithOutput sets the stdout command stream
func WithOutput(w io.Writer) Option {
	return func(tk *Toolkit) { tk.out = w }
}

// WithEnv sets the environment collaborator
func WithEnv(env types.Env) Option {
	return func(tk *Toolkit) { tk.env = env }
}

// WithFS sets the filesystem collaborator
func WithFS(fsys types.FS) Option {
	return func(tk *Toolkit) { tk.fs = fsys }
}

// WithConfig sets the configuration; the embedded defaults are used otherwise
func WithConfig(cfg *config.Config) Option {
	return func(tk *Toolkit) { tk.cfg = cfg }
}

// New returns a Toolkit. Unset collaborators default to os.Stdout, the
// process environment and the OS filesystem.
func New(opts ...Option) (*Toolkit, error) {
	tk := &Toolkit{}
	for _, opt := range opts {
		opt(tk)
	}

	if tk.out == nil {
		tk.out = os.Stdout
	}
	if tk.env == nil {
		tk.env = environ.OS()
	}
	if tk.fs == nil {
		tk.fs = filesystem.NewOS()
	}
	if tk.cfg == nil {
		cfg, err := config.LoadDefaults()
		if err != nil {
			return nil, err
		}
		tk.cfg = cfg
	}

	eol := tk.cfg.EOLSequence()
	tk.encoder = command.NewEncoder(tk.out, eol)
	tk.resolver = environ.NewResolver(tk.env, tk.cfg.FileCommands.Prefix)
	tk.files = filecmd.NewWriter(tk.fs, tk.resolver, tk.cfg.FileCommandOptions())
	tk.summary = summary.New(tk.fs, tk.resolver, summary.Options{
		Command: tk.cfg.Summary.Command,
		EOL:     eol,
	})
	return tk, nil
}

// Default returns a Toolkit bound to the process with configuration
// loaded from the user config file and STEPKIT_ variables.
func Default() (*Toolkit, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}
	return New(WithConfig(cfg))
}

// Summary returns the job summary buffer owned by this Toolkit
func (tk *Toolkit) Summary() *summary.Summary {
	return tk.summary
}

// Env returns the environment the Toolkit reads and mutates
func (tk *Toolkit) Env() types.Env {
	return tk.env
}

// Resolver returns the file command resolver
func (tk *Toolkit) Resolver() *environ.EnvResolver {
	return tk.resolver
}

// Config returns the effective configuration
func (tk *Toolkit) Config() *config.Config {
	return tk.cfg
}

// IssueCommand writes an arbitrary stdout command
func (tk *Toolkit) IssueCommand(name string, props command.Properties, message any) error {
	return tk.encoder.Issue(name, props, message)
}

// IssueFileCommand appends value to the target of a file command
func (tk *Toolkit) IssueFileCommand(cmd string, value any) error {
	return tk.files.Issue(cmd, value)
}

// RunnerInfo decodes the runner variables of this Toolkit's environment
func (tk *Toolkit) RunnerInfo() (environ.RunnerInfo, error) {
	return environ.LoadRunnerInfo(tk.env)
}
