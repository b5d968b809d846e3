package environ

import (
	"github.com/arthur-debert/stepkit/pkg/errors"
	"github.com/arthur-debert/stepkit/pkg/types"
)

// DefaultPrefix is the prefix runners use for file command variables.
const DefaultPrefix = "GITHUB_"

// Resolver maps a file command name to the path of its target file.
type Resolver interface {
	// Resolve returns the target path or a configuration error when the
	// runner did not provide one.
	Resolve(command string) (string, error)

	// Configured reports whether a non-empty target is available.
	Configured(command string) bool
}

// EnvResolver resolves commands through <Prefix><COMMAND> variables.
type EnvResolver struct {
	Env    types.Env
	Prefix string
}

// NewResolver returns an EnvResolver; an empty prefix means DefaultPrefix.
func NewResolver(env types.Env, prefix string) *EnvResolver {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &EnvResolver{Env: env, Prefix: prefix}
}

// Variable returns the environment variable name for command.
func (r *EnvResolver) Variable(command string) string {
	return r.Prefix + command
}

func (r *EnvResolver) Configured(command string) bool {
	return r.Env.Get(r.Variable(command)) != ""
}

func (r *EnvResolver) Resolve(command string) (string, error) {
	name := r.Variable(command)
	path := r.Env.Get(name)
	if path == "" {
		return "", errors.Newf(errors.ErrConfiguration,
			"Unable to find environment variable for file command %s", command).
			WithDetail("variable", name)
	}
	return path, nil
}
