package environ

import (
	"github.com/caarlos0/env/v11"

	"github.com/arthur-debert/stepkit/pkg/errors"
	"github.com/arthur-debert/stepkit/pkg/types"
)

// RunnerInfo is a snapshot of the variables a runner sets for every step.
type RunnerInfo struct {
	Debug     bool   `env:"RUNNER_DEBUG"`
	OS        string `env:"RUNNER_OS"`
	Arch      string `env:"RUNNER_ARCH"`
	Temp      string `env:"RUNNER_TEMP"`
	Actions   bool   `env:"GITHUB_ACTIONS"`
	Workspace string `env:"GITHUB_WORKSPACE"`
	Action    string `env:"GITHUB_ACTION"`
	RunID     string `env:"GITHUB_RUN_ID"`
}

// LoadRunnerInfo decodes the runner variables from e.
func LoadRunnerInfo(e types.Env) (RunnerInfo, error) {
	var info RunnerInfo
	if err := env.ParseWithOptions(&info, env.Options{Environment: e.Environ()}); err != nil {
		return RunnerInfo{}, errors.Wrap(err, errors.ErrValidation, "failed to parse runner environment")
	}
	return info, nil
}
