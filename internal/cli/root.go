package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/stepkit/internal/version"
	"github.com/arthur-debert/stepkit/pkg/config"
	"github.com/arthur-debert/stepkit/pkg/core"
	"github.com/arthur-debert/stepkit/pkg/errors"
	"github.com/arthur-debert/stepkit/pkg/logging"
)

// app holds the state shared by every command of one invocation
type app struct {
	verbosity  int
	configPath string
	options    []core.Option

	cfg *config.Config
	tk  *core.Toolkit
}

// config loads the configuration once per invocation
func (a *app) config() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}
	a.cfg = cfg
	return cfg, nil
}

// toolkit builds the Toolkit on first use. Protocol output goes to the
// command's stdout unless an option overrides it.
func (a *app) toolkit(cmd *cobra.Command) (*core.Toolkit, error) {
	if a.tk != nil {
		return a.tk, nil
	}
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}

	opts := []core.Option{core.WithOutput(cmd.OutOrStdout()), core.WithConfig(cfg)}
	opts = append(opts, a.options...)
	tk, err := core.New(opts...)
	if err != nil {
		return nil, err
	}
	a.tk = tk
	return tk, nil
}

// NewRootCmd creates and returns the root command. Options are applied
// to the Toolkit every subcommand runs against.
func NewRootCmd(options ...core.Option) *cobra.Command {
	initTemplateFormatting()

	a := &app{options: options}

	rootCmd := &cobra.Command{
		Use:     "stepkit",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrValidation, MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{ID: "runner", Title: "Runner commands:"})
	rootCmd.AddGroup(&cobra.Group{ID: "log", Title: "Log commands:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "Misc:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newOutputCmd(a))
	rootCmd.AddCommand(newEnvCmd(a))
	rootCmd.AddCommand(newPathCmd(a))
	rootCmd.AddCommand(newMaskCmd(a))
	rootCmd.AddCommand(newStateCmd(a))
	rootCmd.AddCommand(newInputCmd(a))
	rootCmd.AddCommand(newSummaryCmd(a))
	rootCmd.AddCommand(newAnnotateCmd(a))
	rootCmd.AddCommand(newGroupCmd(a))
	rootCmd.AddCommand(newEchoCmd(a))
	rootCmd.AddCommand(newFailCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newInfoCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	initTopics(rootCmd)

	return rootCmd
}
